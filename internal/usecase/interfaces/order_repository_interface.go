package interfaces

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"socialdots/internal/domain/entities"
	"time"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Status changes are conditional writes: when the stored status does not allow the
// change the repository returns a zero Order (OrderID == "") and a nil error.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	List(ctx context.Context, limit int) ([]entities.Order, error)
	SetCheckoutSession(ctx context.Context, orderID, sessionID string) (entities.Order, error)
	MarkPaid(ctx context.Context, orderID, paymentID string, paidAt time.Time) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
	SetERPDocumentID(ctx context.Context, orderID, documentID string) (entities.Order, error)
	SetERPProjectID(ctx context.Context, orderID, projectID string) (entities.Order, error)
	AddERPTask(ctx context.Context, orderID, subject string) (entities.Order, error)
}
