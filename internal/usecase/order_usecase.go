package usecase

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidOrderStatus        = errors.New("invalid order status")
	ErrOrderTransitionNotAllowed = errors.New("order status transition not allowed")
)

const DefaultOrderListLimit = 100

// IOrderUseCase is the staff view of orders.
type IOrderUseCase interface {
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	List(ctx context.Context, limit int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.OrderID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) List(ctx context.Context, limit int) ([]entities.Order, error) {
	if limit <= 0 || limit > DefaultOrderListLimit {
		limit = DefaultOrderListLimit
	}
	return u.repo.List(ctx, limit)
}

// UpdateStatus advances an order through the state machine. Paid is reserved for
// payment confirmation, which also carries the payment id.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	if !status.IsValid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}
	current, err := u.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if status == entities.OrderStatusPaid || !current.Status.CanTransitionTo(status) {
		return entities.Order{}, ErrOrderTransitionNotAllowed
	}

	updated, err := u.repo.UpdateStatus(ctx, current.OrderID, status)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.OrderID == "" {
		return entities.Order{}, ErrOrderTransitionNotAllowed
	}
	logrus.WithFields(logrus.Fields{"order_id": updated.OrderID, "from": current.Status, "to": updated.Status}).Info("[order][usecase] status updated")
	return updated, nil
}
