package interfaces

//go:generate mockgen -source=erp_client_interface.go -destination=mocks/erp_client_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"
)

type ERPCustomer struct {
	Name  string
	Email string
	Phone string
}

type ERPItem struct {
	ItemCode    string
	ItemName    string
	Description string
	Qty         int
	Rate        float64
}

type ERPSalesOrder struct {
	Customer        string
	TransactionDate time.Time
	Items           []ERPItem
	OrderID         string
	PaymentID       string
	Notes           string
}

type ERPProject struct {
	Name        string
	Customer    string
	SalesOrder  string
	StartDate   time.Time
	OrderID     string
	ClientEmail string
	ClientPhone string
}

type ERPTask struct {
	Project     string
	Subject     string
	Description string
	Priority    string
}

// ERPSalesOrderState is the subset of a stored sales order fulfillment cares about.
type ERPSalesOrderState struct {
	Name      string
	DocStatus int
}

// IERPClient abstracts the ERP REST API (Frappe/ERPNext).
type IERPClient interface {
	CreateCustomer(ctx context.Context, c ERPCustomer) (string, error)
	CreateSalesOrder(ctx context.Context, so ERPSalesOrder) (string, error)
	GetSalesOrder(ctx context.Context, name string) (ERPSalesOrderState, error)
	SubmitSalesOrder(ctx context.Context, name string) error
	CreateProject(ctx context.Context, p ERPProject) (string, error)
	CreateTask(ctx context.Context, t ERPTask) (string, error)
	Ping(ctx context.Context) error
}
