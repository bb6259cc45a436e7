package usecase

import (
	"context"
	"fmt"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// ERP task priorities.
const (
	erpPriorityHigh   = "High"
	erpPriorityMedium = "Medium"
)

// IFulfillmentUseCase pushes paid orders into the ERP.
type IFulfillmentUseCase interface {
	PushOrder(ctx context.Context, orderID string) error
}

type FulfillmentUseCase struct {
	orders interfaces.IOrderRepository
	erp    interfaces.IERPClient
}

var _ IFulfillmentUseCase = (*FulfillmentUseCase)(nil)

func NewFulfillmentUseCase(orders interfaces.IOrderRepository, erp interfaces.IERPClient) *FulfillmentUseCase {
	return &FulfillmentUseCase{orders: orders, erp: erp}
}

// PushOrder creates the customer and a submitted sales order for a paid order and, when
// the order is for a service, a project with the default delivery tasks. The order then
// moves to processing. Orders in any other status are skipped.
//
// The sales order, project and tasks are recorded on the order as they are created, so a
// retry after a partial failure only creates what is missing.
func (u *FulfillmentUseCase) PushOrder(ctx context.Context, orderID string) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OrderID == "" {
		return ErrOrderNotFound
	}
	log := logrus.WithField("order_id", order.OrderID)
	if order.Status != entities.OrderStatusPaid {
		log.WithField("status", order.Status).Warn("[fulfillment][usecase] order is not paid, skipping")
		return nil
	}

	salesOrder := order.ERPDocumentID
	if salesOrder == "" {
		customer, err := u.erp.CreateCustomer(ctx, interfaces.ERPCustomer{
			Name:  order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		})
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}

		salesOrder, err = u.erp.CreateSalesOrder(ctx, salesOrderFor(order, customer))
		if err != nil {
			return fmt.Errorf("create sales order: %w", err)
		}
		if _, err := u.orders.SetERPDocumentID(ctx, order.OrderID, salesOrder); err != nil {
			return err
		}
		log.WithField("sales_order", salesOrder).Info("[fulfillment][usecase] sales order created")
		if err := u.erp.SubmitSalesOrder(ctx, salesOrder); err != nil {
			return fmt.Errorf("submit sales order: %w", err)
		}
	} else {
		state, err := u.erp.GetSalesOrder(ctx, salesOrder)
		if err != nil {
			return fmt.Errorf("get sales order: %w", err)
		}
		if state.DocStatus == 0 {
			if err := u.erp.SubmitSalesOrder(ctx, salesOrder); err != nil {
				return fmt.Errorf("submit sales order: %w", err)
			}
		}
	}

	if order.ServiceID != "" {
		if err := u.createProject(ctx, order, salesOrder); err != nil {
			return err
		}
	}

	if _, err := u.orders.UpdateStatus(ctx, order.OrderID, entities.OrderStatusProcessing); err != nil {
		return err
	}
	log.WithField("sales_order", salesOrder).Info("[fulfillment][usecase] order pushed to erp")
	return nil
}

// createProject reuses the project and tasks already recorded on the order, so only the
// missing ones are created.
func (u *FulfillmentUseCase) createProject(ctx context.Context, order entities.Order, salesOrder string) error {
	project := order.ERPProjectID
	if project == "" {
		var err error
		project, err = u.erp.CreateProject(ctx, interfaces.ERPProject{
			Name:        order.ServiceName + " - " + order.CustomerName,
			Customer:    order.CustomerName,
			SalesOrder:  salesOrder,
			StartDate:   order.CreatedAt,
			OrderID:     order.OrderID,
			ClientEmail: order.CustomerEmail,
			ClientPhone: order.CustomerPhone,
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		if _, err := u.orders.SetERPProjectID(ctx, order.OrderID, project); err != nil {
			return err
		}
	}

	done := make(map[string]bool, len(order.ERPTasks))
	for _, subject := range order.ERPTasks {
		done[subject] = true
	}
	for _, task := range defaultTasks(project, order.ServiceName) {
		if done[task.Subject] {
			continue
		}
		if _, err := u.erp.CreateTask(ctx, task); err != nil {
			return fmt.Errorf("create task %q: %w", task.Subject, err)
		}
		if _, err := u.orders.AddERPTask(ctx, order.OrderID, task.Subject); err != nil {
			return err
		}
	}
	return nil
}

func salesOrderFor(order entities.Order, customer string) interfaces.ERPSalesOrder {
	items := make([]interfaces.ERPItem, 0, len(order.Lines))
	for _, l := range order.Lines {
		code := "SERVICE-" + l.ServiceID
		if l.ServiceID == "" {
			code = "PLAN-" + l.PricingPlanID
		}
		rate, _ := l.UnitPrice.Add(l.MaintenanceFee).Float64()
		items = append(items, interfaces.ERPItem{
			ItemCode:    code,
			ItemName:    l.Name,
			Description: l.Description,
			Qty:         l.Quantity,
			Rate:        rate,
		})
	}
	return interfaces.ERPSalesOrder{
		Customer:        customer,
		TransactionDate: order.CreatedAt,
		Items:           items,
		OrderID:         order.OrderID,
		PaymentID:       order.PaymentID,
		Notes:           order.Notes,
	}
}

func defaultTasks(project, service string) []interfaces.ERPTask {
	return []interfaces.ERPTask{
		{
			Project:     project,
			Subject:     "Initial consultation for " + service,
			Description: "Schedule and conduct initial consultation with client",
			Priority:    erpPriorityHigh,
		},
		{
			Project:     project,
			Subject:     "Project planning for " + service,
			Description: "Create detailed project plan and timeline",
			Priority:    erpPriorityMedium,
		},
		{
			Project:     project,
			Subject:     "Execute " + service,
			Description: "Complete the main deliverables for the service",
			Priority:    erpPriorityHigh,
		},
	}
}
