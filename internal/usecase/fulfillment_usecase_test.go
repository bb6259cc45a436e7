package usecase

import (
	"context"
	"errors"
	"testing"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"
	mock_interfaces "socialdots/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func paidServiceOrder() entities.Order {
	return entities.Order{
		OrderID:       "SD1",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		ServiceID:     "web",
		ServiceName:   "Web Design",
		Status:        entities.OrderStatusPaid,
		PaymentID:     "pay-1",
		Lines: []entities.OrderLine{{
			ServiceID:      "web",
			Name:           "Web Design",
			Quantity:       1,
			UnitPrice:      decimal.NewFromInt(500),
			MaintenanceFee: decimal.NewFromInt(50),
		}},
	}
}

func TestFulfillmentUseCase_PushOrder(t *testing.T) {
	t.Run("unknown order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFulfillmentUseCase(orders, mock_interfaces.NewMockIERPClient(ctrl))
		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("unpaid order is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewFulfillmentUseCase(orders, mock_interfaces.NewMockIERPClient(ctrl))
		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusPending}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("creates documents, project and tasks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		erp := mock_interfaces.NewMockIERPClient(ctrl)
		uc := NewFulfillmentUseCase(orders, erp)

		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(paidServiceOrder(), nil)
		erp.EXPECT().CreateCustomer(gomock.Any(), interfaces.ERPCustomer{Name: "Ana", Email: "ana@example.com"}).Return("CUST-1", nil)
		erp.EXPECT().CreateSalesOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, so interfaces.ERPSalesOrder) (string, error) {
				if so.Customer != "CUST-1" || so.OrderID != "SD1" || so.PaymentID != "pay-1" {
					t.Fatalf("unexpected sales order: %+v", so)
				}
				if len(so.Items) != 1 || so.Items[0].ItemCode != "SERVICE-web" || so.Items[0].Rate != 550 {
					t.Fatalf("unexpected items: %+v", so.Items)
				}
				return "SO-1", nil
			},
		)
		orders.EXPECT().SetERPDocumentID(gomock.Any(), "SD1", "SO-1").Return(entities.Order{OrderID: "SD1"}, nil)
		erp.EXPECT().SubmitSalesOrder(gomock.Any(), "SO-1").Return(nil)
		erp.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p interfaces.ERPProject) (string, error) {
				if p.Name != "Web Design - Ana" || p.SalesOrder != "SO-1" {
					t.Fatalf("unexpected project: %+v", p)
				}
				return "PROJ-1", nil
			},
		)
		orders.EXPECT().SetERPProjectID(gomock.Any(), "SD1", "PROJ-1").Return(entities.Order{OrderID: "SD1"}, nil)
		orders.EXPECT().AddERPTask(gomock.Any(), "SD1", gomock.Any()).Times(3).Return(entities.Order{OrderID: "SD1"}, nil)
		var subjects []string
		erp.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, task interfaces.ERPTask) (string, error) {
				if task.Project != "PROJ-1" {
					t.Fatalf("task on wrong project: %+v", task)
				}
				subjects = append(subjects, task.Subject)
				return "TASK", nil
			},
		)
		orders.EXPECT().UpdateStatus(gomock.Any(), "SD1", entities.OrderStatusProcessing).Return(entities.Order{OrderID: "SD1", Status: entities.OrderStatusProcessing}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(subjects) != 3 || subjects[0] != "Initial consultation for Web Design" || subjects[2] != "Execute Web Design" {
			t.Fatalf("unexpected tasks: %v", subjects)
		}
	})

	t.Run("retry reuses the recorded sales order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		erp := mock_interfaces.NewMockIERPClient(ctrl)
		uc := NewFulfillmentUseCase(orders, erp)

		order := paidServiceOrder()
		order.ERPDocumentID = "SO-1"
		order.ServiceID = ""
		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(order, nil)
		erp.EXPECT().GetSalesOrder(gomock.Any(), "SO-1").Return(interfaces.ERPSalesOrderState{Name: "SO-1", DocStatus: 0}, nil)
		erp.EXPECT().SubmitSalesOrder(gomock.Any(), "SO-1").Return(nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "SD1", entities.OrderStatusProcessing).Return(entities.Order{OrderID: "SD1"}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("retry after a task failure resumes the recorded project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		erp := mock_interfaces.NewMockIERPClient(ctrl)
		uc := NewFulfillmentUseCase(orders, erp)

		stored := paidServiceOrder()
		orders.EXPECT().GetByID(gomock.Any(), "SD1").Times(2).DoAndReturn(
			func(context.Context, string) (entities.Order, error) { return stored, nil },
		)
		orders.EXPECT().SetERPDocumentID(gomock.Any(), "SD1", "SO-1").DoAndReturn(
			func(_ context.Context, _, doc string) (entities.Order, error) {
				stored.ERPDocumentID = doc
				return stored, nil
			},
		)
		orders.EXPECT().SetERPProjectID(gomock.Any(), "SD1", "PROJ-1").DoAndReturn(
			func(_ context.Context, _, project string) (entities.Order, error) {
				stored.ERPProjectID = project
				return stored, nil
			},
		)
		orders.EXPECT().AddERPTask(gomock.Any(), "SD1", gomock.Any()).AnyTimes().DoAndReturn(
			func(_ context.Context, _, subject string) (entities.Order, error) {
				stored.ERPTasks = append(stored.ERPTasks, subject)
				return stored, nil
			},
		)
		erp.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("CUST-1", nil)
		erp.EXPECT().CreateSalesOrder(gomock.Any(), gomock.Any()).Return("SO-1", nil)
		erp.EXPECT().SubmitSalesOrder(gomock.Any(), "SO-1").Return(nil)
		erp.EXPECT().GetSalesOrder(gomock.Any(), "SO-1").Return(interfaces.ERPSalesOrderState{Name: "SO-1", DocStatus: 1}, nil)
		erp.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Times(1).Return("PROJ-1", nil)

		calls := 0
		var created []string
		erp.EXPECT().CreateTask(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
			func(_ context.Context, task interfaces.ERPTask) (string, error) {
				calls++
				if calls == 2 {
					return "", errors.New("erp 502")
				}
				if task.Project != "PROJ-1" {
					t.Fatalf("task on wrong project: %+v", task)
				}
				created = append(created, task.Subject)
				return "TASK", nil
			},
		)
		orders.EXPECT().UpdateStatus(gomock.Any(), "SD1", entities.OrderStatusProcessing).Return(entities.Order{OrderID: "SD1"}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); err == nil {
			t.Fatalf("expected the first attempt to fail")
		}
		if err := uc.PushOrder(context.Background(), "SD1"); err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		want := []string{"Initial consultation for Web Design", "Project planning for Web Design", "Execute Web Design"}
		if len(created) != len(want) {
			t.Fatalf("expected each task once, got %v", created)
		}
		for i := range want {
			if created[i] != want[i] {
				t.Fatalf("expected tasks %v, got %v", want, created)
			}
		}
	})

	t.Run("submitted sales order is not submitted again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		erp := mock_interfaces.NewMockIERPClient(ctrl)
		uc := NewFulfillmentUseCase(orders, erp)

		order := paidServiceOrder()
		order.ERPDocumentID = "SO-1"
		order.ServiceID = ""
		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(order, nil)
		erp.EXPECT().GetSalesOrder(gomock.Any(), "SO-1").Return(interfaces.ERPSalesOrderState{Name: "SO-1", DocStatus: 1}, nil)
		orders.EXPECT().UpdateStatus(gomock.Any(), "SD1", entities.OrderStatusProcessing).Return(entities.Order{OrderID: "SD1"}, nil)

		if err := uc.PushOrder(context.Background(), "SD1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("erp failure keeps the order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		erp := mock_interfaces.NewMockIERPClient(ctrl)
		uc := NewFulfillmentUseCase(orders, erp)

		orders.EXPECT().GetByID(gomock.Any(), "SD1").Return(paidServiceOrder(), nil)
		erp.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return("", errors.New("erp down"))

		if err := uc.PushOrder(context.Background(), "SD1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
