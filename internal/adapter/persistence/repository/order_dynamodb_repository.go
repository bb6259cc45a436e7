package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultOrdersTableName = "orders"

type orderLineItem struct {
	ServiceID       string `dynamodbav:"service_id,omitempty"`
	PricingOptionID string `dynamodbav:"pricing_option_id,omitempty"`
	PricingPlanID   string `dynamodbav:"pricing_plan_id,omitempty"`
	Name            string `dynamodbav:"name"`
	Description     string `dynamodbav:"description,omitempty"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Quantity        int    `dynamodbav:"quantity"`
	MaintenanceFee  string `dynamodbav:"maintenance_fee"`
}

type orderItem struct {
	OrderID           string          `dynamodbav:"order_id"`
	CustomerName      string          `dynamodbav:"customer_name"`
	CustomerEmail     string          `dynamodbav:"customer_email"`
	CustomerPhone     string          `dynamodbav:"customer_phone,omitempty"`
	ServiceID         string          `dynamodbav:"service_id,omitempty"`
	ServiceName       string          `dynamodbav:"service_name,omitempty"`
	PricingPlanID     string          `dynamodbav:"pricing_plan_id,omitempty"`
	PricingPlanName   string          `dynamodbav:"pricing_plan_name,omitempty"`
	Lines             []orderLineItem `dynamodbav:"lines"`
	Amount            string          `dynamodbav:"amount"`
	Currency          string          `dynamodbav:"currency"`
	Status            string          `dynamodbav:"status"`
	CheckoutSessionID string          `dynamodbav:"checkout_session_id,omitempty"`
	PaymentID         string          `dynamodbav:"payment_id,omitempty"`
	ERPDocumentID     string          `dynamodbav:"erp_document_id,omitempty"`
	ERPProjectID      string          `dynamodbav:"erp_project_id,omitempty"`
	ERPTasks          []string        `dynamodbav:"erp_tasks,omitempty"`
	Notes             string          `dynamodbav:"notes,omitempty"`
	PaidAt            string          `dynamodbav:"paid_at,omitempty"`
	CreatedAt         string          `dynamodbav:"created_at"`
	UpdatedAt         string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// Amounts are stored as decimal strings.
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultOrdersTableName)}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "marshal order")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, errors.Wrap(err, "put order")
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, errors.Wrap(err, "get order")
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshal order")
	}
	return fromOrderItem(it), nil
}

// List returns the most recent orders first.
func (r *OrderDynamoRepository) List(ctx context.Context, limit int) ([]entities.Order, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal order")
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

func (r *OrderDynamoRepository) SetCheckoutSession(ctx context.Context, orderID, sessionID string) (entities.Order, error) {
	return r.update(ctx, orderID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #session = :session, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":session":    &types.AttributeValueMemberS{Value: sessionID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#session":    "checkout_session_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// MarkPaid moves a pending order to paid. It is a single conditional write on the
// current status, so of several concurrent or repeated confirmations exactly one applies;
// the others get a zero Order back.
func (r *OrderDynamoRepository) MarkPaid(ctx context.Context, orderID, paymentID string, paidAt time.Time) (entities.Order, error) {
	return r.update(ctx, orderID, "#status = :pending", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :paid, #payment_id = :payment_id, #paid_at = :paid_at, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.OrderStatusPending)},
			":paid":       &types.AttributeValueMemberS{Value: string(entities.OrderStatusPaid)},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":paid_at":    &types.AttributeValueMemberS{Value: formatTime(paidAt)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#payment_id": "payment_id",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// UpdateStatus applies status only when the stored status is one of its allowed predecessors.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) (entities.Order, error) {
	preds := entities.PredecessorsOf(status)
	if len(preds) == 0 {
		return entities.Order{}, nil
	}

	placeholders := ""
	vals := map[string]types.AttributeValue{}
	for i, p := range preds {
		key := ":from" + strconv.Itoa(i)
		if i > 0 {
			placeholders += ", "
		}
		placeholders += key
		vals[key] = &types.AttributeValueMemberS{Value: string(p)}
	}

	return r.update(ctx, orderID, "#status IN ("+placeholders+")", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals[":status"] = &types.AttributeValueMemberS{Value: string(status)}
		vals[":updated_at"] = &types.AttributeValueMemberS{Value: now}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return "SET #status = :status, #updated_at = :updated_at", vals, names
	})
}

func (r *OrderDynamoRepository) SetERPDocumentID(ctx context.Context, orderID, documentID string) (entities.Order, error) {
	return r.update(ctx, orderID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #erp = :erp, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":erp":        &types.AttributeValueMemberS{Value: documentID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#erp":        "erp_document_id",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

// SetERPProjectID records the ERP project created for the order. The first recorded
// project wins.
func (r *OrderDynamoRepository) SetERPProjectID(ctx context.Context, orderID, projectID string) (entities.Order, error) {
	return r.update(ctx, orderID, "(attribute_not_exists(#project) OR #project = :project)", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":project":    &types.AttributeValueMemberS{Value: projectID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#project":    "erp_project_id",
			"#updated_at": "updated_at",
		}
		return "SET #project = :project, #updated_at = :updated_at", vals, names
	})
}

// AddERPTask appends the subject of a created ERP task to the order.
func (r *OrderDynamoRepository) AddERPTask(ctx context.Context, orderID, subject string) (entities.Order, error) {
	return r.update(ctx, orderID, "", func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		vals := map[string]types.AttributeValue{
			":task":       &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: subject}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#tasks":      "erp_tasks",
			"#updated_at": "updated_at",
		}
		return "SET #tasks = list_append(if_not_exists(#tasks, :empty), :task), #updated_at = :updated_at", vals, names
	})
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	orderID string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	updateExpr, values, names := build(nowString())

	cond := "attribute_exists(#order_id)"
	if condition != "" {
		cond += " AND " + condition
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#order_id": "order_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Order{}, nil
		}
		return entities.Order{}, errors.Wrap(err, "update order")
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, errors.Wrap(err, "unmarshal order")
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, orderLineItem{
			ServiceID:       l.ServiceID,
			PricingOptionID: l.PricingOptionID,
			PricingPlanID:   l.PricingPlanID,
			Name:            l.Name,
			Description:     l.Description,
			UnitPrice:       l.UnitPrice.String(),
			Quantity:        l.Quantity,
			MaintenanceFee:  l.MaintenanceFee.String(),
		})
	}
	return orderItem{
		OrderID:           o.OrderID,
		CustomerName:      o.CustomerName,
		CustomerEmail:     o.CustomerEmail,
		CustomerPhone:     o.CustomerPhone,
		ServiceID:         o.ServiceID,
		ServiceName:       o.ServiceName,
		PricingPlanID:     o.PricingPlanID,
		PricingPlanName:   o.PricingPlanName,
		Lines:             lines,
		Amount:            o.Amount.String(),
		Currency:          o.Currency,
		Status:            string(o.Status),
		CheckoutSessionID: o.CheckoutSessionID,
		PaymentID:         o.PaymentID,
		ERPDocumentID:     o.ERPDocumentID,
		ERPProjectID:      o.ERPProjectID,
		ERPTasks:          o.ERPTasks,
		Notes:             o.Notes,
		PaidAt:            formatTimePtr(o.PaidAt),
		CreatedAt:         formatTime(o.CreatedAt),
		UpdatedAt:         formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		unit, _ := decimal.NewFromString(l.UnitPrice)
		fee, _ := decimal.NewFromString(l.MaintenanceFee)
		lines = append(lines, entities.OrderLine{
			ServiceID:       l.ServiceID,
			PricingOptionID: l.PricingOptionID,
			PricingPlanID:   l.PricingPlanID,
			Name:            l.Name,
			Description:     l.Description,
			UnitPrice:       unit,
			Quantity:        l.Quantity,
			MaintenanceFee:  fee,
		})
	}
	amount, _ := decimal.NewFromString(it.Amount)
	return entities.Order{
		OrderID:           it.OrderID,
		CustomerName:      it.CustomerName,
		CustomerEmail:     it.CustomerEmail,
		CustomerPhone:     it.CustomerPhone,
		ServiceID:         it.ServiceID,
		ServiceName:       it.ServiceName,
		PricingPlanID:     it.PricingPlanID,
		PricingPlanName:   it.PricingPlanName,
		Lines:             lines,
		Amount:            amount,
		Currency:          it.Currency,
		Status:            entities.OrderStatus(it.Status),
		CheckoutSessionID: it.CheckoutSessionID,
		PaymentID:         it.PaymentID,
		ERPDocumentID:     it.ERPDocumentID,
		ERPProjectID:      it.ERPProjectID,
		ERPTasks:          it.ERPTasks,
		Notes:             it.Notes,
		PaidAt:            parseTimePtr(it.PaidAt),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
