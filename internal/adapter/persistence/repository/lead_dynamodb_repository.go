package repository

import (
	"context"
	"sort"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Email             string `dynamodbav:"email"`
	Phone             string `dynamodbav:"phone,omitempty"`
	Company           string `dynamodbav:"company,omitempty"`
	ServiceInterestID string `dynamodbav:"service_interest_id,omitempty"`
	ServiceInterest   string `dynamodbav:"service_interest,omitempty"`
	Message           string `dynamodbav:"message,omitempty"`
	Status            string `dynamodbav:"status"`
	Source            string `dynamodbav:"source,omitempty"`
	Budget            string `dynamodbav:"budget,omitempty"`
	Timeline          string `dynamodbav:"timeline,omitempty"`
	Notes             string `dynamodbav:"notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI, tableName string) *LeadDynamoRepository {
	return &LeadDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultLeadsTableName)}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, errors.Wrap(err, "marshal lead")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Lead{}, interfaces.ErrAlreadyExists
		}
		return entities.Lead{}, errors.Wrap(err, "put lead")
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, errors.Wrap(err, "get lead")
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, errors.Wrap(err, "unmarshal lead")
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	leads := make([]entities.Lead, 0, len(raw))
	for _, av := range raw {
		var it leadItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal lead")
		}
		leads = append(leads, fromLeadItem(it))
	}
	sort.Slice(leads, func(i, j int) bool { return leads[i].CreatedAt.After(leads[j].CreatedAt) })
	return leads, nil
}

// UpdateStatus writes the new status only if the stored status is still from.
func (r *LeadDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.LeadStatus, notes string) (entities.Lead, error) {
	expr := "SET #status = :to, #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if notes != "" {
		expr += ", #notes = :notes"
		vals[":notes"] = &types.AttributeValueMemberS{Value: notes}
		names["#notes"] = "notes"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, errors.Wrap(err, "update lead")
	}
	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, errors.Wrap(err, "unmarshal lead")
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:                l.ID,
		Name:              l.Name,
		Email:             l.Email,
		Phone:             l.Phone,
		Company:           l.Company,
		ServiceInterestID: l.ServiceInterestID,
		ServiceInterest:   l.ServiceInterest,
		Message:           l.Message,
		Status:            string(l.Status),
		Source:            l.Source,
		Budget:            l.Budget,
		Timeline:          l.Timeline,
		Notes:             l.Notes,
		CreatedAt:         formatTime(l.CreatedAt),
		UpdatedAt:         formatTime(l.UpdatedAt),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	return entities.Lead{
		ID:                it.ID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Company:           it.Company,
		ServiceInterestID: it.ServiceInterestID,
		ServiceInterest:   it.ServiceInterest,
		Message:           it.Message,
		Status:            entities.LeadStatus(it.Status),
		Source:            it.Source,
		Budget:            it.Budget,
		Timeline:          it.Timeline,
		Notes:             it.Notes,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
