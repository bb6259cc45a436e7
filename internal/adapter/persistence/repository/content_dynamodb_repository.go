package repository

import (
	"context"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/pkg/errors"
)

const slugIndex = "slug-index"

var ErrSlugLookupUnsupported = errors.New("table has no slug index")

// ContentDynamoRepository persists one content type per table. Items are written with
// the entity's json tags so fixtures and storage share one field naming.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: slug-index (PK: slug), only for routed content
type ContentDynamoRepository[T entities.Record] struct {
	ddb       DynamoAPI
	tableName string
	hasSlug   bool
}

var (
	_ interfaces.IContentRepository[entities.Service]       = (*ContentDynamoRepository[entities.Service])(nil)
	_ interfaces.IContentRepository[entities.CalendarEvent] = (*ContentDynamoRepository[entities.CalendarEvent])(nil)
)

func NewContentDynamoRepository[T entities.Record](ddb DynamoAPI, tableName string, hasSlug bool) *ContentDynamoRepository[T] {
	return &ContentDynamoRepository[T]{ddb: ddb, tableName: tableName, hasSlug: hasSlug}
}

func marshalRecord(v any) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
}

func unmarshalRecord(item map[string]types.AttributeValue, out any) error {
	return attributevalue.UnmarshalMapWithOptions(item, out, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
}

func (r *ContentDynamoRepository[T]) Put(ctx context.Context, item T) (T, error) {
	var zero T
	if item.RecordID() == "" {
		return zero, errors.New("record id is required")
	}
	av, err := marshalRecord(item)
	if err != nil {
		return zero, errors.Wrap(err, "marshal record")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return zero, errors.Wrapf(err, "put %s", r.tableName)
	}
	return item, nil
}

func (r *ContentDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return zero, errors.Wrapf(err, "get %s", r.tableName)
	}
	if len(out.Item) == 0 {
		return zero, nil
	}
	var it T
	if err := unmarshalRecord(out.Item, &it); err != nil {
		return zero, errors.Wrap(err, "unmarshal record")
	}
	return it, nil
}

func (r *ContentDynamoRepository[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
	var zero T
	if !r.hasSlug {
		return zero, ErrSlugLookupUnsupported
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(slugIndex),
		KeyConditionExpression: aws.String("slug = :slug"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":slug": &types.AttributeValueMemberS{Value: slug},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return zero, errors.Wrapf(err, "query %s by slug", r.tableName)
	}
	if len(out.Items) == 0 {
		return zero, nil
	}
	var it T
	if err := unmarshalRecord(out.Items[0], &it); err != nil {
		return zero, errors.Wrap(err, "unmarshal record")
	}
	return it, nil
}

func (r *ContentDynamoRepository[T]) List(ctx context.Context) ([]T, error) {
	raw, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(raw))
	for _, av := range raw {
		var it T
		if err := unmarshalRecord(av, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal record")
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *ContentDynamoRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "delete from %s", r.tableName)
	}
	return true, nil
}
