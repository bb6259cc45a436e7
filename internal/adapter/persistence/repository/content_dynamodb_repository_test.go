package repository

import (
	"context"
	"testing"

	"socialdots/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentDynamoRepository_PutAndGetBySlug(t *testing.T) {
	price := 499.0
	svc := entities.Service{ID: "svc-1", Title: "SEO", Slug: "seo", Price: &price, PriceType: entities.PriceTypeFixed, IsActive: true}

	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, slugIndex, aws.ToString(in.IndexName))
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{stored}}, nil
		},
	}
	repo := NewContentDynamoRepository[entities.Service](ddb, "services", true)

	_, err := repo.Put(context.Background(), svc)
	require.NoError(t, err)
	require.Contains(t, stored, "slug")
	require.Contains(t, stored, "price_type")

	got, err := repo.GetBySlug(context.Background(), "seo")
	require.NoError(t, err)
	assert.Equal(t, "svc-1", got.ID)
	require.NotNil(t, got.Price)
	assert.Equal(t, 499.0, *got.Price)
}

func TestContentDynamoRepository_Errors(t *testing.T) {
	repo := NewContentDynamoRepository[entities.TeamMember](&fakeDynamo{}, "team", false)

	_, err := repo.Put(context.Background(), entities.TeamMember{Name: "No ID"})
	assert.Error(t, err)

	_, err = repo.GetBySlug(context.Background(), "x")
	assert.ErrorIs(t, err, ErrSlugLookupUnsupported)
}

func TestContentDynamoRepository_DeleteMissing(t *testing.T) {
	ddb := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}}
	repo := NewContentDynamoRepository[entities.BlogPost](ddb, "posts", true)
	ok, err := repo.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}
