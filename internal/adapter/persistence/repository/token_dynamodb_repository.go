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

const defaultIntegrationsTableName = "integrations"

type tokenItem struct {
	Provider     string `dynamodbav:"provider"`
	AccessToken  string `dynamodbav:"access_token"`
	RefreshToken string `dynamodbav:"refresh_token,omitempty"`
	TokenType    string `dynamodbav:"token_type,omitempty"`
	Expiry       string `dynamodbav:"expiry,omitempty"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// TokenDynamoRepository keeps one OAuth token per integration provider.
//
// Table requirements:
//   - PK: provider (string)
type TokenDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITokenRepository = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb DynamoAPI, tableName string) *TokenDynamoRepository {
	return &TokenDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultIntegrationsTableName)}
}

func (r *TokenDynamoRepository) Get(ctx context.Context, provider string) (entities.OAuthToken, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"provider": &types.AttributeValueMemberS{Value: provider},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OAuthToken{}, errors.Wrap(err, "get token")
	}
	if len(out.Item) == 0 {
		return entities.OAuthToken{}, nil
	}
	var it tokenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OAuthToken{}, errors.Wrap(err, "unmarshal token")
	}
	return entities.OAuthToken{
		Provider:     it.Provider,
		AccessToken:  it.AccessToken,
		RefreshToken: it.RefreshToken,
		TokenType:    it.TokenType,
		Expiry:       parseTime(it.Expiry),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}

func (r *TokenDynamoRepository) Put(ctx context.Context, tok entities.OAuthToken) error {
	av, err := attributevalue.MarshalMap(tokenItem{
		Provider:     tok.Provider,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       formatTime(tok.Expiry),
		UpdatedAt:    nowString(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal token")
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return errors.Wrap(err, "put token")
}
