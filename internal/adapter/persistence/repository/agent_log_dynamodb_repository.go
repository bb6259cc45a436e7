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

const (
	defaultAgentLogsTableName = "agent_logs"
	agentLogsTypeIndex        = "log_type-created_at-index"
)

type agentLogItem struct {
	ID              string         `dynamodbav:"id"`
	LogType         string         `dynamodbav:"log_type"`
	UserIdentifier  string         `dynamodbav:"user_identifier,omitempty"`
	MessageContent  string         `dynamodbav:"message_content,omitempty"`
	ResponseContent string         `dynamodbav:"response_content,omitempty"`
	Payload         map[string]any `dynamodbav:"payload,omitempty"`
	Status          string         `dynamodbav:"status"`
	CreatedAt       string         `dynamodbav:"created_at"`
}

// AgentLogDynamoRepository appends AgentLog rows.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: log_type-created_at-index (PK: log_type, SK: created_at)
type AgentLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAgentLogRepository = (*AgentLogDynamoRepository)(nil)

func NewAgentLogDynamoRepository(ddb DynamoAPI, tableName string) *AgentLogDynamoRepository {
	return &AgentLogDynamoRepository{ddb: ddb, tableName: tableOrDefault(tableName, defaultAgentLogsTableName)}
}

func (r *AgentLogDynamoRepository) Append(ctx context.Context, l entities.AgentLog) (entities.AgentLog, error) {
	av, err := attributevalue.MarshalMap(agentLogItem{
		ID:              l.ID,
		LogType:         string(l.LogType),
		UserIdentifier:  l.UserIdentifier,
		MessageContent:  l.MessageContent,
		ResponseContent: l.ResponseContent,
		Payload:         l.Payload,
		Status:          string(l.Status),
		CreatedAt:       formatTime(l.CreatedAt),
	})
	if err != nil {
		return entities.AgentLog{}, errors.Wrap(err, "marshal agent log")
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
		return entities.AgentLog{}, errors.Wrap(err, "put agent log")
	}
	return l, nil
}

// List returns the newest logs first, optionally restricted to one log type.
func (r *AgentLogDynamoRepository) List(ctx context.Context, logType entities.AgentLogType, limit int) ([]entities.AgentLog, error) {
	var raw []map[string]types.AttributeValue
	if logType != "" {
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(agentLogsTypeIndex),
			KeyConditionExpression: aws.String("log_type = :t"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":t": &types.AttributeValueMemberS{Value: string(logType)},
			},
			ScanIndexForward: aws.Bool(false),
		}
		if limit > 0 {
			in.Limit = aws.Int32(int32(limit))
		}
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, errors.Wrap(err, "query agent logs")
		}
		raw = out.Items
	} else {
		all, err := scanAll(ctx, r.ddb, r.tableName)
		if err != nil {
			return nil, err
		}
		raw = all
	}

	logs := make([]entities.AgentLog, 0, len(raw))
	for _, av := range raw {
		var it agentLogItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, errors.Wrap(err, "unmarshal agent log")
		}
		logs = append(logs, entities.AgentLog{
			ID:              it.ID,
			LogType:         entities.AgentLogType(it.LogType),
			UserIdentifier:  it.UserIdentifier,
			MessageContent:  it.MessageContent,
			ResponseContent: it.ResponseContent,
			Payload:         it.Payload,
			Status:          entities.AgentLogStatus(it.Status),
			CreatedAt:       parseTime(it.CreatedAt),
		})
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].CreatedAt.After(logs[j].CreatedAt) })
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}
