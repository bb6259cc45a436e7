package interfaces

//go:generate mockgen -source=agent_log_repository_interface.go -destination=mocks/agent_log_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"socialdots/internal/domain/entities"
)

type IAgentLogRepository interface {
	Append(ctx context.Context, l entities.AgentLog) (entities.AgentLog, error)
	List(ctx context.Context, logType entities.AgentLogType, limit int) ([]entities.AgentLog, error)
}

// IDatabaseProbe reports whether the backing store answers.
type IDatabaseProbe interface {
	Ping(ctx context.Context) error
}
