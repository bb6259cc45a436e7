package usecase

//go:generate mockgen -source=health_usecase.go -destination=../adapter/http/handlers/mocks/health_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

type HealthStatus string

const (
	HealthStatusHealthy       HealthStatus = "healthy"
	HealthStatusUnhealthy     HealthStatus = "unhealthy"
	HealthStatusNotConfigured HealthStatus = "not_configured"
)

const healthProbeTimeout = 5 * time.Second

type HealthReport struct {
	Database  HealthStatus `json:"database"`
	ERP       HealthStatus `json:"frappe"`
	AIAgent   HealthStatus `json:"ai_agent"`
	Timestamp time.Time    `json:"timestamp"`
}

// Healthy reports whether the site can serve requests. Integrations never fail the check.
func (r HealthReport) Healthy() bool {
	return r.Database == HealthStatusHealthy
}

type IHealthUseCase interface {
	Check(ctx context.Context) HealthReport
}

type HealthUseCase struct {
	db    interfaces.IDatabaseProbe
	erp   interfaces.IERPClient
	agent interfaces.IAgentClient
}

var _ IHealthUseCase = (*HealthUseCase)(nil)

func NewHealthUseCase(db interfaces.IDatabaseProbe, erp interfaces.IERPClient, agent interfaces.IAgentClient) *HealthUseCase {
	return &HealthUseCase{db: db, erp: erp, agent: agent}
}

func (u *HealthUseCase) Check(ctx context.Context) HealthReport {
	return HealthReport{
		Database:  probe(ctx, "database", u.db.Ping),
		ERP:       probe(ctx, "erp", u.erp.Ping),
		AIAgent:   probe(ctx, "ai_agent", u.agent.Health),
		Timestamp: time.Now().UTC(),
	}
}

func probe(ctx context.Context, name string, ping func(context.Context) error) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	err := ping(ctx)
	switch {
	case err == nil:
		return HealthStatusHealthy
	case errors.Is(err, interfaces.ErrNotConfigured):
		return HealthStatusNotConfigured
	}
	logrus.WithError(err).WithField("probe", name).Warn("[health][usecase] probe failed")
	return HealthStatusUnhealthy
}
