package interfaces

//go:generate mockgen -source=lead_repository_interface.go -destination=mocks/lead_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"socialdots/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.LeadStatus, notes string) (entities.Lead, error)
}
