package interfaces

//go:generate mockgen -source=token_repository_interface.go -destination=mocks/token_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"socialdots/internal/domain/entities"
)

// ITokenRepository stores OAuth credentials of external integrations, one per provider.
type ITokenRepository interface {
	Get(ctx context.Context, provider string) (entities.OAuthToken, error)
	Put(ctx context.Context, tok entities.OAuthToken) error
}
