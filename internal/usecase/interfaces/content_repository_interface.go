package interfaces

//go:generate mockgen -source=content_repository_interface.go -destination=mocks/content_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"socialdots/internal/domain/entities"
)

// IContentRepository abstracts DynamoDB persistence for the site's content types.
//
// Lookups that find nothing return the zero value of T and a nil error.
type IContentRepository[T entities.Record] interface {
	Put(ctx context.Context, item T) (T, error)
	GetByID(ctx context.Context, id string) (T, error)
	GetBySlug(ctx context.Context, slug string) (T, error)
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) (bool, error)
}
