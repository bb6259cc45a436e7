package interfaces

//go:generate mockgen -source=dispatcher_interface.go -destination=mocks/dispatcher_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"socialdots/internal/domain/entities"
)

// ISideEffectDispatcher hands best-effort side effects to an executor. A dispatch error
// never undoes the operation that produced the effect.
type ISideEffectDispatcher interface {
	Dispatch(ctx context.Context, effect entities.SideEffect) error
}

// ISideEffectRunner executes one side effect. Returning an error asks for a retry.
type ISideEffectRunner interface {
	Run(ctx context.Context, effect entities.SideEffect) error
}

// ICache is a read-through cache for public listings.
type ICache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
