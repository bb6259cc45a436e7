package queue

import (
	"context"
	"errors"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const DefaultInlineAttempts = 3

// InlineDispatcher runs side effects in the calling goroutine with a bounded
// exponential backoff. The final error is logged and dropped.
type InlineDispatcher struct {
	runner          interfaces.ISideEffectRunner
	attempts        uint64
	initialInterval time.Duration
}

var _ interfaces.ISideEffectDispatcher = (*InlineDispatcher)(nil)

func NewInlineDispatcher(runner interfaces.ISideEffectRunner, attempts int, initialInterval time.Duration) *InlineDispatcher {
	if attempts < 1 {
		attempts = DefaultInlineAttempts
	}
	if initialInterval <= 0 {
		initialInterval = 200 * time.Millisecond
	}
	return &InlineDispatcher{runner: runner, attempts: uint64(attempts), initialInterval: initialInterval}
}

func (d *InlineDispatcher) Dispatch(ctx context.Context, effect entities.SideEffect) error {
	log := logrus.WithFields(logrus.Fields{"kind": effect.Kind, "order_id": effect.OrderID, "lead_id": effect.LeadID})

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = d.initialInterval
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, d.attempts-1), ctx)

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		err := d.runner.Run(ctx, effect)
		if errors.Is(err, interfaces.ErrUnknownSideEffect) {
			return backoff.Permanent(err)
		}
		if err != nil {
			log.WithError(err).WithField("attempt", attempt).Warn("[side-effect][inline] attempt failed")
		}
		return err
	}, policy)
	if err != nil {
		log.WithError(err).Error("[side-effect][inline] giving up")
		return nil
	}
	log.WithField("attempts", attempt).Debug("[side-effect][inline] done")
	return nil
}
