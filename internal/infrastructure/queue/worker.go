package queue

import (
	"context"
	"encoding/json"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func NewWorkerServer(opt asynq.RedisConnOpt, concurrency int) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{SideEffectQueue: 1},
		Logger:      logrus.StandardLogger(),
	})
}

// NewWorkerMux registers one handler per side-effect kind, all delegating to runner.
func NewWorkerMux(runner interfaces.ISideEffectRunner) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	for _, kind := range entities.SideEffectKinds() {
		mux.HandleFunc(TaskType(kind), handleSideEffect(runner))
	}
	return mux
}

func handleSideEffect(runner interfaces.ISideEffectRunner) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		var effect entities.SideEffect
		if err := json.Unmarshal(task.Payload(), &effect); err != nil {
			// A malformed payload never becomes valid, so don't retry it.
			return errors.Wrapf(asynq.SkipRetry, "decode %s: %v", task.Type(), err)
		}
		if err := runner.Run(ctx, effect); err != nil {
			if errors.Is(err, interfaces.ErrUnknownSideEffect) {
				return errors.Wrap(asynq.SkipRetry, err.Error())
			}
			logrus.WithError(err).WithField("kind", effect.Kind).Warn("[side-effect][worker] run failed")
			return err
		}
		return nil
	}
}
