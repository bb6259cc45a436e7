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

const (
	SideEffectQueue = "side_effects"
	taskTypePrefix  = "side_effect:"
)

func TaskType(kind entities.SideEffectKind) string {
	return taskTypePrefix + string(kind)
}

// AsynqDispatcher enqueues side effects on Redis for the workers command.
type AsynqDispatcher struct {
	client   *asynq.Client
	maxRetry int
}

var _ interfaces.ISideEffectDispatcher = (*AsynqDispatcher)(nil)

func NewAsynqDispatcher(opt asynq.RedisConnOpt, maxRetry int) *AsynqDispatcher {
	return &AsynqDispatcher{client: asynq.NewClient(opt), maxRetry: maxRetry}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, effect entities.SideEffect) error {
	payload, err := json.Marshal(effect)
	if err != nil {
		return errors.Wrap(err, "marshal side effect")
	}

	task := asynq.NewTask(TaskType(effect.Kind), payload, asynq.Queue(SideEffectQueue), asynq.MaxRetry(d.maxRetry))
	info, err := d.client.EnqueueContext(ctx, task)
	if err != nil {
		logrus.WithError(err).WithField("kind", effect.Kind).Error("[side-effect][asynq] enqueue failed")
		return errors.Wrap(err, "enqueue side effect")
	}
	logrus.WithFields(logrus.Fields{"kind": effect.Kind, "task_id": info.ID}).Info("[side-effect][asynq] enqueued")
	return nil
}

func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}

// ParseRedisURL converts REDIS_URL into asynq connection options.
func ParseRedisURL(url string) (asynq.RedisConnOpt, error) {
	opt, err := asynq.ParseRedisURI(url)
	if err != nil {
		return nil, errors.Wrap(err, "parse REDIS_URL")
	}
	return opt, nil
}
