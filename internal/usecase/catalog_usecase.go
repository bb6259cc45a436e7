package usecase

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"socialdots/internal/domain/entities"
	"socialdots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrSlugTaken      = errors.New("slug already used by another record")
	ErrInvalidRecord  = errors.New("invalid record")
)

// PrepareFunc normalises and validates item before it is stored. existing is the stored
// record being replaced, or the zero value for a new one. The result must carry an id.
type PrepareFunc[T entities.Record] func(item, existing T, now time.Time) (T, error)

// ICatalogUseCase is the admin CRUD of one content type.
type ICatalogUseCase[T entities.Record] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, item T) (T, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase[T entities.Record] struct {
	name       string
	repo       interfaces.IContentRepository[T]
	prepare    PrepareFunc[T]
	uniqueSlug bool
	cache      interfaces.ICache
	cacheKeys  []string
}

// CatalogOption configures a CatalogUseCase.
type CatalogOption[T entities.Record] func(*CatalogUseCase[T])

// WithUniqueSlug rejects writes whose natural key (the slug) belongs to another record.
func WithUniqueSlug[T entities.Record]() CatalogOption[T] {
	return func(u *CatalogUseCase[T]) { u.uniqueSlug = true }
}

// WithCacheInvalidation deletes keys from c after every successful write.
func WithCacheInvalidation[T entities.Record](c interfaces.ICache, keys ...string) CatalogOption[T] {
	return func(u *CatalogUseCase[T]) {
		u.cache = c
		u.cacheKeys = keys
	}
}

func NewCatalogUseCase[T entities.Record](name string, repo interfaces.IContentRepository[T], prepare PrepareFunc[T], opts ...CatalogOption[T]) *CatalogUseCase[T] {
	u := &CatalogUseCase[T]{name: name, repo: repo, prepare: prepare}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *CatalogUseCase[T]) List(ctx context.Context) ([]T, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrRecordNotFound
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}
	if item.RecordID() == "" {
		return zero, ErrRecordNotFound
	}
	return item, nil
}

// Create stores a new record. An item carrying the id of a stored record replaces it.
func (u *CatalogUseCase[T]) Create(ctx context.Context, item T) (T, error) {
	var existing T
	if id := item.RecordID(); id != "" {
		found, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return existing, err
		}
		existing = found
	}
	return u.save(ctx, item, existing)
}

func (u *CatalogUseCase[T]) Update(ctx context.Context, id string, item T) (T, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return existing, err
	}
	return u.save(ctx, item, existing)
}

func (u *CatalogUseCase[T]) Delete(ctx context.Context, id string) error {
	deleted, err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	logrus.WithFields(logrus.Fields{"type": u.name, "id": id}).Info("[catalog][usecase] deleted")
	u.invalidate(ctx)
	return nil
}

func (u *CatalogUseCase[T]) save(ctx context.Context, item, existing T) (T, error) {
	var zero T
	prepared, err := u.prepare(item, existing, time.Now().UTC())
	if err != nil {
		return zero, err
	}
	if prepared.RecordID() == "" {
		return zero, ErrInvalidRecord
	}

	if u.uniqueSlug {
		other, err := u.repo.GetBySlug(ctx, prepared.NaturalKey())
		if err != nil {
			return zero, err
		}
		if other.RecordID() != "" && other.RecordID() != prepared.RecordID() {
			return zero, ErrSlugTaken
		}
	}

	saved, err := u.repo.Put(ctx, prepared)
	if err != nil {
		return zero, err
	}
	logrus.WithFields(logrus.Fields{"type": u.name, "id": saved.RecordID()}).Info("[catalog][usecase] saved")
	u.invalidate(ctx)
	return saved, nil
}

func (u *CatalogUseCase[T]) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	for _, key := range u.cacheKeys {
		if err := u.cache.Delete(ctx, key); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("[catalog][cache] invalidation failed")
		}
	}
}
