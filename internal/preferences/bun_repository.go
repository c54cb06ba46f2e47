package preferences

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	cache "github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const preferenceNamespace = "nav_preference"

// BunRepository implements Repository on bun with optional caching.
type BunRepository struct {
	repo         repository.Repository[*NavPreference]
	cacheService cache.CacheService
	cachePrefix  string
}

// NewBunRepository creates a preference repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache creates a preference repository with caching
// services.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewNavPreferenceRepository(db)
	var svc cache.CacheService
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
		svc = cacheService
	}
	prefix := ""
	if svc != nil {
		prefix = preferenceNamespace + cache.KeySeparator
	}
	return &BunRepository{
		repo:         base,
		cacheService: svc,
		cachePrefix:  prefix,
	}
}

func (r *BunRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*NavPreference, error) {
	record, err := r.repo.GetByIdentifier(ctx, userID.String())
	if err != nil {
		return nil, mapRepositoryError(err, userID.String())
	}
	return record, nil
}

// Create inserts a new row. When the unique user_id constraint trips because
// a row appeared between read and write, the caller gets ErrPreferenceExists
// and is expected to retry as an update.
func (r *BunRepository) Create(ctx context.Context, pref *NavPreference) (*NavPreference, error) {
	record, err := r.repo.Create(ctx, pref)
	if err != nil {
		if _, lookupErr := r.repo.GetByIdentifier(ctx, pref.UserID.String()); lookupErr == nil {
			return nil, ErrPreferenceExists
		}
		return nil, fmt.Errorf("nav_preference repository error: %w", err)
	}
	return record, nil
}

func (r *BunRepository) Update(ctx context.Context, pref *NavPreference) (*NavPreference, error) {
	record, err := r.repo.Update(ctx, pref)
	if err != nil {
		return nil, mapRepositoryError(err, pref.UserID.String())
	}
	return record, nil
}

func (r *BunRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	record, err := r.repo.GetByIdentifier(ctx, userID.String())
	if err != nil {
		return mapRepositoryError(err, userID.String())
	}
	if err := r.repo.Delete(ctx, record); err != nil {
		return mapRepositoryError(err, userID.String())
	}
	return r.InvalidateCache(ctx)
}

func (r *BunRepository) InvalidateCache(ctx context.Context) error {
	if r.cacheService == nil || r.cachePrefix == "" {
		return nil
	}
	return r.cacheService.DeleteByPrefix(ctx, r.cachePrefix)
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: "nav_preference", Key: key}
	}

	return fmt.Errorf("nav_preference repository error: %w", err)
}
