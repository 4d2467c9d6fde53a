package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hiddenspaces/backend/internal/domain/entities"
	"github.com/hiddenspaces/backend/internal/domain/providers"
	"github.com/hiddenspaces/backend/internal/domain/repositories"
)

// CachedSpaceAdapter wraps a SpaceRepository with read-through caching
// of single-space lookups. Writes invalidate the cached entry.
type CachedSpaceAdapter struct {
	adapter repositories.SpaceRepository
	cache   providers.CacheProvider
}

// NewCachedSpaceAdapter creates a new cached space adapter
func NewCachedSpaceAdapter(adapter repositories.SpaceRepository, cache providers.CacheProvider) *CachedSpaceAdapter {
	return &CachedSpaceAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// spaceByIDTTL is the cache lifetime in seconds for a single space.
const spaceByIDTTL = 120

func spaceCacheKey(id int64) string {
	return fmt.Sprintf("space:%d", id)
}

// GetByID retrieves a space by ID with caching
func (a *CachedSpaceAdapter) GetByID(ctx context.Context, id int64) (*entities.Space, error) {
	cacheKey := spaceCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var space entities.Space
		if err := json.Unmarshal(cached, &space); err == nil {
			return &space, nil
		}
		log.Warn().Int64("space_id", id).Msg("failed to unmarshal cached space")
	}

	space, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(space); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, spaceByIDTTL); err != nil {
				log.Warn().Int64("space_id", id).Err(err).Msg("failed to cache space")
			}
		}
	}()

	return space, nil
}

// Exists delegates to the wrapped adapter
func (a *CachedSpaceAdapter) Exists(ctx context.Context, id int64) (bool, error) {
	return a.adapter.Exists(ctx, id)
}

// CreateBatch delegates to the wrapped adapter
func (a *CachedSpaceAdapter) CreateBatch(ctx context.Context, spaces []*entities.Space) error {
	return a.adapter.CreateBatch(ctx, spaces)
}

// List delegates to the wrapped adapter; list results are not cached
func (a *CachedSpaceAdapter) List(ctx context.Context, filter repositories.SpaceFilter) ([]*entities.Space, error) {
	return a.adapter.List(ctx, filter)
}

// Update writes through and invalidates the cached entry
func (a *CachedSpaceAdapter) Update(ctx context.Context, space *entities.Space) error {
	if err := a.adapter.Update(ctx, space); err != nil {
		return err
	}
	a.Invalidate(ctx, space.ID)
	return nil
}

// ReplaceFeatures writes through and invalidates the cached entry
func (a *CachedSpaceAdapter) ReplaceFeatures(ctx context.Context, spaceID int64, featureIDs []int64) error {
	if err := a.adapter.ReplaceFeatures(ctx, spaceID, featureIDs); err != nil {
		return err
	}
	a.Invalidate(ctx, spaceID)
	return nil
}

// Delete writes through and invalidates the cached entry
func (a *CachedSpaceAdapter) Delete(ctx context.Context, id int64) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.Invalidate(ctx, id)
	return nil
}

// CategoryCounts delegates to the wrapped adapter
func (a *CachedSpaceAdapter) CategoryCounts(ctx context.Context) ([]repositories.CategoryCount, error) {
	return a.adapter.CategoryCounts(ctx)
}

// Invalidate drops the cached entry for a space. Callers that mutate a
// space's reviews outside this repository use it to keep reads fresh.
func (a *CachedSpaceAdapter) Invalidate(ctx context.Context, id int64) {
	if err := a.cache.Delete(ctx, spaceCacheKey(id)); err != nil {
		log.Warn().Int64("space_id", id).Err(err).Msg("failed to invalidate cached space")
	}
}
