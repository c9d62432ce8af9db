package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"elaundry/internal/entities"
	apperrors "elaundry/pkg/errors"
	"elaundry/pkg/types"
)

const branchesCacheKey = "branches:all"

// CachedBranchRepository keeps the whole catalog in the cache and answers
// list and lookup queries from it. The catalog is small and read on every
// page view, so it is cached as one entry.
type CachedBranchRepository struct {
	next   BranchRepositoryInterface
	cache  CacheRepositoryInterface
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedBranchRepository(next BranchRepositoryInterface, cache CacheRepositoryInterface, ttl time.Duration, logger *zap.Logger) BranchRepositoryInterface {
	return &CachedBranchRepository{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (r *CachedBranchRepository) GetBranches(ctx context.Context, filter types.Filter) ([]entities.Branch, uint64, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, 0, err
	}
	list, total := applyListParams(all, filter)
	return list, total, nil
}

func (r *CachedBranchRepository) FindBranch(ctx context.Context, id entities.BranchID) (*entities.Branch, error) {
	all, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := findIn(all, id)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return b, nil
}

// Invalidate drops the cached catalog.
func (r *CachedBranchRepository) Invalidate(ctx context.Context) error {
	return r.cache.Del(ctx, branchesCacheKey)
}

func (r *CachedBranchRepository) all(ctx context.Context) ([]entities.Branch, error) {
	raw, err := r.cache.Get(ctx, branchesCacheKey)
	if err == nil {
		var branches []entities.Branch
		decodeErr := json.Unmarshal([]byte(raw), &branches)
		if decodeErr == nil {
			return branches, nil
		}
		r.logger.Warn("corrupt branch cache entry, reloading", zap.Error(decodeErr))
	} else if !errors.Is(err, ErrCacheMiss) {
		r.logger.Warn("branch cache unavailable, reading source", zap.Error(err))
	}

	branches, _, err := r.next.GetBranches(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(branches)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, branchesCacheKey, payload, r.ttl); err != nil {
		r.logger.Warn("could not cache branches", zap.Error(err))
	}
	return branches, nil
}
