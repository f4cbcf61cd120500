package cached

import (
	"context"
	"fmt"
	"sync"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"

	"go.uber.org/zap"
)

const lockStripes = 64

// Compile-time interface check
var _ usecase.VideoRepository = (*CachedVideoRepository)(nil)

// CachedVideoRepository wraps a VideoRepository with a read-through cache.
// Cache fills and writes for one id run under the same stripe lock, so a
// read in this process never repopulates a value older than the store.
type CachedVideoRepository struct {
	repo   usecase.VideoRepository
	cache  VideoCache
	logger *zap.Logger
	locks  [lockStripes]sync.Mutex
}

// NewCachedVideoRepository creates a new cached repository wrapper. repo
// must be at least as durable as the cache; entries left by an earlier
// store would otherwise be served after the store has lost them.
func NewCachedVideoRepository(repo usecase.VideoRepository, cache VideoCache, logger *zap.Logger) *CachedVideoRepository {
	return &CachedVideoRepository{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (r *CachedVideoRepository) lock(id int64) func() {
	mu := &r.locks[uint64(id)%lockStripes]
	mu.Lock()
	return mu.Unlock
}

// evict drops any cached copy before a write. Failing here aborts the write,
// otherwise the cache could outlive the change.
func (r *CachedVideoRepository) evict(ctx context.Context, id int64) error {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		return fmt.Errorf("failed to invalidate cached video: %w", err)
	}
	return nil
}

func (r *CachedVideoRepository) store(ctx context.Context, v *domain.Video) {
	if err := r.cache.Set(ctx, v); err != nil {
		r.logger.Warn("failed to cache video", zap.Int64("id", v.ID), zap.Error(err))
	}
}

// Create persists a video and caches it.
func (r *CachedVideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	defer r.lock(v.ID)()

	video, err := r.repo.Create(ctx, v)
	if err != nil {
		return nil, err
	}

	r.store(ctx, video)
	return video, nil
}

// FindByID retrieves a video, checking the cache first.
func (r *CachedVideoRepository) FindByID(ctx context.Context, id int64) (*domain.Video, error) {
	defer r.lock(id)()

	if cached, err := r.cache.Get(ctx, id); err == nil && cached != nil {
		return cached, nil
	}

	video, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, video)
	return video, nil
}

// FindAll is not cached; it always reflects the underlying store.
func (r *CachedVideoRepository) FindAll(ctx context.Context) ([]*domain.Video, error) {
	return r.repo.FindAll(ctx)
}

// Update writes through to the store and refreshes the cache.
func (r *CachedVideoRepository) Update(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error) {
	defer r.lock(id)()

	if err := r.evict(ctx, id); err != nil {
		return nil, err
	}

	video, err := r.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	r.store(ctx, video)
	return video, nil
}

// Delete removes a video and invalidates the cache.
func (r *CachedVideoRepository) Delete(ctx context.Context, id int64) (*domain.Video, error) {
	defer r.lock(id)()

	if err := r.evict(ctx, id); err != nil {
		return nil, err
	}

	return r.repo.Delete(ctx, id)
}
