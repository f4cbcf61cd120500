package cached

import (
	"context"
	"errors"
	"sync"
	"testing"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/repository/memory"
	"video-service/internal/videoservice/repository/repotest"
	"video-service/internal/videoservice/testutil/mocks"
	"video-service/internal/videoservice/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mapCache is an in-process VideoCache for tests.
type mapCache struct {
	mu            sync.Mutex
	videos        map[int64]domain.Video
	invalidateErr error
}

func newMapCache() *mapCache {
	return &mapCache{videos: make(map[int64]domain.Video)}
}

func (c *mapCache) Get(_ context.Context, id int64) (*domain.Video, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.videos[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (c *mapCache) Set(_ context.Context, v *domain.Video) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.videos[v.ID] = *v
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.invalidateErr != nil {
		return c.invalidateErr
	}
	delete(c.videos, id)
	return nil
}

func TestCachedVideoRepository_Contract_NoopCache(t *testing.T) {
	repotest.Run(t, func(t *testing.T) usecase.VideoRepository {
		return NewCachedVideoRepository(memory.NewVideoRepository(), NewRedisVideoCache(nil, zap.NewNop()), zap.NewNop())
	})
}

func TestCachedVideoRepository_Contract_MapCache(t *testing.T) {
	repotest.Run(t, func(t *testing.T) usecase.VideoRepository {
		return NewCachedVideoRepository(memory.NewVideoRepository(), newMapCache(), zap.NewNop())
	})
}

func TestCachedVideoRepository_FindByID_CacheHitSkipsStore(t *testing.T) {
	mockRepo := mocks.NewMockVideoRepository(t)
	cache := newMapCache()
	repo := NewCachedVideoRepository(mockRepo, cache, zap.NewNop())
	ctx := context.Background()

	mockRepo.EXPECT().FindByID(mock.Anything, int64(1)).
		Return(&domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, nil).Once()

	first, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestCachedVideoRepository_Update_RefreshesCache(t *testing.T) {
	cache := newMapCache()
	repo := NewCachedVideoRepository(memory.NewVideoRepository(), cache, zap.NewNop())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
	require.NoError(t, err)

	likes := int64(5)
	_, err = repo.Update(ctx, 1, domain.VideoFields{Likes: &likes})
	require.NoError(t, err)

	cached, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, int64(5), cached.Likes)
	assert.Equal(t, int64(10), cached.Views)
}

func TestCachedVideoRepository_Delete_EvictsCache(t *testing.T) {
	cache := newMapCache()
	repo := NewCachedVideoRepository(memory.NewVideoRepository(), cache, zap.NewNop())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
	require.NoError(t, err)
	_, err = repo.FindByID(ctx, 1)
	require.NoError(t, err)

	_, err = repo.Delete(ctx, 1)
	require.NoError(t, err)

	cached, _ := cache.Get(ctx, 1)
	assert.Nil(t, cached)

	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrVideoNotFound)
}

func TestCachedVideoRepository_InvalidateFailure_AbortsWrite(t *testing.T) {
	cache := newMapCache()
	inner := memory.NewVideoRepository()
	repo := NewCachedVideoRepository(inner, cache, zap.NewNop())
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
	require.NoError(t, err)

	cache.invalidateErr = errors.New("redis down")

	name := "B"
	_, err = repo.Update(ctx, 1, domain.VideoFields{Name: &name})
	assert.Error(t, err)
	_, err = repo.Delete(ctx, 1)
	assert.Error(t, err)

	stored, err := inner.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Name)
}
