package memory

import (
	"context"
	"math"
	"sync"
	"testing"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/repository/repotest"
	"video-service/internal/videoservice/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepository_Contract(t *testing.T) {
	repotest.Run(t, func(t *testing.T) usecase.VideoRepository {
		return NewVideoRepository()
	})
}

func TestVideoRepository_BoundaryIDs(t *testing.T) {
	repo := NewVideoRepository()
	ctx := context.Background()

	for _, id := range []int64{0, math.MaxInt64} {
		_, err := repo.Create(ctx, &domain.Video{ID: id, Name: "edge", Views: 1, Likes: 1})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, found.ID)
	}
}

func TestVideoRepository_ParallelDistinctIDs(t *testing.T) {
	repo := NewVideoRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for id := int64(0); id < 200; id++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := repo.Create(ctx, &domain.Video{ID: id, Name: "v", Views: id, Likes: 0})
			assert.NoError(t, err)
			likes := id * 2
			_, err = repo.Update(ctx, id, domain.VideoFields{Likes: &likes})
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 200)
	for _, v := range all {
		assert.Equal(t, v.ID, v.Views)
		assert.Equal(t, v.ID*2, v.Likes)
	}
}
