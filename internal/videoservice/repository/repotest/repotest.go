// Package repotest holds behaviour tests shared by every
// usecase.VideoRepository implementation.
package repotest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository. It is called once per subtest.
type Factory func(t *testing.T) usecase.VideoRepository

func strPtr(s string) *string { return &s }
func intPtr(n int64) *int64   { return &n }

// Run exercises the repository contract against newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("CreateThenFind_RoundTrip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		in := &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}

		created, err := repo.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, *in, *created)

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, *in, *found)
	})

	t.Run("Create_DuplicateID_ConflictWithoutOverwrite", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &domain.Video{ID: 1, Name: "B", Views: 99, Likes: 99})
		assert.ErrorIs(t, err, domain.ErrVideoConflict)

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, *found)
	})

	t.Run("FindByID_Missing_NotFound", func(t *testing.T) {
		repo := newRepo(t)

		found, err := repo.FindByID(context.Background(), 42)

		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
		assert.Nil(t, found)
	})

	t.Run("FindAll_EmptyStore_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.FindAll(ctx)
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)

		_, err = repo.Create(ctx, &domain.Video{ID: 5, Name: "E", Views: 0, Likes: 0})
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(5), all[0].ID)
	})

	t.Run("FindAll_ReturnsEveryRecord", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for id := int64(1); id <= 20; id++ {
			_, err := repo.Create(ctx, &domain.Video{ID: id, Name: "v", Views: id, Likes: id})
			require.NoError(t, err)
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 20)
		for i, v := range all {
			assert.Equal(t, int64(i+1), v.ID)
		}
	})

	t.Run("Update_SingleField_LeavesOthersUnchanged", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, 1, domain.VideoFields{Likes: intPtr(5)})
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 10, Likes: 5}, *updated)

		updated, err = repo.Update(ctx, 1, domain.VideoFields{Views: intPtr(11)})
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 11, Likes: 5}, *updated)

		updated, err = repo.Update(ctx, 1, domain.VideoFields{Name: strPtr("Z")})
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "Z", Views: 11, Likes: 5}, *updated)

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, *updated, *found)
	})

	t.Run("Update_ZeroValuesAreApplied", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, 1, domain.VideoFields{Views: intPtr(0), Likes: intPtr(0)})
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 0, Likes: 0}, *updated)
	})

	t.Run("Update_NoFields_IsNoOp", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, 1, domain.VideoFields{})
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, *updated)
	})

	t.Run("Update_Missing_NotFound", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Update(context.Background(), 1, domain.VideoFields{Name: strPtr("A")})

		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})

	t.Run("Delete_ReturnsSnapshot_ThenNotFound", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, *deleted)

		_, err = repo.FindByID(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)

		_, err = repo.Delete(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)

		_, err = repo.FindAll(ctx)
		assert.ErrorIs(t, err, domain.ErrVideoNotFound)
	})

	t.Run("Delete_FreesIDForReuse", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2})
		require.NoError(t, err)
		_, err = repo.Delete(ctx, 1)
		require.NoError(t, err)

		created, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "B", Views: 1, Likes: 1})
		require.NoError(t, err)
		assert.Equal(t, "B", created.Name)
	})

	t.Run("ReturnedRecordsAreDetached", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		in := &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}
		created, err := repo.Create(ctx, in)
		require.NoError(t, err)

		in.Name = "mutated"
		created.Views = 1000

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, *found)
	})

	t.Run("ConcurrentCreate_SameID_ExactlyOneWins", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		const workers = 16
		var wins, conflicts atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := repo.Create(ctx, &domain.Video{ID: 7, Name: "racer", Views: int64(n), Likes: 0})
				switch {
				case err == nil:
					wins.Add(1)
				case errors.Is(err, domain.ErrVideoConflict):
					conflicts.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, int32(1), wins.Load())
		assert.Equal(t, int32(workers-1), conflicts.Load())
	})

	t.Run("ConcurrentUpdates_DifferentFields_NoneLost", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()
		_, err := repo.Create(ctx, &domain.Video{ID: 1, Name: "A", Views: 0, Likes: 0})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, 1, domain.VideoFields{Views: intPtr(100)})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := repo.Update(ctx, 1, domain.VideoFields{Likes: intPtr(50)})
			assert.NoError(t, err)
		}()
		wg.Wait()

		found, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.Video{ID: 1, Name: "A", Views: 100, Likes: 50}, *found)
	})
}
