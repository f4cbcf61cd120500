package memory

import (
	"context"
	"sort"
	"sync"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"

	"github.com/samber/lo"
)

const shardCount = 16

type shard struct {
	mu     sync.RWMutex
	videos map[int64]*domain.Video
}

// VideoRepository keeps records in process memory. Each id hashes to one
// shard, so operations on different ids rarely contend while the
// check-then-act of a single id runs under one lock.
type VideoRepository struct {
	shards [shardCount]*shard
}

// Ensure VideoRepository implements usecase.VideoRepository at compile time
var _ usecase.VideoRepository = (*VideoRepository)(nil)

// NewVideoRepository creates an empty in-memory repository
func NewVideoRepository() *VideoRepository {
	r := &VideoRepository{}
	for i := range r.shards {
		r.shards[i] = &shard{videos: make(map[int64]*domain.Video)}
	}
	return r
}

func (r *VideoRepository) shardFor(id int64) *shard {
	return r.shards[uint64(id)%shardCount]
}

// Create inserts a record unless the id is taken
func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	s := r.shardFor(v.ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.videos[v.ID]; exists {
		return nil, domain.ErrVideoConflict
	}

	s.videos[v.ID] = v.Clone()
	return v.Clone(), nil
}

// FindByID returns a copy of the stored record
func (r *VideoRepository) FindByID(ctx context.Context, id int64) (*domain.Video, error) {
	s := r.shardFor(id)
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.videos[id]
	if !exists {
		return nil, domain.ErrVideoNotFound
	}
	return v.Clone(), nil
}

// FindAll snapshots every shard in turn and returns records sorted by id
func (r *VideoRepository) FindAll(ctx context.Context) ([]*domain.Video, error) {
	var all []*domain.Video
	for _, s := range r.shards {
		s.mu.RLock()
		all = append(all, lo.Map(lo.Values(s.videos), func(v *domain.Video, _ int) *domain.Video {
			return v.Clone()
		})...)
		s.mu.RUnlock()
	}

	if len(all) == 0 {
		return nil, domain.ErrVideoNotFound
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

// Update applies the supplied fields to the stored record
func (r *VideoRepository) Update(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error) {
	s := r.shardFor(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.videos[id]
	if !exists {
		return nil, domain.ErrVideoNotFound
	}

	v.Apply(fields)
	return v.Clone(), nil
}

// Delete removes the record and returns its last state
func (r *VideoRepository) Delete(ctx context.Context, id int64) (*domain.Video, error) {
	s := r.shardFor(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.videos[id]
	if !exists {
		return nil, domain.ErrVideoNotFound
	}

	delete(s.videos, id)
	return v, nil
}
