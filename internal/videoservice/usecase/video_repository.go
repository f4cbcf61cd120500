package usecase

import (
	"context"

	"video-service/internal/videoservice/domain"
)

// VideoRepository is the authoritative id to record mapping. Every method
// is atomic with respect to a single id.
type VideoRepository interface {
	// Create inserts v, or returns domain.ErrVideoConflict leaving the
	// existing record untouched.
	Create(ctx context.Context, v *domain.Video) (*domain.Video, error)
	FindByID(ctx context.Context, id int64) (*domain.Video, error)
	// FindAll returns domain.ErrVideoNotFound when the store is empty.
	FindAll(ctx context.Context) ([]*domain.Video, error)
	Update(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error)
	// Delete returns the snapshot of the removed record.
	Delete(ctx context.Context, id int64) (*domain.Video, error)
}
