package usecase

import (
	"context"

	"video-service/internal/videoservice/domain"

	"go.uber.org/zap"
)

// VideoService validates caller input and drives the repository
type VideoService struct {
	repo   VideoRepository
	logger *zap.Logger
}

// NewVideoService creates a new video service
func NewVideoService(repo VideoRepository, logger *zap.Logger) *VideoService {
	return &VideoService{
		repo:   repo,
		logger: logger,
	}
}

// CreateVideo validates a full field set and inserts a new record
func (s *VideoService) CreateVideo(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error) {
	if err := domain.ValidateCreate(fields); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	video, err := s.repo.Create(ctx, domain.NewVideo(id, fields))
	if err != nil {
		return nil, err
	}

	s.logger.Debug("video created", zap.Int64("id", video.ID))
	return video, nil
}

// GetVideo retrieves a record by id
func (s *VideoService) GetVideo(ctx context.Context, id int64) (*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// ListVideos returns every record; an empty store is domain.ErrVideoNotFound
func (s *VideoService) ListVideos(ctx context.Context) ([]*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// UpdateVideo applies the supplied fields to an existing record
func (s *VideoService) UpdateVideo(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error) {
	if err := domain.ValidateUpdate(fields); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	video, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("video updated",
		zap.Int64("id", video.ID),
		zap.Bool("name", fields.Name != nil),
		zap.Bool("views", fields.Views != nil),
		zap.Bool("likes", fields.Likes != nil),
	)
	return video, nil
}

// DeleteVideo removes a record and returns its last state
func (s *VideoService) DeleteVideo(ctx context.Context, id int64) (*domain.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	video, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("video deleted", zap.Int64("id", video.ID))
	return video, nil
}
