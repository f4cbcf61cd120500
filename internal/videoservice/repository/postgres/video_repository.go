package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"

	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key
const uniqueViolation = "23505"

// VideoRepository implements the usecase.VideoRepository interface on PostgreSQL
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new PostgreSQL-backed video repository
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Ensure VideoRepository implements usecase.VideoRepository at compile time
var _ usecase.VideoRepository = (*VideoRepository)(nil)

func scanVideo(row interface{ Scan(dest ...any) error }) (*domain.Video, error) {
	var v domain.Video
	if err := row.Scan(&v.ID, &v.Name, &v.Views, &v.Likes); err != nil {
		return nil, err
	}
	return &v, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrVideoNotFound
	}
	return err
}

// Create inserts a new video record
func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	video, err := scanVideo(r.db.QueryRowContext(ctx, createVideo, v.ID, v.Name, v.Views, v.Likes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoConflict
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrVideoConflict
		}
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

// FindByID retrieves a video by its id
func (r *VideoRepository) FindByID(ctx context.Context, id int64) (*domain.Video, error) {
	video, err := scanVideo(r.db.QueryRowContext(ctx, findVideoByID, id))
	if err != nil {
		return nil, notFound(err)
	}
	return video, nil
}

// FindAll retrieves every video ordered by id
func (r *VideoRepository) FindAll(ctx context.Context) ([]*domain.Video, error) {
	rows, err := r.db.QueryContext(ctx, findAllVideos)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(videos) == 0 {
		return nil, domain.ErrVideoNotFound
	}
	return videos, nil
}

// Update overwrites the supplied fields of an existing video
func (r *VideoRepository) Update(ctx context.Context, id int64, fields domain.VideoFields) (*domain.Video, error) {
	var name sql.NullString
	if fields.Name != nil {
		name = sql.NullString{String: *fields.Name, Valid: true}
	}
	var views, likes sql.NullInt64
	if fields.Views != nil {
		views = sql.NullInt64{Int64: *fields.Views, Valid: true}
	}
	if fields.Likes != nil {
		likes = sql.NullInt64{Int64: *fields.Likes, Valid: true}
	}

	video, err := scanVideo(r.db.QueryRowContext(ctx, updateVideo, name, views, likes, id))
	if err != nil {
		return nil, notFound(err)
	}
	return video, nil
}

// Delete removes a video and returns the deleted row
func (r *VideoRepository) Delete(ctx context.Context, id int64) (*domain.Video, error) {
	video, err := scanVideo(r.db.QueryRowContext(ctx, deleteVideo, id))
	if err != nil {
		return nil, notFound(err)
	}
	return video, nil
}
