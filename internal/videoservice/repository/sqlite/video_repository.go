package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"
)

// VideoRepository implements the usecase.VideoRepository interface on SQLite.
// Every operation is a single statement, so no id is ever observed half-written.
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new SQLite-backed video repository
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Ensure VideoRepository implements usecase.VideoRepository at compile time
var _ usecase.VideoRepository = (*VideoRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*domain.Video, error) {
	var v domain.Video
	if err := row.Scan(&v.ID, &v.Name, &v.Views, &v.Likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

// Create inserts a new video record
func (r *VideoRepository) Create(ctx context.Context, v *domain.Video) (*domain.Video, error) {
	video, err := scanVideo(r.db.QueryRowContext(ctx, createVideo, v.ID, v.Name, v.Views, v.Likes))
	if err != nil {
		// SQLite reports primary key violations as "UNIQUE constraint failed"
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, domain.ErrVideoConflict
		}
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

// FindByID retrieves a video by its id
func (r *VideoRepository) FindByID(ctx context.Context, id int64) (*domain.Video, error) {
	return scanVideo(r.db.QueryRowContext(ctx, findVideoByID, id))
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
	return scanVideo(r.db.QueryRowContext(ctx, updateVideo,
		nullString(fields.Name),
		nullInt64(fields.Views),
		nullInt64(fields.Likes),
		id,
	))
}

// Delete removes a video and returns the deleted row
func (r *VideoRepository) Delete(ctx context.Context, id int64) (*domain.Video, error) {
	return scanVideo(r.db.QueryRowContext(ctx, deleteVideo, id))
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}
