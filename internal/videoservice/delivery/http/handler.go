package http

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/usecase"
	"video-service/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	maxBodyBytes = 1 << 20

	// statusClientClosedRequest is nginx's code for a request the client
	// abandoned before a response was ready
	statusClientClosedRequest = 499
)

// Handler handles HTTP requests for video operations
type Handler struct {
	service *usecase.VideoService
	logger  *zap.Logger
	db      *sql.DB // nil for the in-memory backend
}

// NewHandler creates a new Handler
func NewHandler(service *usecase.VideoService, logger *zap.Logger, db *sql.DB) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		db:      db,
	}
}

// ListVideos handles GET /videos
func (h *Handler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.service.ListVideos(r.Context())
	if err != nil {
		h.writeError(w, r, err, "There are no videos here")
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// GetVideo handles GET /video/{id}
func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	video, err := h.service.GetVideo(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "There is no video with id "+strconv.FormatInt(id, 10))
		return
	}

	writeJSON(w, http.StatusOK, video)
}

// CreateVideo handles PUT /video/{id}
func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	fields, err := decodeBody(w, r)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	video, err := h.service.CreateVideo(r.Context(), id, fields)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	writeJSON(w, http.StatusCreated, video)
}

// UpdateVideo handles PATCH /video/{id}
func (h *Handler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	fields, err := decodeBody(w, r)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	video, err := h.service.UpdateVideo(r.Context(), id, fields)
	if err != nil {
		h.writeError(w, r, err, "Video does not exist, cannot update")
		return
	}

	writeJSON(w, http.StatusOK, video)
}

// DeleteVideo handles DELETE /video/{id}
func (h *Handler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	// The body is parsed for well-formedness only; its values are ignored
	if _, err := decodeBody(w, r); err != nil {
		h.writeError(w, r, err, "")
		return
	}

	video, err := h.service.DeleteVideo(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "Video does not exist, cannot delete")
		return
	}

	writeJSON(w, http.StatusAccepted, video)
}

// videoID parses the {id} path segment as an unsigned decimal. Anything
// else, including a signed id like -1, matches no resource and is
// reported as 404.
func videoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		writeProblem(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeInvalidID,
			"Not Found",
			"Video id must be a non-negative integer: "+raw,
		))
		return 0, false
	}
	return int64(id), true
}

// decodeBody reads the field set from a JSON or form-encoded body. Query
// values fill in any field the body leaves out.
func decodeBody(w http.ResponseWriter, r *http.Request) (domain.VideoFields, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if isFormEncoded(r) {
		// r.Form lists body values ahead of query values
		if err := r.ParseForm(); err != nil {
			return domain.VideoFields{}, &domain.ValidationError{Field: "body", Reason: "must be form encoded"}
		}
		return domain.DecodeValues(r.Form)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return domain.VideoFields{}, &domain.ValidationError{Field: "body", Reason: "could not be read"}
	}
	fields, err := domain.DecodeFields(body)
	if err != nil {
		return domain.VideoFields{}, err
	}
	query, err := domain.DecodeValues(r.URL.Query())
	if err != nil {
		return domain.VideoFields{}, err
	}

	return domain.VideoFields{
		Name:  lo.CoalesceOrEmpty(fields.Name, query.Name),
		Views: lo.CoalesceOrEmpty(fields.Views, query.Views),
		Likes: lo.CoalesceOrEmpty(fields.Likes, query.Likes),
	}, nil
}

func isFormEncoded(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

// writeError maps a service outcome to a problem response. notFoundDetail
// is the message used for domain.ErrVideoNotFound.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundDetail string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblem(w, problemdetails.NewValidation(ve.Error(), []problemdetails.FieldError{
			{Field: ve.Field, Message: ve.Reason},
		}))

	case errors.Is(err, domain.ErrVideoNotFound):
		writeProblem(w, problemdetails.New(
			http.StatusNotFound,
			problemdetails.TypeNotFound,
			"Not Found",
			notFoundDetail,
		))

	case errors.Is(err, domain.ErrVideoConflict):
		writeProblem(w, problemdetails.New(
			http.StatusConflict,
			problemdetails.TypeConflict,
			"Conflict",
			"Video id already exists",
		))

	case errors.Is(err, context.Canceled):
		h.logger.Debug("request cancelled", zap.String("path", r.URL.Path))
		w.WriteHeader(statusClientClosedRequest)

	default:
		h.logger.Error("video request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeProblem(w, problemdetails.New(
			http.StatusInternalServerError,
			problemdetails.TypeInternalError,
			"Internal Server Error",
			"Internal server error",
		))
	}
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Healthz handles GET /healthz (liveness probe)
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz handles GET /readyz (readiness probe)
func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status: "unavailable",
				Reason: "database unavailable: " + err.Error(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "ready"})
}
