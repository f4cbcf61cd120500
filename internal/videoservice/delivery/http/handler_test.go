package http_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httphandler "video-service/internal/videoservice/delivery/http"
	"video-service/internal/videoservice/domain"
	"video-service/internal/videoservice/testutil/mocks"
	"video-service/internal/videoservice/usecase"
	"video-service/pkg/problemdetails"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// setupTestHandler creates a handler with mocked dependencies for testing
func setupTestHandler(t *testing.T) (*httphandler.Handler, *mocks.MockVideoRepository) {
	mockRepo := mocks.NewMockVideoRepository(t)
	service := usecase.NewVideoService(mockRepo, zap.NewNop())
	return httphandler.NewHandler(service, zap.NewNop(), nil), mockRepo
}

// newRequest builds a request with the chi {id} param already resolved
func newRequest(method, id, body string) *http.Request {
	req := httptest.NewRequest(method, "/video/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// newFormRequest builds a form-encoded request; target may carry a query string
func newFormRequest(method, id, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeProblem(t *testing.T, rr *httptest.ResponseRecorder) problemdetails.ProblemDetail {
	t.Helper()
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	var problem problemdetails.ProblemDetail
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&problem))
	return problem
}

// TestCreateVideo_ValidRequest_Returns201 verifies successful creation
func TestCreateVideo_ValidRequest_Returns201(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)
	created := &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}

	mockRepo.EXPECT().Create(mock.Anything, created).Return(created, nil)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newRequest(http.MethodPut, "1", `{"name":"A","views":10,"likes":2}`))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1,"name":"A","views":10,"likes":2}`, rr.Body.String())
}

// TestCreateVideo_FormBody_Returns201 verifies form-encoded counts are parsed as integers
func TestCreateVideo_FormBody_Returns201(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)
	created := &domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}

	mockRepo.EXPECT().Create(mock.Anything, created).Return(created, nil)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newFormRequest(http.MethodPut, "1", "/video/1", "name=A&views=10&likes=2"))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"A","views":10,"likes":2}`, rr.Body.String())
}

// TestCreateVideo_FormBodyBadCount_Returns400 verifies form counts keep per-field errors
func TestCreateVideo_FormBodyBadCount_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newFormRequest(http.MethodPut, "1", "/video/1", "name=A&views=ten&likes=2"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "views", problem.Errors[0].Field)
	assert.Equal(t, "must be an integer", problem.Errors[0].Message)
}

// TestUpdateVideo_QueryValues_FillMissingFields verifies query values complete a JSON body
func TestUpdateVideo_QueryValues_FillMissingFields(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)
	likes, views := int64(5), int64(3)

	mockRepo.EXPECT().Update(mock.Anything, int64(1), domain.VideoFields{Views: &views, Likes: &likes}).
		Return(&domain.Video{ID: 1, Name: "A", Views: 3, Likes: 5}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/video/1?views=3&likes=99", strings.NewReader(`{"likes":5}`))
	req.Header.Set("Content-Type", "application/json")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", "1")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	handler.UpdateVideo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestUpdateVideo_FormBodyWinsOverQuery verifies body values take precedence
func TestUpdateVideo_FormBodyWinsOverQuery(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)
	views := int64(7)

	mockRepo.EXPECT().Update(mock.Anything, int64(1), domain.VideoFields{Views: &views}).
		Return(&domain.Video{ID: 1, Name: "A", Views: 7, Likes: 2}, nil)

	rr := httptest.NewRecorder()
	handler.UpdateVideo(rr, newFormRequest(http.MethodPatch, "1", "/video/1?views=1", "views=7"))

	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestCreateVideo_MissingField_Returns400 verifies required fields
func TestCreateVideo_MissingField_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newRequest(http.MethodPut, "1", `{"name":"A","likes":2}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "views", problem.Errors[0].Field)
	assert.Equal(t, "is required", problem.Errors[0].Message)
}

// TestCreateVideo_WrongType_Returns400 verifies type checking
func TestCreateVideo_WrongType_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newRequest(http.MethodPut, "1", `{"name":"A","views":"many","likes":2}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	problem := decodeProblem(t, rr)
	require.Len(t, problem.Errors, 1)
	assert.Equal(t, "views", problem.Errors[0].Field)
}

// TestCreateVideo_Conflict_Returns409 verifies duplicate id handling
func TestCreateVideo_Conflict_Returns409(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrVideoConflict)

	rr := httptest.NewRecorder()
	handler.CreateVideo(rr, newRequest(http.MethodPut, "1", `{"name":"A","views":10,"likes":2}`))

	assert.Equal(t, http.StatusConflict, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Equal(t, "Video id already exists", problem.Detail)
}

// TestGetVideo_NonIntegerID_Returns404 verifies id parsing
func TestGetVideo_NonIntegerID_Returns404(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.GetVideo(rr, newRequest(http.MethodGet, "abc", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// TestGetVideo_SignedID_Returns404 verifies only unsigned decimal ids are routed
func TestGetVideo_SignedID_Returns404(t *testing.T) {
	handler, _ := setupTestHandler(t)

	for _, id := range []string{"-1", "+1", "9223372036854775808"} {
		rr := httptest.NewRecorder()
		handler.GetVideo(rr, newRequest(http.MethodGet, id, ""))

		assert.Equal(t, http.StatusNotFound, rr.Code, id)
		assert.True(t, strings.HasSuffix(decodeProblem(t, rr).Type, problemdetails.TypeInvalidID), id)
	}
}

// TestGetVideo_CancelledRequest_Returns499 verifies an abandoned request still gets a status
func TestGetVideo_CancelledRequest_Returns499(t *testing.T) {
	handler, _ := setupTestHandler(t)
	req := newRequest(http.MethodGet, "1", "")
	ctx, cancel := context.WithCancel(req.Context())
	cancel()

	rr := httptest.NewRecorder()
	handler.GetVideo(rr, req.WithContext(ctx))

	assert.Equal(t, 499, rr.Code)
	assert.Empty(t, rr.Body.String())
}

// TestGetVideo_NotFound_Returns404 verifies lookup miss
func TestGetVideo_NotFound_Returns404(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().FindByID(mock.Anything, int64(9)).Return(nil, domain.ErrVideoNotFound)

	rr := httptest.NewRecorder()
	handler.GetVideo(rr, newRequest(http.MethodGet, "9", ""))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Equal(t, "There is no video with id 9", problem.Detail)
}

// TestUpdateVideo_EmptyBody_Returns200 verifies a no-op patch is accepted
func TestUpdateVideo_EmptyBody_Returns200(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().Update(mock.Anything, int64(1), domain.VideoFields{}).
		Return(&domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, nil)

	rr := httptest.NewRecorder()
	handler.UpdateVideo(rr, newRequest(http.MethodPatch, "1", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
}

// TestUpdateVideo_Missing_Returns404 verifies update of an absent id
func TestUpdateVideo_Missing_Returns404(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().Update(mock.Anything, int64(1), mock.Anything).Return(nil, domain.ErrVideoNotFound)

	rr := httptest.NewRecorder()
	handler.UpdateVideo(rr, newRequest(http.MethodPatch, "1", `{"likes":5}`))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Equal(t, "Video does not exist, cannot update", problem.Detail)
}

// TestDeleteVideo_BodyIgnored_Returns202 verifies body values never reach the store
func TestDeleteVideo_BodyIgnored_Returns202(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().Delete(mock.Anything, int64(1)).
		Return(&domain.Video{ID: 1, Name: "A", Views: 10, Likes: 2}, nil)

	rr := httptest.NewRecorder()
	handler.DeleteVideo(rr, newRequest(http.MethodDelete, "1", `{"name":"ignored","views":1}`))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"id":1,"name":"A","views":10,"likes":2}`, rr.Body.String())
}

// TestDeleteVideo_MalformedBody_Returns400 verifies the body is still type-checked
func TestDeleteVideo_MalformedBody_Returns400(t *testing.T) {
	handler, _ := setupTestHandler(t)

	rr := httptest.NewRecorder()
	handler.DeleteVideo(rr, newRequest(http.MethodDelete, "1", `{"likes":"x"}`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestListVideos_RepositoryFailure_Returns500 verifies unexpected errors are hidden
func TestListVideos_RepositoryFailure_Returns500(t *testing.T) {
	handler, mockRepo := setupTestHandler(t)

	mockRepo.EXPECT().FindAll(mock.Anything).Return(nil, errors.New("disk on fire"))

	rr := httptest.NewRecorder()
	handler.ListVideos(rr, httptest.NewRequest(http.MethodGet, "/videos", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	problem := decodeProblem(t, rr)
	assert.Equal(t, "Internal server error", problem.Detail)
}

// TestReadyz_WithDatabase_ReturnsReady verifies the readiness probe
func TestReadyz_WithDatabase_ReturnsReady(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	service := usecase.NewVideoService(mocks.NewMockVideoRepository(t), zap.NewNop())
	handler := httphandler.NewHandler(service, zap.NewNop(), db)

	rr := httptest.NewRecorder()
	handler.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var response httphandler.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&response))
	assert.Equal(t, "ready", response.Status)
}

// TestReadyz_ClosedDatabase_Returns503 verifies an unreachable database fails readiness
func TestReadyz_ClosedDatabase_Returns503(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.Close()

	service := usecase.NewVideoService(mocks.NewMockVideoRepository(t), zap.NewNop())
	handler := httphandler.NewHandler(service, zap.NewNop(), db)

	rr := httptest.NewRecorder()
	handler.Readyz(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
