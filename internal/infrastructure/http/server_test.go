package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/taskhub/internal/application/auth"
	"github.com/rezkam/taskhub/internal/application/task"
	"github.com/rezkam/taskhub/internal/domain"
	"github.com/rezkam/taskhub/internal/infrastructure/http/handler"
	mw "github.com/rezkam/taskhub/internal/infrastructure/http/middleware"
	"github.com/rezkam/taskhub/internal/infrastructure/token"
)

// mockRepository serves canned search results for routing tests.
type mockRepository struct {
	capturedFilter domain.SearchFilter
	searchResult   *domain.SearchResult
	taskWithOwner  *domain.TaskWithOwner
}

func (m *mockRepository) SearchTasks(ctx context.Context, filter domain.SearchFilter, page domain.PageRequest) (*domain.SearchResult, error) {
	m.capturedFilter = filter
	if m.searchResult != nil {
		return m.searchResult, nil
	}
	return &domain.SearchResult{Rows: []domain.TaskSearchRow{}, Offset: page.Offset, Limit: page.Limit}, nil
}

func (m *mockRepository) FindTaskWithOwner(ctx context.Context, id int64) (*domain.TaskWithOwner, error) {
	if m.taskWithOwner == nil {
		return nil, domain.ErrTaskNotFound
	}
	return m.taskWithOwner, nil
}

type testServer struct {
	handler http.Handler
	codec   *token.Codec
	repo    *mockRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	codec, err := token.NewCodec(token.Config{
		Secret: []byte("test-secret-test-secret-test-sec"),
		Issuer: "taskhub",
		TTL:    time.Hour,
	})
	require.NoError(t, err)

	repo := &mockRepository{}
	svc := task.NewService(repo, task.Config{})
	authMW := mw.NewAuth(auth.NewGuard(codec), auth.NewPolicy())
	server := NewAPIServer(handler.NewServer(svc), authMW, ServerConfig{})

	return &testServer{handler: server.Handler(), codec: codec, repo: repo}
}

func (ts *testServer) bearer(t *testing.T, userID int64, role domain.Role) string {
	t.Helper()
	raw, err := ts.codec.Issue(userID, "user@example.com", role, "nick")
	require.NoError(t, err)
	return "Bearer " + raw
}

func (ts *testServer) do(t *testing.T, method, path, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthIsPublic(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthStatusMapping(t *testing.T) {
	ts := newTestServer(t)

	expiredCodec, err := token.NewCodec(token.Config{
		Secret: []byte("test-secret-test-secret-test-sec"),
		Issuer: "taskhub",
		TTL:    time.Nanosecond,
	})
	require.NoError(t, err)
	expiredRaw, err := expiredCodec.Issue(1, "user@example.com", domain.RoleUser, "nick")
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusBadRequest},
		{name: "garbage token", header: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "missing bearer prefix", header: "garbage", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer " + expiredRaw, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: ts.bearer(t, 1, domain.RoleUser), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/tasks/search", tt.header)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminRouteRoleEnforcement(t *testing.T) {
	ts := newTestServer(t)

	t.Run("user is forbidden", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/admin/whoami", ts.bearer(t, 1, domain.RoleUser))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin is allowed and sees own principal", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/admin/whoami", ts.bearer(t, 7, domain.RoleAdmin))
		require.Equal(t, http.StatusOK, rec.Code)

		var body handler.PrincipalResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(7), body.UserID)
		assert.Equal(t, "ADMIN", body.Role)
	})

	t.Run("no token is a bad request", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/admin/whoami", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSearchEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.repo.searchResult = &domain.SearchResult{
		Rows: []domain.TaskSearchRow{
			{Title: "Trip plan", CollaboratorCount: 2, CommentCount: 5},
			{Title: "Road Trip", CollaboratorCount: 0, CommentCount: 1},
		},
		TotalCount: 2,
		Offset:     0,
		Limit:      10,
	}

	rec := ts.do(t, http.MethodGet,
		"/tasks/search?keyword=trip&nickname=kim&start_date=2024-01-01&end_date=2024-01-31&page_size=10",
		ts.bearer(t, 1, domain.RoleUser))
	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.TotalCount)
	require.Len(t, body.Tasks, 2)
	assert.Equal(t, "Trip plan", body.Tasks[0].Title)
	assert.Equal(t, int64(2), body.Tasks[0].CollaboratorCount)

	// Query criteria reached the repository intact.
	require.NotNil(t, ts.repo.capturedFilter.Keyword)
	assert.Equal(t, "trip", *ts.repo.capturedFilter.Keyword)
	require.NotNil(t, ts.repo.capturedFilter.CreatedFrom)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *ts.repo.capturedFilter.CreatedFrom)
}

func TestSearchRejectsBadDate(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/tasks/search?start_date=January", ts.bearer(t, 1, domain.RoleUser))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTask(t *testing.T) {
	ts := newTestServer(t)

	t.Run("not found", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/tasks/404", ts.bearer(t, 1, domain.RoleUser))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("found with owner", func(t *testing.T) {
		ts.repo.taskWithOwner = &domain.TaskWithOwner{
			Task:  domain.Task{ID: 9, Title: "Trip plan"},
			Owner: &domain.User{ID: 3, Email: "kim@example.com", Nickname: "kim"},
		}

		rec := ts.do(t, http.MethodGet, "/tasks/9", ts.bearer(t, 1, domain.RoleUser))
		require.Equal(t, http.StatusOK, rec.Code)

		var body handler.TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int64(9), body.ID)
		require.NotNil(t, body.Owner)
		assert.Equal(t, "kim", body.Owner.Nickname)
	})

	t.Run("non-integer id", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/tasks/abc", ts.bearer(t, 1, domain.RoleUser))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
