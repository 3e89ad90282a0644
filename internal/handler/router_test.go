package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/school-backoffice-api/internal/middleware"
	"github.com/noah-isme/school-backoffice-api/internal/models"
	"github.com/noah-isme/school-backoffice-api/internal/repository"
	"github.com/noah-isme/school-backoffice-api/internal/service"
)

type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Code       string             `json:"code"`
	Pagination *models.Pagination `json:"pagination"`
}

type auditSpy struct {
	mu      sync.Mutex
	entries []models.AuditLog
}

func (a *auditSpy) Record(_ context.Context, entry models.AuditLog) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	return nil
}

type testServer struct {
	router *gin.Engine
	tokens *service.TokenService
	audit  *auditSpy
}

func newTestServer(t *testing.T, authEnabled bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	resources := service.NewResources(store, service.NewValidator(), zap.NewNop())
	tokens := service.NewTokenService(service.TokenConfig{Secret: "test-secret", Issuer: "school-backoffice", Expiration: time.Hour})
	audit := &auditSpy{}

	router := NewRouter(RouterConfig{
		APIPrefix: "/api",
		Auth:      middleware.AuthConfig{Enabled: authEnabled, CookieName: "token"},
	}, Dependencies{
		Resources: resources,
		Holidays:  service.NewHolidayService(resources.Holidays, zap.NewNop()),
		Tokens:    tokens,
		Audit:     audit,
		Store:     store,
		Logger:    zap.NewNop(),
	})
	return &testServer{router: router, tokens: tokens, audit: audit}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func createdID(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var data struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	require.NotEmpty(t, data.ID)
	return data.ID
}

func TestResourceLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": "Six", "numericName": 6}, "")
	id := createdID(t, rec)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "class created", env.Message)

	rec = srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": "six"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "DUPLICATE", env.Code)

	rec = srv.do(t, http.MethodGet, "/api/classes/"+id, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/classes/"+id, map[string]any{"description": "Senior"}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"description":"Senior"`)

	rec = srv.do(t, http.MethodPatch, "/api/classes/"+id+"/toggle-status", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decodeEnvelope(t, rec)
	assert.Equal(t, "class deactivated", env.Message)
	assert.JSONEq(t, `{"isActive":false}`, string(env.Data))

	rec = srv.do(t, http.MethodDelete, "/api/classes/"+id, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "class deleted", decodeEnvelope(t, rec).Message)
}

func TestErrorStatusesOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/api/classes/not-an-id", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeEnvelope(t, rec).Code)

	rec = srv.do(t, http.MethodGet, "/api/classes/6f1d8a84-61c4-4c0e-9b8e-0d2f5b8e4a11", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Code)

	rec = srv.do(t, http.MethodPost, "/api/classes", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
	assert.Equal(t, "name is a required field", env.Message)

	req := httptest.NewRequest(http.MethodPost, "/api/classes", strings.NewReader("{not json"))
	raw := httptest.NewRecorder()
	srv.router.ServeHTTP(raw, req)
	assert.Equal(t, http.StatusBadRequest, raw.Code)

	rec = srv.do(t, http.MethodGet, "/api/classes?page=0", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPaginationOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)
	for i, name := range []string{"Six", "Seven", "Eight"} {
		createdID(t, srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": name, "numericName": 6 + i}, ""))
	}

	rec := srv.do(t, http.MethodGet, "/api/classes?page=2&limit=2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.CurrentPage)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.Equal(t, 3, env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.ItemsPerPage)

	var items []models.Class
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Eight", items[0].Name)
}

func TestExportCSVOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)
	createdID(t, srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": "Six", "numericName": 6}, ""))

	rec := srv.do(t, http.MethodGet, "/api/classes/export", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="classes-`)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Numeric Name,Description,Active", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "Six,6,"))
}

func TestHolidayCheckOverHTTP(t *testing.T) {
	srv := newTestServer(t, false)
	sessionID := createdID(t, srv.do(t, http.MethodPost, "/api/sessions", map[string]any{
		"name": "2024", "startDate": "2024-01-01", "endDate": "2024-12-31", "isCurrent": true,
	}, ""))
	createdID(t, srv.do(t, http.MethodPost, "/api/holidays", map[string]any{
		"title":     "Winter Break",
		"sessionId": sessionID,
		"dates":     []any{map[string]any{"fromDate": "2024-12-20", "toDate": "2024-12-31"}},
	}, ""))

	rec := srv.do(t, http.MethodGet, "/api/holidays/check/2024-12-25", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var check struct {
		IsHoliday bool `json:"isHoliday"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &check))
	assert.True(t, check.IsHoliday)

	rec = srv.do(t, http.MethodGet, "/api/holidays/month/2024/12", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Winter Break")

	rec = srv.do(t, http.MethodGet, "/api/holidays/month/2024/13", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWritesRequireTokenWhenAuthEnabled(t *testing.T) {
	srv := newTestServer(t, true)

	rec := srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": "Six"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, rec).Code)

	rec = srv.do(t, http.MethodGet, "/api/classes", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code, "reads stay public")

	token, _, err := srv.tokens.Issue("user-1", models.RoleStaff, "Clerk")
	require.NoError(t, err)
	createdID(t, srv.do(t, http.MethodPost, "/api/classes", map[string]any{"name": "Six"}, token))

	srv.audit.mu.Lock()
	defer srv.audit.mu.Unlock()
	require.Len(t, srv.audit.entries, 1)
	entry := srv.audit.entries[0]
	assert.Equal(t, "classes", entry.Resource)
	assert.Equal(t, http.StatusCreated, entry.Status)
	assert.Equal(t, "user-1", entry.ActorID)
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t, false)

	rec := srv.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = srv.do(t, http.MethodGet, "/ready", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ready"`)
}
