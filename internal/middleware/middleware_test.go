package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-backoffice-api/internal/models"
	appErrors "github.com/noah-isme/school-backoffice-api/pkg/errors"
	"github.com/noah-isme/school-backoffice-api/pkg/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubTokens map[string]*models.Claims

func (s stubTokens) ValidateToken(token string) (*models.Claims, error) {
	if claims, ok := s[token]; ok {
		return claims, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

var tokens = stubTokens{
	"admin-token": {UserID: "u-1", Role: models.RoleAdmin},
	"odd-token":   {UserID: "u-2", Role: models.Role("guest")},
}

func protectedRouter(cfg AuthConfig) *gin.Engine {
	r := gin.New()
	r.POST("/api/classes", JWT(tokens, cfg), RequireRoles(cfg.Enabled, models.RoleAdmin, models.RoleStaff), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestJWTAcceptsBearerAndCookie(t *testing.T) {
	r := protectedRouter(AuthConfig{Enabled: true, CookieName: "token"})

	req := httptest.NewRequest(http.MethodPost, "/api/classes", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/classes", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "admin-token"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestJWTRejectsMissingOrBadTokens(t *testing.T) {
	r := protectedRouter(AuthConfig{Enabled: true, CookieName: "token"})

	cases := map[string]string{
		"missing":   "",
		"malformed": "Token admin-token",
		"unknown":   "Bearer nope",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/classes", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestRequireRolesForbidsUnknownRole(t *testing.T) {
	r := protectedRouter(AuthConfig{Enabled: true})

	req := httptest.NewRequest(http.MethodPost, "/api/classes", nil)
	req.Header.Set("Authorization", "Bearer odd-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthDisabledLetsRequestsThrough(t *testing.T) {
	r := protectedRouter(AuthConfig{Enabled: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/classes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

type recordingAudit struct {
	mu      sync.Mutex
	entries []models.AuditLog
	err     error
}

func (r *recordingAudit) Record(_ context.Context, entry models.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return r.err
}

func TestAuditRecordsSuccessfulMutations(t *testing.T) {
	recorder := &recordingAudit{err: errors.New("store down")}
	r := gin.New()
	r.Use(Audit(recorder))
	r.PUT("/api/bank-accounts/:id", func(c *gin.Context) {
		c.Set(ContextUserKey, &models.Claims{UserID: "u-1", Role: models.RoleStaff})
		c.Status(http.StatusOK)
	})
	r.DELETE("/api/bank-accounts/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/api/bank-accounts/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, method := range []string{http.MethodPut, http.MethodDelete, http.MethodGet} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(method, "/api/bank-accounts/abc", nil))
		if method == http.MethodPut {
			assert.Equal(t, http.StatusOK, w.Code, "audit failures do not change the response")
		}
	}

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "bank-accounts", entry.Resource)
	assert.Equal(t, "abc", entry.ResourceID)
	assert.Equal(t, "u-1", entry.ActorID)
	assert.Equal(t, models.RoleStaff, entry.ActorRole)
	assert.Equal(t, http.StatusOK, entry.Status)
}

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	keys     []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (ratelimit.Decision, error) {
	s.keys = append(s.keys, key)
	return s.decision, s.err
}

func limitedRouter(l Limiter) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(l, nil))
	r.POST("/api/classes", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.GET("/api/classes", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: false, ResetIn: 1500 * time.Millisecond}}
	r := limitedRouter(limiter)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/classes", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "2", w.Header().Get("Retry-After"))
	require.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], ":POST:/api/classes")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/classes", nil))
	assert.Equal(t, http.StatusOK, w.Code, "reads are not limited")
	assert.Len(t, limiter.keys, 1)
}

func TestRateLimitFailsOpen(t *testing.T) {
	r := limitedRouter(&stubLimiter{err: errors.New("redis down")})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/classes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
}

type countingObserver struct {
	paths []string
}

func (o *countingObserver) ObserveHTTPRequest(_ string, path string, _ int, _ time.Duration) {
	o.paths = append(o.paths, path)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	observer := &countingObserver{}
	r := gin.New()
	r.Use(Metrics(observer))
	r.GET("/api/classes/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/classes/1", "/api/classes/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	assert.Equal(t, []string{"/api/classes/:id", "/api/classes/:id", "unmatched"}, observer.paths)
}
