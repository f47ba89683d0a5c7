package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/app/http/middleware"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/mail"
	"gym-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret"
	config.JWT_TTL_HOURS = 1
	config.UPLOAD_DIR = t.TempDir()
	database.DB = testutil.NewDB(t, database.Models()...)

	r := gin.New()
	RegisterRoutes(r, mail.LogMailer{})
	return r
}

func call(r http.Handler, method, path, token, body string) int {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRouteGuards(t *testing.T) {
	r := newRouter(t)

	now := time.Now()
	m := members.Member{FullName: "Asha", Email: "asha@example.com", Phone: "1", Password: "x", SubscriptionPlan: "Monthly", ExpiryDate: now.AddDate(0, 0, 30), JoiningDate: now}
	require.NoError(t, database.DB.Create(&m).Error)

	adminToken, err := middleware.IssueToken(1, "admin", "owner@example.com")
	require.NoError(t, err)
	memberToken, err := middleware.IssueToken(m.ID, "member", m.Email)
	require.NoError(t, err)
	ghostToken, err := middleware.IssueToken(999, "member", "ghost@example.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		body     string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantCode: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantCode: http.StatusOK},
		{name: "catalog is public", method: http.MethodGet, path: "/api/plans/catalog", wantCode: http.StatusOK},
		{name: "missing content", method: http.MethodGet, path: "/api/content/hero", wantCode: http.StatusNotFound},
		{name: "members need a token", method: http.MethodGet, path: "/api/admin/members", wantCode: http.StatusUnauthorized},
		{name: "members list as admin", method: http.MethodGet, path: "/api/admin/members", token: adminToken, wantCode: http.StatusOK},
		{name: "members list as member", method: http.MethodGet, path: "/api/admin/members", token: memberToken, wantCode: http.StatusForbidden},
		{name: "stats as admin", method: http.MethodGet, path: "/api/admin/stats", token: adminToken, wantCode: http.StatusOK},
		{name: "attendance mark is admin only", method: http.MethodPost, path: "/api/attendance/mark", token: memberToken, body: `{"memberId":1}`, wantCode: http.StatusForbidden},
		{name: "my plans as member", method: http.MethodGet, path: "/api/plans/my-plans", token: memberToken, wantCode: http.StatusOK},
		{name: "my plans as admin", method: http.MethodGet, path: "/api/plans/my-plans", token: adminToken, wantCode: http.StatusForbidden},
		{name: "deleted member token", method: http.MethodGet, path: "/api/member/profile", token: ghostToken, wantCode: http.StatusUnauthorized},
		{name: "own profile", method: http.MethodGet, path: "/api/member/profile", token: memberToken, wantCode: http.StatusOK},
		{name: "posts for members", method: http.MethodGet, path: "/api/posts", token: memberToken, wantCode: http.StatusOK},
		{name: "content edit is admin only", method: http.MethodPut, path: "/api/content/hero", token: memberToken, body: `{"title":"x"}`, wantCode: http.StatusForbidden},
		{name: "contact form", method: http.MethodPost, path: "/api/contact", body: `{"name":"A","phone":"1","message":"hi"}`, wantCode: http.StatusOK},
		{name: "google disabled", method: http.MethodGet, path: "/api/auth/google", wantCode: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, call(r, tt.method, tt.path, tt.token, tt.body))
		})
	}
}
