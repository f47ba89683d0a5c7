package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/app/http/middleware"
	"gym-backend/internal/domain/admins"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/lib/password"
	"gym-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	password.Cost = bcrypt.MinCost
	config.JWT_SECRET = "test-secret"
	config.JWT_TTL_HOURS = 1
	config.GOOGLE_CLIENT_ID = "client-id"
	config.GOOGLE_CLIENT_SECRET = "client-secret"
	config.GOOGLE_REDIRECT_URL = "http://localhost:8080/api/auth/google/callback"
	os.Exit(m.Run())
}

func setup(t *testing.T) (*gin.Engine, members.Member) {
	database.DB = testutil.NewDB(t, &members.Member{}, &billing.Payment{}, &admins.Admin{})
	_, err := admins.Seed(database.DB, "owner", "secret1", "owner@example.com")
	require.NoError(t, err)

	cat, err := members.LoadCatalog("")
	require.NoError(t, err)
	m, err := members.Enroll(database.DB, cat, members.EnrollInput{
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Phone:           "9876543210",
		Plan:            "Monthly",
		DefaultPassword: "123456",
	}, time.Now())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/auth/login", Login)
	r.POST("/auth/change-password", middleware.AuthMiddleware(), ChangePassword)
	r.GET("/auth/google", GoogleStart)
	r.GET("/auth/google/callback", GoogleCallback)
	return r, m
}

func post(r http.Handler, path, token string, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	r, _ := setup(t)

	tests := []struct {
		name     string
		body     gin.H
		wantCode int
		wantRole string
	}{
		{name: "admin by username", body: gin.H{"username": "owner", "password": "secret1"}, wantCode: http.StatusOK, wantRole: "admin"},
		{name: "member by email", body: gin.H{"email": "ASHA@example.com", "password": "123456"}, wantCode: http.StatusOK, wantRole: "member"},
		{name: "wrong admin password", body: gin.H{"username": "owner", "password": "nope"}, wantCode: http.StatusUnauthorized},
		{name: "unknown member", body: gin.H{"email": "ghost@example.com", "password": "123456"}, wantCode: http.StatusUnauthorized},
		{name: "no identifier", body: gin.H{"password": "123456"}, wantCode: http.StatusBadRequest},
		{name: "no password", body: gin.H{"email": "asha@example.com"}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(r, "/auth/login", "", tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantRole == "" {
				return
			}
			var resp struct {
				Token string `json:"token"`
				Role  string `json:"role"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, tt.wantRole, resp.Role)
		})
	}
}

func TestChangePassword(t *testing.T) {
	r, m := setup(t)
	token, err := middleware.IssueToken(m.ID, "member", m.Email)
	require.NoError(t, err)

	w := post(r, "/auth/change-password", token, gin.H{"oldPassword": "wrong", "newPassword": "newpass1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/auth/change-password", token, gin.H{"oldPassword": "123456", "newPassword": "abc"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(r, "/auth/change-password", token, gin.H{"oldPassword": "123456", "newPassword": "newpass1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = post(r, "/auth/login", "", gin.H{"email": "asha@example.com", "password": "newpass1"})
	assert.Equal(t, http.StatusOK, w.Code)

	adminToken, err := middleware.IssueToken(1, "admin", "owner@example.com")
	require.NoError(t, err)
	w = post(r, "/auth/change-password", adminToken, gin.H{"oldPassword": "secret1", "newPassword": "secret2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = post(r, "/auth/login", "", gin.H{"username": "owner", "password": "secret2"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGoogleStart(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google", nil))
	require.Equal(t, http.StatusFound, w.Code)

	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "accounts.google.com", loc.Host)
	assert.Equal(t, "client-id", loc.Query().Get("client_id"))

	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	assert.True(t, strings.Contains(w.Header().Get("Set-Cookie"), stateCookie+"="+state))
}

func TestGoogleCallbackRejectsBadState(t *testing.T) {
	r, _ := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?state=abc&code=xyz", nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "different"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid oauth state")
}
