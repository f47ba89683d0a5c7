package siteapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/domain/media"
	"gym-backend/internal/domain/site"
	"gym-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG
var pixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func setup(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	database.DB = testutil.NewDB(t, &site.SiteContent{}, &media.Image{})
	config.UPLOAD_DIR = t.TempDir()

	r := gin.New()
	r.GET("/content/:section", GetContent)
	r.PUT("/content/:section", func(c *gin.Context) { c.Set("user_id", uint(7)) }, UpdateContent)
	return r
}

func putJSON(r http.Handler, path string, body gin.H) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestContentRoundTrip(t *testing.T) {
	r := setup(t)

	w := get(r, "/content/hero")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Content not found")

	w = putJSON(r, "/content/Hero", gin.H{"title": "Train hard", "body": `<p onclick="x()">Hi</p>`, "imageUrl": "https://cdn.example.com/a.jpg"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = putJSON(r, "/content/hero", gin.H{"title": "Train harder"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = get(r, "/content/hero")
	require.Equal(t, http.StatusOK, w.Code)
	var sc site.SiteContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))
	assert.Equal(t, "Train harder", sc.Title)
	require.NotNil(t, sc.ImageURL)
	assert.Equal(t, "https://cdn.example.com/a.jpg", *sc.ImageURL)
	require.NotNil(t, sc.LastUpdatedBy)
	assert.EqualValues(t, 7, *sc.LastUpdatedBy)

	var n int64
	require.NoError(t, database.DB.Model(&site.SiteContent{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	w = putJSON(r, "/content/bad%20section!", gin.H{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContentImageUpload(t *testing.T) {
	r := setup(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "About us"))
	fw, err := mw.CreateFormFile("image", "about.png")
	require.NoError(t, err)
	_, err = fw.Write(pixel)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/content/about", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Content site.SiteContent `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "About us", resp.Content.Title)
	require.NotNil(t, resp.Content.ImageURL)
	assert.Contains(t, *resp.Content.ImageURL, "uploads/")
}
