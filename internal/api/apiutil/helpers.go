// Package apiutil holds request helpers shared by the HTTP handlers.
package apiutil

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gym-backend/config"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/media"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ParseID reads a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, apperr.Validation("invalid %s", name)
	}
	return uint(v), nil
}

// SaveUpload stores the first present multipart file among fields and
// returns its public path, or nil when the request carried no file.
func SaveUpload(c *gin.Context, db *gorm.DB, fields ...string) (*string, error) {
	for _, field := range fields {
		fh, err := c.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			continue
		}
		if err != nil {
			return nil, apperr.Validation("cannot read uploaded file")
		}

		store, err := media.NewStore(uploadDir())
		if err != nil {
			return nil, apperr.Persistence("apiutil.SaveUpload", err)
		}
		path, err := store.Save(db, fh)
		if err != nil {
			return nil, err
		}
		return &path, nil
	}
	return nil, nil
}

// RemoveUpload drops a previously stored upload, ignoring default assets.
func RemoveUpload(db *gorm.DB, path string) error {
	return (&media.Store{Dir: uploadDir()}).Remove(db, path)
}

func uploadDir() string {
	if config.UPLOAD_DIR == "" {
		return "uploads"
	}
	return config.UPLOAD_DIR
}

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD, which is
// read as the start of that server-local day. Empty input yields nil.
func ParseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, apperr.Validation("%s must be YYYY-MM-DD or RFC 3339", field)
	}
	return &t, nil
}
