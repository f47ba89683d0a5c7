package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gym-backend/internal/domain/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxUploadBytes = 5 << 20

// PublicPrefix is the URL prefix uploads are served under.
const PublicPrefix = "uploads"

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store keeps uploaded images on local disk under Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media.NewStore: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// Save copies an uploaded image to disk under a random name and records it.
// It returns the public path, e.g. "uploads/3f0c...e1.png".
func (s *Store) Save(db *gorm.DB, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", apperr.Validation("file is required")
	}
	if fh.Size > MaxUploadBytes {
		return "", apperr.Validation("image must be at most %d MB", MaxUploadBytes>>20)
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Validation("cannot read upload")
	}
	defer src.Close()

	head := make([]byte, 512)
	n, _ := io.ReadFull(src, head)
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", apperr.Validation("unsupported image type %s", contentType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Persistence("media.Save", err)
	}

	id := uuid.NewString()
	name := id + ext
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", apperr.Persistence("media.Save", err)
	}
	written, err := io.Copy(dst, io.LimitReader(src, MaxUploadBytes+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst.Name())
		return "", apperr.Persistence("media.Save", err)
	}

	public := path.Join(PublicPrefix, name)
	img := Image{
		ID:           id,
		Path:         public,
		OriginalName: filepath.Base(fh.Filename),
		ContentType:  contentType,
		Size:         written,
	}
	if err := db.Create(&img).Error; err != nil {
		_ = os.Remove(dst.Name())
		return "", apperr.Persistence("media.Save", err)
	}
	return public, nil
}

// Remove deletes a stored upload. Paths outside the store, such as the
// default avatar, are ignored.
func (s *Store) Remove(db *gorm.DB, public string) error {
	name, ok := strings.CutPrefix(public, PublicPrefix+"/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return nil
	}
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
		return apperr.Persistence("media.Remove", err)
	}
	if err := db.Where("path = ?", public).Delete(&Image{}).Error; err != nil {
		return apperr.Persistence("media.Remove", err)
	}
	return nil
}
