package site

import (
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/infra/dberr"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var bodyPolicy = bluemonday.UGCPolicy()

type UpsertInput struct {
	Title    string
	Subtitle string
	Body     string
	// ImageURL replaces the stored image only when set.
	ImageURL *string
}

func Get(db *gorm.DB, section string) (SiteContent, error) {
	key, err := NormalizeSection(section)
	if err != nil {
		return SiteContent{}, err
	}
	var sc SiteContent
	if err := db.Where("section = ?", key).First(&sc).Error; err != nil {
		if dberr.IsNotFound(err) {
			return SiteContent{}, apperr.NotFound("Content")
		}
		return SiteContent{}, apperr.Persistence("site.Get", err)
	}
	return sc, nil
}

// Upsert creates the section on first write and overwrites it afterwards.
func Upsert(db *gorm.DB, section string, in UpsertInput, adminID uint, now time.Time) (SiteContent, error) {
	key, err := NormalizeSection(section)
	if err != nil {
		return SiteContent{}, err
	}

	sc := SiteContent{
		Section:       key,
		Title:         strings.TrimSpace(in.Title),
		Subtitle:      strings.TrimSpace(in.Subtitle),
		Body:          bodyPolicy.Sanitize(in.Body),
		ImageURL:      in.ImageURL,
		LastUpdatedBy: &adminID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	cols := []string{"title", "subtitle", "body", "last_updated_by", "updated_at"}
	if in.ImageURL != nil {
		cols = append(cols, "image_url")
	}

	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&sc).Error
	if err != nil {
		return SiteContent{}, apperr.Persistence("site.Upsert", err)
	}
	return Get(db, key)
}
