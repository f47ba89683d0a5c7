package posts

import (
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/infra/dberr"

	"gorm.io/gorm"
)

// FeedItem is a post joined with its author's username.
type FeedItem struct {
	ID          uint      `json:"id"`
	AdminID     uint      `json:"adminId"`
	Author      string    `json:"author"`
	TextContent string    `json:"textContent"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func Create(db *gorm.DB, adminID uint, text string, image *string, now time.Time) (Post, error) {
	text = strings.TrimSpace(text)
	if text == "" && image == nil {
		return Post{}, apperr.Validation("a post needs text or an image")
	}
	p := Post{AdminID: adminID, TextContent: text, Image: image, CreatedAt: now}
	if err := db.Create(&p).Error; err != nil {
		return Post{}, apperr.Persistence("posts.Create", err)
	}
	return p, nil
}

type feedRow struct {
	ID          uint
	AdminID     uint
	Username    *string
	TextContent string
	Image       *string
	CreatedAt   time.Time
}

// List returns the feed, newest first. Posts of deleted admins show the
// author as "Unknown".
func List(db *gorm.DB) ([]FeedItem, error) {
	var rows []feedRow
	err := db.Table("posts").
		Select("posts.id, posts.admin_id, admins.username, posts.text_content, posts.image, posts.created_at").
		Joins("LEFT JOIN admins ON admins.id = posts.admin_id").
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Persistence("posts.List", err)
	}

	out := make([]FeedItem, 0, len(rows))
	for _, r := range rows {
		author := "Unknown"
		if r.Username != nil {
			author = *r.Username
		}
		out = append(out, FeedItem{
			ID:          r.ID,
			AdminID:     r.AdminID,
			Author:      author,
			TextContent: r.TextContent,
			Image:       r.Image,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

// Delete removes a post and returns it so the caller can drop its image.
func Delete(db *gorm.DB, id uint) (Post, error) {
	var p Post
	if err := db.First(&p, id).Error; err != nil {
		if dberr.IsNotFound(err) {
			return Post{}, apperr.NotFound("Post")
		}
		return Post{}, apperr.Persistence("posts.Delete", err)
	}
	if err := db.Delete(&p).Error; err != nil {
		return Post{}, apperr.Persistence("posts.Delete", err)
	}
	return p, nil
}
