package site

import "time"

// SiteContent is the single editable record behind a public page section.
type SiteContent struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Section       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_site_contents_section" json:"section"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	Body          string    `gorm:"type:text" json:"body"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	LastUpdatedBy *uint     `json:"lastUpdatedBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
