package media

import "time"

// Image records a file accepted by the upload store.
type Image struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Path         string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"path"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `gorm:"type:varchar(100)" json:"contentType"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt"`
}
