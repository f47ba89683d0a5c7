package posts

import "time"

// Post is an announcement published by an admin to every member.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminID     uint      `gorm:"not null;index" json:"adminId"`
	TextContent string    `gorm:"type:text" json:"textContent"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}
