package admins

import "time"

type Admin struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_admins_username" json:"username"`
	Email          string    `json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ProfilePicture string    `gorm:"not null;default:'assets/avatar.png'" json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
