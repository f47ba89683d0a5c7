package members

import "time"

const DefaultProfilePicture = "assets/avatar.png"

type Member struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	FullName         string    `gorm:"not null" json:"fullName"`
	Phone            string    `gorm:"not null" json:"phone"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_members_email" json:"email"`
	Age              int       `json:"age"`
	Gender           string    `gorm:"type:varchar(20)" json:"gender"`
	Address          string    `json:"address"`
	Password         string    `gorm:"not null" json:"-"`
	GoogleSub        *string   `gorm:"type:varchar(255);uniqueIndex:idx_members_google_sub" json:"-"`
	SubscriptionPlan string    `gorm:"type:varchar(64);not null;index" json:"subscriptionPlan"`
	ExpiryDate       time.Time `gorm:"not null;index" json:"expiryDate"`
	JoiningDate      time.Time `gorm:"not null" json:"joiningDate"`
	ProfilePicture   string    `gorm:"not null;default:'assets/avatar.png'" json:"profilePicture"`

	// Version guards subscription read-modify-write cycles.
	Version int `gorm:"not null;default:1" json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
