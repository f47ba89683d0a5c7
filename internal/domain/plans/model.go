package plans

import "time"

const (
	TypeWorkout = "Workout"
	TypeDiet    = "Diet"
)

// Plan is a workout or diet document assigned to a member by an admin.
// IsActive is the soft-delete flag; EndDate is informational.
type Plan struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MemberID   uint       `gorm:"not null;index" json:"memberId"`
	AssignerID uint       `gorm:"not null" json:"assignerId"`
	Type       string     `gorm:"type:varchar(20);not null" json:"type"`
	Title      string     `gorm:"not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	StartDate  time.Time  `gorm:"not null" json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	IsActive   bool       `gorm:"not null;index" json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func ValidType(t string) bool {
	return t == TypeWorkout || t == TypeDiet
}
