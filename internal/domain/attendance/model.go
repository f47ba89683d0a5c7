package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance is one check-in. Day is the server-local calendar day of Date
// and, together with MemberID, unique.
type Attendance struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MemberID    uint      `gorm:"not null;uniqueIndex:idx_attendance_member_day" json:"memberId"`
	Day         string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_member_day;index" json:"day"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Status      string    `gorm:"type:varchar(10);not null;default:'Present'" json:"status"`
	CheckInTime string    `gorm:"type:varchar(20)" json:"checkInTime"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Attendance) TableName() string {
	return "attendance"
}

func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}
