package attendance

import (
	"time"

	"gym-backend/internal/domain/access"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/dberr"

	"gorm.io/gorm"
)

// MarkPresent records today's attendance for a member. A second mark on the
// same day fails with ErrAlreadyMarked; the unique (member_id, day) index
// settles concurrent requests.
func MarkPresent(db *gorm.DB, memberID uint, status string, now time.Time) (Attendance, error) {
	if status == "" {
		status = StatusPresent
	}
	if !ValidStatus(status) {
		return Attendance{}, apperr.Validation("status must be Present or Absent")
	}

	ok, err := members.Exists(db, memberID)
	if err != nil {
		return Attendance{}, err
	}
	if !ok {
		return Attendance{}, apperr.NotFound("Member")
	}

	a := Attendance{
		MemberID:    memberID,
		Day:         DayKey(now),
		Date:        now,
		Status:      status,
		CheckInTime: CheckInClock(now),
	}
	if err := db.Create(&a).Error; err != nil {
		if dberr.IsUniqueViolation(err) {
			return Attendance{}, apperr.ErrAlreadyMarked
		}
		return Attendance{}, apperr.Persistence("attendance.MarkPresent", err)
	}
	return a, nil
}

// HistoryFor lists a member's attendance, most recent first.
func HistoryFor(db *gorm.DB, memberID uint, who access.Identity) ([]Attendance, error) {
	if !access.CanViewMember(who, memberID) {
		return nil, apperr.ErrForbidden
	}
	var out []Attendance
	if err := db.Where("member_id = ?", memberID).
		Order("date DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, apperr.Persistence("attendance.HistoryFor", err)
	}
	return out, nil
}

type MemberSummary struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

type TodayEntry struct {
	ID          uint          `json:"id"`
	MemberID    uint          `json:"memberId"`
	Date        time.Time     `json:"date"`
	Status      string        `json:"status"`
	CheckInTime string        `json:"checkInTime"`
	Member      MemberSummary `json:"member"`
}

type todayRow struct {
	ID             uint
	MemberID       uint
	Date           time.Time
	Status         string
	CheckInTime    string
	FullName       *string
	Email          *string
	ProfilePicture *string
}

// Today lists every check-in of the current server-local day with a summary
// of the member. Rows whose member was deleted show as "Unknown".
func Today(db *gorm.DB, now time.Time) ([]TodayEntry, error) {
	var rows []todayRow
	err := db.Table("attendance").
		Select("attendance.id, attendance.member_id, attendance.date, attendance.status, attendance.check_in_time, " +
			"members.full_name, members.email, members.profile_picture").
		Joins("LEFT JOIN members ON members.id = attendance.member_id").
		Where("attendance.day = ?", DayKey(now)).
		Order("attendance.date DESC, attendance.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Persistence("attendance.Today", err)
	}

	out := make([]TodayEntry, 0, len(rows))
	for _, r := range rows {
		summary := MemberSummary{FullName: "Unknown", ProfilePicture: members.DefaultProfilePicture}
		if r.FullName != nil {
			summary.FullName = *r.FullName
		}
		if r.Email != nil {
			summary.Email = *r.Email
		}
		if r.ProfilePicture != nil && *r.ProfilePicture != "" {
			summary.ProfilePicture = *r.ProfilePicture
		}
		out = append(out, TodayEntry{
			ID:          r.ID,
			MemberID:    r.MemberID,
			Date:        r.Date,
			Status:      r.Status,
			CheckInTime: r.CheckInTime,
			Member:      summary,
		})
	}
	return out, nil
}

// CountByDay counts attendance records per day key in [fromDay, toDay].
func CountByDay(db *gorm.DB, fromDay, toDay string) (map[string]int, error) {
	type dayCount struct {
		Day   string
		Count int
	}
	var rows []dayCount
	err := db.Model(&Attendance{}).
		Select("day, COUNT(*) AS count").
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Persistence("attendance.CountByDay", err)
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Day] = r.Count
	}
	return counts, nil
}
