package analytics

import (
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/attendance"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"

	"gorm.io/gorm"
)

const FootfallDays = 7

type DashboardStats struct {
	TotalMembers   int64          `json:"totalMembers"`
	TotalRevenue   float64        `json:"totalRevenue"`
	ExpiringSoon   int            `json:"expiringSoon"`
	WeeklyFootfall []int          `json:"weeklyFootfall"`
	MembersPerPlan map[string]int `json:"membersPerPlan"`
}

// ComputeDashboardStats recomputes every figure from storage on each call.
func ComputeDashboardStats(db *gorm.DB, now time.Time, window time.Duration) (DashboardStats, error) {
	var stats DashboardStats

	if err := db.Model(&members.Member{}).Count(&stats.TotalMembers).Error; err != nil {
		return DashboardStats{}, apperr.Persistence("analytics.totalMembers", err)
	}

	revenue, err := billing.TotalRevenue(db)
	if err != nil {
		return DashboardStats{}, err
	}
	stats.TotalRevenue = revenue

	var expiries []time.Time
	if err := db.Model(&members.Member{}).Pluck("expiry_date", &expiries).Error; err != nil {
		return DashboardStats{}, apperr.Persistence("analytics.expiringSoon", err)
	}
	for _, e := range expiries {
		if members.IsExpiringSoon(e, window, now) {
			stats.ExpiringSoon++
		}
	}

	from := now.AddDate(0, 0, -(FootfallDays - 1))
	counts, err := attendance.CountByDay(db, attendance.DayKey(from), attendance.DayKey(now))
	if err != nil {
		return DashboardStats{}, err
	}
	stats.WeeklyFootfall = BuildWeeklyFootfall(counts, now)

	type planCount struct {
		Name  string
		Count int
	}
	var perPlan []planCount
	if err := db.Model(&members.Member{}).
		Select("subscription_plan AS name, COUNT(id) AS count").
		Group("subscription_plan").
		Scan(&perPlan).Error; err != nil {
		return DashboardStats{}, apperr.Persistence("analytics.membersPerPlan", err)
	}
	stats.MembersPerPlan = map[string]int{}
	for _, p := range perPlan {
		name := p.Name
		if name == "" {
			name = "No Plan"
		}
		stats.MembersPerPlan[name] += p.Count
	}

	return stats, nil
}

// BuildWeeklyFootfall lays day counts onto a fixed seven-day scaffold:
// index 0 is six days before now, index 6 is today. Missing days are 0.
func BuildWeeklyFootfall(counts map[string]int, now time.Time) []int {
	out := make([]int, FootfallDays)
	for i := range out {
		day := now.AddDate(0, 0, i-(FootfallDays-1))
		out[i] = counts[attendance.DayKey(day)]
	}
	return out
}
