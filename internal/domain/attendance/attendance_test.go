package attendance

import (
	"testing"
	"time"

	"gym-backend/internal/domain/access"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func localTime(y int, mo time.Month, d, h, mi int) time.Time {
	return time.Date(y, mo, d, h, mi, 0, 0, time.Local)
}

func setup(t *testing.T) (*gorm.DB, members.Member) {
	db := testutil.NewDB(t, &members.Member{}, &Attendance{})
	m := members.Member{
		FullName:         "Kiran Shah",
		Email:            "kiran@example.com",
		Phone:            "9000000000",
		Password:         "x",
		SubscriptionPlan: "Monthly",
		ExpiryDate:       localTime(2024, 6, 1, 0, 0),
		JoiningDate:      localTime(2024, 5, 1, 0, 0),
		ProfilePicture:   members.DefaultProfilePicture,
	}
	require.NoError(t, db.Create(&m).Error)
	return db, m
}

func TestDayKeyAndBounds(t *testing.T) {
	at := localTime(2024, 5, 14, 23, 59)
	assert.Equal(t, "2024-05-14", DayKey(at))

	start, end := DayBounds(at)
	assert.Equal(t, localTime(2024, 5, 14, 0, 0), start)
	assert.Equal(t, localTime(2024, 5, 15, 0, 0), end)
}

func TestCheckInClock(t *testing.T) {
	assert.Equal(t, "6:05:00 AM", CheckInClock(localTime(2024, 5, 14, 6, 5)))
	assert.Equal(t, "6:30:00 PM", CheckInClock(localTime(2024, 5, 14, 18, 30)))
}

func TestMarkPresent_OncePerDay(t *testing.T) {
	db, m := setup(t)
	morning := localTime(2024, 5, 14, 7, 0)

	a, err := MarkPresent(db, m.ID, "", morning)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, a.Status)
	assert.Equal(t, "2024-05-14", a.Day)
	assert.Equal(t, "7:00:00 AM", a.CheckInTime)

	_, err = MarkPresent(db, m.ID, StatusPresent, localTime(2024, 5, 14, 19, 0))
	assert.ErrorIs(t, err, apperr.ErrAlreadyMarked)

	_, err = MarkPresent(db, m.ID, StatusPresent, localTime(2024, 5, 15, 0, 1))
	assert.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&Attendance{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestMarkPresent_Rejects(t *testing.T) {
	db, m := setup(t)

	_, err := MarkPresent(db, m.ID, "Late", localTime(2024, 5, 14, 7, 0))
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = MarkPresent(db, m.ID+100, StatusPresent, localTime(2024, 5, 14, 7, 0))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestHistoryFor(t *testing.T) {
	db, m := setup(t)
	for _, d := range []int{10, 12, 11} {
		_, err := MarkPresent(db, m.ID, StatusPresent, localTime(2024, 5, d, 8, 0))
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		who     access.Identity
		wantErr error
	}{
		{name: "self", who: access.Identity{UserID: m.ID, Role: access.RoleMember}},
		{name: "admin", who: access.Identity{UserID: 1, Role: access.RoleAdmin}},
		{name: "other member", who: access.Identity{UserID: m.ID + 1, Role: access.RoleMember}, wantErr: apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HistoryFor(db, m.ID, tt.who)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, []string{"2024-05-12", "2024-05-11", "2024-05-10"}, []string{got[0].Day, got[1].Day, got[2].Day})
		})
	}
}

func TestToday_KeepsOrphans(t *testing.T) {
	db, m := setup(t)
	now := localTime(2024, 5, 14, 9, 0)

	_, err := MarkPresent(db, m.ID, StatusPresent, now)
	require.NoError(t, err)
	_, err = MarkPresent(db, m.ID, StatusPresent, now.AddDate(0, 0, -1))
	require.NoError(t, err)

	// a check-in whose member has since been deleted
	require.NoError(t, db.Create(&Attendance{MemberID: 999, Day: DayKey(now), Date: now.Add(time.Minute), Status: StatusPresent}).Error)

	got, err := Today(db, now)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Unknown", got[0].Member.FullName)
	assert.Equal(t, "Kiran Shah", got[1].Member.FullName)
	assert.Equal(t, "kiran@example.com", got[1].Member.Email)
}

func TestCountByDay(t *testing.T) {
	db, m := setup(t)
	other := members.Member{FullName: "B", Email: "b@example.com", Phone: "1", Password: "x", SubscriptionPlan: "Monthly"}
	require.NoError(t, db.Create(&other).Error)

	for _, at := range []struct {
		id  uint
		day int
	}{{m.ID, 10}, {other.ID, 10}, {m.ID, 12}, {m.ID, 20}} {
		_, err := MarkPresent(db, at.id, StatusPresent, localTime(2024, 5, at.day, 8, 0))
		require.NoError(t, err)
	}

	counts, err := CountByDay(db, "2024-05-08", "2024-05-14")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2024-05-10": 2, "2024-05-12": 1}, counts)
}
