package members

import (
	"math"
	"time"

	"gym-backend/internal/domain/access"
)

const dayMillis = 24 * 60 * 60 * 1000

// ExpiryFor returns the expiry of a subscription to plan starting at from.
func ExpiryFor(c Catalog, plan string, from time.Time) (time.Time, error) {
	days, err := c.DurationFor(plan)
	if err != nil {
		return time.Time{}, err
	}
	return from.AddDate(0, 0, days), nil
}

// RemainingDays is ceil((expiry - asOf) / 1 day) on millisecond resolution.
// Zero or negative means the subscription has run out.
func RemainingDays(expiry, asOf time.Time) int {
	ms := expiry.Sub(asOf).Milliseconds()
	return int(math.Ceil(float64(ms) / dayMillis))
}

// IsExpiringSoon reports asOf <= expiry <= asOf+window.
func IsExpiringSoon(expiry time.Time, window time.Duration, asOf time.Time) bool {
	return !expiry.Before(asOf) && !expiry.After(asOf.Add(window))
}

// View is a member with the fields derived from the wall clock.
type View struct {
	Member
	RemainingDays int                    `json:"remainingDays"`
	Status        access.MembershipState `json:"status"`
}

func NewView(m Member, window time.Duration, now time.Time) View {
	return View{
		Member:        m,
		RemainingDays: RemainingDays(m.ExpiryDate, now),
		Status:        access.StateOf(m.ExpiryDate, window, now),
	}
}
