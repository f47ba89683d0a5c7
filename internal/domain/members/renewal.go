package members

import (
	"errors"
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/billing"

	"gorm.io/gorm"
)

// Renewal is a paid online subscription renewal.
type Renewal struct {
	MemberID  uint
	Plan      string
	Amount    float64
	SessionID string
}

// ApplyRenewal books the payment and extends the subscription by the plan's
// duration in one transaction. A session that was already booked is reported
// with applied=false and no error.
func ApplyRenewal(db *gorm.DB, cat Catalog, r Renewal, now time.Time) (m Member, applied bool, err error) {
	r.SessionID = strings.TrimSpace(r.SessionID)
	if r.SessionID == "" {
		return Member{}, false, apperr.Validation("checkout session id is required")
	}
	days, err := cat.DurationFor(r.Plan)
	if err != nil {
		return Member{}, false, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		seen, err := billing.HasSession(tx, r.SessionID)
		if err != nil {
			return err
		}
		if seen {
			return billing.ErrDuplicateSession
		}

		sid := r.SessionID
		if err := billing.Record(tx, &billing.Payment{
			MemberID:        r.MemberID,
			Amount:          r.Amount,
			Date:            now,
			Remarks:         "Renewal - " + r.Plan,
			Source:          billing.SourceStripe,
			StripeSessionID: &sid,
		}, now); err != nil {
			return err
		}

		m, err = ExtendSubscription(tx, cat, r.MemberID, ExtendInput{Days: &days, Plan: r.Plan}, now)
		return err
	})
	if errors.Is(err, billing.ErrDuplicateSession) {
		existing, getErr := Get(db, r.MemberID)
		if getErr != nil && !errors.Is(getErr, apperr.ErrNotFound) {
			return Member{}, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return Member{}, false, err
	}
	return m, true, nil
}
