package billing

import (
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/infra/dberr"

	"gorm.io/gorm"
)

// ErrDuplicateSession is returned by Record when a Stripe session was already
// booked.
var ErrDuplicateSession = apperr.Conflict("payment already recorded for this checkout session")

// PaymentView is a payment joined with its member's name.
type PaymentView struct {
	ID       uint      `json:"id"`
	MemberID uint      `json:"memberId"`
	Member   string    `json:"memberName"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Remarks  string    `json:"remarks"`
	Source   string    `json:"source"`
}

// Record appends a payment. Date defaults to now.
func Record(db *gorm.DB, p *Payment, now time.Time) error {
	if p.MemberID == 0 {
		return apperr.Validation("memberId is required")
	}
	if p.Amount <= 0 {
		return apperr.Validation("amount must be greater than zero")
	}
	if p.Date.IsZero() {
		p.Date = now
	}
	if strings.TrimSpace(p.Source) == "" {
		p.Source = SourceManual
	}
	p.Remarks = strings.TrimSpace(p.Remarks)

	if err := db.Create(p).Error; err != nil {
		if p.StripeSessionID != nil && dberr.IsUniqueViolation(err) {
			return ErrDuplicateSession
		}
		return apperr.Persistence("billing.Record", err)
	}
	return nil
}

type paymentRow struct {
	ID       uint
	MemberID uint
	FullName *string
	Amount   float64
	Date     time.Time
	Remarks  string
	Source   string
}

// ListWithMembers returns every payment, newest first.
func ListWithMembers(db *gorm.DB) ([]PaymentView, error) {
	var rows []paymentRow
	err := db.Table("payments").
		Select("payments.id, payments.member_id, members.full_name, payments.amount, payments.date, payments.remarks, payments.source").
		Joins("LEFT JOIN members ON members.id = payments.member_id").
		Order("payments.date DESC, payments.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Persistence("billing.ListWithMembers", err)
	}

	out := make([]PaymentView, 0, len(rows))
	for _, r := range rows {
		name := "Unknown"
		if r.FullName != nil && *r.FullName != "" {
			name = *r.FullName
		}
		out = append(out, PaymentView{
			ID:       r.ID,
			MemberID: r.MemberID,
			Member:   name,
			Amount:   r.Amount,
			Date:     r.Date,
			Remarks:  r.Remarks,
			Source:   r.Source,
		})
	}
	return out, nil
}

// ListForMember returns one member's payments, newest first.
func ListForMember(db *gorm.DB, memberID uint) ([]Payment, error) {
	var payments []Payment
	if err := db.Where("member_id = ?", memberID).
		Order("date DESC, id DESC").
		Find(&payments).Error; err != nil {
		return nil, apperr.Persistence("billing.ListForMember", err)
	}
	return payments, nil
}

// TotalRevenue sums every payment ever recorded.
func TotalRevenue(db *gorm.DB) (float64, error) {
	var total float64
	if err := db.Model(&Payment{}).Select("COALESCE(SUM(amount), 0)").Scan(&total).Error; err != nil {
		return 0, apperr.Persistence("billing.TotalRevenue", err)
	}
	return total, nil
}

// HasSession reports whether a Stripe checkout session was already booked.
func HasSession(db *gorm.DB, sessionID string) (bool, error) {
	var n int64
	if err := db.Model(&Payment{}).Where("stripe_session_id = ?", sessionID).Count(&n).Error; err != nil {
		return false, apperr.Persistence("billing.HasSession", err)
	}
	return n > 0, nil
}
