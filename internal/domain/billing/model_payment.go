package billing

import "time"

const (
	SourceManual  = "manual"
	SourceJoining = "joining"
	SourceStripe  = "stripe"
)

// Payment is an append-only ledger entry. MemberID is kept after the member
// is deleted; readers render such rows as "Unknown".
type Payment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MemberID        uint      `gorm:"not null;index" json:"memberId"`
	Amount          float64   `gorm:"not null" json:"amount"`
	Date            time.Time `gorm:"not null;index" json:"date"`
	Remarks         string    `json:"remarks"`
	Source          string    `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	StripeSessionID *string   `gorm:"column:stripe_session_id;type:varchar(255);uniqueIndex:idx_payments_stripe_session_id" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
}
