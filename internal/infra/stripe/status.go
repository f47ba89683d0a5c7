package stripe

import (
	"strings"

	stripego "github.com/stripe/stripe-go/v75"
)

// NormalizePaymentStatus folds a checkout session's payment status into
// paid | unpaid | none.
func NormalizePaymentStatus(s stripego.CheckoutSessionPaymentStatus) string {
	switch strings.TrimSpace(string(s)) {
	case "":
		return "none"
	case string(stripego.CheckoutSessionPaymentStatusPaid),
		string(stripego.CheckoutSessionPaymentStatusNoPaymentRequired):
		return "paid"
	case string(stripego.CheckoutSessionPaymentStatusUnpaid):
		return "unpaid"
	default:
		return strings.TrimSpace(string(s))
	}
}

// IsPaid reports whether money was actually collected for a session.
func IsPaid(s *stripego.CheckoutSession) bool {
	if s == nil {
		return false
	}
	return s.PaymentStatus == stripego.CheckoutSessionPaymentStatusPaid
}

// MinorUnits converts a price in major currency units to Stripe's integer
// minor units, rounding to the nearest unit.
func MinorUnits(price float64) int64 {
	return int64(price*100 + 0.5)
}

// MajorUnits is the inverse of MinorUnits.
func MajorUnits(amount int64) float64 {
	return float64(amount) / 100
}
