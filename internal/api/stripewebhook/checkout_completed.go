package stripewebhooks

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gym-backend/database"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/metrics"
	stripeinfra "gym-backend/internal/infra/stripe"
	"gym-backend/internal/lib/sl"

	"github.com/stripe/stripe-go/v75"
)

// handleCheckoutSessionCompleted books a paid renewal and reports the status
// to acknowledge with. Only storage failures are returned as errors; bad
// metadata is acknowledged so Stripe stops retrying.
func handleCheckoutSessionCompleted(session *stripe.CheckoutSession) (string, error) {
	const op = "stripewebhooks.checkoutCompleted"
	log := slog.With(sl.Op(op), slog.String("session", session.ID))

	if !stripeinfra.IsPaid(session) {
		log.Info("checkout not paid yet", slog.String("payment_status", stripeinfra.NormalizePaymentStatus(session.PaymentStatus)))
		return "pending", nil
	}

	memberID, err := memberIDFromSession(session)
	if err != nil {
		log.Warn("checkout without member reference", sl.Err(err))
		return "ignored", nil
	}
	plan := strings.TrimSpace(session.Metadata["plan"])

	_, applied, err := members.ApplyRenewal(database.DB, members.ActiveCatalog(), members.Renewal{
		MemberID:  memberID,
		Plan:      plan,
		Amount:    stripeinfra.MajorUnits(session.AmountTotal),
		SessionID: session.ID,
	}, time.Now())
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) || errors.Is(err, apperr.ErrNotFound) {
			log.Warn("renewal rejected", sl.Err(err), slog.Uint64("member_id", uint64(memberID)))
			return "ignored", nil
		}
		log.Error("renewal failed", sl.Err(err))
		return "", err
	}
	if !applied {
		return "duplicate", nil
	}

	metrics.PaymentsRecorded.WithLabelValues(billing.SourceStripe).Inc()
	log.Info("membership renewed", slog.Uint64("member_id", uint64(memberID)), slog.String("plan", plan))
	return "applied", nil
}

func memberIDFromSession(session *stripe.CheckoutSession) (uint, error) {
	raw := session.Metadata["member_id"]
	if raw == "" {
		raw = session.ClientReferenceID
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("missing member_id")
	}
	return uint(id), nil
}
