package users

import (
	"time"

	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"
)

type ProfileResponse struct {
	Member  members.View `json:"member"`
	Billing BillingDTO   `json:"billing"`
	Access  AccessDTO    `json:"access"`
}

/* ---------- BILLING ---------- */

type BillingDTO struct {
	Plan        *members.PlanSpec `json:"plan"`
	LastPayment *PaymentDTO       `json:"lastPayment"`
	TotalPaid   float64           `json:"totalPaid"`
}

type PaymentDTO struct {
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Remarks string    `json:"remarks"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	State          string `json:"state"`
	CanRenewOnline bool   `json:"canRenewOnline"`
}

func buildBilling(m members.Member, payments []billing.Payment) BillingDTO {
	out := BillingDTO{}
	if planSpec, ok := members.ActiveCatalog().Lookup(m.SubscriptionPlan); ok {
		out.Plan = &planSpec
	}
	// payments arrive newest first
	for i, p := range payments {
		if i == 0 {
			out.LastPayment = &PaymentDTO{Amount: p.Amount, Date: p.Date, Remarks: p.Remarks}
		}
		out.TotalPaid += p.Amount
	}
	return out
}
