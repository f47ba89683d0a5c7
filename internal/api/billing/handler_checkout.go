package billing

import (
	"fmt"
	"log/slog"
	"net/http"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/members"
	stripeinfra "gym-backend/internal/infra/stripe"
	"gym-backend/internal/lib/sl"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

type checkoutRequest struct {
	SubscriptionPlan string `json:"subscriptionPlan" binding:"required,subscription_plan"`
}

// POST /api/billing/checkout
// Starts a one-off Stripe payment that renews the caller's membership once
// the webhook confirms it.
func CreateCheckoutSession(c *gin.Context) {
	if !config.StripeEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Online renewal is not configured"})
		return
	}

	var body checkoutRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BindError(c, err)
		return
	}

	planSpec, ok := members.ActiveCatalog().Lookup(body.SubscriptionPlan)
	if !ok || planSpec.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Plan is not available for online renewal"})
		return
	}

	m, err := members.Get(database.DB, c.GetUint("user_id"))
	if err != nil {
		respond.Error(c, "billing.CreateCheckoutSession", err)
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	params := checkoutParams(m, planSpec, config.APP_URL, config.STRIPE_CURRENCY)

	s, err := checkoutsession.New(params)
	if err != nil {
		slog.Error("stripe checkout failed", sl.Op("billing.CreateCheckoutSession"), sl.Err(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": s.URL})
}

func checkoutParams(m members.Member, planSpec members.PlanSpec, appURL, currency string) *stripe.CheckoutSessionParams {
	if appURL == "" {
		appURL = "http://localhost:5173"
	}
	if currency == "" {
		currency = "inr"
	}
	memberID := fmt.Sprint(m.ID)

	params := &stripe.CheckoutSessionParams{
		SuccessURL:        stripe.String(appURL + "/member?renewed=1"),
		CancelURL:         stripe.String(appURL + "/member?canceled=1"),
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     stripe.String(m.Email),
		ClientReferenceID: stripe.String(memberID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(stripeinfra.MinorUnits(planSpec.Price)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Membership renewal - " + planSpec.Name),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("member_id", memberID)
	params.AddMetadata("plan", planSpec.Name)
	return params
}
