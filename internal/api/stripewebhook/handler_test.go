package stripewebhooks

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "whsec_test"

func sign(payload []byte, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func event(t *testing.T, typ string, session map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(map[string]any{
		"id":          "evt_" + typ,
		"object":      "event",
		"type":        typ,
		"api_version": "2023-10-16",
		"data":        map[string]any{"object": session},
	})
	require.NoError(t, err)
	return b
}

func paidSession(id string, memberID uint, plan string) map[string]any {
	return map[string]any{
		"id":                  id,
		"object":              "checkout.session",
		"payment_status":      "paid",
		"amount_total":        150000,
		"client_reference_id": fmt.Sprint(memberID),
		"metadata":            map[string]string{"member_id": fmt.Sprint(memberID), "plan": plan},
	}
}

func deliver(payload []byte, signature string) *httptest.ResponseRecorder {
	r := gin.New()
	r.POST("/webhook/stripe", StripeWebhook)
	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signature)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setup(t *testing.T) members.Member {
	gin.SetMode(gin.TestMode)
	config.STRIPE_WEBHOOK_SECRET = secret
	t.Cleanup(func() { config.STRIPE_WEBHOOK_SECRET = "" })
	members.UseCatalog(mustCatalog(t))

	database.DB = testutil.NewDB(t, &members.Member{}, &billing.Payment{})
	now := time.Now()
	m := members.Member{FullName: "Asha", Email: "asha@example.com", Phone: "1", Password: "x", SubscriptionPlan: "Monthly", ExpiryDate: now.AddDate(0, 0, 5), JoiningDate: now}
	require.NoError(t, database.DB.Create(&m).Error)
	return m
}

func mustCatalog(t *testing.T) members.Catalog {
	c, err := members.LoadCatalog("")
	require.NoError(t, err)
	return c
}

func status(t *testing.T, w *httptest.ResponseRecorder) string {
	var body struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Status
}

func TestWebhookRenewalIsIdempotent(t *testing.T) {
	m := setup(t)
	payload := event(t, "checkout.session.completed", paidSession("cs_test_1", m.ID, "Monthly"))

	w := deliver(payload, sign(payload, time.Now().Unix()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "applied", status(t, w))

	got, err := members.Get(database.DB, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 35, members.RemainingDays(got.ExpiryDate, time.Now()))
	assert.Equal(t, 2, got.Version)

	w = deliver(payload, sign(payload, time.Now().Unix()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "duplicate", status(t, w))

	payments, err := billing.ListForMember(database.DB, m.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.InDelta(t, 1500, payments[0].Amount, 0.001)
	assert.Equal(t, "Renewal - Monthly", payments[0].Remarks)
	assert.Equal(t, billing.SourceStripe, payments[0].Source)

	again, err := members.Get(database.DB, m.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ExpiryDate.Unix(), again.ExpiryDate.Unix())
}

func TestWebhookOutcomes(t *testing.T) {
	m := setup(t)

	unpaid := paidSession("cs_unpaid", m.ID, "Monthly")
	unpaid["payment_status"] = "unpaid"

	tests := []struct {
		name       string
		payload    []byte
		badSig     bool
		wantCode   int
		wantStatus string
	}{
		{name: "bad signature", payload: event(t, "checkout.session.completed", paidSession("cs_x", m.ID, "Monthly")), badSig: true, wantCode: http.StatusBadRequest},
		{name: "unpaid", payload: event(t, "checkout.session.completed", unpaid), wantCode: http.StatusOK, wantStatus: "pending"},
		{name: "unknown member", payload: event(t, "checkout.session.completed", paidSession("cs_ghost", 999, "Monthly")), wantCode: http.StatusOK, wantStatus: "ignored"},
		{name: "unknown plan", payload: event(t, "checkout.session.completed", paidSession("cs_plan", m.ID, "Weekly")), wantCode: http.StatusOK, wantStatus: "ignored"},
		{name: "other event", payload: event(t, "invoice.paid", map[string]any{"id": "in_1", "object": "invoice"}), wantCode: http.StatusOK, wantStatus: "ignored"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := sign(tt.payload, time.Now().Unix())
			if tt.badSig {
				sig = sign([]byte("tampered"), time.Now().Unix())
			}
			w := deliver(tt.payload, sig)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantStatus != "" {
				assert.Equal(t, tt.wantStatus, status(t, w))
			}
		})
	}

	payments, err := billing.ListForMember(database.DB, m.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
	var orphan int64
	require.NoError(t, database.DB.Model(&billing.Payment{}).Count(&orphan).Error)
	assert.Zero(t, orphan)
}

func TestWebhookWithoutSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.STRIPE_WEBHOOK_SECRET = ""
	w := deliver([]byte(`{}`), "t=1,v1=00")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
