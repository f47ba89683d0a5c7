package admin

import (
	"net/http"
	"time"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

type createPaymentRequest struct {
	MemberID uint    `json:"memberId" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Remarks  string  `json:"remarks"`
}

// GET /api/payments
func ListAllPayments(c *gin.Context) {
	payments, err := billing.ListWithMembers(database.DB)
	if err != nil {
		respond.Error(c, "admin.ListAllPayments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// POST /api/payments
func CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	ok, err := members.Exists(database.DB, req.MemberID)
	if err != nil {
		respond.Error(c, "admin.CreatePayment", err)
		return
	}
	if !ok {
		respond.Error(c, "admin.CreatePayment", apperr.NotFound("Member"))
		return
	}

	p := billing.Payment{
		MemberID: req.MemberID,
		Amount:   req.Amount,
		Remarks:  req.Remarks,
		Source:   billing.SourceManual,
	}
	if err := billing.Record(database.DB, &p, time.Now()); err != nil {
		respond.Error(c, "admin.CreatePayment", err)
		return
	}
	metrics.PaymentsRecorded.WithLabelValues(billing.SourceManual).Inc()

	c.JSON(http.StatusCreated, gin.H{"message": "Payment recorded", "payment": p})
}

// GET /api/admin/members/:id/payments
func ListMemberPayments(c *gin.Context) {
	id, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "admin.ListMemberPayments", err)
		return
	}
	payments, err := billing.ListForMember(database.DB, id)
	if err != nil {
		respond.Error(c, "admin.ListMemberPayments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
