package admin

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/infra/metrics"
	"gym-backend/internal/lib/sl"

	"github.com/gin-gonic/gin"
)

type createMemberRequest struct {
	FullName         string  `form:"fullName" json:"fullName" binding:"required"`
	Email            string  `form:"email" json:"email" binding:"required,email"`
	Phone            string  `form:"phone" json:"phone" binding:"required"`
	Age              int     `form:"age" json:"age" binding:"gte=0"`
	Gender           string  `form:"gender" json:"gender"`
	Address          string  `form:"address" json:"address"`
	SubscriptionPlan string  `form:"subscriptionPlan" json:"subscriptionPlan" binding:"required,subscription_plan"`
	Amount           float64 `form:"amount" json:"amount" binding:"gte=0"`
}

type updateSubscriptionRequest struct {
	ExpiryDate       string `json:"expiryDate"`
	Days             *int   `json:"days"`
	SubscriptionPlan string `json:"subscriptionPlan"`
	Version          *int   `json:"version"`
}

// GET /api/admin/members
func ListMembers(c *gin.Context) {
	views, err := members.List(database.DB, config.ExpiringWindow(), time.Now())
	if err != nil {
		respond.Error(c, "admin.ListMembers", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// POST /api/admin/members (JSON or multipart with an optional image)
func CreateMember(c *gin.Context) {
	var req createMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	picture, err := apiutil.SaveUpload(c, database.DB, "profilePicture", "image")
	if err != nil {
		respond.Error(c, "admin.CreateMember", err)
		return
	}

	in := members.EnrollInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           req.Phone,
		Age:             req.Age,
		Gender:          req.Gender,
		Address:         req.Address,
		Plan:            req.SubscriptionPlan,
		Amount:          req.Amount,
		DefaultPassword: config.DEFAULT_MEMBER_PASSWORD,
	}
	if picture != nil {
		in.ProfilePicture = *picture
	}

	m, err := members.Enroll(database.DB, members.ActiveCatalog(), in, time.Now())
	if err != nil {
		if picture != nil {
			if rmErr := apiutil.RemoveUpload(database.DB, *picture); rmErr != nil {
				slog.Warn("failed to drop orphaned upload", sl.Err(rmErr))
			}
		}
		respond.Error(c, "admin.CreateMember", err)
		return
	}

	metrics.MembersEnrolled.Inc()
	if req.Amount > 0 {
		metrics.PaymentsRecorded.WithLabelValues("joining").Inc()
	}

	message := "Member added"
	if req.Amount > 0 {
		message = "Member added & Payment recorded"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"member":  members.NewView(m, config.ExpiringWindow(), time.Now()),
	})
}

// DELETE /api/admin/members/:id
func DeleteMember(c *gin.Context) {
	id, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "admin.DeleteMember", err)
		return
	}
	if err := members.Delete(database.DB, id); err != nil {
		respond.Error(c, "admin.DeleteMember", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// PUT /api/admin/members/:id/subscription
func UpdateSubscription(c *gin.Context) {
	id, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "admin.UpdateSubscription", err)
		return
	}

	var req updateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	in := members.ExtendInput{
		Days:           req.Days,
		Plan:           req.SubscriptionPlan,
		Version:        req.Version,
		AllowBackdated: config.ALLOW_BACKDATED_EXPIRY,
	}
	if strings.TrimSpace(req.ExpiryDate) != "" {
		expiry, err := ParseExpiryDate(req.ExpiryDate)
		if err != nil {
			respond.Error(c, "admin.UpdateSubscription", err)
			return
		}
		in.ExpiryDate = &expiry
	}

	m, err := members.ExtendSubscription(database.DB, members.ActiveCatalog(), id, in, time.Now())
	if err != nil {
		respond.Error(c, "admin.UpdateSubscription", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Updated",
		"member":  members.NewView(m, config.ExpiringWindow(), time.Now()),
	})
}

// ParseExpiryDate accepts RFC 3339 timestamps or bare dates. A bare date
// means the end of that server-local day.
func ParseExpiryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, apperr.Validation("expiryDate must be YYYY-MM-DD or RFC 3339")
	}
	return day.AddDate(0, 0, 1).Add(-time.Second), nil
}
