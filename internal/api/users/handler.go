package users

import (
	"net/http"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// GET /api/member/profile
func GetProfile(c *gin.Context) {
	id := c.GetUint("user_id")
	m, err := members.Get(database.DB, id)
	if err != nil {
		respond.Error(c, "users.GetProfile", err)
		return
	}
	payments, err := billing.ListForMember(database.DB, id)
	if err != nil {
		respond.Error(c, "users.GetProfile", err)
		return
	}

	view := members.NewView(m, config.ExpiringWindow(), time.Now())
	c.JSON(http.StatusOK, ProfileResponse{
		Member:  view,
		Billing: buildBilling(m, payments),
		Access: AccessDTO{
			State:          string(view.Status),
			CanRenewOnline: config.StripeEnabled(),
		},
	})
}

// PUT /api/member/profile
func UpdateProfile(c *gin.Context) {
	var body struct {
		Phone   string `json:"phone" binding:"required"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BindError(c, err)
		return
	}

	m, err := members.UpdateProfile(database.DB, c.GetUint("user_id"), body.Phone, body.Address)
	if err != nil {
		respond.Error(c, "users.UpdateProfile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"member":  members.NewView(m, config.ExpiringWindow(), time.Now()),
	})
}

// POST /api/member/avatar (multipart field "profilePicture")
func UploadAvatar(c *gin.Context) {
	path, err := apiutil.SaveUpload(c, database.DB, "profilePicture", "image")
	if err != nil {
		respond.Error(c, "users.UploadAvatar", err)
		return
	}
	if path == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profilePicture file is required"})
		return
	}

	id := c.GetUint("user_id")
	previous, err := members.Get(database.DB, id)
	if err != nil {
		respond.Error(c, "users.UploadAvatar", err)
		return
	}
	if err := members.SetProfilePicture(database.DB, id, *path); err != nil {
		respond.Error(c, "users.UploadAvatar", err)
		return
	}
	_ = apiutil.RemoveUpload(database.DB, previous.ProfilePicture)

	c.JSON(http.StatusOK, gin.H{"message": "Profile picture updated", "profilePicture": *path})
}

// GET /api/member/payments
func MyPayments(c *gin.Context) {
	payments, err := billing.ListForMember(database.DB, c.GetUint("user_id"))
	if err != nil {
		respond.Error(c, "users.MyPayments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
