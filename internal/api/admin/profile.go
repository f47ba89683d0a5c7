package admin

import (
	"net/http"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/admins"
	"gym-backend/internal/domain/apperr"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/me, GET /api/admin/profile
func GetProfile(c *gin.Context) {
	id := c.GetUint("user_id")
	if id == 0 {
		respond.Error(c, "admin.GetProfile", apperr.ErrUnauthorized)
		return
	}
	a, err := admins.Get(database.DB, id)
	if err != nil {
		respond.Error(c, "admin.GetProfile", err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /api/admin/profile
func UpdateProfile(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}
	a, err := admins.UpdateUsername(database.DB, c.GetUint("user_id"), req.Username)
	if err != nil {
		respond.Error(c, "admin.UpdateProfile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "admin": a})
}

// POST /api/admin/avatar (multipart field "avatar")
func UploadAvatar(c *gin.Context) {
	path, err := apiutil.SaveUpload(c, database.DB, "avatar")
	if err != nil {
		respond.Error(c, "admin.UploadAvatar", err)
		return
	}
	if path == nil {
		respond.Error(c, "admin.UploadAvatar", apperr.Validation("avatar file is required"))
		return
	}

	id := c.GetUint("user_id")
	previous, err := admins.Get(database.DB, id)
	if err != nil {
		respond.Error(c, "admin.UploadAvatar", err)
		return
	}
	a, err := admins.SetProfilePicture(database.DB, id, *path)
	if err != nil {
		respond.Error(c, "admin.UploadAvatar", err)
		return
	}
	_ = apiutil.RemoveUpload(database.DB, previous.ProfilePicture)

	c.JSON(http.StatusOK, gin.H{"message": "Avatar updated", "profilePicture": a.ProfilePicture})
}
