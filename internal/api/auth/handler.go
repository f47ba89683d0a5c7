package auth

import (
	"net/http"
	"strings"

	"gym-backend/database"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/app/http/middleware"
	"gym-backend/internal/domain/access"
	"gym-backend/internal/domain/admins"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
// Admins sign in with a username, members with their email.
func Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respond.BindError(c, err)
		return
	}

	var (
		userID uint
		role   string
		email  string
	)
	switch {
	case strings.TrimSpace(input.Username) != "":
		a, err := admins.Authenticate(database.DB, input.Username, input.Password)
		if err != nil {
			respond.Error(c, "auth.Login", err)
			return
		}
		userID, role, email = a.ID, access.RoleAdmin, a.Email
	case strings.TrimSpace(input.Email) != "":
		m, err := members.Authenticate(database.DB, input.Email, input.Password)
		if err != nil {
			respond.Error(c, "auth.Login", err)
			return
		}
		userID, role, email = m.ID, access.RoleMember, m.Email
	default:
		respond.Error(c, "auth.Login", apperr.Validation("email or username is required"))
		return
	}

	token, err := middleware.IssueToken(userID, role, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "role": role})
}

// POST /api/auth/change-password
func ChangePassword(c *gin.Context) {
	var body struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.BindError(c, err)
		return
	}

	who := middleware.Identity(c)
	var err error
	if who.IsAdmin() {
		err = admins.ChangePassword(database.DB, who.UserID, body.OldPassword, body.NewPassword)
	} else {
		err = members.ChangePassword(database.DB, who.UserID, body.OldPassword, body.NewPassword)
	}
	if err != nil {
		respond.Error(c, "auth.ChangePassword", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
