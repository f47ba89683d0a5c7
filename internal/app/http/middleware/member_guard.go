package middleware

import (
	"errors"
	"net/http"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/domain/access"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// RequireMember admits member tokens whose account still exists and exposes
// the current membership state as "membership_state".
func RequireMember() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != access.RoleMember {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		m, err := members.Get(database.DB, c.GetUint("user_id"))
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Member account no longer exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load member"})
			return
		}

		c.Set("membership_state", string(access.StateOf(m.ExpiryDate, config.ExpiringWindow(), time.Now())))
		c.Next()
	}
}
