package admin

import (
	"net/http"
	"time"

	"gym-backend/config"
	"gym-backend/database"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/analytics"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/stats
func GetAdminStats(c *gin.Context) {
	stats, err := analytics.ComputeDashboardStats(database.DB, time.Now(), config.ExpiringWindow())
	if err != nil {
		respond.Error(c, "admin.GetAdminStats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
