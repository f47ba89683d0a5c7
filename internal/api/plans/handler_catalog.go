package plans

import (
	"net/http"

	"gym-backend/internal/domain/members"

	"github.com/gin-gonic/gin"
)

// GET /api/plans/catalog lists the sellable membership plans.
func Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"plans":      members.ActiveCatalog().Plans(),
		"customPlan": members.CustomPlan,
	})
}
