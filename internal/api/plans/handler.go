package plans

import (
	"net/http"
	"strconv"
	"time"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

type assignRequest struct {
	MemberID  uint   `json:"memberId" binding:"required"`
	Type      string `json:"type" binding:"required,plan_type"`
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// POST /api/plans
func Assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	start, err := apiutil.ParseDate("startDate", req.StartDate)
	if err != nil {
		respond.Error(c, "plans.Assign", err)
		return
	}
	end, err := apiutil.ParseDate("endDate", req.EndDate)
	if err != nil {
		respond.Error(c, "plans.Assign", err)
		return
	}

	now := time.Now()
	p, err := plans.Assign(database.DB, plans.AssignInput{
		MemberID:   req.MemberID,
		AssignerID: c.GetUint("user_id"),
		Type:       req.Type,
		Title:      req.Title,
		Content:    req.Content,
		StartDate:  start,
		EndDate:    end,
	}, now)
	if err != nil {
		respond.Error(c, "plans.Assign", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Plan assigned", "plan": plans.NewView(p, now)})
}

// GET /api/plans/my-plans
func MyPlans(c *gin.Context) {
	views, err := plans.ListActive(database.DB, c.GetUint("user_id"), time.Now())
	if err != nil {
		respond.Error(c, "plans.MyPlans", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GET /api/plans/member/:id
// Admins see deactivated plans too.
func MemberPlans(c *gin.Context) {
	memberID, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "plans.MemberPlans", err)
		return
	}
	views, err := plans.ListAll(database.DB, memberID, time.Now())
	if err != nil {
		respond.Error(c, "plans.MemberPlans", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// DELETE /api/plans/:id removes the plan; ?soft=true only deactivates it.
func Delete(c *gin.Context) {
	id, err := apiutil.ParseID(c, "id")
	if err != nil {
		respond.Error(c, "plans.Delete", err)
		return
	}

	soft, _ := strconv.ParseBool(c.Query("soft"))
	if soft {
		err = plans.Deactivate(database.DB, id)
	} else {
		err = plans.Remove(database.DB, id)
	}
	if err != nil {
		respond.Error(c, "plans.Delete", err)
		return
	}

	message := "Plan deleted"
	if soft {
		message = "Plan deactivated"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
