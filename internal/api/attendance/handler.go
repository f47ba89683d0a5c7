package attendance

import (
	"errors"
	"net/http"
	"time"

	"gym-backend/database"
	"gym-backend/internal/api/apiutil"
	"gym-backend/internal/api/respond"
	"gym-backend/internal/app/http/middleware"
	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/attendance"
	"gym-backend/internal/infra/metrics"

	"github.com/gin-gonic/gin"
)

type markRequest struct {
	MemberID uint   `json:"memberId" binding:"required"`
	Status   string `json:"status" binding:"attendance_status"`
}

// POST /api/attendance/mark
func Mark(c *gin.Context) {
	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	a, err := attendance.MarkPresent(database.DB, req.MemberID, req.Status, time.Now())
	if err != nil {
		outcome := "error"
		if errors.Is(err, apperr.ErrAlreadyMarked) {
			outcome = "duplicate"
		}
		metrics.AttendanceMarked.WithLabelValues(outcome).Inc()
		respond.Error(c, "attendance.Mark", err)
		return
	}
	metrics.AttendanceMarked.WithLabelValues("marked").Inc()

	c.JSON(http.StatusOK, gin.H{"message": "Attendance marked", "attendance": a})
}

// GET /api/attendance/history/:memberId
func History(c *gin.Context) {
	memberID, err := apiutil.ParseID(c, "memberId")
	if err != nil {
		respond.Error(c, "attendance.History", err)
		return
	}
	records, err := attendance.HistoryFor(database.DB, memberID, middleware.Identity(c))
	if err != nil {
		respond.Error(c, "attendance.History", err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/attendance/today
func Today(c *gin.Context) {
	entries, err := attendance.Today(database.DB, time.Now())
	if err != nil {
		respond.Error(c, "attendance.Today", err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
