// Package respond writes domain failures as JSON error responses.
package respond

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/lib/sl"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Status maps a domain error to its HTTP status.
func Status(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrAlreadyMarked):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrDuplicateEmail), errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error logs err under op and writes {"error": message}.
func Error(c *gin.Context, op string, err error) {
	status := Status(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", sl.Op(op), sl.Err(err))
	} else {
		slog.Debug("request rejected", sl.Op(op), sl.Err(err), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": apperr.Message(err)})
}

// BindError answers a failed ShouldBind call with a 400.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": BindMessage(err)})
}

// BindMessage turns validator output into a short sentence naming the
// first offending field.
func BindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	fe := verrs[0]
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt", "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "subscription_plan":
		return field + " is not a known plan"
	case "attendance_status":
		return field + " must be Present or Absent"
	case "plan_type":
		return field + " must be Workout or Diet"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
