// Package validate registers the domain binding tags with gin's validator.
package validate

import (
	"sync"

	"gym-backend/internal/domain/attendance"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/domain/plans"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var once sync.Once

// Register adds subscription_plan, attendance_status and plan_type. It is
// safe to call more than once.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("subscription_plan", func(fl validator.FieldLevel) bool {
			return members.ActiveCatalog().IsKnownPlan(fl.Field().String())
		})
		_ = v.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || attendance.ValidStatus(s)
		})
		_ = v.RegisterValidation("plan_type", func(fl validator.FieldLevel) bool {
			return plans.ValidType(fl.Field().String())
		})
	})
}
