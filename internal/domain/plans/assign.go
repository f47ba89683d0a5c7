package plans

import (
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/members"

	"gorm.io/gorm"
)

type AssignInput struct {
	MemberID   uint
	AssignerID uint
	Type       string
	Title      string
	Content    string
	StartDate  *time.Time
	EndDate    *time.Time
}

// View is a plan with its rendered body and whether its end date has passed.
// An expired plan stays active until an admin removes or deactivates it.
type View struct {
	Plan
	HTML    string `json:"html"`
	Expired bool   `json:"expired"`
}

func NewView(p Plan, now time.Time) View {
	return View{
		Plan:    p,
		HTML:    RenderContent(p.Content),
		Expired: p.EndDate != nil && p.EndDate.Before(now),
	}
}

func Assign(db *gorm.DB, in AssignInput, now time.Time) (Plan, error) {
	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.MemberID == 0:
		return Plan{}, apperr.Validation("memberId is required")
	case !ValidType(in.Type):
		return Plan{}, apperr.Validation("type must be Workout or Diet")
	case in.Title == "":
		return Plan{}, apperr.Validation("title is required")
	case strings.TrimSpace(in.Content) == "":
		return Plan{}, apperr.Validation("content is required")
	}

	start := now
	if in.StartDate != nil {
		start = *in.StartDate
	}
	if in.EndDate != nil && in.EndDate.Before(start) {
		return Plan{}, apperr.Validation("endDate must not be before startDate")
	}

	ok, err := members.Exists(db, in.MemberID)
	if err != nil {
		return Plan{}, err
	}
	if !ok {
		return Plan{}, apperr.NotFound("Member")
	}

	p := Plan{
		MemberID:   in.MemberID,
		AssignerID: in.AssignerID,
		Type:       in.Type,
		Title:      in.Title,
		Content:    in.Content,
		StartDate:  start,
		EndDate:    in.EndDate,
		IsActive:   true,
	}
	if err := db.Create(&p).Error; err != nil {
		return Plan{}, apperr.Persistence("plans.Assign", err)
	}
	return p, nil
}

// ListActive returns a member's active plans, newest first.
func ListActive(db *gorm.DB, memberID uint, now time.Time) ([]View, error) {
	return list(db.Where("member_id = ? AND is_active = ?", memberID, true), now)
}

// ListAll returns every plan ever assigned to a member, newest first.
func ListAll(db *gorm.DB, memberID uint, now time.Time) ([]View, error) {
	return list(db.Where("member_id = ?", memberID), now)
}

func list(q *gorm.DB, now time.Time) ([]View, error) {
	var ps []Plan
	if err := q.Order("created_at DESC, id DESC").Find(&ps).Error; err != nil {
		return nil, apperr.Persistence("plans.list", err)
	}
	out := make([]View, 0, len(ps))
	for _, p := range ps {
		out = append(out, NewView(p, now))
	}
	return out, nil
}

// Remove hard-deletes a plan.
func Remove(db *gorm.DB, id uint) error {
	res := db.Delete(&Plan{}, id)
	if res.Error != nil {
		return apperr.Persistence("plans.Remove", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Plan")
	}
	return nil
}

// Deactivate hides a plan from the member without deleting it.
func Deactivate(db *gorm.DB, id uint) error {
	res := db.Model(&Plan{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return apperr.Persistence("plans.Deactivate", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Plan")
	}
	return nil
}
