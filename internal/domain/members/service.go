package members

import (
	"errors"
	"strings"
	"time"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/infra/dberr"
	"gym-backend/internal/lib/password"

	"gorm.io/gorm"
)

type EnrollInput struct {
	FullName       string
	Email          string
	Phone          string
	Age            int
	Gender         string
	Address        string
	Plan           string
	Amount         float64
	ProfilePicture string
	// DefaultPassword is the credential handed to new members.
	DefaultPassword string
}

// Enroll registers a member and, when Amount > 0, books the joining fee in
// the same transaction.
func Enroll(db *gorm.DB, cat Catalog, in EnrollInput, now time.Time) (Member, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = NormalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	switch {
	case in.FullName == "":
		return Member{}, apperr.Validation("fullName is required")
	case in.Email == "":
		return Member{}, apperr.Validation("email is required")
	case in.Phone == "":
		return Member{}, apperr.Validation("phone is required")
	case in.Amount < 0:
		return Member{}, apperr.Validation("amount cannot be negative")
	case in.Age < 0:
		return Member{}, apperr.Validation("age cannot be negative")
	}

	expiry, err := ExpiryFor(cat, in.Plan, now)
	if err != nil {
		return Member{}, err
	}

	hash, err := password.Hash(in.DefaultPassword)
	if err != nil {
		return Member{}, apperr.Persistence("members.Enroll", err)
	}

	picture := strings.TrimSpace(in.ProfilePicture)
	if picture == "" {
		picture = DefaultProfilePicture
	}

	m := Member{
		FullName:         in.FullName,
		Phone:            in.Phone,
		Email:            in.Email,
		Age:              in.Age,
		Gender:           strings.TrimSpace(in.Gender),
		Address:          strings.TrimSpace(in.Address),
		Password:         hash,
		SubscriptionPlan: in.Plan,
		ExpiryDate:       expiry,
		JoiningDate:      now,
		ProfilePicture:   picture,
		Version:          1,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&Member{}).Where("email = ?", m.Email).Count(&taken).Error; err != nil {
			return apperr.Persistence("members.Enroll", err)
		}
		if taken > 0 {
			return apperr.ErrDuplicateEmail
		}

		if err := tx.Create(&m).Error; err != nil {
			if dberr.IsUniqueViolation(err) {
				return apperr.ErrDuplicateEmail
			}
			return apperr.Persistence("members.Enroll", err)
		}

		if in.Amount > 0 {
			return billing.Record(tx, &billing.Payment{
				MemberID: m.ID,
				Amount:   in.Amount,
				Date:     now,
				Remarks:  "Joining Fee - " + in.Plan,
				Source:   billing.SourceJoining,
			}, now)
		}
		return nil
	})
	if err != nil {
		return Member{}, err
	}
	return m, nil
}

type ExtendInput struct {
	// Exactly one of Days and ExpiryDate is set.
	Days       *int
	ExpiryDate *time.Time
	// Plan defaults to the member's current plan. CustomPlan is only
	// accepted together with ExpiryDate.
	Plan string
	// Version, when set, must match the stored row.
	Version        *int
	AllowBackdated bool
}

// ExtendSubscription overwrites a member's expiry and plan. In Days mode the
// days are added to the later of now and the current expiry.
func ExtendSubscription(db *gorm.DB, cat Catalog, id uint, in ExtendInput, now time.Time) (Member, error) {
	if (in.Days == nil) == (in.ExpiryDate == nil) {
		return Member{}, apperr.Validation("provide either days or expiryDate")
	}
	in.Plan = strings.TrimSpace(in.Plan)
	if in.Plan == CustomPlan && in.ExpiryDate == nil {
		return Member{}, apperr.Validation("plan %q requires an explicit expiryDate", CustomPlan)
	}
	if in.Plan != "" && in.Plan != CustomPlan && !cat.IsKnownPlan(in.Plan) {
		return Member{}, apperr.Validation("unknown subscription plan %q", in.Plan)
	}
	if in.Days != nil && *in.Days <= 0 {
		return Member{}, apperr.Validation("days must be greater than zero")
	}
	if in.ExpiryDate != nil && in.ExpiryDate.Before(now) && !in.AllowBackdated {
		return Member{}, apperr.Validation("expiryDate cannot be in the past")
	}

	m, err := Get(db, id)
	if err != nil {
		return Member{}, err
	}
	if in.Version != nil && *in.Version != m.Version {
		return Member{}, apperr.ErrConflict
	}

	var expiry time.Time
	if in.ExpiryDate != nil {
		expiry = *in.ExpiryDate
	} else {
		base := now
		if m.ExpiryDate.After(now) {
			base = m.ExpiryDate
		}
		expiry = base.AddDate(0, 0, *in.Days)
	}

	plan := in.Plan
	if plan == "" {
		plan = m.SubscriptionPlan
	}

	res := db.Model(&Member{}).
		Where("id = ? AND version = ?", m.ID, m.Version).
		Updates(map[string]any{
			"expiry_date":       expiry,
			"subscription_plan": plan,
			"version":           m.Version + 1,
			"updated_at":        now,
		})
	if res.Error != nil {
		return Member{}, apperr.Persistence("members.ExtendSubscription", res.Error)
	}
	if res.RowsAffected == 0 {
		return Member{}, apperr.ErrConflict
	}

	m.ExpiryDate = expiry
	m.SubscriptionPlan = plan
	m.Version++
	m.UpdatedAt = now
	return m, nil
}

// Delete removes a member. Payments, attendance and plans that point at the
// member are left in place.
func Delete(db *gorm.DB, id uint) error {
	res := db.Delete(&Member{}, id)
	if res.Error != nil {
		return apperr.Persistence("members.Delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Member")
	}
	return nil
}

func Get(db *gorm.DB, id uint) (Member, error) {
	var m Member
	if err := db.First(&m, id).Error; err != nil {
		if dberr.IsNotFound(err) {
			return Member{}, apperr.NotFound("Member")
		}
		return Member{}, apperr.Persistence("members.Get", err)
	}
	return m, nil
}

// Exists reports whether a member row with id is present.
func Exists(db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.Model(&Member{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, apperr.Persistence("members.Exists", err)
	}
	return n > 0, nil
}

func FindByEmail(db *gorm.DB, email string) (Member, error) {
	var m Member
	if err := db.Where("email = ?", NormalizeEmail(email)).First(&m).Error; err != nil {
		if dberr.IsNotFound(err) {
			return Member{}, apperr.NotFound("Member")
		}
		return Member{}, apperr.Persistence("members.FindByEmail", err)
	}
	return m, nil
}

// List returns every member with derived fields, newest enrollment first.
func List(db *gorm.DB, window time.Duration, now time.Time) ([]View, error) {
	var ms []Member
	if err := db.Order("joining_date DESC, id DESC").Find(&ms).Error; err != nil {
		return nil, apperr.Persistence("members.List", err)
	}
	out := make([]View, 0, len(ms))
	for _, m := range ms {
		out = append(out, NewView(m, window, now))
	}
	return out, nil
}

// UpdateProfile changes the contact fields a member may edit themselves.
func UpdateProfile(db *gorm.DB, id uint, phone, address string) (Member, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return Member{}, apperr.Validation("phone is required")
	}
	res := db.Model(&Member{}).Where("id = ?", id).Updates(map[string]any{
		"phone":   phone,
		"address": strings.TrimSpace(address),
	})
	if res.Error != nil {
		return Member{}, apperr.Persistence("members.UpdateProfile", res.Error)
	}
	if res.RowsAffected == 0 {
		return Member{}, apperr.NotFound("Member")
	}
	return Get(db, id)
}

// ChangePassword replaces a member's password after checking the old one.
func ChangePassword(db *gorm.DB, id uint, oldPassword, newPassword string) error {
	if !password.IsStrong(newPassword) {
		return apperr.Validation("new password must be at least 6 characters")
	}
	m, err := Get(db, id)
	if err != nil {
		return err
	}
	if err := password.Compare(m.Password, oldPassword); err != nil {
		return apperr.Validation("old password is incorrect")
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return apperr.Persistence("members.ChangePassword", err)
	}
	if err := db.Model(&Member{}).Where("id = ?", id).Update("password", hash).Error; err != nil {
		return apperr.Persistence("members.ChangePassword", err)
	}
	return nil
}

// Authenticate returns the member owning email when plain matches.
func Authenticate(db *gorm.DB, email, plain string) (Member, error) {
	m, err := FindByEmail(db, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Member{}, apperr.ErrUnauthorized
		}
		return Member{}, err
	}
	if err := password.Compare(m.Password, plain); err != nil {
		return Member{}, apperr.ErrUnauthorized
	}
	return m, nil
}

// FindForGoogle resolves a Google identity to an existing member, linking
// the subject on first use. Members are never created here.
func FindForGoogle(db *gorm.DB, sub, email string) (Member, error) {
	var m Member
	if sub != "" {
		err := db.Where("google_sub = ?", sub).First(&m).Error
		if err == nil {
			return m, nil
		}
		if !dberr.IsNotFound(err) {
			return Member{}, apperr.Persistence("members.FindForGoogle", err)
		}
	}

	m, err := FindByEmail(db, email)
	if err != nil {
		return Member{}, err
	}
	if m.GoogleSub == nil && sub != "" {
		if err := db.Model(&Member{}).Where("id = ?", m.ID).Update("google_sub", sub).Error; err != nil {
			return Member{}, apperr.Persistence("members.FindForGoogle", err)
		}
		m.GoogleSub = &sub
	}
	return m, nil
}

// SetProfilePicture stores the path of a member's uploaded picture.
func SetProfilePicture(db *gorm.DB, id uint, path string) error {
	res := db.Model(&Member{}).Where("id = ?", id).Update("profile_picture", path)
	if res.Error != nil {
		return apperr.Persistence("members.SetProfilePicture", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Member")
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
