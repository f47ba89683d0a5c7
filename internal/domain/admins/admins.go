package admins

import (
	"errors"
	"strings"

	"gym-backend/internal/domain/apperr"
	"gym-backend/internal/infra/dberr"
	"gym-backend/internal/lib/password"

	"gorm.io/gorm"
)

func Get(db *gorm.DB, id uint) (Admin, error) {
	var a Admin
	if err := db.First(&a, id).Error; err != nil {
		if dberr.IsNotFound(err) {
			return Admin{}, apperr.NotFound("Admin")
		}
		return Admin{}, apperr.Persistence("admins.Get", err)
	}
	return a, nil
}

// Authenticate returns the admin named username when plain matches.
func Authenticate(db *gorm.DB, username, plain string) (Admin, error) {
	var a Admin
	err := db.Where("username = ?", strings.TrimSpace(username)).First(&a).Error
	if err != nil {
		if dberr.IsNotFound(err) {
			return Admin{}, apperr.ErrUnauthorized
		}
		return Admin{}, apperr.Persistence("admins.Authenticate", err)
	}
	if err := password.Compare(a.Password, plain); err != nil {
		return Admin{}, apperr.ErrUnauthorized
	}
	return a, nil
}

func UpdateUsername(db *gorm.DB, id uint, username string) (Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Admin{}, apperr.Validation("username is required")
	}
	res := db.Model(&Admin{}).Where("id = ?", id).Update("username", username)
	if res.Error != nil {
		if dberr.IsUniqueViolation(res.Error) {
			return Admin{}, apperr.Conflict("username already taken")
		}
		return Admin{}, apperr.Persistence("admins.UpdateUsername", res.Error)
	}
	if res.RowsAffected == 0 {
		return Admin{}, apperr.NotFound("Admin")
	}
	return Get(db, id)
}

func SetProfilePicture(db *gorm.DB, id uint, path string) (Admin, error) {
	res := db.Model(&Admin{}).Where("id = ?", id).Update("profile_picture", path)
	if res.Error != nil {
		return Admin{}, apperr.Persistence("admins.SetProfilePicture", res.Error)
	}
	if res.RowsAffected == 0 {
		return Admin{}, apperr.NotFound("Admin")
	}
	return Get(db, id)
}

func ChangePassword(db *gorm.DB, id uint, oldPassword, newPassword string) error {
	if !password.IsStrong(newPassword) {
		return apperr.Validation("new password must be at least 6 characters")
	}
	a, err := Get(db, id)
	if err != nil {
		return err
	}
	if err := password.Compare(a.Password, oldPassword); err != nil {
		return apperr.Validation("old password is incorrect")
	}
	hash, err := password.Hash(newPassword)
	if err != nil {
		return apperr.Persistence("admins.ChangePassword", err)
	}
	if err := db.Model(&Admin{}).Where("id = ?", id).Update("password", hash).Error; err != nil {
		return apperr.Persistence("admins.ChangePassword", err)
	}
	return nil
}

// ErrSeedSkipped means an admin already exists and nothing was created.
var ErrSeedSkipped = errors.New("admin already present")

// Seed creates the first admin account when the table is empty.
func Seed(db *gorm.DB, username, plain, email string) (Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		return Admin{}, apperr.Validation("seed admin needs a username and password")
	}

	var n int64
	if err := db.Model(&Admin{}).Count(&n).Error; err != nil {
		return Admin{}, apperr.Persistence("admins.Seed", err)
	}
	if n > 0 {
		return Admin{}, ErrSeedSkipped
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return Admin{}, apperr.Persistence("admins.Seed", err)
	}
	a := Admin{Username: username, Email: strings.TrimSpace(email), Password: hash}
	if err := db.Create(&a).Error; err != nil {
		return Admin{}, apperr.Persistence("admins.Seed", err)
	}
	return a, nil
}
