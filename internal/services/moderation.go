package services

import (
	"errors"
	"time"

	"campuslink/internal/db"
	"campuslink/internal/models"
)

// BanDuration is the admin-facing duration selector. Anything outside the
// known set falls back to permanent.
type BanDuration string

const (
	BanOneDay     BanDuration = "1_day"
	BanSevenDays  BanDuration = "7_days"
	BanThirtyDays BanDuration = "30_days"
	BanPermanent  BanDuration = "permanent"
)

// DefaultBanReason is used when the admin submits no reason.
const DefaultBanReason = "Rule violation"

var (
	ErrNotBanned    = errors.New("user is not banned")
	ErrUserNotFound = errors.New("user not found")
)

// expiry translates the duration selector into an absolute expiry time.
// Nil means permanent.
func (d BanDuration) expiry(now time.Time) *time.Time {
	var t time.Time
	switch d {
	case BanOneDay:
		t = now.AddDate(0, 0, 1)
	case BanSevenDays:
		t = now.AddDate(0, 0, 7)
	case BanThirtyDays:
		t = now.AddDate(0, 0, 30)
	default:
		return nil
	}
	return &t
}

// BanUser puts a user into the banned state, replacing any previous ban.
func BanUser(userID uint, reason string, duration BanDuration) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	if reason == "" {
		reason = DefaultBanReason
	}

	return db.DB.Model(&user).Updates(map[string]interface{}{
		"is_banned":      true,
		"ban_reason":     reason,
		"ban_expires_at": duration.expiry(time.Now()),
	}).Error
}

// UnbanUser returns a user to the active state, clearing reason, expiry and
// any pending appeal.
func UnbanUser(userID uint) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	return db.DB.Model(&user).Updates(map[string]interface{}{
		"is_banned":         false,
		"ban_reason":        "",
		"ban_appeal_reason": "",
		"ban_expires_at":    nil,
	}).Error
}

// SubmitAppeal stores a banned user's appeal text. Only allowed while banned.
func SubmitAppeal(user *models.User, appeal string) error {
	if !user.IsBanned {
		return ErrNotBanned
	}
	if err := db.DB.Model(user).Update("ban_appeal_reason", appeal).Error; err != nil {
		return err
	}
	user.BanAppealReason = appeal
	return nil
}

// RejectAppeal clears the appeal text; the ban itself persists.
func RejectAppeal(userID uint) error {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}
	return db.DB.Model(&user).Update("ban_appeal_reason", "").Error
}

// ClearExpiredBan is the lazy expiry check: when a ban has an expiry in the
// past, the ban fields are cleared and the user continues as active. Called
// on every authenticated request and at login; there is no background
// enforcement. Returns true when the ban was lifted.
func ClearExpiredBan(user *models.User) bool {
	if !user.IsBanned || user.BanExpiresAt == nil || time.Now().Before(*user.BanExpiresAt) {
		return false
	}

	if err := db.DB.Model(user).Updates(map[string]interface{}{
		"is_banned":         false,
		"ban_reason":        "",
		"ban_appeal_reason": "",
		"ban_expires_at":    nil,
	}).Error; err != nil {
		return false
	}

	user.IsBanned = false
	user.BanReason = ""
	user.BanAppealReason = ""
	user.BanExpiresAt = nil
	return true
}
