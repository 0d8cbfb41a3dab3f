package models

import (
	"time"
)

// UsernameChangeCooldown is how long a user must wait between renames.
const UsernameChangeCooldown = 7 * 24 * time.Hour

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	University string `gorm:"size:120" json:"university"`
	Position   string `gorm:"size:120" json:"position"` // Student, Professor, Alumni
	Bio        string `gorm:"size:500" json:"bio"`

	ProfileImage string `gorm:"size:150;default:'default.png'" json:"profile_image"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	IsVerified       bool   `gorm:"default:false" json:"is_verified"`
	VerificationType string `gorm:"size:50" json:"verification_type"` // student_email, academic_email, alumni

	// Ban state. BanExpiresAt nil while IsBanned means a permanent ban.
	IsBanned        bool       `gorm:"default:false" json:"is_banned"`
	BanReason       string     `gorm:"size:255" json:"ban_reason"`
	BanAppealReason string     `gorm:"type:text" json:"ban_appeal_reason"`
	BanExpiresAt    *time.Time `json:"ban_expires_at"`

	LastUsernameChange *time.Time `json:"last_username_change"`
	CreatedAt          time.Time  `json:"created_at"`
	// No DeletedAt: account deletion is hard and total.
}

// CanChangeUsername reports whether the rename cooldown has elapsed.
func (u *User) CanChangeUsername() bool {
	if u.LastUsernameChange == nil {
		return true
	}
	return time.Now().After(u.LastUsernameChange.Add(UsernameChangeCooldown))
}

// DaysUntilUsernameChange returns the whole days left before the next
// allowed rename, 0 when renaming is already allowed.
func (u *User) DaysUntilUsernameChange() int {
	if u.LastUsernameChange == nil {
		return 0
	}
	remaining := time.Until(u.LastUsernameChange.Add(UsernameChangeCooldown))
	if remaining <= 0 {
		return 0
	}
	return int(remaining.Hours()/24) + 1
}

// BanIsPermanent reports whether the active ban has no expiry.
func (u *User) BanIsPermanent() bool {
	return u.IsBanned && u.BanExpiresAt == nil
}
