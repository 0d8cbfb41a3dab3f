package models

import (
	"time"
)

// Report targets a user, a post, or both. Reporting a post also records the
// post's author as the reported user.
type Report struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ReporterID uint `gorm:"not null;index" json:"reporter_id"`
	Reporter   User `gorm:"foreignKey:ReporterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reporter"`

	ReportedUserID *uint `gorm:"index" json:"reported_user_id"`
	ReportedUser   *User `gorm:"foreignKey:ReportedUserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reported_user"`
	ReportedPostID *uint `gorm:"index" json:"reported_post_id"`
	ReportedPost   *Post `gorm:"foreignKey:ReportedPostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reported_post"`

	Reason     string    `gorm:"size:255;not null" json:"reason"`
	IsResolved bool      `gorm:"default:false" json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}
