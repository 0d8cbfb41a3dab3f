package models

import (
	"time"
)

// PostView records that a view was already counted for a (user, post) pair.
// Insert-only; the unique index makes the second insert a no-op.
type PostView struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_post_view" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_user_post_view;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
