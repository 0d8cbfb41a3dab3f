package models

import (
	"time"
)

type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	PostID  uint   `gorm:"not null;index" json:"post_id"`
	Post    Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"post"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content string `gorm:"type:text;not null" json:"content"`

	// ParentID nil marks a top-level comment. A parent always belongs to
	// the same post; creation clears references that do not.
	ParentID *uint    `gorm:"index" json:"parent_id"`
	Parent   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`

	CreatedAt time.Time `json:"created_at"`

	// Filled when listing a post's comment tree, not stored.
	Replies []Comment `gorm:"-" json:"replies"`
}
