package models

import (
	"time"
)

// Category is the closed set of post categories. Unknown slugs are rejected
// at the boundary, never coerced.
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryQuestion   Category = "question"
	CategoryAdvice     Category = "advice"
	CategoryExperience Category = "experience"
)

var categoryLabels = map[Category]string{
	CategoryGeneral:    "General",
	CategoryQuestion:   "Q&A",
	CategoryAdvice:     "Advice",
	CategoryExperience: "Experience",
}

// ParseCategory maps a form/query slug to a Category.
func ParseCategory(slug string) (Category, bool) {
	c := Category(slug)
	_, ok := categoryLabels[c]
	return c, ok
}

// Label returns the display name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return categoryLabels[CategoryGeneral]
}

// Categories returns the closed set in display order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryQuestion, CategoryAdvice, CategoryExperience}
}

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Category  Category  `gorm:"size:20;not null" json:"category"`
	ViewCount int       `gorm:"default:0" json:"view_count"`
	CreatedAt time.Time `json:"created_at"`

	// Filled by queries, not stored.
	CommentCount int `gorm:"-" json:"comment_count"`
}
