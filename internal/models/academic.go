package models

import (
	"time"
)

// FeatureType is the closed set of academic annotation types.
type FeatureType string

const (
	// FeatureRealismScore carries a 1-10 value and is overwritten on resubmit.
	FeatureRealismScore FeatureType = "realism_score"
	// FeatureExperience and FeatureWishKnew are presence flags: resubmitting
	// deletes the row (toggle-off).
	FeatureExperience FeatureType = "is_experience"
	FeatureWishKnew   FeatureType = "is_wish_knew"
)

// ParseFeatureType rejects unknown annotation types at the boundary.
func ParseFeatureType(s string) (FeatureType, bool) {
	switch t := FeatureType(s); t {
	case FeatureRealismScore, FeatureExperience, FeatureWishKnew:
		return t, true
	}
	return "", false
}

// IsFlag reports whether the type uses toggle-off semantics.
func (t FeatureType) IsFlag() bool {
	return t == FeatureExperience || t == FeatureWishKnew
}

// AcademicFeature records one reader's judgment of a post, distinct from the
// primary up/down vote. Unique per (user, post, type).
type AcademicFeature struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	UserID    uint        `gorm:"not null;uniqueIndex:idx_user_post_feature" json:"user_id"`
	PostID    uint        `gorm:"not null;uniqueIndex:idx_user_post_feature;index" json:"post_id"`
	Type      FeatureType `gorm:"size:20;not null;uniqueIndex:idx_user_post_feature" json:"type"`
	Value     int         `gorm:"not null" json:"value"`
	CreatedAt time.Time   `json:"created_at"`
}
