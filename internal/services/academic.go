package services

import (
	"errors"
	"math"

	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidFeatureValue = errors.New("invalid academic feature value")

// SubmitAcademicFeature applies the per-type toggle semantics: presence-flag
// types delete on resubmit, realism_score overwrites its stored value.
func SubmitAcademicFeature(userID, postID uint, ftype models.FeatureType, value int) error {
	if ftype.IsFlag() {
		value = 1
	} else if value < 1 || value > 10 {
		return ErrInvalidFeatureValue
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.AcademicFeature
		err := tx.Where("user_id = ? AND post_id = ? AND type = ?", userID, postID, ftype).
			First(&existing).Error
		switch {
		case err == nil && ftype.IsFlag():
			return tx.Delete(&existing).Error
		case err == nil:
			return tx.Model(&existing).Update("value", value).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.AcademicFeature{
				UserID: userID,
				PostID: postID,
				Type:   ftype,
				Value:  value,
			}).Error
		default:
			return err
		}
	})
}

// RealismAverage is the mean of all recorded realism scores for a post,
// rounded to one decimal, or 0 when nobody has scored it.
func RealismAverage(postID uint) float64 {
	var avg *float64
	db.DB.Model(&models.AcademicFeature{}).
		Where("post_id = ? AND type = ?", postID, models.FeatureRealismScore).
		Select("AVG(value)").Scan(&avg)
	if avg == nil {
		return 0
	}
	return math.Round(*avg*10) / 10
}

// FeatureCount returns how many users set a presence flag on a post.
func FeatureCount(postID uint, ftype models.FeatureType) int64 {
	var count int64
	db.DB.Model(&models.AcademicFeature{}).
		Where("post_id = ? AND type = ?", postID, ftype).
		Count(&count)
	return count
}

// UserFeatures returns the current user's annotations on a post, keyed by type.
func UserFeatures(userID, postID uint) map[models.FeatureType]int {
	var features []models.AcademicFeature
	db.DB.Where("user_id = ? AND post_id = ?", userID, postID).Find(&features)

	out := make(map[models.FeatureType]int, len(features))
	for _, f := range features {
		out[f.Type] = f.Value
	}
	return out
}
