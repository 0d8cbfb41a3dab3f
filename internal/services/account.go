package services

import (
	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/gorm"
)

// DeleteAccount removes a user and every dependent row in one transaction:
// the user's posts with all of their comments, votes, academic features,
// views and reports, then the user's own comments, votes, features, views,
// and any report where they are reporter or reported party. The deletion is
// total and irreversible; any failure rolls the whole thing back.
func DeleteAccount(userID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Vote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.AcademicFeature{}).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.PostView{}).Error; err != nil {
				return err
			}
			if err := tx.Where("reported_post_id IN ?", postIDs).Delete(&models.Report{}).Error; err != nil {
				return err
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.AcademicFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.PostView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reporter_id = ? OR reported_user_id = ?", userID, userID).
			Delete(&models.Report{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}

// DeletePost removes a post and its dependent rows in one transaction.
func DeletePost(postID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.AcademicFeature{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("reported_post_id = ?", postID).Delete(&models.Report{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}
