package services

import (
	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordView counts a post view at most once per authenticated user. The
// PostView row is inserted first; only a fresh insert bumps the counter, so
// repeat visits are no-ops. Anonymous viewers are never counted. A concurrent
// duplicate loses to the unique index rather than double counting.
func RecordView(userID, postID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.PostView{UserID: userID, PostID: postID})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Already counted for this user.
			return nil
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
}
