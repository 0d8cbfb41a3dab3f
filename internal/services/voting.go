package services

import (
	"errors"

	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/gorm"
)

// TogglePostVote applies the single-vote-per-post rule: no existing vote
// creates one, the same direction retracts it, the opposite direction flips
// it. value must be 1 or -1.
func TogglePostVote(userID, postID uint, value int) error {
	if value != 1 && value != -1 {
		return errors.New("vote value must be 1 or -1")
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Vote
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		switch {
		case err == nil && existing.Value == value:
			// Toggle off
			return tx.Delete(&existing).Error
		case err == nil:
			return tx.Model(&existing).Update("value", value).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(&models.Vote{UserID: userID, PostID: postID, Value: value}).Error
		default:
			return err
		}
	})
}

// PostScore is the sum of all vote values for a post.
func PostScore(postID uint) int {
	var score *int
	db.DB.Model(&models.Vote{}).Where("post_id = ?", postID).
		Select("SUM(value)").Scan(&score)
	if score == nil {
		return 0
	}
	return *score
}

// PostVoteCounts returns the number of +1 and -1 rows for a post.
func PostVoteCounts(postID uint) (likes, dislikes int64) {
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = 1", postID).Count(&likes)
	db.DB.Model(&models.Vote{}).Where("post_id = ? AND value = -1", postID).Count(&dislikes)
	return likes, dislikes
}

// UserPostVote returns the current user's vote value for a post, 0 when none.
func UserPostVote(userID, postID uint) int {
	var vote models.Vote
	if err := db.DB.Where("user_id = ? AND post_id = ?", userID, postID).First(&vote).Error; err != nil {
		return 0
	}
	return vote.Value
}
