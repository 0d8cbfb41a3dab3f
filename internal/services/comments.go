package services

import (
	"errors"

	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment content is empty")

// CreateComment stores a new comment on a post. A submitted parent id is
// honored only when the referenced comment exists and belongs to the same
// post; otherwise the comment is silently demoted to top-level rather than
// rejected.
func CreateComment(userID, postID uint, content string, parentID *uint) (*models.Comment, error) {
	if content == "" {
		return nil, ErrEmptyComment
	}

	var resolved *uint
	if parentID != nil && *parentID != 0 {
		var parent models.Comment
		if err := db.DB.First(&parent, *parentID).Error; err == nil && parent.PostID == postID {
			resolved = &parent.ID
		}
	}

	comment := models.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		ParentID: resolved,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment together with its reply subtree, so no
// reply is left pointing at a missing parent.
func DeleteComment(commentID uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		ids := []uint{commentID}
		frontier := ids
		for len(frontier) > 0 {
			var children []uint
			if err := tx.Model(&models.Comment{}).Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		return tx.Where("id IN ?", ids).Delete(&models.Comment{}).Error
	})
}

// ListComments returns a post's comment forest with comments by currently
// banned users removed from the whole set, not just the top level. The
// filtering is transitive: a hidden comment hides its replies too, so the
// tree never shows an orphaned branch. Top-level comments are ordered newest
// first; replies keep submission order.
func ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.DB.Preload("User").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ? AND users.is_banned = ?", postID, false).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*models.Comment, len(comments))
	for i := range comments {
		byID[comments[i].ID] = &comments[i]
	}

	// Group replies under their parent when the parent survived the ban
	// filter. A reply whose parent is hidden stays detached, so a banned
	// user's whole branch disappears together.
	children := make(map[uint][]*models.Comment)
	var topLevel []*models.Comment
	for i := range comments {
		c := &comments[i]
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
			continue
		}
		if _, ok := byID[*c.ParentID]; ok {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	// Materialize depth-first so replies at any depth end up inside their
	// parent's Replies, not only the first level. Parent ids are set once at
	// creation from pre-existing comments, so the structure cannot cycle.
	var materialize func(c *models.Comment) models.Comment
	materialize = func(c *models.Comment) models.Comment {
		node := *c
		for _, child := range children[c.ID] {
			node.Replies = append(node.Replies, materialize(child))
		}
		return node
	}

	// Newest top-level first; replies keep ascending creation order.
	out := make([]models.Comment, 0, len(topLevel))
	for i := len(topLevel) - 1; i >= 0; i-- {
		out = append(out, materialize(topLevel[i]))
	}
	return out, nil
}
