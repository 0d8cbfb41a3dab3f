package handlers

import (
	"fmt"
	"log"
	"net/http"

	"campuslink/internal/db"
	"campuslink/internal/middleware"
	"campuslink/internal/models"
	"campuslink/internal/services"
	"campuslink/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct{}

func NewVoteHandler() *VoteHandler {
	return &VoteHandler{}
}

// Vote handles /vote/:id/:action where action is "up" or "down". Repeating
// the same direction retracts the vote; the opposite direction flips it.
func (h *VoteHandler) Vote(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var value int
	switch c.Param("action") {
	case "up":
		value = 1
	case "down":
		value = -1
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	if err := services.TogglePostVote(user.ID, post.ID, value); err != nil {
		log.Printf("Failed to toggle vote on post %d: %v", post.ID, err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// VoteAcademic handles /vote_academic/:id/:type with form field "value".
// Unknown types are rejected at the boundary.
func (h *VoteHandler) VoteAcademic(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	ftype, ok := models.ParseFeatureType(c.Param("type"))
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	value := utils.StringToInt(c.DefaultPostForm("value", "1"))
	if err := services.SubmitAcademicFeature(user.ID, post.ID, ftype, value); err != nil {
		if err == services.ErrInvalidFeatureValue {
			c.Status(http.StatusBadRequest)
			return
		}
		log.Printf("Failed to submit academic feature on post %d: %v", post.ID, err)
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}
