package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"campuslink/internal/db"
	"campuslink/internal/middleware"
	"campuslink/internal/models"
	"campuslink/internal/services"
	"campuslink/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Profile is the public profile page /u/:username.
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var posts []models.Post
	db.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&posts)
	fillCommentCounts(posts)

	Render(c, http.StatusOK, "user/profile.html", gin.H{
		"User":  user,
		"Posts": posts,
	})
}

// MyProfile redirects /profile to the session user's public page.
func (h *UserHandler) MyProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.Redirect(http.StatusFound, "/u/"+user.Username)
}

// UpdateProfile changes profile fields and, subject to the 7-day cooldown,
// the username. Profanity anywhere rejects the whole update.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	newUsername := strings.TrimSpace(c.PostForm("username"))
	university := strings.TrimSpace(c.PostForm("university"))
	position := strings.TrimSpace(c.PostForm("position"))
	bio := strings.TrimSpace(c.PostForm("bio"))
	password := c.PostForm("password")

	if utils.ContainsProfanity(university) || utils.ContainsProfanity(bio) ||
		utils.ContainsProfanity(position) || (newUsername != "" && utils.ContainsProfanity(newUsername)) {
		SetFlash(c, "error", "Prohibited words detected. Profile not updated.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	updates := map[string]interface{}{
		"university": university,
		"position":   position,
		"bio":        bio,
	}

	if newUsername != "" && newUsername != user.Username {
		if !user.CanChangeUsername() {
			SetFlash(c, "error", fmt.Sprintf("You must wait %d more day(s) to change your username.", user.DaysUntilUsernameChange()))
		} else {
			var existing models.User
			if err := db.DB.Where("username = ?", newUsername).First(&existing).Error; err == nil {
				SetFlash(c, "error", "That username is unfortunately taken.")
			} else {
				now := time.Now()
				updates["username"] = newUsername
				updates["last_username_change"] = &now
				user.Username = newUsername
				SetFlash(c, "success", "Username changed.")
			}
		}
	}

	if password != "" {
		hash, err := utils.HashPassword(password)
		if err != nil {
			SetFlash(c, "error", "Could not update the password.")
			c.Redirect(http.StatusFound, "/profile")
			return
		}
		updates["password_hash"] = hash
	}

	if err := db.DB.Model(user).Updates(updates).Error; err != nil {
		log.Printf("Failed to update profile for user %d: %v", user.ID, err)
		SetFlash(c, "error", "Profile update failed, please try again.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	SetFlash(c, "success", "Profile updated.")
	c.Redirect(http.StatusFound, "/profile")
}

// ReportUser files a report against another account. Self-reports are
// rejected and leave no trace.
func (h *UserHandler) ReportUser(c *gin.Context) {
	user := middleware.CurrentUser(c)
	targetID := utils.StringToUint(c.Param("id"))
	reason := strings.TrimSpace(c.PostForm("reason"))

	err := services.ReportUser(user.ID, targetID, reason)
	switch err {
	case nil:
		SetFlash(c, "success", "User reported. The moderators will review it.")
	case services.ErrSelfReport:
		SetFlash(c, "error", "You cannot report yourself.")
		c.Redirect(http.StatusFound, "/u/"+user.Username)
		return
	case services.ErrEmptyReason:
		SetFlash(c, "error", "Please provide a reason.")
	case services.ErrUserNotFound:
		c.Status(http.StatusNotFound)
		return
	default:
		log.Printf("Failed to report user %d: %v", targetID, err)
		SetFlash(c, "error", "Could not submit the report, please try again.")
	}

	var target models.User
	if dbErr := db.DB.First(&target, targetID).Error; dbErr == nil {
		c.Redirect(http.StatusFound, "/u/"+target.Username)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ReportPost files a report against a post (and its author).
func (h *UserHandler) ReportPost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))
	reason := strings.TrimSpace(c.PostForm("reason"))

	err := services.ReportPost(user.ID, postID, reason)
	switch err {
	case nil:
		SetFlash(c, "success", "Post reported.")
	case services.ErrSelfReport:
		SetFlash(c, "error", "You cannot report your own post.")
	case services.ErrEmptyReason:
		SetFlash(c, "error", "Please provide a reason.")
	case services.ErrPostNotFound:
		c.Status(http.StatusNotFound)
		return
	default:
		log.Printf("Failed to report post %d: %v", postID, err)
		SetFlash(c, "error", "Could not submit the report, please try again.")
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
}

// DeleteAccount removes the user and everything they own, then ends the
// session. The cascade runs in one transaction; on failure nothing is lost.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := services.DeleteAccount(user.ID); err != nil {
		log.Printf("Failed to delete account %d: %v", user.ID, err)
		SetFlash(c, "error", "An error occurred while deleting your account. Please try again later.")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Save()

	SetFlash(c, "success", "Your account and all of its data have been deleted.")
	c.Redirect(http.StatusFound, "/")
}
