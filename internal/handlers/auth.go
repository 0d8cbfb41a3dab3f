package handlers

import (
	"net/http"
	"strings"

	"campuslink/internal/db"
	"campuslink/internal/middleware"
	"campuslink/internal/models"
	"campuslink/internal/services"
	"campuslink/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	university := strings.TrimSpace(c.PostForm("university"))
	bio := strings.TrimSpace(c.PostForm("bio"))

	if username == "" || password == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Error": "Username and password are required."})
		return
	}
	if utils.ContainsProfanity(username) || utils.ContainsProfanity(university) || utils.ContainsProfanity(bio) {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Error": "Prohibited words detected in username, university or bio."})
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{"Error": "That username is already taken."})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		Render(c, http.StatusInternalServerError, "auth/register.html", gin.H{"Error": "Registration failed, please try again."})
		return
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		University:   university,
		Bio:          bio,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{"Error": "That username is already taken."})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Login failed. Wrong username or password."})
		return
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Login failed. Wrong username or password."})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	if user.IsBanned {
		if services.ClearExpiredBan(&user) {
			SetFlash(c, "success", "Your ban has expired, welcome back.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		// Still banned: the session is created anyway so the user can reach
		// the appeal page.
		c.Redirect(http.StatusFound, "/banned")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

// ShowBanned renders the appeal page for banned users. Active users are sent
// back home.
func (h *AuthHandler) ShowBanned(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil || !user.IsBanned {
		c.Redirect(http.StatusFound, "/")
		return
	}
	Render(c, http.StatusOK, "auth/banned.html", gin.H{"User": user})
}

// SubmitAppeal records the banned user's appeal text.
func (h *AuthHandler) SubmitAppeal(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil || !user.IsBanned {
		c.Redirect(http.StatusFound, "/")
		return
	}

	appeal := strings.TrimSpace(c.PostForm("appeal"))
	if appeal != "" {
		if err := services.SubmitAppeal(user, appeal); err == nil {
			SetFlash(c, "success", "Your appeal has been submitted. An admin will review it.")
		}
	}
	Render(c, http.StatusOK, "auth/banned.html", gin.H{"User": user})
}
