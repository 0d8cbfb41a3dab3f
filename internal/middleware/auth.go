package middleware

import (
	"net/http"
	"strings"

	"campuslink/internal/db"
	"campuslink/internal/models"
	"campuslink/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the session user and sets it on the request context.
// The lazy ban-expiry check runs here, so an expired ban is cleared on the
// user's next authenticated request without any background process.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if userID != nil {
			var user models.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				services.ClearExpiredBan(&user)
				c.Set(CheckUserKey, &user)
			}
		}
		c.Next()
	}
}

// AuthRequired ensures a user is logged in.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired aborts with 403 unless the session user is an admin.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists || !u.(*models.User).IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// BanGate redirects authenticated, still-banned users to the appeal page.
// The exemption list is load-bearing: /banned is where the appeal lives,
// /logout must stay reachable so a banned user can leave the session, and
// static assets are needed to render the appeal page at all. This is the
// only ban gate; there is exactly one exemption list.
func BanGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, exists := c.Get(CheckUserKey)
		if !exists {
			c.Next()
			return
		}
		user := u.(*models.User)
		if !user.IsBanned {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if path == "/banned" || path == "/logout" || strings.HasPrefix(path, "/static/") {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, "/banned")
		c.Abort()
	}
}

// CurrentUser returns the request's user, or nil when anonymous.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}
