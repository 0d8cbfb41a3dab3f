package handlers

import (
	"log"
	"net/http"
	"strings"

	"campuslink/internal/db"
	"campuslink/internal/models"
	"campuslink/internal/services"
	"campuslink/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// ListReports shows unresolved reports plus the currently banned users, so
// pending appeals are reviewed from the same page.
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := services.OpenReports()
	if err != nil {
		log.Printf("Failed to load reports: %v", err)
	}

	var bannedUsers []models.User
	db.DB.Where("is_banned = ?", true).Order("created_at DESC").Find(&bannedUsers)

	Render(c, http.StatusOK, "admin/reports.html", gin.H{
		"Reports":     reports,
		"BannedUsers": bannedUsers,
	})
}

// ResolveReport marks a report handled.
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	reportID := utils.StringToUint(c.Param("id"))

	if err := services.ResolveReport(reportID); err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	SetFlash(c, "success", "Report marked as resolved.")
	c.Redirect(http.StatusFound, "/admin/reports")
}

// BanUser bans an account with a reason and a duration selector; anything
// other than the known durations means permanent.
func (h *AdminHandler) BanUser(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))
	reason := strings.TrimSpace(c.PostForm("reason"))
	duration := services.BanDuration(c.PostForm("duration"))

	if err := services.BanUser(userID, reason, duration); err != nil {
		if err == services.ErrUserNotFound {
			c.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to ban user %d: %v", userID, err)
		SetFlash(c, "error", "Could not ban the user, please try again.")
		c.Redirect(http.StatusFound, "/admin/reports")
		return
	}

	SetFlash(c, "success", "User banned.")
	c.Redirect(http.StatusFound, "/")
}

// UnbanUser lifts a ban, clearing reason, expiry and appeal.
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	if err := services.UnbanUser(userID); err != nil {
		if err == services.ErrUserNotFound {
			c.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to unban user %d: %v", userID, err)
		SetFlash(c, "error", "Could not lift the ban, please try again.")
		c.Redirect(http.StatusFound, "/admin/reports")
		return
	}

	SetFlash(c, "success", "Ban lifted.")
	c.Redirect(http.StatusFound, "/admin/reports")
}

// RejectAppeal clears a pending appeal; the ban stays in place.
func (h *AdminHandler) RejectAppeal(c *gin.Context) {
	userID := utils.StringToUint(c.Param("id"))

	if err := services.RejectAppeal(userID); err != nil {
		if err == services.ErrUserNotFound {
			c.Status(http.StatusNotFound)
			return
		}
		log.Printf("Failed to reject appeal for user %d: %v", userID, err)
		SetFlash(c, "error", "Could not reject the appeal, please try again.")
		c.Redirect(http.StatusFound, "/admin/reports")
		return
	}

	SetFlash(c, "info", "Appeal rejected.")
	c.Redirect(http.StatusFound, "/admin/reports")
}
