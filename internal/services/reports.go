package services

import (
	"errors"

	"campuslink/internal/db"
	"campuslink/internal/models"
)

var (
	ErrSelfReport    = errors.New("cannot report yourself")
	ErrEmptyReason   = errors.New("report reason is required")
	ErrPostNotFound  = errors.New("post not found")
	ErrReportMissing = errors.New("report not found")
)

// ReportUser files a report against another user's account.
func ReportUser(reporterID, reportedUserID uint, reason string) error {
	if reporterID == reportedUserID {
		return ErrSelfReport
	}
	if reason == "" {
		return ErrEmptyReason
	}
	var target models.User
	if err := db.DB.First(&target, reportedUserID).Error; err != nil {
		return ErrUserNotFound
	}

	return db.DB.Create(&models.Report{
		ReporterID:     reporterID,
		ReportedUserID: &target.ID,
		Reason:         reason,
	}).Error
}

// ReportPost files a report against a post. The post's author is recorded
// alongside the post itself. Reporting your own post is rejected.
func ReportPost(reporterID, postID uint, reason string) error {
	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		return ErrPostNotFound
	}
	if post.UserID == reporterID {
		return ErrSelfReport
	}
	if reason == "" {
		return ErrEmptyReason
	}

	return db.DB.Create(&models.Report{
		ReporterID:     reporterID,
		ReportedPostID: &post.ID,
		ReportedUserID: &post.UserID,
		Reason:         reason,
	}).Error
}

// ResolveReport flips a report to resolved. There are no further states.
func ResolveReport(reportID uint) error {
	var report models.Report
	if err := db.DB.First(&report, reportID).Error; err != nil {
		return ErrReportMissing
	}
	return db.DB.Model(&report).Update("is_resolved", true).Error
}

// OpenReports lists unresolved reports, newest first, for the admin view.
func OpenReports() ([]models.Report, error) {
	var reports []models.Report
	err := db.DB.Preload("Reporter").Preload("ReportedUser").Preload("ReportedPost").
		Where("is_resolved = ?", false).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
