package services

import (
	"testing"

	"campuslink/internal/db"
	"campuslink/internal/models"
)

func TestRealismAverage(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "rated post")

	u1 := createTestUser(t, "u1")
	u2 := createTestUser(t, "u2")

	if err := SubmitAcademicFeature(u1.ID, post.ID, models.FeatureRealismScore, 4); err != nil {
		t.Fatalf("first score failed: %v", err)
	}
	if err := SubmitAcademicFeature(u2.ID, post.ID, models.FeatureRealismScore, 8); err != nil {
		t.Fatalf("second score failed: %v", err)
	}

	if avg := RealismAverage(post.ID); avg != 6.0 {
		t.Errorf("expected average 6.0 for scores 4 and 8, got %v", avg)
	}
}

func TestRealismAverage_NoVotesIsZero(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "unrated post")

	if avg := RealismAverage(post.ID); avg != 0 {
		t.Errorf("expected 0 with no scores, got %v", avg)
	}
}

func TestRealismScore_OverwritesInPlace(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "rated post")
	u := createTestUser(t, "u1")

	if err := SubmitAcademicFeature(u.ID, post.ID, models.FeatureRealismScore, 3); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if err := SubmitAcademicFeature(u.ID, post.ID, models.FeatureRealismScore, 9); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}

	var rows []models.AcademicFeature
	db.DB.Where("post_id = ? AND type = ?", post.ID, models.FeatureRealismScore).Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row after resubmit, got %d", len(rows))
	}
	if rows[0].Value != 9 {
		t.Errorf("expected overwritten value 9, got %d", rows[0].Value)
	}
}

func TestRealismScore_RejectsOutOfRange(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "rated post")
	u := createTestUser(t, "u1")

	for _, v := range []int{0, 11, -3} {
		if err := SubmitAcademicFeature(u.ID, post.ID, models.FeatureRealismScore, v); err != ErrInvalidFeatureValue {
			t.Errorf("value %d: expected ErrInvalidFeatureValue, got %v", v, err)
		}
	}
}

func TestFlagFeature_TogglesOff(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "flagged post")
	u := createTestUser(t, "u1")

	if err := SubmitAcademicFeature(u.ID, post.ID, models.FeatureExperience, 1); err != nil {
		t.Fatalf("flag set failed: %v", err)
	}
	if got := FeatureCount(post.ID, models.FeatureExperience); got != 1 {
		t.Fatalf("expected 1 flag, got %d", got)
	}

	if err := SubmitAcademicFeature(u.ID, post.ID, models.FeatureExperience, 1); err != nil {
		t.Fatalf("flag toggle failed: %v", err)
	}
	if got := FeatureCount(post.ID, models.FeatureExperience); got != 0 {
		t.Errorf("expected toggle-off to remove the flag, got %d rows", got)
	}
}

func TestParseFeatureType_RejectsUnknown(t *testing.T) {
	if _, ok := models.ParseFeatureType("favorite"); ok {
		t.Error("expected unknown feature type to be rejected")
	}
	for _, s := range []string{"realism_score", "is_experience", "is_wish_knew"} {
		if _, ok := models.ParseFeatureType(s); !ok {
			t.Errorf("expected %q to parse", s)
		}
	}
}
