package services

import (
	"testing"

	"campuslink/internal/db"
	"campuslink/internal/models"
)

func TestDeleteAccount_RemovesEverything(t *testing.T) {
	setupTestDB(t)
	doomed := createTestUser(t, "doomed")
	other := createTestUser(t, "other")

	doomedPost := createTestPost(t, doomed, "doomed post")
	otherPost := createTestPost(t, other, "surviving post")

	// The doomed user's footprint: a comment on each post, votes, academic
	// features, views, reports filed by and against them.
	if _, err := CreateComment(doomed.ID, otherPost.ID, "doomed comment", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := CreateComment(other.ID, doomedPost.ID, "other's comment on doomed post", nil); err != nil {
		t.Fatal(err)
	}
	if err := TogglePostVote(doomed.ID, otherPost.ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := TogglePostVote(other.ID, doomedPost.ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := SubmitAcademicFeature(doomed.ID, otherPost.ID, models.FeatureRealismScore, 5); err != nil {
		t.Fatal(err)
	}
	if err := RecordView(doomed.ID, otherPost.ID); err != nil {
		t.Fatal(err)
	}
	if err := RecordView(other.ID, doomedPost.ID); err != nil {
		t.Fatal(err)
	}
	if err := ReportUser(doomed.ID, other.ID, "filed by doomed"); err != nil {
		t.Fatal(err)
	}
	if err := ReportPost(other.ID, doomedPost.ID, "against doomed's post"); err != nil {
		t.Fatal(err)
	}

	if err := DeleteAccount(doomed.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	counts := map[string]int64{}

	var n int64
	db.DB.Model(&models.User{}).Where("id = ?", doomed.ID).Count(&n)
	counts["user"] = n
	db.DB.Model(&models.Post{}).Where("user_id = ?", doomed.ID).Count(&n)
	counts["posts"] = n
	db.DB.Model(&models.Comment{}).Where("user_id = ? OR post_id = ?", doomed.ID, doomedPost.ID).Count(&n)
	counts["comments"] = n
	db.DB.Model(&models.Vote{}).Where("user_id = ? OR post_id = ?", doomed.ID, doomedPost.ID).Count(&n)
	counts["votes"] = n
	db.DB.Model(&models.AcademicFeature{}).Where("user_id = ?", doomed.ID).Count(&n)
	counts["features"] = n
	db.DB.Model(&models.PostView{}).Where("user_id = ? OR post_id = ?", doomed.ID, doomedPost.ID).Count(&n)
	counts["views"] = n
	db.DB.Model(&models.Report{}).Where("reporter_id = ? OR reported_user_id = ? OR reported_post_id = ?",
		doomed.ID, doomed.ID, doomedPost.ID).Count(&n)
	counts["reports"] = n

	for what, c := range counts {
		if c != 0 {
			t.Errorf("expected no %s left for the deleted user, got %d", what, c)
		}
	}

	// The other user's unrelated data survives.
	db.DB.Model(&models.Post{}).Where("id = ?", otherPost.ID).Count(&n)
	if n != 1 {
		t.Error("unrelated post should survive account deletion")
	}
	db.DB.Model(&models.Comment{}).Where("post_id = ?", otherPost.ID).Count(&n)
	if n != 0 {
		// The doomed user's comment on the surviving post is gone too.
		t.Errorf("expected doomed user's comments removed everywhere, got %d", n)
	}
}

func TestDeletePost_RemovesDependents(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	voter := createTestUser(t, "voter")
	post := createTestPost(t, author, "short lived")

	if _, err := CreateComment(voter.ID, post.ID, "nice", nil); err != nil {
		t.Fatal(err)
	}
	if err := TogglePostVote(voter.ID, post.ID, 1); err != nil {
		t.Fatal(err)
	}
	if err := SubmitAcademicFeature(voter.ID, post.ID, models.FeatureWishKnew, 1); err != nil {
		t.Fatal(err)
	}
	if err := RecordView(voter.ID, post.ID); err != nil {
		t.Fatal(err)
	}
	if err := ReportPost(voter.ID, post.ID, "meh"); err != nil {
		t.Fatal(err)
	}

	if err := DeletePost(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	var n int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&n)
	if n != 0 {
		t.Errorf("comments remain: %d", n)
	}
	db.DB.Model(&models.Vote{}).Where("post_id = ?", post.ID).Count(&n)
	if n != 0 {
		t.Errorf("votes remain: %d", n)
	}
	db.DB.Model(&models.AcademicFeature{}).Where("post_id = ?", post.ID).Count(&n)
	if n != 0 {
		t.Errorf("academic features remain: %d", n)
	}
	db.DB.Model(&models.PostView{}).Where("post_id = ?", post.ID).Count(&n)
	if n != 0 {
		t.Errorf("views remain: %d", n)
	}
	db.DB.Model(&models.Report{}).Where("reported_post_id = ?", post.ID).Count(&n)
	if n != 0 {
		t.Errorf("reports remain: %d", n)
	}
}
