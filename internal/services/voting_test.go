package services

import (
	"testing"

	"campuslink/internal/db"
	"campuslink/internal/models"
)

func countVotes(t *testing.T, postID uint) int64 {
	t.Helper()
	var count int64
	db.DB.Model(&models.Vote{}).Where("post_id = ?", postID).Count(&count)
	return count
}

func TestTogglePostVote_SameDirectionRetracts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "test post")

	if err := TogglePostVote(user.ID, post.ID, 1); err != nil {
		t.Fatalf("first upvote failed: %v", err)
	}
	if got := countVotes(t, post.ID); got != 1 {
		t.Fatalf("expected 1 vote row, got %d", got)
	}

	if err := TogglePostVote(user.ID, post.ID, 1); err != nil {
		t.Fatalf("second upvote failed: %v", err)
	}
	if got := countVotes(t, post.ID); got != 0 {
		t.Errorf("expected upvote twice to leave 0 rows, got %d", got)
	}
}

func TestTogglePostVote_OppositeDirectionFlips(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "test post")

	if err := TogglePostVote(user.ID, post.ID, 1); err != nil {
		t.Fatalf("upvote failed: %v", err)
	}
	if err := TogglePostVote(user.ID, post.ID, -1); err != nil {
		t.Fatalf("downvote failed: %v", err)
	}

	if got := countVotes(t, post.ID); got != 1 {
		t.Fatalf("expected exactly 1 vote row after flip, got %d", got)
	}
	var vote models.Vote
	db.DB.Where("user_id = ? AND post_id = ?", user.ID, post.ID).First(&vote)
	if vote.Value != -1 {
		t.Errorf("expected flipped vote value -1, got %d", vote.Value)
	}
}

func TestTogglePostVote_RejectsInvalidValue(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice")
	post := createTestPost(t, user, "test post")

	if err := TogglePostVote(user.ID, post.ID, 5); err == nil {
		t.Error("expected error for vote value 5")
	}
}

func TestPostScoreAndCounts(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "scored post")

	voters := []struct {
		name  string
		value int
	}{
		{"u1", 1}, {"u2", 1}, {"u3", -1},
	}
	for _, v := range voters {
		u := createTestUser(t, v.name)
		if err := TogglePostVote(u.ID, post.ID, v.value); err != nil {
			t.Fatalf("vote by %s failed: %v", v.name, err)
		}
	}

	if score := PostScore(post.ID); score != 1 {
		t.Errorf("expected score 1, got %d", score)
	}
	likes, dislikes := PostVoteCounts(post.ID)
	if likes != 2 || dislikes != 1 {
		t.Errorf("expected 2 likes / 1 dislike, got %d / %d", likes, dislikes)
	}
}

func TestPostScore_EmptyIsZero(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "author")
	post := createTestPost(t, author, "unvoted")

	if score := PostScore(post.ID); score != 0 {
		t.Errorf("expected score 0 with no votes, got %d", score)
	}
}
