package handlers

import (
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"campuslink/internal/db"
	"campuslink/internal/middleware"
	"campuslink/internal/models"
	"campuslink/internal/services"
	"campuslink/internal/utils"

	"github.com/gin-gonic/gin"
)

const postsPerPage = 10

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts batch-fills CommentCount for a page of posts.
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]uint, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID uint
		Count  int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[uint]int, len(results))
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}
	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
	}
}

// List is the front page: paginated posts, optional title/body search and
// category filter. Posts by banned authors are hidden.
func (h *PostHandler) List(c *gin.Context) {
	page := utils.StringToInt(c.Query("page"))
	if page < 1 {
		page = 1
	}
	query := strings.TrimSpace(c.Query("q"))
	catSlug := c.Query("cat")

	// The plain front page is hot enough to cache briefly.
	cacheKey := fmt.Sprintf("post:list:page:%d", page)
	cacheable := query == "" && catSlug == ""
	if cacheable {
		if cached := utils.GetCache().Get(cacheKey); cached != nil {
			if data, ok := cached.(gin.H); ok {
				// Render adds per-request keys, so hand it a copy; the
				// cached map itself is shared across requests.
				Render(c, http.StatusOK, "index.html", copyPageData(data))
				return
			}
		}
	}

	base := db.DB.Model(&models.Post{}).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("users.is_banned = ?", false)

	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where("posts.title ILIKE ? OR posts.content ILIKE ?", pattern, pattern)
	}

	var activeCat models.Category
	if catSlug != "" {
		if cat, ok := models.ParseCategory(catSlug); ok {
			activeCat = cat
			base = base.Where("posts.category = ?", cat)
		}
	}

	var total int64
	base.Count(&total)
	totalPages := int(math.Ceil(float64(total) / float64(postsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var posts []models.Post
	base.Preload("User").
		Order("posts.created_at DESC").
		Limit(postsPerPage).
		Offset((page - 1) * postsPerPage).
		Find(&posts)

	fillCommentCounts(posts)

	data := gin.H{
		"Posts":       posts,
		"Query":       query,
		"CurrentCat":  string(activeCat),
		"Categories":  models.Categories(),
		"CurrentPage": page,
		"TotalPages":  totalPages,
	}

	if cacheable {
		utils.GetCache().Set(cacheKey, copyPageData(data), 1*time.Minute)
	}
	Render(c, http.StatusOK, "index.html", data)
}

// copyPageData shallow-copies template data so cached pages never share a
// map with a live request.
func copyPageData(data gin.H) gin.H {
	out := make(gin.H, len(data)+3)
	for k, v := range data {
		out[k] = v
	}
	return out
}

func (h *PostHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "post/create.html", gin.H{"Categories": models.Categories()})
}

func (h *PostHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	content := strings.TrimSpace(c.PostForm("content"))
	categorySlug := c.PostForm("category")

	if title == "" || content == "" {
		SetFlash(c, "error", "Title and content are required.")
		c.Redirect(http.StatusFound, "/create")
		return
	}
	if utils.ContainsProfanity(title) || utils.ContainsProfanity(content) {
		SetFlash(c, "error", "Prohibited words found in your post.")
		c.Redirect(http.StatusFound, "/create")
		return
	}

	category, ok := models.ParseCategory(categorySlug)
	if !ok {
		SetFlash(c, "error", "Invalid category selection.")
		c.Redirect(http.StatusFound, "/create")
		return
	}

	post := models.Post{
		UserID:   user.ID,
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		log.Printf("Failed to create post: %v", err)
		SetFlash(c, "error", "Could not save your post, please try again.")
		c.Redirect(http.StatusFound, "/create")
		return
	}

	utils.GetCache().Delete("post:list:page:1")
	c.Redirect(http.StatusFound, "/")
}

func (h *PostHandler) Detail(c *gin.Context) {
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.Preload("User").First(&post, postID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	user := middleware.CurrentUser(c)
	if user != nil {
		if err := services.RecordView(user.ID, post.ID); err != nil {
			// Best effort; an uncounted view is not worth failing the page.
			log.Printf("Failed to record view for post %d: %v", post.ID, err)
		}
		// Refresh the counter the view may have bumped.
		db.DB.Select("view_count").First(&post, post.ID)
	}

	comments, err := services.ListComments(post.ID)
	if err != nil {
		log.Printf("Failed to load comments for post %d: %v", post.ID, err)
	}

	likes, dislikes := services.PostVoteCounts(post.ID)

	// Defaults keep the template comparisons simple for users who have not
	// voted yet.
	userVotes := gin.H{"main_vote": 0, "realism_score": ""}
	if user != nil {
		if v := services.UserPostVote(user.ID, post.ID); v != 0 {
			userVotes["main_vote"] = v
		}
		for t, v := range services.UserFeatures(user.ID, post.ID) {
			userVotes[string(t)] = v
		}
	}

	Render(c, http.StatusOK, "post/detail.html", gin.H{
		"Post":            post,
		"PostContent":     utils.RenderMarkdown(post.Content),
		"Comments":        comments,
		"Score":           services.PostScore(post.ID),
		"LikeCount":       likes,
		"DislikeCount":    dislikes,
		"RealismAverage":  services.RealismAverage(post.ID),
		"ExperienceCount": services.FeatureCount(post.ID, models.FeatureExperience),
		"WishKnewCount":   services.FeatureCount(post.ID, models.FeatureWishKnew),
		"UserVotes":       userVotes,
	})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		SetFlash(c, "error", "Comment content cannot be empty.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
		return
	}
	if utils.ContainsProfanity(content) {
		SetFlash(c, "error", "Your comment contains inappropriate language.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
		return
	}

	var parentID *uint
	if s := c.PostForm("parent_id"); s != "" {
		if id := utils.StringToUint(s); id != 0 {
			parentID = &id
		}
	}

	if _, err := services.CreateComment(user.ID, post.ID, utils.CleanText(content), parentID); err != nil {
		log.Printf("Failed to create comment on post %d: %v", post.ID, err)
		SetFlash(c, "error", "Could not save your comment, please try again.")
	} else {
		SetFlash(c, "success", "Your comment was added.")
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
}

// DeletePost removes a post; allowed for the author or an admin.
func (h *PostHandler) DeletePost(c *gin.Context) {
	user := middleware.CurrentUser(c)
	postID := utils.StringToUint(c.Param("id"))

	var post models.Post
	if err := db.DB.First(&post, postID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if post.UserID != user.ID && !user.IsAdmin {
		c.Status(http.StatusForbidden)
		return
	}

	if err := services.DeletePost(post.ID); err != nil {
		log.Printf("Failed to delete post %d: %v", post.ID, err)
		SetFlash(c, "error", "Could not delete the post, please try again.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", post.ID))
		return
	}

	utils.GetCache().Delete("post:list:page:1")
	SetFlash(c, "success", "Post deleted.")
	c.Redirect(http.StatusFound, "/")
}

// DeleteComment removes a comment; allowed for the author or an admin.
func (h *PostHandler) DeleteComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	commentID := utils.StringToUint(c.Param("id"))

	var comment models.Comment
	if err := db.DB.First(&comment, commentID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if comment.UserID != user.ID && !user.IsAdmin {
		c.Status(http.StatusForbidden)
		return
	}

	if err := services.DeleteComment(comment.ID); err != nil {
		log.Printf("Failed to delete comment %d: %v", comment.ID, err)
		SetFlash(c, "error", "Could not delete the comment, please try again.")
	} else {
		SetFlash(c, "success", "Comment deleted.")
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", comment.PostID))
}
