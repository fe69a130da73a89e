package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripondo/tripondo-backend/internal/config"
	"github.com/tripondo/tripondo-backend/internal/models"
	"github.com/tripondo/tripondo-backend/internal/services"
)

// CommunityHandler handles the community feed HTTP requests
type CommunityHandler struct {
	communityService *services.CommunityService
	cfg              *config.Config
}

// NewCommunityHandler creates a new CommunityHandler
func NewCommunityHandler(communityService *services.CommunityService, cfg *config.Config) *CommunityHandler {
	return &CommunityHandler{
		communityService: communityService,
		cfg:              cfg,
	}
}

// CreatePost handles POST /community/add. The body is multipart form data
// with a "text" field and an optional "image" file, stored locally under the
// uploads directory.
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}

	post := &models.CommunityPost{
		UserID: userID,
		Text:   c.PostForm("text"),
	}

	if file, err := c.FormFile("image"); err == nil {
		filename := uuid.NewString() + filepath.Ext(file.Filename)
		dest := filepath.Join(h.cfg.Uploads.Dir, filename)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to store image"})
			return
		}
		post.Image = "/uploads/" + filename
	}

	created, err := h.communityService.CreatePost(c, post)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Post published", "post": created})
}

// GetPostByID handles GET /community/get/:postId
func (h *CommunityHandler) GetPostByID(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	post, err := h.communityService.GetPostByID(c, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "post": post})
}

// GetAllPosts handles GET /community/get
func (h *CommunityHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.communityService.GetAllPosts(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

// ToggleLike handles PATCH /community/:postId/like
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	liked, err := h.communityService.ToggleLike(c, postID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Like removed"
	if liked {
		message = "Post liked"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "liked": liked})
}

// AddComment handles POST /community/:postId/comment
func (h *CommunityHandler) AddComment(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}

	var payload struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.communityService.AddComment(c, postID, userID, payload.Text); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Comment added"})
}

// GetComments handles GET /community/:postId/comments
func (h *CommunityHandler) GetComments(c *gin.Context) {
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	comments, err := h.communityService.GetComments(c, postID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}

// DeletePost handles DELETE /community/:postId
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	userID, ok := actingUserID(c)
	if !ok {
		return
	}
	postID, ok := parseID(c, "postId")
	if !ok {
		return
	}
	if err := h.communityService.DeletePost(c, postID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Post deleted"})
}
