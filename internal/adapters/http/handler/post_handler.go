package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/post"
)

// PostHandler はコミュニティフィードのエンドポイント群です。
type PostHandler struct {
	usecase post.UseCase
}

// NewPostHandler は PostHandler を生成します。
func NewPostHandler(usecase post.UseCase) *PostHandler {
	return &PostHandler{usecase: usecase}
}

type createPostRequest struct {
	Content   string   `json:"content" binding:"required"`
	Tags      []string `json:"tags"`
	Anonymous bool     `json:"anonymous"`
}

// Feed は現在ユーザーの役割に対応する投稿だけを返します。
func (h *PostHandler) Feed(c *gin.Context) {
	posts, err := h.usecase.Feed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Create は現在ユーザーの役割に固定された Audience で投稿を作成します。
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	p, err := h.usecase.CreatePost(c.Request.Context(), post.CreatePostInput{
		Content:   req.Content,
		Tags:      req.Tags,
		Anonymous: req.Anonymous,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
