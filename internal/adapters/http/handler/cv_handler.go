package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/cv"
)

// CVHandler は履歴書管理のエンドポイント群です。
type CVHandler struct {
	usecase cv.UseCase
}

// NewCVHandler は CVHandler を生成します。
func NewCVHandler(usecase cv.UseCase) *CVHandler {
	return &CVHandler{usecase: usecase}
}

type addCVRequest struct {
	Name string `json:"name" binding:"required"`
	Tag  string `json:"tag"`
	Link string `json:"link"`
}

// List は履歴書の一覧を新しい順で返します。
func (h *CVHandler) List(c *gin.Context) {
	cvs, err := h.usecase.ListCVs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cvs)
}

// Create は履歴書を登録します。
func (h *CVHandler) Create(c *gin.Context) {
	var req addCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.usecase.AddCV(c.Request.Context(), cv.AddCVInput{
		Name: req.Name,
		Tag:  req.Tag,
		Link: req.Link,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Delete は履歴書を削除します。
func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.usecase.RemoveCV(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
