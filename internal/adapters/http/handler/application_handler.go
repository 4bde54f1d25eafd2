package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/application"
)

// ApplicationHandler は応募のエンドポイント群です。
type ApplicationHandler struct {
	usecase application.UseCase
}

// NewApplicationHandler は ApplicationHandler を生成します。
func NewApplicationHandler(usecase application.UseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: usecase}
}

type applyRequest struct {
	JobID string `json:"jobId" binding:"required"`
	CVID  string `json:"cvId" binding:"required"`
}

type applyResponse struct {
	Application *application.Application `json:"application"`
	Duplicate   bool                     `json:"duplicate"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply は現在ユーザーとして求人へ応募します。再応募の場合は既存の応募を
// duplicate フラグ付きで返し、コレクションは変化しません。
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.usecase.Apply(c.Request.Context(), application.ApplyInput{JobID: req.JobID, CVID: req.CVID})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, applyResponse{Application: result.Application, Duplicate: result.Duplicate})
}

// UpdateStatus は応募の選考状態を変更します。
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	a, err := h.usecase.UpdateStatus(c.Request.Context(), application.UpdateStatusInput{
		ID:     c.Param("id"),
		Status: application.Status(req.Status),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Mine は現在ユーザーが応募者である応募を返します。
func (h *ApplicationHandler) Mine(c *gin.Context) {
	apps, err := h.usecase.MyApplications(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Inbox は現在の HR ユーザーが所有する求人への応募を返します。
func (h *ApplicationHandler) Inbox(c *gin.Context) {
	apps, err := h.usecase.Inbox(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Counts は求人 ID ごとの応募数を返します。
func (h *ApplicationHandler) Counts(c *gin.Context) {
	counts, err := h.usecase.CountsByJob(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
