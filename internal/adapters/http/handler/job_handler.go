package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/job"
)

// JobHandler は求人ボードのエンドポイント群です。
type JobHandler struct {
	usecase job.UseCase
}

// NewJobHandler は JobHandler を生成します。
func NewJobHandler(usecase job.UseCase) *JobHandler {
	return &JobHandler{usecase: usecase}
}

type postJobRequest struct {
	Title            string   `json:"title" binding:"required"`
	Company          string   `json:"company" binding:"required"`
	Location         string   `json:"location"`
	Type             string   `json:"type" binding:"required"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
}

type savedIDsResponse struct {
	IDs []string `json:"ids"`
}

// List は求人の一覧を新しい順で返します。
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.usecase.ListJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get は ID で求人を返します。
func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.usecase.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// Create は HR ユーザーとして求人を作成します。
func (h *JobHandler) Create(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	j, err := h.usecase.PostJob(c.Request.Context(), job.PostJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             job.Type(req.Type),
		Salary:           req.Salary,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

// ListSaved は現在ユーザーの保存済み求人を返します。
func (h *JobHandler) ListSaved(c *gin.Context) {
	jobs, err := h.usecase.SavedJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Save は求人を保存済み集合へ追加します。既に保存済みの場合も成功します。
func (h *JobHandler) Save(c *gin.Context) {
	ids, err := h.usecase.SaveJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, savedIDsResponse{IDs: ids})
}

// Unsave は求人を保存済み集合から取り除きます。
func (h *JobHandler) Unsave(c *gin.Context) {
	ids, err := h.usecase.UnsaveJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, savedIDsResponse{IDs: ids})
}
