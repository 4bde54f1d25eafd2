package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/event"
)

// EventHandler はカレンダーのエンドポイント群です。
type EventHandler struct {
	usecase event.UseCase
}

// NewEventHandler は EventHandler を生成します。
func NewEventHandler(usecase event.UseCase) *EventHandler {
	return &EventHandler{usecase: usecase}
}

type createEventRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

// List は現在ユーザーが所有する予定だけを返します。
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.usecase.OwnerScoped(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Create は現在ユーザーを所有者とする予定を作成します。
func (h *EventHandler) Create(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	e, err := h.usecase.CreateEvent(c.Request.Context(), event.CreateEventInput{
		Title: req.Title,
		Date:  req.Date,
		Time:  req.Time,
		Type:  event.Type(req.Type),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}
