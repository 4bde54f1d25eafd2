package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/assistant"
)

// AssistantHandler はアシスタントのエンドポイントです。
type AssistantHandler struct {
	usecase assistant.UseCase
}

// NewAssistantHandler は AssistantHandler を生成します。
func NewAssistantHandler(usecase assistant.UseCase) *AssistantHandler {
	return &AssistantHandler{usecase: usecase}
}

type assistantRequest struct {
	Message string `json:"message"`
}

type assistantResponse struct {
	Reply string `json:"reply"`
}

// Respond はメッセージへの定型返答を返します。
func (h *AssistantHandler) Respond(c *gin.Context) {
	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	reply, err := h.usecase.Respond(c.Request.Context(), req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistantResponse{Reply: reply})
}
