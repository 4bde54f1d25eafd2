package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/settings"
	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// UserSource は操作主体となる現在ユーザーを解決します。
type UserSource interface {
	Current(ctx context.Context) (*user.User, error)
}

// SettingsHandler はユーザー設定のエンドポイント群です。設定はメール
// アドレスでスコープされるため、現在ユーザーの解決が必要です。
type SettingsHandler struct {
	usecase settings.UseCase
	users   UserSource
}

// NewSettingsHandler は SettingsHandler を生成します。
func NewSettingsHandler(usecase settings.UseCase, users UserSource) *SettingsHandler {
	return &SettingsHandler{usecase: usecase, users: users}
}

// Get は現在ユーザーの設定を返します。未保存の場合は既定値です。
func (h *SettingsHandler) Get(c *gin.Context) {
	actor, err := h.users.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	s, err := h.usecase.Get(c.Request.Context(), actor.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// Update は設定全体を置き換えます。
func (h *SettingsHandler) Update(c *gin.Context) {
	actor, err := h.users.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var req settings.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), actor.Email, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
