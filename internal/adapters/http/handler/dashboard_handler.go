package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/dashboard"
)

// DashboardHandler はダッシュボード集計のエンドポイントです。
type DashboardHandler struct {
	usecase dashboard.UseCase
}

// NewDashboardHandler は DashboardHandler を生成します。
func NewDashboardHandler(usecase dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{usecase: usecase}
}

// Summary は集計値を返します。値は保存されず、要求のたびに導出されます。
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
