package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// UserHandler は現在ユーザーのプロフィールエンドポイント群です。
type UserHandler struct {
	usecase user.UseCase
}

// NewUserHandler は UserHandler を生成します。
func NewUserHandler(usecase user.UseCase) *UserHandler {
	return &UserHandler{usecase: usecase}
}

// updateProfileRequest の各項目は省略時に未変更を意味します。
// email は同一性のキーであるため受け付けません。
type updateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Gender   *string `json:"gender"`
	Age      *int    `json:"age"`
	Company  *string `json:"company"`
	PhotoURL *string `json:"photoUrl"`
}

// Me は現在ユーザーを返します。
func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMe は現在ユーザーのプロフィールを部分更新します。
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u, err := h.usecase.UpdateProfile(c.Request.Context(), user.UpdateProfileInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Gender:   req.Gender,
		Age:      req.Age,
		Company:  req.Company,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
