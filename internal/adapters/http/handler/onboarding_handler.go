package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/onboarding"
	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// OnboardingHandler はオンボーディングフローのエンドポイント群です。
type OnboardingHandler struct {
	usecase onboarding.UseCase
}

// NewOnboardingHandler は OnboardingHandler を生成します。
func NewOnboardingHandler(usecase onboarding.UseCase) *OnboardingHandler {
	return &OnboardingHandler{usecase: usecase}
}

type stateResponse struct {
	Step string `json:"step"`
}

type signInRequest struct {
	Email string `json:"email" binding:"required"`
}

type completeProfileRequest struct {
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Age      int    `json:"age"`
	Company  string `json:"company"`
	PhotoURL string `json:"photoUrl"`
}

type selectRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// State は現在のフロー位置を返します。
func (h *OnboardingHandler) State(c *gin.Context) {
	step, err := h.usecase.State(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse{Step: string(step)})
}

// SignIn は認証段階を通過させます。
func (h *OnboardingHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	step, err := h.usecase.SignIn(c.Request.Context(), onboarding.SignInInput{Email: req.Email})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse{Step: string(step)})
}

// CompleteProfile はプロフィールを確定しユーザーを永続化します。
func (h *OnboardingHandler) CompleteProfile(c *gin.Context) {
	var req completeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u, err := h.usecase.CompleteProfile(c.Request.Context(), onboarding.CompleteProfileInput{
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
	c.JSON(http.StatusCreated, u)
}

// SelectRole は役割を設定しフローを完了させます。
func (h *OnboardingHandler) SelectRole(c *gin.Context) {
	var req selectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	u, err := h.usecase.SelectRole(c.Request.Context(), onboarding.SelectRoleInput{Role: user.Role(req.Role)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// Back はプロフィール段階から認証段階へ戻します。
func (h *OnboardingHandler) Back(c *gin.Context) {
	step, err := h.usecase.Back(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse{Step: string(step)})
}
