package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/core/application"
	"github.com/careerhub-dev/careerhub/internal/core/cv"
	"github.com/careerhub-dev/careerhub/internal/core/event"
	"github.com/careerhub-dev/careerhub/internal/core/job"
	"github.com/careerhub-dev/careerhub/internal/core/onboarding"
	"github.com/careerhub-dev/careerhub/internal/core/post"
	"github.com/careerhub-dev/careerhub/internal/core/settings"
	"github.com/careerhub-dev/careerhub/internal/core/user"
)

// errorResponse はエラー時の共通ボディです。
type errorResponse struct {
	Error string `json:"error"`
}

// respondError はドメインエラーを HTTP ステータスへ写像します。
// 検証エラーは 400、参照先なしは 404、権限は 403、フロー違反と
// サインイン前のアクセスは 409、それ以外は 500 です。
func respondError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, job.ErrNotHR) || errors.Is(err, application.ErrNotHR):
		c.JSON(http.StatusForbidden, errorResponse{Error: err.Error()})
	case isNotFoundError(err):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, onboarding.ErrInvalidTransition) || errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		user.ErrInvalidEmail,
		user.ErrInvalidName,
		user.ErrInvalidBio,
		user.ErrInvalidGender,
		user.ErrInvalidRole,
		job.ErrInvalidTitle,
		job.ErrInvalidCompany,
		job.ErrInvalidType,
		application.ErrInvalidID,
		application.ErrInvalidStatus,
		application.ErrInvalidCVID,
		post.ErrInvalidContent,
		event.ErrInvalidTitle,
		event.ErrInvalidDate,
		event.ErrInvalidTime,
		event.ErrInvalidType,
		cv.ErrInvalidName,
		settings.ErrInvalidEmail,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func isNotFoundError(err error) bool {
	for _, sentinel := range []error{
		job.ErrJobNotFound,
		application.ErrApplicationNotFound,
		application.ErrJobNotFound,
		cv.ErrCVNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
