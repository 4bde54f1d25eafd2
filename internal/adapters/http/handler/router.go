package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerhub-dev/careerhub/internal/adapters/http/middleware"
)

// Handlers はルーティング対象のハンドラ群をまとめます。
type Handlers struct {
	Onboarding  *OnboardingHandler
	User        *UserHandler
	Job         *JobHandler
	Application *ApplicationHandler
	Post        *PostHandler
	Event       *EventHandler
	CV          *CVHandler
	Settings    *SettingsHandler
	Dashboard   *DashboardHandler
	Assistant   *AssistantHandler
}

// RouterConfig はルータ構築時の依存です。Metrics が nil の場合、
// 計測と /metrics の公開は行われません。
type RouterConfig struct {
	Logger          *slog.Logger
	Metrics         MetricsProvider
	ExtraMiddleware []gin.HandlerFunc
}

// MetricsProvider は HTTP 計測ミドルウェアとエクスポータを提供します。
type MetricsProvider interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

// NewRouter は全エンドポイントを配線した gin エンジンを返します。
func NewRouter(h Handlers, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if cfg.Logger != nil {
		r.Use(middleware.AccessLog(cfg.Logger))
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware())
	}
	for _, mw := range cfg.ExtraMiddleware {
		r.Use(mw)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		ob := api.Group("/onboarding")
		{
			ob.GET("", h.Onboarding.State)
			ob.POST("/signin", h.Onboarding.SignIn)
			ob.POST("/profile", h.Onboarding.CompleteProfile)
			ob.POST("/role", h.Onboarding.SelectRole)
			ob.POST("/back", h.Onboarding.Back)
		}

		api.GET("/me", h.User.Me)
		api.PUT("/me", h.User.UpdateMe)

		jobs := api.Group("/jobs")
		{
			jobs.GET("", h.Job.List)
			jobs.POST("", h.Job.Create)
			jobs.GET("/:id", h.Job.Get)
			jobs.PUT("/:id/save", h.Job.Save)
			jobs.DELETE("/:id/save", h.Job.Unsave)
		}
		api.GET("/saved-jobs", h.Job.ListSaved)

		apps := api.Group("/applications")
		{
			apps.POST("", h.Application.Apply)
			apps.GET("/mine", h.Application.Mine)
			apps.GET("/inbox", h.Application.Inbox)
			apps.GET("/counts", h.Application.Counts)
			apps.PUT("/:id/status", h.Application.UpdateStatus)
		}

		api.GET("/posts", h.Post.Feed)
		api.POST("/posts", h.Post.Create)

		api.GET("/events", h.Event.List)
		api.POST("/events", h.Event.Create)

		api.GET("/cvs", h.CV.List)
		api.POST("/cvs", h.CV.Create)
		api.DELETE("/cvs/:id", h.CV.Delete)

		api.GET("/settings", h.Settings.Get)
		api.PUT("/settings", h.Settings.Update)

		api.GET("/dashboard", h.Dashboard.Summary)
		api.POST("/assistant", h.Assistant.Respond)
	}

	return r
}
