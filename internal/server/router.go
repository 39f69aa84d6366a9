package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/saladbowl/saladbowl-backend/internal/handlers"
	"github.com/saladbowl/saladbowl-backend/internal/middleware"
	"github.com/saladbowl/saladbowl-backend/internal/types"
)

type RouterConfig struct {
	ServiceName         string
	RoleMiddleware      *middleware.RoleMiddleware
	AuthHandler         *handlers.AuthHandler
	PageHandler         *handlers.PageHandler
	ModuleHandler       *handlers.ModuleHandler
	ChatHandler         *handlers.ChatHandler
	FeedbackHandler     *handlers.FeedbackHandler
	TeamInterestHandler *handlers.TeamInterestHandler
	SetupHandler        *handlers.SetupHandler
	DashboardHandler    *handlers.DashboardHandler
	AdminModuleHandler  *handlers.AdminModuleHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware(cfg.ServiceName))

	// CORS open to all origins, like the original serverless endpoints.
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Use(cfg.RoleMiddleware.Resolve())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Persistence gateway
		api.GET("/feedback", cfg.FeedbackHandler.List)
		api.POST("/feedback", cfg.FeedbackHandler.Submit)
		api.GET("/team-interest", cfg.TeamInterestHandler.List)
		api.POST("/team-interest", cfg.TeamInterestHandler.Submit)
		api.GET("/setup", cfg.SetupHandler.Setup)

		// Role selection and page resolution
		api.POST("/auth/role", cfg.AuthHandler.SelectRole)
		api.GET("/auth/role", cfg.AuthHandler.CurrentRole)
		api.GET("/pages/:fragment", cfg.PageHandler.Resolve)

		// Catalog
		api.GET("/modules", cfg.ModuleHandler.List)
		api.GET("/modules/:id", cfg.ModuleHandler.Get)
		api.POST("/modules/:id/complete", cfg.ModuleHandler.Complete)
		api.POST("/modules/:id/reflection", cfg.ModuleHandler.Reflection)

		// Lead capture (optimistic public form)
		api.POST("/connect", cfg.TeamInterestHandler.Connect)

		// Chat
		api.POST("/chat/sessions", cfg.ChatHandler.NewSession)
		api.GET("/chat/sessions/:id", cfg.ChatHandler.Transcript)
		api.POST("/chat/sessions/:id/messages", cfg.ChatHandler.SendMessage)

		// Gated dashboards
		api.GET("/dashboard/teacher", cfg.RoleMiddleware.Require(types.RoleTeacher), cfg.DashboardHandler.Teacher)
		api.GET("/dashboard/admin", cfg.RoleMiddleware.Require(types.RoleAdmin), cfg.DashboardHandler.Admin)

		// Content management
		admin := api.Group("/admin", cfg.RoleMiddleware.Require(types.RoleAdmin))
		{
			admin.GET("/modules", cfg.AdminModuleHandler.List)
			admin.POST("/modules", cfg.AdminModuleHandler.Create)
			admin.PATCH("/modules/:id", cfg.AdminModuleHandler.Update)
			admin.DELETE("/modules/:id", cfg.AdminModuleHandler.Delete)
		}
	}

	return router
}
