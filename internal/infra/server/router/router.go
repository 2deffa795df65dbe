// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/controller"
	"github.com/Felipaof/My-Fluxo-Finance/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	categoryController    *controller.CategoryController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	categoryController *controller.CategoryController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		categoryController:    categoryController,
		transactionController: transactionController,
		goalController:        goalController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if gin.Mode() == gin.TestMode {
		r.engine = gin.New()
		r.engine.Use(gin.Recovery())
	} else {
		r.engine = gin.Default()
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.GET("/health", r.healthController.Check)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.authMiddleware.OptionalAuthenticate(), r.categoryController.List)
		categories.POST("", r.authMiddleware.Authenticate(), r.categoryController.Create)
		categories.PUT("/:id", r.authMiddleware.Authenticate(), r.categoryController.Update)
		categories.DELETE("/:id", r.authMiddleware.Authenticate(), r.categoryController.Delete)
	}

	transactions := v1.Group("/transactions")
	transactions.Use(r.authMiddleware.Authenticate())
	{
		transactions.GET("/user/:userId", r.transactionController.List)
		transactions.GET("/:id", r.transactionController.Get)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	goals := v1.Group("/goals")
	goals.Use(r.authMiddleware.Authenticate())
	{
		goals.GET("/user/:userId", r.goalController.List)
		goals.GET("/:id", r.goalController.Get)
		goals.POST("", r.goalController.Create)
		goals.PUT("/:id", r.goalController.Update)
		goals.PATCH("/:id/toggle", r.goalController.Toggle)
		goals.DELETE("/:id", r.goalController.Delete)
	}

	reports := v1.Group("/reports")
	reports.Use(r.authMiddleware.Authenticate())
	{
		reports.GET("/financial", r.reportController.Financial)
		reports.GET("/goals", r.reportController.Goals)
		reports.GET("/metas", r.reportController.Goals)
		reports.GET("/categories", r.reportController.Categories)
		reports.GET("/export", r.reportController.Export)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
