package router

import (
	"github.com/gin-gonic/gin"

	"cloudbox/internal/config"
	"cloudbox/internal/handler"
	"cloudbox/internal/middleware"
	"cloudbox/internal/port"
)

// Setup configures the gin engine with all routes and middleware.
func Setup(
	verifier port.TokenVerifier,
	authCfg config.AuthConfig,
	fileH *handler.FileHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// Public routes
	r.GET("/home", fileH.Home)
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// Protected routes - require a bearer token
	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(verifier, authCfg))
	protected.POST("/upload", fileH.Upload)
	protected.GET("/fetch", fileH.Fetch)

	return r
}
