package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pss-admin/middleware"
	"github.com/pss-admin/services"
	"gorm.io/gorm"
)

// Dependencies are the services the v1 handlers are built on
type Dependencies struct {
	DB              *gorm.DB
	Gallery         *services.GalleryService
	Deletion        *services.DeletionService
	Auth            *services.AuthService
	DefaultPageSize int
	MaxPageSize     int
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck(deps.DB))

	// Auth endpoints
	authController := NewAuthController(deps.Auth)
	authGroup := router.Group("/auth")
	{
		authGroup.GET("/status", authController.Status)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", authController.Logout)
	}

	// Read-only browsing endpoints
	galleryController := NewGalleryController(deps.Gallery, deps.DefaultPageSize, deps.MaxPageSize)
	galleryController.RegisterRoutes(router)

	// Destructive endpoints - protected by AuthMiddleware when auth is configured
	deletionController := NewDeletionController(deps.Deletion)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Auth))
	deletionController.RegisterRoutes(protected)
}
