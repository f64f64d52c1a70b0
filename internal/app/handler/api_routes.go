package handler

import (
	"storerating/internal/app/middleware"
	"storerating/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes registers every REST route under /api plus /ping and
// the swagger UI.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.AuthHandler.Signup)
		auth.POST("/login", h.AuthHandler.Login)

		// any authenticated role
		auth.PUT("/change-password", authMiddleware.WithAuthCheck(), h.AuthHandler.ChangePassword)
		auth.GET("/profile", authMiddleware.WithAuthCheck(), h.AuthHandler.Profile)
	}

	admin := api.Group("/admin")
	admin.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		admin.GET("/dashboard-stats", h.DashboardStats)
		admin.POST("/create-user", h.CreateUser)
		admin.POST("/create-store", h.CreateStore)
		admin.GET("/users", h.ListUsers)
		admin.GET("/stores", h.ListStores)
		admin.GET("/store-owners", h.ListStoreOwners)
	}

	user := api.Group("/user")
	user.Use(authMiddleware.WithAuthCheck(role.User))
	{
		user.GET("/stores", h.UserStores)
		user.POST("/submit-rating", h.SubmitRating)
	}

	owner := api.Group("/store-owner")
	owner.Use(authMiddleware.WithAuthCheck(role.StoreOwner))
	{
		owner.GET("/dashboard", h.OwnerDashboard)
		owner.GET("/my-store", h.MyStore)
		owner.POST("/create-store", h.CreateOwnStore)
		owner.POST("/store-image", h.UploadStoreImage)
	}

	router.GET("/ping", h.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
