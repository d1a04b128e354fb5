package http

import (
	"net/http"

	"github.com/gdugdh24/lifestyle-connect/internal/delivery/http/handler"
	"github.com/gdugdh24/lifestyle-connect/internal/delivery/http/middleware"
	"github.com/gdugdh24/lifestyle-connect/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	authHandler      *handler.AuthHandler
	profileHandler   *handler.ProfileHandler
	feedHandler      *handler.FeedHandler
	upgradeHandler   *handler.UpgradeHandler
	swipeHandler     *handler.SwipeHandler
	communityHandler *handler.CommunityHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	logger           *zap.Logger
	devRoutes        bool
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	feedHandler *handler.FeedHandler,
	upgradeHandler *handler.UpgradeHandler,
	swipeHandler *handler.SwipeHandler,
	communityHandler *handler.CommunityHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
	devRoutes bool,
) *Router {
	return &Router{
		authHandler:      authHandler,
		profileHandler:   profileHandler,
		feedHandler:      feedHandler,
		upgradeHandler:   upgradeHandler,
		swipeHandler:     swipeHandler,
		communityHandler: communityHandler,
		adminHandler:     adminHandler,
		authMiddleware:   authMiddleware,
		logger:           logger,
		devRoutes:        devRoutes,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(r.logger), gin.Recovery())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			if r.devRoutes {
				auth.POST("/test", r.authHandler.TestAuth)
			}
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/complete-onboarding", r.profileHandler.CompleteOnboarding)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			feed := protected.Group("/feed")
			{
				feed.GET("", r.feedHandler.GetFeed)
				feed.POST("/reset", r.feedHandler.ResetSession)
			}

			upgrade := protected.Group("/upgrade")
			{
				upgrade.POST("/attempt", r.upgradeHandler.Attempt)
				upgrade.POST("/complete", r.upgradeHandler.Complete)
			}

			protected.POST("/swipe", r.swipeHandler.CreateSwipe)
			protected.GET("/matches", r.swipeHandler.GetMatches)

			community := protected.Group("/community")
			{
				community.GET("/posts", r.communityHandler.ListPosts)
				community.POST("/posts", r.communityHandler.CreatePost)
				community.GET("/stream", r.communityHandler.Stream)
			}

			admin := protected.Group("/admin")
			admin.Use(r.authMiddleware.RequireAdmin())
			{
				admin.PUT("/profiles/:id/hidden", r.adminHandler.SetProfileHidden)
			}
		}
	}

	return router
}
