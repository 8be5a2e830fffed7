package routes

import (
	"time"

	"inkpost/auth"
	"inkpost/config"
	"inkpost/handlers"
	"inkpost/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup wires the HTTP surface. Route paths are what the frontend expects
// and must not change.
func Setup(cfg *config.Config, authHandler *handlers.Auth, postHandler *handlers.Posts, sessions *auth.Service) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)

	router.GET("/createpost", postHandler.List)
	router.GET("/createpost/:id", postHandler.Get)

	requireAuth := middleware.RequireAuth(sessions)
	router.GET("/profile", requireAuth, authHandler.Profile)
	router.POST("/createpost", requireAuth, postHandler.Create)
	router.PUT("/createpost/:id", requireAuth, postHandler.Update)

	return router
}
