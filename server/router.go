package server

import (
	"net/http"
	"time"

	"pjeseza-web/infrastructure/configuration"
	httphandler "pjeseza-web/interfaces/http"
	"pjeseza-web/interfaces/middleware"
	"pjeseza-web/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitiateRouter wires every route of the application. Pages render HTML;
// everything under /api speaks the dto.Res JSON envelope.
func InitiateRouter(
	userHandler httphandler.IUserHandler,
	videoHandler httphandler.IVideoHandler,
	adminHandler httphandler.IAdminHandler,
	pageHandler httphandler.IPageHandler,
	sessions usecase.ISessionUsecase,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     configuration.C.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SessionCookie(configuration.C.Session.CookieName))

	router.LoadHTMLGlob("web/templates/*.tmpl")

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Pages
	router.GET("/", pageHandler.Home)
	router.GET("/dashboard", pageHandler.Dashboard)
	router.GET("/admin", pageHandler.Admin)
	router.GET("/editor", pageHandler.Editor)

	// Auth endpoints sit outside the Auth middleware.
	auth := router.Group("/auth")
	{
		auth.POST("/login", userHandler.Login)
		auth.POST("/register", userHandler.Register)
		auth.POST("/logout", userHandler.Logout)
	}

	api := router.Group("/api")
	{
		api.POST("/language", userHandler.SetLanguage)

		authed := api.Group("")
		authed.Use(middleware.Auth(sessions))
		{
			authed.GET("/me", userHandler.Me)

			authed.POST("/video/info", videoHandler.VideoInfo)

			wizard := authed.Group("/wizard")
			{
				wizard.GET("", videoHandler.WizardView)
				wizard.POST("/count", videoHandler.SetClipCount)
				wizard.POST("/draft", videoHandler.UpdateDraft)
				wizard.POST("/feature", videoHandler.ToggleFeature)
				wizard.POST("/next", videoHandler.Advance)
				wizard.POST("/back", videoHandler.Back)
				wizard.POST("/generate", videoHandler.Generate)
				wizard.POST("/reset", videoHandler.Reset)
			}

			authed.GET("/clips", videoHandler.MyClips)
			authed.GET("/download/:id", videoHandler.Download)

			admin := authed.Group("/admin")
			{
				admin.GET("/stats", adminHandler.Stats)
				admin.GET("/users", adminHandler.Users)
			}
		}
	}

	return router
}
