package routes

import (
	"net/http"

	"contacts_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every HTTP route of the application. The auth
// middleware is built by the caller so the router stays test-friendly.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authRequired gin.HandlerFunc,
	staticDir string,
) {
	ginRouter.GET("/api/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if staticDir != "" {
		ginRouter.Static("/public", staticDir)
	}

	users := ginRouter.Group("/api/users")
	{
		users.POST("/signup", appHandlers.AuthHandler.Signup)
		users.POST("/login", appHandlers.AuthHandler.Login)
		users.GET("/verify/:verificationToken", appHandlers.AuthHandler.VerifyEmail)
		users.POST("/verify", appHandlers.AuthHandler.ResendVerification)

		authed := users.Group("")
		authed.Use(authRequired)
		{
			authed.GET("/logout", appHandlers.AuthHandler.Logout)
			authed.GET("/current", appHandlers.UserHandler.GetCurrent)
			authed.PATCH("/avatars", appHandlers.UserHandler.UpdateAvatar)
			authed.PATCH("/:userId", appHandlers.UserHandler.UpdateSubscription)
		}
	}

	contacts := ginRouter.Group("/api/contacts")
	contacts.Use(authRequired)
	{
		contacts.GET("", appHandlers.ContactHandler.List)
		contacts.GET("/:contactId", appHandlers.ContactHandler.GetByID)
		contacts.POST("", appHandlers.ContactHandler.Create)
		contacts.PUT("/:contactId", appHandlers.ContactHandler.Update)
		contacts.PATCH("/:contactId/favorite", appHandlers.ContactHandler.UpdateFavorite)
		contacts.DELETE("/:contactId", appHandlers.ContactHandler.Remove)
	}
}
