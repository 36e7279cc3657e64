package httpapi

import (
	"github.com/gin-gonic/gin"

	"chat-direct/auth"
	"chat-direct/transport/ws"
)

// NewRouter assembles the full HTTP surface, REST and websocket alike.
func NewRouter(issuer *auth.TokenIssuer, gateway *ws.Gateway,
	authHandler *AuthHandler, users *UserHandler,
	messages *MessageHandler, stats *StatsHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		protected := api.Group("", RequireAuth(issuer))
		{
			protected.GET("/users", users.List)
			protected.GET("/users/:id", users.Get)
			protected.PUT("/users/profile", users.UpdateProfile)

			protected.GET("/messages/search", messages.Search)
			protected.GET("/messages/:userId", messages.History)
			protected.PUT("/messages/read/:senderId", messages.MarkRead)

			protected.GET("/stats", stats.Get)
		}
	}

	// The gateway authenticates on its own; browsers cannot attach the
	// bearer header to upgrade requests.
	router.GET("/ws", gateway.Handle)

	return router
}
