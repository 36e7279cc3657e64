package ws

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-direct/auth"
	"chat-direct/services"
)

// Gateway upgrades authenticated HTTP requests into live sessions.
type Gateway struct {
	log        *slog.Logger
	issuer     *auth.TokenIssuer
	upgrader   websocket.Upgrader
	bufferSize int
	presence   services.IPresenceService
	delivery   services.IDeliveryService
	receipts   services.IReceiptService
	typing     services.ITypingService
}

func NewGateway(log *slog.Logger, issuer *auth.TokenIssuer, bufferSize int,
	presence services.IPresenceService,
	delivery services.IDeliveryService,
	receipts services.IReceiptService,
	typing services.ITypingService) *Gateway {
	return &Gateway{
		log:    log,
		issuer: issuer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect from arbitrary origins; the token is
			// the actual authentication boundary.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		bufferSize: bufferSize,
		presence:   presence,
		delivery:   delivery,
		receipts:   receipts,
		typing:     typing,
	}
}

// Handle is mounted on GET /ws. Browsers cannot set headers on websocket
// upgrades, so the token is also accepted as a query parameter.
func (g *Gateway) Handle(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	}

	claims, err := g.issuer.Validate(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
		return
	}

	socket, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		g.log.Debug("Websocket upgrade failed", "user_id", claims.UserID, "error", err)
		return
	}

	sink := NewSink(g.log.With("user_id", claims.UserID), g.bufferSize)
	session := NewSession(g.log, claims.UserID, socket, sink,
		g.presence, g.delivery, g.receipts, g.typing)
	session.Run(c.Request.Context())
}
