package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chat-direct/errors"
	"chat-direct/services"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxSearchHits   = 25
)

type MessageHandler struct {
	history  services.IHistoryService
	receipts services.IReceiptService
}

func NewMessageHandler(history services.IHistoryService, receipts services.IReceiptService) *MessageHandler {
	return &MessageHandler{history: history, receipts: receipts}
}

// History returns one ascending page of the conversation with :userId.
// The nextCursor field, when present, fetches the next older page.
func (h *MessageHandler) History(c *gin.Context) {
	limit := defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(parsed, maxPageSize)
	}

	var cursor *string
	if raw := c.Query("cursor"); raw != "" {
		cursor = &raw
	}

	messages, next, err := h.history.Conversation(callerID(c), c.Param("userId"), cursor, limit)
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"messages": toMessageResponses(messages)}
	if next != nil {
		response["nextCursor"] = *next
	}
	c.JSON(http.StatusOK, response)
}

// MarkRead flips every unread message from :senderId to read and returns
// how many were affected. The sender is notified over the live channel.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	affected, err := h.receipts.MarkRead(c.Request.Context(), callerID(c), c.Param("senderId"))
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": affected})
}

func (h *MessageHandler) Search(c *gin.Context) {
	terms := c.Query("q")
	if terms == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	messages, err := h.history.Search(c.Request.Context(), callerID(c), terms, c.Query("with"), maxSearchHits)
	if err != nil {
		c.JSON(errors.MapToHTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": toMessageResponses(messages)})
}
