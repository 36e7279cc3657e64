package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chat-direct/observability"
)

type StatsHandler struct {
	stats *observability.DeliveryStats
}

func NewStatsHandler(stats *observability.DeliveryStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get reports delivery counters plus process resource usage.
func (h *StatsHandler) Get(c *gin.Context) {
	usage, err := observability.ProbeProcess()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"delivery": h.stats.Snapshot(),
		"process":  usage,
	})
}
