package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opencre/mockapi/internal/store"
)

const (
	// APIVersion is the current version of the API
	APIVersion = "1.0.0"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store     *store.Store
	startTime time.Time
	env       string
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(st *store.Store, env string) *HealthHandler {
	return &HealthHandler{
		store:     st,
		startTime: time.Now(),
		env:       env,
	}
}

// GenerationStats summarizes the currently installed dataset generation.
type GenerationStats struct {
	Properties   int `json:"properties"`
	Parties      int `json:"parties"`
	Brokers      int `json:"brokers"`
	Documents    int `json:"documents"`
	Transactions int `json:"transactions"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string          `json:"status"`
	Version     string          `json:"version"`
	Environment string          `json:"environment"`
	Uptime      string          `json:"uptime"`
	Generation  GenerationStats `json:"generation"`
}

// Health handles GET /health.
// The server is healthy whenever a generation is installed; there are no
// external dependencies to probe.
func (h *HealthHandler) Health(c *gin.Context) {
	gen := h.store.Snapshot()

	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Version:     APIVersion,
		Environment: h.env,
		Uptime:      formatUptime(time.Since(h.startTime)),
		Generation: GenerationStats{
			Properties:   len(gen.Properties),
			Parties:      len(gen.Parties),
			Brokers:      len(gen.Brokers),
			Documents:    len(gen.Documents),
			Transactions: len(gen.Transactions),
		},
	})
}

// formatUptime formats a duration into a human-readable string.
func formatUptime(d time.Duration) string {
	days := int(d.Hours() / 24)
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
