package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/opencre/mockapi/internal/models"
	"github.com/opencre/mockapi/internal/services"
)

// TrendsHandler handles the aggregate statistics endpoint. The numbers it
// serves are illustrative; the filters are echoed back but not applied to
// the real dataset.
type TrendsHandler struct {
	service services.TrendService
}

// NewTrendsHandler creates a new TrendsHandler instance.
func NewTrendsHandler(service services.TrendService) *TrendsHandler {
	return &TrendsHandler{
		service: service,
	}
}

// Trends handles GET /v1/trends.
func (h *TrendsHandler) Trends(c *gin.Context) {
	params := services.TrendsParams{
		Filters: flattenQuery(c),
	}

	if d, err := models.ParseDate(c.Query("startDate")); err == nil {
		params.StartDate = &d
	}
	if d, err := models.ParseDate(c.Query("endDate")); err == nil {
		params.EndDate = &d
	}
	if metrics := c.Query("metrics"); metrics != "" {
		params.Metrics = strings.Split(metrics, ",")
	}

	c.JSON(http.StatusOK, h.service.Trends(params))
}

// flattenQuery collapses the request's query parameters to their first
// values for echoing in response metadata.
func flattenQuery(c *gin.Context) map[string]string {
	flat := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			flat[key] = values[0]
		}
	}
	return flat
}
