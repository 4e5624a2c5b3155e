package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/mindnotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/mindnotes/internal/app"
)

// StatisticsHandler serves the mood and hour summary.
type StatisticsHandler struct {
	service *app.StatisticsService
}

// NewStatisticsHandler creates a new statistics handler.
func NewStatisticsHandler(service *app.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// GetStatistics handles GET /api/v1/statistics. An empty journal is 422.
//
// @Summary Mood statistics
// @Tags statistics
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStatisticsResponse(stats))
}

// RegisterStatisticsRoutes registers the statistics route on the given router group.
func (h *StatisticsHandler) RegisterStatisticsRoutes(rg *gin.RouterGroup) {
	rg.GET("/statistics", h.GetStatistics)
}
