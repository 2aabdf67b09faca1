package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Generate heatmap
// @Description Cluster incidents of a time range into a fixed grid and store the analysis. Requires MUNICIPALITY_STAFF role.
// @Tags Geospatial
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHeatmapRequest true "Heatmap generation parameters"
// @Success 201 {object} DataResponse{data=HeatmapSummaryResponse}
// @Failure 400 {object} ErrorResponse "Invalid request data or no incidents found"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 502 {object} ErrorResponse "Storage failure"
// @Router /geospatial/heatmap [post]
func (h *Handler) createHeatmap(c *gin.Context) {
	var input CreateHeatmapRequest
	log := h.logger.WithField("method", "createHeatmap")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	req, err := DTOToHeatmapRequest(input, c.GetString(ctxUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.heatmapService.GenerateHeatmap(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, DataResponse{Success: true, Data: ModelToHeatmapSummaryResponse(summary)})
}

// @Summary Get heatmap
// @Description Get a heatmap analysis with its points. Requires MUNICIPALITY_STAFF role.
// @Tags Geospatial
// @Produce json
// @Security BearerAuth
// @Param id path string true "Analysis ID"
// @Success 200 {object} DataResponse{data=HeatmapResponse}
// @Failure 400 {object} ErrorResponse "Invalid analysis ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Access denied"
// @Failure 404 {object} ErrorResponse "Analysis not found"
// @Router /geospatial/heatmap/{id} [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid analysis ID"})
		return
	}
	log := h.logger.WithField("method", "getHeatmap").WithField("id", id)

	heatmap, err := h.heatmapService.GetHeatmap(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: ModelToHeatmapResponse(heatmap)})
}
