package v1

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/urban_incident_system/internal/models"
)

// DTOToCreateIncidentInput преобразует DTO создания в входные данные конвейера
func DTOToCreateIncidentInput(dto CreateIncidentRequest, userID string) (models.CreateIncidentInput, error) {
	id, err := uuid.Parse(dto.IncidentID)
	if err != nil {
		return models.CreateIncidentInput{}, fmt.Errorf("invalid incident_id: %w", err)
	}
	return models.CreateIncidentInput{
		IncidentID:  id,
		PhotoURL:    dto.PhotoURL,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Description: dto.Description,
		ReportedBy:  userID,
	}, nil
}

// ModelToCreateIncidentResponse преобразует итог конвейера в DTO ответа
func ModelToCreateIncidentResponse(result *models.IncidentCreateResult) *CreateIncidentResponse {
	return &CreateIncidentResponse{
		Success:          true,
		IncidentID:       result.IncidentID,
		PhotoURL:         result.PhotoURL,
		DetectedCategory: result.DetectedCategory,
		Confidence:       result.Confidence,
		CategoryCode:     result.CategoryCode,
		DistrictCode:     result.DistrictCode,
		ResultURL:        result.ResultURL,
		Message:          "Incident created successfully",
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                 model.ID,
		ReportedBy:         model.ReportedBy,
		Description:        model.Description,
		CategoryCode:       model.CategoryCode,
		AIDetectedCategory: model.AIDetectedCategory,
		AIConfidence:       model.AIConfidence,
		Priority:           model.Priority,
		PhotoURL:           model.PhotoURL,
		Latitude:           model.Latitude,
		Longitude:          model.Longitude,
		DistrictCode:       model.DistrictCode,
		Status:             model.Status,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

// DTOToHeatmapRequest разбирает границы периода в формате RFC 3339
func DTOToHeatmapRequest(dto CreateHeatmapRequest, userID string) (models.HeatmapRequest, error) {
	start, err := time.Parse(time.RFC3339, dto.TimeRangeStart)
	if err != nil {
		return models.HeatmapRequest{}, fmt.Errorf("invalid time_range_start: %w", err)
	}
	end, err := time.Parse(time.RFC3339, dto.TimeRangeEnd)
	if err != nil {
		return models.HeatmapRequest{}, fmt.Errorf("invalid time_range_end: %w", err)
	}
	return models.HeatmapRequest{
		TimeRangeStart: start,
		TimeRangeEnd:   end,
		DistrictCode:   dto.DistrictCode,
		RequestedBy:    userID,
	}, nil
}

// ModelToHeatmapSummaryResponse преобразует итог построения в DTO
func ModelToHeatmapSummaryResponse(summary *models.HeatmapSummary) *HeatmapSummaryResponse {
	return &HeatmapSummaryResponse{
		AnalysisID:   summary.AnalysisID,
		TotalPoints:  summary.TotalPoints,
		MaxIntensity: summary.MaxIntensity,
		GeneratedAt:  summary.GeneratedAt,
	}
}

// ModelToHeatmapResponse преобразует анализ с точками в DTO
func ModelToHeatmapResponse(h *models.Heatmap) *HeatmapResponse {
	a := h.Analysis
	resp := &HeatmapResponse{
		AnalysisID: a.ID,
		Status:     a.Status,
		BoundingBox: BoundingBoxResponse{
			MinLat: a.BoundingBox.MinLat,
			MaxLat: a.BoundingBox.MaxLat,
			MinLng: a.BoundingBox.MinLng,
			MaxLng: a.BoundingBox.MaxLng,
		},
		TimeRangeStart: a.TimeRangeStart,
		TimeRangeEnd:   a.TimeRangeEnd,
		DistrictCode:   a.DistrictCode,
		GeneratedAt:    a.GeneratedAt,
		Points:         make([]HeatmapPointResponse, len(h.Points)),
	}
	if a.Results != nil {
		resp.TotalPoints = a.Results.TotalPoints
		resp.MaxIntensity = a.Results.MaxIntensity
		resp.Error = a.Results.Error
	}
	for i, p := range h.Points {
		resp.Points[i] = HeatmapPointResponse{
			Latitude:      p.Latitude,
			Longitude:     p.Longitude,
			Intensity:     p.Intensity,
			IncidentCount: p.IncidentCount,
			Radius:        p.Radius,
		}
	}
	return resp
}
