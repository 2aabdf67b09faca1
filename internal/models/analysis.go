package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AnalysisTypeHeatmap = "heatmap"
	AnalysisTypeCluster = "cluster"
	AnalysisTypeHotspot = "hotspot"

	AnalysisStatusPending    = "pending"
	AnalysisStatusProcessing = "processing"
	AnalysisStatusCompleted  = "completed"
	AnalysisStatusFailed     = "failed"
)

// BoundingBox - прямоугольная область в градусах
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// AnalysisResults - сводка, сохраняемая в geospatial_analyses.results
type AnalysisResults struct {
	TotalPoints  int     `json:"total_points"`
	MaxIntensity float64 `json:"max_intensity"`
	Error        string  `json:"error,omitempty"`
}

// GeospatialAnalysis - запись о пространственном анализе
type GeospatialAnalysis struct {
	ID             uuid.UUID        `json:"analysis_id"`
	AnalysisType   string           `json:"analysis_type"`
	BoundingBox    BoundingBox      `json:"bounding_box"`
	TimeRangeStart time.Time        `json:"time_range_start"`
	TimeRangeEnd   time.Time        `json:"time_range_end"`
	DistrictCode   *string          `json:"district_code,omitempty"`
	RequestedBy    string           `json:"requested_by"`
	Status         string           `json:"status"`
	Results        *AnalysisResults `json:"results,omitempty"`
	GeneratedAt    *time.Time       `json:"generated_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// HeatmapPoint - ячейка тепловой карты
type HeatmapPoint struct {
	ID            uuid.UUID `json:"point_id"`
	AnalysisID    uuid.UUID `json:"analysis_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Intensity     float64   `json:"intensity"`
	IncidentCount int       `json:"incident_count"`
	Radius        int       `json:"radius"`
}

// IncidentLocation - координаты инцидента для агрегации
type IncidentLocation struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
}

// HeatmapRequest - параметры построения тепловой карты
type HeatmapRequest struct {
	TimeRangeStart time.Time
	TimeRangeEnd   time.Time
	DistrictCode   *string
	RequestedBy    string
}

// HeatmapSummary - итог построения тепловой карты
type HeatmapSummary struct {
	AnalysisID   uuid.UUID `json:"analysis_id"`
	TotalPoints  int       `json:"total_points"`
	MaxIntensity float64   `json:"max_intensity"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Heatmap - анализ вместе с его точками
type Heatmap struct {
	Analysis *GeospatialAnalysis `json:"analysis"`
	Points   []*HeatmapPoint     `json:"points"`
}
