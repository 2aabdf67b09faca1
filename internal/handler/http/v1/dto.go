package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента. Фото должно быть заранее загружено в хранилище.
type CreateIncidentRequest struct {
	IncidentID  string  `json:"incident_id" validate:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	PhotoURL    string  `json:"photo_url" validate:"required,url" example:"https://project.supabase.co/storage/v1/object/public/yolo_model/user123_1699999999.jpg"`
	Latitude    float64 `json:"latitude" validate:"latitude" example:"-12.0464"`
	Longitude   float64 `json:"longitude" validate:"longitude" example:"-77.0428"`
	Description string  `json:"description" validate:"required,min=10,max=500" example:"Bache grande en Av. Proceres de la Independencia"`
}

// CreateIncidentResponse DTO ответа на создание инцидента
// @Description DTO ответа на создание инцидента
type CreateIncidentResponse struct {
	Success          bool      `json:"success"`
	IncidentID       uuid.UUID `json:"incident_id"`
	PhotoURL         string    `json:"photo_url"`
	DetectedCategory string    `json:"detected_category"`
	Confidence       float64   `json:"confidence"`
	CategoryCode     string    `json:"category_code"`
	DistrictCode     string    `json:"district_code"`
	ResultURL        string    `json:"url_resultado,omitempty"`
	Message          string    `json:"message"`
}

// UploadPhotoResponse DTO ответа на загрузку фото
// @Description DTO ответа на загрузку фото
type UploadPhotoResponse struct {
	Success  bool   `json:"success"`
	PhotoID  string `json:"photo_id"`
	PhotoURL string `json:"photo_url"`
	Message  string `json:"message"`
}

// IncidentResponse DTO с информацией об инциденте
// @Description DTO с информацией об инциденте
type IncidentResponse struct {
	ID                 uuid.UUID `json:"incident_id"`
	ReportedBy         string    `json:"reported_by"`
	Description        string    `json:"description"`
	CategoryCode       string    `json:"category_code"`
	AIDetectedCategory string    `json:"ai_detected_category"`
	AIConfidence       float64   `json:"ai_confidence"`
	Priority           string    `json:"priority"`
	PhotoURL           string    `json:"photo_url"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	DistrictCode       string    `json:"district_code"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CreateHeatmapRequest DTO для построения тепловой карты
// @Description DTO для построения тепловой карты
type CreateHeatmapRequest struct {
	TimeRangeStart string  `json:"time_range_start" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-01-01T00:00:00Z"`
	TimeRangeEnd   string  `json:"time_range_end" validate:"required,datetime=2006-01-02T15:04:05Z07:00" example:"2025-11-15T23:59:59Z"`
	DistrictCode   *string `json:"district_code,omitempty" validate:"omitempty,min=1,max=10" example:"SJLUR"`
}

// HeatmapSummaryResponse DTO итога построения тепловой карты
// @Description DTO итога построения тепловой карты
type HeatmapSummaryResponse struct {
	AnalysisID   uuid.UUID `json:"analysis_id"`
	TotalPoints  int       `json:"total_points"`
	MaxIntensity float64   `json:"max_intensity"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// HeatmapPointResponse DTO точки тепловой карты
type HeatmapPointResponse struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Intensity     float64 `json:"intensity"`
	IncidentCount int     `json:"incident_count"`
	Radius        int     `json:"radius"`
}

// HeatmapResponse DTO анализа вместе с точками
// @Description DTO анализа вместе с точками
type HeatmapResponse struct {
	AnalysisID     uuid.UUID              `json:"analysis_id"`
	Status         string                 `json:"status"`
	BoundingBox    BoundingBoxResponse    `json:"bounding_box"`
	TimeRangeStart time.Time              `json:"time_range_start"`
	TimeRangeEnd   time.Time              `json:"time_range_end"`
	DistrictCode   *string                `json:"district_code,omitempty"`
	TotalPoints    int                    `json:"total_points"`
	MaxIntensity   float64                `json:"max_intensity"`
	Error          string                 `json:"error,omitempty"`
	GeneratedAt    *time.Time             `json:"generated_at,omitempty"`
	Points         []HeatmapPointResponse `json:"points"`
}

// BoundingBoxResponse DTO границ анализа
type BoundingBoxResponse struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// DataResponse - обертка успешного ответа
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse - тело ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse DTO ответа health-check
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}
