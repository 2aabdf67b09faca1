package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	IncidentStatusPending = "pending"
)

// Incident - инцидент, сообщенный гражданином
type Incident struct {
	ID                 uuid.UUID `json:"id"`
	ReportedBy         string    `json:"reported_by"`
	Description        string    `json:"description"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryCode       string    `json:"category_code"`
	AIDetectedCategory string    `json:"ai_detected_category"`
	AIConfidence       float64   `json:"ai_confidence"`
	Priority           string    `json:"priority"`
	PhotoPath          string    `json:"photo_path"` // относительный путь в хранилище
	PhotoURL           string    `json:"photo_url,omitempty"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	DistrictCode       string    `json:"district_code"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Category - запись справочника категорий инцидентов
type Category struct {
	ID   uuid.UUID `json:"category_id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// DetectionResult - результат распознавания, привязанный к инциденту
type DetectionResult struct {
	IncidentID     uuid.UUID       `json:"incident_id"`
	CategoryID     uuid.UUID       `json:"category_id"`
	Confidence     float64         `json:"confidence"`
	BoundingBox    json.RawMessage `json:"bounding_box"`
	ModelVersion   string          `json:"model_version"`
	DetectionCount int             `json:"num_detecciones"`
	ResultURL      string          `json:"url_resultado"`
	RawResponse    json.RawMessage `json:"yolo_response_raw"`
}

// CreateIncidentInput - входные данные конвейера создания инцидента
type CreateIncidentInput struct {
	IncidentID  uuid.UUID
	PhotoURL    string
	Latitude    float64
	Longitude   float64
	Description string
	ReportedBy  string
}

// IncidentCreateResult - итог успешного создания инцидента
type IncidentCreateResult struct {
	IncidentID       uuid.UUID
	PhotoURL         string
	DetectedCategory string
	Confidence       float64
	CategoryCode     string
	DistrictCode     string
	ResultURL        string
}

// PhotoUpload - результат загрузки фотографии
type PhotoUpload struct {
	PhotoID      string
	PhotoURL     string
	RelativePath string
}
