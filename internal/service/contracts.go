package service

//go:generate mockgen -source=contracts.go -destination=mocks/contracts_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/urban_incident_system/internal/detection"
	"github.com/shenikar/urban_incident_system/internal/models"
	"github.com/shenikar/urban_incident_system/internal/storage"
)

// IncidentRepository определяет контракт хранилища инцидентов и справочника категорий.
// Отсутствие записи возвращается как ошибка, оборачивающая ErrNotFound.
type IncidentRepository interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	CreateDetectionResult(ctx context.Context, result *models.DetectionResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	GetCategoryByCode(ctx context.Context, code string) (*models.Category, error)
	GetCategoryFromCache(ctx context.Context, code string) (*models.Category, error)
	SetCategoryCache(ctx context.Context, category *models.Category) error
}

// DistrictRepository выполняет пространственный запрос округа. Пустой код - точка вне округов.
type DistrictRepository interface {
	FindDistrictCode(ctx context.Context, lat, lng float64) (string, error)
}

// AnalysisRepository определяет контракт хранилища пространственных анализов
type AnalysisRepository interface {
	ListIncidentLocations(ctx context.Context, start, end time.Time, districtCode *string) ([]models.IncidentLocation, error)
	CreateAnalysis(ctx context.Context, analysis *models.GeospatialAnalysis) error
	InsertHeatmapPoints(ctx context.Context, points []*models.HeatmapPoint) error
	CompleteAnalysis(ctx context.Context, id uuid.UUID, results models.AnalysisResults, generatedAt time.Time) error
	FailAnalysis(ctx context.Context, id uuid.UUID, reason string) error
	GetAnalysis(ctx context.Context, id uuid.UUID) (*models.GeospatialAnalysis, error)
	ListHeatmapPoints(ctx context.Context, analysisID uuid.UUID) ([]*models.HeatmapPoint, error)
	GetHeatmapFromCache(ctx context.Context, id uuid.UUID) (*models.Heatmap, error)
	SetHeatmapCache(ctx context.Context, heatmap *models.Heatmap) error
}

// UserRepository возвращает роль пользователя
type UserRepository interface {
	GetUserRole(ctx context.Context, userID string) (string, error)
}

// DetectionClient - внешний сервис распознавания изображений
type DetectionClient interface {
	Submit(ctx context.Context, queryID, imageURL string) (*detection.SubmitResponse, error)
	FetchResult(ctx context.Context, queryID string) (*detection.Result, error)
}

// ObjectStore - объектное хранилище фотографий
type ObjectStore interface {
	Put(ctx context.Context, bucket, relativePath string, data []byte, contentType string, overwrite bool) (*storage.Object, error)
	PublicURL(bucket, relativePath string) string
	RelativePathFromURL(publicURL string) (string, bool)
}

// SpatialResolver определяет округ по координатам. Ошибки запроса считаются отсутствием округа.
type SpatialResolver interface {
	ResolveDistrict(ctx context.Context, lat, lng float64) (string, bool)
}

// IncidentService определяет контракт приема инцидентов
type IncidentService interface {
	UploadPhoto(ctx context.Context, userID string, data []byte, contentType string) (*models.PhotoUpload, error)
	CreateIncident(ctx context.Context, input models.CreateIncidentInput) (*models.IncidentCreateResult, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
}

// HeatmapService определяет контракт построения тепловых карт
type HeatmapService interface {
	GenerateHeatmap(ctx context.Context, req models.HeatmapRequest) (*models.HeatmapSummary, error)
	GetHeatmap(ctx context.Context, id uuid.UUID) (*models.Heatmap, error)
}

// UserService проверяет роли пользователей
type UserService interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}
