package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/urban_incident_system/internal/models"
	"github.com/shenikar/urban_incident_system/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// CreateIncident создает запись об инциденте с идентификатором, выданным клиентом
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			incident_id, reported_by, description, category_id, ai_detected_category,
			ai_confidence, priority, photo_url, location, district_code, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, ST_SetSRID(ST_MakePoint($9, $10), 4326), $11, $12)
		RETURNING created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.ID,
		incident.ReportedBy,
		incident.Description,
		incident.CategoryID,
		incident.AIDetectedCategory,
		incident.AIConfidence,
		incident.Priority,
		incident.PhotoPath,
		incident.Longitude,
		incident.Latitude,
		incident.DistrictCode,
		incident.Status,
	).Scan(&incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// CreateDetectionResult сохраняет результат распознавания для инцидента
func (r *IncidentRepository) CreateDetectionResult(ctx context.Context, result *models.DetectionResult) error {
	query := `
		INSERT INTO yolo_detections (
			incident_id, category_id, confidence, bounding_box, model_version,
			num_detecciones, url_resultado, yolo_response_raw
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		result.IncidentID,
		result.CategoryID,
		result.Confidence,
		jsonOrNull(result.BoundingBox),
		result.ModelVersion,
		result.DetectionCount,
		result.ResultURL,
		jsonOrNull(result.RawResponse),
	)
	if err != nil {
		return fmt.Errorf("failed to create detection result: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT
			i.incident_id,
			i.reported_by,
			i.description,
			i.category_id,
			c.code,
			i.ai_detected_category,
			i.ai_confidence,
			i.priority,
			i.photo_url,
			ST_Y(i.location::geometry) AS latitude,
			ST_X(i.location::geometry) AS longitude,
			i.district_code,
			i.status,
			i.created_at,
			i.updated_at
		FROM incidents i
		JOIN incident_categories c ON c.category_id = i.category_id
		WHERE i.incident_id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.ReportedBy,
		&incident.Description,
		&incident.CategoryID,
		&incident.CategoryCode,
		&incident.AIDetectedCategory,
		&incident.AIConfidence,
		&incident.Priority,
		&incident.PhotoPath,
		&incident.Latitude,
		&incident.Longitude,
		&incident.DistrictCode,
		&incident.Status,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// GetCategoryByCode возвращает запись справочника категорий по коду
func (r *IncidentRepository) GetCategoryByCode(ctx context.Context, code string) (*models.Category, error) {
	category := &models.Category{}
	query := `SELECT category_id, code, name FROM incident_categories WHERE code = $1;`

	err := r.db.QueryRow(ctx, query, code).Scan(&category.ID, &category.Code, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", code, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by code: %w", err)
	}
	return category, nil
}

// GetCategoryFromCache пытается получить категорию из Redis. Промах - (nil, nil).
func (r *IncidentRepository) GetCategoryFromCache(ctx context.Context, code string) (*models.Category, error) {
	val, err := r.redisClient.Get(ctx, categoryKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category from cache: %w", err)
	}

	category := &models.Category{}
	if err := json.Unmarshal(val, category); err != nil {
		return nil, fmt.Errorf("failed to unmarshal category from cache: %w", err)
	}
	return category, nil
}

// SetCategoryCache сохраняет категорию в Redis
func (r *IncidentRepository) SetCategoryCache(ctx context.Context, category *models.Category) error {
	val, err := json.Marshal(category)
	if err != nil {
		return fmt.Errorf("failed to marshal category for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, categoryKey(category.Code), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set category in cache: %w", err)
	}
	return nil
}

func categoryKey(code string) string {
	return "category:" + code
}

// jsonOrNull передает пустой JSON как NULL
func jsonOrNull(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
