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

type AnalysisRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewAnalysisRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.AnalysisRepository {
	return &AnalysisRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// ListIncidentLocations возвращает координаты инцидентов, созданных в [start, end]
func (r *AnalysisRepository) ListIncidentLocations(ctx context.Context, start, end time.Time, districtCode *string) ([]models.IncidentLocation, error) {
	query := `
		SELECT
			incident_id,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude
		FROM incidents
		WHERE created_at BETWEEN $1 AND $2
			AND ($3::varchar IS NULL OR district_code = $3);
	`
	rows, err := r.db.Query(ctx, query, start, end, districtCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident locations: %w", err)
	}
	defer rows.Close()

	locations := make([]models.IncidentLocation, 0)
	for rows.Next() {
		var loc models.IncidentLocation
		if err := rows.Scan(&loc.IncidentID, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan incident location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListIncidentLocations: %w", err)
	}
	return locations, nil
}

// CreateAnalysis создает запись анализа и заполняет ID и CreatedAt
func (r *AnalysisRepository) CreateAnalysis(ctx context.Context, analysis *models.GeospatialAnalysis) error {
	query := `
		INSERT INTO geospatial_analyses (
			analysis_type, min_lat, max_lat, min_lng, max_lng,
			time_range_start, time_range_end, district_code, requested_by, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING analysis_id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		analysis.AnalysisType,
		analysis.BoundingBox.MinLat,
		analysis.BoundingBox.MaxLat,
		analysis.BoundingBox.MinLng,
		analysis.BoundingBox.MaxLng,
		analysis.TimeRangeStart,
		analysis.TimeRangeEnd,
		analysis.DistrictCode,
		analysis.RequestedBy,
		analysis.Status,
	).Scan(&analysis.ID, &analysis.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

// InsertHeatmapPoints записывает точки одной командой COPY
func (r *AnalysisRepository) InsertHeatmapPoints(ctx context.Context, points []*models.HeatmapPoint) error {
	if len(points) == 0 {
		return nil
	}

	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"heatmap_points"},
		[]string{"point_id", "analysis_id", "latitude", "longitude", "intensity", "incident_count", "radius"},
		pgx.CopyFromSlice(len(points), func(i int) ([]any, error) {
			p := points[i]
			return []any{p.ID, p.AnalysisID, p.Latitude, p.Longitude, p.Intensity, p.IncidentCount, p.Radius}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert heatmap points: %w", err)
	}
	return nil
}

// CompleteAnalysis переводит анализ в completed
func (r *AnalysisRepository) CompleteAnalysis(ctx context.Context, id uuid.UUID, results models.AnalysisResults, generatedAt time.Time) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis results: %w", err)
	}

	query := `
		UPDATE geospatial_analyses SET
			status = 'completed',
			results = $2,
			generated_at = $3
		WHERE analysis_id = $1;
	`
	return r.updateAnalysis(ctx, query, id, payload, generatedAt)
}

// FailAnalysis переводит анализ в failed и сохраняет причину
func (r *AnalysisRepository) FailAnalysis(ctx context.Context, id uuid.UUID, reason string) error {
	payload, err := json.Marshal(models.AnalysisResults{Error: reason})
	if err != nil {
		return fmt.Errorf("failed to marshal analysis failure: %w", err)
	}

	query := `
		UPDATE geospatial_analyses SET
			status = 'failed',
			results = $2
		WHERE analysis_id = $1;
	`
	return r.updateAnalysis(ctx, query, id, payload)
}

func (r *AnalysisRepository) updateAnalysis(ctx context.Context, query string, id uuid.UUID, args ...any) error {
	cmdTag, err := r.db.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update analysis: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("analysis with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// GetAnalysis возвращает анализ по ID
func (r *AnalysisRepository) GetAnalysis(ctx context.Context, id uuid.UUID) (*models.GeospatialAnalysis, error) {
	analysis := &models.GeospatialAnalysis{}
	var results []byte
	query := `
		SELECT
			analysis_id,
			analysis_type,
			min_lat, max_lat, min_lng, max_lng,
			time_range_start,
			time_range_end,
			district_code,
			requested_by,
			status,
			results,
			generated_at,
			created_at
		FROM geospatial_analyses
		WHERE analysis_id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&analysis.ID,
		&analysis.AnalysisType,
		&analysis.BoundingBox.MinLat,
		&analysis.BoundingBox.MaxLat,
		&analysis.BoundingBox.MinLng,
		&analysis.BoundingBox.MaxLng,
		&analysis.TimeRangeStart,
		&analysis.TimeRangeEnd,
		&analysis.DistrictCode,
		&analysis.RequestedBy,
		&analysis.Status,
		&results,
		&analysis.GeneratedAt,
		&analysis.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("analysis with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get analysis by id: %w", err)
	}

	if len(results) > 0 {
		analysis.Results = &models.AnalysisResults{}
		if err := json.Unmarshal(results, analysis.Results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis results: %w", err)
		}
	}
	return analysis, nil
}

// ListHeatmapPoints возвращает точки анализа по убыванию интенсивности
func (r *AnalysisRepository) ListHeatmapPoints(ctx context.Context, analysisID uuid.UUID) ([]*models.HeatmapPoint, error) {
	query := `
		SELECT point_id, analysis_id, latitude, longitude, intensity, incident_count, radius
		FROM heatmap_points
		WHERE analysis_id = $1
		ORDER BY intensity DESC, incident_count DESC;
	`
	rows, err := r.db.Query(ctx, query, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to list heatmap points: %w", err)
	}
	defer rows.Close()

	points := make([]*models.HeatmapPoint, 0)
	for rows.Next() {
		p := &models.HeatmapPoint{}
		if err := rows.Scan(&p.ID, &p.AnalysisID, &p.Latitude, &p.Longitude, &p.Intensity, &p.IncidentCount, &p.Radius); err != nil {
			return nil, fmt.Errorf("failed to scan heatmap point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in ListHeatmapPoints: %w", err)
	}
	return points, nil
}

// GetHeatmapFromCache пытается получить тепловую карту из Redis. Промах - (nil, nil).
func (r *AnalysisRepository) GetHeatmapFromCache(ctx context.Context, id uuid.UUID) (*models.Heatmap, error) {
	val, err := r.redisClient.Get(ctx, heatmapKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get heatmap from cache: %w", err)
	}

	heatmap := &models.Heatmap{}
	if err := json.Unmarshal(val, heatmap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal heatmap from cache: %w", err)
	}
	return heatmap, nil
}

// SetHeatmapCache сохраняет завершенную тепловую карту в Redis
func (r *AnalysisRepository) SetHeatmapCache(ctx context.Context, heatmap *models.Heatmap) error {
	val, err := json.Marshal(heatmap)
	if err != nil {
		return fmt.Errorf("failed to marshal heatmap for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, heatmapKey(heatmap.Analysis.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set heatmap in cache: %w", err)
	}
	return nil
}

func heatmapKey(id uuid.UUID) string {
	return fmt.Sprintf("heatmap:%s", id.String())
}
