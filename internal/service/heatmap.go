package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/urban_incident_system/internal/config"
	"github.com/shenikar/urban_incident_system/internal/heatmap"
	"github.com/shenikar/urban_incident_system/internal/metrics"
	"github.com/shenikar/urban_incident_system/internal/models"
	"github.com/shenikar/urban_incident_system/internal/webhook"
)

type heatmapService struct {
	repo      AnalysisRepository
	publisher webhook.EventPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	grid      heatmap.Grid
	now       func() time.Time
}

func NewHeatmapService(
	repo AnalysisRepository,
	publisher webhook.EventPublisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) HeatmapService {
	return &heatmapService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		grid:      heatmap.NewGrid(cfg.HeatmapGridSize, cfg.HeatmapPointRadius),
		now:       time.Now,
	}
}

// GenerateHeatmap строит тепловую карту инцидентов за период.
// Анализ создается в статусе processing; при ошибке после этого он помечается failed.
func (s *heatmapService) GenerateHeatmap(ctx context.Context, req models.HeatmapRequest) (*models.HeatmapSummary, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "heatmap",
		"method":       "GenerateHeatmap",
		"range_start":  req.TimeRangeStart,
		"range_end":    req.TimeRangeEnd,
		"requested_by": req.RequestedBy,
	})
	if req.DistrictCode != nil {
		log = log.WithField("district_code", *req.DistrictCode)
	}
	log.Info("Generating heatmap")

	if err := validateHeatmapRequest(req); err != nil {
		s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	locations, err := s.repo.ListIncidentLocations(ctx, req.TimeRangeStart, req.TimeRangeEnd, req.DistrictCode)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents")
		s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, upstreamError("failed to load incidents", err)
	}
	if len(locations) == 0 {
		log.Warn("No incidents in range")
		s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, ErrNoIncidentsFound
	}

	analysis := &models.GeospatialAnalysis{
		AnalysisType:   models.AnalysisTypeHeatmap,
		BoundingBox:    heatmap.Bounds(locations),
		TimeRangeStart: req.TimeRangeStart,
		TimeRangeEnd:   req.TimeRangeEnd,
		DistrictCode:   req.DistrictCode,
		RequestedBy:    req.RequestedBy,
		Status:         models.AnalysisStatusProcessing,
	}
	if err := s.repo.CreateAnalysis(ctx, analysis); err != nil {
		log.WithError(err).Error("Failed to create analysis")
		s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, upstreamError("failed to create analysis", err)
	}
	log = log.WithField("analysis_id", analysis.ID)

	summary, err := s.aggregate(ctx, analysis, locations)
	if err != nil {
		log.WithError(err).Error("Heatmap aggregation failed")
		if failErr := s.repo.FailAnalysis(ctx, analysis.ID, err.Error()); failErr != nil {
			log.WithError(failErr).Error("Failed to mark analysis as failed")
		}
		s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, upstreamError("failed to generate heatmap", err)
	}

	s.metrics.HeatmapGenerations.WithLabelValues(metrics.ResultSuccess).Inc()
	s.metrics.HeatmapPoints.Observe(float64(summary.TotalPoints))
	publish(ctx, s.publisher, log, webhook.EventHeatmapCompleted, summary)

	log.WithFields(logrus.Fields{
		"incidents":     len(locations),
		"total_points":  summary.TotalPoints,
		"max_intensity": summary.MaxIntensity,
	}).Info("Heatmap generated successfully")
	return summary, nil
}

// aggregate группирует инциденты по ячейкам сетки и сохраняет точки
func (s *heatmapService) aggregate(ctx context.Context, analysis *models.GeospatialAnalysis, locations []models.IncidentLocation) (*models.HeatmapSummary, error) {
	cells := s.grid.Aggregate(locations)

	points := make([]*models.HeatmapPoint, 0, len(cells))
	for _, c := range cells {
		points = append(points, &models.HeatmapPoint{
			ID:            uuid.New(),
			AnalysisID:    analysis.ID,
			Latitude:      c.CenterLat,
			Longitude:     c.CenterLng,
			Intensity:     c.Intensity,
			IncidentCount: c.Count,
			Radius:        s.grid.Radius,
		})
	}
	if err := s.repo.InsertHeatmapPoints(ctx, points); err != nil {
		return nil, err
	}

	results := models.AnalysisResults{
		TotalPoints:  len(points),
		MaxIntensity: heatmap.MaxIntensity(cells),
	}
	generatedAt := s.now().UTC()
	if err := s.repo.CompleteAnalysis(ctx, analysis.ID, results, generatedAt); err != nil {
		return nil, err
	}

	return &models.HeatmapSummary{
		AnalysisID:   analysis.ID,
		TotalPoints:  results.TotalPoints,
		MaxIntensity: results.MaxIntensity,
		GeneratedAt:  generatedAt,
	}, nil
}

// GetHeatmap возвращает анализ и его точки. Завершенные анализы кэшируются.
func (s *heatmapService) GetHeatmap(ctx context.Context, id uuid.UUID) (*models.Heatmap, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "heatmap",
		"method":      "GetHeatmap",
		"analysis_id": id,
	})

	cached, err := s.repo.GetHeatmapFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read heatmap cache")
	} else if cached != nil {
		log.Debug("Heatmap served from cache")
		return cached, nil
	}

	analysis, err := s.repo.GetAnalysis(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{Kind: ErrNotFound, Message: "analysis not found", Err: err}
		}
		log.WithError(err).Error("Failed to load analysis")
		return nil, upstreamError("failed to load analysis", err)
	}

	points, err := s.repo.ListHeatmapPoints(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to load heatmap points")
		return nil, upstreamError("failed to load heatmap points", err)
	}

	result := &models.Heatmap{Analysis: analysis, Points: points}
	if analysis.Status == models.AnalysisStatusCompleted {
		if err := s.repo.SetHeatmapCache(ctx, result); err != nil {
			log.WithError(err).Warn("Failed to cache heatmap")
		}
	}
	return result, nil
}

func validateHeatmapRequest(req models.HeatmapRequest) error {
	if req.TimeRangeStart.IsZero() || req.TimeRangeEnd.IsZero() {
		return validationError("time_range_start and time_range_end are required")
	}
	if req.TimeRangeEnd.Before(req.TimeRangeStart) {
		return validationError("time_range_end must not be before time_range_start")
	}
	if req.RequestedBy == "" {
		return validationError("requester is required")
	}
	if req.DistrictCode != nil && *req.DistrictCode == "" {
		return validationError("district_code must not be empty")
	}
	return nil
}
