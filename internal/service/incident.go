package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/urban_incident_system/internal/category"
	"github.com/shenikar/urban_incident_system/internal/config"
	"github.com/shenikar/urban_incident_system/internal/detection"
	"github.com/shenikar/urban_incident_system/internal/metrics"
	"github.com/shenikar/urban_incident_system/internal/models"
	"github.com/shenikar/urban_incident_system/internal/webhook"
)

const (
	// ModelVersion - версия модели распознавания, записываемая в результат
	ModelVersion = "yolo-lima-v1.0"

	MaxPhotoSize = 5 << 20
)

var photoExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

type incidentService struct {
	repo      IncidentRepository
	districts SpatialResolver
	detector  DetectionClient
	store     ObjectStore
	publisher webhook.EventPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger

	bucket string
	poll   detection.PollPolicy
	now    func() time.Time
}

func NewIncidentService(
	repo IncidentRepository,
	districts SpatialResolver,
	detector DetectionClient,
	store ObjectStore,
	publisher webhook.EventPublisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) IncidentService {
	return &incidentService{
		repo:      repo,
		districts: districts,
		detector:  detector,
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		bucket:    cfg.StorageBucket,
		poll: detection.PollPolicy{
			SettleDelay: cfg.DetectionSettleDelay,
			Interval:    cfg.DetectionPollInterval,
			MaxInterval: cfg.DetectionPollMaxDelay,
			MaxAttempts: cfg.DetectionPollAttempts,
			Timeout:     cfg.DetectionPollTimeout,
		},
		now: time.Now,
	}
}

// UploadPhoto сохраняет фотографию инцидента в хранилище под именем {user_id}_{unix_ms}.{ext}
func (s *incidentService) UploadPhoto(ctx context.Context, userID string, data []byte, contentType string) (*models.PhotoUpload, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "UploadPhoto",
		"user_id": userID,
		"size":    len(data),
	})
	log.Info("Uploading incident photo")

	if len(data) == 0 {
		return nil, validationError("photo is empty")
	}
	if len(data) > MaxPhotoSize {
		return nil, validationError("photo exceeds maximum size of 5MB")
	}
	ext, ok := photoExtensions[contentType]
	if !ok {
		return nil, validationError("unsupported photo type %q, only image/jpeg and image/png are allowed", contentType)
	}

	photoID := fmt.Sprintf("%s_%d", userID, s.now().UnixMilli())
	path := photoID + "." + ext

	obj, err := s.store.Put(ctx, s.bucket, path, data, contentType, false)
	if err != nil {
		log.WithError(err).Error("Failed to store photo")
		s.metrics.PhotoUploads.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, upstreamError("failed to upload photo", err)
	}

	s.metrics.PhotoUploads.WithLabelValues(metrics.ResultSuccess).Inc()
	log.WithField("path", obj.RelativePath).Info("Photo uploaded successfully")
	return &models.PhotoUpload{
		PhotoID:      photoID,
		PhotoURL:     obj.PublicURL,
		RelativePath: obj.RelativePath,
	}, nil
}

// CreateIncident выполняет конвейер приема инцидента: округ, распознавание, категория, запись.
// Уже записанные данные при ошибке на поздних шагах не откатываются.
func (s *incidentService) CreateIncident(ctx context.Context, in models.CreateIncidentInput) (*models.IncidentCreateResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateIncident",
		"incident_id": in.IncidentID,
	})
	log.Info("Attempting to create a new incident")

	photoPath, err := s.validateInput(in)
	if err != nil {
		s.countFailure("validation")
		return nil, err
	}

	// Отключение клиента не прерывает уже начатые внешние вызовы
	ctx = context.WithoutCancel(ctx)

	// 1. Округ
	districtCode, ok := s.districts.ResolveDistrict(ctx, in.Latitude, in.Longitude)
	if !ok {
		log.Warn("District unresolved, aborting before detection")
		s.countFailure("district_unresolved")
		return nil, ErrDistrictUnresolved
	}
	log = log.WithField("district_code", districtCode)

	// 2-3. Распознавание
	result, err := s.detect(ctx, log, in.IncidentID, in.PhotoURL)
	if err != nil {
		s.countFailure("detection")
		return nil, err
	}

	// 4. Категория
	categoryCode, ok := category.Map(result.Category)
	if !ok {
		log.WithField("label", result.Category).Error("Detected label has no internal category")
		s.countFailure("unmapped_category")
		return nil, &Error{Kind: ErrIntegrity, Message: fmt.Sprintf("detected category %q is not supported", result.Category)}
	}

	// 5. Запись справочника
	cat, err := s.categoryByCode(ctx, categoryCode)
	if err != nil {
		log.WithError(err).WithField("category_code", categoryCode).Error("Failed to resolve category record")
		s.countFailure("category")
		return nil, err
	}

	// 6. Инцидент
	incident := &models.Incident{
		ID:                 in.IncidentID,
		ReportedBy:         in.ReportedBy,
		Description:        in.Description,
		CategoryID:         cat.ID,
		CategoryCode:       cat.Code,
		AIDetectedCategory: result.Category,
		AIConfidence:       result.Confidence,
		Priority:           string(category.PriorityFor(result.Confidence)),
		PhotoPath:          photoPath,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		DistrictCode:       districtCode,
		Status:             models.IncidentStatusPending,
	}
	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		s.countFailure("persist")
		return nil, upstreamError("failed to save incident", err)
	}

	// 7. Результат распознавания. Ошибка не отменяет уже сохраненный инцидент.
	detectionRecord := &models.DetectionResult{
		IncidentID:     incident.ID,
		CategoryID:     cat.ID,
		Confidence:     result.Confidence,
		BoundingBox:    result.Details,
		ModelVersion:   ModelVersion,
		DetectionCount: result.DetectionCount,
		ResultURL:      result.ResultURL,
		RawResponse:    result.Raw,
	}
	if err := s.repo.CreateDetectionResult(ctx, detectionRecord); err != nil {
		log.WithError(err).Warn("Failed to save detection result, incident kept")
	}

	s.metrics.IncidentsIngested.WithLabelValues(metrics.ResultSuccess, "").Inc()
	publish(ctx, s.publisher, log, webhook.EventIncidentCreated, incident)

	log.WithFields(logrus.Fields{
		"category_code": cat.Code,
		"confidence":    result.Confidence,
		"priority":      incident.Priority,
	}).Info("Incident created successfully")

	return &models.IncidentCreateResult{
		IncidentID:       incident.ID,
		PhotoURL:         s.store.PublicURL(s.bucket, photoPath),
		DetectedCategory: result.Category,
		Confidence:       result.Confidence,
		CategoryCode:     cat.Code,
		DistrictCode:     districtCode,
		ResultURL:        result.ResultURL,
	}, nil
}

// GetIncident возвращает инцидент с восстановленным публичным URL фотографии
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{Kind: ErrNotFound, Message: "incident not found", Err: err}
		}
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, upstreamError("failed to load incident", err)
	}

	if incident.PhotoPath != "" {
		incident.PhotoURL = s.store.PublicURL(s.bucket, incident.PhotoPath)
	}
	return incident, nil
}

func (s *incidentService) validateInput(in models.CreateIncidentInput) (string, error) {
	if in.IncidentID == uuid.Nil {
		return "", validationError("incident_id is required")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return "", validationError("latitude must be between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return "", validationError("longitude must be between -180 and 180")
	}
	if strings.TrimSpace(in.ReportedBy) == "" {
		return "", validationError("reporter is required")
	}
	path, ok := s.store.RelativePathFromURL(in.PhotoURL)
	if !ok {
		return "", validationError("photo_url is not a storage public URL")
	}
	return path, nil
}

// detect отправляет задание и ждет результат с ограниченным числом повторов
func (s *incidentService) detect(ctx context.Context, log *logrus.Entry, id uuid.UUID, photoURL string) (*detection.Result, error) {
	queryID := id.String()
	started := s.now()

	if _, err := s.detector.Submit(ctx, queryID, photoURL); err != nil {
		log.WithError(err).Error("Detection submit failed")
		return nil, upstreamError("detection service rejected the request", err)
	}

	result, attempts, err := detection.AwaitResult(ctx, s.detector, queryID, s.poll)
	s.metrics.DetectionAttempts.Observe(float64(attempts))
	if err != nil {
		log.WithError(err).WithField("attempts", attempts).Error("Detection result unavailable")
		if errors.Is(err, detection.ErrPollExhausted) {
			return nil, &Error{Kind: ErrNotFound, Message: "detection result not available", Err: err}
		}
		return nil, upstreamError("failed to fetch detection result", err)
	}

	s.metrics.DetectionDuration.Observe(s.now().Sub(started).Seconds())
	log.WithFields(logrus.Fields{
		"label":      result.Category,
		"confidence": result.Confidence,
		"attempts":   attempts,
	}).Info("Detection completed")
	return result, nil
}

// categoryByCode читает категорию из кэша, при промахе из базы
func (s *incidentService) categoryByCode(ctx context.Context, code string) (*models.Category, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "categoryByCode",
		"category_code": code,
	})

	cached, err := s.repo.GetCategoryFromCache(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to read category cache")
	} else if cached != nil {
		return cached, nil
	}

	cat, err := s.repo.GetCategoryByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, &Error{Kind: ErrIntegrity, Message: fmt.Sprintf("category %s is not registered", code), Err: err}
		}
		return nil, upstreamError("failed to load category", err)
	}

	if err := s.repo.SetCategoryCache(ctx, cat); err != nil {
		log.WithError(err).Warn("Failed to cache category")
	}
	return cat, nil
}

func (s *incidentService) countFailure(reason string) {
	s.metrics.IncidentsIngested.WithLabelValues(metrics.ResultFailure, reason).Inc()
}

// publish ставит событие в очередь. Ошибка только логируется.
func publish(ctx context.Context, p webhook.EventPublisher, log *logrus.Entry, eventType string, data any) {
	event, err := webhook.NewEvent(eventType, data)
	if err == nil {
		err = p.Publish(ctx, event)
	}
	if err != nil {
		log.WithError(err).WithField("event_type", eventType).Warn("Failed to publish webhook event")
	}
}
