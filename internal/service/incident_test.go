package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shenikar/urban_incident_system/internal/config"
	"github.com/shenikar/urban_incident_system/internal/detection"
	"github.com/shenikar/urban_incident_system/internal/metrics"
	"github.com/shenikar/urban_incident_system/internal/models"
	"github.com/shenikar/urban_incident_system/internal/service/mocks"
	"github.com/shenikar/urban_incident_system/internal/storage"
	webhook_mocks "github.com/shenikar/urban_incident_system/internal/webhook/mocks"
)

const (
	testPhotoURL  = "https://project.supabase.co/storage/v1/object/public/yolo_model/user-1_1700000000000.jpg"
	testPhotoPath = "user-1_1700000000000.jpg"
	testDistrict  = "150101"
)

type incidentMocks struct {
	repo      *mocks.MockIncidentRepository
	districts *mocks.MockSpatialResolver
	detector  *mocks.MockDetectionClient
	store     *mocks.MockObjectStore
	publisher *webhook_mocks.MockEventPublisher
}

// newTestIncidentService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, incidentMocks) {
	ctrl := gomock.NewController(t)
	m := incidentMocks{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		districts: mocks.NewMockSpatialResolver(ctrl),
		detector:  mocks.NewMockDetectionClient(ctrl),
		store:     mocks.NewMockObjectStore(ctrl),
		publisher: webhook_mocks.NewMockEventPublisher(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StorageBucket:         "yolo_model",
		DetectionPollInterval: time.Millisecond,
		DetectionPollMaxDelay: 2 * time.Millisecond,
		DetectionPollAttempts: 5,
		DetectionPollTimeout:  time.Second,
	}

	svc := NewIncidentService(m.repo, m.districts, m.detector, m.store, m.publisher, metrics.New(), logger, cfg)
	return svc.(*incidentService), m
}

func validInput() models.CreateIncidentInput {
	return models.CreateIncidentInput{
		IncidentID:  uuid.New(),
		PhotoURL:    testPhotoURL,
		Latitude:    -12.0464,
		Longitude:   -77.0428,
		Description: "Bache grande en la avenida",
		ReportedBy:  "user-1",
	}
}

func potholeResult() *detection.Result {
	return &detection.Result{
		Category:       "bache",
		Confidence:     0.92,
		DetectionCount: 2,
		ResultURL:      "https://yolo.example.com/results/1.jpg",
		Details:        json.RawMessage(`[{"bbox":[1,2,3,4]}]`),
		Raw:            json.RawMessage(`{"resultado":{"categoria":"bache"}}`),
	}
}

func potholeCategory() *models.Category {
	return &models.Category{ID: uuid.New(), Code: "POTHOLE", Name: "Bache"}
}

func TestCreateIncident_Success_AfterNotReady(t *testing.T) {
	// Подготовка
	service, m := newTestIncidentService(t)
	in := validInput()
	queryID := in.IncidentID.String()
	cat := potholeCategory()

	// Ожидания
	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true).Times(1)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), in.Latitude, in.Longitude).Return(testDistrict, true).Times(1)
	m.detector.EXPECT().Submit(gomock.Any(), queryID, testPhotoURL).Return(&detection.SubmitResponse{Success: true}, nil).Times(1)
	gomock.InOrder(
		m.detector.EXPECT().FetchResult(gomock.Any(), queryID).Return(nil, detection.ErrNotReady),
		m.detector.EXPECT().FetchResult(gomock.Any(), queryID).Return(nil, detection.ErrNotReady),
		m.detector.EXPECT().FetchResult(gomock.Any(), queryID).Return(potholeResult(), nil),
	)
	m.repo.EXPECT().GetCategoryFromCache(gomock.Any(), "POTHOLE").Return(nil, nil).Times(1)
	m.repo.EXPECT().GetCategoryByCode(gomock.Any(), "POTHOLE").Return(cat, nil).Times(1)
	m.repo.EXPECT().SetCategoryCache(gomock.Any(), cat).Return(nil).Times(1)
	m.repo.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, in.IncidentID, incident.ID)
			assert.Equal(t, testDistrict, incident.DistrictCode)
			assert.Equal(t, cat.ID, incident.CategoryID)
			assert.Equal(t, "POTHOLE", incident.CategoryCode)
			assert.Equal(t, "bache", incident.AIDetectedCategory)
			assert.Equal(t, testPhotoPath, incident.PhotoPath)
			assert.Equal(t, models.IncidentStatusPending, incident.Status)
			assert.Equal(t, "high", incident.Priority)
			return nil
		}).Times(1)
	m.repo.EXPECT().
		CreateDetectionResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.DetectionResult) error {
			assert.Equal(t, in.IncidentID, r.IncidentID)
			assert.Equal(t, ModelVersion, r.ModelVersion)
			assert.Equal(t, 2, r.DetectionCount)
			assert.JSONEq(t, `{"resultado":{"categoria":"bache"}}`, string(r.RawResponse))
			return nil
		}).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.store.EXPECT().PublicURL("yolo_model", testPhotoPath).Return(testPhotoURL).Times(1)

	// Действие
	result, err := service.CreateIncident(context.Background(), in)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, in.IncidentID, result.IncidentID)
	assert.Equal(t, testPhotoURL, result.PhotoURL)
	assert.Equal(t, "bache", result.DetectedCategory)
	assert.Equal(t, "POTHOLE", result.CategoryCode)
	assert.Equal(t, testDistrict, result.DistrictCode)
	assert.Equal(t, 0.92, result.Confidence)
	assert.Equal(t, "https://yolo.example.com/results/1.jpg", result.ResultURL)
}

func TestCreateIncident_DistrictUnresolved_NoDetectionCall(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true).Times(1)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), in.Latitude, in.Longitude).Return("", false).Times(1)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	result, err := service.CreateIncident(context.Background(), in)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDistrictUnresolved)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateIncident_UnmappedCategory_NoIncidentWritten(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()
	unknown := potholeResult()
	unknown.Category = "semaforo"

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(&detection.SubmitResponse{}, nil)
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Return(unknown, nil)
	m.repo.EXPECT().GetCategoryByCode(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestCreateIncident_CategoryRecordMissing(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(&detection.SubmitResponse{}, nil)
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Return(potholeResult(), nil)
	m.repo.EXPECT().GetCategoryFromCache(gomock.Any(), "POTHOLE").Return(nil, errors.New("redis down"))
	m.repo.EXPECT().GetCategoryByCode(gomock.Any(), "POTHOLE").Return(nil, fmt.Errorf("category POTHOLE: %w", ErrNotFound))
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestCreateIncident_DetectionRecordFailureIsSoft(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()
	cat := potholeCategory()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(&detection.SubmitResponse{}, nil)
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Return(potholeResult(), nil)
	m.repo.EXPECT().GetCategoryFromCache(gomock.Any(), "POTHOLE").Return(cat, nil)
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.repo.EXPECT().CreateDetectionResult(gomock.Any(), gomock.Any()).Return(errors.New("insert failed")).Times(1)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue down")).Times(1)
	m.store.EXPECT().PublicURL("yolo_model", testPhotoPath).Return(testPhotoURL)

	result, err := service.CreateIncident(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, in.IncidentID, result.IncidentID)
}

func TestCreateIncident_PersistFailure(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(&detection.SubmitResponse{}, nil)
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Return(potholeResult(), nil)
	m.repo.EXPECT().GetCategoryFromCache(gomock.Any(), "POTHOLE").Return(potholeCategory(), nil)
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(errors.New("duplicate key"))
	m.repo.EXPECT().CreateDetectionResult(gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCreateIncident_SubmitRejected(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &detection.SubmitError{QueryID: in.IncidentID.String(), StatusCode: 401, Err: errors.New("invalid api key")})
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	var submitErr *detection.SubmitError
	assert.ErrorAs(t, err, &submitErr)
}

func TestCreateIncident_ResultNeverReady(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()

	m.store.EXPECT().RelativePathFromURL(testPhotoURL).Return(testPhotoPath, true)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Return(testDistrict, true)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(&detection.SubmitResponse{}, nil)
	m.detector.EXPECT().FetchResult(gomock.Any(), gomock.Any()).Return(nil, detection.ErrNotReady).Times(5)
	m.repo.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, detection.ErrPollExhausted)
}

func TestCreateIncident_InvalidPhotoURL(t *testing.T) {
	service, m := newTestIncidentService(t)
	in := validInput()
	in.PhotoURL = "https://cdn.example.com/photo.jpg"

	m.store.EXPECT().RelativePathFromURL(in.PhotoURL).Return("", false)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.detector.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.CreateIncident(context.Background(), in)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateIncident_InvalidCoordinates(t *testing.T) {
	service, m := newTestIncidentService(t)
	m.districts.EXPECT().ResolveDistrict(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	in := validInput()
	in.Latitude = 91
	_, err := service.CreateIncident(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)

	in = validInput()
	in.Longitude = -180.5
	_, err = service.CreateIncident(context.Background(), in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUploadPhoto_Success(t *testing.T) {
	service, m := newTestIncidentService(t)
	service.now = func() time.Time { return time.UnixMilli(1700000000000) }
	data := []byte{0xff, 0xd8, 0xff}

	m.store.EXPECT().
		Put(gomock.Any(), "yolo_model", testPhotoPath, data, "image/jpeg", false).
		Return(&storage.Object{Bucket: "yolo_model", RelativePath: testPhotoPath, PublicURL: testPhotoURL}, nil).
		Times(1)

	upload, err := service.UploadPhoto(context.Background(), "user-1", data, "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "user-1_1700000000000", upload.PhotoID)
	assert.Equal(t, testPhotoURL, upload.PhotoURL)
	assert.Equal(t, testPhotoPath, upload.RelativePath)
}

func TestUploadPhoto_Rejected(t *testing.T) {
	service, m := newTestIncidentService(t)
	m.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.UploadPhoto(context.Background(), "user-1", []byte("gif"), "image/gif")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.UploadPhoto(context.Background(), "user-1", make([]byte, MaxPhotoSize+1), "image/png")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.UploadPhoto(context.Background(), "user-1", nil, "image/png")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUploadPhoto_StorageFailure(t *testing.T) {
	service, m := newTestIncidentService(t)
	m.store.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), false).
		Return(nil, &storage.WriteError{Bucket: "yolo_model", Path: "x", Err: storage.ErrObjectExists})

	_, err := service.UploadPhoto(context.Background(), "user-1", []byte{1}, "image/png")

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, storage.ErrObjectExists)
}

func TestGetIncident_Success(t *testing.T) {
	service, m := newTestIncidentService(t)
	id := uuid.New()

	m.repo.EXPECT().GetByID(gomock.Any(), id).Return(&models.Incident{ID: id, PhotoPath: testPhotoPath}, nil)
	m.store.EXPECT().PublicURL("yolo_model", testPhotoPath).Return(testPhotoURL)

	incident, err := service.GetIncident(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, testPhotoURL, incident.PhotoURL)
}

func TestGetIncident_NotFound(t *testing.T) {
	service, m := newTestIncidentService(t)
	id := uuid.New()

	m.repo.EXPECT().GetByID(gomock.Any(), id).Return(nil, fmt.Errorf("incident %s: %w", id, ErrNotFound))

	_, err := service.GetIncident(context.Background(), id)

	assert.ErrorIs(t, err, ErrNotFound)
}
