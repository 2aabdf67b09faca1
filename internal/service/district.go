package service

import (
	"context"

	"github.com/sirupsen/logrus"
)

type spatialResolver struct {
	repo   DistrictRepository
	logger *logrus.Logger
}

func NewSpatialResolver(repo DistrictRepository, logger *logrus.Logger) SpatialResolver {
	return &spatialResolver{
		repo:   repo,
		logger: logger,
	}
}

// ResolveDistrict возвращает код округа, содержащего точку.
// Ошибка запроса логируется и трактуется как отсутствие округа.
func (r *spatialResolver) ResolveDistrict(ctx context.Context, lat, lng float64) (string, bool) {
	log := r.logger.WithFields(logrus.Fields{
		"service":   "district",
		"method":    "ResolveDistrict",
		"latitude":  lat,
		"longitude": lng,
	})

	code, err := r.repo.FindDistrictCode(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("District lookup failed")
		return "", false
	}
	if code == "" {
		log.Warn("No district contains the point")
		return "", false
	}

	log.WithField("district_code", code).Debug("District resolved")
	return code, true
}
