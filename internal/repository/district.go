package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/urban_incident_system/internal/service"
)

type DistrictRepository struct {
	db *pgxpool.Pool
}

func NewDistrictRepository(db *pgxpool.Pool) service.DistrictRepository {
	return &DistrictRepository{db: db}
}

// FindDistrictCode вызывает get_district_by_coordinates. Точка вне округов дает пустую строку.
func (r *DistrictRepository) FindDistrictCode(ctx context.Context, lat, lng float64) (string, error) {
	var code *string
	if err := r.db.QueryRow(ctx, `SELECT get_district_by_coordinates($1, $2);`, lat, lng).Scan(&code); err != nil {
		return "", fmt.Errorf("failed to resolve district: %w", err)
	}
	if code == nil {
		return "", nil
	}
	return *code, nil
}
