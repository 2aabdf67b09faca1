package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shenikar/urban_incident_system/internal/service"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &UserRepository{db: db}
}

// GetUserRole возвращает имя роли пользователя
func (r *UserRepository) GetUserRole(ctx context.Context, userID string) (string, error) {
	query := `
		SELECT r.name
		FROM users u
		JOIN roles r ON r.role_id = u.role_id
		WHERE u.user_id::text = $1;
	`
	var role string
	if err := r.db.QueryRow(ctx, query, userID).Scan(&role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("user %s: %w", userID, service.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get user role: %w", err)
	}
	return role, nil
}
