package database

import (
	"context"
	"fmt"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MallRepository provides read access to the malls table
type MallRepository struct {
	pool *pgxpool.Pool
}

func NewMallRepository(pool *pgxpool.Pool) *MallRepository {
	return &MallRepository{pool: pool}
}

// List returns all malls ordered by name.
func (r *MallRepository) List(ctx context.Context) ([]models.Mall, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, location, created_at FROM malls ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list malls: %w", err)
	}
	defer rows.Close()

	var malls []models.Mall
	for rows.Next() {
		var m models.Mall
		if err := rows.Scan(&m.ID, &m.Name, &m.Location, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mall: %w", err)
		}
		malls = append(malls, m)
	}
	return malls, rows.Err()
}

// ByID returns a single mall.
func (r *MallRepository) ByID(ctx context.Context, id string) (models.Mall, error) {
	var m models.Mall
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, location, created_at FROM malls WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Location, &m.CreatedAt)
	if err != nil {
		return models.Mall{}, err
	}
	return m, nil
}
