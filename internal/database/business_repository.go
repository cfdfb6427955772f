package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BusinessRepository provides access to the businesses table
type BusinessRepository struct {
	pool *pgxpool.Pool
}

func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{pool: pool}
}

// Create inserts a business owned by the given profile. Called at
// registration time for business accounts, before any details are filled in.
func (r *BusinessRepository) Create(ctx context.Context, ownerID, businessName, username string) (models.Business, error) {
	var b models.Business
	now := time.Now()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO businesses (id, owner_id, business_name, username, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', $5, $5)
		RETURNING id, owner_id, business_name, username, description, created_at, updated_at
	`, uuid.NewString(), ownerID, businessName, username, now).
		Scan(&b.ID, &b.OwnerID, &b.BusinessName, &b.Username, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Business{}, fmt.Errorf("failed to create business: %w", err)
	}
	return b, nil
}

// ByOwner returns the business owned by a user, if any.
func (r *BusinessRepository) ByOwner(ctx context.Context, ownerID string) (models.Business, error) {
	var b models.Business
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, business_name, username, description, created_at, updated_at
		FROM businesses WHERE owner_id = $1
	`, ownerID).Scan(&b.ID, &b.OwnerID, &b.BusinessName, &b.Username, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Business{}, err
	}
	return b, nil
}

// ByID returns a business with its owner's display name.
func (r *BusinessRepository) ByID(ctx context.Context, id string) (models.BusinessWithOwner, error) {
	var b models.BusinessWithOwner
	err := r.pool.QueryRow(ctx, `
		SELECT b.id, b.owner_id, b.business_name, b.username, b.description, b.created_at, b.updated_at, p.full_name
		FROM businesses b
		INNER JOIN profiles p ON b.owner_id = p.id
		WHERE b.id = $1
	`, id).Scan(&b.ID, &b.OwnerID, &b.BusinessName, &b.Username, &b.Description, &b.CreatedAt, &b.UpdatedAt, &b.OwnerName)
	if err != nil {
		return models.BusinessWithOwner{}, err
	}
	return b, nil
}

// List returns all businesses with owner names, optionally filtered by a
// case-insensitive name search, newest first.
func (r *BusinessRepository) List(ctx context.Context, search string) ([]models.BusinessWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.owner_id, b.business_name, b.username, b.description, b.created_at, b.updated_at, p.full_name
		FROM businesses b
		INNER JOIN profiles p ON b.owner_id = p.id
		WHERE $1 = '' OR b.business_name ILIKE $2
		ORDER BY b.created_at DESC
	`, search, "%"+search+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinessesWithOwner(rows)
}

// ByOwnerIDs resolves owner user ids to their businesses, joined with the
// owner's name. Owners with no business come back missing.
func (r *BusinessRepository) ByOwnerIDs(ctx context.Context, ownerIDs []string) ([]models.BusinessWithOwner, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT b.id, b.owner_id, b.business_name, b.username, b.description, b.created_at, b.updated_at, p.full_name
		FROM businesses b
		INNER JOIN profiles p ON b.owner_id = p.id
		WHERE b.owner_id = ANY($1)
	`, ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve businesses: %w", err)
	}
	defer rows.Close()

	return scanBusinessesWithOwner(rows)
}

// Update changes the editable business fields, scoped to the owner.
func (r *BusinessRepository) Update(ctx context.Context, ownerID, businessName, description string) (models.Business, error) {
	var b models.Business
	err := r.pool.QueryRow(ctx, `
		UPDATE businesses SET business_name = $1, description = $2, updated_at = $3
		WHERE owner_id = $4
		RETURNING id, owner_id, business_name, username, description, created_at, updated_at
	`, businessName, description, time.Now(), ownerID).
		Scan(&b.ID, &b.OwnerID, &b.BusinessName, &b.Username, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return models.Business{}, err
	}
	return b, nil
}

func scanBusinessesWithOwner(rows pgx.Rows) ([]models.BusinessWithOwner, error) {
	var businesses []models.BusinessWithOwner
	for rows.Next() {
		var b models.BusinessWithOwner
		if err := rows.Scan(&b.ID, &b.OwnerID, &b.BusinessName, &b.Username, &b.Description, &b.CreatedAt, &b.UpdatedAt, &b.OwnerName); err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}
