package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProfileRepository provides access to the profiles table
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Create inserts a new profile. The password must already be hashed.
func (r *ProfileRepository) Create(ctx context.Context, email, fullName, phone, passwordHash, userType string) (models.Profile, error) {
	var p models.Profile
	now := time.Now()
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (id, email, full_name, phone, password_hash, user_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, email, full_name, phone, user_type, created_at, updated_at
	`, uuid.NewString(), email, fullName, phone, passwordHash, userType, now).
		Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.UserType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return p, nil
}

// EmailExists reports whether a profile is already registered for the email.
func (r *ProfileRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM profiles WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// ByEmail returns the profile for an email, including the password hash.
func (r *ProfileRepository) ByEmail(ctx context.Context, email string) (models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, full_name, phone, password_hash, user_type, created_at, updated_at
		FROM profiles WHERE email = $1
	`, email).Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.Password, &p.UserType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// ByID returns the profile for a user id, without the password hash.
func (r *ProfileRepository) ByID(ctx context.Context, id string) (models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, full_name, phone, user_type, created_at, updated_at
		FROM profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.UserType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

// CustomersByIDs resolves the given user ids against customer profiles only.
// Ids that do not belong to a customer account simply come back missing.
func (r *ProfileRepository) CustomersByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, full_name, phone, user_type, created_at, updated_at
		FROM profiles
		WHERE user_type = 'customer' AND id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customers: %w", err)
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.UserType, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Update changes the editable profile fields.
func (r *ProfileRepository) Update(ctx context.Context, id, fullName, phone string) (models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		UPDATE profiles SET full_name = $1, phone = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, email, full_name, phone, user_type, created_at, updated_at
	`, fullName, phone, time.Now(), id).
		Scan(&p.ID, &p.Email, &p.FullName, &p.Phone, &p.UserType, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	return p, nil
}
