package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GalleryRepository provides access to the business_gallery table. Only
// image metadata lives here; the bytes are in an external object store.
type GalleryRepository struct {
	pool *pgxpool.Pool
}

func NewGalleryRepository(pool *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{pool: pool}
}

// ForBusiness returns a business's gallery, newest first.
func (r *GalleryRepository) ForBusiness(ctx context.Context, businessID string) ([]models.GalleryImage, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, business_id, image_url, caption, created_at
		FROM business_gallery
		WHERE business_id = $1
		ORDER BY created_at DESC
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		var img models.GalleryImage
		if err := rows.Scan(&img.ID, &img.BusinessID, &img.ImageURL, &img.Caption, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gallery image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// Add inserts gallery image metadata for a business.
func (r *GalleryRepository) Add(ctx context.Context, businessID, imageURL string, caption *string) (models.GalleryImage, error) {
	var img models.GalleryImage
	err := r.pool.QueryRow(ctx, `
		INSERT INTO business_gallery (id, business_id, image_url, caption, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, business_id, image_url, caption, created_at
	`, uuid.NewString(), businessID, imageURL, caption, time.Now()).
		Scan(&img.ID, &img.BusinessID, &img.ImageURL, &img.Caption, &img.CreatedAt)
	if err != nil {
		return models.GalleryImage{}, fmt.Errorf("failed to add gallery image: %w", err)
	}
	return img, nil
}

// Remove deletes an image, scoped to the given business so one business
// cannot delete another's images.
func (r *GalleryRepository) Remove(ctx context.Context, imageID, businessID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM business_gallery WHERE id = $1 AND business_id = $2
	`, imageID, businessID)
	if err != nil {
		return false, fmt.Errorf("failed to remove gallery image: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
