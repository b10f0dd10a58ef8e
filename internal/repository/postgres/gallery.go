package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

// GalleryRepo implements repository.GalleryRepository using PostgreSQL.
type GalleryRepo struct{ db *DB }

func NewGalleryRepo(db *DB) *GalleryRepo { return &GalleryRepo{db: db} }

const galleryColumns = `id, title, description, image_key, image_url, image_placeholder,
       category, featured, display_order, created_by, created_at, updated_at`

func scanGalleryItem(row pgx.Row) (*models.GalleryItem, error) {
	var it models.GalleryItem
	err := row.Scan(&it.ID, &it.Title, &it.Description, &it.Image.Key, &it.Image.URL,
		&it.Image.Placeholder, &it.Category, &it.Featured, &it.Order,
		&it.CreatedByID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &it, nil
}

func collectGalleryItems(rows pgx.Rows) ([]models.GalleryItem, error) {
	defer rows.Close()
	var out []models.GalleryItem
	for rows.Next() {
		var it models.GalleryItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Description, &it.Image.Key, &it.Image.URL,
			&it.Image.Placeholder, &it.Category, &it.Featured, &it.Order,
			&it.CreatedByID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *GalleryRepo) Create(ctx context.Context, it *models.GalleryItem) error {
	const q = `
INSERT INTO gallery_items (title, description, image_key, image_url, image_placeholder,
                           category, featured, display_order, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at, updated_at`
	return r.db.Pool.QueryRow(ctx, q, it.Title, it.Description, it.Image.Key, it.Image.URL,
		it.Image.Placeholder, it.Category, it.Featured, it.Order, it.CreatedByID).
		Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *GalleryRepo) GetByID(ctx context.Context, id int64) (*models.GalleryItem, error) {
	const q = `SELECT ` + galleryColumns + ` FROM gallery_items WHERE id=$1`
	return scanGalleryItem(r.db.Pool.QueryRow(ctx, q, id))
}

// List filters by category and featured flag, ordered by display order
// ascending then newest first.
func (r *GalleryRepo) List(ctx context.Context, f repository.GalleryFilter) ([]models.GalleryItem, int, error) {
	where := "WHERE TRUE"
	args := []any{}
	if f.Category != "" {
		args = append(args, f.Category)
		where += fmt.Sprintf(" AND category=$%d", len(args))
	}
	if f.FeaturedOnly {
		where += " AND featured"
	}

	var total int
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM gallery_items `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	q := fmt.Sprintf(`SELECT %s FROM gallery_items %s ORDER BY display_order ASC, created_at DESC LIMIT $%d OFFSET $%d`,
		galleryColumns, where, len(args)-1, len(args))
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	items, err := collectGalleryItems(rows)
	return items, total, err
}

func (r *GalleryRepo) ListFeatured(ctx context.Context, limit int) ([]models.GalleryItem, error) {
	const q = `SELECT ` + galleryColumns + `
FROM gallery_items WHERE featured ORDER BY display_order ASC, created_at DESC LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	return collectGalleryItems(rows)
}

func (r *GalleryRepo) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	const q = `
SELECT category, COUNT(*) FROM gallery_items GROUP BY category ORDER BY COUNT(*) DESC`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CategoryCount
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Update persists metadata only; the image reference is immutable.
func (r *GalleryRepo) Update(ctx context.Context, it *models.GalleryItem) error {
	const q = `
UPDATE gallery_items
SET title=$2, description=$3, category=$4, featured=$5, display_order=$6, updated_at=NOW()
WHERE id=$1
RETURNING updated_at`
	err := r.db.Pool.QueryRow(ctx, q, it.ID, it.Title, it.Description, it.Category, it.Featured, it.Order).
		Scan(&it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func (r *GalleryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM gallery_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
