package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
)

// ContactRepo implements repository.ContactRepository using PostgreSQL.
type ContactRepo struct{ db *DB }

func NewContactRepo(db *DB) *ContactRepo { return &ContactRepo{db: db} }

const contactColumns = `id, name, email, phone, message, inquiry_type, status, admin_notes, created_at, updated_at`

func scanContact(row pgx.Row) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message,
		&c.InquiryType, &c.Status, &c.AdminNotes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

func (r *ContactRepo) Create(ctx context.Context, c *models.ContactSubmission) error {
	const q = `
INSERT INTO contact_submissions (name, email, phone, message, inquiry_type)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, status, created_at, updated_at`
	return r.db.Pool.QueryRow(ctx, q, c.Name, c.Email, c.Phone, c.Message, c.InquiryType).
		Scan(&c.ID, &c.Status, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ContactRepo) GetByID(ctx context.Context, id int64) (*models.ContactSubmission, error) {
	const q = `SELECT ` + contactColumns + ` FROM contact_submissions WHERE id=$1`
	return scanContact(r.db.Pool.QueryRow(ctx, q, id))
}

func (r *ContactRepo) List(ctx context.Context, status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		args = append(args, status)
		where = "WHERE status=$1"
	}

	var total int
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	q := fmt.Sprintf(`SELECT %s FROM contact_submissions %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		contactColumns, where, len(args)-1, len(args))
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message,
			&c.InquiryType, &c.Status, &c.AdminNotes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// UpdateStatus sets the status; admin notes change only when notes is non-nil.
func (r *ContactRepo) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus, notes *string) (*models.ContactSubmission, error) {
	const q = `
UPDATE contact_submissions
SET status=$2, admin_notes=COALESCE($3, admin_notes), updated_at=NOW()
WHERE id=$1
RETURNING ` + contactColumns
	return scanContact(r.db.Pool.QueryRow(ctx, q, id, status, notes))
}

func (r *ContactRepo) Stats(ctx context.Context) (*models.ContactStats, error) {
	const q = `
SELECT COUNT(*),
       COUNT(*) FILTER (WHERE status='new'),
       COUNT(*) FILTER (WHERE status='contacted'),
       COUNT(*) FILTER (WHERE status='resolved'),
       COUNT(*) FILTER (WHERE created_at >= NOW() - INTERVAL '7 days')
FROM contact_submissions`
	var s models.ContactStats
	if err := r.db.Pool.QueryRow(ctx, q).
		Scan(&s.Total, &s.New, &s.Contacted, &s.Resolved, &s.Recent); err != nil {
		return nil, err
	}
	return &s, nil
}
