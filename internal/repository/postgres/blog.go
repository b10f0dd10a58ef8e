package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
)

// BlogRepo implements repository.BlogRepository using PostgreSQL.
type BlogRepo struct{ db *DB }

func NewBlogRepo(db *DB) *BlogRepo { return &BlogRepo{db: db} }

// postSelect joins the author's name, mirroring the public API shape.
const postSelect = `
SELECT p.id, p.title, p.content, p.excerpt, p.slug, p.tags, p.status,
       p.author_id, u.name, p.created_at, p.updated_at
FROM blog_posts p
JOIN users u ON u.id = p.author_id`

func scanPost(row pgx.Row) (*models.BlogPost, error) {
	var p models.BlogPost
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Slug, &p.Tags,
		&p.Status, &p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &p, nil
}

func collectPosts(rows pgx.Rows) ([]models.BlogPost, error) {
	defer rows.Close()
	var out []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Slug, &p.Tags,
			&p.Status, &p.AuthorID, &p.AuthorName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *BlogRepo) Create(ctx context.Context, p *models.BlogPost) error {
	const q = `
INSERT INTO blog_posts (title, content, excerpt, slug, tags, status, author_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at, updated_at`
	err := r.db.Pool.QueryRow(ctx, q, p.Title, p.Content, p.Excerpt, p.Slug, p.Tags, p.Status, p.AuthorID).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func (r *BlogRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return scanPost(r.db.Pool.QueryRow(ctx, postSelect+` WHERE p.id=$1`, id))
}

func (r *BlogRepo) ListPublished(ctx context.Context, limit, offset int) ([]models.BlogPost, int, error) {
	var total int
	if err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE status='published'`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Pool.Query(ctx,
		postSelect+` WHERE p.status='published' ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	posts, err := collectPosts(rows)
	return posts, total, err
}

func (r *BlogRepo) ListAll(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.db.Pool.Query(ctx, postSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *BlogRepo) ListByAuthor(ctx context.Context, authorID int64) ([]models.BlogPost, error) {
	rows, err := r.db.Pool.Query(ctx,
		postSelect+` WHERE p.author_id=$1 ORDER BY p.created_at DESC`, authorID)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *BlogRepo) Update(ctx context.Context, p *models.BlogPost) error {
	const q = `
UPDATE blog_posts
SET title=$2, content=$3, excerpt=$4, slug=$5, tags=$6, status=$7, updated_at=NOW()
WHERE id=$1
RETURNING updated_at`
	err := r.db.Pool.QueryRow(ctx, q, p.ID, p.Title, p.Content, p.Excerpt, p.Slug, p.Tags, p.Status).
		Scan(&p.UpdatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func (r *BlogRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
