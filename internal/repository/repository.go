// Package repository declares the persistence interfaces consumed by
// services and middleware. The postgres subpackage implements them.
package repository

import (
	"context"

	"serenityplace/internal/models"
)

// UserRepository persists user records. Implementations never hand the
// password hash to JSON encoders; the model hides it with a `json:"-"` tag.
type UserRepository interface {
	// Create inserts a user and fills its ID and timestamps.
	// Returns errs.ErrAlreadyExists on a duplicate email.
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns all users, newest first.
	List(ctx context.Context) ([]models.User, error)
	// Update persists name, email, role and password hash.
	// Returns errs.ErrAlreadyExists if the email collides with another user.
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	// Create inserts a post and fills its ID and timestamps.
	// Returns errs.ErrAlreadyExists on a slug collision.
	Create(ctx context.Context, p *models.BlogPost) error
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	// ListPublished returns published posts newest first plus the total
	// published count for pagination.
	ListPublished(ctx context.Context, limit, offset int) ([]models.BlogPost, int, error)
	// ListAll returns every post regardless of status, newest first.
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	// ListByAuthor returns one author's posts, newest first.
	ListByAuthor(ctx context.Context, authorID int64) ([]models.BlogPost, error)
	Update(ctx context.Context, p *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
}

// GalleryFilter narrows gallery listings.
type GalleryFilter struct {
	Category     models.GalleryCategory // empty means all
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// GalleryRepository persists gallery items.
type GalleryRepository interface {
	Create(ctx context.Context, it *models.GalleryItem) error
	GetByID(ctx context.Context, id int64) (*models.GalleryItem, error)
	// List returns items sorted by display order then newest first,
	// plus the total matching count.
	List(ctx context.Context, f GalleryFilter) ([]models.GalleryItem, int, error)
	ListFeatured(ctx context.Context, limit int) ([]models.GalleryItem, error)
	// CategoryCounts returns item counts per category, most populated first.
	CategoryCounts(ctx context.Context) ([]models.CategoryCount, error)
	Update(ctx context.Context, it *models.GalleryItem) error
	Delete(ctx context.Context, id int64) error
}

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, c *models.ContactSubmission) error
	GetByID(ctx context.Context, id int64) (*models.ContactSubmission, error)
	// List returns submissions newest first, optionally filtered by
	// status (empty means all), plus the total matching count.
	List(ctx context.Context, status models.ContactStatus, limit, offset int) ([]models.ContactSubmission, int, error)
	// UpdateStatus sets the status and, when notes is non-nil, the admin
	// notes, returning the updated record.
	UpdateStatus(ctx context.Context, id int64, status models.ContactStatus, notes *string) (*models.ContactSubmission, error)
	Stats(ctx context.Context) (*models.ContactStats, error)
}
