package service

import (
	"context"
	"fmt"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
	"serenityplace/internal/util"
)

// PostInput carries the writable blog post fields.
type PostInput struct {
	Title   string
	Content string
	Excerpt string
	Tags    []string
	Status  models.PostStatus
}

// BlogService applies the blog ownership policy: staff act only on
// posts they authored, admins act on anything.
type BlogService struct {
	posts repository.BlogRepository
}

func NewBlogService(posts repository.BlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

// ListPublished returns the public feed, newest first.
func (s *BlogService) ListPublished(ctx context.Context, page, pageSize int) ([]models.BlogPost, int, error) {
	return s.posts.ListPublished(ctx, pageSize, (page-1)*pageSize)
}

// ListForManager returns every post for admins, or only the caller's
// own posts for staff.
func (s *BlogService) ListForManager(ctx context.Context, caller *models.User) ([]models.BlogPost, error) {
	if caller.Role == models.RoleAdmin {
		return s.posts.ListAll(ctx)
	}
	return s.posts.ListByAuthor(ctx, caller.ID)
}

// Get returns a post. Drafts are visible only to their author and to
// admins; everyone else gets not-found, never forbidden, so private
// drafts don't leak their existence.
func (s *BlogService) Get(ctx context.Context, id int64, caller *models.User) (*models.BlogPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status == models.StatusPublished {
		return p, nil
	}
	if caller != nil && (caller.Role == models.RoleAdmin || caller.ID == p.AuthorID) {
		return p, nil
	}
	return nil, errs.ErrNotFound
}

// Create makes the caller the author and derives the slug from the
// title. A slug collision surfaces as errs.ErrAlreadyExists.
func (s *BlogService) Create(ctx context.Context, caller *models.User, in PostInput) (*models.BlogPost, error) {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", errs.ErrValidation, in.Status)
	}
	slug := util.Slugify(in.Title)
	if slug == "" {
		return nil, fmt.Errorf("%w: title yields an empty slug", errs.ErrValidation)
	}

	p := &models.BlogPost{
		Title:      in.Title,
		Content:    in.Content,
		Excerpt:    in.Excerpt,
		Slug:       slug,
		Tags:       in.Tags,
		Status:     status,
		AuthorID:   caller.ID,
		AuthorName: caller.Name,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update edits a post. Staff may only edit their own; the slug is
// re-derived when the title changes.
func (s *BlogService) Update(ctx context.Context, caller *models.User, id int64, in PostInput) (*models.BlogPost, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if caller.Role != models.RoleAdmin && p.AuthorID != caller.ID {
		return nil, fmt.Errorf("%w: not the author", errs.ErrForbidden)
	}

	status := in.Status
	if status == "" {
		status = p.Status
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", errs.ErrValidation, in.Status)
	}
	if in.Title != p.Title {
		p.Slug = util.Slugify(in.Title)
		if p.Slug == "" {
			return nil, fmt.Errorf("%w: title yields an empty slug", errs.ErrValidation)
		}
	}

	p.Title = in.Title
	p.Content = in.Content
	p.Excerpt = in.Excerpt
	p.Status = status
	if in.Tags != nil {
		p.Tags = in.Tags
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a post. Admins delete anything; staff delete only
// their own posts and only while still drafts.
func (s *BlogService) Delete(ctx context.Context, caller *models.User, id int64) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if caller.Role != models.RoleAdmin {
		if p.AuthorID != caller.ID {
			return fmt.Errorf("%w: not the author", errs.ErrForbidden)
		}
		if p.Status != models.StatusDraft {
			return fmt.Errorf("%w: staff may only delete their own drafts", errs.ErrForbidden)
		}
	}
	return s.posts.Delete(ctx, id)
}
