package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"serenityplace/internal/errs"
	"serenityplace/internal/imagestore"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

// placeholderKey marks image refs that never reached the image store.
const placeholderKey = "placeholder"

// GalleryInput carries the writable gallery item fields.
type GalleryInput struct {
	Title       string
	Description string
	Category    models.GalleryCategory
	Featured    bool
	Order       int
}

// GalleryService manages gallery items. Any staff or admin may edit any
// item; there is no per-item ownership rule.
type GalleryService struct {
	items          repository.GalleryRepository
	images         imagestore.Store
	placeholderURL string
	logger         *zap.Logger
}

func NewGalleryService(items repository.GalleryRepository, images imagestore.Store, placeholderURL string, logger *zap.Logger) *GalleryService {
	return &GalleryService{items: items, images: images, placeholderURL: placeholderURL, logger: logger}
}

func (s *GalleryService) List(ctx context.Context, f repository.GalleryFilter) ([]models.GalleryItem, int, error) {
	if f.Category != "" && !f.Category.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid category %q", errs.ErrValidation, f.Category)
	}
	return s.items.List(ctx, f)
}

func (s *GalleryService) ListFeatured(ctx context.Context, limit int) ([]models.GalleryItem, error) {
	if limit <= 0 {
		limit = 3
	}
	return s.items.ListFeatured(ctx, limit)
}

func (s *GalleryService) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	return s.items.CategoryCounts(ctx)
}

// Create uploads the image and persists the item. An image-store
// failure degrades to a placeholder reference instead of failing the
// whole operation; the item stays usable and the failure is logged.
func (s *GalleryService) Create(ctx context.Context, caller *models.User, in GalleryInput, imageData []byte, contentType string) (*models.GalleryItem, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", errs.ErrValidation, in.Category)
	}

	ref, err := s.images.Upload(ctx, imageData, contentType)
	if err != nil {
		s.logger.Warn("image upload failed, using placeholder", zap.Error(err))
		ref = models.ImageRef{Key: placeholderKey, URL: s.placeholderURL, Placeholder: true}
	}

	it := &models.GalleryItem{
		Title:       in.Title,
		Description: in.Description,
		Image:       ref,
		Category:    in.Category,
		Featured:    in.Featured,
		Order:       in.Order,
		CreatedByID: caller.ID,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *GalleryService) Get(ctx context.Context, id int64) (*models.GalleryItem, error) {
	return s.items.GetByID(ctx, id)
}

// Update edits metadata only; the stored image is immutable.
func (s *GalleryService) Update(ctx context.Context, id int64, in GalleryInput) (*models.GalleryItem, error) {
	if !in.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", errs.ErrValidation, in.Category)
	}
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Title = in.Title
	it.Description = in.Description
	it.Category = in.Category
	it.Featured = in.Featured
	it.Order = in.Order
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete releases the stored image and removes the record. The release
// is best-effort: a failure is logged and never blocks row deletion.
func (s *GalleryService) Delete(ctx context.Context, id int64) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !it.Image.Placeholder && it.Image.Key != "" {
		if err := s.images.Delete(ctx, it.Image.Key); err != nil {
			s.logger.Warn("image release failed, removing record anyway",
				zap.Int64("item_id", id), zap.String("key", it.Image.Key), zap.Error(err))
		}
	}
	return s.items.Delete(ctx, id)
}
