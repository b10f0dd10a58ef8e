package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"serenityplace/internal/errs"
	"serenityplace/internal/middleware"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
	"serenityplace/internal/service"
)

const (
	galleryPageSize = 50
	maxImageBytes   = 5 << 20
)

// GalleryHandler serves the public gallery and the staff/admin item
// management routes. Creation takes a multipart form with an `image`
// file plus metadata fields.
type GalleryHandler struct {
	items  *service.GalleryService
	logger *zap.Logger
}

func NewGalleryHandler(items *service.GalleryService, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{items: items, logger: logger}
}

type galleryUpdateRequest struct {
	Title       string                 `json:"title" validate:"required"`
	Description string                 `json:"description"`
	Category    models.GalleryCategory `json:"category" validate:"required"`
	Featured    bool                   `json:"featured"`
	Order       int                    `json:"order"`
}

// List is the public gallery. `category=all` (or empty) means no
// category filter; `featured=true` keeps featured items only.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repository.GalleryFilter{Limit: galleryPageSize}

	if c := q.Get("category"); c != "" && c != "all" {
		f.Category = models.GalleryCategory(c)
	}
	f.FeaturedOnly = q.Get("featured") == "true"
	page := pageParam(r)
	f.Offset = (page - 1) * galleryPageSize

	items, total, err := h.items.List(r.Context(), f)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": total,
		"page":  page,
		"pages": totalPages(total, galleryPageSize),
	})
}

// ListFeatured returns the featured strip for the landing page.
func (h *GalleryHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	items, err := h.items.ListFeatured(r.Context(), limit)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if items == nil {
		items = []models.GalleryItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Categories returns per-category counts, most populated first.
func (h *GalleryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.items.Categories(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if counts == nil {
		counts = []models.CategoryCount{}
	}
	respondJSON(w, http.StatusOK, counts)
}

// Create reads the multipart form: an `image` file (5 MiB cap, image/*
// only) and title/description/category/featured/order fields.
func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		respondMessage(w, http.StatusBadRequest, "Image exceeds the 5MB limit")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondMessage(w, http.StatusBadRequest, "Only image uploads are allowed")
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if len(data) > maxImageBytes {
		respondMessage(w, http.StatusBadRequest, "Image exceeds the 5MB limit")
		return
	}

	in := service.GalleryInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    models.GalleryCategory(r.FormValue("category")),
		Featured:    r.FormValue("featured") == "true",
	}
	in.Order, _ = strconv.Atoi(r.FormValue("order"))
	if in.Title == "" {
		respondError(w, h.logger, errs.ErrValidation)
		return
	}

	it, err := h.items.Create(r.Context(), middleware.UserFromContext(r.Context()), in, data, contentType)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, it)
}

func (h *GalleryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	it, err := h.items.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, it)
}

// Update edits metadata only; the stored image is immutable.
func (h *GalleryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	var req galleryUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	it, err := h.items.Update(r.Context(), id, service.GalleryInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Featured:    req.Featured,
		Order:       req.Order,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, it)
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.items.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Gallery item deleted successfully")
}
