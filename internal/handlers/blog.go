package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"serenityplace/internal/middleware"
	"serenityplace/internal/models"
	"serenityplace/internal/service"
)

const (
	blogPageSize    = 10
	blogMaxPageSize = 50
)

// BlogHandler serves the public feed and the staff/admin management
// routes. The single-post route resolves an optional Bearer token so
// authors and admins can read their own drafts through it.
type BlogHandler struct {
	posts  *service.BlogService
	authn  *middleware.Authenticator
	logger *zap.Logger
}

func NewBlogHandler(posts *service.BlogService, authn *middleware.Authenticator, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{posts: posts, authn: authn, logger: logger}
}

type postRequest struct {
	Title   string            `json:"title" validate:"required"`
	Content string            `json:"content" validate:"required"`
	Excerpt string            `json:"excerpt"`
	Tags    []string          `json:"tags"`
	Status  models.PostStatus `json:"status"`
}

func (req postRequest) input() service.PostInput {
	return service.PostInput{
		Title:   req.Title,
		Content: req.Content,
		Excerpt: req.Excerpt,
		Tags:    req.Tags,
		Status:  req.Status,
	}
}

// ListPublished is the public feed, paginated newest first. An
// optional ?limit= overrides the page size, capped at 50.
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)
	pageSize := limitParam(r, blogPageSize, blogMaxPageSize)
	posts, total, err := h.posts.ListPublished(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"posts":       posts,
		"totalPages":  totalPages(total, pageSize),
		"currentPage": page,
		"total":       total,
	})
}

// ListForManager returns all posts for admins, own posts for staff.
func (h *BlogHandler) ListForManager(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListForManager(r.Context(), middleware.UserFromContext(r.Context()))
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if posts == nil {
		posts = []models.BlogPost{}
	}
	respondJSON(w, http.StatusOK, posts)
}

// Get returns one post. Drafts answer 404 unless the optional Bearer
// token names the author or an admin.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	caller, _ := h.authn.Resolve(r)
	p, err := h.posts.Get(r.Context(), id, caller)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	p, err := h.posts.Create(r.Context(), middleware.UserFromContext(r.Context()), req.input())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	var req postRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	p, err := h.posts.Update(r.Context(), middleware.UserFromContext(r.Context()), id, req.input())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if err := h.posts.Delete(r.Context(), middleware.UserFromContext(r.Context()), id); err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondMessage(w, http.StatusOK, "Blog post deleted successfully")
}
