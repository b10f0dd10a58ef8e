package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"serenityplace/internal/models"
	"serenityplace/internal/service"
)

const (
	contactPageSize    = 10
	contactMaxPageSize = 50
)

// ContactHandler serves the public intake route and the staff/admin
// follow-up routes.
type ContactHandler struct {
	contacts *service.ContactService
	logger   *zap.Logger
}

func NewContactHandler(contacts *service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

type contactRequest struct {
	Name        string             `json:"name" validate:"required"`
	Email       string             `json:"email" validate:"required,email"`
	Phone       string             `json:"phone" validate:"required"`
	Message     string             `json:"message" validate:"required"`
	InquiryType models.InquiryType `json:"inquiryType"`
}

type statusRequest struct {
	Status     models.ContactStatus `json:"status" validate:"required"`
	AdminNotes *string              `json:"adminNotes,omitempty"`
}

// Submit is the public contact form.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	c, err := h.contacts.Submit(r.Context(), service.ContactInput{
		Name:        req.Name,
		Email:       normalizeEmail(req.Email),
		Phone:       req.Phone,
		Message:     req.Message,
		InquiryType: req.InquiryType,
	})
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"message":   "Thank you for contacting us. We will get back to you soon.",
		"contactId": c.ID,
	})
}

// List returns submissions newest first. `status=all` (or empty) means
// no filter; an optional ?limit= overrides the page size, capped at 50.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	var status models.ContactStatus
	if s := r.URL.Query().Get("status"); s != "" && s != "all" {
		status = models.ContactStatus(s)
	}
	page := pageParam(r)
	pageSize := limitParam(r, contactPageSize, contactMaxPageSize)

	contacts, total, err := h.contacts.List(r.Context(), status, page, pageSize)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	if contacts == nil {
		contacts = []models.ContactSubmission{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"contacts":    contacts,
		"totalPages":  totalPages(total, pageSize),
		"currentPage": page,
		"total":       total,
	})
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	c, err := h.contacts.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// UpdateStatus moves a submission through new → contacted → resolved,
// optionally replacing the admin notes.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, err)
		return
	}
	c, err := h.contacts.UpdateStatus(r.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Stats summarizes submissions for the admin dashboard.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contacts.Stats(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
