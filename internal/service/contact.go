package service

import (
	"context"
	"fmt"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
	"serenityplace/internal/repository"
)

// ContactInput carries a public contact-form submission.
type ContactInput struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	InquiryType models.InquiryType
}

// ContactService handles contact-form intake and staff follow-up.
// Submissions are created only through the public intake path and are
// never deleted.
type ContactService struct {
	contacts repository.ContactRepository
}

func NewContactService(contacts repository.ContactRepository) *ContactService {
	return &ContactService{contacts: contacts}
}

// Submit persists a new submission with status "new". Inquiry type
// defaults to general when absent.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactSubmission, error) {
	inquiry := in.InquiryType
	if inquiry == "" {
		inquiry = models.InquiryGeneral
	}
	if !inquiry.Valid() {
		return nil, fmt.Errorf("%w: invalid inquiry type %q", errs.ErrValidation, in.InquiryType)
	}

	c := &models.ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		InquiryType: inquiry,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns submissions newest first. status filters when set;
// empty (or "all" at the handler) means everything.
func (s *ContactService) List(ctx context.Context, status models.ContactStatus, page, pageSize int) ([]models.ContactSubmission, int, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid status %q", errs.ErrValidation, status)
	}
	return s.contacts.List(ctx, status, pageSize, (page-1)*pageSize)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*models.ContactSubmission, error) {
	return s.contacts.GetByID(ctx, id)
}

// UpdateStatus moves a submission through the handling workflow.
// Re-applying the current status is a no-op apart from any notes.
func (s *ContactService) UpdateStatus(ctx context.Context, id int64, status models.ContactStatus, notes *string) (*models.ContactSubmission, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", errs.ErrValidation, status)
	}
	return s.contacts.UpdateStatus(ctx, id, status, notes)
}

func (s *ContactService) Stats(ctx context.Context) (*models.ContactStats, error) {
	return s.contacts.Stats(ctx)
}
