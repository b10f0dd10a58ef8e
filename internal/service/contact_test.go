package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
)

func submitContact(t *testing.T, svc *ContactService, in ContactInput) *models.ContactSubmission {
	t.Helper()
	c, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	return c
}

func TestContactSubmitDefaults(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	c := submitContact(t, svc, ContactInput{
		Name:    "Dana Reyes",
		Email:   "dana@example.org",
		Phone:   "555-0173",
		Message: "Do you offer family counseling?",
	})
	require.Equal(t, models.ContactNew, c.Status)
	require.Equal(t, models.InquiryGeneral, c.InquiryType)
	require.NotZero(t, c.ID)
}

func TestContactSubmitInvalidInquiry(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.Submit(context.Background(), ContactInput{
		Name: "Dana", Email: "dana@example.org", Phone: "555-0173", Message: "hi", InquiryType: "billing",
	})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestContactListByStatus(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())
	ctx := context.Background()

	a := submitContact(t, svc, ContactInput{Name: "A", Email: "a@example.org", Phone: "555-0101", Message: "m"})
	submitContact(t, svc, ContactInput{Name: "B", Email: "b@example.org", Phone: "555-0102", Message: "m"})

	_, err := svc.UpdateStatus(ctx, a.ID, models.ContactResolved, nil)
	require.NoError(t, err)

	resolved, total, err := svc.List(ctx, models.ContactResolved, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, a.ID, resolved[0].ID)

	all, total, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, all, 2)

	_, _, err = svc.List(ctx, "archived", 1, 10)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestContactUpdateStatus(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())
	ctx := context.Background()

	c := submitContact(t, svc, ContactInput{Name: "Dana", Email: "dana@example.org", Phone: "555-0173", Message: "m"})

	notes := "left voicemail"
	got, err := svc.UpdateStatus(ctx, c.ID, models.ContactContacted, &notes)
	require.NoError(t, err)
	require.Equal(t, models.ContactContacted, got.Status)
	require.Equal(t, "left voicemail", got.AdminNotes)

	// Omitted notes leave the existing ones in place.
	got, err = svc.UpdateStatus(ctx, c.ID, models.ContactContacted, nil)
	require.NoError(t, err)
	require.Equal(t, models.ContactContacted, got.Status)
	require.Equal(t, "left voicemail", got.AdminNotes)

	_, err = svc.UpdateStatus(ctx, c.ID, "archived", nil)
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = svc.UpdateStatus(ctx, 9999, models.ContactResolved, nil)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestContactStats(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())
	ctx := context.Background()

	a := submitContact(t, svc, ContactInput{Name: "A", Email: "a@example.org", Phone: "555-0101", Message: "m"})
	submitContact(t, svc, ContactInput{Name: "B", Email: "b@example.org", Phone: "555-0102", Message: "m"})
	submitContact(t, svc, ContactInput{Name: "C", Email: "c@example.org", Phone: "555-0103", Message: "m"})

	_, err := svc.UpdateStatus(ctx, a.ID, models.ContactResolved, nil)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.New)
	require.Equal(t, 0, stats.Contacted)
	require.Equal(t, 1, stats.Resolved)
	require.Equal(t, 3, stats.Recent)
}
