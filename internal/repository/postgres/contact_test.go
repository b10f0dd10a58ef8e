package postgres

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"serenityplace/internal/errs"
	"serenityplace/internal/models"
)

var contactCols = []string{
	"id", "name", "email", "phone", "message", "inquiry_type", "status",
	"admin_notes", "created_at", "updated_at",
}

func TestContactRepoCreate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)
	ctx := context.Background()

	c := &models.ContactSubmission{
		Name: "Visitor", Email: "v@example.org", Phone: "555-0100",
		Message: "hello", InquiryType: models.InquiryGeneral,
	}
	now := time.Now()
	mock.ExpectQuery(`INSERT INTO contact_submissions`).
		WithArgs(c.Name, c.Email, c.Phone, c.Message, c.InquiryType).
		WillReturnRows(pgxmock.NewRows([]string{"id", "status", "created_at", "updated_at"}).
			AddRow(int64(3), models.ContactNew, now, now))
	require.NoError(t, r.Create(ctx, c))
	require.Equal(t, models.ContactNew, c.Status)
}

func TestContactRepoListFiltersByStatus(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contact_submissions WHERE status=\$1`).
		WithArgs(models.ContactNew).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT .* FROM contact_submissions WHERE status=\$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
		WithArgs(models.ContactNew, 10, 0).
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow(int64(3), "Visitor", "v@example.org", "555-0100", "hello",
				models.InquiryGeneral, models.ContactNew, "", now, now))

	out, total, err := r.List(ctx, models.ContactNew, 10, 0)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, out, 1)
}

func TestContactRepoUpdateStatus(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)
	ctx := context.Background()
	now := time.Now()

	notes := "called back"
	mock.ExpectQuery(`UPDATE contact_submissions`).
		WithArgs(int64(3), models.ContactContacted, &notes).
		WillReturnRows(pgxmock.NewRows(contactCols).
			AddRow(int64(3), "Visitor", "v@example.org", "555-0100", "hello",
				models.InquiryGeneral, models.ContactContacted, notes, now, now))
	c, err := r.UpdateStatus(ctx, 3, models.ContactContacted, &notes)
	require.NoError(t, err)
	require.Equal(t, models.ContactContacted, c.Status)
	require.Equal(t, notes, c.AdminNotes)

	mock.ExpectQuery(`UPDATE contact_submissions`).
		WithArgs(int64(99), models.ContactResolved, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows(contactCols))
	_, err = r.UpdateStatus(ctx, 99, models.ContactResolved, nil)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestContactRepoStats(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewContactRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT COUNT\(\*\),`).
		WillReturnRows(pgxmock.NewRows([]string{"total", "new", "contacted", "resolved", "recent"}).
			AddRow(10, 4, 3, 3, 5))
	s, err := r.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, s.Total)
	require.Equal(t, 5, s.Recent)
}
