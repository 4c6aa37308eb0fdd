package service

import (
	"context"
	"testing"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/db"
	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventService(t *testing.T) (EventService, repository.EventRepo) {
	t.Helper()
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	repo := repository.NewSQLiteEventRepo(database)
	return NewEventService(repo), repo
}

func TestCreateFillsDefaults(t *testing.T) {
	svc, _ := newTestEventService(t)

	e, err := svc.Create(context.Background(), "s1", contract.EventInput{
		Title:         "Dentist",
		StartDateTime: "2024-03-01T10:00:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	other, err := svc.Create(context.Background(), "s1", contract.EventInput{
		Title:         "Dentist",
		StartDateTime: "2024-03-01T10:00:00",
	})
	require.NoError(t, err)
	assert.NotEqual(t, e.ID, other.ID)

	assert.Equal(t, domain.DefaultCategory, e.Category)
	assert.Equal(t, domain.DefaultReminderMinutes, e.ReminderMinutes)
	assert.Equal(t, domain.RecurNone, e.Recurrence)
	// Missing end defaults to one hour after start.
	assert.Equal(t, "2024-03-01T11:00:00", e.EndDateTime)
	assert.False(t, e.CreatedAt.IsZero())
	assert.True(t, e.UpdatedAt.Equal(e.CreatedAt))
}

func TestCreateHonorsExplicitFields(t *testing.T) {
	svc, _ := newTestEventService(t)
	reminder := 10

	e, err := svc.Create(context.Background(), "s1", contract.EventInput{
		Title:           "Yoga",
		StartDateTime:   "2024-03-01T18:00:00",
		EndDateTime:     "2024-03-01T19:30:00",
		Location:        "Studio B",
		Category:        "health",
		ReminderMinutes: &reminder,
		Recurrence:      "weekly",
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-03-01T19:30:00", e.EndDateTime)
	assert.Equal(t, "health", e.Category)
	assert.Equal(t, 10, e.ReminderMinutes)
	assert.Equal(t, domain.RecurWeekly, e.Recurrence)
}

func TestCreateNormalizesZonedTimestamps(t *testing.T) {
	svc, _ := newTestEventService(t)

	e, err := svc.Create(context.Background(), "s1", contract.EventInput{
		Title:         "Flight",
		StartDateTime: "2024-03-01T10:00:00Z",
		EndDateTime:   "2024-03-01T13:00:00Z",
	})
	require.NoError(t, err)

	// Zone suffixes are dropped; the wall-clock fields are preserved.
	assert.Equal(t, "2024-03-01T10:00:00", e.StartDateTime)
	assert.Equal(t, "2024-03-01T13:00:00", e.EndDateTime)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "s1", contract.EventInput{StartDateTime: "2024-03-01T10:00:00"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, "s1", contract.EventInput{Title: "Dentist"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, "s1", contract.EventInput{Title: "Dentist", StartDateTime: "next tuesday"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(ctx, "s1", contract.EventInput{
		Title:         "Dentist",
		StartDateTime: "2024-03-01T10:00:00",
		Recurrence:    "fortnightly",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdatePreservesIdentityFields(t *testing.T) {
	svc, _ := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", contract.EventInput{
		Title:         "Dentist",
		StartDateTime: "2024-03-01T10:00:00",
	})
	require.NoError(t, err)

	newTitle := "Dentist (moved)"
	newStart := "2024-03-02T10:00:00"
	updated, err := svc.Update(ctx, "s1", created.ID, domain.EventPatch{
		Title:         &newTitle,
		StartDateTime: &newStart,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "Dentist (moved)", updated.Title)
	assert.Equal(t, "2024-03-02T10:00:00", updated.StartDateTime)
	// Untouched fields survive the patch.
	assert.Equal(t, created.EndDateTime, updated.EndDateTime)
	assert.Equal(t, created.Category, updated.Category)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newTestEventService(t)

	title := "Ghost"
	_, err := svc.Update(context.Background(), "s1", "missing", domain.EventPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListWithAndWithoutRange(t *testing.T) {
	svc, _ := newTestEventService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "s1", contract.EventInput{Title: "March", StartDateTime: "2024-03-10T10:00:00"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "s1", contract.EventInput{Title: "April", StartDateTime: "2024-04-10T10:00:00"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "s1", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	march, err := svc.List(ctx, "s1", &contract.DateRange{Start: "2024-03-01T00:00:00", End: "2024-03-31T23:59:59"})
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "March", march[0].Title)
}

func TestDeleteEvent(t *testing.T) {
	svc, _ := newTestEventService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", contract.EventInput{
		Title:         "Dentist",
		StartDateTime: "2024-03-01T10:00:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "s1", created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "s1", created.ID), domain.ErrNotFound)

	_, err = svc.Get(ctx, "s1", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
