package repository

import (
	"context"

	"github.com/apricot12/concierge/internal/domain"
)

// EventRepo is the per-session calendar event store. Every operation is
// scoped to a session key; session keys never see each other's events.
type EventRepo interface {
	Create(ctx context.Context, sessionKey string, e *domain.Event) error
	GetByID(ctx context.Context, sessionKey, id string) (*domain.Event, error)
	ListAll(ctx context.Context, sessionKey string) ([]*domain.Event, error)
	// ListByDateRange returns events whose start falls inside the closed
	// [start, end] range, ascending by start time.
	ListByDateRange(ctx context.Context, sessionKey, start, end string) ([]*domain.Event, error)
	// SearchByTitle does a case-insensitive substring match on title.
	SearchByTitle(ctx context.Context, sessionKey, query string) ([]*domain.Event, error)
	Update(ctx context.Context, sessionKey string, e *domain.Event) error
	// Delete removes the event if present; reports whether a removal occurred.
	Delete(ctx context.Context, sessionKey, id string) (bool, error)
}
