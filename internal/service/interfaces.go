package service

import (
	"context"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
)

// AssistantService is the transport-agnostic chat surface: one inbound
// message is classified, routed, and answered end-to-end.
type AssistantService interface {
	// HandleChat processes one chat message for a session. On any external
	// failure the error propagates and neither the conversation history
	// nor the event store is touched.
	HandleChat(ctx context.Context, sessionKey, text string) (*contract.ChatResult, error)

	// ClearSession resets the session's conversation history. Calendar
	// events are untouched.
	ClearSession(ctx context.Context, sessionKey string) error
}

// EventService is the direct calendar CRUD surface, shared by the REST
// API and the chat router's mutating branches.
type EventService interface {
	// Create validates required fields, fills defaults, and stores a new
	// event. A missing end defaults to start + 60 minutes.
	Create(ctx context.Context, sessionKey string, in contract.EventInput) (*domain.Event, error)
	Get(ctx context.Context, sessionKey, id string) (*domain.Event, error)
	// List returns all events in insertion order, or the events starting
	// within rng (ascending by start) when rng is non-nil.
	List(ctx context.Context, sessionKey string, rng *contract.DateRange) ([]*domain.Event, error)
	// Update shallow-merges the patch onto the stored event, refreshing
	// updatedAt and preserving id and createdAt.
	Update(ctx context.Context, sessionKey, id string, patch domain.EventPatch) (*domain.Event, error)
	Delete(ctx context.Context, sessionKey, id string) error
}
