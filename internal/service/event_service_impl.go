package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/repository"
	"github.com/google/uuid"
)

type eventService struct {
	events repository.EventRepo
	now    func() time.Time
}

// NewEventService creates an EventService over the given repository.
func NewEventService(events repository.EventRepo) EventService {
	return &eventService{events: events, now: time.Now}
}

func (s *eventService) Create(ctx context.Context, sessionKey string, in contract.EventInput) (*domain.Event, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.StartDateTime) == "" {
		return nil, fmt.Errorf("%w: startDateTime is required", domain.ErrValidation)
	}

	start, err := domain.ParseWallClock(in.StartDateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startDateTime %q is not a valid timestamp", domain.ErrValidation, in.StartDateTime)
	}

	end := in.EndDateTime
	if end == "" {
		end = domain.FormatWallClock(start.Add(domain.DefaultEventDurationMin * time.Minute))
	} else {
		end = domain.NormalizeWallClock(end)
	}

	recurrence := in.Recurrence
	if recurrence == "" {
		recurrence = string(domain.RecurNone)
	}
	if !domain.ValidRecurrences[recurrence] {
		return nil, fmt.Errorf("%w: unknown recurrence %q", domain.ErrValidation, recurrence)
	}

	now := s.now().UTC()
	e := &domain.Event{
		ID:              uuid.New().String(),
		Title:           in.Title,
		Description:     in.Description,
		StartDateTime:   domain.FormatWallClock(start),
		EndDateTime:     end,
		Location:        in.Location,
		Category:        domain.CoalesceStr(in.Category, domain.DefaultCategory),
		ReminderMinutes: domain.IntFromPtrWithDefault(domain.DefaultReminderMinutes, in.ReminderMinutes),
		Recurrence:      domain.Recurrence(recurrence),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.events.Create(ctx, sessionKey, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) Get(ctx context.Context, sessionKey, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, sessionKey, id)
}

func (s *eventService) List(ctx context.Context, sessionKey string, rng *contract.DateRange) ([]*domain.Event, error) {
	if rng != nil {
		return s.events.ListByDateRange(ctx, sessionKey, rng.Start, rng.End)
	}
	return s.events.ListAll(ctx, sessionKey)
}

func (s *eventService) Update(ctx context.Context, sessionKey, id string, patch domain.EventPatch) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(e)
	e.StartDateTime = domain.NormalizeWallClock(e.StartDateTime)
	e.EndDateTime = domain.NormalizeWallClock(e.EndDateTime)
	e.UpdatedAt = s.now().UTC()

	if err := s.events.Update(ctx, sessionKey, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, sessionKey, id string) error {
	removed, err := s.events.Delete(ctx, sessionKey, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}
