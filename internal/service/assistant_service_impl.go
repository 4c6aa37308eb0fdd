package service

import (
	"context"
	"strings"
	"time"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/format"
	"github.com/apricot12/concierge/internal/intelligence"
	"github.com/apricot12/concierge/internal/nldate"
	"github.com/apricot12/concierge/internal/repository"
	"github.com/apricot12/concierge/internal/session"
)

// calendarViewDays is the horizon for VIEW_CALENDAR listings.
const calendarViewDays = 30

// chatCategoryFallback is the category applied to chat-created events
// when the classifier extracted none. Intentionally not the
// direct-create default.
const chatCategoryFallback = "meeting"

type assistantService struct {
	events    EventService
	search    repository.EventRepo
	history   *session.Store
	intents   intelligence.IntentService
	responder intelligence.Responder
	dates     *nldate.Resolver
	now       func() time.Time
}

// NewAssistantService wires the chat dispatcher. search and events must
// be backed by the same store.
func NewAssistantService(
	events EventService,
	search repository.EventRepo,
	history *session.Store,
	intents intelligence.IntentService,
	responder intelligence.Responder,
	dates *nldate.Resolver,
) AssistantService {
	return &assistantService{
		events:    events,
		search:    search,
		history:   history,
		intents:   intents,
		responder: responder,
		dates:     dates,
		now:       time.Now,
	}
}

func (s *assistantService) HandleChat(ctx context.Context, sessionKey, text string) (*contract.ChatResult, error) {
	userMsg := domain.Message{Role: domain.RoleUser, Content: text}

	// The classification window includes the inbound message, but nothing
	// is committed to history until the whole turn has succeeded.
	window := append(s.history.History(sessionKey), userMsg)

	intent, err := s.intents.Classify(ctx, window, s.now())
	if err != nil {
		return nil, err
	}

	result, err := s.route(ctx, sessionKey, text, intent, window)
	if err != nil {
		return nil, err
	}
	result.Intent = intent

	s.history.AppendTurn(sessionKey, userMsg, domain.Message{
		Role:    domain.RoleAssistant,
		Content: result.Response,
	})
	return result, nil
}

func (s *assistantService) ClearSession(_ context.Context, sessionKey string) error {
	s.history.Clear(sessionKey)
	return nil
}

// route dispatches on the classified intent. Each branch is terminal for
// the current message; calendar mutations happen strictly after a fully
// resolved classifier/resolver result.
func (s *assistantService) route(ctx context.Context, sessionKey, text string, intent *domain.IntentResult, window []domain.Message) (*contract.ChatResult, error) {
	switch intent.Type {
	case domain.IntentScheduleEvent:
		return s.scheduleEvent(ctx, sessionKey, text, intent.Entities)

	case domain.IntentUpdateEvent:
		return s.updateEvent(ctx, sessionKey, intent.Entities)

	case domain.IntentDeleteEvent:
		return s.deleteEvent(ctx, sessionKey, intent.Entities)

	case domain.IntentViewCalendar:
		return s.viewCalendar(ctx, sessionKey)

	case domain.IntentBreakdownTask:
		data, err := s.responder.BreakdownTask(ctx, window)
		if err != nil {
			return nil, err
		}
		return &contract.ChatResult{Response: format.TaskBreakdown(data), Specialized: data}, nil

	case domain.IntentGetRecipe:
		reply, err := s.responder.RecipeHelp(ctx, window)
		if err != nil {
			return nil, err
		}
		return &contract.ChatResult{Response: reply}, nil

	case domain.IntentSuggestSchedule:
		data, err := s.responder.SuggestSchedule(ctx, window, s.now())
		if err != nil {
			return nil, err
		}
		return &contract.ChatResult{Response: format.SchedulingSuggestion(data), Specialized: data}, nil

	default:
		// GENERAL_QUERY, CREATE_TASK, UPDATE_TASK and anything new fall
		// through to the plain assistant persona.
		reply, err := s.responder.GeneralReply(ctx, window)
		if err != nil {
			return nil, err
		}
		return &contract.ChatResult{Response: reply}, nil
	}
}

// scheduleEvent creates a calendar event from the classified entities.
// Dates come from resolving the raw user text, never from the
// classifier's own date guesses; its extracted duration is only a hint.
func (s *assistantService) scheduleEvent(ctx context.Context, sessionKey, text string, ent domain.IntentEntities) (*contract.ChatResult, error) {
	if strings.TrimSpace(ent.Title) == "" {
		return &contract.ChatResult{Response: format.MissingTitle()}, nil
	}

	durationMin, _ := ent.DurationMinutes()
	resolved, ok := s.dates.Resolve(text, durationMin, s.now())
	if !ok {
		return &contract.ChatResult{Response: format.UnresolvableDate()}, nil
	}

	event, err := s.events.Create(ctx, sessionKey, contract.EventInput{
		Title:         ent.Title,
		Description:   ent.Description,
		StartDateTime: resolved.StartDateTime,
		EndDateTime:   resolved.EndDateTime,
		Location:      ent.Location,
		Category:      domain.CoalesceStr(ent.Category, chatCategoryFallback),
		Recurrence:    domain.CoalesceStr(ent.Recurrence, string(domain.RecurNone)),
	})
	if err != nil {
		return nil, err
	}

	return &contract.ChatResult{Response: format.EventCreated(event), Specialized: event}, nil
}

func (s *assistantService) updateEvent(ctx context.Context, sessionKey string, ent domain.IntentEntities) (*contract.ChatResult, error) {
	matches, res, err := s.findTarget(ctx, sessionKey, ent.Title, "update")
	if res != nil || err != nil {
		return res, err
	}

	target := matches[0]
	patch := domain.EventPatch{}
	if ent.StartDateTime != "" {
		v := domain.NormalizeWallClock(ent.StartDateTime)
		patch.StartDateTime = &v
	}
	if ent.EndDateTime != "" {
		v := domain.NormalizeWallClock(ent.EndDateTime)
		patch.EndDateTime = &v
	}
	if ent.Location != "" {
		patch.Location = &ent.Location
	}
	if ent.Description != "" {
		patch.Description = &ent.Description
	}

	updated, err := s.events.Update(ctx, sessionKey, target.ID, patch)
	if err != nil {
		return nil, err
	}
	return &contract.ChatResult{Response: format.EventUpdated(updated), Specialized: updated}, nil
}

func (s *assistantService) deleteEvent(ctx context.Context, sessionKey string, ent domain.IntentEntities) (*contract.ChatResult, error) {
	matches, res, err := s.findTarget(ctx, sessionKey, ent.Title, "delete")
	if res != nil || err != nil {
		return res, err
	}

	target := matches[0]
	if err := s.events.Delete(ctx, sessionKey, target.ID); err != nil {
		return nil, err
	}
	return &contract.ChatResult{
		Response:    format.EventDeleted(),
		Specialized: contract.DeletedEvent{DeletedEventID: target.ID},
	}, nil
}

// findTarget applies the shared search/disambiguation policy for update
// and delete. Exactly one match returns (matches, nil, nil); the other
// outcomes are routed informational results that mutate nothing.
func (s *assistantService) findTarget(ctx context.Context, sessionKey, title, verb string) ([]*domain.Event, *contract.ChatResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &contract.ChatResult{Response: format.NoEventMatches(title)}, nil
	}

	matches, err := s.search.SearchByTitle(ctx, sessionKey, title)
	if err != nil {
		return nil, nil, err
	}

	switch len(matches) {
	case 0:
		return nil, &contract.ChatResult{Response: format.NoEventMatches(title)}, nil
	case 1:
		return matches, nil, nil
	default:
		// Ambiguity is reported, never auto-resolved.
		return nil, &contract.ChatResult{Response: format.Disambiguation(matches, title, verb)}, nil
	}
}

func (s *assistantService) viewCalendar(ctx context.Context, sessionKey string) (*contract.ChatResult, error) {
	now := s.now()
	events, err := s.search.ListByDateRange(ctx, sessionKey,
		domain.FormatWallClock(now),
		domain.FormatWallClock(now.AddDate(0, 0, calendarViewDays)),
	)
	if err != nil {
		return nil, err
	}

	return &contract.ChatResult{
		Response:    format.CalendarView(events, "Upcoming Events (Next 30 Days)"),
		Specialized: contract.EventList{Events: events},
	}, nil
}
