package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/llm"
	"github.com/apricot12/concierge/internal/session"
)

// History windows per specialized workflow. The sizes mirror how much
// context each prompt actually needs.
const (
	breakdownHistoryWindow = 4
	recipeHistoryWindow    = 6
	scheduleHistoryWindow  = 4
	generalHistoryWindow   = 10
)

// Responder runs the specialized generation workflows the router
// delegates to. Structured workflows validate the model's JSON before
// returning; text workflows pass the model's markdown through unmodified.
type Responder interface {
	BreakdownTask(ctx context.Context, history []domain.Message) (*contract.TaskBreakdown, error)
	RecipeHelp(ctx context.Context, history []domain.Message) (string, error)
	SuggestSchedule(ctx context.Context, history []domain.Message, now time.Time) (*contract.ScheduleSuggestion, error)
	GeneralReply(ctx context.Context, history []domain.Message) (string, error)
}

type responderService struct {
	client llm.Client
}

// NewResponderService creates a Responder backed by an LLM client.
func NewResponderService(client llm.Client) Responder {
	return &responderService{client: client}
}

func (s *responderService) BreakdownTask(ctx context.Context, history []domain.Message) (*contract.TaskBreakdown, error) {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskBreakdown,
		SystemPrompt: breakdownSystemPrompt,
		Messages:     toChatMessages(session.Window(history, breakdownHistoryWindow)),
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("task breakdown failed: %w", err)
	}

	result, err := llm.ExtractJSON[contract.TaskBreakdown](resp.Text, validateBreakdown)
	if err != nil {
		return nil, fmt.Errorf("decoding task breakdown: %w", err)
	}
	return &result, nil
}

func (s *responderService) RecipeHelp(ctx context.Context, history []domain.Message) (string, error) {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskRecipe,
		SystemPrompt: recipeSystemPrompt,
		Messages:     toChatMessages(session.Window(history, recipeHistoryWindow)),
	})
	if err != nil {
		return "", fmt.Errorf("recipe help failed: %w", err)
	}
	// The model self-formats via its system prompt; pass through as-is.
	return resp.Text, nil
}

func (s *responderService) SuggestSchedule(ctx context.Context, history []domain.Message, now time.Time) (*contract.ScheduleSuggestion, error) {
	messages := toChatMessages(session.Window(history, scheduleHistoryWindow))
	messages = append(messages, llm.ChatMessage{
		Role:    "user",
		Content: "Current date and time: " + now.Format(time.RFC3339),
	})

	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		Messages:     messages,
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("schedule suggestion failed: %w", err)
	}

	result, err := llm.ExtractJSON[contract.ScheduleSuggestion](resp.Text, validateSuggestion)
	if err != nil {
		return nil, fmt.Errorf("decoding schedule suggestion: %w", err)
	}
	return &result, nil
}

func (s *responderService) GeneralReply(ctx context.Context, history []domain.Message) (string, error) {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskGeneral,
		SystemPrompt: generalSystemPrompt,
		Messages:     toChatMessages(session.Window(history, generalHistoryWindow)),
	})
	if err != nil {
		return "", fmt.Errorf("general reply failed: %w", err)
	}
	return resp.Text, nil
}

func validateBreakdown(b contract.TaskBreakdown) error {
	if b.MainTask.Title == "" {
		return fmt.Errorf("mainTask.title is required")
	}
	if len(b.Subtasks) == 0 {
		return fmt.Errorf("at least one subtask is required")
	}
	for i, st := range b.Subtasks {
		if st.Title == "" {
			return fmt.Errorf("subtask %d is missing a title", i)
		}
	}
	return nil
}

func validateSuggestion(s contract.ScheduleSuggestion) error {
	if s.SuggestedDate == "" {
		return fmt.Errorf("suggestedDate is required")
	}
	if s.SuggestedTime == "" {
		return fmt.Errorf("suggestedTime is required")
	}
	return nil
}
