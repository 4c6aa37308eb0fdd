package intelligence

import (
	"context"
	"fmt"
	"time"

	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/llm"
	"github.com/apricot12/concierge/internal/session"
)

// intentHistoryWindow is how many trailing messages the classifier sees
// (three exchanges).
const intentHistoryWindow = 6

// IntentService classifies a conversation's latest message into a typed
// intent with an entity bag.
type IntentService interface {
	Classify(ctx context.Context, history []domain.Message, now time.Time) (*domain.IntentResult, error)
}

type intentService struct {
	client llm.Client
}

// NewIntentService creates an IntentService backed by an LLM client.
func NewIntentService(client llm.Client) IntentService {
	return &intentService{client: client}
}

func (s *intentService) Classify(ctx context.Context, history []domain.Message, now time.Time) (*domain.IntentResult, error) {
	resp, err := s.client.Complete(ctx, llm.CompletionRequest{
		Task:         llm.TaskIntent,
		SystemPrompt: buildIntentSystemPrompt(now.Format(time.RFC3339)),
		Messages:     toChatMessages(session.Window(history, intentHistoryWindow)),
		JSONResponse: true,
	})
	if err != nil {
		return nil, fmt.Errorf("intent classification failed: %w", err)
	}

	// Malformed JSON is a hard classification error; the router must
	// never see a silently defaulted GENERAL_QUERY here.
	result, err := llm.ExtractJSON[domain.IntentResult](resp.Text, validateIntentResult)
	if err != nil {
		return nil, fmt.Errorf("decoding intent: %w", err)
	}
	return &result, nil
}

// validateIntentResult is the schema validator for classifier output.
func validateIntentResult(r domain.IntentResult) error {
	if !domain.IsValidIntent(r.Type) {
		return fmt.Errorf("unknown intent type: %q", r.Type)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("confidence must be in [0,1], got %f", r.Confidence)
	}
	return nil
}

func toChatMessages(msgs []domain.Message) []llm.ChatMessage {
	out := make([]llm.ChatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = llm.ChatMessage{Role: string(m.Role), Content: m.Content}
	}
	return out
}
