package intelligence

import (
	"context"
	"testing"
	"time"

	"github.com/apricot12/concierge/internal/domain"
	"github.com/apricot12/concierge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownTaskParsesPayload(t *testing.T) {
	client, captured := newFakeCompletions(t, `{
		"mainTask": {"title": "Clean garage", "description": "Full cleanout", "estimatedDuration": 120, "category": "household"},
		"subtasks": [
			{"title": "Sort boxes", "description": "Keep or toss", "estimatedDuration": 60, "order": 1},
			{"title": "Sweep floor", "description": "After clearing", "estimatedDuration": 30, "order": 2}
		]
	}`)
	svc := NewResponderService(client)

	result, err := svc.BreakdownTask(context.Background(),
		[]domain.Message{{Role: domain.RoleUser, Content: "help me clean the garage"}})
	require.NoError(t, err)

	assert.Equal(t, "Clean garage", result.MainTask.Title)
	require.Len(t, result.Subtasks, 2)
	assert.Equal(t, 1, result.Subtasks[0].Order)

	require.NotNil(t, captured.ResponseFormat)
	assert.InDelta(t, 0.5, captured.Temperature, 0.001)
}

func TestBreakdownTaskRejectsEmptySubtasks(t *testing.T) {
	client, _ := newFakeCompletions(t,
		`{"mainTask": {"title": "Clean garage"}, "subtasks": []}`)
	svc := NewResponderService(client)

	_, err := svc.BreakdownTask(context.Background(),
		[]domain.Message{{Role: domain.RoleUser, Content: "help"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestRecipeHelpPassesTextThrough(t *testing.T) {
	reply := "## Pasta\n\n**Ingredients:**\n- pasta\n- sauce"
	client, captured := newFakeCompletions(t, reply)
	svc := NewResponderService(client)

	got, err := svc.RecipeHelp(context.Background(),
		[]domain.Message{{Role: domain.RoleUser, Content: "what should I cook tonight?"}})
	require.NoError(t, err)
	assert.Equal(t, reply, got)

	// Free-text workflows must not force JSON mode.
	assert.Nil(t, captured.ResponseFormat)
	assert.InDelta(t, 0.7, captured.Temperature, 0.001)
}

func TestSuggestScheduleAppendsCurrentTime(t *testing.T) {
	client, captured := newFakeCompletions(t,
		`{"suggestedDate": "2024-01-16", "suggestedTime": "09:00", "reasoning": "Mornings are free", "alternatives": []}`)
	svc := NewResponderService(client)

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	result, err := svc.SuggestSchedule(context.Background(),
		[]domain.Message{{Role: domain.RoleUser, Content: "when should I work out?"}}, now)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-16", result.SuggestedDate)
	assert.Equal(t, "09:00", result.SuggestedTime)

	last := captured.Messages[len(captured.Messages)-1]
	assert.Equal(t, "user", last.Role)
	assert.Equal(t, "Current date and time: 2024-01-15T10:00:00Z", last.Content)
}

func TestSuggestScheduleRequiresDateAndTime(t *testing.T) {
	client, _ := newFakeCompletions(t,
		`{"suggestedDate": "", "suggestedTime": "09:00", "reasoning": "x"}`)
	svc := NewResponderService(client)

	_, err := svc.SuggestSchedule(context.Background(),
		[]domain.Message{{Role: domain.RoleUser, Content: "when?"}}, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestGeneralReplyWindowsHistory(t *testing.T) {
	client, captured := newFakeCompletions(t, "Happy to help.")
	svc := NewResponderService(client)

	var history []domain.Message
	for i := 0; i < 14; i++ {
		history = append(history, domain.Message{Role: domain.RoleUser, Content: "x"})
	}

	got, err := svc.GeneralReply(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Happy to help.", got)

	// system prompt + the ten most recent messages.
	assert.Len(t, captured.Messages, 11)
}
