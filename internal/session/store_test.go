package session

import (
	"fmt"
	"testing"

	"github.com/apricot12/concierge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userMsg(content string) domain.Message {
	return domain.Message{Role: domain.RoleUser, Content: content}
}

func assistantMsg(content string) domain.Message {
	return domain.Message{Role: domain.RoleAssistant, Content: content}
}

func TestHistoryUnknownSessionIsEmpty(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.History("nope"))
}

func TestAppendTurnOrdering(t *testing.T) {
	s := NewStore()
	s.AppendTurn("s1", userMsg("hello"), assistantMsg("hi there"))
	s.AppendTurn("s1", userMsg("thanks"), assistantMsg("any time"))

	history := s.History("s1")
	require.Len(t, history, 4)
	assert.Equal(t, "hello", history[0].Content)
	assert.Equal(t, "hi there", history[1].Content)
	assert.Equal(t, "thanks", history[2].Content)
	assert.Equal(t, "any time", history[3].Content)
}

func TestAppendTurnTrimsOldest(t *testing.T) {
	s := NewStore()
	for i := 1; i <= 15; i++ {
		s.AppendTurn("s1", userMsg(fmt.Sprintf("u%d", i)), assistantMsg(fmt.Sprintf("a%d", i)))
	}

	history := s.History("s1")
	require.Len(t, history, domain.MaxHistoryMessages)
	assert.Equal(t, "u6", history[0].Content)
	assert.Equal(t, "a15", history[len(history)-1].Content)
}

func TestHistoryReturnsACopy(t *testing.T) {
	s := NewStore()
	s.AppendTurn("s1", userMsg("hello"), assistantMsg("hi"))

	history := s.History("s1")
	history[0].Content = "mutated"

	assert.Equal(t, "hello", s.History("s1")[0].Content)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.AppendTurn("s1", userMsg("hello"), assistantMsg("hi"))
	s.AppendTurn("s2", userMsg("hey"), assistantMsg("yo"))

	s.Clear("s1")

	assert.Empty(t, s.History("s1"))
	assert.Len(t, s.History("s2"), 2)
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewStore()
	s.AppendTurn("s1", userMsg("hello"), assistantMsg("hi"))

	assert.Empty(t, s.History("s2"))
}

func TestWindow(t *testing.T) {
	history := []domain.Message{userMsg("a"), userMsg("b"), userMsg("c")}

	assert.Empty(t, Window(history, 0))
	assert.Empty(t, Window(history, -1))
	assert.Equal(t, history, Window(history, 3))
	assert.Equal(t, history, Window(history, 10))

	got := Window(history, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Content)
	assert.Equal(t, "c", got[1].Content)
}
