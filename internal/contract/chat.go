package contract

import "github.com/apricot12/concierge/internal/domain"

// ChatResult is the full outcome of one handled chat message: the
// formatted reply, the raw classified intent, and any specialized
// structured payload produced by the routed branch.
type ChatResult struct {
	Response    string               `json:"response"`
	Intent      *domain.IntentResult `json:"intent"`
	Specialized interface{}          `json:"specializedData"`
}

// TaskBreakdown is the structured payload produced for BREAKDOWN_TASK.
type TaskBreakdown struct {
	MainTask MainTask  `json:"mainTask"`
	Subtasks []Subtask `json:"subtasks"`
}

type MainTask struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Category          string `json:"category"`
}

type Subtask struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedDuration int    `json:"estimatedDuration"`
	Order             int    `json:"order"`
}

// ScheduleSuggestion is the structured payload produced for SUGGEST_SCHEDULE.
type ScheduleSuggestion struct {
	SuggestedDate string                `json:"suggestedDate"`
	SuggestedTime string                `json:"suggestedTime"`
	Reasoning     string                `json:"reasoning"`
	Alternatives  []ScheduleAlternative `json:"alternatives"`
}

type ScheduleAlternative struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// DeletedEvent is the specialized payload for a confirmed DELETE_EVENT.
type DeletedEvent struct {
	DeletedEventID string `json:"deletedEventId"`
}

// EventList is the specialized payload for VIEW_CALENDAR.
type EventList struct {
	Events []*domain.Event `json:"events"`
}
