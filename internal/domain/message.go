package domain

// Message is one role-tagged entry in a session's conversation history.
// Messages are immutable once appended.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// MaxHistoryMessages caps the retained conversation history per session.
// The trim policy evicts the oldest messages first.
const MaxHistoryMessages = 20

// IntentResult is the structured output of intent classification.
// Entity fields are optional; absence means "not provided", never an error.
type IntentResult struct {
	Type       IntentType     `json:"type"`
	Confidence float64        `json:"confidence"`
	Entities   IntentEntities `json:"entities"`
}

// IntentEntities is the entity bag extracted alongside an intent. The
// classifier's extracted dates are treated as unreliable; only the duration
// is used as a hint (the raw user text goes to the date resolver instead).
type IntentEntities struct {
	Title         string   `json:"title,omitempty"`
	Description   string   `json:"description,omitempty"`
	StartDateTime string   `json:"startDateTime,omitempty"`
	EndDateTime   string   `json:"endDateTime,omitempty"`
	DurationMin   *float64 `json:"duration,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	Category      string   `json:"category,omitempty"`
	Location      string   `json:"location,omitempty"`
	Recurrence    string   `json:"recurrence,omitempty"`
}

// DurationMinutes returns the extracted duration as whole minutes,
// or (0, false) when none was provided.
func (e IntentEntities) DurationMinutes() (int, bool) {
	if e.DurationMin == nil || *e.DurationMin <= 0 {
		return 0, false
	}
	return int(*e.DurationMin), true
}
