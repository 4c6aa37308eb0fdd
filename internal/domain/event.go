package domain

import "time"

// Event is a single calendar entry owned by one session's store.
// StartDateTime and EndDateTime are local wall-clock timestamps in the
// WallClockLayout format; they are never timezone-normalized so that
// "2pm tomorrow" renders as 14:00 regardless of server timezone.
type Event struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartDateTime   string     `json:"startDateTime"`
	EndDateTime     string     `json:"endDateTime"`
	Location        string     `json:"location"`
	Category        string     `json:"category"`
	ReminderMinutes int        `json:"reminderMinutes"`
	Recurrence      Recurrence `json:"recurrence"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// EventPatch carries a partial update. Nil fields are left untouched.
type EventPatch struct {
	Title         *string `json:"title,omitempty"`
	Description   *string `json:"description,omitempty"`
	StartDateTime *string `json:"startDateTime,omitempty"`
	EndDateTime   *string `json:"endDateTime,omitempty"`
	Location      *string `json:"location,omitempty"`
	Category      *string `json:"category,omitempty"`
	ReminderMin   *int    `json:"reminderMinutes,omitempty"`
	Recurrence    *string `json:"recurrence,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil &&
		p.StartDateTime == nil && p.EndDateTime == nil &&
		p.Location == nil && p.Category == nil &&
		p.ReminderMin == nil && p.Recurrence == nil
}

// Apply merges the patch onto e, preserving ID and CreatedAt.
func (p EventPatch) Apply(e *Event) {
	e.Title = CoalesceStr(StrFromPtr(p.Title), e.Title)
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDateTime != nil {
		e.StartDateTime = *p.StartDateTime
	}
	if p.EndDateTime != nil {
		e.EndDateTime = *p.EndDateTime
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.ReminderMin != nil {
		e.ReminderMinutes = *p.ReminderMin
	}
	if p.Recurrence != nil {
		e.Recurrence = Recurrence(*p.Recurrence)
	}
}
