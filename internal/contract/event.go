package contract

// EventInput carries the caller-supplied fields for a direct event create.
// Title and StartDateTime are required; everything else is defaulted.
type EventInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	StartDateTime   string `json:"startDateTime"`
	EndDateTime     string `json:"endDateTime"`
	Location        string `json:"location"`
	Category        string `json:"category"`
	ReminderMinutes *int   `json:"reminderMinutes"`
	Recurrence      string `json:"recurrence"`
}

// DateRange bounds a calendar query. Both bounds are inclusive and
// compared against event start times.
type DateRange struct {
	Start string
	End   string
}
