// Package format renders structured chat outcomes as markdown. Every
// function is pure: same payload in, same text out, no clocks and no
// randomness, so each one is independently testable.
package format

import (
	"fmt"
	"strings"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
)

const (
	fullDateTimeLayout = "Monday, January 2, 2006 at 3:04 PM"
	shortTimeLayout    = "3:04 PM"
)

// EventCreated renders a creation confirmation.
func EventCreated(e *domain.Event) string {
	var b strings.Builder
	b.WriteString("## ✓ Event Created\n\n")
	writeEventBody(&b, e)
	return b.String()
}

// EventUpdated renders an update confirmation.
func EventUpdated(e *domain.Event) string {
	var b strings.Builder
	b.WriteString("## ✓ Event Updated\n\n")
	writeEventBody(&b, e)
	return b.String()
}

// EventDeleted renders a deletion confirmation.
func EventDeleted() string {
	return "## ✓ Event Deleted\n\nThe event has been removed from your calendar."
}

// writeEventBody renders one event with the stable section ordering
// (title, description, time, location, category, recurrence, id). It is
// shared by the creation and update confirmations so the two never drift.
func writeEventBody(b *strings.Builder, e *domain.Event) {
	fmt.Fprintf(b, "**%s**\n\n", e.Title)
	if e.Description != "" {
		fmt.Fprintf(b, "%s\n\n", e.Description)
	}
	fmt.Fprintf(b, "**When:** %s\n", renderWallClock(e.StartDateTime, fullDateTimeLayout))
	fmt.Fprintf(b, "**Until:** %s\n", renderWallClock(e.EndDateTime, shortTimeLayout))
	if e.Location != "" {
		fmt.Fprintf(b, "**Where:** %s\n", e.Location)
	}
	fmt.Fprintf(b, "**Category:** %s\n", e.Category)
	if e.Recurrence != domain.RecurNone && e.Recurrence != "" {
		fmt.Fprintf(b, "**Repeats:** %s\n", e.Recurrence)
	}
	fmt.Fprintf(b, "\nEvent ID: `%s`", e.ID)
}

// CalendarView renders an event listing under the given title. An empty
// list renders an explicit "no events" message.
func CalendarView(events []*domain.Event, title string) string {
	if title == "" {
		title = "Your Calendar"
	}
	if len(events) == 0 {
		return fmt.Sprintf("## %s\n\nNo events found.", title)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	plural := ""
	if len(events) > 1 {
		plural = "s"
	}
	fmt.Fprintf(&b, "Found %d event%s:\n\n", len(events), plural)

	for i, e := range events {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, e.Title)
		if e.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", e.Description)
		}
		fmt.Fprintf(&b, "**When:** %s\n", renderWallClock(e.StartDateTime, fullDateTimeLayout))
		fmt.Fprintf(&b, "**Duration:** %s - %s\n",
			renderWallClock(e.StartDateTime, shortTimeLayout),
			renderWallClock(e.EndDateTime, shortTimeLayout))
		if e.Location != "" {
			fmt.Fprintf(&b, "**Where:** %s\n", e.Location)
		}
		fmt.Fprintf(&b, "**Category:** %s\n", e.Category)
		if e.Recurrence != domain.RecurNone && e.Recurrence != "" {
			fmt.Fprintf(&b, "**Repeats:** %s\n", e.Recurrence)
		}
		fmt.Fprintf(&b, "*Event ID: %s*\n\n", e.ID)
	}

	return b.String()
}

// Disambiguation lists every title match with its id and start time and
// asks the user to pick one. verb is the action being disambiguated
// ("update" or "delete").
func Disambiguation(matches []*domain.Event, query, verb string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "I found %d events matching %q:\n\n", len(matches), query)
	for i, e := range matches {
		fmt.Fprintf(&b, "%d. %s (ID: %s) - %s\n",
			i+1, e.Title, e.ID, renderWallClock(e.StartDateTime, fullDateTimeLayout))
	}
	fmt.Fprintf(&b, "\nPlease specify which event you'd like to %s by providing the event ID.", verb)
	return b.String()
}

// NoEventMatches renders the zero-match informational reply.
func NoEventMatches(query string) string {
	return fmt.Sprintf("I couldn't find any events matching %q. Please check the title or event ID.", query)
}

// MissingTitle asks for the one field event creation cannot proceed without.
func MissingTitle() string {
	return "I need more information to create the event. Please provide at least a title."
}

// UnresolvableDate asks the user to restate when the event should happen.
func UnresolvableDate() string {
	return "I couldn't understand the date and time. Please specify when you'd like to schedule this event."
}

// TaskBreakdown renders a structured breakdown.
func TaskBreakdown(data *contract.TaskBreakdown) string {
	var b strings.Builder
	b.WriteString("## Task Breakdown\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", data.MainTask.Title)
	fmt.Fprintf(&b, "%s\n\n", data.MainTask.Description)
	fmt.Fprintf(&b, "**Total Time:** %d minutes\n", data.MainTask.EstimatedDuration)
	fmt.Fprintf(&b, "**Category:** %s\n\n", data.MainTask.Category)
	b.WriteString("### Subtasks:\n\n")

	for _, st := range data.Subtasks {
		fmt.Fprintf(&b, "%d. **%s** (%d min)\n", st.Order, st.Title, st.EstimatedDuration)
		fmt.Fprintf(&b, "   %s\n\n", st.Description)
	}

	return b.String()
}

// SchedulingSuggestion renders the suggested slot and its alternatives.
func SchedulingSuggestion(data *contract.ScheduleSuggestion) string {
	var b strings.Builder
	b.WriteString("## Scheduling Suggestion\n\n")
	fmt.Fprintf(&b, "**Recommended Time:** %s at %s\n\n", data.SuggestedDate, data.SuggestedTime)
	fmt.Fprintf(&b, "**Why this time?**\n%s\n\n", data.Reasoning)

	if len(data.Alternatives) > 0 {
		b.WriteString("**Alternative Options:**\n\n")
		for i, alt := range data.Alternatives {
			fmt.Fprintf(&b, "%d. %s at %s\n", i+1, alt.Date, alt.Time)
			fmt.Fprintf(&b, "   %s\n\n", alt.Reason)
		}
	}

	return b.String()
}

// renderWallClock formats a stored wall-clock timestamp for display.
// Unparseable values render verbatim rather than erroring a whole reply.
func renderWallClock(s, layout string) string {
	t, err := domain.ParseWallClock(s)
	if err != nil {
		return s
	}
	return t.Format(layout)
}
