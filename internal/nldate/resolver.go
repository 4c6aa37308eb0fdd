// Package nldate turns natural-language date expressions into concrete
// wall-clock start/end pairs. The actual language parsing sits behind the
// Parser interface; Resolver owns the end-time policy and serialization.
package nldate

import (
	"time"

	"github.com/apricot12/concierge/internal/domain"
)

// ParsedRange is the raw output of a natural-language parse: a start
// instant and, when the expression named one ("2pm to 4pm"), an end.
type ParsedRange struct {
	Start time.Time
	End   *time.Time
}

// Parser resolves a date expression against a reference time. Ambiguous
// bare times resolve to the next future occurrence relative to ref
// (forward-date bias). Returns nil when nothing in the text parses.
type Parser interface {
	Parse(text string, ref time.Time) *ParsedRange
}

// Resolved is a concrete start/end pair serialized as local wall-clock
// timestamps.
type Resolved struct {
	StartDateTime string
	EndDateTime   string
}

// Resolver converts user phrasing plus an optional duration hint into a
// Resolved pair.
type Resolver struct {
	parser Parser
}

// NewResolver creates a Resolver over the given parser.
func NewResolver(p Parser) *Resolver {
	return &Resolver{parser: p}
}

// Resolve parses text against ref. durationMin is an optional hint
// (0 means none). The end time is, in order of preference: the parsed
// range end, start+duration, or start+60 minutes. Returns (nil, false)
// when the text contains no recognizable date expression; callers must
// not fabricate a time in that case.
func (r *Resolver) Resolve(text string, durationMin int, ref time.Time) (*Resolved, bool) {
	pr := r.parser.Parse(text, ref)
	if pr == nil {
		return nil, false
	}

	end := pr.End
	if end == nil {
		span := domain.DefaultEventDurationMin
		if durationMin > 0 {
			span = durationMin
		}
		t := pr.Start.Add(time.Duration(span) * time.Minute)
		end = &t
	}

	return &Resolved{
		StartDateTime: domain.FormatWallClock(pr.Start),
		EndDateTime:   domain.FormatWallClock(*end),
	}, true
}
