package nldate

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// rangeSep matches the connective between the two halves of a time range
// ("2pm to 4pm", "10 until noon").
var rangeSep = regexp.MustCompile(`(?i)\s+(to|until|till|through)\s+`)

// pastMarkers suppress the forward-date adjustment for expressions that
// deliberately point backwards.
var pastMarkers = []string{"yesterday", "last ", " ago"}

// WhenParser implements Parser on top of the olebedev/when engine with
// English and common rule sets.
type WhenParser struct {
	w *when.Parser
}

// NewWhenParser constructs a ready-to-use parser.
func NewWhenParser() *WhenParser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenParser{w: w}
}

func (p *WhenParser) Parse(text string, ref time.Time) *ParsedRange {
	// Try to treat the text as a range first. A failed left-half parse
	// falls through to whole-text parsing, so stray "to"s in sentences
	// like "remind me to call mom tomorrow" are harmless.
	if loc := rangeSep.FindStringIndex(text); loc != nil {
		left := text[:loc[0]]
		right := text[loc[1]:]

		if start, ok := p.parseOne(left, ref); ok {
			start = forwardBias(start, ref, left)
			// Resolve the right half against the start so a date named
			// only once ("tomorrow 2pm to 4pm") carries over.
			if end, ok := p.parseOne(right, start); ok {
				for !end.After(start) {
					end = end.Add(24 * time.Hour)
				}
				return &ParsedRange{Start: start, End: &end}
			}
			return &ParsedRange{Start: start}
		}
	}

	start, ok := p.parseOne(text, ref)
	if !ok {
		return nil
	}
	return &ParsedRange{Start: forwardBias(start, ref, text)}
}

func (p *WhenParser) parseOne(text string, ref time.Time) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}
	r, err := p.w.Parse(trimmed, ref)
	if err != nil || r == nil {
		return time.Time{}, false
	}
	return r.Time, true
}

// forwardBias pushes a bare time-of-day that already passed today onto the
// next day, unless the text explicitly points to the past.
func forwardBias(t, ref time.Time, text string) time.Time {
	if !t.Before(ref) {
		return t
	}
	if ref.Sub(t) >= 24*time.Hour {
		return t
	}
	lower := strings.ToLower(text)
	for _, m := range pastMarkers {
		if strings.Contains(lower, m) {
			return t
		}
	}
	return t.Add(24 * time.Hour)
}
