package scheduling

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVisitMinutes is assumed when an activity carries no usable
// duration estimate.
const DefaultVisitMinutes = 60

// The AI returns durations as loose natural-language fragments, in English
// or Italian ("1 hour", "90 minuti", "2.5 ore"). The grammar is: an optional
// decimal quantity with an hour unit, an optional integer quantity with a
// minute unit (summed when both appear), or a bare integer meaning minutes.
var (
	hourPattern   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|or[ea])`)
	minutePattern = regexp.MustCompile(`(?i)(\d+)\s*min`)
	bareDigits    = regexp.MustCompile(`^\d+$`)
)

// parseMinutes extracts a minute total from free text. The boolean is false
// when nothing in the grammar matched or the total came out zero, letting
// callers pick their own fallback.
func parseMinutes(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	total := 0
	if m := hourPattern.FindStringSubmatch(s); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += int(math.Round(hours * 60))
		}
	}
	if m := minutePattern.FindStringSubmatch(s); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			total += minutes
		}
	}

	if total == 0 && bareDigits.MatchString(s) {
		if minutes, err := strconv.Atoi(s); err == nil {
			total = minutes
		}
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}

// ParseVisitDuration converts a free-text visit duration into whole minutes.
// It never fails: absent or unparseable input yields DefaultVisitMinutes.
func ParseVisitDuration(s string) int {
	if minutes, ok := parseMinutes(s); ok {
		return minutes
	}
	return DefaultVisitMinutes
}
