package scheduling

import (
	"sort"

	"github.com/google/uuid"

	"giramondo/internal/models/plan_models"
)

// MiddayPolicy selects how the cursor is clamped into the lunch window
// between the morning and afternoon buckets. Two policies have been in use;
// both are kept selectable so either behavior can be tested without code
// changes.
type MiddayPolicy int

const (
	// MiddayDualClamp snaps an early cursor forward to the lunch window's
	// lower bound and rounds a late cursor up to the next RoundStep boundary.
	MiddayDualClamp MiddayPolicy = iota
	// MiddayFloor1300 only floors the cursor at 13:00, with no rounding.
	MiddayFloor1300
)

// Config carries the scheduler's named anchors and buffers, in minutes
// since midnight.
type Config struct {
	MorningStart  int
	LunchEarliest int
	LunchLatest   int
	LunchFloor    int
	EveningStart  int
	TravelBuffer  int
	RoundStep     int
	Midday        MiddayPolicy
}

// DefaultConfig is the reference schedule: mornings anchor at 09:00,
// lunch is clamped into 12:30-13:30 with 15-minute rounding on overrun,
// evenings restart at 19:00, and 20 minutes separate consecutive
// activities unless the AI supplied a travel estimate.
func DefaultConfig() Config {
	return Config{
		MorningStart:  9 * 60,
		LunchEarliest: 12*60 + 30,
		LunchLatest:   13*60 + 30,
		LunchFloor:    13 * 60,
		EveningStart:  19 * 60,
		TravelBuffer:  20,
		RoundStep:     15,
		Midday:        MiddayDualClamp,
	}
}

// ScheduleDay derives a concrete clock schedule for one day: it partitions
// the activities into their time-of-day buckets (preserving relative order),
// walks a cursor through morning and afternoon with buffer accumulation and
// the midday clamp in between, restarts the cursor for the evening, then
// stable-sorts the combined list by start time. The input day is not
// mutated; a rebuilt day is returned. Activities seen for the first time
// get an identity and active status.
func ScheduleDay(day plan_models.DayPlan, cfg Config) plan_models.DayPlan {
	if len(day.Activities) == 0 {
		return day
	}

	var morning, afternoon, evening []plan_models.Activity
	for _, a := range day.Activities {
		switch a.TimeOfDay {
		case plan_models.Morning:
			morning = append(morning, a)
		case plan_models.Evening:
			evening = append(evening, a)
		default:
			afternoon = append(afternoon, a)
		}
	}

	scheduled := make([]plan_models.Activity, 0, len(day.Activities))
	cursor := cfg.MorningStart

	cursor = scheduleBucket(&scheduled, morning, cursor, cfg)
	cursor = clampMidday(cursor, cfg)
	scheduleBucket(&scheduled, afternoon, cursor, cfg)
	scheduleBucket(&scheduled, evening, cfg.EveningStart, cfg)

	// Bucket anchors already produce a near-sorted list; the lexicographic
	// re-sort enforces the total-order invariant even if a parsed duration
	// pushed an activity out of bucket order. Fixed-width HH:MM makes string
	// comparison correct.
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].StartTime < scheduled[j].StartTime
	})

	out := day
	out.Activities = scheduled
	return out
}

// scheduleBucket assigns start times within one bucket and returns the
// advanced cursor. An empty bucket leaves the cursor untouched.
func scheduleBucket(dst *[]plan_models.Activity, bucket []plan_models.Activity, cursor int, cfg Config) int {
	for _, a := range bucket {
		a.StartTime = FormatMinutes(cursor)
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
		if a.Status == "" {
			a.Status = plan_models.StatusActive
		}
		*dst = append(*dst, a)

		cursor += ParseVisitDuration(a.EstimatedVisitDuration)
		cursor += travelGap(a, cfg)
	}
	return cursor
}

// travelGap is the inter-activity gap after a: the AI's travel estimate
// when one parses, the fixed buffer otherwise.
func travelGap(a plan_models.Activity, cfg Config) int {
	if a.TravelToNext != nil {
		if minutes, ok := parseMinutes(a.TravelToNext.Duration); ok {
			return minutes
		}
	}
	return cfg.TravelBuffer
}

// clampMidday forces the cursor into an acceptable lunch window before the
// afternoon bucket starts.
func clampMidday(cursor int, cfg Config) int {
	switch cfg.Midday {
	case MiddayFloor1300:
		if cursor < cfg.LunchFloor {
			return cfg.LunchFloor
		}
		return cursor
	default:
		if cursor < cfg.LunchEarliest {
			return cfg.LunchEarliest
		}
		if cursor > cfg.LunchLatest {
			// Morning ran long: push lunch to the next quarter-hour.
			step := cfg.RoundStep
			return ((cursor + step - 1) / step) * step
		}
		return cursor
	}
}
