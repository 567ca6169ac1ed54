package scheduling

import (
	"github.com/google/uuid"

	"giramondo/internal/models/plan_models"
)

// Lifecycle operations address a single activity by its identifier across
// the entire trip. Both rebuild the affected slices instead of mutating
// shared structures, and both are silent no-ops when the identifier is
// unknown: the trip comes back unchanged and found is false.

// RemoveActivity marks the matching activity removed, leaving its position,
// start time and every other field untouched. Display, routing and export
// all filter on active status, so the entry stays for history only.
func RemoveActivity(trip plan_models.TripItinerary, activityID string) (plan_models.TripItinerary, bool) {
	return rewriteActivity(trip, activityID, func(a plan_models.Activity) plan_models.Activity {
		a.Status = plan_models.StatusRemoved
		return a
	})
}

// ReplaceActivity substitutes the whole activity at the original's list
// position. The replacement keeps that position and the day is not
// rescheduled; its start time is cleared so the presentation layer falls
// back to positional ordering rather than showing a stale clock time.
// A replacement arriving without identity or status gets both assigned.
func ReplaceActivity(trip plan_models.TripItinerary, activityID string, replacement plan_models.Activity) (plan_models.TripItinerary, bool) {
	if replacement.ID == "" {
		replacement.ID = uuid.New().String()
	}
	if replacement.Status == "" {
		replacement.Status = plan_models.StatusActive
	}
	replacement.StartTime = ""

	return rewriteActivity(trip, activityID, func(plan_models.Activity) plan_models.Activity {
		return replacement
	})
}

// rewriteActivity rebuilds the trip with fn applied to the activity matching
// id. Slices on the untouched paths are shared; only the path down to the
// match is copied.
func rewriteActivity(trip plan_models.TripItinerary, id string, fn func(plan_models.Activity) plan_models.Activity) (plan_models.TripItinerary, bool) {
	for di, dest := range trip {
		for pi, day := range dest.Plan {
			for ai, activity := range day.Activities {
				if activity.ID != id {
					continue
				}

				activities := make([]plan_models.Activity, len(day.Activities))
				copy(activities, day.Activities)
				activities[ai] = fn(activity)

				plan := make(plan_models.ItineraryPlan, len(dest.Plan))
				copy(plan, dest.Plan)
				day.Activities = activities
				plan[pi] = day

				out := make(plan_models.TripItinerary, len(trip))
				copy(out, trip)
				out[di] = plan_models.DestinationItinerary{Destination: dest.Destination, Plan: plan}
				return out, true
			}
		}
	}
	return trip, false
}
