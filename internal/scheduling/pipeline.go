package scheduling

import "giramondo/internal/models/plan_models"

// ScheduleItinerary runs the day scheduler over every day of one
// destination's plan. Days are processed in total isolation - no cursor
// state crosses a day boundary - and day-level fields pass through
// untouched. It must run exactly once per freshly generated plan: re-running
// it after user edits would renumber start times on activities whose
// identity and order the user has since changed.
func ScheduleItinerary(plan plan_models.ItineraryPlan, cfg Config) plan_models.ItineraryPlan {
	if plan == nil {
		return nil
	}
	scheduled := make(plan_models.ItineraryPlan, len(plan))
	for i, day := range plan {
		scheduled[i] = ScheduleDay(day, cfg)
	}
	return scheduled
}

// ScheduleTrip schedules every destination of a multi-destination trip
// independently.
func ScheduleTrip(trip plan_models.TripItinerary, cfg Config) plan_models.TripItinerary {
	if trip == nil {
		return nil
	}
	scheduled := make(plan_models.TripItinerary, len(trip))
	for i, dest := range trip {
		scheduled[i] = plan_models.DestinationItinerary{
			Destination: dest.Destination,
			Plan:        ScheduleItinerary(dest.Plan, cfg),
		}
	}
	return scheduled
}
