package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giramondo/internal/models/plan_models"
)

func TestScheduleItineraryDaysAreIndependent(t *testing.T) {
	plan := plan_models.ItineraryPlan{
		{Day: 1, Title: "Arrival", Activities: []plan_models.Activity{
			activity("Marathon walk", plan_models.Morning, "8 hours"),
		}},
		{Day: 2, Title: "Old town", WeatherAdvice: "Carry an umbrella", Activities: []plan_models.Activity{
			activity("Cathedral", plan_models.Morning, "1 hour"),
		}},
	}

	got := ScheduleItinerary(plan, DefaultConfig())
	require.Len(t, got, 2)

	// Day 2 starts fresh at 09:00 no matter what day 1 did.
	assert.Equal(t, "09:00", got[1].Activities[0].StartTime)
	assert.Equal(t, "Old town", got[1].Title)
	assert.Equal(t, "Carry an umbrella", got[1].WeatherAdvice)
	assert.Equal(t, 2, got[1].Day)
}

func TestScheduleItineraryNil(t *testing.T) {
	assert.Nil(t, ScheduleItinerary(nil, DefaultConfig()))
}

func TestScheduleTrip(t *testing.T) {
	trip := plan_models.TripItinerary{
		{Destination: "Rome, Italy", Plan: plan_models.ItineraryPlan{
			{Day: 1, Activities: []plan_models.Activity{activity("Colosseum", plan_models.Morning, "2 hours")}},
		}},
		{Destination: "Florence, Italy", Plan: plan_models.ItineraryPlan{
			{Day: 1, Activities: []plan_models.Activity{activity("Uffizi", plan_models.Afternoon, "3 hours")}},
		}},
	}

	got := ScheduleTrip(trip, DefaultConfig())
	require.Len(t, got, 2)
	assert.Equal(t, "Rome, Italy", got[0].Destination)
	assert.Equal(t, "09:00", got[0].Plan[0].Activities[0].StartTime)
	// Afternoon-only day: cursor clamps into the lunch window first.
	assert.Equal(t, "12:30", got[1].Plan[0].Activities[0].StartTime)
}
