package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giramondo/internal/models/plan_models"
)

func scheduledTrip(t *testing.T) plan_models.TripItinerary {
	t.Helper()
	trip := plan_models.TripItinerary{
		{Destination: "Rome, Italy", Plan: plan_models.ItineraryPlan{
			{Day: 1, Title: "Ancient Rome", Activities: []plan_models.Activity{
				activity("Colosseum", plan_models.Morning, "2 hours"),
				activity("Forum", plan_models.Morning, "1 hour"),
				activity("Trastevere dinner", plan_models.Evening, "2 hours"),
			}},
		}},
		{Destination: "Naples, Italy", Plan: plan_models.ItineraryPlan{
			{Day: 1, Title: "Seafront", Activities: []plan_models.Activity{
				activity("Castel dell'Ovo", plan_models.Afternoon, "1 hour"),
			}},
		}},
	}
	return ScheduleTrip(trip, DefaultConfig())
}

func TestRemoveActivity(t *testing.T) {
	trip := scheduledTrip(t)
	target := trip[1].Plan[0].Activities[0]

	got, found := RemoveActivity(trip, target.ID)
	require.True(t, found)

	removed := got[1].Plan[0].Activities[0]
	assert.Equal(t, plan_models.StatusRemoved, removed.Status)

	// Everything but the status survives byte for byte.
	expected := target
	expected.Status = plan_models.StatusRemoved
	assert.Equal(t, expected, removed)

	// Siblings in other destinations untouched.
	assert.Equal(t, trip[0], got[0])

	// Input trip not mutated.
	assert.Equal(t, plan_models.StatusActive, trip[1].Plan[0].Activities[0].Status)
}

func TestRemoveActivityUnknownIDIsNoOp(t *testing.T) {
	trip := scheduledTrip(t)
	got, found := RemoveActivity(trip, "no-such-activity")
	assert.False(t, found)
	assert.Equal(t, trip, got)
}

func TestReplaceActivity(t *testing.T) {
	trip := scheduledTrip(t)
	day := trip[0].Plan[0]
	target := day.Activities[1]

	replacement := plan_models.Activity{
		ID:          "fresh-id",
		Status:      plan_models.StatusActive,
		TimeOfDay:   plan_models.Morning,
		Name:        "Palatine Hill",
		Description: "Imperial ruins above the Forum",
	}

	got, found := ReplaceActivity(trip, target.ID, replacement)
	require.True(t, found)

	gotDay := got[0].Plan[0]
	require.Len(t, gotDay.Activities, len(day.Activities))

	// Position preserved, no start time, no rescheduling of siblings.
	assert.Equal(t, "Palatine Hill", gotDay.Activities[1].Name)
	assert.Equal(t, "fresh-id", gotDay.Activities[1].ID)
	assert.Empty(t, gotDay.Activities[1].StartTime)
	assert.Equal(t, day.Activities[0], gotDay.Activities[0])
	assert.Equal(t, day.Activities[2], gotDay.Activities[2])
}

func TestReplaceActivityStripsSuppliedStartTime(t *testing.T) {
	trip := scheduledTrip(t)
	target := trip[0].Plan[0].Activities[0]

	replacement := plan_models.Activity{
		TimeOfDay: plan_models.Morning,
		Name:      "Pantheon",
		StartTime: "08:15",
	}

	got, found := ReplaceActivity(trip, target.ID, replacement)
	require.True(t, found)
	assert.Empty(t, got[0].Plan[0].Activities[0].StartTime)
}

func TestReplaceActivityAssignsIdentity(t *testing.T) {
	trip := scheduledTrip(t)
	target := trip[0].Plan[0].Activities[0]

	got, found := ReplaceActivity(trip, target.ID, plan_models.Activity{
		TimeOfDay: plan_models.Morning,
		Name:      "Pantheon",
	})
	require.True(t, found)

	inserted := got[0].Plan[0].Activities[0]
	assert.NotEmpty(t, inserted.ID)
	assert.NotEqual(t, target.ID, inserted.ID)
	assert.Equal(t, plan_models.StatusActive, inserted.Status)
}

func TestReplaceActivityUnknownIDIsNoOp(t *testing.T) {
	trip := scheduledTrip(t)
	got, found := ReplaceActivity(trip, "missing", plan_models.Activity{Name: "Anything"})
	assert.False(t, found)
	assert.Equal(t, trip, got)
}
