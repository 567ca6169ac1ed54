package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giramondo/internal/models/plan_models"
)

func exportTrip() plan_models.TripItinerary {
	return plan_models.TripItinerary{
		{
			Destination: "Rome, Italy",
			Plan: plan_models.ItineraryPlan{
				{
					Day:   1,
					Title: "Ancient Rome",
					Activities: []plan_models.Activity{
						{ID: "a1", Status: plan_models.StatusActive, TimeOfDay: plan_models.Morning, Name: "Colosseum", Description: "Ancient amphitheatre", StartTime: "09:00"},
						{ID: "a2", Status: plan_models.StatusRemoved, TimeOfDay: plan_models.Afternoon, Name: "Forum", Description: "Ruins", StartTime: "11:20"},
						{ID: "a3", Status: plan_models.StatusActive, TimeOfDay: plan_models.Evening, Name: "Trastevere dinner", Description: "Roman classics", StartTime: "19:00"},
					},
				},
			},
		},
		{
			Destination: "Florence, Italy",
			Plan: plan_models.ItineraryPlan{
				{
					Day:   1,
					Title: "Renaissance core",
					Activities: []plan_models.Activity{
						{ID: "b1", Status: plan_models.StatusActive, TimeOfDay: plan_models.Morning, Name: "Uffizi", Description: "Gallery", StartTime: "09:00"},
					},
				},
			},
		},
	}
}

func TestBuildSummaryFormat(t *testing.T) {
	svc := NewExportService()
	summary := svc.BuildSummary(exportTrip())

	assert.True(t, strings.HasPrefix(summary, "Here is my travel itinerary for Rome, Italy, Florence, Italy:\n\n"))
	assert.Contains(t, summary, "--- Rome, Italy ---\n")
	assert.Contains(t, summary, "Day 1: Ancient Rome\n")
	assert.Contains(t, summary, "- 09:00: Colosseum - Ancient amphitheatre")
	assert.Contains(t, summary, "- 19:00: Trastevere dinner - Roman classics")
	assert.NotContains(t, summary, "Forum")
	// Destination blocks separated by a blank double gap.
	assert.Contains(t, summary, "\n\n\n--- Florence, Italy ---")
}

func TestBuildSummaryFallsBackToTimeOfDay(t *testing.T) {
	trip := plan_models.TripItinerary{
		{
			Destination: "Rome",
			Plan: plan_models.ItineraryPlan{
				{
					Day:   1,
					Title: "Day one",
					Activities: []plan_models.Activity{
						{ID: "x", Status: plan_models.StatusActive, TimeOfDay: plan_models.Afternoon, Name: "Pantheon", Description: "Dome"},
					},
				},
			},
		},
	}

	summary := NewExportService().BuildSummary(trip)
	assert.Contains(t, summary, "- afternoon: Pantheon - Dome")
}

func TestRenderPDFProducesDocument(t *testing.T) {
	svc := NewExportService()
	out, err := svc.RenderPDF(exportTrip())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out[:5]), "%PDF-"))
}

func TestRenderPDFEmptyTrip(t *testing.T) {
	out, err := NewExportService().RenderPDF(plan_models.TripItinerary{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
