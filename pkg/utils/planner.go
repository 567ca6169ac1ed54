package utils

import (
	"context"

	"giramondo/internal/models/plan_models"
)

// PlanOptions bias the generated plan without changing its structure.
type PlanOptions struct {
	Intensity string
	Budget    string
	Interests []string
}

// PlannerClientInterface is the single seam to the generative AI service.
// All methods return the service's raw JSON payload; parsing and shape
// validation happen at the service layer so the scheduling core stays
// independent of any provider. Implementations exist for Gemini and OpenAI.
type PlannerClientInterface interface {
	// GenerateItinerary produces the raw multi-day plan for one destination:
	// a JSON array of day objects, each with a title, optional weather
	// advice and a time-of-day tagged activity list.
	GenerateItinerary(ctx context.Context, destination string, days int, opts PlanOptions) (string, error)

	// GenerateAlternatives proposes replacement candidates for a single
	// activity, in the same activity shape without identity or status.
	GenerateAlternatives(ctx context.Context, destination string, original plan_models.Activity, opts PlanOptions) (string, error)

	// GenerateLocalExperiences suggests off-the-beaten-path experiences
	// for a destination as a JSON array.
	GenerateLocalExperiences(ctx context.Context, destination string) (string, error)

	// GeneratePackingList produces a categorized packing list for the whole
	// trip as a JSON object keyed by category.
	GeneratePackingList(ctx context.Context, destinations []string, totalDays int, startDate string) (string, error)

	// GenerateDestinationImage returns raw image bytes for a destination
	// header, or an error the caller treats as a silent fallback signal.
	GenerateDestinationImage(ctx context.Context, destination string) ([]byte, error)
}
