package response_models

import "giramondo/internal/models/plan_models"

// TripResponse is the full payload of one generation request: the scheduled
// itineraries plus the enrichment sections. Enrichment fields are nil when
// their call failed; the header image falls back to a default URL rather
// than erroring.
type TripResponse struct {
	Itineraries      plan_models.TripItinerary     `json:"itineraries"`
	LocalExperiences []plan_models.LocalExperience `json:"local_experiences,omitempty"`
	PackingList      plan_models.PackingList       `json:"packing_list,omitempty"`
	HeaderImage      string                        `json:"header_image"`
}

type AlternativesResponse struct {
	Candidates []plan_models.Activity `json:"candidates"`
}

type LifecycleResponse struct {
	Trip  plan_models.TripItinerary `json:"trip"`
	Found bool                      `json:"found"`
}
