package request_models

import "giramondo/internal/models/plan_models"

type DestinationRequest struct {
	Name string `json:"name" binding:"required"`
	Days int    `json:"days" binding:"required,min=1,max=14"`
}

type CreateItineraryRequest struct {
	Destinations []DestinationRequest `json:"destinations" binding:"required,min=1,dive"`
	StartDate    string               `json:"start_date"`
	Intensity    string               `json:"intensity"` // relaxed | balanced | intense
	Budget       string               `json:"budget"`    // budget | mid | luxury
	Interests    []string             `json:"interests"`
}

// AlternativesRequest asks the AI for replacement candidates for one
// activity the user wants to swap out.
type AlternativesRequest struct {
	Destination string               `json:"destination" binding:"required"`
	Activity    plan_models.Activity `json:"activity" binding:"required"`
	Interests   []string             `json:"interests"`
	Budget      string               `json:"budget"`
}
