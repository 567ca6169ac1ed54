package request_models

import "giramondo/internal/models/plan_models"

// Lifecycle edits carry the whole trip in the request body: the system
// holds no itinerary state server-side, so the client sends its copy and
// receives the updated one back.

type RemoveActivityRequest struct {
	Trip       plan_models.TripItinerary `json:"trip" binding:"required"`
	ActivityID string                    `json:"activity_id" binding:"required"`
}

type ReplaceActivityRequest struct {
	Trip        plan_models.TripItinerary `json:"trip" binding:"required"`
	ActivityID  string                    `json:"activity_id" binding:"required"`
	Replacement plan_models.Activity      `json:"replacement" binding:"required"`
}
