package request_models

import "giramondo/internal/models/plan_models"

type ExportRequest struct {
	Trip plan_models.TripItinerary `json:"trip" binding:"required"`
}

type DayRouteRequest struct {
	Day plan_models.DayPlan `json:"day" binding:"required"`
}
