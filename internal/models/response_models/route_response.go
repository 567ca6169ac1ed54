package response_models

import "giramondo/internal/models/plan_models"

// RouteStop is one marker on the walking-route map: an active activity
// with both coordinates present.
type RouteStop struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DayRouteResponse feeds the map renderer. Stops is nil when fewer than two
// activities qualify. Legs, when the matrix service is configured, holds one
// entry per consecutive stop pair.
type DayRouteResponse struct {
	Stops []RouteStop             `json:"stops"`
	Legs  []plan_models.TravelLeg `json:"legs,omitempty"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type BookingLinkResponse struct {
	URL string `json:"url"`
}
