package plan_models

// TimeOfDay is the coarse day segment the AI assigns to an activity.
// It is fixed at generation time and drives the scheduler's bucket anchors.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
)

// ActivityStatus tracks user edits; removed activities stay in the plan for
// history but are excluded from display, routing and export.
type ActivityStatus string

const (
	StatusActive  ActivityStatus = "active"
	StatusRemoved ActivityStatus = "removed"
)

type ActivityCategory string

const (
	CategoryHistoricSite ActivityCategory = "historic_site"
	CategoryMuseum       ActivityCategory = "museum"
	CategoryPark         ActivityCategory = "park"
	CategoryRestaurant   ActivityCategory = "restaurant"
	CategoryShopping     ActivityCategory = "shopping"
	CategoryViewpoint    ActivityCategory = "scenic_viewpoint"
	CategoryOther        ActivityCategory = "other"
)

// TravelLeg is the AI's estimate for the hop to the next activity in final
// sequence order. When present its duration supersedes the default buffer.
type TravelLeg struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// Activity is one bookable unit of time within a day. ID and Status are
// assigned by the scheduler the first time a day is processed, never by the AI.
type Activity struct {
	ID                     string           `json:"id,omitempty"`
	Status                 ActivityStatus   `json:"status,omitempty"`
	TimeOfDay              TimeOfDay        `json:"time_of_day"`
	Name                   string           `json:"name"`
	Description            string           `json:"description"`
	Address                string           `json:"address,omitempty"`
	Category               ActivityCategory `json:"category,omitempty"`
	EstimatedVisitDuration string           `json:"estimated_visit_duration,omitempty"`
	EstimatedCost          string           `json:"estimated_cost,omitempty"`
	TicketLink             string           `json:"ticket_link,omitempty"`
	Latitude               *float64         `json:"latitude,omitempty"`
	Longitude              *float64         `json:"longitude,omitempty"`
	TravelToNext           *TravelLeg       `json:"travel_to_next,omitempty"`
	// StartTime is computed by the scheduler, HH:MM local clock.
	StartTime string `json:"start_time,omitempty"`
}

// HasCoordinates reports whether both coordinates are present, which is the
// precondition for the activity to appear as a route stop.
func (a Activity) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

type DayPlan struct {
	Day           int        `json:"day"`
	Title         string     `json:"title"`
	WeatherAdvice string     `json:"weather_advice,omitempty"`
	Activities    []Activity `json:"activities"`
}

// ItineraryPlan is the ordered day sequence for a single destination.
type ItineraryPlan []DayPlan

// DestinationItinerary pairs a destination name with its scheduled plan.
type DestinationItinerary struct {
	Destination string        `json:"destination"`
	Plan        ItineraryPlan `json:"plan"`
}

// TripItinerary is the whole multi-destination trip, in visit order.
type TripItinerary []DestinationItinerary
