package services

import (
	"context"
	"fmt"
	"log"

	"giramondo/internal/models/plan_models"
	"giramondo/internal/models/response_models"
)

// RoutingService prepares the input for the walking-route renderer: the
// ordered, coordinate-bearing, active activities of a day, optionally
// annotated with walking legs from the Mapbox matrix.
type RoutingServiceInterface interface {
	BuildDayRoute(ctx context.Context, day plan_models.DayPlan) (*response_models.DayRouteResponse, error)
}

type RoutingService struct {
	matrix WalkingMatrixService // nil when no Mapbox token is configured
}

func NewRoutingService(matrix WalkingMatrixService) RoutingServiceInterface {
	return &RoutingService{matrix: matrix}
}

// BuildDayRoute guarantees only the filtered, ordered input contract: a
// route exists when at least two active activities carry both coordinates.
// Leg annotation is best-effort; a matrix failure degrades to stops only.
func (s *RoutingService) BuildDayRoute(ctx context.Context, day plan_models.DayPlan) (*response_models.DayRouteResponse, error) {
	var stops []response_models.RouteStop
	var points []MatrixPoint

	for _, a := range day.Activities {
		if a.Status != plan_models.StatusActive || !a.HasCoordinates() {
			continue
		}
		stops = append(stops, response_models.RouteStop{
			Name:      a.Name,
			Latitude:  *a.Latitude,
			Longitude: *a.Longitude,
		})
		points = append(points, MatrixPoint{ID: a.ID, Lat: *a.Latitude, Lng: *a.Longitude})
	}

	if len(stops) < 2 {
		return &response_models.DayRouteResponse{}, nil
	}

	resp := &response_models.DayRouteResponse{Stops: stops}
	if s.matrix == nil {
		return resp, nil
	}

	mat, err := s.matrix.ComputeMatrix(ctx, points)
	if err != nil {
		log.Printf("Walking matrix unavailable for day %d: %v", day.Day, err)
		return resp, nil
	}

	legs := make([]plan_models.TravelLeg, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		edge := mat[points[i].ID][points[i+1].ID]
		legs = append(legs, plan_models.TravelLeg{
			Distance: formatDistance(edge.DistanceMeters),
			Duration: formatWalkDuration(edge.DurationSeconds),
		})
	}
	resp.Legs = legs
	return resp, nil
}

func formatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

func formatWalkDuration(seconds int) string {
	minutes := (seconds + 59) / 60
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
