package routing_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"giramondo/internal/api/controllers"
	"giramondo/internal/services"
)

var Module = fx.Provide(
	ProvideWalkingMatrixService,
	ProvideRoutingService,
	ProvideRoutingController,
)

// ProvideWalkingMatrixService returns nil when no Mapbox token is set;
// routes then come back without walking-leg annotations.
func ProvideWalkingMatrixService() services.WalkingMatrixService {
	token := os.Getenv("MAPBOX_ACCESS_TOKEN")
	if token == "" {
		log.Println("MAPBOX_ACCESS_TOKEN not set, day routes will have no walking legs")
		return nil
	}
	return services.NewMapboxMatrixClient(token, services.NewInMemoryPairCache())
}

func ProvideRoutingService(matrix services.WalkingMatrixService) services.RoutingServiceInterface {
	return services.NewRoutingService(matrix)
}

func ProvideRoutingController(routingService services.RoutingServiceInterface) *controllers.RoutingController {
	return controllers.NewRoutingController(routingService)
}
