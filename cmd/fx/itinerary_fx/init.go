package itinerary_fx

import (
	"go.uber.org/fx"

	"giramondo/internal/api/controllers"
	"giramondo/internal/services"
	"giramondo/pkg/utils"
)

var Module = fx.Provide(
	ProvideItineraryService,
	ProvideItineraryController,
)

func ProvideItineraryService(planner utils.PlannerClientInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(planner)
}

func ProvideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
