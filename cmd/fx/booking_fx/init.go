package booking_fx

import (
	"go.uber.org/fx"

	"giramondo/internal/api/controllers"
	"giramondo/internal/services"
)

var Module = fx.Provide(
	ProvideBookingService,
	ProvideBookingController,
)

func ProvideBookingService() services.BookingServiceInterface {
	return services.NewBookingService()
}

func ProvideBookingController(bookingService services.BookingServiceInterface) *controllers.BookingController {
	return controllers.NewBookingController(bookingService)
}
