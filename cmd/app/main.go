package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"giramondo/cmd/fx/booking_fx"
	"giramondo/cmd/fx/export_fx"
	"giramondo/cmd/fx/itinerary_fx"
	"giramondo/cmd/fx/planner_fx"
	"giramondo/cmd/fx/routing_fx"
	"giramondo/internal/api/controllers"
	"giramondo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		planner_fx.Module,
		itinerary_fx.Module,
		routing_fx.Module,
		export_fx.Module,
		booking_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	routingController *controllers.RoutingController,
	exportController *controllers.ExportController,
	bookingController *controllers.BookingController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, routingController, exportController, bookingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	routingController *controllers.RoutingController,
	exportController *controllers.ExportController,
	bookingController *controllers.BookingController) {

	api := r.Group("/api")

	itineraries := api.Group("/itineraries")
	itineraries.POST("", itineraryController.CreateItineraryHandler)
	itineraries.POST("/alternatives", itineraryController.AlternativesHandler)
	itineraries.POST("/activities/remove", itineraryController.RemoveActivityHandler)
	itineraries.POST("/activities/replace", itineraryController.ReplaceActivityHandler)

	routes := api.Group("/routes")
	routes.POST("/day", routingController.DayRouteHandler)

	export := api.Group("/export")
	export.POST("/pdf", exportController.ExportPDFHandler)
	export.POST("/summary", exportController.ExportSummaryHandler)

	booking := api.Group("/booking")
	booking.GET("/hotels", bookingController.HotelSearchHandler)
	booking.GET("/activities", bookingController.ActivitySearchHandler)
}
