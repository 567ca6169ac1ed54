package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giramondo/internal/models/response_models"
	"giramondo/internal/services"
	"giramondo/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// GET /api/booking/hotels?destination=Rome,%20Italy&check_in=2026-09-10&days=3&adults=2
func (bc *BookingController) HotelSearchHandler(c *gin.Context) {
	destination := c.Query("destination")
	checkIn := c.Query("check_in")

	days, err := strconv.Atoi(c.DefaultQuery("days", "0"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "days must be a number")
		return
	}
	adults, err := strconv.Atoi(c.DefaultQuery("adults", "2"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "adults must be a number")
		return
	}

	link, err := bc.bookingService.HotelSearchURL(destination, checkIn, days, adults)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BookingLinkResponse{URL: link}, "Hotel search link built")
}

// GET /api/booking/activities?destination=Rome,%20Italy&activity=Colosseum
func (bc *BookingController) ActivitySearchHandler(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	link := bc.bookingService.ActivitySearchURL(destination, c.Query("activity"))
	utils.RespondSuccess(c, response_models.BookingLinkResponse{URL: link}, "Activity search link built")
}
