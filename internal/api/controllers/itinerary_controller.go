package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giramondo/internal/models/request_models"
	"giramondo/internal/models/response_models"
	"giramondo/internal/services"
	"giramondo/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// POST /api/itineraries
func (ic *ItineraryController) CreateItineraryHandler(c *gin.Context) {
	var req request_models.CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := ic.itineraryService.GenerateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Itinerary generated successfully")
}

// POST /api/itineraries/alternatives
func (ic *ItineraryController) AlternativesHandler(c *gin.Context) {
	var req request_models.AlternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	candidates, err := ic.itineraryService.GenerateAlternatives(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.AlternativesResponse{Candidates: candidates}, "Alternatives generated")
}

// POST /api/itineraries/activities/remove
func (ic *ItineraryController) RemoveActivityHandler(c *gin.Context) {
	var req request_models.RemoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip and activity_id are required")
		return
	}

	trip, found := ic.itineraryService.RemoveActivity(req.Trip, req.ActivityID)
	utils.RespondSuccess(c, response_models.LifecycleResponse{Trip: trip, Found: found}, "Activity removed")
}

// POST /api/itineraries/activities/replace
func (ic *ItineraryController) ReplaceActivityHandler(c *gin.Context) {
	var req request_models.ReplaceActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ActivityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "trip, activity_id and replacement are required")
		return
	}
	if req.Replacement.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "replacement activity must have a name")
		return
	}

	trip, found := ic.itineraryService.ReplaceActivity(req.Trip, req.ActivityID, req.Replacement)
	utils.RespondSuccess(c, response_models.LifecycleResponse{Trip: trip, Found: found}, "Activity replaced")
}
