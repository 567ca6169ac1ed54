package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giramondo/internal/models/request_models"
	"giramondo/internal/services"
	"giramondo/pkg/utils"
)

type RoutingController struct {
	routingService services.RoutingServiceInterface
}

func NewRoutingController(routingService services.RoutingServiceInterface) *RoutingController {
	return &RoutingController{
		routingService: routingService,
	}
}

// POST /api/routes/day
func (rc *RoutingController) DayRouteHandler(c *gin.Context) {
	var req request_models.DayRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	route, err := rc.routingService.BuildDayRoute(c.Request.Context(), req.Day)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Day route built")
}
