package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giramondo/internal/models/request_models"
	"giramondo/internal/models/response_models"
	"giramondo/internal/services"
	"giramondo/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// POST /api/export/pdf
//
// Returns the document itself rather than the JSON envelope so the
// frontend can hand it straight to a download.
func (ec *ExportController) ExportPDFHandler(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	pdf, err := ec.exportService.RenderPDF(req.Trip)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="itinerary.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/export/summary
func (ec *ExportController) ExportSummaryHandler(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	summary := ec.exportService.BuildSummary(req.Trip)
	utils.RespondSuccess(c, response_models.SummaryResponse{Summary: summary}, "Summary built")
}
