package export_fx

import (
	"go.uber.org/fx"

	"giramondo/internal/api/controllers"
	"giramondo/internal/services"
)

var Module = fx.Provide(
	ProvideExportService,
	ProvideExportController,
)

func ProvideExportService() services.ExportServiceInterface {
	return services.NewExportService()
}

func ProvideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
