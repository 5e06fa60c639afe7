package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReporteRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	hdl := handler.NewReporteHandler(repository.NewReporteRepository(db))

	reportes := api.Group("/reportes", auth)
	reportes.Post("/", hdl.Generate)
	reportes.Get("/empleados-estado-civil", hdl.EmpleadosPorEstadoCivil)
	reportes.Get("/empleados-comuna", hdl.EmpleadosPorComuna)
}
