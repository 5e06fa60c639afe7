package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAsistenciaRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	repo := repository.NewAsistenciaRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)
	hdl := handler.NewAsistenciaHandler(repo, catalogoRepo)

	asistencias := api.Group("/asistencias", auth)
	asistencias.Get("/", hdl.GetAll)
	asistencias.Post("/", hdl.Create)
	asistencias.Get("/empleado/:id", hdl.GetHistory)  // Historial por empleado
	asistencias.Get("/empresa/:id", hdl.GetByEmpresa) // Consolidado por empresa
	asistencias.Get("/:id", hdl.GetByID)
	asistencias.Put("/:id", hdl.Update)
	asistencias.Delete("/:id", hdl.Delete)
}
