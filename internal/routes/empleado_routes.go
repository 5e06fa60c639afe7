package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmpleadoRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	hdl := handler.NewEmpleadoHandler(repository.NewEmpleadoRepository(db))

	empleados := api.Group("/empleados", auth)
	empleados.Get("/", hdl.GetAll)
	empleados.Get("/:id", hdl.GetByID)
	empleados.Post("/", hdl.Create)
	empleados.Put("/:id", hdl.Update)
	empleados.Delete("/:id", hdl.Delete)
}
