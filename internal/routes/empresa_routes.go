package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/middleware"
	"asistencia-backend/internal/model"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmpresaRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	hdl := handler.NewEmpresaHandler(repository.NewEmpresaRepository(db))

	empresas := api.Group("/empresas", auth)
	empresas.Get("/", hdl.GetAll)
	empresas.Get("/:id", hdl.GetByID)

	// Solo administradores modifican el registro de empresas
	admin := middleware.Role(model.RolAdministrador)
	empresas.Post("/", admin, hdl.Create)
	empresas.Put("/:id", admin, hdl.Update)
	empresas.Delete("/:id", admin, hdl.Delete)
}
