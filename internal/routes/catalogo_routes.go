package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCatalogoRoutes(api fiber.Router, db *gorm.DB, auth fiber.Handler) {
	hdl := handler.NewCatalogoHandler(repository.NewCatalogoRepository(db))

	catalogos := api.Group("/catalogos", auth)
	catalogos.Get("/empresas", hdl.GetEmpresas)
	catalogos.Get("/estados-civiles", hdl.GetEstadosCiviles)
	catalogos.Get("/comunas", hdl.GetComunas)
	catalogos.Get("/tipos-asistencia", hdl.GetTiposAsistencia)
}
