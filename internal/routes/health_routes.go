package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupHealthRoutes(api fiber.Router, db *gorm.DB) {
	hdl := handler.NewHealthHandler(repository.NewHealthRepository(db))
	api.Get("/health", hdl.Check)
}
