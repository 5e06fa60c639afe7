package handler

import (
	"asistencia-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type HealthHandler struct {
	repo repository.HealthRepository
}

func NewHealthHandler(repo repository.HealthRepository) *HealthHandler {
	return &HealthHandler{repo: repo}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	result, err := h.repo.Ping(c.UserContext())
	if err != nil {
		log.Errorw("health check failed", "request_id", requestID(c), "error", err)
		return fail(c, fiber.StatusServiceUnavailable, "Error al conectar con la base de datos.")
	}

	return c.JSON(fiber.Map{
		"ok":      true,
		"message": "API funcionando correctamente",
		"db":      fiber.Map{"result": result},
	})
}
