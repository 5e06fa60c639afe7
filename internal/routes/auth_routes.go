package routes

import (
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(api fiber.Router, authUsecase *usecase.AuthUsecase, auth fiber.Handler) {
	hdl := handler.NewAuthHandler(authUsecase)

	api.Post("/auth/login", hdl.Login)
	api.Get("/auth/me", auth, hdl.Me)
}
