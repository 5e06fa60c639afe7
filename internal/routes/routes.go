package routes

import (
	"asistencia-backend/config"
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/metrics"
	"asistencia-backend/internal/middleware"
	"asistencia-backend/internal/repository"
	"asistencia-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"gorm.io/gorm"
)

// Setup monta toda la API bajo cfg.APIPrefix. /metrics queda fuera del prefijo.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	app.Get("/metrics", metrics.Handler())

	var global []fiber.Handler
	if cfg.RequestTimeout > 0 {
		global = append(global, timeout.NewWithContext(func(c *fiber.Ctx) error {
			return c.Next()
		}, cfg.RequestTimeout))
	}
	api := app.Group(cfg.APIPrefix, global...)

	authUsecase := usecase.NewAuthUsecase(repository.NewUsuarioRepository(db), cfg.JWTSecret, cfg.JWTExpiresIn)
	auth := middleware.Auth(authUsecase)

	SetupHealthRoutes(api, db)
	SetupAuthRoutes(api, authUsecase, auth)
	SetupCatalogoRoutes(api, db, auth)
	SetupEmpresaRoutes(api, db, auth)
	SetupEmpleadoRoutes(api, db, auth)
	SetupAsistenciaRoutes(api, db, auth)
	SetupReporteRoutes(api, db, auth)

	app.Use(handler.NotFound)
}
