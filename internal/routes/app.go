package routes

import (
	"strings"

	"asistencia-backend/config"
	"asistencia-backend/internal/handler"
	"asistencia-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// NewApp arma la aplicación completa: middleware global y todas las rutas.
func NewApp(db *gorm.DB, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "asistencia-backend",
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware Global
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSAllowedOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if cfg.AppEnv != "test" {
		app.Use(logger.New(logger.Config{
			Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
		}))
	}
	app.Use(metrics.Middleware())

	Setup(app, db, cfg)
	return app
}
