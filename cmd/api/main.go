package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"asistencia-backend/config"
	"asistencia-backend/internal/database"
	"asistencia-backend/internal/routes"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	log.Info("1. Iniciando aplicación... cargando .env")
	if err := godotenv.Load(); err != nil {
		log.Warn("Archivo .env no encontrado, se usan las variables de entorno del sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}
	log.SetLevel(config.FiberLogLevel(cfg.LogLevel))

	log.Infof("2. Conectando a la base de datos (%s)...", cfg.DB.Driver)
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("migración fallida: %v", err)
		}
		if err := database.SeedCatalogos(db); err != nil {
			log.Fatalf("seed de catálogos fallido: %v", err)
		}
	}
	log.Info("3. Base de datos lista, preparando rutas...")

	app := routes.NewApp(db, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("Señal recibida, cerrando servidor...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("error al cerrar el servidor: %v", err)
		}
	}()

	log.Infof("4. Servidor listo en el puerto :%s (prefijo %s)", cfg.Port, cfg.APIPrefix)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("servidor detenido: %v", err)
	}
	log.Info("Servidor detenido correctamente.")
}
