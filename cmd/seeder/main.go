package main

import (
	"asistencia-backend/config"
	"asistencia-backend/internal/database"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

func main() {
	log.Info("🌱 Iniciando seed de la base de datos...")

	// Se carga .env a mano porque es un script aparte
	if err := godotenv.Load(); err != nil {
		log.Warn("Archivo .env no encontrado, se usan las variables de entorno del sistema.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuración inválida: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("no se pudo conectar a la base de datos: %v", err)
	}

	log.Info("🚀 Ejecutando migraciones y SeedAll...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migración fallida: %v", err)
	}
	if err := database.SeedAll(db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		log.Fatalf("seed fallido: %v", err)
	}

	log.Infof("✅ Seed completado. Administrador: %s", cfg.SeedAdminEmail)
}
