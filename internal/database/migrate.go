package database

import (
	"fmt"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

// Migrate crea o actualiza las tablas. El orden respeta las llaves foráneas.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Comuna{},
		&model.EstadoCivil{},
		&model.TipoAsistencia{},
		&model.Rol{},
		&model.Empresa{},
		&model.Empleado{},
		&model.Asistencia{},
		&model.Usuario{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
