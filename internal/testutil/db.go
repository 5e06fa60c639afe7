// Package testutil levanta una base SQLite en memoria migrada y sembrada con
// el mismo código que usa producción.
package testutil

import (
	"testing"

	"asistencia-backend/internal/database"
	"asistencia-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	AdminEmail    = "admin@test.cl"
	AdminPassword = "secreto123"
)

// NewDB devuelve una base aislada por test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	// SQLite no valida llaves foráneas si no se activa el pragma
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Cada conexión nueva a :memory: es una base distinta
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedAll(db, AdminEmail, AdminPassword))
	return db
}

// TipoID busca el id de un tipo de asistencia sembrado.
func TipoID(t *testing.T, db *gorm.DB, codigo string) uint {
	t.Helper()
	var tipo model.TipoAsistencia
	require.NoError(t, db.Where("codigo = ?", codigo).First(&tipo).Error)
	return tipo.ID
}

// CrearEmpresa inserta una empresa activa.
func CrearEmpresa(t *testing.T, db *gorm.DB, nombre, rut string) model.Empresa {
	t.Helper()
	e := model.Empresa{Nombre: nombre, Rut: rut, Activo: true}
	require.NoError(t, db.Create(&e).Error)
	return e
}

// CrearEmpleado inserta un empleado activo en la empresa indicada.
func CrearEmpleado(t *testing.T, db *gorm.DB, empresaID uint, nombre, rut string) model.Empleado {
	t.Helper()
	e := model.Empleado{EmpresaID: empresaID, NombreCompleto: nombre, Rut: rut, Activo: true}
	require.NoError(t, db.Create(&e).Error)
	return e
}
