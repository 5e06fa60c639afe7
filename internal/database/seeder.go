package database

import (
	"fmt"

	"asistencia-backend/internal/model"
	"asistencia-backend/internal/usecase"

	"gorm.io/gorm"
)

var (
	seedComunas = []string{
		"Santiago", "Providencia", "Las Condes", "Ñuñoa", "Maipú",
		"La Florida", "Puente Alto", "Valparaíso", "Viña del Mar", "Concepción",
	}
	seedEstadosCiviles = []string{
		"Soltero(a)", "Casado(a)", "Divorciado(a)", "Viudo(a)", "Conviviente civil",
	}
	seedTiposAsistencia = []model.TipoAsistencia{
		{Codigo: model.CodigoPresente, Nombre: "Presente"},
		{Codigo: model.CodigoAusente, Nombre: "Ausente"},
		{Codigo: "ATRASO", Nombre: "Atraso"},
		{Codigo: "LICENCIA", Nombre: "Licencia médica"},
		{Codigo: "VACACIONES", Nombre: "Vacaciones"},
	}
	seedRoles = []string{model.RolAdministrador, model.RolOperador}
)

// SeedCatalogos carga las tablas de referencia. Es idempotente.
func SeedCatalogos(db *gorm.DB) error {
	// 1. Comunas
	for _, nombre := range seedComunas {
		c := model.Comuna{Nombre: nombre}
		if err := db.FirstOrCreate(&c, model.Comuna{Nombre: nombre}).Error; err != nil {
			return fmt.Errorf("seed comuna %q: %w", nombre, err)
		}
	}

	// 2. Estados civiles
	for _, nombre := range seedEstadosCiviles {
		ec := model.EstadoCivil{Nombre: nombre}
		if err := db.FirstOrCreate(&ec, model.EstadoCivil{Nombre: nombre}).Error; err != nil {
			return fmt.Errorf("seed estado civil %q: %w", nombre, err)
		}
	}

	// 3. Tipos de asistencia, identificados por código
	for _, t := range seedTiposAsistencia {
		tipo := t
		if err := db.FirstOrCreate(&tipo, model.TipoAsistencia{Codigo: t.Codigo}).Error; err != nil {
			return fmt.Errorf("seed tipo asistencia %q: %w", t.Codigo, err)
		}
	}

	// 4. Roles
	for _, nombre := range seedRoles {
		rol := model.Rol{Nombre: nombre}
		if err := db.FirstOrCreate(&rol, model.Rol{Nombre: nombre}).Error; err != nil {
			return fmt.Errorf("seed rol %q: %w", nombre, err)
		}
	}

	return nil
}

// SeedAdmin crea (o resincroniza la contraseña de) la primera cuenta administradora.
func SeedAdmin(db *gorm.DB, email, password string) (*model.Usuario, error) {
	hashedPassword, err := usecase.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	var adminRol model.Rol
	if err := db.Where("nombre = ?", model.RolAdministrador).First(&adminRol).Error; err != nil {
		return nil, fmt.Errorf("find rol %s: %w", model.RolAdministrador, err)
	}

	admin := model.Usuario{
		NombreCompleto: "Administrador General",
		Email:          email,
		PasswordHash:   hashedPassword,
		RolID:          &adminRol.ID,
		Activo:         true,
	}
	if err := db.FirstOrCreate(&admin, model.Usuario{Email: email}).Error; err != nil {
		return nil, fmt.Errorf("seed admin %s: %w", email, err)
	}

	// La contraseña queda siempre sincronizada con la configurada aunque la cuenta ya existiera
	if err := db.Model(&admin).Update("password_hash", hashedPassword).Error; err != nil {
		return nil, fmt.Errorf("sync admin password: %w", err)
	}
	admin.PasswordHash = hashedPassword

	return &admin, nil
}

// SeedAll ejecuta catálogos y cuenta administradora.
func SeedAll(db *gorm.DB, adminEmail, adminPassword string) error {
	if err := SeedCatalogos(db); err != nil {
		return err
	}
	if _, err := SeedAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	return nil
}
