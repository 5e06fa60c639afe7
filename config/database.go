package config

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN arma la cadena de conexión según el motor configurado.
func (d Database) DSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
			d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
		)
	}
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=UTC
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

func (d Database) dialector() gorm.Dialector {
	if d.Driver == "postgres" {
		return postgres.Open(d.DSN())
	}
	return mysql.Open(d.DSN())
}

// ConnectDB abre el pool único de la aplicación. El *gorm.DB devuelto se
// inyecta en cada repositorio; no existe una variable global.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(cfg.DB.dialector(), &gorm.Config{
		// Los duplicados llegan como gorm.ErrDuplicatedKey
		TranslateError: true,
		Logger:         logger.Default.LogMode(GormLogLevel(cfg.LogLevel)),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DB.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.DB.Driver, err)
	}

	return db, nil
}

func GormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug", "trace":
		return logger.Info
	case "info", "warn":
		return logger.Warn
	case "error":
		return logger.Error
	default:
		return logger.Silent
	}
}
