package repository

import (
	"context"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityUsuario = "usuario"

type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// FindByEmail compara el email de forma exacta. La colación por defecto de
// MySQL no distingue mayúsculas, por eso se vuelve a comparar en Go.
func (r *usuarioRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").Where("email = ?", email).First(&usuario).Error
	if err != nil {
		return nil, classify(entityUsuario, err)
	}
	if usuario.Email != email {
		return nil, ErrNotFound
	}
	return &usuario, nil
}

func (r *usuarioRepository) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").First(&usuario, id).Error
	if err != nil {
		return nil, classify(entityUsuario, err)
	}
	return &usuario, nil
}
