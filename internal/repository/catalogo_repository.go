package repository

import (
	"context"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityCatalogo = "catalogo"

// CatalogoRepository es de solo lectura; el contenido lo carga el seeder.
type CatalogoRepository interface {
	GetEmpresas(ctx context.Context) ([]model.CatalogoItem, error)
	GetEstadosCiviles(ctx context.Context) ([]model.EstadoCivil, error)
	GetComunas(ctx context.Context) ([]model.Comuna, error)
	GetTiposAsistencia(ctx context.Context) ([]model.TipoAsistencia, error)
	GetTipoByCodigo(ctx context.Context, codigo string) (*model.TipoAsistencia, error)
}

type catalogoRepository struct {
	db *gorm.DB
}

func NewCatalogoRepository(db *gorm.DB) CatalogoRepository {
	return &catalogoRepository{db}
}

func (r *catalogoRepository) GetEmpresas(ctx context.Context) ([]model.CatalogoItem, error) {
	items := make([]model.CatalogoItem, 0)
	err := r.db.WithContext(ctx).Model(&model.Empresa{}).
		Select("id, nombre").Order("nombre").Scan(&items).Error
	return items, classify(entityCatalogo, err)
}

func (r *catalogoRepository) GetEstadosCiviles(ctx context.Context) ([]model.EstadoCivil, error) {
	estados := make([]model.EstadoCivil, 0)
	err := r.db.WithContext(ctx).Order("nombre").Find(&estados).Error
	return estados, classify(entityCatalogo, err)
}

func (r *catalogoRepository) GetComunas(ctx context.Context) ([]model.Comuna, error) {
	comunas := make([]model.Comuna, 0)
	err := r.db.WithContext(ctx).Order("nombre").Find(&comunas).Error
	return comunas, classify(entityCatalogo, err)
}

func (r *catalogoRepository) GetTiposAsistencia(ctx context.Context) ([]model.TipoAsistencia, error) {
	tipos := make([]model.TipoAsistencia, 0)
	err := r.db.WithContext(ctx).Order("nombre").Find(&tipos).Error
	return tipos, classify(entityCatalogo, err)
}

func (r *catalogoRepository) GetTipoByCodigo(ctx context.Context, codigo string) (*model.TipoAsistencia, error) {
	var tipo model.TipoAsistencia
	err := r.db.WithContext(ctx).Where("codigo = ?", codigo).First(&tipo).Error
	if err != nil {
		return nil, classify(entityCatalogo, err)
	}
	return &tipo, nil
}
