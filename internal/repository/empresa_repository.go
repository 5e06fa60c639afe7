package repository

import (
	"context"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityEmpresa = "empresa"

// EmpresaFiltro: por defecto solo empresas activas.
type EmpresaFiltro struct {
	IncluirInactivas bool
	Busqueda         string
}

type EmpresaRepository interface {
	GetAll(ctx context.Context, f EmpresaFiltro) ([]model.EmpresaDetalle, error)
	GetByID(ctx context.Context, id uint) (*model.EmpresaDetalle, error)
	Create(ctx context.Context, empresa *model.Empresa) error
	Update(ctx context.Context, id uint, patch model.EmpresaPatch) error
	SoftDelete(ctx context.Context, id uint) error
}

type empresaRepository struct {
	db *gorm.DB
}

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository {
	return &empresaRepository{db}
}

func (r *empresaRepository) detalle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("empresas").
		Select("empresas.*, comunas.nombre AS comuna_nombre").
		Joins("LEFT JOIN comunas ON comunas.id = empresas.comuna_id")
}

func (r *empresaRepository) GetAll(ctx context.Context, f EmpresaFiltro) ([]model.EmpresaDetalle, error) {
	empresas := make([]model.EmpresaDetalle, 0)
	query := r.detalle(ctx)

	if !f.IncluirInactivas {
		query = query.Where("empresas.activo = ?", true)
	}
	if f.Busqueda != "" {
		searchPattern := "%" + f.Busqueda + "%"
		query = query.Where("(empresas.nombre LIKE ? OR empresas.rut LIKE ?)", searchPattern, searchPattern)
	}

	err := query.Order("empresas.nombre").Scan(&empresas).Error
	return empresas, classify(entityEmpresa, err)
}

func (r *empresaRepository) GetByID(ctx context.Context, id uint) (*model.EmpresaDetalle, error) {
	var empresa model.EmpresaDetalle
	res := r.detalle(ctx).Where("empresas.id = ?", id).Limit(1).Scan(&empresa)
	if res.Error != nil {
		return nil, classify(entityEmpresa, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &empresa, nil
}

func (r *empresaRepository) Create(ctx context.Context, empresa *model.Empresa) error {
	return classify(entityEmpresa, r.db.WithContext(ctx).Create(empresa).Error)
}

// Update carga la empresa, aplica solo los campos presentes y escribe esas columnas.
// Un patch vacío cuenta como "sin cambios" y devuelve ErrNotFound.
func (r *empresaRepository) Update(ctx context.Context, id uint, patch model.EmpresaPatch) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var empresa model.Empresa
		if err := tx.First(&empresa, id).Error; err != nil {
			return err
		}

		cols := patch.Apply(&empresa)
		if len(cols) == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&empresa).Select(append(cols, "actualizado_en")).Updates(&empresa).Error
	})
	return classify(entityEmpresa, err)
}

func (r *empresaRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.Empresa{}, entityEmpresa, id)
}

// softDelete marca activo=false. Se verifica la existencia antes porque MySQL
// informa 0 filas afectadas cuando el registro ya estaba inactivo.
func softDelete(ctx context.Context, db *gorm.DB, m any, entity string, id uint) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(m).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(m).Where("id = ?", id).Update("activo", false).Error
	})
	return classify(entity, err)
}
