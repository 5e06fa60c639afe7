package repository

import (
	"context"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityEmpleado = "empleado"

// EmpleadoFiltro: cada campo nil significa "sin restricción" sobre esa columna.
type EmpleadoFiltro struct {
	EmpresaID        *uint
	ComunaID         *uint
	EstadoCivilID    *uint
	IncluirInactivos bool
}

type EmpleadoRepository interface {
	GetAll(ctx context.Context, f EmpleadoFiltro) ([]model.EmpleadoDetalle, error)
	GetByID(ctx context.Context, id uint) (*model.EmpleadoDetalle, error)
	Create(ctx context.Context, empleado *model.Empleado) error
	Update(ctx context.Context, id uint, patch model.EmpleadoPatch) error
	SoftDelete(ctx context.Context, id uint) error
}

type empleadoRepository struct {
	db *gorm.DB
}

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository {
	return &empleadoRepository{db}
}

func (r *empleadoRepository) detalle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("empleados").
		Select(`empleados.*,
			empresas.nombre AS empresa_nombre,
			estados_civiles.nombre AS estado_civil_nombre,
			comunas.nombre AS comuna_nombre`).
		Joins("JOIN empresas ON empresas.id = empleados.empresa_id").
		Joins("LEFT JOIN estados_civiles ON estados_civiles.id = empleados.estado_civil_id").
		Joins("LEFT JOIN comunas ON comunas.id = empleados.comuna_id")
}

func (r *empleadoRepository) GetAll(ctx context.Context, f EmpleadoFiltro) ([]model.EmpleadoDetalle, error) {
	empleados := make([]model.EmpleadoDetalle, 0)
	query := r.detalle(ctx)

	if !f.IncluirInactivos {
		query = query.Where("empleados.activo = ?", true)
	}
	if f.EmpresaID != nil {
		query = query.Where("empleados.empresa_id = ?", *f.EmpresaID)
	}
	if f.ComunaID != nil {
		query = query.Where("empleados.comuna_id = ?", *f.ComunaID)
	}
	if f.EstadoCivilID != nil {
		query = query.Where("empleados.estado_civil_id = ?", *f.EstadoCivilID)
	}

	err := query.Order("empresas.nombre, empleados.nombre_completo").Scan(&empleados).Error
	return empleados, classify(entityEmpleado, err)
}

func (r *empleadoRepository) GetByID(ctx context.Context, id uint) (*model.EmpleadoDetalle, error) {
	var empleado model.EmpleadoDetalle
	res := r.detalle(ctx).Where("empleados.id = ?", id).Limit(1).Scan(&empleado)
	if res.Error != nil {
		return nil, classify(entityEmpleado, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &empleado, nil
}

func (r *empleadoRepository) Create(ctx context.Context, empleado *model.Empleado) error {
	return classify(entityEmpleado, r.db.WithContext(ctx).Create(empleado).Error)
}

func (r *empleadoRepository) Update(ctx context.Context, id uint, patch model.EmpleadoPatch) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var empleado model.Empleado
		if err := tx.First(&empleado, id).Error; err != nil {
			return err
		}

		cols := patch.Apply(&empleado)
		if len(cols) == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&empleado).Select(append(cols, "actualizado_en")).Updates(&empleado).Error
	})
	return classify(entityEmpleado, err)
}

func (r *empleadoRepository) SoftDelete(ctx context.Context, id uint) error {
	return softDelete(ctx, r.db, &model.Empleado{}, entityEmpleado, id)
}
