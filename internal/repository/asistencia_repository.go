package repository

import (
	"context"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityAsistencia = "asistencia"

// AsistenciaFiltro combina todas las condiciones con AND. Desde/Hasta son
// inclusivos y cada uno puede omitirse por separado.
type AsistenciaFiltro struct {
	EmpleadoID *uint
	EmpresaID  *uint
	TipoID     *uint
	Desde      string
	Hasta      string
}

type AsistenciaRepository interface {
	Create(ctx context.Context, asistencia *model.Asistencia) error
	GetByID(ctx context.Context, id uint) (*model.AsistenciaDetalle, error)
	GetAll(ctx context.Context, f AsistenciaFiltro) ([]model.AsistenciaDetalle, error)
	GetHistory(ctx context.Context, empleadoID uint, desde, hasta string) ([]model.AsistenciaDetalle, error)
	GetByEmpresa(ctx context.Context, empresaID uint, desde, hasta string) ([]model.AsistenciaDetalle, error)
	Replace(ctx context.Context, id uint, asistencia *model.Asistencia) error
	Delete(ctx context.Context, id uint) error
}

type asistenciaRepository struct {
	db *gorm.DB
}

func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository {
	return &asistenciaRepository{db}
}

func (r *asistenciaRepository) detalle(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("asistencias").
		Select(`asistencias.*,
			empleados.nombre_completo AS empleado_nombre,
			empleados.empresa_id AS empresa_id,
			empresas.nombre AS empresa_nombre,
			tipos_asistencia.codigo AS tipo_codigo,
			tipos_asistencia.nombre AS tipo_nombre`).
		Joins("JOIN empleados ON empleados.id = asistencias.empleado_id").
		Joins("JOIN empresas ON empresas.id = empleados.empresa_id").
		Joins("JOIN tipos_asistencia ON tipos_asistencia.id = asistencias.tipo_id")
}

func (r *asistenciaRepository) Create(ctx context.Context, asistencia *model.Asistencia) error {
	return classify(entityAsistencia, r.db.WithContext(ctx).Create(asistencia).Error)
}

func (r *asistenciaRepository) GetByID(ctx context.Context, id uint) (*model.AsistenciaDetalle, error) {
	var asistencia model.AsistenciaDetalle
	res := r.detalle(ctx).Where("asistencias.id = ?", id).Limit(1).Scan(&asistencia)
	if res.Error != nil {
		return nil, classify(entityAsistencia, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &asistencia, nil
}

// GetAll devuelve primero lo más reciente: fecha DESC, hora DESC y luego nombre del empleado.
func (r *asistenciaRepository) GetAll(ctx context.Context, f AsistenciaFiltro) ([]model.AsistenciaDetalle, error) {
	list := make([]model.AsistenciaDetalle, 0)
	query := r.detalle(ctx)

	if f.EmpleadoID != nil {
		query = query.Where("asistencias.empleado_id = ?", *f.EmpleadoID)
	}
	if f.EmpresaID != nil {
		query = query.Where("empleados.empresa_id = ?", *f.EmpresaID)
	}
	if f.Desde != "" {
		query = query.Where("asistencias.fecha >= ?", f.Desde)
	}
	if f.Hasta != "" {
		query = query.Where("asistencias.fecha <= ?", f.Hasta)
	}
	if f.TipoID != nil {
		query = query.Where("asistencias.tipo_id = ?", *f.TipoID)
	}

	err := query.Order("asistencias.fecha DESC, asistencias.hora DESC, empleados.nombre_completo").Scan(&list).Error
	return list, classify(entityAsistencia, err)
}

func (r *asistenciaRepository) GetHistory(ctx context.Context, empleadoID uint, desde, hasta string) ([]model.AsistenciaDetalle, error) {
	return r.GetAll(ctx, AsistenciaFiltro{EmpleadoID: &empleadoID, Desde: desde, Hasta: hasta})
}

func (r *asistenciaRepository) GetByEmpresa(ctx context.Context, empresaID uint, desde, hasta string) ([]model.AsistenciaDetalle, error) {
	return r.GetAll(ctx, AsistenciaFiltro{EmpresaID: &empresaID, Desde: desde, Hasta: hasta})
}

// Replace sobrescribe todos los campos editables; creado_en se conserva.
func (r *asistenciaRepository) Replace(ctx context.Context, id uint, asistencia *model.Asistencia) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Asistencia
		if err := tx.First(&existing, id).Error; err != nil {
			return err
		}

		asistencia.ID = existing.ID
		asistencia.CreatedAt = existing.CreatedAt
		return tx.Model(asistencia).
			Select("empleado_id", "fecha", "hora", "hora_salida", "tipo_id", "observaciones").
			Updates(asistencia).Error
	})
	return classify(entityAsistencia, err)
}

// Delete es un borrado físico.
func (r *asistenciaRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Asistencia{}, id)
	if res.Error != nil {
		return classify(entityAsistencia, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
