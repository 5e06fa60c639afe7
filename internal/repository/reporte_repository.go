package repository

import (
	"context"
	"strconv"

	"asistencia-backend/internal/model"

	"gorm.io/gorm"
)

const entityReporte = "reporte"

type ReporteRepository interface {
	Generate(ctx context.Context, f model.ReporteFiltro) (*model.ReporteResultado, error)
	EmpleadosPorEstadoCivil(ctx context.Context, empresaID *uint) ([]model.ConteoEstadoCivil, error)
	EmpleadosPorComuna(ctx context.Context, empresaID *uint) ([]model.ConteoComuna, error)
}

type reporteRepository struct {
	db *gorm.DB
}

func NewReporteRepository(db *gorm.DB) ReporteRepository {
	return &reporteRepository{db}
}

// reporteScope es el único WHERE de las cinco consultas del reporte; así los
// totales y el detalle siempre describen el mismo conjunto de filas.
func reporteScope(f model.ReporteFiltro) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Table("asistencias").
			Joins("JOIN empleados ON empleados.id = asistencias.empleado_id").
			Joins("JOIN empresas ON empresas.id = empleados.empresa_id").
			Joins("JOIN tipos_asistencia ON tipos_asistencia.id = asistencias.tipo_id").
			Where("asistencias.fecha BETWEEN ? AND ?", f.Desde, f.Hasta)

		if f.EmpresaID != nil {
			db = db.Where("empleados.empresa_id = ?", *f.EmpresaID)
		}
		if f.EmpleadoID != nil {
			db = db.Where("empleados.id = ?", *f.EmpleadoID)
		}
		return db
	}
}

var horasExpr = "CASE WHEN tipos_asistencia.codigo = ? THEN " + strconv.Itoa(model.HorasPorPresente) + " ELSE 0 END"

// Generate corre todas las consultas en una transacción: una sola conexión del
// pool y una misma foto de los datos para los cinco resultados.
func (r *reporteRepository) Generate(ctx context.Context, f model.ReporteFiltro) (*model.ReporteResultado, error) {
	res := &model.ReporteResultado{Resultados: make([]model.ReporteDetalle, 0)}
	scope := reporteScope(f)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Empleados distintos con al menos una asistencia en el período
		if err := tx.Scopes(scope).
			Select("COUNT(DISTINCT asistencias.empleado_id)").
			Scan(&res.Empleados).Error; err != nil {
			return err
		}

		// 2. Total de asistencias (cualquier tipo)
		if err := tx.Scopes(scope).Count(&res.Asistencias).Error; err != nil {
			return err
		}

		// 3. Inasistencias
		if err := tx.Scopes(scope).
			Where("tipos_asistencia.codigo = ?", model.CodigoAusente).
			Count(&res.Inasistencias).Error; err != nil {
			return err
		}

		// 4. Horas aproximadas: 8 por cada PRESENTE
		if err := tx.Scopes(scope).
			Select("COALESCE(SUM("+horasExpr+"), 0)", model.CodigoPresente).
			Scan(&res.HorasTotales).Error; err != nil {
			return err
		}

		// 5. Detalle para la tabla
		return tx.Scopes(scope).
			Select(`empresas.nombre AS empresa,
				empleados.nombre_completo AS empleado,
				asistencias.fecha AS fecha,
				asistencias.hora AS entrada,
				`+horasExpr+` AS horas`, model.CodigoPresente).
			Order("empresas.nombre, empleados.nombre_completo, asistencias.fecha, asistencias.hora").
			Scan(&res.Resultados).Error
	})
	if err != nil {
		return nil, classify(entityReporte, err)
	}
	return res, nil
}

// EmpleadosPorEstadoCivil cuenta empleados activos por empresa y estado civil.
func (r *reporteRepository) EmpleadosPorEstadoCivil(ctx context.Context, empresaID *uint) ([]model.ConteoEstadoCivil, error) {
	rows := make([]model.ConteoEstadoCivil, 0)
	query := r.db.WithContext(ctx).Table("empleados").
		Select(`empresas.id AS empresa_id,
			empresas.nombre AS empresa_nombre,
			estados_civiles.id AS estado_civil_id,
			estados_civiles.nombre AS estado_civil_nombre,
			COUNT(*) AS total_empleados`).
		Joins("JOIN empresas ON empresas.id = empleados.empresa_id").
		Joins("LEFT JOIN estados_civiles ON estados_civiles.id = empleados.estado_civil_id").
		Where("empleados.activo = ?", true)

	if empresaID != nil {
		query = query.Where("empresas.id = ?", *empresaID)
	}

	err := query.
		Group("empresas.id, empresas.nombre, estados_civiles.id, estados_civiles.nombre").
		Order("empresas.nombre, estados_civiles.nombre").
		Scan(&rows).Error
	return rows, classify(entityReporte, err)
}

// EmpleadosPorComuna cuenta empleados activos por empresa y comuna.
func (r *reporteRepository) EmpleadosPorComuna(ctx context.Context, empresaID *uint) ([]model.ConteoComuna, error) {
	rows := make([]model.ConteoComuna, 0)
	query := r.db.WithContext(ctx).Table("empleados").
		Select(`empresas.id AS empresa_id,
			empresas.nombre AS empresa_nombre,
			comunas.id AS comuna_id,
			comunas.nombre AS comuna_nombre,
			COUNT(*) AS total_empleados`).
		Joins("JOIN empresas ON empresas.id = empleados.empresa_id").
		Joins("LEFT JOIN comunas ON comunas.id = empleados.comuna_id").
		Where("empleados.activo = ?", true)

	if empresaID != nil {
		query = query.Where("empresas.id = ?", *empresaID)
	}

	err := query.
		Group("empresas.id, empresas.nombre, comunas.id, comunas.nombre").
		Order("empresas.nombre, comunas.nombre").
		Scan(&rows).Error
	return rows, classify(entityReporte, err)
}
