package model

import "time"

// Asistencia es una marca diaria de un empleado. Un empleado no puede tener
// dos marcas del mismo tipo en la misma fecha.
type Asistencia struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	EmpleadoID    uint      `json:"empleado_id" gorm:"not null;uniqueIndex:uq_asistencia_empleado_fecha_tipo,priority:1"`
	Fecha         string    `json:"fecha" gorm:"type:char(10);not null;uniqueIndex:uq_asistencia_empleado_fecha_tipo,priority:2;index"`
	Hora          *string   `json:"hora" gorm:"type:char(8)"`
	HoraSalida    *string   `json:"hora_salida" gorm:"type:char(8)"`
	TipoID        uint      `json:"tipo_id" gorm:"not null;uniqueIndex:uq_asistencia_empleado_fecha_tipo,priority:3"`
	Observaciones *string   `json:"observaciones" gorm:"size:500"`
	CreatedAt     time.Time `json:"creado_en" gorm:"column:creado_en"`

	Empleado *Empleado       `json:"-" gorm:"foreignKey:EmpleadoID"`
	Tipo     *TipoAsistencia `json:"-" gorm:"foreignKey:TipoID"`
}

func (Asistencia) TableName() string { return "asistencias" }

// AsistenciaDetalle es la vista con joins a empleado, empresa y tipo.
type AsistenciaDetalle struct {
	Asistencia
	EmpleadoNombre string `json:"empleado_nombre"`
	EmpresaID      uint   `json:"empresa_id"`
	EmpresaNombre  string `json:"empresa_nombre"`
	TipoCodigo     string `json:"tipo_codigo"`
	TipoNombre     string `json:"tipo_nombre"`
}
