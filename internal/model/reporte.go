package model

// ReporteFiltro acota el reporte de asistencia. Desde y Hasta son inclusivos.
type ReporteFiltro struct {
	EmpresaID  *uint
	EmpleadoID *uint
	Desde      string
	Hasta      string
}

// ReporteResultado conserva los nombres de campo que consume el frontend.
type ReporteResultado struct {
	Empleados     int64            `json:"empleados"`
	Asistencias   int64            `json:"asistencias"`
	Inasistencias int64            `json:"inasistencias"`
	HorasTotales  int64            `json:"horasTotales"`
	Resultados    []ReporteDetalle `json:"resultados"`
}

// ReporteDetalle es una fila de la tabla del reporte. Salida siempre va nula.
type ReporteDetalle struct {
	Empresa  string  `json:"empresa"`
	Empleado string  `json:"empleado"`
	Fecha    string  `json:"fecha"`
	Entrada  *string `json:"entrada"`
	Salida   *string `json:"salida" gorm:"-"`
	Horas    int64   `json:"horas"`
}

type ConteoEstadoCivil struct {
	EmpresaID         uint    `json:"empresa_id"`
	EmpresaNombre     string  `json:"empresa_nombre"`
	EstadoCivilID     *uint   `json:"estado_civil_id"`
	EstadoCivilNombre *string `json:"estado_civil_nombre"`
	TotalEmpleados    int64   `json:"total_empleados"`
}

type ConteoComuna struct {
	EmpresaID      uint    `json:"empresa_id"`
	EmpresaNombre  string  `json:"empresa_nombre"`
	ComunaID       *uint   `json:"comuna_id"`
	ComunaNombre   *string `json:"comuna_nombre"`
	TotalEmpleados int64   `json:"total_empleados"`
}
