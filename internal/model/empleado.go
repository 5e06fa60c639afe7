package model

import (
	"errors"
	"time"
)

type Empleado struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	EmpresaID       uint      `json:"empresa_id" gorm:"not null;index"`
	NombreCompleto  string    `json:"nombre_completo" gorm:"size:150;not null"`
	Rut             string    `json:"rut" gorm:"size:20;not null;uniqueIndex"`
	EstadoCivilID   *uint     `json:"estado_civil_id"`
	ComunaID        *uint     `json:"comuna_id"`
	Direccion       *string   `json:"direccion" gorm:"size:200"`
	Telefono        *string   `json:"telefono" gorm:"size:30"`
	Email           *string   `json:"email" gorm:"size:150"`
	Cargo           *string   `json:"cargo" gorm:"size:100"`
	FechaNacimiento *string   `json:"fecha_nacimiento" gorm:"type:char(10)"`
	FechaIngreso    *string   `json:"fecha_ingreso" gorm:"type:char(10)"`
	FechaEgreso     *string   `json:"fecha_egreso" gorm:"type:char(10)"`
	Activo          bool      `json:"activo" gorm:"not null"`
	CreatedAt       time.Time `json:"creado_en" gorm:"column:creado_en"`
	UpdatedAt       time.Time `json:"actualizado_en" gorm:"column:actualizado_en"`

	Empresa     *Empresa     `json:"-" gorm:"foreignKey:EmpresaID"`
	EstadoCivil *EstadoCivil `json:"-" gorm:"foreignKey:EstadoCivilID"`
	Comuna      *Comuna      `json:"-" gorm:"foreignKey:ComunaID"`
}

func (Empleado) TableName() string { return "empleados" }

// EmpleadoDetalle agrega los nombres de empresa, estado civil y comuna.
type EmpleadoDetalle struct {
	Empleado
	EmpresaNombre     string  `json:"empresa_nombre"`
	EstadoCivilNombre *string `json:"estado_civil_nombre"`
	ComunaNombre      *string `json:"comuna_nombre"`
}

type EmpleadoPatch struct {
	EmpresaID       Field[uint]   `json:"empresa_id"`
	NombreCompleto  Field[string] `json:"nombre_completo"`
	Rut             Field[string] `json:"rut"`
	EstadoCivilID   Field[uint]   `json:"estado_civil_id"`
	ComunaID        Field[uint]   `json:"comuna_id"`
	Direccion       Field[string] `json:"direccion"`
	Telefono        Field[string] `json:"telefono"`
	Email           Field[string] `json:"email"`
	Cargo           Field[string] `json:"cargo"`
	FechaNacimiento Field[string] `json:"fecha_nacimiento"`
	FechaIngreso    Field[string] `json:"fecha_ingreso"`
	FechaEgreso     Field[string] `json:"fecha_egreso"`
	Activo          Field[bool]   `json:"activo"`
}

var ErrEmpleadoCamposObligatorios = errors.New("empresa_id, nombre_completo y rut no pueden quedar vacíos")

// Validate rechaza vaciar los campos obligatorios y normaliza las fechas presentes.
func (p *EmpleadoPatch) Validate() error {
	if requiredCleared(p.NombreCompleto) || requiredCleared(p.Rut) {
		return ErrEmpleadoCamposObligatorios
	}
	if p.EmpresaID.IsNull() || (p.EmpresaID.Set && *p.EmpresaID.Value == 0) {
		return ErrEmpleadoCamposObligatorios
	}
	for _, f := range []*Field[string]{&p.FechaNacimiento, &p.FechaIngreso, &p.FechaEgreso} {
		if !f.Set || f.Value == nil {
			continue
		}
		normalized, err := ParseFechaOpcional(f.Value)
		if err != nil {
			return err
		}
		f.Value = normalized
	}
	return nil
}

// Apply aplica el patch sobre la entidad cargada y devuelve las columnas que cambió.
func (p EmpleadoPatch) Apply(e *Empleado) []string {
	var cols []string
	track := func(col string, changed bool) {
		if changed {
			cols = append(cols, col)
		}
	}
	track("empresa_id", p.EmpresaID.apply(&e.EmpresaID))
	track("nombre_completo", p.NombreCompleto.apply(&e.NombreCompleto))
	track("rut", p.Rut.apply(&e.Rut))
	track("estado_civil_id", p.EstadoCivilID.applyNullable(&e.EstadoCivilID))
	track("comuna_id", p.ComunaID.applyNullable(&e.ComunaID))
	track("direccion", p.Direccion.applyNullable(&e.Direccion))
	track("telefono", p.Telefono.applyNullable(&e.Telefono))
	track("email", p.Email.applyNullable(&e.Email))
	track("cargo", p.Cargo.applyNullable(&e.Cargo))
	track("fecha_nacimiento", p.FechaNacimiento.applyNullable(&e.FechaNacimiento))
	track("fecha_ingreso", p.FechaIngreso.applyNullable(&e.FechaIngreso))
	track("fecha_egreso", p.FechaEgreso.applyNullable(&e.FechaEgreso))
	track("activo", p.Activo.apply(&e.Activo))
	return cols
}
