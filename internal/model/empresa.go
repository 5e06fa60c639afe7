package model

import (
	"errors"
	"strings"
	"time"
)

type Empresa struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Nombre         string    `json:"nombre" gorm:"size:150;not null;uniqueIndex"`
	Rut            string    `json:"rut" gorm:"size:20;not null;uniqueIndex"`
	Giro           *string   `json:"giro" gorm:"size:150"`
	Direccion      *string   `json:"direccion" gorm:"size:200"`
	ComunaID       *uint     `json:"comuna_id"`
	Telefono       *string   `json:"telefono" gorm:"size:30"`
	CorreoContacto *string   `json:"correo_contacto" gorm:"size:150"`
	Activo         bool      `json:"activo" gorm:"not null"`
	CreatedAt      time.Time `json:"creado_en" gorm:"column:creado_en"`
	UpdatedAt      time.Time `json:"actualizado_en" gorm:"column:actualizado_en"`

	// Relación (solo para la llave foránea del esquema)
	Comuna *Comuna `json:"-" gorm:"foreignKey:ComunaID"`
}

func (Empresa) TableName() string { return "empresas" }

// EmpresaDetalle es la empresa con el nombre de su comuna.
type EmpresaDetalle struct {
	Empresa
	ComunaNombre *string `json:"comuna_nombre"`
}

// EmpresaPatch representa un PUT parcial: solo se tocan las claves presentes.
type EmpresaPatch struct {
	Nombre         Field[string] `json:"nombre"`
	Rut            Field[string] `json:"rut"`
	Giro           Field[string] `json:"giro"`
	Direccion      Field[string] `json:"direccion"`
	ComunaID       Field[uint]   `json:"comuna_id"`
	Telefono       Field[string] `json:"telefono"`
	CorreoContacto Field[string] `json:"correo_contacto"`
	Activo         Field[bool]   `json:"activo"`
}

var ErrEmpresaCamposObligatorios = errors.New("nombre y rut de la empresa no pueden quedar vacíos")

// Validate rechaza vaciar nombre o rut.
func (p EmpresaPatch) Validate() error {
	if requiredCleared(p.Nombre) || requiredCleared(p.Rut) {
		return ErrEmpresaCamposObligatorios
	}
	return nil
}

// Apply aplica el patch sobre la entidad cargada y devuelve las columnas que cambió.
func (p EmpresaPatch) Apply(e *Empresa) []string {
	var cols []string
	track := func(col string, changed bool) {
		if changed {
			cols = append(cols, col)
		}
	}
	track("nombre", p.Nombre.apply(&e.Nombre))
	track("rut", p.Rut.apply(&e.Rut))
	track("giro", p.Giro.applyNullable(&e.Giro))
	track("direccion", p.Direccion.applyNullable(&e.Direccion))
	track("comuna_id", p.ComunaID.applyNullable(&e.ComunaID))
	track("telefono", p.Telefono.applyNullable(&e.Telefono))
	track("correo_contacto", p.CorreoContacto.applyNullable(&e.CorreoContacto))
	track("activo", p.Activo.apply(&e.Activo))
	return cols
}

func requiredCleared(f Field[string]) bool {
	return f.Set && (f.Value == nil || strings.TrimSpace(*f.Value) == "")
}
