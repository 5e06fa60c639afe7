package model

import "time"

type Rol struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:50;not null;uniqueIndex"`
}

func (Rol) TableName() string { return "roles" }

// Usuario es la cuenta que inicia sesión en el panel.
type Usuario struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	NombreCompleto string    `json:"nombre_completo" gorm:"size:150;not null"`
	Email          string    `json:"email" gorm:"size:150;not null;uniqueIndex"`
	PasswordHash   string    `json:"-" gorm:"size:100;not null"`
	RolID          *uint     `json:"rol_id"`
	EmpresaID      *uint     `json:"empresa_id"`
	Activo         bool      `json:"activo" gorm:"not null"`
	CreatedAt      time.Time `json:"creado_en" gorm:"column:creado_en"`
	UpdatedAt      time.Time `json:"actualizado_en" gorm:"column:actualizado_en"`

	Rol     *Rol     `json:"-" gorm:"foreignKey:RolID"`
	Empresa *Empresa `json:"-" gorm:"foreignKey:EmpresaID"`
}

func (Usuario) TableName() string { return "usuarios" }

// Roles sembrados por el seeder.
const (
	RolAdministrador = "Administrador"
	RolOperador      = "Operador"
)
