package model

// Códigos de tipos_asistencia con significado para los reportes.
// Se comparan por valor, nunca por id.
const (
	CodigoPresente = "PRESENTE"
	CodigoAusente  = "AUSENTE"

	// Crédito fijo por cada asistencia PRESENTE.
	HorasPorPresente = 8
)

type Comuna struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:100;not null"`
}

func (Comuna) TableName() string { return "comunas" }

type EstadoCivil struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:50;not null"`
}

func (EstadoCivil) TableName() string { return "estados_civiles" }

type TipoAsistencia struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Nombre string `json:"nombre" gorm:"size:50;not null"`
	Codigo string `json:"codigo" gorm:"size:20;not null;uniqueIndex"`
}

func (TipoAsistencia) TableName() string { return "tipos_asistencia" }

// CatalogoItem es la forma corta (id, nombre) usada por los selects del frontend.
type CatalogoItem struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
}
