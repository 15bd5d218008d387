package entities

import "time"

type SalidaTipo string

const (
	SalidaOrdinaria      SalidaTipo = "ORDINARIO"
	SalidaExtraordinaria SalidaTipo = "EXTRAORDINARIO"
)

type TipoRegistro string

const (
	RegistroBlanco TipoRegistro = "BLANCO"
	RegistroNegro  TipoRegistro = "NEGRO"
)

type Brand string

const (
	BrandBarfer    Brand = "BARFER"
	BrandRawAndFun Brand = "RAW_AND_FUN"
)

// Salida is an expense ledger entry.
type Salida struct {
	ID                string
	Fecha             time.Time
	Detalle           string
	Tipo              SalidaTipo
	Marca             Brand
	Monto             float64
	TipoRegistro      TipoRegistro
	CategoriaID       string
	MetodoPagoID      string
	ProveedorID       string
	FechaPago         *time.Time
	NumeroComprobante string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SalidaView is a Salida with its foreign references resolved to names.
type SalidaView struct {
	Salida
	Categoria  string
	MetodoPago string
	Proveedor  string
}

type SalidaFilter struct {
	From         *time.Time
	To           *time.Time
	Tipo         SalidaTipo
	TipoRegistro TipoRegistro
	CategoriaID  string
	Limit        uint64
	Offset       uint64
}

type Categoria struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}

type MetodoPago struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}

type CategoriaProveedor struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
}

type Proveedor struct {
	ID          string
	Nombre      string
	Detalle     string
	Telefono    string
	CategoriaID string
	Activo      bool
	CreatedAt   time.Time
}
