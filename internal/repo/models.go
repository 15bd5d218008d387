package repo

import (
	"database/sql"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
)

type Order struct {
	ID               string         `db:"id"`
	Status           string         `db:"status"`
	CustomerName     string         `db:"customer_name"`
	CustomerEmail    sql.NullString `db:"customer_email"`
	CustomerPhone    sql.NullString `db:"customer_phone"`
	Street           string         `db:"street"`
	Number           sql.NullString `db:"number"`
	District         sql.NullString `db:"district"`
	City             string         `db:"city"`
	State            string         `db:"state"`
	Country          string         `db:"country"`
	PostalCode       string         `db:"postal_code"`
	Reference        sql.NullString `db:"reference"`
	ShippingCarrier  sql.NullString `db:"shipping_carrier"`
	ShippingService  sql.NullString `db:"shipping_service"`
	ShippingCost     float64        `db:"shipping_cost"`
	ShippingCurrency sql.NullString `db:"shipping_currency"`
	ShippingKey      sql.NullString `db:"shipping_key"`
	Notes            sql.NullString `db:"notes"`
	Total            float64        `db:"total"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

type OrderItem struct {
	OrderID   string         `db:"order_id"`
	Position  int            `db:"position"`
	ProductID sql.NullString `db:"product_id"`
	Name      string         `db:"name"`
	Option    sql.NullString `db:"item_option"`
	Quantity  int            `db:"quantity"`
	Price     float64        `db:"price"`
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:     o.ID,
		Status: entities.OrderStatus(o.Status),
		Customer: entities.Address{
			Name:       o.CustomerName,
			Email:      o.CustomerEmail.String,
			Phone:      o.CustomerPhone.String,
			Street:     o.Street,
			Number:     o.Number.String,
			District:   o.District.String,
			City:       o.City,
			State:      o.State,
			Country:    o.Country,
			PostalCode: o.PostalCode,
			Reference:  o.Reference.String,
		},
		Shipping: entities.ShippingSelection{
			Carrier:  o.ShippingCarrier.String,
			Service:  o.ShippingService.String,
			Cost:     o.ShippingCost,
			Currency: o.ShippingCurrency.String,
			Key:      o.ShippingKey.String,
		},
		Notes:       o.Notes.String,
		Total:       o.Total,
		DateCreated: o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		Items:       make([]entities.OrderItem, 0, len(items)),
	}
	for _, it := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: it.ProductID.String,
			Name:      it.Name,
			Option:    it.Option.String,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return order
}

type Salida struct {
	ID                string         `db:"id"`
	Fecha             time.Time      `db:"fecha"`
	Detalle           string         `db:"detalle"`
	Tipo              string         `db:"tipo"`
	Marca             sql.NullString `db:"marca"`
	Monto             float64        `db:"monto"`
	TipoRegistro      string         `db:"tipo_registro"`
	CategoriaID       string         `db:"categoria_id"`
	MetodoPagoID      string         `db:"metodo_pago_id"`
	ProveedorID       sql.NullString `db:"proveedor_id"`
	FechaPago         sql.NullTime   `db:"fecha_pago"`
	NumeroComprobante sql.NullString `db:"numero_comprobante"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func SalidaToEntity(s Salida) entities.Salida {
	out := entities.Salida{
		ID:                s.ID,
		Fecha:             s.Fecha,
		Detalle:           s.Detalle,
		Tipo:              entities.SalidaTipo(s.Tipo),
		Marca:             entities.Brand(s.Marca.String),
		Monto:             s.Monto,
		TipoRegistro:      entities.TipoRegistro(s.TipoRegistro),
		CategoriaID:       s.CategoriaID,
		MetodoPagoID:      s.MetodoPagoID,
		ProveedorID:       s.ProveedorID.String,
		NumeroComprobante: s.NumeroComprobante.String,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.FechaPago.Valid {
		t := s.FechaPago.Time
		out.FechaPago = &t
	}
	return out
}

// Named is a row of any id/nombre lookup collection.
type Named struct {
	ID        string    `db:"id"`
	Nombre    string    `db:"nombre"`
	CreatedAt time.Time `db:"created_at"`
}

type Proveedor struct {
	ID          string         `db:"id"`
	Nombre      string         `db:"nombre"`
	Detalle     sql.NullString `db:"detalle"`
	Telefono    sql.NullString `db:"telefono"`
	CategoriaID sql.NullString `db:"categoria_id"`
	Activo      bool           `db:"activo"`
	CreatedAt   time.Time      `db:"created_at"`
}

func ProveedorToEntity(p Proveedor) entities.Proveedor {
	return entities.Proveedor{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Detalle:     p.Detalle.String,
		Telefono:    p.Telefono.String,
		CategoriaID: p.CategoriaID.String,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
	}
}

type MonthlyRevenue struct {
	Month     string  `db:"month"`
	Total     float64 `db:"total"`
	Orders    int     `db:"orders"`
	LineItems int     `db:"line_items"`
}

type MonthlyExpense struct {
	Month string  `db:"month"`
	Tipo  string  `db:"tipo"`
	Marca string  `db:"marca"`
	Total float64 `db:"total"`
}
