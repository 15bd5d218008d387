package handler

import (
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
)

const dateLayout = time.DateOnly

// Address адрес отправителя или получателя
type Address struct {
	Name       string `json:"name" validate:"required"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street" validate:"required"`
	Number     string `json:"number,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country" validate:"required,iso3166_1_alpha2"`
	PostalCode string `json:"postalCode" validate:"required"`
	Reference  string `json:"reference,omitempty"`
}

type Dimensions struct {
	Length float64 `json:"length" validate:"gte=0"`
	Width  float64 `json:"width" validate:"gte=0"`
	Height float64 `json:"height" validate:"gte=0"`
}

// CartItem позиция корзины, вес в граммах
type CartItem struct {
	ProductID  string      `json:"productId"`
	Name       string      `json:"name" validate:"required"`
	Price      float64     `json:"price" validate:"gte=0"`
	Quantity   int         `json:"quantity" validate:"gte=0"`
	Weight     float64     `json:"weight,omitempty" validate:"gte=0"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type Package struct {
	Type          string     `json:"type" validate:"omitempty,oneof=box envelope pak"`
	Content       string     `json:"content" validate:"required"`
	Amount        int        `json:"amount" validate:"gte=1"`
	DeclaredValue float64    `json:"declaredValue" validate:"gte=0"`
	Weight        float64    `json:"weight" validate:"gt=0"`
	Dimensions    Dimensions `json:"dimensions"`
}

// CheckoutRatesRequest запрос тарифов доставки для корзины
type CheckoutRatesRequest struct {
	Items       []CartItem `json:"items" validate:"required,min=1,dive"`
	Destination Address    `json:"destination" validate:"required"`
	Carriers    []string   `json:"carriers,omitempty"`
}

// QuoteRequest прямой запрос тарифов с явными посылками
type QuoteRequest struct {
	Origin      Address   `json:"origin" validate:"required"`
	Destination Address   `json:"destination" validate:"required"`
	Packages    []Package `json:"packages" validate:"required,min=1,dive"`
	Carriers    []string  `json:"carriers,omitempty"`
}

type DeliveryDays struct {
	MinDays int `json:"minDays"`
	MaxDays int `json:"maxDays"`
}

type ShippingOption struct {
	Key              string        `json:"key"`
	Carrier          string        `json:"carrier"`
	Service          string        `json:"service"`
	Cost             float64       `json:"cost"`
	Currency         string        `json:"currency"`
	DeliveryEstimate string        `json:"deliveryEstimate"`
	DeliveryDays     *DeliveryDays `json:"deliveryDays,omitempty"`
}

type RateResponse struct {
	Success  bool             `json:"success"`
	Options  []ShippingOption `json:"options"`
	Message  string           `json:"message,omitempty"`
	Fallback bool             `json:"fallback"`
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		Name:       a.Name,
		Company:    a.Company,
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		Reference:  a.Reference,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		Name:       a.Name,
		Company:    a.Company,
		Email:      a.Email,
		Phone:      a.Phone,
		Street:     a.Street,
		Number:     a.Number,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		PostalCode: a.PostalCode,
		Reference:  a.Reference,
	}
}

func CartItemsJSONToEntity(items []CartItem) []entities.CartItem {
	res := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		item := entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Weight:    it.Weight,
		}
		if it.Dimensions != nil {
			item.Dimensions = &entities.Dimensions{
				Length: it.Dimensions.Length,
				Width:  it.Dimensions.Width,
				Height: it.Dimensions.Height,
			}
		}
		res = append(res, item)
	}
	return res
}

func PackagesJSONToEntity(pkgs []Package) []entities.Package {
	res := make([]entities.Package, 0, len(pkgs))
	for _, p := range pkgs {
		typ := entities.PackageType(p.Type)
		if typ == "" {
			typ = entities.PackageBox
		}
		res = append(res, entities.Package{
			Type:          typ,
			Content:       p.Content,
			Amount:        p.Amount,
			DeclaredValue: p.DeclaredValue,
			Weight:        p.Weight,
			Dimensions: entities.Dimensions{
				Length: p.Dimensions.Length,
				Width:  p.Dimensions.Width,
				Height: p.Dimensions.Height,
			},
		})
	}
	return res
}

func RateResponseEntityToJSON(r entities.RateResponse, fallback bool) RateResponse {
	options := make([]ShippingOption, 0, len(r.Options))
	for _, o := range r.Options {
		opt := ShippingOption{
			Key:              o.Key,
			Carrier:          o.Carrier,
			Service:          o.Service,
			Cost:             o.Cost,
			Currency:         o.Currency,
			DeliveryEstimate: o.DeliveryEstimate,
		}
		if o.Days != nil {
			opt.DeliveryDays = &DeliveryDays{MinDays: o.Days.Min, MaxDays: o.Days.Max}
		}
		options = append(options, opt)
	}
	return RateResponse{
		Success:  r.Success,
		Options:  options,
		Message:  r.Message,
		Fallback: fallback,
	}
}

// Order представляет заказ
type Order struct {
	ID          string            `json:"id"`
	Status      string            `json:"status"`
	Customer    Address           `json:"customer"`
	Items       []OrderItem       `json:"items"`
	Shipping    ShippingSelection `json:"shipping"`
	Notes       string            `json:"notes,omitempty"`
	Total       float64           `json:"total"`
	DateCreated time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// OrderItem позиция заказа. Вес (граммы) и габариты нужны только для расчета доставки и не сохраняются
type OrderItem struct {
	ProductID  string      `json:"productId,omitempty"`
	Name       string      `json:"name" validate:"required"`
	Option     string      `json:"option,omitempty"`
	Quantity   int         `json:"quantity" validate:"gte=1"`
	Price      float64     `json:"price" validate:"gte=0"`
	Weight     float64     `json:"weight,omitempty" validate:"gte=0"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
}

type ShippingSelection struct {
	Carrier  string  `json:"carrier" validate:"required"`
	Service  string  `json:"service" validate:"required"`
	Cost     float64 `json:"cost" validate:"gte=0"`
	Currency string  `json:"currency,omitempty"`
	Key      string  `json:"key,omitempty"`
}

// ShippingChoice выбранный в чекауте тариф, ключ из ответа /shipping/rates
type ShippingChoice struct {
	Key string `json:"key" validate:"required"`
}

// CreateOrderRequest заказ из чекаута
type CreateOrderRequest struct {
	Customer Address        `json:"customer" validate:"required"`
	Items    []OrderItem    `json:"items" validate:"required,min=1,dive"`
	Shipping ShippingChoice `json:"shipping" validate:"required"`
	Notes    string         `json:"notes,omitempty"`
}

// OrderEvent заказ из витрины, приходит через kafka
type OrderEvent struct {
	ID          string            `json:"id" validate:"required"`
	Status      string            `json:"status" validate:"required,oneof=pending confirmed delivered cancelled"`
	Customer    Address           `json:"customer" validate:"required"`
	Items       []OrderItem       `json:"items" validate:"required,min=1,dive"`
	Shipping    ShippingSelection `json:"shipping"`
	Notes       string            `json:"notes,omitempty"`
	Total       float64           `json:"total" validate:"gte=0"`
	DateCreated time.Time         `json:"createdAt" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed delivered cancelled"`
}

func orderItemsJSONToEntity(items []OrderItem) []entities.OrderItem {
	res := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		item := entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Option:    it.Option,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Weight:    it.Weight,
		}
		if it.Dimensions != nil {
			item.Dimensions = &entities.Dimensions{
				Length: it.Dimensions.Length,
				Width:  it.Dimensions.Width,
				Height: it.Dimensions.Height,
			}
		}
		res = append(res, item)
	}
	return res
}

func shippingJSONToEntity(s ShippingSelection) entities.ShippingSelection {
	currency := s.Currency
	if currency == "" {
		currency = entities.CurrencyARS
	}
	return entities.ShippingSelection{
		Carrier:  s.Carrier,
		Service:  s.Service,
		Cost:     s.Cost,
		Currency: currency,
		Key:      s.Key,
	}
}

func CreateOrderJSONToEntity(req CreateOrderRequest) entities.Order {
	return entities.Order{
		Customer: AddressJSONToEntity(req.Customer),
		Items:    orderItemsJSONToEntity(req.Items),
		Shipping: entities.ShippingSelection{Key: req.Shipping.Key},
		Notes:    req.Notes,
	}
}

func OrderEventToEntity(e OrderEvent) entities.Order {
	return entities.Order{
		ID:          e.ID,
		Status:      entities.OrderStatus(e.Status),
		Customer:    AddressJSONToEntity(e.Customer),
		Items:       orderItemsJSONToEntity(e.Items),
		Shipping:    shippingJSONToEntity(e.Shipping),
		Notes:       e.Notes,
		Total:       e.Total,
		DateCreated: e.DateCreated,
		UpdatedAt:   e.DateCreated,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Option:    it.Option,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return Order{
		ID:       o.ID,
		Status:   string(o.Status),
		Customer: AddressEntityToJSON(o.Customer),
		Items:    items,
		Shipping: ShippingSelection{
			Carrier:  o.Shipping.Carrier,
			Service:  o.Shipping.Service,
			Cost:     o.Shipping.Cost,
			Currency: o.Shipping.Currency,
			Key:      o.Shipping.Key,
		},
		Notes:       o.Notes,
		Total:       o.Total,
		DateCreated: o.DateCreated,
		UpdatedAt:   o.UpdatedAt,
	}
}

// MonthlyBalance строка месячного баланса
type MonthlyBalance struct {
	Mes                            string  `json:"mes"`
	EntradasTotales                float64 `json:"entradasTotales"`
	CantidadPedidos                int     `json:"cantidadPedidos"`
	CantidadItems                  int     `json:"cantidadItems"`
	GastosOrdinariosBarfer         float64 `json:"gastosOrdinariosBarfer"`
	GastosOrdinariosRawAndFun      float64 `json:"gastosOrdinariosRawAndFun"`
	GastosExtraordinariosBarfer    float64 `json:"gastosExtraordinariosBarfer"`
	GastosExtraordinariosRawAndFun float64 `json:"gastosExtraordinariosRawAndFun"`
	GastosOrdinariosTotal          float64 `json:"gastosOrdinariosTotal"`
	GastosExtraordinariosTotal     float64 `json:"gastosExtraordinariosTotal"`
	GastosTotales                  float64 `json:"gastosTotales"`
	ResultadoSinExtraordinarios    float64 `json:"resultadoSinExtraordinarios"`
	ResultadoConExtraordinarios    float64 `json:"resultadoConExtraordinarios"`
	PorcentajeSinExtraordinarios   float64 `json:"porcentajeSinExtraordinarios"`
	PorcentajeConExtraordinarios   float64 `json:"porcentajeConExtraordinarios"`
	PesoEstimadoKg                 float64 `json:"pesoEstimadoKg"`
	PrecioPorKg                    float64 `json:"precioPorKg"`
}

type BalanceResponse struct {
	Success bool             `json:"success"`
	Data    []MonthlyBalance `json:"data"`
	Error   string           `json:"error,omitempty"`
}

func MonthlyBalanceEntityToJSON(b entities.MonthlyBalance) MonthlyBalance {
	return MonthlyBalance{
		Mes:                            b.Month,
		EntradasTotales:                b.Revenue,
		CantidadPedidos:                b.Orders,
		CantidadItems:                  b.LineItems,
		GastosOrdinariosBarfer:         b.OrdinaryBarfer,
		GastosOrdinariosRawAndFun:      b.OrdinaryRawAndFun,
		GastosExtraordinariosBarfer:    b.ExtraordinaryBarfer,
		GastosExtraordinariosRawAndFun: b.ExtraordinaryRawAndFun,
		GastosOrdinariosTotal:          b.OrdinaryTotal,
		GastosExtraordinariosTotal:     b.ExtraordinaryTotal,
		GastosTotales:                  b.ExpensesTotal,
		ResultadoSinExtraordinarios:    b.ResultWithoutExtraordinary,
		ResultadoConExtraordinarios:    b.ResultWithExtraordinary,
		PorcentajeSinExtraordinarios:   b.PercentWithoutExtraordinary,
		PorcentajeConExtraordinarios:   b.PercentWithExtraordinary,
		PesoEstimadoKg:                 b.EstimatedWeightKg,
		PrecioPorKg:                    b.PricePerKg,
	}
}

// Salida расход
type Salida struct {
	ID                string     `json:"id"`
	Fecha             time.Time  `json:"fecha"`
	Detalle           string     `json:"detalle"`
	Tipo              string     `json:"tipo"`
	Marca             string     `json:"marca,omitempty"`
	Monto             float64    `json:"monto"`
	TipoRegistro      string     `json:"tipoRegistro"`
	CategoriaID       string     `json:"categoriaId"`
	Categoria         string     `json:"categoria,omitempty"`
	MetodoPagoID      string     `json:"metodoPagoId"`
	MetodoPago        string     `json:"metodoPago,omitempty"`
	ProveedorID       string     `json:"proveedorId,omitempty"`
	Proveedor         string     `json:"proveedor,omitempty"`
	FechaPago         *time.Time `json:"fechaPago,omitempty"`
	NumeroComprobante string     `json:"numeroComprobante,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// SalidaRequest тело создания и обновления расхода
type SalidaRequest struct {
	Fecha             time.Time  `json:"fecha" validate:"required"`
	Detalle           string     `json:"detalle" validate:"required"`
	Tipo              string     `json:"tipo" validate:"required,oneof=ORDINARIO EXTRAORDINARIO"`
	Marca             string     `json:"marca,omitempty" validate:"omitempty,oneof=BARFER RAW_AND_FUN"`
	Monto             float64    `json:"monto" validate:"gt=0"`
	TipoRegistro      string     `json:"tipoRegistro" validate:"required,oneof=BLANCO NEGRO"`
	CategoriaID       string     `json:"categoriaId" validate:"required"`
	MetodoPagoID      string     `json:"metodoPagoId" validate:"required"`
	ProveedorID       string     `json:"proveedorId,omitempty"`
	FechaPago         *time.Time `json:"fechaPago,omitempty"`
	NumeroComprobante string     `json:"numeroComprobante,omitempty"`
}

func SalidaJSONToEntity(id string, req SalidaRequest) entities.Salida {
	return entities.Salida{
		ID:                id,
		Fecha:             req.Fecha,
		Detalle:           req.Detalle,
		Tipo:              entities.SalidaTipo(req.Tipo),
		Marca:             entities.Brand(req.Marca),
		Monto:             req.Monto,
		TipoRegistro:      entities.TipoRegistro(req.TipoRegistro),
		CategoriaID:       req.CategoriaID,
		MetodoPagoID:      req.MetodoPagoID,
		ProveedorID:       req.ProveedorID,
		FechaPago:         req.FechaPago,
		NumeroComprobante: req.NumeroComprobante,
	}
}

func SalidaEntityToJSON(s entities.Salida) Salida {
	return Salida{
		ID:                s.ID,
		Fecha:             s.Fecha,
		Detalle:           s.Detalle,
		Tipo:              string(s.Tipo),
		Marca:             string(s.Marca),
		Monto:             s.Monto,
		TipoRegistro:      string(s.TipoRegistro),
		CategoriaID:       s.CategoriaID,
		MetodoPagoID:      s.MetodoPagoID,
		ProveedorID:       s.ProveedorID,
		FechaPago:         s.FechaPago,
		NumeroComprobante: s.NumeroComprobante,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func SalidaViewToJSON(v entities.SalidaView) Salida {
	s := SalidaEntityToJSON(v.Salida)
	s.Categoria = v.Categoria
	s.MetodoPago = v.MetodoPago
	s.Proveedor = v.Proveedor
	return s
}

// Lookup элемент справочника
type Lookup struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"createdAt"`
}

type LookupRequest struct {
	Nombre string `json:"nombre" validate:"required"`
}

type Proveedor struct {
	ID          string    `json:"id"`
	Nombre      string    `json:"nombre"`
	Detalle     string    `json:"detalle,omitempty"`
	Telefono    string    `json:"telefono,omitempty"`
	CategoriaID string    `json:"categoriaId,omitempty"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ProveedorRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Detalle     string `json:"detalle,omitempty"`
	Telefono    string `json:"telefono,omitempty"`
	CategoriaID string `json:"categoriaId,omitempty"`
}

func ProveedorEntityToJSON(p entities.Proveedor) Proveedor {
	return Proveedor{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Detalle:     p.Detalle,
		Telefono:    p.Telefono,
		CategoriaID: p.CategoriaID,
		Activo:      p.Activo,
		CreatedAt:   p.CreatedAt,
	}
}
