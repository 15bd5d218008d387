package entities

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a sold line. Weight (grams) and Dimensions only feed the shipping quote and are not stored.
type OrderItem struct {
	ProductID  string
	Name       string
	Option     string
	Quantity   int
	Price      float64
	Weight     float64
	Dimensions *Dimensions
}

// ShippingSelection is the quote the customer picked. Key is the ShippingOption key it was resolved from.
type ShippingSelection struct {
	Carrier  string
	Service  string
	Cost     float64
	Currency string
	Key      string
}

// CartItems converts the order lines into checkout cart items for quoting.
func (o Order) CartItems() []CartItem {
	items := make([]CartItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, CartItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Price:      it.Price,
			Quantity:   it.Quantity,
			Weight:     it.Weight,
			Dimensions: it.Dimensions,
		})
	}
	return items
}

type Order struct {
	ID          string
	Status      OrderStatus
	Customer    Address
	Items       []OrderItem
	Shipping    ShippingSelection
	Notes       string
	Total       float64
	DateCreated time.Time
	UpdatedAt   time.Time
}

// ComputeTotal returns the sum of the line items plus the shipping cost.
func (o Order) ComputeTotal() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total + o.Shipping.Cost
}
