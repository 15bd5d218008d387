package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type Address struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Option    string  `json:"option"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Shipping struct {
	Carrier  string  `json:"carrier"`
	Service  string  `json:"service"`
	Cost     float64 `json:"cost"`
	Currency string  `json:"currency"`
}

type Order struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	Customer    Address  `json:"customer"`
	Items       []Item   `json:"items"`
	Shipping    Shipping `json:"shipping"`
	Total       float64  `json:"total"`
	DateCreated string   `json:"createdAt"`
}

var (
	products = []Item{
		{ProductID: "pollo-5", Name: "BARF Pollo", Option: "5kg", Price: 18500},
		{ProductID: "vaca-5", Name: "BARF Vaca", Option: "5kg", Price: 21000},
		{ProductID: "cerdo-10", Name: "BARF Cerdo", Option: "10kg", Price: 36000},
		{ProductID: "huesos", Name: "Huesos carnosos", Option: "1kg", Price: 4200},
	}
	destinations = []Address{
		{City: "CABA", State: "Capital Federal", PostalCode: "C1043"},
		{City: "La Plata", State: "Buenos Aires", PostalCode: "1900"},
		{City: "Córdoba", State: "Córdoba", PostalCode: "5000"},
		{City: "Rosario", State: "Santa Fe", PostalCode: "2000"},
	}
	statuses = []string{"pending", "confirmed", "confirmed", "delivered", "cancelled"}
	carriers = []Shipping{
		{Carrier: "oca", Service: "Estándar", Cost: 2500},
		{Carrier: "andreani", Service: "Estándar", Cost: 3200},
	}
)

func generateRandomOrder() Order {
	dest := destinations[rand.Intn(len(destinations))]
	dest.Name = fmt.Sprintf("Cliente %d", rand.Intn(1000))
	dest.Email = fmt.Sprintf("cliente%d@example.com", rand.Intn(1000))
	dest.Phone = fmt.Sprintf("11%08d", rand.Intn(99999999))
	dest.Street = "Calle Falsa"
	dest.Number = fmt.Sprintf("%d", rand.Intn(5000)+1)
	dest.Country = "AR"

	var items []Item
	var total float64
	for range rand.Intn(3) + 1 {
		it := products[rand.Intn(len(products))]
		it.Quantity = rand.Intn(3) + 1
		total += it.Price * float64(it.Quantity)
		items = append(items, it)
	}

	ship := carriers[rand.Intn(len(carriers))]
	ship.Currency = "ARS"

	created := time.Now().AddDate(0, -rand.Intn(24), -rand.Intn(28))

	return Order{
		ID:          uuid.NewString(),
		Status:      statuses[rand.Intn(len(statuses))],
		Customer:    dest,
		Items:       items,
		Shipping:    ship,
		Total:       total + ship.Cost,
		DateCreated: created.Format(time.RFC3339),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.ID, order.Status, order.Total)
		case <-ctx.Done():
			return
		}
	}
}
