package entities

import (
	"fmt"
	"strings"
)

const (
	CountryArgentina = "AR"
	CurrencyARS      = "ARS"
)

type Address struct {
	Name       string
	Company    string
	Email      string
	Phone      string
	Street     string
	Number     string
	District   string
	City       string
	State      string
	Country    string
	PostalCode string
	Reference  string
}

type PackageType string

const (
	PackageBox      PackageType = "box"
	PackageEnvelope PackageType = "envelope"
	PackagePak      PackageType = "pak"
)

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Package is a single shippable unit. Weight is in kilograms, dimensions in centimeters.
type Package struct {
	Type          PackageType
	Content       string
	Amount        int
	DeclaredValue float64
	Weight        float64
	Dimensions    Dimensions
}

type ShippingRateRequest struct {
	Origin      Address
	Destination Address
	Packages    []Package
}

// CartItem is a checkout line. Weight is in grams; nil dimensions mean the product has none on file.
type CartItem struct {
	ProductID  string
	Name       string
	Price      float64
	Quantity   int
	Weight     float64
	Dimensions *Dimensions
}

type DeliveryDays struct {
	Min int
	Max int
}

type ShippingOption struct {
	Key              string
	Carrier          string
	Service          string
	Cost             float64
	Currency         string
	DeliveryEstimate string
	Days             *DeliveryDays
}

// OptionKey identifies a quote within a fetched list so selection survives re-fetches.
func OptionKey(carrier, service string, cost float64, index int) string {
	return fmt.Sprintf("%s:%s:%.2f:%d",
		strings.ToLower(strings.TrimSpace(carrier)),
		strings.ToLower(strings.TrimSpace(service)),
		cost, index)
}

type RateResponse struct {
	Success bool
	Options []ShippingOption
	Message string
}

// FindOption returns the option with the given key.
func (r RateResponse) FindOption(key string) (ShippingOption, bool) {
	for _, opt := range r.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return ShippingOption{}, false
}
