package shipping

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rawandfun/barfer-service/internal/entities"
)

const (
	lengthUnitCM = "CM"
	weightUnitKG = "KG"

	shipmentTypeParcel = 1

	metaError = "error"
)

type rateAddress struct {
	Name       string `json:"name"`
	Company    string `json:"company,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
	Reference  string `json:"reference,omitempty"`
}

type rateDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type ratePackage struct {
	Type          string         `json:"type"`
	Content       string         `json:"content"`
	Amount        int            `json:"amount"`
	DeclaredValue float64        `json:"declaredValue"`
	LengthUnit    string         `json:"lengthUnit"`
	WeightUnit    string         `json:"weightUnit"`
	Weight        float64        `json:"weight"`
	Dimensions    rateDimensions `json:"dimensions"`
}

type rateShipment struct {
	Type    int    `json:"type"`
	Carrier string `json:"carrier"`
}

// RateRequest is the body of POST /ship/rate for a single carrier.
type RateRequest struct {
	Origin      rateAddress   `json:"origin"`
	Destination rateAddress   `json:"destination"`
	Packages    []ratePackage `json:"packages"`
	Shipment    rateShipment  `json:"shipment"`
}

// RawOption is a quote as returned by the carrier API.
type RawOption struct {
	Carrier            string    `json:"carrier"`
	Service            string    `json:"service"`
	ServiceDescription string    `json:"serviceDescription"`
	TotalPrice         flexFloat `json:"totalPrice"`
	Currency           string    `json:"currency"`
	DeliveryEstimate   string    `json:"deliveryEstimate"`
	DeliveryDays       *rawDays  `json:"deliveryDays,omitempty"`
}

type rawDays struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rateResponse struct {
	Meta  string      `json:"meta"`
	Data  []RawOption `json:"data"`
	Error *apiError   `json:"error,omitempty"`
}

// flexFloat accepts numbers and numeric strings. Anything else decodes to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*f = flexFloat(v)
			return nil
		}
	}

	*f = 0
	return nil
}

func toRateAddress(a entities.Address) rateAddress {
	return rateAddress{
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

func toRatePackages(pkgs []entities.Package) []ratePackage {
	out := make([]ratePackage, 0, len(pkgs))
	for _, p := range pkgs {
		pkgType := p.Type
		if pkgType == "" {
			pkgType = entities.PackageBox
		}
		out = append(out, ratePackage{
			Type:          string(pkgType),
			Content:       p.Content,
			Amount:        p.Amount,
			DeclaredValue: p.DeclaredValue,
			LengthUnit:    lengthUnitCM,
			WeightUnit:    weightUnitKG,
			Weight:        p.Weight,
			Dimensions: rateDimensions{
				Length: p.Dimensions.Length,
				Width:  p.Dimensions.Width,
				Height: p.Dimensions.Height,
			},
		})
	}
	return out
}

func newRateRequest(req entities.ShippingRateRequest, carrier string) RateRequest {
	return RateRequest{
		Origin:      toRateAddress(req.Origin),
		Destination: toRateAddress(req.Destination),
		Packages:    toRatePackages(req.Packages),
		Shipment: rateShipment{
			Type:    shipmentTypeParcel,
			Carrier: carrier,
		},
	}
}

const (
	defaultEstimate = "N/A"
	defaultMinDays  = 1
	defaultMaxDays  = 7
)

// toOption maps a raw quote. Missing currency defaults to ARS, missing estimate to "N/A" and a
// partial day range is completed with 1/7.
func toOption(raw RawOption, carrier string) entities.ShippingOption {
	opt := entities.ShippingOption{
		Carrier:          raw.Carrier,
		Service:          raw.ServiceDescription,
		Cost:             float64(raw.TotalPrice),
		Currency:         raw.Currency,
		DeliveryEstimate: raw.DeliveryEstimate,
	}
	if opt.Carrier == "" {
		opt.Carrier = carrier
	}
	if opt.Service == "" {
		opt.Service = raw.Service
	}
	if opt.Currency == "" {
		opt.Currency = entities.CurrencyARS
	}
	if opt.DeliveryEstimate == "" {
		opt.DeliveryEstimate = defaultEstimate
	}
	if raw.DeliveryDays != nil {
		days := entities.DeliveryDays{Min: defaultMinDays, Max: defaultMaxDays}
		if raw.DeliveryDays.Min != nil {
			days.Min = *raw.DeliveryDays.Min
		}
		if raw.DeliveryDays.Max != nil {
			days.Max = *raw.DeliveryDays.Max
		}
		opt.Days = &days
	}
	return opt
}
