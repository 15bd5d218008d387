package shipping

import "github.com/rawandfun/barfer-service/internal/entities"

// FallbackRates returns the static options offered when no carrier quote is available.
func FallbackRates() entities.RateResponse {
	options := []entities.ShippingOption{
		{
			Carrier:          "OCA",
			Service:          "Estándar",
			Cost:             2500,
			Currency:         entities.CurrencyARS,
			DeliveryEstimate: "3-5 días hábiles",
			Days:             &entities.DeliveryDays{Min: 3, Max: 5},
		},
		{
			Carrier:          "Andreani",
			Service:          "Estándar",
			Cost:             3200,
			Currency:         entities.CurrencyARS,
			DeliveryEstimate: "2-4 días hábiles",
			Days:             &entities.DeliveryDays{Min: 2, Max: 4},
		},
		{
			Carrier:          "Correo Argentino",
			Service:          "Clásico",
			Cost:             1800,
			Currency:         entities.CurrencyARS,
			DeliveryEstimate: "5-7 días hábiles",
			Days:             &entities.DeliveryDays{Min: 5, Max: 7},
		},
	}
	for i := range options {
		options[i].Key = entities.OptionKey(options[i].Carrier, options[i].Service, options[i].Cost, i)
	}
	return entities.RateResponse{Success: true, Options: options}
}

// WithFallback substitutes the static rates when res failed or carries no options.
// The second return value reports whether the fallback was used.
func WithFallback(res entities.RateResponse) (entities.RateResponse, bool) {
	if res.Success && len(res.Options) > 0 {
		return res, false
	}
	fallbackServedTotal.Inc()
	fb := FallbackRates()
	if res.Message != "" {
		fb.Message = res.Message
	}
	return fb, true
}
