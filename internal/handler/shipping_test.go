package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckout struct {
	res      entities.RateResponse
	items    []entities.CartItem
	dest     entities.Address
	carriers []string
}

func (f *fakeCheckout) GetCheckoutShippingRates(_ context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse {
	f.items = items
	f.dest = destination
	f.carriers = carriers
	return f.res
}

type fakeQuoter struct {
	res entities.RateResponse
	req entities.ShippingRateRequest
}

func (f *fakeQuoter) GetShippingRates(_ context.Context, req entities.ShippingRateRequest, _ ...string) entities.RateResponse {
	f.req = req
	return f.res
}

const checkoutBody = `{
	"items": [
		{"productId":"p1","name":"Pollo 5kg","price":1000,"quantity":2,"weight":5000,"dimensions":{"length":30,"width":20,"height":15}},
		{"productId":"p2","name":"Huesos","price":500,"quantity":1}
	],
	"destination": {"name":"Juan","street":"Av. Corrientes","city":"CABA","state":"Capital Federal","country":"AR","postalCode":"C1043"},
	"carriers": ["oca"]
}`

func TestShippingHandler_GetCheckoutRates(t *testing.T) {
	t.Run("carrier options pass through", func(t *testing.T) {
		checkout := &fakeCheckout{res: entities.RateResponse{
			Success: true,
			Options: []entities.ShippingOption{
				{Key: "oca:estándar:2100.00:0", Carrier: "oca", Service: "Estándar", Cost: 2100, Currency: "ARS", DeliveryEstimate: "N/A"},
			},
		}}
		h := handler.NewShippingHandler(discardLogger(), checkout, &fakeQuoter{})

		status, body := serve(t, h, http.MethodPost, "/shipping/rates", checkoutBody)
		require.Equal(t, http.StatusOK, status)

		var res handler.RateResponse
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.True(t, res.Success)
		assert.False(t, res.Fallback)
		require.Len(t, res.Options, 1)
		assert.Equal(t, "oca:estándar:2100.00:0", res.Options[0].Key)

		require.Len(t, checkout.items, 2)
		assert.NotNil(t, checkout.items[0].Dimensions)
		assert.Nil(t, checkout.items[1].Dimensions)
		assert.Equal(t, "C1043", checkout.dest.PostalCode)
		assert.Equal(t, []string{"oca"}, checkout.carriers)
	})

	t.Run("empty result serves fallback", func(t *testing.T) {
		checkout := &fakeCheckout{res: entities.RateResponse{Success: true}}
		h := handler.NewShippingHandler(discardLogger(), checkout, &fakeQuoter{})

		status, body := serve(t, h, http.MethodPost, "/shipping/rates", checkoutBody)
		require.Equal(t, http.StatusOK, status)

		var res handler.RateResponse
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.True(t, res.Success)
		assert.True(t, res.Fallback)
		assert.Len(t, res.Options, 3)
	})

	t.Run("failure serves fallback and keeps message", func(t *testing.T) {
		checkout := &fakeCheckout{res: entities.RateResponse{Success: false, Message: "carrier API key is not configured"}}
		h := handler.NewShippingHandler(discardLogger(), checkout, &fakeQuoter{})

		_, body := serve(t, h, http.MethodPost, "/shipping/rates", checkoutBody)

		var res handler.RateResponse
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.True(t, res.Fallback)
		assert.Equal(t, "carrier API key is not configured", res.Message)
	})

	t.Run("validation error", func(t *testing.T) {
		h := handler.NewShippingHandler(discardLogger(), &fakeCheckout{}, &fakeQuoter{})

		status, body := serve(t, h, http.MethodPost, "/shipping/rates", `{"items":[],"destination":{}}`)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body, `"invalid request"`)
	})
}

func TestShippingHandler_Quote(t *testing.T) {
	quoter := &fakeQuoter{res: entities.RateResponse{Success: false, Message: "origin and destination countries differ"}}
	h := handler.NewShippingHandler(discardLogger(), &fakeCheckout{}, quoter)

	body := `{
		"origin": {"name":"Barfer","street":"Av. Rivadavia","city":"CABA","country":"AR","postalCode":"1406"},
		"destination": {"name":"Ana","street":"Reforma","city":"CDMX","country":"MX","postalCode":"06600"},
		"packages": [{"content":"Alimento","amount":1,"declaredValue":1000,"weight":1.5,"dimensions":{"length":20,"width":15,"height":10}}]
	}`
	status, resBody := serve(t, h, http.MethodPost, "/shipping/quote", body)
	require.Equal(t, http.StatusOK, status)

	var res handler.RateResponse
	require.NoError(t, json.Unmarshal([]byte(resBody), &res))
	assert.False(t, res.Success)
	assert.False(t, res.Fallback)
	assert.Empty(t, res.Options)

	require.Len(t, quoter.req.Packages, 1)
	assert.Equal(t, entities.PackageBox, quoter.req.Packages[0].Type)
	assert.Equal(t, "MX", quoter.req.Destination.Country)
}

func TestShippingHandler_Fallback(t *testing.T) {
	h := handler.NewShippingHandler(discardLogger(), &fakeCheckout{}, &fakeQuoter{})

	status, body := serve(t, h, http.MethodGet, "/shipping/fallback", "")
	require.Equal(t, http.StatusOK, status)

	var res handler.RateResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	require.Len(t, res.Options, 3)

	costs := map[string]float64{}
	for _, o := range res.Options {
		costs[o.Carrier] = o.Cost
		assert.Equal(t, "ARS", o.Currency)
	}
	assert.Equal(t, map[string]float64{"OCA": 2500, "Andreani": 3200, "Correo Argentino": 1800}, costs)
}
