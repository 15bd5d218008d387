package shipping

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoterFunc func(ctx context.Context, req entities.ShippingRateRequest, carriers ...string) entities.RateResponse

func (f quoterFunc) GetShippingRates(ctx context.Context, req entities.ShippingRateRequest, carriers ...string) entities.RateResponse {
	return f(ctx, req, carriers...)
}

func TestBuildPackages(t *testing.T) {
	items := []entities.CartItem{
		{Name: "Snack", Price: 1000, Quantity: 2, Weight: 20, Dimensions: &entities.Dimensions{Length: 2, Width: 2, Height: 2}},
		{Name: "Pollo 10kg", Price: 15000, Quantity: 1, Weight: 10000, Dimensions: &entities.Dimensions{Length: 40, Width: 30, Height: 20}},
		{Name: "Sin medidas", Price: 500},
	}

	pkgs := BuildPackages(items)
	require.Len(t, pkgs, 3)

	small := pkgs[0]
	assert.Equal(t, entities.Dimensions{Length: 10, Width: 10, Height: 10}, small.Dimensions)
	assert.Equal(t, 0.1, small.Weight)
	assert.Equal(t, 2, small.Amount)
	assert.Equal(t, 2000.0, small.DeclaredValue)
	assert.Equal(t, entities.PackageBox, small.Type)

	big := pkgs[1]
	assert.Equal(t, entities.Dimensions{Length: 40, Width: 30, Height: 20}, big.Dimensions)
	assert.Equal(t, 10.0, big.Weight)

	noDims := pkgs[2]
	assert.Equal(t, entities.Dimensions{Length: 20, Width: 15, Height: 10}, noDims.Dimensions)
	assert.Equal(t, 0.1, noDims.Weight)
	assert.Equal(t, 1, noDims.Amount)
}

func TestBuildPackages_ClampFloor(t *testing.T) {
	for _, v := range []float64{0, 0.5, 2, 9.99} {
		pkgs := BuildPackages([]entities.CartItem{{Name: "x", Quantity: 1, Weight: v * 10, Dimensions: &entities.Dimensions{Length: v, Width: v, Height: v}}})
		require.Len(t, pkgs, 1)
		assert.GreaterOrEqual(t, pkgs[0].Dimensions.Length, 10.0)
		assert.GreaterOrEqual(t, pkgs[0].Dimensions.Width, 10.0)
		assert.GreaterOrEqual(t, pkgs[0].Dimensions.Height, 10.0)
		assert.GreaterOrEqual(t, pkgs[0].Weight, 0.1)
	}
}

func TestCheckout_GetCheckoutShippingRates(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	origin := entities.Address{Name: "Barfer", Country: "AR", State: "BA", PostalCode: "1406"}
	dest := entities.Address{Name: "Cliente", Country: "AR", State: "Córdoba", PostalCode: "5000"}
	items := []entities.CartItem{{Name: "Pollo", Price: 100, Quantity: 1}}

	t.Run("uses store origin and caches success", func(t *testing.T) {
		calls := 0
		quoter := quoterFunc(func(_ context.Context, req entities.ShippingRateRequest, carriers ...string) entities.RateResponse {
			calls++
			assert.Equal(t, origin, req.Origin)
			assert.Equal(t, dest, req.Destination)
			assert.Equal(t, []string{"oca"}, carriers)
			return entities.RateResponse{Success: true, Options: []entities.ShippingOption{{Key: "oca:std:100.00:0", Carrier: "oca", Cost: 100}}}
		})
		checkout := NewCheckout(logger, quoter, origin, cache.NewLRUCache(10, time.Minute))

		first := checkout.GetCheckoutShippingRates(context.Background(), items, dest, "oca")
		second := checkout.GetCheckoutShippingRates(context.Background(), items, dest, "oca")

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("empty result is not cached", func(t *testing.T) {
		calls := 0
		quoter := quoterFunc(func(context.Context, entities.ShippingRateRequest, ...string) entities.RateResponse {
			calls++
			return entities.RateResponse{Success: true}
		})
		checkout := NewCheckout(logger, quoter, origin, cache.NewLRUCache(10, time.Minute))

		checkout.GetCheckoutShippingRates(context.Background(), items, dest)
		checkout.GetCheckoutShippingRates(context.Background(), items, dest)

		assert.Equal(t, 2, calls)
	})
}

func TestFallbackRates(t *testing.T) {
	res := FallbackRates()

	require.True(t, res.Success)
	require.Len(t, res.Options, 3)

	costs := map[string]float64{}
	for _, opt := range res.Options {
		costs[opt.Carrier] = opt.Cost
		assert.Equal(t, "ARS", opt.Currency)
		assert.NotEmpty(t, opt.Key)
	}
	assert.Equal(t, map[string]float64{"OCA": 2500, "Andreani": 3200, "Correo Argentino": 1800}, costs)
	assert.Equal(t, res, FallbackRates())
}

func TestWithFallback(t *testing.T) {
	live := entities.RateResponse{Success: true, Options: []entities.ShippingOption{{Carrier: "oca", Cost: 10}}}

	testCases := []struct {
		name         string
		in           entities.RateResponse
		wantFallback bool
	}{
		{name: "live options kept", in: live},
		{name: "failure", in: entities.RateResponse{Success: false, Message: "boom"}, wantFallback: true},
		{name: "empty success", in: entities.RateResponse{Success: true}, wantFallback: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, used := WithFallback(tc.in)
			assert.Equal(t, tc.wantFallback, used)
			if tc.wantFallback {
				assert.Len(t, got.Options, 3)
				assert.True(t, got.Success)
				return
			}
			assert.Equal(t, tc.in, got)
		})
	}
}
