package shipping

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"math"

	"github.com/rawandfun/barfer-service/internal/entities"
)

const (
	minDimensionCM     = 10.0
	minWeightKG        = 0.1
	defaultWeightGrams = 50.0
)

var fallbackBox = entities.Dimensions{Length: 20, Width: 15, Height: 10}

type RateQuoter interface {
	GetShippingRates(ctx context.Context, req entities.ShippingRateRequest, carriers ...string) entities.RateResponse
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// Checkout quotes cart contents from the store origin.
type Checkout struct {
	logger *slog.Logger
	rates  RateQuoter
	origin entities.Address
	cache  Cache
}

func NewCheckout(logger *slog.Logger, rates RateQuoter, origin entities.Address, cache Cache) *Checkout {
	return &Checkout{
		logger: logger.With(slog.String("service", "checkout")),
		rates:  rates,
		origin: origin,
		cache:  cache,
	}
}

// GetCheckoutShippingRates builds one package per cart item and quotes it to the destination.
// Only successful non-empty responses are cached.
func (c *Checkout) GetCheckoutShippingRates(ctx context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse {
	req := entities.ShippingRateRequest{
		Origin:      c.origin,
		Destination: destination,
		Packages:    BuildPackages(items),
	}

	key, err := cacheKey(req, carriers)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to build rate cache key", slog.Any("error", err))
	}

	if key != "" {
		if data, ok := c.cache.Get(key); ok {
			var cached entities.RateResponse
			if err := cached.Unmarshal(data); err == nil {
				rateCacheHitsTotal.Inc()
				return cached
			}
			c.logger.WarnContext(ctx, "failed to unmarshal cached rates", slog.Any("error", err))
		}
	}

	res := c.rates.GetShippingRates(ctx, req, carriers...)

	if key != "" && res.Success && len(res.Options) > 0 {
		if data, err := res.Marshal(); err == nil {
			c.cache.Set(key, data)
		}
	}
	return res
}

// BuildPackages derives one package per cart item. Dimensions are clamped to 10cm per axis and
// weight to 0.1kg; items without dimensions ship in a 20x15x10 box.
func BuildPackages(items []entities.CartItem) []entities.Package {
	pkgs := make([]entities.Package, 0, len(items))
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}

		dims := fallbackBox
		if it.Dimensions != nil {
			dims = entities.Dimensions{
				Length: math.Max(it.Dimensions.Length, minDimensionCM),
				Width:  math.Max(it.Dimensions.Width, minDimensionCM),
				Height: math.Max(it.Dimensions.Height, minDimensionCM),
			}
		}

		grams := it.Weight
		if grams <= 0 {
			grams = defaultWeightGrams
		}

		pkgs = append(pkgs, entities.Package{
			Type:          entities.PackageBox,
			Content:       it.Name,
			Amount:        qty,
			DeclaredValue: it.Price * float64(qty),
			Weight:        math.Max(grams/1000, minWeightKG),
			Dimensions:    dims,
		})
	}
	return pkgs
}

func cacheKey(req entities.ShippingRateRequest, carriers []string) (string, error) {
	data, err := json.Marshal(struct {
		Req      entities.ShippingRateRequest
		Carriers []string
	}{req, carriers})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return "rates:" + hex.EncodeToString(sum[:]), nil
}
