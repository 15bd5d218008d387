package shipping

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeClient struct {
	mu    sync.Mutex
	calls []RateRequest
	fn    func(ctx context.Context, body RateRequest) ([]RawOption, error)
}

func (f *fakeClient) Rate(ctx context.Context, body RateRequest) ([]RawOption, error) {
	f.mu.Lock()
	f.calls = append(f.calls, body)
	f.mu.Unlock()
	return f.fn(ctx, body)
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func intPtr(i int) *int { return &i }

func testRequest() entities.ShippingRateRequest {
	return entities.ShippingRateRequest{
		Origin: entities.Address{
			Name: "Barfer", Street: "Av. Rivadavia", City: "Buenos Aires",
			State: "Buenos Aires", Country: "AR", PostalCode: "1406", Phone: "11 5555 1234",
		},
		Destination: entities.Address{
			Name: "Cliente", Street: "San Martín", City: "Córdoba",
			State: "Córdoba", Country: "AR", PostalCode: "5000", Phone: "351 555 1234",
		},
		Packages: []entities.Package{{Type: entities.PackageBox, Content: "Pollo 5kg", Amount: 1, Weight: 5, Dimensions: entities.Dimensions{Length: 30, Width: 20, Height: 15}}},
	}
}

func newTestAggregator(cfg Config, client RateClient) *Aggregator {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAggregator(logger, cfg, client)
}

func TestAggregator_Preconditions(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		mutate  func(r *entities.ShippingRateRequest)
		wantMsg string
	}{
		{
			name:    "missing api key",
			cfg:     Config{Carriers: []string{"oca"}},
			wantMsg: msgMissingAPIKey,
		},
		{
			name:    "cross-border request",
			cfg:     Config{APIKey: "key", Carriers: []string{"oca"}},
			mutate:  func(r *entities.ShippingRateRequest) { r.Destination.Country = "MX" },
			wantMsg: msgCountryMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{fn: func(context.Context, RateRequest) ([]RawOption, error) {
				t.Fatal("no carrier call expected")
				return nil, nil
			}}
			req := testRequest()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			res := newTestAggregator(tc.cfg, client).GetShippingRates(context.Background(), req)

			assert.False(t, res.Success)
			assert.Equal(t, tc.wantMsg, res.Message)
			assert.Equal(t, 0, client.callCount())
		})
	}
}

func TestAggregator_SkipsFailingCarrier(t *testing.T) {
	defer goleak.VerifyNone(t)

	client := &fakeClient{fn: func(_ context.Context, body RateRequest) ([]RawOption, error) {
		switch body.Shipment.Carrier {
		case "oca":
			return nil, ErrUnexpectedStatus
		default:
			return []RawOption{
				{Carrier: "andreani", Service: "ground", ServiceDescription: "Estándar", TotalPrice: 3100.5, Currency: "ARS", DeliveryEstimate: "2-4 días"},
				{Carrier: "andreani", Service: "express", TotalPrice: 5200},
			}, nil
		}
	}}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca", "andreani"}}, client)

	res := agg.GetShippingRates(context.Background(), testRequest())

	require.True(t, res.Success)
	require.Len(t, res.Options, 2)
	assert.Equal(t, "Estándar", res.Options[0].Service)
	assert.Equal(t, 3100.5, res.Options[0].Cost)
	assert.Equal(t, "express", res.Options[1].Service)
	assert.Equal(t, "N/A", res.Options[1].DeliveryEstimate)
	assert.Equal(t, "ARS", res.Options[1].Currency)
	assert.Equal(t, "andreani:express:5200.00:1", res.Options[1].Key)
	assert.Equal(t, 2, client.callCount())
}

func TestAggregator_PreservesCarrierOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	delays := map[string]time.Duration{"oca": 30 * time.Millisecond, "andreani": 0, "correoargentino": 10 * time.Millisecond}
	client := &fakeClient{fn: func(_ context.Context, body RateRequest) ([]RawOption, error) {
		time.Sleep(delays[body.Shipment.Carrier])
		return []RawOption{{Carrier: body.Shipment.Carrier, Service: "std", TotalPrice: 100}}, nil
	}}
	agg := newTestAggregator(Config{APIKey: "key"}, client)

	res := agg.GetShippingRates(context.Background(), testRequest(), "oca", "andreani", "correoargentino")

	require.True(t, res.Success)
	require.Len(t, res.Options, 3)
	assert.Equal(t, "oca", res.Options[0].Carrier)
	assert.Equal(t, "andreani", res.Options[1].Carrier)
	assert.Equal(t, "correoargentino", res.Options[2].Carrier)
}

func TestAggregator_EmptyIsSuccess(t *testing.T) {
	client := &fakeClient{fn: func(context.Context, RateRequest) ([]RawOption, error) {
		return nil, &APIError{Code: 1125, Message: "no coverage"}
	}}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca", "andreani"}}, client)

	res := agg.GetShippingRates(context.Background(), testRequest())

	assert.True(t, res.Success)
	assert.Empty(t, res.Options)
}

func TestAggregator_TimeoutSkipsCarrier(t *testing.T) {
	defer goleak.VerifyNone(t)

	client := &fakeClient{fn: func(ctx context.Context, body RateRequest) ([]RawOption, error) {
		if body.Shipment.Carrier == "oca" {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return []RawOption{{Carrier: "andreani", Service: "std", TotalPrice: 100}}, nil
	}}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca", "andreani"}, Timeout: 20 * time.Millisecond}, client)

	res := agg.GetShippingRates(context.Background(), testRequest())

	require.True(t, res.Success)
	require.Len(t, res.Options, 1)
	assert.Equal(t, "andreani", res.Options[0].Carrier)
}

func TestAggregator_NormalizesArgentineAddresses(t *testing.T) {
	client := &fakeClient{fn: func(context.Context, RateRequest) ([]RawOption, error) { return nil, nil }}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca"}}, client)

	agg.GetShippingRates(context.Background(), testRequest())

	require.Equal(t, 1, client.callCount())
	body := client.calls[0]
	assert.Equal(t, "BA", body.Origin.State)
	assert.Equal(t, "+541155551234", body.Origin.Phone)
	assert.Equal(t, "X", body.Destination.State)
	assert.Equal(t, 1, body.Shipment.Type)
	assert.Equal(t, "oca", body.Shipment.Carrier)
	assert.Equal(t, "CM", body.Packages[0].LengthUnit)
	assert.Equal(t, "KG", body.Packages[0].WeightUnit)
}

func TestAggregator_PanicBecomesFailure(t *testing.T) {
	client := &fakeClient{fn: func(context.Context, RateRequest) ([]RawOption, error) {
		panic("boom")
	}}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca"}}, client)

	res := agg.GetShippingRates(context.Background(), testRequest())

	assert.False(t, res.Success)
	assert.Equal(t, "boom", res.Message)
}

func TestAggregator_CanceledContext(t *testing.T) {
	client := &fakeClient{fn: func(ctx context.Context, _ RateRequest) ([]RawOption, error) {
		return nil, ctx.Err()
	}}
	agg := newTestAggregator(Config{APIKey: "key", Carriers: []string{"oca"}}, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := agg.GetShippingRates(ctx, testRequest())

	assert.False(t, res.Success)
	assert.True(t, errors.Is(ctx.Err(), context.Canceled))
	assert.Equal(t, context.Canceled.Error(), res.Message)
}

func TestToOption_DayDefaults(t *testing.T) {
	testCases := []struct {
		name string
		days *rawDays
		want *entities.DeliveryDays
	}{
		{name: "absent", days: nil, want: nil},
		{name: "only min", days: &rawDays{Min: intPtr(2)}, want: &entities.DeliveryDays{Min: 2, Max: 7}},
		{name: "only max", days: &rawDays{Max: intPtr(4)}, want: &entities.DeliveryDays{Min: 1, Max: 4}},
		{name: "both", days: &rawDays{Min: intPtr(3), Max: intPtr(5)}, want: &entities.DeliveryDays{Min: 3, Max: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opt := toOption(RawOption{Service: "std", DeliveryDays: tc.days}, "oca")
			assert.Equal(t, tc.want, opt.Days)
			assert.Equal(t, "oca", opt.Carrier)
		})
	}
}
