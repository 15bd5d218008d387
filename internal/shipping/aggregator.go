package shipping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rawandfun/barfer-service/internal/address"
	"github.com/rawandfun/barfer-service/internal/entities"
	"golang.org/x/sync/errgroup"
)

const (
	msgMissingAPIKey   = "shipping rate api key is not configured"
	msgCountryMismatch = "origin and destination must be in the same country"
)

type RateClient interface {
	Rate(ctx context.Context, body RateRequest) ([]RawOption, error)
}

type Config struct {
	APIKey   string
	Carriers []string
	// Timeout bounds each carrier call.
	Timeout time.Duration
}

type Aggregator struct {
	logger *slog.Logger
	cfg    Config
	client RateClient
}

func NewAggregator(logger *slog.Logger, cfg Config, client RateClient) *Aggregator {
	return &Aggregator{
		logger: logger.With(slog.String("service", "shipping")),
		cfg:    cfg,
		client: client,
	}
}

// GetShippingRates quotes the request with every carrier and returns the normalized options in
// carrier order. Carriers that fail are skipped; an empty list is still a success.
func (a *Aggregator) GetShippingRates(ctx context.Context, req entities.ShippingRateRequest, carriers ...string) (res entities.RateResponse) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "rate aggregation panicked", slog.Any("panic", r))
			res = entities.RateResponse{Success: false, Message: fmt.Sprint(r)}
		}
	}()

	if a.cfg.APIKey == "" {
		return entities.RateResponse{Success: false, Message: msgMissingAPIKey}
	}
	if !strings.EqualFold(req.Origin.Country, req.Destination.Country) {
		return entities.RateResponse{Success: false, Message: msgCountryMismatch}
	}

	req.Origin = address.Normalize(a.logger, req.Origin)
	req.Destination = address.Normalize(a.logger, req.Destination)

	if len(carriers) == 0 {
		carriers = a.cfg.Carriers
	}

	// one slot per carrier keeps the output in carrier order
	results := make([][]entities.ShippingOption, len(carriers))
	panics := make([]any, len(carriers))

	var g errgroup.Group
	for i, carrier := range carriers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					panics[i] = r
				}
			}()
			results[i] = a.quoteCarrier(ctx, req, carrier)
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}

	if err := ctx.Err(); err != nil {
		return entities.RateResponse{Success: false, Message: err.Error()}
	}

	options := make([]entities.ShippingOption, 0)
	for _, opts := range results {
		options = append(options, opts...)
	}
	for i := range options {
		options[i].Key = entities.OptionKey(options[i].Carrier, options[i].Service, options[i].Cost, i)
	}

	return entities.RateResponse{Success: true, Options: options}
}

func (a *Aggregator) quoteCarrier(ctx context.Context, req entities.ShippingRateRequest, carrier string) []entities.ShippingOption {
	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := a.client.Rate(ctx, newRateRequest(req, carrier))
	carrierRequestDuration.WithLabelValues(carrier).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "error"
		var apiErr *APIError
		switch {
		case errors.As(err, &apiErr):
			outcome = "rejected"
		case errors.Is(err, context.DeadlineExceeded):
			outcome = "timeout"
		}
		carrierRequestsTotal.WithLabelValues(carrier, outcome).Inc()
		a.logger.WarnContext(ctx, "carrier skipped",
			slog.String("carrier", carrier),
			slog.String("outcome", outcome),
			slog.Any("error", err),
		)
		return nil
	}

	carrierRequestsTotal.WithLabelValues(carrier, "ok").Inc()

	options := make([]entities.ShippingOption, 0, len(raw))
	for _, r := range raw {
		options = append(options, toOption(r, carrier))
	}
	return options
}
