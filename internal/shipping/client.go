package shipping

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from rate api")
	ErrCarrierRejected  = errors.New("carrier rejected rate request")
)

// APIError is a carrier-level failure reported inside a rate response envelope.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rate api error %d: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrCarrierRejected
}

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the carrier-aggregation rate endpoint.
type Client struct {
	http *resty.Client
}

func NewClient(cfg ClientConfig) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// Rate requests quotes for a single carrier.
func (c *Client) Rate(ctx context.Context, body RateRequest) ([]RawOption, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/ship/rate")
	if err != nil {
		return nil, fmt.Errorf("failed to request rates: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode(), truncate(resp.String(), 256))
	}

	var out rateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}

	if out.Meta == metaError || out.Error != nil {
		apiErr := &APIError{}
		if out.Error != nil {
			apiErr.Code = out.Error.Code
			apiErr.Message = out.Error.Message
		}
		return nil, apiErr
	}

	return out.Data, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
