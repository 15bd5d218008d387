package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/handler"
	mocks "github.com/rawandfun/barfer-service/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h interface{ Init(r chi.Router) }, method, target, body string) (int, string) {
	t.Helper()

	r := chi.NewRouter()
	h.Init(r)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res.StatusCode, string(data)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{ID: "123", Status: entities.OrderConfirmed}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"123"`,
		},
		{
			name:    "not found",
			orderID: "not-exist",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: "123",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), svc)
			status, body := serve(t, h, http.MethodGet, "/order/"+tc.orderID, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	const validBody = `{
		"customer": {"name":"Juan","street":"Av. Corrientes","number":"1234","city":"CABA","country":"AR","postalCode":"C1043"},
		"items": [{"name":"Pollo 5kg","quantity":2,"price":1000,"weight":5000,"dimensions":{"length":30,"width":20,"height":15}}],
		"shipping": {"key":"oca:estándar:2500.00:0"}
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return len(o.Items) == 1 &&
							o.Items[0].Weight == 5000 &&
							o.Items[0].Dimensions != nil && o.Items[0].Dimensions.Length == 30 &&
							o.Shipping == entities.ShippingSelection{Key: "oca:estándar:2500.00:0"} &&
							o.Customer.Country == "AR"
					})).
					Return(entities.Order{
						ID:     "new-id",
						Status: entities.OrderPending,
						Shipping: entities.ShippingSelection{
							Carrier: "oca", Service: "Estándar", Cost: 2500, Currency: "ARS", Key: "oca:estándar:2500.00:0",
						},
						Total: 4500,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"key":"oca:estándar:2500.00:0"`,
		},
		{
			name:         "missing shipping key",
			body:         `{"customer":{"name":"Juan","street":"x","city":"y","country":"AR","postalCode":"1000"},"items":[{"name":"Pollo","quantity":1,"price":1}],"shipping":{"carrier":"oca","service":"x","cost":1}}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"key":"required"`,
		},
		{
			name: "stale shipping key",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrShippingOptionNotFound).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `fetch rates again`,
		},
		{
			name:         "malformed json",
			body:         `{"customer":`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "no items",
			body:         `{"customer":{"name":"Juan","street":"x","city":"y","country":"AR","postalCode":"1000"},"items":[],"shipping":{"key":"k"}}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items":"min"`,
		},
		{
			name: "service rejects order",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidOrder).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), svc)
			status, body := serve(t, h, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "updated",
			body: `{"status":"confirmed"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.OrderConfirmed).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "unknown status",
			body:         `{"status":"shipped"}`,
			mockBehavior: func(*mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "not found",
			body: `{"status":"cancelled"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateOrderStatus(mock.Anything, "123", entities.OrderCancelled).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			h := handler.NewOrderHandler(discardLogger(), svc)
			status, _ := serve(t, h, http.MethodPatch, "/order/123/status", tc.body)

			assert.Equal(t, tc.wantStatus, status)
		})
	}
}
