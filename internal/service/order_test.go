package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/service"
	mocks "github.com/rawandfun/barfer-service/internal/service/mocks"
	"github.com/rawandfun/barfer-service/internal/shipping"
	txMocks "github.com/rawandfun/barfer-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passThroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()
	return tx
}

func TestOrderService_SaveOrder(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo)

	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		order        entities.Order
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:  "OK",
			order: entities.Order{ID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, "123", mock.Anything).Return(nil)
			},
		},
		{
			name:  "SaveOrder fails",
			order: entities.Order{ID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "SaveItems fails",
			order: entities.Order{ID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).
					Return(dbError)
			},
			wantErr: dbError,
		},
		{
			name:  "Retry works (first attempt fails, second succeeds)",
			order: entities.Order{ID: "123"},
			mockBehavior: func(orderRepo *mocks.MockOrderRepo) {
				// первая попытка - SaveOrder падает
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(errors.New("temporary error"))
				// вторая попытка - всё ок
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Once().Return(nil)
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo)

			svc := service.NewOrderService(logger, passThroughTx(t), orderRepo, cache, nil)

			err := svc.SaveOrder(context.Background(), tc.order)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

type quoterFunc func(ctx context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse

func (f quoterFunc) GetCheckoutShippingRates(ctx context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse {
	return f(ctx, items, destination, carriers...)
}

func staticQuote(res entities.RateResponse) quoterFunc {
	return func(context.Context, []entities.CartItem, entities.Address, ...string) entities.RateResponse {
		return res
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	liveQuote := entities.RateResponse{
		Success: true,
		Options: []entities.ShippingOption{
			{Carrier: "oca", Service: "Estándar", Cost: 2500, Currency: "ARS", Key: "oca:estándar:2500.00:0"},
			{Carrier: "andreani", Service: "Estándar", Cost: 3100, Currency: "ARS", Key: "andreani:estándar:3100.00:1"},
		},
	}
	items := []entities.OrderItem{
		{ProductID: "p1", Name: "Pollo 5kg", Quantity: 2, Price: 1000},
		{ProductID: "p2", Name: "Huesos", Quantity: 1, Price: 500},
	}
	withKey := func(key string) entities.Order {
		return entities.Order{
			Customer: entities.Address{Name: "Juan", City: "CABA", Country: "AR"},
			Items:    items,
			Shipping: entities.ShippingSelection{Key: key},
		}
	}

	testCases := []struct {
		name         string
		order        entities.Order
		quote        entities.RateResponse
		saveCalls    bool
		wantErr      error
		wantTotal    float64
		wantShipping entities.ShippingSelection
	}{
		{
			name:         "resolves selected option by key",
			order:        withKey("andreani:estándar:3100.00:1"),
			quote:        liveQuote,
			saveCalls:    true,
			wantTotal:    5600,
			wantShipping: entities.ShippingSelection{Carrier: "andreani", Service: "Estándar", Cost: 3100, Currency: "ARS", Key: "andreani:estándar:3100.00:1"},
		},
		{
			name: "client supplied carrier fields are replaced by the quote",
			order: func() entities.Order {
				o := withKey("oca:estándar:2500.00:0")
				o.Shipping.Carrier = "fake"
				o.Shipping.Cost = 1
				return o
			}(),
			quote:        liveQuote,
			saveCalls:    true,
			wantTotal:    5000,
			wantShipping: entities.ShippingSelection{Carrier: "oca", Service: "Estándar", Cost: 2500, Currency: "ARS", Key: "oca:estándar:2500.00:0"},
		},
		{
			name:      "fallback option selectable when carriers are down",
			order:     withKey(shipping.FallbackRates().Options[2].Key),
			quote:     entities.RateResponse{Success: false, Message: "missing API key"},
			saveCalls: true,
			wantTotal: 4300,
			wantShipping: entities.ShippingSelection{
				Carrier:  "Correo Argentino",
				Service:  "Clásico",
				Cost:     1800,
				Currency: "ARS",
				Key:      shipping.FallbackRates().Options[2].Key,
			},
		},
		{
			name:    "stale key",
			order:   withKey("oca:estándar:1999.00:0"),
			quote:   liveQuote,
			wantErr: entities.ErrShippingOptionNotFound,
		},
		{
			name:    "missing key",
			order:   withKey(""),
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "no items",
			order:   entities.Order{Shipping: entities.ShippingSelection{Key: "k"}},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "zero quantity",
			order: entities.Order{Items: []entities.OrderItem{
				{Name: "Pollo", Quantity: 0, Price: 100},
			}},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name: "negative price",
			order: entities.Order{Items: []entities.OrderItem{
				{Name: "Pollo", Quantity: 1, Price: -1},
			}},
			wantErr: entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			if tc.saveCalls {
				orderRepo.EXPECT().SaveOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
					return o.Status == entities.OrderPending && o.ID != "" && o.Shipping == tc.wantShipping
				})).Return(nil).Once()
				orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, tc.order.Items).Return(nil).Once()
			}

			svc := service.NewOrderService(logger, passThroughTx(t), orderRepo, cache, staticQuote(tc.quote))

			got, err := svc.CreateOrder(context.Background(), tc.order)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, entities.OrderPending, got.Status)
			assert.Equal(t, tc.wantTotal, got.Total)
			assert.Equal(t, tc.wantShipping, got.Shipping)
			assert.False(t, got.DateCreated.IsZero())
			assert.Equal(t, got.DateCreated, got.UpdatedAt)
		})
	}
}

func TestOrderService_CreateOrder_QuotesOrderCart(t *testing.T) {
	dims := &entities.Dimensions{Length: 30, Width: 20, Height: 15}
	order := entities.Order{
		Customer: entities.Address{Name: "Ana", City: "Rosario", State: "SF", Country: "AR", PostalCode: "2000"},
		Items: []entities.OrderItem{
			{ProductID: "p1", Name: "Pollo 5kg", Quantity: 2, Price: 1000, Weight: 5000, Dimensions: dims},
		},
		Shipping: entities.ShippingSelection{Key: "oca:estándar:2500.00:0"},
	}

	var gotItems []entities.CartItem
	var gotDest entities.Address
	quoter := quoterFunc(func(_ context.Context, items []entities.CartItem, destination entities.Address, _ ...string) entities.RateResponse {
		gotItems, gotDest = items, destination
		return entities.RateResponse{Success: true, Options: []entities.ShippingOption{
			{Carrier: "oca", Service: "Estándar", Cost: 2500, Currency: "ARS", Key: "oca:estándar:2500.00:0"},
		}}
	})

	orderRepo := mocks.NewMockOrderRepo(t)
	orderRepo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
	orderRepo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := service.NewOrderService(logger, passThroughTx(t), orderRepo, mocks.NewMockCache(t), quoter)
	_, err := svc.CreateOrder(context.Background(), order)
	require.NoError(t, err)

	assert.Equal(t, order.Customer, gotDest)
	require.Len(t, gotItems, 1)
	assert.Equal(t, entities.CartItem{
		ProductID: "p1", Name: "Pollo 5kg", Price: 1000, Quantity: 2, Weight: 5000, Dimensions: dims,
	}, gotItems[0])
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	validOrder := entities.Order{ID: "123", Status: entities.OrderConfirmed, Total: 1500}
	validData, err := validOrder.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name:    "success from cache",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(validData, true).Once()
			},
			want: validOrder,
		},
		{
			name:    "cache hit but unmarshal fails",
			orderID: "123",
			mockBehavior: func(_ *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return([]byte("broken"), true).Once()
			},
			wantErr: entities.ErrInvalidOrder,
		},
		{
			name:    "success from repo and set to cache",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
		{
			name:    "not found in repo is not retried",
			orderID: "not-exist",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("not-exist").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "not-exist").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:    "second attempt from repo",
			orderID: "123",
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().
					Get("123").
					Return(nil, false).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(entities.Order{}, errors.New("some error")).Once()
				orderRepo.EXPECT().
					GetOrderByID(mock.Anything, "123").
					Return(validOrder, nil).Once()
				cache.EXPECT().
					Set("123", validData).
					Return().Once()
			},
			want: validOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache, nil)

			got, err := svc.GetOrderByID(context.Background(), tc.orderID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	type MockBehavior func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache)

	testCases := []struct {
		name         string
		status       entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:   "updates and invalidates cache",
			status: entities.OrderConfirmed,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, "123", entities.OrderConfirmed, mock.AnythingOfType("time.Time")).
					Return(nil).Once()
				cache.EXPECT().Delete("123").Return().Once()
			},
		},
		{
			name:         "unknown status",
			status:       "shipped",
			mockBehavior: func(*mocks.MockOrderRepo, *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:   "not found",
			status: entities.OrderCancelled,
			mockBehavior: func(orderRepo *mocks.MockOrderRepo, _ *mocks.MockCache) {
				orderRepo.EXPECT().
					UpdateOrderStatus(mock.Anything, "123", entities.OrderCancelled, mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(orderRepo, cache)

			svc := service.NewOrderService(logger, tx, orderRepo, cache, nil)

			err := svc.UpdateOrderStatus(context.Background(), "123", tc.status)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("loads latest orders into cache", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		orders := []entities.Order{{ID: "a"}, {ID: "b"}}
		orderRepo.EXPECT().LatestOrders(mock.Anything, 10).Return(orders, nil).Once()
		cache.EXPECT().Set("a", mock.Anything).Return().Once()
		cache.EXPECT().Set("b", mock.Anything).Return().Once()

		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), orderRepo, cache, nil)
		require.NoError(t, svc.WarmUpCache(context.Background(), 10))
	})

	t.Run("repo error", func(t *testing.T) {
		orderRepo := mocks.NewMockOrderRepo(t)
		cache := mocks.NewMockCache(t)

		dbErr := errors.New("db down")
		orderRepo.EXPECT().LatestOrders(mock.Anything, 10).Return(nil, dbErr).Once()

		svc := service.NewOrderService(logger, txMocks.NewMockManager(t), orderRepo, cache, nil)
		assert.ErrorIs(t, svc.WarmUpCache(context.Background(), 10), dbErr)
	})
}
