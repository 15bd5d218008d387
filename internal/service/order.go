package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/shipping"
	"github.com/rawandfun/barfer-service/pkg/trm"
	"github.com/rawandfun/barfer-service/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, at time.Time) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type ShippingQuoter interface {
	GetCheckoutShippingRates(ctx context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	quoter    ShippingQuoter
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, quoter ShippingQuoter) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		quoter:    quoter,
		now:       time.Now,
	}
}

func (s *orderService) SaveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("order saved", "order_id", order.ID)
			return nil
		})
	}

	return utils.Retry(utils.DefaultRetry, fn)
}

// CreateOrder persists a new checkout order as pending. The shipping selection is resolved by key
// against the checkout quote for the same cart, and the total is recomputed from the items and
// that option.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if len(order.Items) == 0 {
		return entities.Order{}, fmt.Errorf("%w: order has no items", entities.ErrInvalidOrder)
	}
	for _, it := range order.Items {
		if it.Quantity < 1 || it.Price < 0 {
			return entities.Order{}, fmt.Errorf("%w: invalid item %q", entities.ErrInvalidOrder, it.Name)
		}
	}
	if order.Shipping.Key == "" {
		return entities.Order{}, fmt.Errorf("%w: missing shipping option key", entities.ErrInvalidOrder)
	}

	selection, err := s.resolveShipping(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	order.Shipping = selection

	now := s.now()
	order.ID = uuid.NewString()
	order.Status = entities.OrderPending
	order.DateCreated = now
	order.UpdatedAt = now
	order.Total = order.ComputeTotal()

	if err := s.SaveOrder(ctx, order); err != nil {
		return entities.Order{}, err
	}

	s.logger.InfoContext(ctx, "order created", slog.String("order_id", order.ID), slog.Float64("total", order.Total))
	return order, nil
}

// resolveShipping quotes the order's cart again and picks the option with the selected key.
// The static rates stand in when no live quote is available, as they do on the checkout page.
func (s *orderService) resolveShipping(ctx context.Context, order entities.Order) (entities.ShippingSelection, error) {
	res := s.quoter.GetCheckoutShippingRates(ctx, order.CartItems(), order.Customer)
	res, _ = shipping.WithFallback(res)

	opt, ok := res.FindOption(order.Shipping.Key)
	if !ok {
		s.logger.WarnContext(ctx, "shipping option not in current quote", slog.String("key", order.Shipping.Key))
		return entities.ShippingSelection{}, fmt.Errorf("%w: %q", entities.ErrShippingOptionNotFound, order.Shipping.Key)
	}

	return entities.ShippingSelection{
		Carrier:  opt.Carrier,
		Service:  opt.Service,
		Cost:     opt.Cost,
		Currency: opt.Currency,
		Key:      opt.Key,
	}, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if data, ok := s.cache.Get(id); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", id), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, id)
		return err
	}
	if err := utils.Retry(utils.DefaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", id), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(id, data)
	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", entities.ErrInvalidOrder, status)
	}

	fn := func() error {
		return s.repo.UpdateOrderStatus(ctx, id, status, s.now())
	}
	if err := utils.Retry(utils.DefaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return err
	}

	s.cache.Delete(id)
	s.logger.InfoContext(ctx, "order status updated", slog.String("order_id", id), slog.String("status", string(status)))
	return nil
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}

	for _, order := range orders {
		data, err := order.Marshal()
		if err != nil {
			s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
			continue
		}
		s.cache.Set(order.ID, data)
	}

	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}
