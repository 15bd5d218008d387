package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "status", "customer_name", "customer_email", "customer_phone",
	"street", "number", "district", "city", "state", "country", "postal_code", "reference",
	"shipping_carrier", "shipping_service", "shipping_cost", "shipping_currency", "shipping_key",
	"notes", "total", "created_at", "updated_at",
}

var orderItemColumns = []string{
	"order_id", "position", "product_id", "name", "item_option", "quantity", "price",
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, order := range orders {
		ids[i] = order.ID
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, item := range items {
		itemsMap[item.OrderID] = append(itemsMap[item.OrderID], item)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order, itemsMap[order.ID]))
	}
	return result, nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": id}).
		OrderBy("position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, string(o.Status), o.Customer.Name, nullString(o.Customer.Email), nullString(o.Customer.Phone),
			o.Customer.Street, nullString(o.Customer.Number), nullString(o.Customer.District),
			o.Customer.City, o.Customer.State, o.Customer.Country, o.Customer.PostalCode, nullString(o.Customer.Reference),
			nullString(o.Shipping.Carrier), nullString(o.Shipping.Service), o.Shipping.Cost, nullString(o.Shipping.Currency),
			nullString(o.Shipping.Key),
			nullString(o.Notes), o.Total, o.DateCreated, o.UpdatedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns(orderItemColumns...).
		Suffix("ON CONFLICT (order_id, position) DO NOTHING")

	for i, it := range items {
		q = q.Values(orderID, i, nullString(it.ProductID), it.Name, nullString(it.Option), it.Quantity, it.Price)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus, at time.Time) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return affectedOne(res, entities.ErrOrderNotFound)
}
