package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// MonthlyRevenue sums confirmed orders per calendar month of their creation time in r.loc.
func (r *postgresRepo) MonthlyRevenue(ctx context.Context, from, to time.Time) ([]entities.MonthlyRevenue, error) {
	query, args := r.qb.Select().
		Column(sq.Expr("to_char(o.created_at AT TIME ZONE ?, 'YYYY-MM') AS month", r.loc.String())).
		Column("COALESCE(SUM(o.total), 0) AS total").
		Column("COUNT(*) AS orders").
		Column("COALESCE(SUM(ic.items), 0) AS line_items").
		From("orders o").
		LeftJoin("(SELECT order_id, COUNT(*) AS items FROM order_items GROUP BY order_id) ic ON ic.order_id = o.id").
		Where(sq.Eq{"o.status": string(entities.OrderConfirmed)}).
		Where(sq.GtOrEq{"o.created_at": from}).
		Where(sq.LtOrEq{"o.created_at": to}).
		GroupBy("1").
		OrderBy("1").
		MustSql()

	var rows []MonthlyRevenue
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly revenue: %w", err)
	}

	out := make([]entities.MonthlyRevenue, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.MonthlyRevenue{
			Month:     row.Month,
			Total:     row.Total,
			Orders:    row.Orders,
			LineItems: row.LineItems,
		})
	}
	return out, nil
}

// MonthlyExpenses sums salidas per invoice month, type and brand tag.
func (r *postgresRepo) MonthlyExpenses(ctx context.Context, from, to time.Time) ([]entities.MonthlyExpense, error) {
	query, args := r.qb.Select(
		"to_char(fecha, 'YYYY-MM') AS month",
		"tipo",
		"COALESCE(marca, '') AS marca",
		"COALESCE(SUM(monto), 0) AS total",
	).
		From("salidas").
		Where(sq.GtOrEq{"fecha": from.In(r.loc).Format(time.DateOnly)}).
		Where(sq.LtOrEq{"fecha": to.In(r.loc).Format(time.DateOnly)}).
		GroupBy("1", "2", "3").
		OrderBy("1").
		MustSql()

	var rows []MonthlyExpense
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly expenses: %w", err)
	}

	out := make([]entities.MonthlyExpense, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.MonthlyExpense{
			Month: row.Month,
			Tipo:  entities.SalidaTipo(row.Tipo),
			Marca: row.Marca,
			Total: row.Total,
		})
	}
	return out, nil
}
