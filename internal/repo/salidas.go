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

var salidaColumns = []string{
	"id", "fecha", "detalle", "tipo", "marca", "monto", "tipo_registro",
	"categoria_id", "metodo_pago_id", "proveedor_id", "fecha_pago", "numero_comprobante",
	"created_at", "updated_at",
}

func (r *postgresRepo) CreateSalida(ctx context.Context, s entities.Salida) error {
	query, args := r.qb.Insert("salidas").
		Columns(salidaColumns...).
		Values(
			s.ID, s.Fecha, s.Detalle, string(s.Tipo), nullString(string(s.Marca)), s.Monto, string(s.TipoRegistro),
			s.CategoriaID, s.MetodoPagoID, nullString(s.ProveedorID), nullTime(s.FechaPago), nullString(s.NumeroComprobante),
			s.CreatedAt, s.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create salida: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateSalida(ctx context.Context, s entities.Salida) error {
	query, args := r.qb.Update("salidas").
		SetMap(map[string]any{
			"fecha":              s.Fecha,
			"detalle":            s.Detalle,
			"tipo":               string(s.Tipo),
			"marca":              nullString(string(s.Marca)),
			"monto":              s.Monto,
			"tipo_registro":      string(s.TipoRegistro),
			"categoria_id":       s.CategoriaID,
			"metodo_pago_id":     s.MetodoPagoID,
			"proveedor_id":       nullString(s.ProveedorID),
			"fecha_pago":         nullTime(s.FechaPago),
			"numero_comprobante": nullString(s.NumeroComprobante),
			"updated_at":         s.UpdatedAt,
		}).
		Where(sq.Eq{"id": s.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update salida: %w", err)
	}
	return affectedOne(res, entities.ErrSalidaNotFound)
}

func (r *postgresRepo) DeleteSalida(ctx context.Context, id string) error {
	query, args := r.qb.Delete("salidas").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete salida: %w", err)
	}
	return affectedOne(res, entities.ErrSalidaNotFound)
}

func (r *postgresRepo) GetSalida(ctx context.Context, id string) (entities.Salida, error) {
	query, args := r.qb.Select(salidaColumns...).
		From("salidas").
		Where(sq.Eq{"id": id}).
		MustSql()

	var s Salida
	err := r.getContext(ctx, &s, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Salida{}, entities.ErrSalidaNotFound
	}
	if err != nil {
		return entities.Salida{}, fmt.Errorf("failed to get salida: %w", err)
	}
	return SalidaToEntity(s), nil
}

func (r *postgresRepo) ListSalidas(ctx context.Context, f entities.SalidaFilter) ([]entities.Salida, error) {
	q := r.qb.Select(salidaColumns...).
		From("salidas").
		OrderBy("fecha DESC", "created_at DESC")

	if f.From != nil {
		q = q.Where(sq.GtOrEq{"fecha": f.From.Format(time.DateOnly)})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{"fecha": f.To.Format(time.DateOnly)})
	}
	if f.Tipo != "" {
		q = q.Where(sq.Eq{"tipo": string(f.Tipo)})
	}
	if f.TipoRegistro != "" {
		q = q.Where(sq.Eq{"tipo_registro": string(f.TipoRegistro)})
	}
	if f.CategoriaID != "" {
		q = q.Where(sq.Eq{"categoria_id": f.CategoriaID})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	query, args := q.MustSql()

	var rows []Salida
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list salidas: %w", err)
	}

	out := make([]entities.Salida, 0, len(rows))
	for _, s := range rows {
		out = append(out, SalidaToEntity(s))
	}
	return out, nil
}
