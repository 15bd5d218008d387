package repo

import (
	"context"
	"fmt"

	"github.com/rawandfun/barfer-service/internal/entities"
)

const (
	tableCategoriasSalidas     = "categorias_salidas"
	tableMetodosPago           = "metodos_pago"
	tableCategoriasProveedores = "categorias_proveedores"
	tableProveedores           = "proveedores"
)

func (r *postgresRepo) listNamed(ctx context.Context, table string) ([]Named, error) {
	query, args := r.qb.Select("id", "nombre", "created_at").
		From(table).
		OrderBy("nombre").
		MustSql()

	var rows []Named
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return rows, nil
}

func (r *postgresRepo) createNamed(ctx context.Context, table string, n Named) error {
	query, args := r.qb.Insert(table).
		Columns("id", "nombre", "created_at").
		Values(n.ID, n.Nombre, n.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return nil
}

func (r *postgresRepo) ListCategorias(ctx context.Context) ([]entities.Categoria, error) {
	rows, err := r.listNamed(ctx, tableCategoriasSalidas)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Categoria, 0, len(rows))
	for _, n := range rows {
		out = append(out, entities.Categoria{ID: n.ID, Nombre: n.Nombre, CreatedAt: n.CreatedAt})
	}
	return out, nil
}

func (r *postgresRepo) CreateCategoria(ctx context.Context, c entities.Categoria) error {
	return r.createNamed(ctx, tableCategoriasSalidas, Named{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt})
}

func (r *postgresRepo) ListMetodosPago(ctx context.Context) ([]entities.MetodoPago, error) {
	rows, err := r.listNamed(ctx, tableMetodosPago)
	if err != nil {
		return nil, err
	}
	out := make([]entities.MetodoPago, 0, len(rows))
	for _, n := range rows {
		out = append(out, entities.MetodoPago{ID: n.ID, Nombre: n.Nombre, CreatedAt: n.CreatedAt})
	}
	return out, nil
}

func (r *postgresRepo) CreateMetodoPago(ctx context.Context, m entities.MetodoPago) error {
	return r.createNamed(ctx, tableMetodosPago, Named{ID: m.ID, Nombre: m.Nombre, CreatedAt: m.CreatedAt})
}

func (r *postgresRepo) ListCategoriasProveedores(ctx context.Context) ([]entities.CategoriaProveedor, error) {
	rows, err := r.listNamed(ctx, tableCategoriasProveedores)
	if err != nil {
		return nil, err
	}
	out := make([]entities.CategoriaProveedor, 0, len(rows))
	for _, n := range rows {
		out = append(out, entities.CategoriaProveedor{ID: n.ID, Nombre: n.Nombre, CreatedAt: n.CreatedAt})
	}
	return out, nil
}

func (r *postgresRepo) ListProveedores(ctx context.Context) ([]entities.Proveedor, error) {
	query, args := r.qb.Select("id", "nombre", "detalle", "telefono", "categoria_id", "activo", "created_at").
		From(tableProveedores).
		OrderBy("nombre").
		MustSql()

	var rows []Proveedor
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list proveedores: %w", err)
	}

	out := make([]entities.Proveedor, 0, len(rows))
	for _, p := range rows {
		out = append(out, ProveedorToEntity(p))
	}
	return out, nil
}

func (r *postgresRepo) CreateProveedor(ctx context.Context, p entities.Proveedor) error {
	query, args := r.qb.Insert(tableProveedores).
		Columns("id", "nombre", "detalle", "telefono", "categoria_id", "activo", "created_at").
		Values(p.ID, p.Nombre, nullString(p.Detalle), nullString(p.Telefono), nullString(p.CategoriaID), p.Activo, p.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to create proveedor: %w", err)
	}
	return nil
}
