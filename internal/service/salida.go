package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rawandfun/barfer-service/internal/entities"
	"golang.org/x/sync/errgroup"
)

type SalidaRepo interface {
	CreateSalida(ctx context.Context, s entities.Salida) error
	UpdateSalida(ctx context.Context, s entities.Salida) error
	DeleteSalida(ctx context.Context, id string) error
	GetSalida(ctx context.Context, id string) (entities.Salida, error)
	ListSalidas(ctx context.Context, f entities.SalidaFilter) ([]entities.Salida, error)
}

type LookupRepo interface {
	ListCategorias(ctx context.Context) ([]entities.Categoria, error)
	CreateCategoria(ctx context.Context, c entities.Categoria) error
	ListMetodosPago(ctx context.Context) ([]entities.MetodoPago, error)
	CreateMetodoPago(ctx context.Context, m entities.MetodoPago) error
	ListProveedores(ctx context.Context) ([]entities.Proveedor, error)
	CreateProveedor(ctx context.Context, p entities.Proveedor) error
	ListCategoriasProveedores(ctx context.Context) ([]entities.CategoriaProveedor, error)
}

type salidaService struct {
	logger  *slog.Logger
	repo    SalidaRepo
	lookups LookupRepo
	now     func() time.Time
}

func NewSalidaService(logger *slog.Logger, repo SalidaRepo, lookups LookupRepo) *salidaService {
	return &salidaService{
		logger:  logger.With(slog.String("service", "salida")),
		repo:    repo,
		lookups: lookups,
		now:     time.Now,
	}
}

// ValidateSalida applies the ledger policy: known type and register, positive amount,
// known brand or none.
func ValidateSalida(s entities.Salida) error {
	switch {
	case s.Fecha.IsZero():
		return fmt.Errorf("%w: fecha is required", entities.ErrInvalidSalida)
	case strings.TrimSpace(s.Detalle) == "":
		return fmt.Errorf("%w: detalle is required", entities.ErrInvalidSalida)
	case s.Tipo != entities.SalidaOrdinaria && s.Tipo != entities.SalidaExtraordinaria:
		return fmt.Errorf("%w: unknown tipo %q", entities.ErrInvalidSalida, s.Tipo)
	case s.TipoRegistro != entities.RegistroBlanco && s.TipoRegistro != entities.RegistroNegro:
		return fmt.Errorf("%w: unknown tipo de registro %q", entities.ErrInvalidSalida, s.TipoRegistro)
	case s.Marca != "" && s.Marca != entities.BrandBarfer && s.Marca != entities.BrandRawAndFun:
		return fmt.Errorf("%w: unknown marca %q", entities.ErrInvalidSalida, s.Marca)
	case s.Monto <= 0:
		return fmt.Errorf("%w: monto must be positive", entities.ErrInvalidSalida)
	case s.CategoriaID == "":
		return fmt.Errorf("%w: categoria is required", entities.ErrInvalidSalida)
	case s.MetodoPagoID == "":
		return fmt.Errorf("%w: metodo de pago is required", entities.ErrInvalidSalida)
	}
	return nil
}

func (s *salidaService) CreateSalida(ctx context.Context, salida entities.Salida) (entities.Salida, error) {
	if err := ValidateSalida(salida); err != nil {
		return entities.Salida{}, err
	}

	now := s.now()
	salida.ID = uuid.NewString()
	salida.CreatedAt = now
	salida.UpdatedAt = now

	if err := s.repo.CreateSalida(ctx, salida); err != nil {
		return entities.Salida{}, err
	}

	s.logger.InfoContext(ctx, "salida created", slog.String("salida_id", salida.ID), slog.Float64("monto", salida.Monto))
	return salida, nil
}

func (s *salidaService) UpdateSalida(ctx context.Context, salida entities.Salida) (entities.Salida, error) {
	if err := ValidateSalida(salida); err != nil {
		return entities.Salida{}, err
	}

	salida.UpdatedAt = s.now()
	if err := s.repo.UpdateSalida(ctx, salida); err != nil {
		return entities.Salida{}, err
	}

	return s.repo.GetSalida(ctx, salida.ID)
}

func (s *salidaService) DeleteSalida(ctx context.Context, id string) error {
	if err := s.repo.DeleteSalida(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "salida deleted", slog.String("salida_id", id))
	return nil
}

func (s *salidaService) GetSalida(ctx context.Context, id string) (entities.SalidaView, error) {
	salida, err := s.repo.GetSalida(ctx, id)
	if err != nil {
		return entities.SalidaView{}, err
	}

	names, err := s.loadNames(ctx)
	if err != nil {
		return entities.SalidaView{}, err
	}
	return names.view(salida), nil
}

func (s *salidaService) ListSalidas(ctx context.Context, f entities.SalidaFilter) ([]entities.SalidaView, error) {
	if f.From != nil && f.To != nil && f.From.After(*f.To) {
		return nil, entities.ErrInvalidDateSpan
	}

	salidas, err := s.repo.ListSalidas(ctx, f)
	if err != nil {
		return nil, err
	}

	names, err := s.loadNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.SalidaView, 0, len(salidas))
	for _, salida := range salidas {
		out = append(out, names.view(salida))
	}
	return out, nil
}

type lookupNames struct {
	categorias  map[string]string
	metodos     map[string]string
	proveedores map[string]string
}

// view resolves foreign references. Dangling ids resolve to an empty name.
func (n lookupNames) view(s entities.Salida) entities.SalidaView {
	return entities.SalidaView{
		Salida:     s,
		Categoria:  n.categorias[s.CategoriaID],
		MetodoPago: n.metodos[s.MetodoPagoID],
		Proveedor:  n.proveedores[s.ProveedorID],
	}
}

func (s *salidaService) loadNames(ctx context.Context) (lookupNames, error) {
	var (
		categorias  []entities.Categoria
		metodos     []entities.MetodoPago
		proveedores []entities.Proveedor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categorias, err = s.lookups.ListCategorias(gctx)
		return err
	})
	g.Go(func() (err error) {
		metodos, err = s.lookups.ListMetodosPago(gctx)
		return err
	})
	g.Go(func() (err error) {
		proveedores, err = s.lookups.ListProveedores(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return lookupNames{}, fmt.Errorf("failed to load salida lookups: %w", err)
	}

	names := lookupNames{
		categorias:  make(map[string]string, len(categorias)),
		metodos:     make(map[string]string, len(metodos)),
		proveedores: make(map[string]string, len(proveedores)),
	}
	for _, c := range categorias {
		names.categorias[c.ID] = c.Nombre
	}
	for _, m := range metodos {
		names.metodos[m.ID] = m.Nombre
	}
	for _, p := range proveedores {
		names.proveedores[p.ID] = p.Nombre
	}
	return names, nil
}

func (s *salidaService) ListCategorias(ctx context.Context) ([]entities.Categoria, error) {
	return s.lookups.ListCategorias(ctx)
}

func (s *salidaService) CreateCategoria(ctx context.Context, nombre string) (entities.Categoria, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return entities.Categoria{}, fmt.Errorf("%w: nombre is required", entities.ErrInvalidSalida)
	}
	c := entities.Categoria{ID: uuid.NewString(), Nombre: strings.ToUpper(nombre), CreatedAt: s.now()}
	if err := s.lookups.CreateCategoria(ctx, c); err != nil {
		return entities.Categoria{}, err
	}
	return c, nil
}

func (s *salidaService) ListMetodosPago(ctx context.Context) ([]entities.MetodoPago, error) {
	return s.lookups.ListMetodosPago(ctx)
}

func (s *salidaService) CreateMetodoPago(ctx context.Context, nombre string) (entities.MetodoPago, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return entities.MetodoPago{}, fmt.Errorf("%w: nombre is required", entities.ErrInvalidSalida)
	}
	m := entities.MetodoPago{ID: uuid.NewString(), Nombre: strings.ToUpper(nombre), CreatedAt: s.now()}
	if err := s.lookups.CreateMetodoPago(ctx, m); err != nil {
		return entities.MetodoPago{}, err
	}
	return m, nil
}

func (s *salidaService) ListProveedores(ctx context.Context) ([]entities.Proveedor, error) {
	return s.lookups.ListProveedores(ctx)
}

func (s *salidaService) CreateProveedor(ctx context.Context, p entities.Proveedor) (entities.Proveedor, error) {
	p.Nombre = strings.TrimSpace(p.Nombre)
	if p.Nombre == "" {
		return entities.Proveedor{}, fmt.Errorf("%w: nombre is required", entities.ErrInvalidSalida)
	}
	p.ID = uuid.NewString()
	p.Activo = true
	p.CreatedAt = s.now()
	if err := s.lookups.CreateProveedor(ctx, p); err != nil {
		return entities.Proveedor{}, err
	}
	return p, nil
}

func (s *salidaService) ListCategoriasProveedores(ctx context.Context) ([]entities.CategoriaProveedor, error) {
	return s.lookups.ListCategoriasProveedores(ctx)
}
