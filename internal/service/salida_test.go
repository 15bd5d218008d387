package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/service"
	mocks "github.com/rawandfun/barfer-service/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSalida() entities.Salida {
	return entities.Salida{
		Fecha:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Detalle:      "Compra de carne",
		Tipo:         entities.SalidaOrdinaria,
		Marca:        entities.BrandBarfer,
		Monto:        45000,
		TipoRegistro: entities.RegistroBlanco,
		CategoriaID:  "cat-1",
		MetodoPagoID: "mp-1",
		ProveedorID:  "prov-1",
	}
}

func expectLookups(lookups *mocks.MockLookupRepo) {
	lookups.EXPECT().ListCategorias(mock.Anything).
		Return([]entities.Categoria{{ID: "cat-1", Nombre: "MATERIA PRIMA"}}, nil).Once()
	lookups.EXPECT().ListMetodosPago(mock.Anything).
		Return([]entities.MetodoPago{{ID: "mp-1", Nombre: "TRANSFERENCIA"}}, nil).Once()
	lookups.EXPECT().ListProveedores(mock.Anything).
		Return([]entities.Proveedor{{ID: "prov-1", Nombre: "Frigorífico Sur"}}, nil).Once()
}

func TestValidateSalida(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(s *entities.Salida)
		wantErr bool
	}{
		{name: "valid", modify: func(*entities.Salida) {}},
		{name: "no brand is allowed", modify: func(s *entities.Salida) { s.Marca = "" }},
		{name: "raw and fun", modify: func(s *entities.Salida) { s.Marca = entities.BrandRawAndFun }},
		{name: "unknown brand", modify: func(s *entities.Salida) { s.Marca = "OTRA" }, wantErr: true},
		{name: "unknown tipo", modify: func(s *entities.Salida) { s.Tipo = "MENSUAL" }, wantErr: true},
		{name: "unknown registro", modify: func(s *entities.Salida) { s.TipoRegistro = "GRIS" }, wantErr: true},
		{name: "zero monto", modify: func(s *entities.Salida) { s.Monto = 0 }, wantErr: true},
		{name: "negative monto", modify: func(s *entities.Salida) { s.Monto = -10 }, wantErr: true},
		{name: "missing fecha", modify: func(s *entities.Salida) { s.Fecha = time.Time{} }, wantErr: true},
		{name: "blank detalle", modify: func(s *entities.Salida) { s.Detalle = "  " }, wantErr: true},
		{name: "missing categoria", modify: func(s *entities.Salida) { s.CategoriaID = "" }, wantErr: true},
		{name: "missing metodo de pago", modify: func(s *entities.Salida) { s.MetodoPagoID = "" }, wantErr: true},
		{name: "provider optional", modify: func(s *entities.Salida) { s.ProveedorID = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSalida()
			tc.modify(&s)

			err := service.ValidateSalida(s)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidSalida)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSalidaService_CreateSalida(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("assigns id and timestamps", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)
		repo.EXPECT().CreateSalida(mock.Anything, mock.MatchedBy(func(s entities.Salida) bool {
			return s.ID != "" && !s.CreatedAt.IsZero() && s.CreatedAt.Equal(s.UpdatedAt)
		})).Return(nil).Once()

		svc := service.NewSalidaService(logger, repo, lookups)
		got, err := svc.CreateSalida(context.Background(), validSalida())
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, 45000.0, got.Monto)
	})

	t.Run("invalid salida never reaches repo", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		s := validSalida()
		s.Monto = 0

		svc := service.NewSalidaService(logger, repo, lookups)
		_, err := svc.CreateSalida(context.Background(), s)
		assert.ErrorIs(t, err, entities.ErrInvalidSalida)
	})
}

func TestSalidaService_UpdateSalida(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("returns refreshed record", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		s := validSalida()
		s.ID = "s-1"
		stored := s
		stored.Monto = 50000

		repo.EXPECT().UpdateSalida(mock.Anything, mock.MatchedBy(func(in entities.Salida) bool {
			return in.ID == "s-1" && !in.UpdatedAt.IsZero()
		})).Return(nil).Once()
		repo.EXPECT().GetSalida(mock.Anything, "s-1").Return(stored, nil).Once()

		svc := service.NewSalidaService(logger, repo, lookups)
		got, err := svc.UpdateSalida(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		s := validSalida()
		s.ID = "missing"
		repo.EXPECT().UpdateSalida(mock.Anything, mock.Anything).Return(entities.ErrSalidaNotFound).Once()

		svc := service.NewSalidaService(logger, repo, lookups)
		_, err := svc.UpdateSalida(context.Background(), s)
		assert.ErrorIs(t, err, entities.ErrSalidaNotFound)
	})
}

func TestSalidaService_DeleteSalida(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := mocks.NewMockSalidaRepo(t)
	lookups := mocks.NewMockLookupRepo(t)

	repo.EXPECT().DeleteSalida(mock.Anything, "s-1").Return(nil).Once()
	repo.EXPECT().DeleteSalida(mock.Anything, "s-2").Return(entities.ErrSalidaNotFound).Once()

	svc := service.NewSalidaService(logger, repo, lookups)
	assert.NoError(t, svc.DeleteSalida(context.Background(), "s-1"))
	assert.ErrorIs(t, svc.DeleteSalida(context.Background(), "s-2"), entities.ErrSalidaNotFound)
}

func TestSalidaService_GetSalida(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := mocks.NewMockSalidaRepo(t)
	lookups := mocks.NewMockLookupRepo(t)

	s := validSalida()
	s.ID = "s-1"
	repo.EXPECT().GetSalida(mock.Anything, "s-1").Return(s, nil).Once()
	expectLookups(lookups)

	svc := service.NewSalidaService(logger, repo, lookups)
	got, err := svc.GetSalida(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "MATERIA PRIMA", got.Categoria)
	assert.Equal(t, "TRANSFERENCIA", got.MetodoPago)
	assert.Equal(t, "Frigorífico Sur", got.Proveedor)
	assert.Equal(t, s, got.Salida)
}

func TestSalidaService_ListSalidas(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("joins names and tolerates dangling ids", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		known := validSalida()
		known.ID = "s-1"
		dangling := validSalida()
		dangling.ID = "s-2"
		dangling.CategoriaID = "deleted"
		dangling.ProveedorID = ""

		filter := entities.SalidaFilter{Tipo: entities.SalidaOrdinaria}
		repo.EXPECT().ListSalidas(mock.Anything, filter).Return([]entities.Salida{known, dangling}, nil).Once()
		expectLookups(lookups)

		svc := service.NewSalidaService(logger, repo, lookups)
		got, err := svc.ListSalidas(context.Background(), filter)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "MATERIA PRIMA", got[0].Categoria)
		assert.Empty(t, got[1].Categoria)
		assert.Empty(t, got[1].Proveedor)
		assert.Equal(t, "TRANSFERENCIA", got[1].MetodoPago)
	})

	t.Run("inverted window", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

		svc := service.NewSalidaService(logger, repo, lookups)
		_, err := svc.ListSalidas(context.Background(), entities.SalidaFilter{From: &from, To: &to})
		assert.ErrorIs(t, err, entities.ErrInvalidDateSpan)
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		repo := mocks.NewMockSalidaRepo(t)
		lookups := mocks.NewMockLookupRepo(t)

		lookupErr := errors.New("lookup failed")
		repo.EXPECT().ListSalidas(mock.Anything, mock.Anything).Return([]entities.Salida{validSalida()}, nil).Once()
		lookups.EXPECT().ListCategorias(mock.Anything).Return(nil, lookupErr).Once()
		lookups.EXPECT().ListMetodosPago(mock.Anything).Return(nil, nil).Maybe()
		lookups.EXPECT().ListProveedores(mock.Anything).Return(nil, nil).Maybe()

		svc := service.NewSalidaService(logger, repo, lookups)
		_, err := svc.ListSalidas(context.Background(), entities.SalidaFilter{})
		assert.ErrorIs(t, err, lookupErr)
	})
}

func TestSalidaService_Lookups(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("create categoria uppercases name", func(t *testing.T) {
		lookups := mocks.NewMockLookupRepo(t)
		lookups.EXPECT().CreateCategoria(mock.Anything, mock.MatchedBy(func(c entities.Categoria) bool {
			return c.Nombre == "LOGISTICA" && c.ID != ""
		})).Return(nil).Once()

		svc := service.NewSalidaService(logger, mocks.NewMockSalidaRepo(t), lookups)
		got, err := svc.CreateCategoria(context.Background(), " logistica ")
		require.NoError(t, err)
		assert.Equal(t, "LOGISTICA", got.Nombre)
	})

	t.Run("create metodo de pago rejects blank", func(t *testing.T) {
		svc := service.NewSalidaService(logger, mocks.NewMockSalidaRepo(t), mocks.NewMockLookupRepo(t))
		_, err := svc.CreateMetodoPago(context.Background(), "")
		assert.ErrorIs(t, err, entities.ErrInvalidSalida)
	})

	t.Run("create proveedor is active", func(t *testing.T) {
		lookups := mocks.NewMockLookupRepo(t)
		lookups.EXPECT().CreateProveedor(mock.Anything, mock.MatchedBy(func(p entities.Proveedor) bool {
			return p.Activo && p.Nombre == "Frigorífico Sur"
		})).Return(nil).Once()

		svc := service.NewSalidaService(logger, mocks.NewMockSalidaRepo(t), lookups)
		got, err := svc.CreateProveedor(context.Background(), entities.Proveedor{Nombre: "Frigorífico Sur", CategoriaID: "cp-1"})
		require.NoError(t, err)
		assert.True(t, got.Activo)
		assert.Equal(t, "cp-1", got.CategoriaID)
	})

	t.Run("list categorias proveedores", func(t *testing.T) {
		lookups := mocks.NewMockLookupRepo(t)
		lookups.EXPECT().ListCategoriasProveedores(mock.Anything).
			Return([]entities.CategoriaProveedor{{ID: "cp-1", Nombre: "CARNES"}}, nil).Once()

		svc := service.NewSalidaService(logger, mocks.NewMockSalidaRepo(t), lookups)
		got, err := svc.ListCategoriasProveedores(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}
