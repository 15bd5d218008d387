package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rawandfun/barfer-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

func testConfig() config.Config {
	cfg := config.New()
	cfg.Http.Host = "127.0.0.1"
	cfg.Http.Port = "0"
	return cfg
}

func TestApplication_Routes(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	testCases := []struct {
		path       string
		wantStatus int
	}{
		{path: "/ping", wantStatus: http.StatusNoContent},
		{path: "/metrics", wantStatus: http.StatusOK},
		{path: "/missing", wantStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestApplication_StarterFailureAbortsStart(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	boom := errors.New("warm up failed")
	a.SetStarters(starterFunc(func(context.Context) error { return boom }))

	err := a.Start(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApplication_StartStop(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

	started := false
	a.SetStarters(starterFunc(func(context.Context) error {
		started = true
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))
	assert.True(t, started)
	require.NoError(t, a.Stop())
}
