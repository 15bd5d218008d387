package utils_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rawandfun/barfer-service/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Monto       float64 `json:"monto" validate:"gt=0"`
	CategoriaID string  `json:"categoriaId,omitempty" validate:"required"`
	Internal    string  `json:"-" validate:"required"`
}

func TestWriteValidationError_UsesJSONNames(t *testing.T) {
	err := utils.NewValidator().Struct(payload{})
	require.Error(t, err)

	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteValidationError(rr, err))

	var res utils.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "gt", res.Fields["monto"])
	assert.Equal(t, "required", res.Fields["categoriaId"])
}

func TestDecodeBody(t *testing.T) {
	t.Run("decodes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"monto":10}`))
		var p payload
		require.NoError(t, utils.DecodeBody(req, &p))
		assert.Equal(t, 10.0, p.Monto)
	})

	t.Run("rejects oversized body", func(t *testing.T) {
		big := `{"categoriaId":"` + strings.Repeat("a", 2<<20) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
		var p payload
		assert.Error(t, utils.DecodeBody(req, &p))
	})
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, utils.WriteError(rr, "order not found", http.StatusNotFound))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"order not found"}`, rr.Body.String())
}
