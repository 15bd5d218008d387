package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/pkg/utils"
)

type SalidaService interface {
	CreateSalida(ctx context.Context, s entities.Salida) (entities.Salida, error)
	UpdateSalida(ctx context.Context, s entities.Salida) (entities.Salida, error)
	DeleteSalida(ctx context.Context, id string) error
	GetSalida(ctx context.Context, id string) (entities.SalidaView, error)
	ListSalidas(ctx context.Context, f entities.SalidaFilter) ([]entities.SalidaView, error)

	ListCategorias(ctx context.Context) ([]entities.Categoria, error)
	CreateCategoria(ctx context.Context, nombre string) (entities.Categoria, error)
	ListMetodosPago(ctx context.Context) ([]entities.MetodoPago, error)
	CreateMetodoPago(ctx context.Context, nombre string) (entities.MetodoPago, error)
	ListProveedores(ctx context.Context) ([]entities.Proveedor, error)
	CreateProveedor(ctx context.Context, p entities.Proveedor) (entities.Proveedor, error)
	ListCategoriasProveedores(ctx context.Context) ([]entities.CategoriaProveedor, error)
}

type SalidaHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      SalidaService
}

func NewSalidaHandler(logger *slog.Logger, svc SalidaService) *SalidaHandler {
	return &SalidaHandler{
		logger:   logger.With(slog.String("handler", "salida")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *SalidaHandler) Init(r chi.Router) {
	r.Route("/salidas", func(r chi.Router) {
		r.Get("/", h.ListSalidas)
		r.Post("/", h.CreateSalida)
		r.Get("/{id}", h.GetSalida)
		r.Put("/{id}", h.UpdateSalida)
		r.Delete("/{id}", h.DeleteSalida)
	})

	r.Get("/categorias-salidas", h.ListCategorias)
	r.Post("/categorias-salidas", h.CreateCategoria)
	r.Get("/metodos-pago", h.ListMetodosPago)
	r.Post("/metodos-pago", h.CreateMetodoPago)
	r.Get("/proveedores", h.ListProveedores)
	r.Post("/proveedores", h.CreateProveedor)
	r.Get("/categorias-proveedores", h.ListCategoriasProveedores)
}

// writeServiceError maps ledger errors to status codes.
// writeServiceError maps a service error to a response and returns the result label for metrics.
func (h *SalidaHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) string {
	switch {
	case errors.Is(err, entities.ErrSalidaNotFound):
		utils.WriteError(w, "salida not found", http.StatusNotFound)
		return "not_found"
	case errors.Is(err, entities.ErrInvalidSalida), errors.Is(err, entities.ErrInvalidDateSpan):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return "invalid"
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return "error"
	}
}

// ListSalidas возвращает расходы.
// @Summary      Список расходов
// @Tags         salidas
// @Produce      json
// @Param        from          query     string  false  "С даты, YYYY-MM-DD"
// @Param        to            query     string  false  "По дату включительно, YYYY-MM-DD"
// @Param        tipo          query     string  false  "ORDINARIO или EXTRAORDINARIO"
// @Param        tipoRegistro  query     string  false  "BLANCO или NEGRO"
// @Param        categoriaId   query     string  false  "Категория"
// @Param        limit         query     int     false  "Лимит"
// @Param        offset        query     int     false  "Смещение"
// @Success      200  {array}   Salida
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /salidas [get]
func (h *SalidaHandler) ListSalidas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	from, err := parseDate(q.Get("from"), time.UTC, false)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := parseDate(q.Get("to"), time.UTC, true)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter := entities.SalidaFilter{
		From:         from,
		To:           to,
		Tipo:         entities.SalidaTipo(q.Get("tipo")),
		TipoRegistro: entities.TipoRegistro(q.Get("tipoRegistro")),
		CategoriaID:  q.Get("categoriaId"),
	}
	if filter.Limit, err = parseUint(q.Get("limit")); err != nil {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}
	if filter.Offset, err = parseUint(q.Get("offset")); err != nil {
		utils.WriteError(w, "invalid offset", http.StatusBadRequest)
		return
	}

	views, err := h.svc.ListSalidas(ctx, filter)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list salidas", err)
		return
	}

	res := make([]Salida, 0, len(views))
	for _, v := range views {
		res = append(res, SalidaViewToJSON(v))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateSalida создает расход.
// @Summary      Создать расход
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        request  body      SalidaRequest  true  "Расход"
// @Success      201  {object}  Salida
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /salidas [post]
func (h *SalidaHandler) CreateSalida(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SalidaRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	salida, err := h.svc.CreateSalida(ctx, SalidaJSONToEntity("", req))
	if err != nil {
		salidaWritesTotal.WithLabelValues("create", h.writeServiceError(ctx, w, "failed to create salida", err)).Inc()
		return
	}
	salidaWritesTotal.WithLabelValues("create", "ok").Inc()
	if salida.Monto > 0 {
		salidaAmountRecorded.WithLabelValues(string(salida.Tipo)).Add(salida.Monto)
	}
	utils.WriteJSON(w, SalidaEntityToJSON(salida), http.StatusCreated)
}

// GetSalida возвращает расход.
// @Summary      Получить расход
// @Tags         salidas
// @Produce      json
// @Param        id   path      string  true  "Идентификатор расхода"
// @Success      200  {object}  Salida
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /salidas/{id} [get]
func (h *SalidaHandler) GetSalida(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	view, err := h.svc.GetSalida(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get salida", err)
		return
	}
	utils.WriteJSON(w, SalidaViewToJSON(view), http.StatusOK)
}

// UpdateSalida обновляет расход.
// @Summary      Обновить расход
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Идентификатор расхода"
// @Param        request  body      SalidaRequest  true  "Расход"
// @Success      200  {object}  Salida
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /salidas/{id} [put]
func (h *SalidaHandler) UpdateSalida(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SalidaRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	salida, err := h.svc.UpdateSalida(ctx, SalidaJSONToEntity(chi.URLParam(r, "id"), req))
	if err != nil {
		salidaWritesTotal.WithLabelValues("update", h.writeServiceError(ctx, w, "failed to update salida", err)).Inc()
		return
	}
	salidaWritesTotal.WithLabelValues("update", "ok").Inc()
	utils.WriteJSON(w, SalidaEntityToJSON(salida), http.StatusOK)
}

// DeleteSalida удаляет расход.
// @Summary      Удалить расход
// @Tags         salidas
// @Param        id   path      string  true  "Идентификатор расхода"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /salidas/{id} [delete]
func (h *SalidaHandler) DeleteSalida(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.DeleteSalida(ctx, chi.URLParam(r, "id")); err != nil {
		salidaWritesTotal.WithLabelValues("delete", h.writeServiceError(ctx, w, "failed to delete salida", err)).Inc()
		return
	}
	salidaWritesTotal.WithLabelValues("delete", "ok").Inc()
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Категории расходов
// @Tags         lookups
// @Produce      json
// @Success      200  {array}   Lookup
// @Router       /categorias-salidas [get]
func (h *SalidaHandler) ListCategorias(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListCategorias(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to list categorias", err)
		return
	}
	res := make([]Lookup, 0, len(items))
	for _, c := range items {
		res = append(res, Lookup{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Создать категорию расходов
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        request  body      LookupRequest  true  "Название"
// @Success      201  {object}  Lookup
// @Router       /categorias-salidas [post]
func (h *SalidaHandler) CreateCategoria(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if !h.decodeLookup(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCategoria(r.Context(), req.Nombre)
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to create categoria", err)
		return
	}
	utils.WriteJSON(w, Lookup{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt}, http.StatusCreated)
}

// @Summary      Методы оплаты
// @Tags         lookups
// @Produce      json
// @Success      200  {array}   Lookup
// @Router       /metodos-pago [get]
func (h *SalidaHandler) ListMetodosPago(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListMetodosPago(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to list metodos de pago", err)
		return
	}
	res := make([]Lookup, 0, len(items))
	for _, m := range items {
		res = append(res, Lookup{ID: m.ID, Nombre: m.Nombre, CreatedAt: m.CreatedAt})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Создать метод оплаты
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        request  body      LookupRequest  true  "Название"
// @Success      201  {object}  Lookup
// @Router       /metodos-pago [post]
func (h *SalidaHandler) CreateMetodoPago(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if !h.decodeLookup(w, r, &req) {
		return
	}
	m, err := h.svc.CreateMetodoPago(r.Context(), req.Nombre)
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to create metodo de pago", err)
		return
	}
	utils.WriteJSON(w, Lookup{ID: m.ID, Nombre: m.Nombre, CreatedAt: m.CreatedAt}, http.StatusCreated)
}

// @Summary      Поставщики
// @Tags         lookups
// @Produce      json
// @Success      200  {array}   Proveedor
// @Router       /proveedores [get]
func (h *SalidaHandler) ListProveedores(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProveedores(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to list proveedores", err)
		return
	}
	res := make([]Proveedor, 0, len(items))
	for _, p := range items {
		res = append(res, ProveedorEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// @Summary      Создать поставщика
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        request  body      ProveedorRequest  true  "Поставщик"
// @Success      201  {object}  Proveedor
// @Router       /proveedores [post]
func (h *SalidaHandler) CreateProveedor(w http.ResponseWriter, r *http.Request) {
	var req ProveedorRequest
	if !h.decodeLookup(w, r, &req) {
		return
	}
	p, err := h.svc.CreateProveedor(r.Context(), entities.Proveedor{
		Nombre:      req.Nombre,
		Detalle:     req.Detalle,
		Telefono:    req.Telefono,
		CategoriaID: req.CategoriaID,
	})
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to create proveedor", err)
		return
	}
	utils.WriteJSON(w, ProveedorEntityToJSON(p), http.StatusCreated)
}

// @Summary      Категории поставщиков
// @Tags         lookups
// @Produce      json
// @Success      200  {array}   Lookup
// @Router       /categorias-proveedores [get]
func (h *SalidaHandler) ListCategoriasProveedores(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListCategoriasProveedores(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, "failed to list categorias de proveedores", err)
		return
	}
	res := make([]Lookup, 0, len(items))
	for _, c := range items {
		res = append(res, Lookup{ID: c.ID, Nombre: c.Nombre, CreatedAt: c.CreatedAt})
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *SalidaHandler) decodeLookup(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func parseUint(raw string) (uint64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
