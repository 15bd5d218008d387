package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/pkg/utils"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: utils.NewValidator(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Post("/orders", h.CreateOrder)
	r.Get("/order/{order_id}", h.GetOrderByID)
	r.Patch("/order/{order_id}/status", h.UpdateOrderStatus)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Возвращает информацию о заказе по его уникальному идентификатору
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_id} [get]
func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()

	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)
	orderRequestDuration.Observe(time.Since(start).Seconds())

	if errors.Is(err, entities.ErrOrderNotFound) {
		orderRequestTotal.WithLabelValues("not_found").Inc()
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateOrder создает заказ из чекаута.
// @Summary      Создать заказ
// @Description  Заказ создается в статусе pending. Доставка выбирается по ключу тарифа из /shipping/rates, итог пересчитывается по позициям и доставке
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      CreateOrderRequest  true  "Заказ"
// @Success      201  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      409  {object}  utils.ErrorResponse "Тариф доставки больше не предлагается"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateOrderJSONToEntity(req))
	if errors.Is(err, entities.ErrInvalidOrder) {
		ordersCreatedTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrShippingOptionNotFound) {
		ordersCreatedTotal.WithLabelValues("stale_shipping").Inc()
		utils.WriteError(w, "shipping option is no longer offered, fetch rates again", http.StatusConflict)
		return
	}
	if err != nil {
		ordersCreatedTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreatedTotal.WithLabelValues("created").Inc()

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrderStatus меняет статус заказа.
// @Summary      Изменить статус заказа
// @Tags         orders
// @Accept       json
// @Param        order_id  path      string               true  "Идентификатор заказа"
// @Param        request   body      UpdateStatusRequest  true  "Новый статус"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	err := h.svc.UpdateOrderStatus(ctx, orderID, entities.OrderStatus(req.Status))
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidOrder):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
