package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/internal/shipping"
	"github.com/rawandfun/barfer-service/pkg/utils"
)

type CheckoutRates interface {
	GetCheckoutShippingRates(ctx context.Context, items []entities.CartItem, destination entities.Address, carriers ...string) entities.RateResponse
}

type RateQuoter interface {
	GetShippingRates(ctx context.Context, req entities.ShippingRateRequest, carriers ...string) entities.RateResponse
}

type ShippingHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	checkout CheckoutRates
	quoter   RateQuoter
}

func NewShippingHandler(logger *slog.Logger, checkout CheckoutRates, quoter RateQuoter) *ShippingHandler {
	return &ShippingHandler{
		logger:   logger.With(slog.String("handler", "shipping")),
		validate: utils.NewValidator(),
		checkout: checkout,
		quoter:   quoter,
	}
}

func (h *ShippingHandler) Init(r chi.Router) {
	r.Route("/shipping", func(r chi.Router) {
		r.Post("/rates", h.GetCheckoutRates)
		r.Post("/quote", h.Quote)
		r.Get("/fallback", h.Fallback)
	})
}

// GetCheckoutRates возвращает тарифы доставки для корзины.
// @Summary      Тарифы доставки для корзины
// @Description  Опрашивает перевозчиков параллельно. Если ни один не ответил, возвращает резервные тарифы с fallback=true
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request  body      CheckoutRatesRequest  true  "Корзина и адрес получателя"
// @Success      200  {object}  RateResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /shipping/rates [post]
func (h *ShippingHandler) GetCheckoutRates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckoutRatesRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res := h.checkout.GetCheckoutShippingRates(ctx, CartItemsJSONToEntity(req.Items), AddressJSONToEntity(req.Destination), req.Carriers...)
	res, fallback := shipping.WithFallback(res)
	if fallback {
		checkoutQuotesTotal.WithLabelValues("fallback").Inc()
		h.logger.WarnContext(ctx, "serving fallback rates", slog.String("postal_code", req.Destination.PostalCode))
	} else {
		checkoutQuotesTotal.WithLabelValues("live").Inc()
	}
	checkoutOptionsOffered.Observe(float64(len(res.Options)))

	utils.WriteJSON(w, RateResponseEntityToJSON(res, fallback), http.StatusOK)
}

// Quote возвращает тарифы для явно заданных посылок.
// @Summary      Тарифы доставки для посылок
// @Description  Прямой вызов агрегатора без резервных тарифов
// @Tags         shipping
// @Accept       json
// @Produce      json
// @Param        request  body      QuoteRequest  true  "Отправитель, получатель и посылки"
// @Success      200  {object}  RateResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Router       /shipping/quote [post]
func (h *ShippingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res := h.quoter.GetShippingRates(r.Context(), entities.ShippingRateRequest{
		Origin:      AddressJSONToEntity(req.Origin),
		Destination: AddressJSONToEntity(req.Destination),
		Packages:    PackagesJSONToEntity(req.Packages),
	}, req.Carriers...)

	utils.WriteJSON(w, RateResponseEntityToJSON(res, false), http.StatusOK)
}

// Fallback возвращает резервные тарифы.
// @Summary      Резервные тарифы
// @Tags         shipping
// @Produce      json
// @Success      200  {object}  RateResponse
// @Router       /shipping/fallback [get]
func (h *ShippingHandler) Fallback(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, RateResponseEntityToJSON(shipping.FallbackRates(), true), http.StatusOK)
}
