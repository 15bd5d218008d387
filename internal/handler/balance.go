package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/rawandfun/barfer-service/pkg/utils"
)

type BalanceService interface {
	GetBalanceMonthly(ctx context.Context, from, to *time.Time) ([]entities.MonthlyBalance, error)
}

type BalanceHandler struct {
	logger *slog.Logger
	svc    BalanceService
	// loc is the zone report months are grouped in; query dates are read in it too.
	loc *time.Location
}

func NewBalanceHandler(logger *slog.Logger, svc BalanceService, loc *time.Location) *BalanceHandler {
	return &BalanceHandler{
		logger: logger.With(slog.String("handler", "balance")),
		svc:    svc,
		loc:    loc,
	}
}

func (h *BalanceHandler) Init(r chi.Router) {
	r.Get("/balance/monthly", h.GetBalanceMonthly)
}

// GetBalanceMonthly возвращает помесячный баланс.
// @Summary      Помесячный баланс
// @Description  Выручка по подтвержденным заказам минус расходы, по месяцам. По умолчанию последние 3 года
// @Tags         balance
// @Produce      json
// @Param        from  query     string  false  "Начало периода, YYYY-MM-DD"
// @Param        to    query     string  false  "Конец периода включительно, YYYY-MM-DD"
// @Success      200  {object}  BalanceResponse
// @Failure      400  {object}  BalanceResponse "Неверный период"
// @Failure      500  {object}  BalanceResponse "Ошибка чтения данных"
// @Router       /balance/monthly [get]
func (h *BalanceHandler) GetBalanceMonthly(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, err := parseDate(r.URL.Query().Get("from"), h.loc, false)
	if err != nil {
		balanceReportsTotal.WithLabelValues("bad_request").Inc()
		utils.WriteJSON(w, BalanceResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}
	to, err := parseDate(r.URL.Query().Get("to"), h.loc, true)
	if err != nil {
		balanceReportsTotal.WithLabelValues("bad_request").Inc()
		utils.WriteJSON(w, BalanceResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	rows, err := h.svc.GetBalanceMonthly(ctx, from, to)
	if errors.Is(err, entities.ErrInvalidDateSpan) {
		balanceReportsTotal.WithLabelValues("bad_request").Inc()
		utils.WriteJSON(w, BalanceResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}
	if err != nil {
		balanceReportsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "failed to build monthly balance", slog.Any("error", err))
		utils.WriteJSON(w, BalanceResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	balanceReportsTotal.WithLabelValues("ok").Inc()
	balanceReportMonths.Observe(float64(len(rows)))

	data := make([]MonthlyBalance, 0, len(rows))
	for _, row := range rows {
		data = append(data, MonthlyBalanceEntityToJSON(row))
	}
	utils.WriteJSON(w, BalanceResponse{Success: true, Data: data}, http.StatusOK)
}

// parseDate parses a YYYY-MM-DD query value as a calendar day in loc. An end date covers its whole day.
func parseDate(raw string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
