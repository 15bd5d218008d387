// Package balance builds the monthly revenue versus expenses report.
package balance

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/rawandfun/barfer-service/internal/entities"
	"golang.org/x/sync/errgroup"
)

// KgPerLineItem is the average weight assumed for every sold line item.
const KgPerLineItem = 8

type Repo interface {
	MonthlyRevenue(ctx context.Context, from, to time.Time) ([]entities.MonthlyRevenue, error)
	MonthlyExpenses(ctx context.Context, from, to time.Time) ([]entities.MonthlyExpense, error)
}

type Service struct {
	logger      *slog.Logger
	repo        Repo
	windowYears int
	now         func() time.Time
}

func NewService(logger *slog.Logger, repo Repo, windowYears int) *Service {
	if windowYears <= 0 {
		windowYears = 3
	}
	return &Service{
		logger:      logger.With(slog.String("service", "balance")),
		repo:        repo,
		windowYears: windowYears,
		now:         time.Now,
	}
}

// GetBalanceMonthly returns one row per month in [from, to]. Missing bounds default to the
// trailing window ending now. Both sources must load; no partial report is returned.
func (s *Service) GetBalanceMonthly(ctx context.Context, from, to *time.Time) ([]entities.MonthlyBalance, error) {
	end := s.now()
	if to != nil {
		end = *to
	}
	start := end.AddDate(-s.windowYears, 0, 0)
	if from != nil {
		start = *from
	}
	if start.After(end) {
		return nil, entities.ErrInvalidDateSpan
	}

	var (
		revenue  []entities.MonthlyRevenue
		expenses []entities.MonthlyExpense
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		revenue, err = s.repo.MonthlyRevenue(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to load monthly revenue: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		expenses, err = s.repo.MonthlyExpenses(gctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to load monthly expenses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to build monthly balance", slog.Any("error", err))
		return nil, err
	}

	return Merge(revenue, expenses), nil
}

// Merge joins revenue and expense rows on the month key. Every month present in either
// source appears once, sorted ascending.
func Merge(revenue []entities.MonthlyRevenue, expenses []entities.MonthlyExpense) []entities.MonthlyBalance {
	rows := make(map[string]*entities.MonthlyBalance)
	row := func(month string) *entities.MonthlyBalance {
		r, ok := rows[month]
		if !ok {
			r = &entities.MonthlyBalance{Month: month}
			rows[month] = r
		}
		return r
	}

	for _, rev := range revenue {
		r := row(rev.Month)
		r.Revenue += rev.Total
		r.Orders += rev.Orders
		r.LineItems += rev.LineItems
	}

	for _, exp := range expenses {
		r := row(exp.Month)
		extraordinary := exp.Tipo == entities.SalidaExtraordinaria
		switch BrandOf(exp.Marca) {
		case entities.BrandRawAndFun:
			if extraordinary {
				r.ExtraordinaryRawAndFun += exp.Total
			} else {
				r.OrdinaryRawAndFun += exp.Total
			}
		default:
			if extraordinary {
				r.ExtraordinaryBarfer += exp.Total
			} else {
				r.OrdinaryBarfer += exp.Total
			}
		}
	}

	months := make([]string, 0, len(rows))
	for m := range rows {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]entities.MonthlyBalance, 0, len(months))
	for _, m := range months {
		r := rows[m]
		derive(r)
		out = append(out, *r)
	}
	return out
}

// BrandOf maps a raw brand tag to a bucket. Missing or unknown tags count as Barfer.
func BrandOf(raw string) entities.Brand {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(entities.BrandRawAndFun), "RAW AND FUN", "RAWANDFUN":
		return entities.BrandRawAndFun
	default:
		return entities.BrandBarfer
	}
}

func derive(r *entities.MonthlyBalance) {
	r.OrdinaryTotal = r.OrdinaryBarfer + r.OrdinaryRawAndFun
	r.ExtraordinaryTotal = r.ExtraordinaryBarfer + r.ExtraordinaryRawAndFun
	r.ExpensesTotal = r.OrdinaryTotal + r.ExtraordinaryTotal

	r.ResultWithoutExtraordinary = r.Revenue - r.OrdinaryTotal
	r.ResultWithExtraordinary = r.Revenue - r.ExpensesTotal
	r.PercentWithoutExtraordinary = percentOf(r.ResultWithoutExtraordinary, r.Revenue)
	r.PercentWithExtraordinary = percentOf(r.ResultWithExtraordinary, r.Revenue)

	r.EstimatedWeightKg = float64(r.LineItems * KgPerLineItem)
	if r.EstimatedWeightKg > 0 {
		r.PricePerKg = r.Revenue / r.EstimatedWeightKg
	}
}

func percentOf(v, total float64) float64 {
	if total == 0 {
		return 0
	}
	return v * 100 / total
}
