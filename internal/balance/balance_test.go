package balance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rawandfun/barfer-service/internal/balance/mocks"
	"github.com/rawandfun/barfer-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, repo Repo) *Service {
	t.Helper()
	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, 3)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestService_GetBalanceMonthly(t *testing.T) {
	type MockBehavior func(repo *mocks.MockRepo)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		from, to     *time.Time
		mockBehavior MockBehavior
		wantErr      error
		check        func(t *testing.T, rows []entities.MonthlyBalance)
	}{
		{
			name: "march revenue against ordinary expense",
			from: &from,
			to:   &to,
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().MonthlyRevenue(mock.Anything, from, to).
					Return([]entities.MonthlyRevenue{{Month: "2025-03", Total: 1000, Orders: 1, LineItems: 1}}, nil).Once()
				repo.EXPECT().MonthlyExpenses(mock.Anything, from, to).
					Return([]entities.MonthlyExpense{{Month: "2025-03", Tipo: entities.SalidaOrdinaria, Marca: "BARFER", Total: 400}}, nil).Once()
			},
			check: func(t *testing.T, rows []entities.MonthlyBalance) {
				require.Len(t, rows, 1)
				march := rows[0]
				assert.Equal(t, "2025-03", march.Month)
				assert.Equal(t, 1000.0, march.Revenue)
				assert.Equal(t, 400.0, march.OrdinaryTotal)
				assert.Equal(t, 600.0, march.ResultWithoutExtraordinary)
				assert.Equal(t, 60.0, march.PercentWithoutExtraordinary)
				assert.Equal(t, 8.0, march.EstimatedWeightKg)
				assert.Equal(t, 125.0, march.PricePerKg)
			},
		},
		{
			name: "default window is trailing three years",
			mockBehavior: func(repo *mocks.MockRepo) {
				end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
				start := time.Date(2022, 6, 15, 12, 0, 0, 0, time.UTC)
				repo.EXPECT().MonthlyRevenue(mock.Anything, start, end).Return(nil, nil).Once()
				repo.EXPECT().MonthlyExpenses(mock.Anything, start, end).Return(nil, nil).Once()
			},
			check: func(t *testing.T, rows []entities.MonthlyBalance) {
				assert.Empty(t, rows)
			},
		},
		{
			name: "revenue read fails",
			from: &from,
			to:   &to,
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().MonthlyRevenue(mock.Anything, from, to).Return(nil, dbError).Once()
				repo.EXPECT().MonthlyExpenses(mock.Anything, from, to).
					Return([]entities.MonthlyExpense{{Month: "2025-03", Total: 1}}, nil).Maybe()
			},
			wantErr: dbError,
		},
		{
			name: "expense read fails",
			from: &from,
			to:   &to,
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().MonthlyRevenue(mock.Anything, from, to).
					Return([]entities.MonthlyRevenue{{Month: "2025-03", Total: 1}}, nil).Maybe()
				repo.EXPECT().MonthlyExpenses(mock.Anything, from, to).Return(nil, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:         "inverted window",
			from:         &to,
			to:           &from,
			mockBehavior: func(*mocks.MockRepo) {},
			wantErr:      entities.ErrInvalidDateSpan,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepo(t)
			tc.mockBehavior(repo)

			rows, err := newTestService(t, repo).GetBalanceMonthly(context.Background(), tc.from, tc.to)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, rows)
				return
			}
			require.NoError(t, err)
			tc.check(t, rows)
		})
	}
}

func TestMerge_ZeroRevenue(t *testing.T) {
	rows := Merge(nil, []entities.MonthlyExpense{
		{Month: "2025-02", Tipo: entities.SalidaOrdinaria, Total: 300},
		{Month: "2025-02", Tipo: entities.SalidaExtraordinaria, Total: 200},
	})

	require.Len(t, rows, 1)
	feb := rows[0]
	assert.Equal(t, 0.0, feb.PercentWithoutExtraordinary)
	assert.Equal(t, 0.0, feb.PercentWithExtraordinary)
	assert.Equal(t, 0.0, feb.PricePerKg)
	assert.Equal(t, -300.0, feb.ResultWithoutExtraordinary)
	assert.Equal(t, -500.0, feb.ResultWithExtraordinary)
}

func TestMerge_MonthUnionSorted(t *testing.T) {
	rows := Merge(
		[]entities.MonthlyRevenue{{Month: "2025-03", Total: 10}, {Month: "2024-12", Total: 5}},
		[]entities.MonthlyExpense{{Month: "2025-01", Total: 1}, {Month: "2025-03", Total: 2}},
	)

	months := make([]string, 0, len(rows))
	for _, r := range rows {
		months = append(months, r.Month)
	}
	assert.Equal(t, []string{"2024-12", "2025-01", "2025-03"}, months)
}

func TestMerge_Buckets(t *testing.T) {
	rows := Merge(
		[]entities.MonthlyRevenue{{Month: "2025-04", Total: 10000, Orders: 4, LineItems: 5}},
		[]entities.MonthlyExpense{
			{Month: "2025-04", Tipo: entities.SalidaOrdinaria, Marca: "BARFER", Total: 1000},
			{Month: "2025-04", Tipo: entities.SalidaOrdinaria, Marca: "", Total: 500},
			{Month: "2025-04", Tipo: entities.SalidaOrdinaria, Marca: "unknown", Total: 250},
			{Month: "2025-04", Tipo: entities.SalidaOrdinaria, Marca: "RAW_AND_FUN", Total: 700},
			{Month: "2025-04", Tipo: entities.SalidaExtraordinaria, Marca: "barfer", Total: 300},
			{Month: "2025-04", Tipo: entities.SalidaExtraordinaria, Marca: "raw_and_fun", Total: 200},
		},
	)

	require.Len(t, rows, 1)
	r := rows[0]
	assert.Equal(t, 1750.0, r.OrdinaryBarfer)
	assert.Equal(t, 700.0, r.OrdinaryRawAndFun)
	assert.Equal(t, 300.0, r.ExtraordinaryBarfer)
	assert.Equal(t, 200.0, r.ExtraordinaryRawAndFun)
	assert.Equal(t, 2450.0, r.OrdinaryTotal)
	assert.Equal(t, 500.0, r.ExtraordinaryTotal)
	assert.Equal(t, 2950.0, r.ExpensesTotal)
	assert.Equal(t, 7550.0, r.ResultWithoutExtraordinary)
	assert.Equal(t, 7050.0, r.ResultWithExtraordinary)
	assert.InDelta(t, 75.5, r.PercentWithoutExtraordinary, 1e-9)
	assert.InDelta(t, 70.5, r.PercentWithExtraordinary, 1e-9)
	assert.Equal(t, 40.0, r.EstimatedWeightKg)
	assert.Equal(t, 250.0, r.PricePerKg)
	assert.Equal(t, 4, r.Orders)
}

func TestBrandOf(t *testing.T) {
	assert.Equal(t, entities.BrandBarfer, BrandOf(""))
	assert.Equal(t, entities.BrandBarfer, BrandOf("otra"))
	assert.Equal(t, entities.BrandBarfer, BrandOf("BARFER"))
	assert.Equal(t, entities.BrandRawAndFun, BrandOf(" raw and fun "))
}
