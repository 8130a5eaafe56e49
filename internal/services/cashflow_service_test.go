package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

func paymentSum(year int32, month int32, total float64) db.SumPaymentsByMonthRow {
	return db.SumPaymentsByMonthRow{
		PeriodYear:  year,
		PeriodMonth: month,
		Total:       helpers.Float64ToNumeric(total),
	}
}

func expenseSum(year int32, month int32, total float64) db.SumExpensesByMonthRow {
	return db.SumExpensesByMonthRow{
		PeriodYear:  year,
		PeriodMonth: month,
		Total:       helpers.Float64ToNumeric(total),
	}
}

func TestCashflowService_MonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()

	t.Run("fills every month in the range, including inactive ones", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			SumPaymentsByMonth(gomock.Any(), db.SumPaymentsByMonthParams{
				WorkspaceID: workspaceID,
				FromYear:    2025,
				FromMonth:   1,
				ToYear:      2025,
				ToMonth:     3,
			}).
			Return([]db.SumPaymentsByMonthRow{
				paymentSum(2025, 1, 100000),
				paymentSum(2025, 3, 117000),
			}, nil).
			Times(1)
		mockQuerier.EXPECT().
			SumExpensesByMonth(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.SumExpensesByMonthParams) ([]db.SumExpensesByMonthRow, error) {
				assert.Equal(t, workspaceID, arg.WorkspaceID)
				assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), arg.FromDate.Time)
				// Inclusive range: the last day of March, not the first of April.
				assert.Equal(t, time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), arg.ToDate.Time)
				return []db.SumExpensesByMonthRow{
					expenseSum(2025, 1, 25000.50),
				}, nil
			}).
			Times(1)

		service := services.NewCashflowService(mockQuerier)

		summary, err := service.MonthlySummary(ctx, workspaceID,
			time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, summary, 3)

		jan := summary[0]
		assert.Equal(t, int32(2025), jan.Year)
		assert.Equal(t, int32(1), jan.Month)
		assert.Equal(t, "100000", jan.Income.String())
		assert.Equal(t, "25000.5", jan.Expenses.String())
		assert.Equal(t, "74999.5", jan.Net.String())

		feb := summary[1]
		assert.Equal(t, int32(2), feb.Month)
		assert.True(t, feb.Income.IsZero())
		assert.True(t, feb.Expenses.IsZero())
		assert.True(t, feb.Net.IsZero())

		mar := summary[2]
		assert.Equal(t, int32(3), mar.Month)
		assert.Equal(t, "117000", mar.Income.String())
		assert.True(t, mar.Expenses.IsZero())
		assert.Equal(t, "117000", mar.Net.String())
	})

	t.Run("single month range", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			SumPaymentsByMonth(gomock.Any(), gomock.Any()).
			Return([]db.SumPaymentsByMonthRow{}, nil).
			Times(1)
		mockQuerier.EXPECT().
			SumExpensesByMonth(gomock.Any(), gomock.Any()).
			Return([]db.SumExpensesByMonthRow{}, nil).
			Times(1)

		service := services.NewCashflowService(mockQuerier)

		summary, err := service.MonthlySummary(ctx, workspaceID,
			monthDate(2025, time.June), monthDate(2025, time.June))
		require.NoError(t, err)
		require.Len(t, summary, 1)
		assert.Equal(t, int32(6), summary[0].Month)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		service := services.NewCashflowService(mocks.NewMockQuerier(ctrl))

		_, err := service.MonthlySummary(ctx, workspaceID,
			monthDate(2025, time.June), monthDate(2025, time.January))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid range")
	})

	t.Run("rejects ranges over ten years", func(t *testing.T) {
		service := services.NewCashflowService(mocks.NewMockQuerier(ctrl))

		_, err := service.MonthlySummary(ctx, workspaceID,
			monthDate(2020, time.January), monthDate(2031, time.January))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "maximum is 120")
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			SumPaymentsByMonth(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError).
			Times(1)

		service := services.NewCashflowService(mockQuerier)

		_, err := service.MonthlySummary(ctx, workspaceID,
			monthDate(2025, time.January), monthDate(2025, time.March))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to sum payments")
	})
}
