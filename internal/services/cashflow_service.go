package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// maxCashflowMonths bounds the summary window to keep responses small.
const maxCashflowMonths = 120

// CashflowService aggregates income and expenses per month. Sums use decimal
// arithmetic so monthly totals never pick up float drift.
type CashflowService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewCashflowService creates a new cashflow service
func NewCashflowService(queries db.Querier) *CashflowService {
	return &CashflowService{
		queries: queries,
		logger:  zap.L(),
	}
}

// MonthlyCashflow is one month's totals.
type MonthlyCashflow struct {
	Year     int32           `json:"year"`
	Month    int32           `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Net      decimal.Decimal `json:"net"`
}

// MonthlySummary returns one row per calendar month from `from` to `to`
// inclusive, including months with no activity.
func (s *CashflowService) MonthlySummary(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) ([]MonthlyCashflow, error) {
	from = helpers.FirstOfMonth(from)
	to = helpers.FirstOfMonth(to)

	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: from %s is after to %s", helpers.FormatYearMonth(from), helpers.FormatYearMonth(to))
	}
	if months := helpers.MonthsBetween(from, to) + 1; months > maxCashflowMonths {
		return nil, fmt.Errorf("range spans %d months, maximum is %d", months, maxCashflowMonths)
	}

	incomeRows, err := s.queries.SumPaymentsByMonth(ctx, db.SumPaymentsByMonthParams{
		WorkspaceID: workspaceID,
		FromYear:    int32(from.Year()),
		FromMonth:   int32(from.Month()),
		ToYear:      int32(to.Year()),
		ToMonth:     int32(to.Month()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum payments: %w", err)
	}

	expenseRows, err := s.queries.SumExpensesByMonth(ctx, db.SumExpensesByMonthParams{
		WorkspaceID: workspaceID,
		FromDate:    helpers.TimeToDate(from),
		ToDate:      helpers.TimeToDate(to.AddDate(0, 1, -1)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	income := make(map[[2]int32]decimal.Decimal, len(incomeRows))
	for _, row := range incomeRows {
		income[[2]int32{row.PeriodYear, row.PeriodMonth}] = numericToDecimal(row.Total)
	}
	expenses := make(map[[2]int32]decimal.Decimal, len(expenseRows))
	for _, row := range expenseRows {
		expenses[[2]int32{row.PeriodYear, row.PeriodMonth}] = numericToDecimal(row.Total)
	}

	summary := []MonthlyCashflow{}
	for month := from; !month.After(to); month = month.AddDate(0, 1, 0) {
		key := [2]int32{int32(month.Year()), int32(month.Month())}
		in := income[key]
		out := expenses[key]
		summary = append(summary, MonthlyCashflow{
			Year:     key[0],
			Month:    key[1],
			Income:   in,
			Expenses: out,
			Net:      in.Sub(out),
		})
	}

	return summary, nil
}

// numericToDecimal converts a Postgres numeric into a decimal without going
// through float64.
func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
