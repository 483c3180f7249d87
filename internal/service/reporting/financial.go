package reporting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

var hundred = decimal.NewFromInt(100)

type cashflowTotals struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

// BuildFinancialReport folds invoices into per-month revenue and resolved,
// costed maintenance tickets into per-month expenses across the bucketed
// window. Months without activity appear with zero values and the series is
// ordered by month key, never by the order entities arrived in.
func BuildFinancialReport(invoices []models.Invoice, payments []models.Payment, tickets []models.MaintenanceTicket, start, end time.Time) *models.FinancialReport {
	byMonth := make(map[int]cashflowTotals)
	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	totalCollected := decimal.Zero

	for _, inv := range invoices {
		if !WithinRange(inv.CreatedAt, start, end) {
			continue
		}
		totalRevenue = totalRevenue.Add(inv.Amount)

		k := MonthOf(inv.CreatedAt).Key()
		t := byMonth[k]
		t.revenue = t.revenue.Add(inv.Amount)
		byMonth[k] = t
	}

	for _, ticket := range tickets {
		if !ResolvedWithCost(ticket) || !WithinRange(*ticket.ResolvedAt, start, end) {
			continue
		}
		totalExpenses = totalExpenses.Add(*ticket.ActualCost)

		k := MonthOf(*ticket.ResolvedAt).Key()
		t := byMonth[k]
		t.expenses = t.expenses.Add(*ticket.ActualCost)
		byMonth[k] = t
	}

	for _, p := range payments {
		if !WithinRange(p.PaymentDate, start, end) {
			continue
		}
		totalCollected = totalCollected.Add(p.Amount)
	}

	// Guard the division here so an empty population yields a zero rate
	// instead of escaping as a division error.
	collectionRate := decimal.Zero
	if totalRevenue.IsPositive() {
		collectionRate = totalCollected.Div(totalRevenue).Mul(hundred).Round(2)
	}

	months := MonthsBetween(start, end)
	cashflow := make([]models.CashflowPoint, 0, len(months))
	for _, m := range months {
		t := byMonth[m.Key()]
		cashflow = append(cashflow, models.CashflowPoint{
			Period:   m.Label(),
			Revenue:  orZero(t.revenue),
			Expenses: orZero(t.expenses),
		})
	}

	return &models.FinancialReport{
		Summary: models.FinancialSummary{
			TotalRevenue:   totalRevenue,
			TotalExpenses:  totalExpenses,
			TotalCollected: totalCollected,
			CollectionRate: collectionRate,
			NetIncome:      totalRevenue.Sub(totalExpenses),
		},
		Cashflow: cashflow,
	}
}

// orZero normalizes the decimal zero value so freshly bucketed months and
// untouched map entries serialize identically.
func orZero(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return d
}
