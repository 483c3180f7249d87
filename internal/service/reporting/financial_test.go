package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(money(want)), "want %d, got %s", want, got)
}

func TestBuildFinancialReport_TwoInvoicesNoExpenses(t *testing.T) {
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 31)

	invoices := []models.Invoice{
		{ID: 1, Amount: money(1000), CreatedAt: date(2024, time.March, 5), Status: models.InvoicePending},
		{ID: 2, Amount: money(500), CreatedAt: date(2024, time.March, 20), Status: models.InvoicePaid},
	}

	report := BuildFinancialReport(invoices, nil, nil, start, end)

	assertDecimal(t, 1500, report.Summary.TotalRevenue)
	assertDecimal(t, 0, report.Summary.TotalExpenses)
	assertDecimal(t, 1500, report.Summary.NetIncome)

	require.Len(t, report.Cashflow, 1)
	assert.Equal(t, "Mar 2024", report.Cashflow[0].Period)
	assertDecimal(t, 1500, report.Cashflow[0].Revenue)
	assertDecimal(t, 0, report.Cashflow[0].Expenses)
}

func TestBuildFinancialReport_CollectionRate(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 31)

	invoices := []models.Invoice{
		{Amount: money(1000), CreatedAt: date(2024, time.January, 10)},
	}
	payments := []models.Payment{
		{Amount: money(250), PaymentDate: date(2024, time.January, 15)},
	}

	report := BuildFinancialReport(invoices, payments, nil, start, end)

	assertDecimal(t, 250, report.Summary.TotalCollected)
	assertDecimal(t, 25, report.Summary.CollectionRate)
}

func TestBuildFinancialReport_ZeroRevenueCollectionRateIsZero(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.January, 31)

	payments := []models.Payment{
		{Amount: money(500), PaymentDate: date(2024, time.January, 15)},
	}

	report := BuildFinancialReport(nil, payments, nil, start, end)

	assertDecimal(t, 0, report.Summary.TotalRevenue)
	assertDecimal(t, 500, report.Summary.TotalCollected)
	assertDecimal(t, 0, report.Summary.CollectionRate)
}

func TestBuildFinancialReport_ExpensesFromResolvedCostedTickets(t *testing.T) {
	start := date(2024, time.February, 1)
	end := date(2024, time.February, 29)

	resolvedAt := date(2024, time.February, 14)
	cost := money(300)
	uncostedResolvedAt := date(2024, time.February, 20)

	tickets := []models.MaintenanceTicket{
		{Status: models.TicketResolved, ResolvedAt: &resolvedAt, ActualCost: &cost, CreatedAt: date(2024, time.February, 1)},
		{Status: models.TicketResolved, ResolvedAt: &uncostedResolvedAt, CreatedAt: date(2024, time.February, 2)},
		{Status: models.TicketPending, CreatedAt: date(2024, time.February, 3)},
	}

	report := BuildFinancialReport(nil, nil, tickets, start, end)

	assertDecimal(t, 300, report.Summary.TotalExpenses)
	assertDecimal(t, -300, report.Summary.NetIncome)
}

func TestBuildFinancialReport_SeriesZeroFilledAndChronological(t *testing.T) {
	start := date(2024, time.January, 1)
	end := date(2024, time.April, 30)

	resolvedAt := date(2024, time.February, 10)
	cost := money(120)

	// The April invoice is listed first: series order must come from the
	// bucketer, not from entity arrival order.
	invoices := []models.Invoice{
		{Amount: money(800), CreatedAt: date(2024, time.April, 2)},
		{Amount: money(700), CreatedAt: date(2024, time.January, 20)},
	}
	tickets := []models.MaintenanceTicket{
		{Status: models.TicketResolved, ResolvedAt: &resolvedAt, ActualCost: &cost, CreatedAt: date(2024, time.January, 5)},
	}

	report := BuildFinancialReport(invoices, nil, tickets, start, end)

	require.Len(t, report.Cashflow, 4)
	assert.Equal(t, []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024"},
		[]string{report.Cashflow[0].Period, report.Cashflow[1].Period, report.Cashflow[2].Period, report.Cashflow[3].Period})

	assertDecimal(t, 700, report.Cashflow[0].Revenue)
	assertDecimal(t, 120, report.Cashflow[1].Expenses)
	assertDecimal(t, 0, report.Cashflow[2].Revenue)
	assertDecimal(t, 0, report.Cashflow[2].Expenses)
	assertDecimal(t, 800, report.Cashflow[3].Revenue)
}

func TestBuildFinancialReport_IgnoresOutOfRangeEntities(t *testing.T) {
	start := date(2024, time.March, 1)
	end := date(2024, time.March, 31)

	invoices := []models.Invoice{
		{Amount: money(999), CreatedAt: date(2024, time.February, 28)},
	}
	payments := []models.Payment{
		{Amount: money(999), PaymentDate: date(2024, time.April, 1)},
	}

	report := BuildFinancialReport(invoices, payments, nil, start, end)

	assertDecimal(t, 0, report.Summary.TotalRevenue)
	assertDecimal(t, 0, report.Summary.TotalCollected)
}
