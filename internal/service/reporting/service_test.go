package reporting

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

type mockEntitySource struct {
	mock.Mock
}

func (m *mockEntitySource) FetchProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockEntitySource) FetchLeases(ctx context.Context, filter models.LeaseFilter) ([]models.Lease, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Lease), args.Error(1)
}

func (m *mockEntitySource) FetchInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *mockEntitySource) FetchPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *mockEntitySource) FetchMaintenanceTickets(ctx context.Context, filter models.TicketFilter) ([]models.MaintenanceTicket, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceTicket), args.Error(1)
}

func TestRun_InvalidRangeRejectedBeforeFetch(t *testing.T) {
	source := new(mockEntitySource)
	svc := NewService(source, nil)

	_, err := svc.Run(context.Background(), ReportRequest{
		Type:        models.ReportFinancial,
		Mode:        RangeCustom,
		CustomStart: date(2024, time.April, 1),
		CustomEnd:   date(2024, time.March, 1),
		Now:         date(2024, time.June, 1),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
	source.AssertNotCalled(t, "FetchInvoices", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "FetchPayments", mock.Anything, mock.Anything)
	source.AssertNotCalled(t, "FetchMaintenanceTickets", mock.Anything, mock.Anything)
}

func TestRun_FetchFailureAbortsReport(t *testing.T) {
	source := new(mockEntitySource)
	source.On("FetchInvoices", mock.Anything, mock.Anything).Return(nil, errors.New("upstream down"))
	source.On("FetchPayments", mock.Anything, mock.Anything).Return([]models.Payment{}, nil)
	source.On("FetchMaintenanceTickets", mock.Anything, mock.Anything).Return([]models.MaintenanceTicket{}, nil)

	svc := NewService(source, nil)

	report, err := svc.Run(context.Background(), ReportRequest{
		Type: models.ReportFinancial,
		Mode: Range30Days,
		Now:  date(2024, time.June, 1),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch invoices")
	assert.Nil(t, report, "no partial summary on fetch failure")
}

func TestRun_FinancialReportVariant(t *testing.T) {
	source := new(mockEntitySource)
	source.On("FetchInvoices", mock.Anything, mock.Anything).Return([]models.Invoice{
		{ID: 1, Amount: money(1000), CreatedAt: date(2024, time.May, 10)},
	}, nil)
	source.On("FetchPayments", mock.Anything, mock.Anything).Return([]models.Payment{
		{ID: 1, Amount: money(1000), PaymentDate: date(2024, time.May, 12)},
	}, nil)
	source.On("FetchMaintenanceTickets", mock.Anything, mock.Anything).Return([]models.MaintenanceTicket{}, nil)

	svc := NewService(source, nil)

	report, err := svc.Run(context.Background(), ReportRequest{
		Type: models.ReportFinancial,
		Mode: Range30Days,
		Now:  date(2024, time.June, 1),
	})

	require.NoError(t, err)
	assert.Equal(t, models.ReportFinancial, report.Type)
	require.NotNil(t, report.Financial)
	assert.Nil(t, report.Occupancy)
	assert.Nil(t, report.Maintenance)
	assert.Nil(t, report.Leases)
	assertDecimal(t, 1000, report.Financial.Summary.TotalRevenue)
	assertDecimal(t, 100, report.Financial.Summary.CollectionRate)
	source.AssertExpectations(t)
}

func TestRun_OccupancyReportVariant(t *testing.T) {
	source := new(mockEntitySource)
	source.On("FetchProperties", mock.Anything, mock.Anything).Return([]models.Property{
		{ID: 1, Status: models.PropertyRented},
		{ID: 2, Status: models.PropertyAvailable},
	}, nil)
	source.On("FetchLeases", mock.Anything, mock.Anything).Return([]models.Lease{}, nil)

	svc := NewService(source, nil)

	report, err := svc.Run(context.Background(), ReportRequest{
		Type: models.ReportOccupancy,
		Mode: Range30Days,
		Now:  date(2024, time.June, 1),
	})

	require.NoError(t, err)
	require.NotNil(t, report.Occupancy)
	assert.Equal(t, 50, report.Occupancy.Summary.CurrentOccupancyRate)
}

func TestRun_IdempotentForIdenticalSnapshots(t *testing.T) {
	source := new(mockEntitySource)
	source.On("FetchLeases", mock.Anything, mock.Anything).Return([]models.Lease{
		{ID: 1, StartDate: date(2024, time.May, 1), EndDate: date(2025, time.May, 1), IsActive: true},
	}, nil)

	svc := NewService(source, nil)
	req := ReportRequest{Type: models.ReportLeases, Mode: Range30Days, Now: date(2024, time.June, 1)}

	first, err := svc.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), req)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestRun_UnknownReportType(t *testing.T) {
	svc := NewService(new(mockEntitySource), nil)

	_, err := svc.Run(context.Background(), ReportRequest{
		Type: models.ReportType("inventory"),
		Mode: Range30Days,
		Now:  date(2024, time.June, 1),
	})

	assert.Error(t, err)
}
