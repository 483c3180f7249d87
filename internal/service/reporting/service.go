package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// EntitySource abstracts the read-only fetch operations the reports consume.
// The production implementation talks to the RentalHub API.
type EntitySource interface {
	FetchProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	FetchLeases(ctx context.Context, filter models.LeaseFilter) ([]models.Lease, error)
	FetchInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error)
	FetchPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
	FetchMaintenanceTickets(ctx context.Context, filter models.TicketFilter) ([]models.MaintenanceTicket, error)
}

// ReportRequest carries everything needed to run one report. Now is injected
// so expiration buckets and relative presets stay deterministic under test;
// a zero Now means the current UTC time.
type ReportRequest struct {
	Type        models.ReportType
	Mode        RangeMode
	CustomStart time.Time
	CustomEnd   time.Time
	Now         time.Time
}

// Service is the report orchestrator: it resolves the window, fetches the
// entity snapshots the requested report needs, and runs exactly one
// aggregator over them. Aggregation itself is pure; a fetch failure aborts
// the whole run and no partial summary is ever returned.
type Service struct {
	source EntitySource
	logger *zap.Logger
}

// NewService wires a new orchestrator instance.
func NewService(source EntitySource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, logger: logger}
}

// Run executes one report. The range is validated before any fetch is issued.
func (s *Service) Run(ctx context.Context, req ReportRequest) (*models.Report, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	start, end, err := ResolveRange(req.Mode, now, req.CustomStart, req.CustomEnd)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		Type:        req.Type,
		PeriodStart: start,
		PeriodEnd:   end,
		GeneratedAt: now,
	}

	switch req.Type {
	case models.ReportFinancial:
		var (
			invoices []models.Invoice
			payments []models.Payment
			tickets  []models.MaintenanceTicket
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if invoices, err = s.source.FetchInvoices(gctx, models.InvoiceFilter{}); err != nil {
				return fmt.Errorf("fetch invoices: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if payments, err = s.source.FetchPayments(gctx, models.PaymentFilter{}); err != nil {
				return fmt.Errorf("fetch payments: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if tickets, err = s.source.FetchMaintenanceTickets(gctx, models.TicketFilter{}); err != nil {
				return fmt.Errorf("fetch maintenance tickets: %w", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		report.Financial = BuildFinancialReport(invoices, payments, tickets, start, end)

	case models.ReportOccupancy:
		var (
			properties []models.Property
			leases     []models.Lease
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			if properties, err = s.source.FetchProperties(gctx, models.PropertyFilter{}); err != nil {
				return fmt.Errorf("fetch properties: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			var err error
			if leases, err = s.source.FetchLeases(gctx, models.LeaseFilter{}); err != nil {
				return fmt.Errorf("fetch leases: %w", err)
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		report.Occupancy = BuildOccupancyReport(properties, leases, start, end)

	case models.ReportMaintenance:
		tickets, err := s.source.FetchMaintenanceTickets(ctx, models.TicketFilter{})
		if err != nil {
			return nil, fmt.Errorf("fetch maintenance tickets: %w", err)
		}
		report.Maintenance = BuildMaintenanceReport(tickets, start, end)

	case models.ReportLeases:
		leases, err := s.source.FetchLeases(ctx, models.LeaseFilter{})
		if err != nil {
			return nil, fmt.Errorf("fetch leases: %w", err)
		}
		report.Leases = BuildLeaseReport(leases, start, end, now)

	default:
		return nil, fmt.Errorf("unknown report type %q", req.Type)
	}

	s.logger.Info("report generated",
		zap.String("type", string(req.Type)),
		zap.Time("start", start),
		zap.Time("end", end))

	return report, nil
}
