package sheets

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/rentalhub/backoffice/internal/config"
	"github.com/rentalhub/backoffice/internal/domain/models"
)

const exportRange = "Reports!A:P"

// Exporter defines the spreadsheet export sink for generated report
// snapshots.
type Exporter interface {
	AppendSummary(ctx context.Context, snapshot models.ReportSnapshot) error
}

// GoogleSheetExporter implements the Exporter interface using the official
// Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed export sink.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendSummary appends one flat row per snapshot to the export sheet.
func (e *GoogleSheetExporter) AppendSummary(ctx context.Context, snapshot models.ReportSnapshot) error {
	row := []interface{}{
		snapshot.GeneratedAt.Format(time.RFC3339),
		string(snapshot.Type),
		snapshot.PeriodStart.Format("2006-01-02"),
		snapshot.PeriodEnd.Format("2006-01-02"),
		snapshot.TotalRevenue,
		snapshot.TotalExpenses,
		snapshot.TotalCollected,
		snapshot.CollectionRate,
		snapshot.NetIncome,
		snapshot.OccupancyRate,
		snapshot.TotalTickets,
		snapshot.AverageResolutionDays,
		snapshot.MaintenanceCost,
		snapshot.TotalLeases,
		snapshot.ActiveLeases,
		snapshot.ExpiringIn30Days,
	}

	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, exportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append snapshot row for %s report: %w", snapshot.Type, err)
	}

	e.logger.Debug("snapshot row appended to sheet", zap.String("type", string(snapshot.Type)))
	return nil
}
