package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportType discriminates the four report variants the back office renders.
type ReportType string

const (
	ReportFinancial   ReportType = "financial"
	ReportOccupancy   ReportType = "occupancy"
	ReportMaintenance ReportType = "maintenance"
	ReportLeases      ReportType = "leases"
)

// AllReportTypes returns every report type the orchestrator can run.
func AllReportTypes() []ReportType {
	return []ReportType{ReportFinancial, ReportOccupancy, ReportMaintenance, ReportLeases}
}

// ParseReportType validates a raw report type string.
func ParseReportType(raw string) (ReportType, error) {
	switch ReportType(raw) {
	case ReportFinancial, ReportOccupancy, ReportMaintenance, ReportLeases:
		return ReportType(raw), nil
	}
	return "", fmt.Errorf("unknown report type %q", raw)
}

// CashflowPoint is one calendar-month bucket of the revenue/expenses series.
type CashflowPoint struct {
	Period   string          `json:"period"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// OccupancyPoint is one calendar-month bucket of the occupancy trend series.
type OccupancyPoint struct {
	Period   string `json:"period"`
	Rate     int    `json:"rate"`
	Occupied int    `json:"occupied_count"`
	Total    int    `json:"total_count"`
}

// CountPoint is a chart-ready label/count pair used by distribution series.
type CountPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FinancialSummary carries the headline figures of a financial report.
// CollectionRate is a percentage and is zero whenever TotalRevenue is zero.
type FinancialSummary struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
	NetIncome      decimal.Decimal `json:"net_income"`
}

// FinancialReport is the financial variant payload.
type FinancialReport struct {
	Summary  FinancialSummary `json:"summary"`
	Cashflow []CashflowPoint  `json:"cashflow"`
}

// OccupancySummary carries the current-moment occupancy snapshot.
type OccupancySummary struct {
	CurrentOccupancyRate int `json:"current_occupancy_rate"`
	TotalProperties      int `json:"total_properties"`
	AvailableCount       int `json:"available_count"`
	RentedCount          int `json:"rented_count"`
	MaintenanceCount     int `json:"maintenance_count"`
}

// OccupancyReport is the occupancy variant payload.
type OccupancyReport struct {
	Summary         OccupancySummary `json:"summary"`
	Trend           []OccupancyPoint `json:"trend"`
	StatusBreakdown []CountPoint     `json:"status_breakdown"`
}

// MaintenanceSummary carries the headline maintenance figures.
// AverageResolutionDays is zero when no resolved tickets fall in range.
type MaintenanceSummary struct {
	TotalTickets          int             `json:"total_tickets"`
	PendingCount          int             `json:"pending_count"`
	InProgressCount       int             `json:"in_progress_count"`
	ResolvedCount         int             `json:"resolved_count"`
	CancelledCount        int             `json:"cancelled_count"`
	AverageResolutionDays int             `json:"average_resolution_days"`
	TotalCost             decimal.Decimal `json:"total_cost"`
}

// MaintenanceReport is the maintenance variant payload.
type MaintenanceReport struct {
	Summary    MaintenanceSummary `json:"summary"`
	ByStatus   []CountPoint       `json:"by_status"`
	ByPriority []CountPoint       `json:"by_priority"`
}

// LeaseSummary carries the headline lease-lifecycle figures. The three
// expiration counts are pairwise disjoint buckets relative to "now".
type LeaseSummary struct {
	TotalLeases         int `json:"total_leases"`
	ActiveLeases        int `json:"active_leases"`
	InactiveLeases      int `json:"inactive_leases"`
	ExpiringIn30Days    int `json:"expiring_in_30_days"`
	ExpiringIn60Days    int `json:"expiring_in_60_days"`
	ExpiringIn90Days    int `json:"expiring_in_90_days"`
	AverageDurationDays int `json:"average_duration_days"`
}

// LeaseReport is the lease variant payload.
type LeaseReport struct {
	Summary           LeaseSummary `json:"summary"`
	StatusBreakdown   []CountPoint `json:"status_breakdown"`
	ExpirationBuckets []CountPoint `json:"expiration_buckets"`
}

// Report is the discriminated union returned by the orchestrator: exactly one
// variant pointer is non-nil, matching Type.
type Report struct {
	Type        ReportType         `json:"type"`
	PeriodStart time.Time          `json:"period_start"`
	PeriodEnd   time.Time          `json:"period_end"`
	GeneratedAt time.Time          `json:"generated_at"`
	Financial   *FinancialReport   `json:"financial,omitempty"`
	Occupancy   *OccupancyReport   `json:"occupancy,omitempty"`
	Maintenance *MaintenanceReport `json:"maintenance,omitempty"`
	Leases      *LeaseReport       `json:"leases,omitempty"`
}
