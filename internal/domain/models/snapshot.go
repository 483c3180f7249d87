package models

import "time"

// ReportSnapshot is the flattened archive record stored in MongoDB and
// exported to the spreadsheet sink. Fields that do not apply to the snapshot's
// report type stay at zero.
type ReportSnapshot struct {
	Type                  ReportType `bson:"type" json:"type"`
	PeriodStart           time.Time  `bson:"period_start" json:"period_start"`
	PeriodEnd             time.Time  `bson:"period_end" json:"period_end"`
	GeneratedAt           time.Time  `bson:"generated_at" json:"generated_at"`
	TotalRevenue          float64    `bson:"total_revenue" json:"total_revenue"`
	TotalExpenses         float64    `bson:"total_expenses" json:"total_expenses"`
	TotalCollected        float64    `bson:"total_collected" json:"total_collected"`
	CollectionRate        float64    `bson:"collection_rate" json:"collection_rate"`
	NetIncome             float64    `bson:"net_income" json:"net_income"`
	OccupancyRate         int        `bson:"occupancy_rate" json:"occupancy_rate"`
	TotalProperties       int        `bson:"total_properties" json:"total_properties"`
	TotalTickets          int        `bson:"total_tickets" json:"total_tickets"`
	AverageResolutionDays int        `bson:"average_resolution_days" json:"average_resolution_days"`
	MaintenanceCost       float64    `bson:"maintenance_cost" json:"maintenance_cost"`
	TotalLeases           int        `bson:"total_leases" json:"total_leases"`
	ActiveLeases          int        `bson:"active_leases" json:"active_leases"`
	ExpiringIn30Days      int        `bson:"expiring_in_30_days" json:"expiring_in_30_days"`
}

// SnapshotOf flattens a report into its archive record.
func SnapshotOf(r Report) ReportSnapshot {
	snap := ReportSnapshot{
		Type:        r.Type,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		GeneratedAt: r.GeneratedAt,
	}

	switch {
	case r.Financial != nil:
		s := r.Financial.Summary
		snap.TotalRevenue = s.TotalRevenue.InexactFloat64()
		snap.TotalExpenses = s.TotalExpenses.InexactFloat64()
		snap.TotalCollected = s.TotalCollected.InexactFloat64()
		snap.CollectionRate = s.CollectionRate.InexactFloat64()
		snap.NetIncome = s.NetIncome.InexactFloat64()
	case r.Occupancy != nil:
		s := r.Occupancy.Summary
		snap.OccupancyRate = s.CurrentOccupancyRate
		snap.TotalProperties = s.TotalProperties
	case r.Maintenance != nil:
		s := r.Maintenance.Summary
		snap.TotalTickets = s.TotalTickets
		snap.AverageResolutionDays = s.AverageResolutionDays
		snap.MaintenanceCost = s.TotalCost.InexactFloat64()
	case r.Leases != nil:
		s := r.Leases.Summary
		snap.TotalLeases = s.TotalLeases
		snap.ActiveLeases = s.ActiveLeases
		snap.ExpiringIn30Days = s.ExpiringIn30Days
	}

	return snap
}
