package reporting

import (
	"math"
	"time"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// BuildOccupancyReport evaluates historical occupancy on the first day of
// every bucketed month and derives the current-moment status distribution.
// A property with several overlapping leases counts once per instant.
func BuildOccupancyReport(properties []models.Property, leases []models.Lease, start, end time.Time) *models.OccupancyReport {
	total := len(properties)

	months := MonthsBetween(start, end)
	trend := make([]models.OccupancyPoint, 0, len(months))
	for _, m := range months {
		instant := m.Start()

		occupied := make(map[int64]struct{})
		for _, l := range leases {
			if ActiveOn(l, instant) {
				occupied[l.PropertyID] = struct{}{}
			}
		}

		trend = append(trend, models.OccupancyPoint{
			Period:   m.Label(),
			Rate:     percentage(len(occupied), total),
			Occupied: len(occupied),
			Total:    total,
		})
	}

	counts := make(map[models.PropertyStatus]int, 3)
	for _, p := range properties {
		counts[p.Status]++
	}

	statuses := models.AllPropertyStatuses()
	breakdown := make([]models.CountPoint, 0, len(statuses))
	for _, s := range statuses {
		breakdown = append(breakdown, models.CountPoint{Label: string(s), Count: counts[s]})
	}

	return &models.OccupancyReport{
		Summary: models.OccupancySummary{
			CurrentOccupancyRate: percentage(counts[models.PropertyRented], total),
			TotalProperties:      total,
			AvailableCount:       counts[models.PropertyAvailable],
			RentedCount:          counts[models.PropertyRented],
			MaintenanceCount:     counts[models.PropertyMaintenance],
		},
		Trend:           trend,
		StatusBreakdown: breakdown,
	}
}

// percentage returns round(part/total*100), zero when total is zero.
func percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
