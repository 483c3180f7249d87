package reporting

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// BuildMaintenanceReport derives status and priority distributions plus
// resolution-time statistics from tickets created within the window. Every
// enumerated status and priority appears in the output, zero-valued when
// absent from the data.
func BuildMaintenanceReport(tickets []models.MaintenanceTicket, start, end time.Time) *models.MaintenanceReport {
	statusCounts := make(map[models.TicketStatus]int, 4)
	priorityCounts := make(map[models.TicketPriority]int, 4)

	var inRange, resolvedCount, resolutionDays int
	totalCost := decimal.Zero

	for _, t := range tickets {
		if !WithinRange(t.CreatedAt, start, end) {
			continue
		}
		inRange++
		statusCounts[t.Status]++
		priorityCounts[t.Priority]++

		if t.Status == models.TicketResolved && t.ResolvedAt != nil {
			resolvedCount++
			resolutionDays += roundDays(t.ResolvedAt.Sub(t.CreatedAt))
			if t.ActualCost != nil {
				totalCost = totalCost.Add(*t.ActualCost)
			}
		}
	}

	average := 0
	if resolvedCount > 0 {
		average = int(math.Round(float64(resolutionDays) / float64(resolvedCount)))
	}

	statuses := models.AllTicketStatuses()
	byStatus := make([]models.CountPoint, 0, len(statuses))
	for _, s := range statuses {
		byStatus = append(byStatus, models.CountPoint{Label: string(s), Count: statusCounts[s]})
	}

	priorities := models.AllTicketPriorities()
	byPriority := make([]models.CountPoint, 0, len(priorities))
	for _, p := range priorities {
		byPriority = append(byPriority, models.CountPoint{Label: string(p), Count: priorityCounts[p]})
	}

	return &models.MaintenanceReport{
		Summary: models.MaintenanceSummary{
			TotalTickets:          inRange,
			PendingCount:          statusCounts[models.TicketPending],
			InProgressCount:       statusCounts[models.TicketInProgress],
			ResolvedCount:         statusCounts[models.TicketResolved],
			CancelledCount:        statusCounts[models.TicketCancelled],
			AverageResolutionDays: average,
			TotalCost:             totalCost,
		},
		ByStatus:   byStatus,
		ByPriority: byPriority,
	}
}
