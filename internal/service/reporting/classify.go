package reporting

import (
	"time"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

const day = 24 * time.Hour

// WithinRange reports whether t falls inside [start, end], inclusive on both
// ends.
func WithinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// ActiveOn reports whether the lease covers the given day. This models
// occupancy at a point in time and deliberately ignores the administrative
// IsActive flag.
func ActiveOn(lease models.Lease, on time.Time) bool {
	return !on.Before(lease.StartDate) && !on.After(lease.EndDate)
}

// ResolvedWithCost reports whether the ticket is resolved, timestamped and
// costed, i.e. eligible as an expense line.
func ResolvedWithCost(t models.MaintenanceTicket) bool {
	return t.Status == models.TicketResolved && t.ResolvedAt != nil && t.ActualCost != nil
}

// ExpiresWithin reports whether an administratively active lease ends more
// than afterDays and at most withinDays whole days from ref. The lower bound
// is exclusive and the upper inclusive, so calling with (-1, 30), (30, 60)
// and (60, 90) partitions the leases expiring within 90 days with the
// 30-day boundary landing in the first bucket.
func ExpiresWithin(lease models.Lease, ref time.Time, afterDays, withinDays int) bool {
	if !lease.IsActive {
		return false
	}
	d := daysUntil(ref, lease.EndDate)
	return d >= 0 && d > afterDays && d <= withinDays
}

func daysUntil(from, to time.Time) int {
	return int(to.Sub(from) / day)
}

func roundDays(d time.Duration) int {
	return int((d + day/2) / day)
}
