package reporting

import (
	"math"
	"time"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

// expirationBuckets are the non-overlapping day horizons leases are grouped
// into relative to "now". Lower bounds are exclusive so a lease ending in
// exactly 30 days lands in the first bucket, not the second.
var expirationBuckets = []struct {
	label     string
	afterDays int
	within    int
}{
	{label: "30 Days", afterDays: -1, within: 30},
	{label: "60 Days", afterDays: 30, within: 60},
	{label: "90 Days", afterDays: 60, within: 90},
}

// BuildLeaseReport folds leases whose start or end date falls inside the
// window into lifecycle statistics. Expiration buckets are computed relative
// to now, not to the report range.
func BuildLeaseReport(leases []models.Lease, start, end, now time.Time) *models.LeaseReport {
	inScope := make([]models.Lease, 0, len(leases))
	for _, l := range leases {
		if WithinRange(l.StartDate, start, end) || WithinRange(l.EndDate, start, end) {
			inScope = append(inScope, l)
		}
	}

	var active, totalDuration int
	for _, l := range inScope {
		if l.IsActive {
			active++
		}
		totalDuration += l.DurationDays()
	}

	expiring := make([]models.CountPoint, 0, len(expirationBuckets))
	bucketCounts := make([]int, len(expirationBuckets))
	for i, b := range expirationBuckets {
		for _, l := range inScope {
			if ExpiresWithin(l, now, b.afterDays, b.within) {
				bucketCounts[i]++
			}
		}
		expiring = append(expiring, models.CountPoint{Label: b.label, Count: bucketCounts[i]})
	}

	averageDuration := 0
	if len(inScope) > 0 {
		averageDuration = int(math.Round(float64(totalDuration) / float64(len(inScope))))
	}

	return &models.LeaseReport{
		Summary: models.LeaseSummary{
			TotalLeases:         len(inScope),
			ActiveLeases:        active,
			InactiveLeases:      len(inScope) - active,
			ExpiringIn30Days:    bucketCounts[0],
			ExpiringIn60Days:    bucketCounts[1],
			ExpiringIn90Days:    bucketCounts[2],
			AverageDurationDays: averageDuration,
		},
		StatusBreakdown: []models.CountPoint{
			{Label: "Active", Count: active},
			{Label: "Inactive", Count: len(inScope) - active},
		},
		ExpirationBuckets: expiring,
	}
}
