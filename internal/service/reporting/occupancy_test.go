package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentalhub/backoffice/internal/domain/models"
)

func TestBuildOccupancyReport_StatusDistributionAndCurrentRate(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Status: models.PropertyRented},
		{ID: 2, Status: models.PropertyRented},
		{ID: 3, Status: models.PropertyAvailable},
		{ID: 4, Status: models.PropertyMaintenance},
	}

	report := BuildOccupancyReport(properties, nil, date(2024, time.March, 1), date(2024, time.March, 31))

	assert.Equal(t, 50, report.Summary.CurrentOccupancyRate)
	assert.Equal(t, 4, report.Summary.TotalProperties)
	assert.Equal(t, 2, report.Summary.RentedCount)
	assert.Equal(t, 1, report.Summary.AvailableCount)
	assert.Equal(t, 1, report.Summary.MaintenanceCount)

	require.Len(t, report.StatusBreakdown, 3)
	assert.Equal(t, models.CountPoint{Label: "RENTED", Count: 2}, report.StatusBreakdown[0])
	assert.Equal(t, models.CountPoint{Label: "AVAILABLE", Count: 1}, report.StatusBreakdown[1])
	assert.Equal(t, models.CountPoint{Label: "MAINTENANCE", Count: 1}, report.StatusBreakdown[2])
}

func TestBuildOccupancyReport_DedupesPropertiesWithOverlappingLeases(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Status: models.PropertyRented},
		{ID: 2, Status: models.PropertyRented},
		{ID: 3, Status: models.PropertyAvailable},
	}
	// Property 1 has two leases covering the same instant; it must count once.
	leases := []models.Lease{
		{PropertyID: 1, StartDate: date(2023, time.June, 1), EndDate: date(2024, time.June, 1)},
		{PropertyID: 1, StartDate: date(2024, time.January, 1), EndDate: date(2025, time.January, 1)},
		{PropertyID: 2, StartDate: date(2024, time.January, 15), EndDate: date(2024, time.December, 31)},
	}

	report := BuildOccupancyReport(properties, leases, date(2024, time.February, 1), date(2024, time.February, 29))

	require.Len(t, report.Trend, 1)
	assert.Equal(t, "Feb 2024", report.Trend[0].Period)
	assert.Equal(t, 2, report.Trend[0].Occupied)
	assert.Equal(t, 3, report.Trend[0].Total)
	assert.Equal(t, 67, report.Trend[0].Rate)
}

func TestBuildOccupancyReport_EvaluatesFirstDayOfEachMonth(t *testing.T) {
	properties := []models.Property{{ID: 1, Status: models.PropertyAvailable}}
	// Lease runs Mar 10 - Apr 20: inactive on Mar 1, active on Apr 1.
	leases := []models.Lease{
		{PropertyID: 1, StartDate: date(2024, time.March, 10), EndDate: date(2024, time.April, 20)},
	}

	report := BuildOccupancyReport(properties, leases, date(2024, time.March, 5), date(2024, time.April, 25))

	require.Len(t, report.Trend, 2)
	assert.Equal(t, 0, report.Trend[0].Occupied)
	assert.Equal(t, 1, report.Trend[1].Occupied)
	assert.Equal(t, 100, report.Trend[1].Rate)
}

func TestBuildOccupancyReport_NoProperties(t *testing.T) {
	report := BuildOccupancyReport(nil, nil, date(2024, time.March, 1), date(2024, time.March, 31))

	assert.Equal(t, 0, report.Summary.CurrentOccupancyRate)
	assert.Equal(t, 0, report.Summary.TotalProperties)
	require.Len(t, report.Trend, 1)
	assert.Equal(t, 0, report.Trend[0].Rate)
}

func TestBuildOccupancyReport_RateWithinBounds(t *testing.T) {
	properties := []models.Property{
		{ID: 1, Status: models.PropertyRented},
		{ID: 2, Status: models.PropertyRented},
	}
	leases := []models.Lease{
		{PropertyID: 1, StartDate: date(2023, time.January, 1), EndDate: date(2025, time.January, 1)},
		{PropertyID: 2, StartDate: date(2023, time.January, 1), EndDate: date(2025, time.January, 1)},
	}

	report := BuildOccupancyReport(properties, leases, date(2024, time.January, 1), date(2024, time.June, 30))

	for _, point := range report.Trend {
		assert.GreaterOrEqual(t, point.Rate, 0)
		assert.LessOrEqual(t, point.Rate, 100)
	}
	assert.Equal(t, 100, report.Trend[0].Rate)
}
