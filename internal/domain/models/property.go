package models

import "github.com/shopspring/decimal"

// PropertyStatus enumerates the lifecycle states a property can be in.
type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "AVAILABLE"
	PropertyRented      PropertyStatus = "RENTED"
	PropertyMaintenance PropertyStatus = "MAINTENANCE"
)

// AllPropertyStatuses returns the statuses in their reporting display order.
func AllPropertyStatuses() []PropertyStatus {
	return []PropertyStatus{PropertyRented, PropertyAvailable, PropertyMaintenance}
}

// PropertyCategory enumerates supported property categories.
type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "RESIDENTIAL"
	CategoryCommercial  PropertyCategory = "COMMERCIAL"
	CategoryIndustrial  PropertyCategory = "INDUSTRIAL"
)

// Property is an immutable snapshot of a managed property as returned by the
// RentalHub API.
type Property struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	City          string           `json:"city"`
	Category      PropertyCategory `json:"category"`
	Status        PropertyStatus   `json:"status"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	SquareFeet    float64          `json:"square_feet"`
	MonthlyRent   decimal.Decimal  `json:"monthly_rent"`
	DepositAmount decimal.Decimal  `json:"deposit_amount"`
}
