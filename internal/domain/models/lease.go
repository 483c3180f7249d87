package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lease is an immutable snapshot of a rental agreement. StartDate is always
// strictly before EndDate; IsActive reflects the administrative state and is
// toggled upstream, never here.
type Lease struct {
	ID            int64           `json:"id"`
	PropertyID    int64           `json:"property_id"`
	TenantID      int64           `json:"tenant_id"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	RentAmount    decimal.Decimal `json:"rent_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	IsActive      bool            `json:"is_active"`
}

// DurationDays returns the lease term length in whole days.
func (l Lease) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate) / (24 * time.Hour))
}
