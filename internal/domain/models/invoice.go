package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus enumerates invoice lifecycle states.
type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "PENDING"
	InvoicePaid      InvoiceStatus = "PAID"
	InvoiceOverdue   InvoiceStatus = "OVERDUE"
	InvoiceCancelled InvoiceStatus = "CANCELLED"
)

// Invoice represents a revenue-recognition event dated at creation time.
type Invoice struct {
	ID         int64           `json:"id"`
	TenantID   int64           `json:"tenant_id"`
	PropertyID int64           `json:"property_id"`
	LeaseID    int64           `json:"lease_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
	Status     InvoiceStatus   `json:"status"`
}
