package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TicketStatus enumerates maintenance ticket lifecycle states.
type TicketStatus string

const (
	TicketPending    TicketStatus = "PENDING"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketCancelled  TicketStatus = "CANCELLED"
)

// AllTicketStatuses returns the statuses in their reporting display order.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{TicketPending, TicketInProgress, TicketResolved, TicketCancelled}
}

// TicketPriority enumerates maintenance ticket priorities.
type TicketPriority string

const (
	PriorityLow       TicketPriority = "LOW"
	PriorityMedium    TicketPriority = "MEDIUM"
	PriorityHigh      TicketPriority = "HIGH"
	PriorityEmergency TicketPriority = "EMERGENCY"
)

// AllTicketPriorities returns the priorities from lowest to highest.
func AllTicketPriorities() []TicketPriority {
	return []TicketPriority{PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency}
}

// MaintenanceTicket is an immutable snapshot of a maintenance request.
// ResolvedAt is set only once the ticket reaches RESOLVED; ActualCost only
// once the resolved work has been costed.
type MaintenanceTicket struct {
	ID            int64            `json:"id"`
	PropertyID    int64            `json:"property_id"`
	TenantID      int64            `json:"tenant_id"`
	Title         string           `json:"title"`
	Status        TicketStatus     `json:"status"`
	Priority      TicketPriority   `json:"priority"`
	CreatedAt     time.Time        `json:"created_at"`
	ResolvedAt    *time.Time       `json:"resolved_at,omitempty"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost,omitempty"`
	ActualCost    *decimal.Decimal `json:"actual_cost,omitempty"`
}
