package models

// Fetch filters are forwarded to the RentalHub API as query parameters.
// Zero values mean "no filter"; reports fetch unfiltered collections and
// classify client-side.

// PropertyFilter narrows property fetches.
type PropertyFilter struct {
	Status PropertyStatus
	City   string
}

// LeaseFilter narrows lease fetches.
type LeaseFilter struct {
	ActiveOnly bool
	PropertyID int64
}

// InvoiceFilter narrows invoice fetches.
type InvoiceFilter struct {
	Status   InvoiceStatus
	TenantID int64
}

// PaymentFilter narrows payment fetches.
type PaymentFilter struct {
	InvoiceID int64
}

// TicketFilter narrows maintenance ticket fetches.
type TicketFilter struct {
	Status   TicketStatus
	Priority TicketPriority
}
