package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates supported payment channels.
type PaymentMethod string

const (
	MethodStripe       PaymentMethod = "STRIPE"
	MethodPayPal       PaymentMethod = "PAYPAL"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCash         PaymentMethod = "CASH"
	MethodCheck        PaymentMethod = "CHECK"
)

// Payment represents a cash-receipt event against an invoice.
type Payment struct {
	ID          int64           `json:"id"`
	InvoiceID   int64           `json:"invoice_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Method      PaymentMethod   `json:"payment_method"`
}
