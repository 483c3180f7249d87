package rentalhub

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/config"
	"github.com/rentalhub/backoffice/internal/domain/models"
)

const dateLayout = "2006-01-02"

// APIClient is a resty-backed client for the RentalHub data API. It
// implements reporting.EntitySource.
type APIClient struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewClient builds a RentalHub API client from the provided configuration.
func NewClient(cfg config.RentalAPIConfig, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &APIClient{httpClient: restyClient, logger: logger}
}

// apiError mirrors the API's error payload.
type apiError struct {
	Detail string `json:"detail"`
}

type propertyDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	SquareFeet    float64 `json:"square_feet"`
	MonthlyRent   float64 `json:"monthly_rent"`
	DepositAmount float64 `json:"deposit_amount"`
}

type leaseDTO struct {
	ID            int64   `json:"id"`
	PropertyID    int64   `json:"property_id"`
	TenantID      int64   `json:"tenant_id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	RentAmount    float64 `json:"rent_amount"`
	DepositAmount float64 `json:"deposit_amount"`
	IsActive      bool    `json:"is_active"`
}

type invoiceDTO struct {
	ID         int64   `json:"id"`
	TenantID   int64   `json:"tenant_id"`
	PropertyID int64   `json:"property_id"`
	LeaseID    int64   `json:"lease_id"`
	Amount     float64 `json:"amount"`
	DueDate    string  `json:"due_date"`
	CreatedAt  string  `json:"created_at"`
	Status     string  `json:"status"`
}

type paymentDTO struct {
	ID            int64   `json:"id"`
	InvoiceID     int64   `json:"invoice_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
}

type ticketDTO struct {
	ID            int64    `json:"id"`
	PropertyID    int64    `json:"property_id"`
	TenantID      int64    `json:"tenant_id"`
	Title         string   `json:"title"`
	Status        string   `json:"status"`
	Priority      string   `json:"priority"`
	CreatedAt     string   `json:"created_at"`
	ResolvedAt    *string  `json:"resolved_at"`
	EstimatedCost *float64 `json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`
}

// FetchProperties retrieves property snapshots.
func (c *APIClient) FetchProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error) {
	params := map[string]string{}
	if filter.Status != "" {
		params["status"] = string(filter.Status)
	}
	if filter.City != "" {
		params["city"] = filter.City
	}

	var dtos []propertyDTO
	if err := c.getJSON(ctx, "/properties/", params, &dtos); err != nil {
		return nil, fmt.Errorf("fetch properties: %w", err)
	}

	properties := make([]models.Property, 0, len(dtos))
	for _, d := range dtos {
		properties = append(properties, models.Property{
			ID:            d.ID,
			Name:          d.Name,
			Address:       d.Address,
			City:          d.City,
			Category:      models.PropertyCategory(d.Category),
			Status:        models.PropertyStatus(d.Status),
			Bedrooms:      d.Bedrooms,
			Bathrooms:     d.Bathrooms,
			SquareFeet:    d.SquareFeet,
			MonthlyRent:   decimal.NewFromFloat(d.MonthlyRent),
			DepositAmount: decimal.NewFromFloat(d.DepositAmount),
		})
	}
	return properties, nil
}

// FetchLeases retrieves lease snapshots. Rows with unparseable dates are
// skipped rather than failing the whole fetch.
func (c *APIClient) FetchLeases(ctx context.Context, filter models.LeaseFilter) ([]models.Lease, error) {
	params := map[string]string{}
	if filter.ActiveOnly {
		params["is_active"] = "true"
	}
	if filter.PropertyID != 0 {
		params["property_id"] = strconv.FormatInt(filter.PropertyID, 10)
	}

	var dtos []leaseDTO
	if err := c.getJSON(ctx, "/leases/", params, &dtos); err != nil {
		return nil, fmt.Errorf("fetch leases: %w", err)
	}

	leases := make([]models.Lease, 0, len(dtos))
	for _, d := range dtos {
		start, err := parseDate(d.StartDate)
		if err != nil {
			c.logger.Debug("skip lease with invalid start date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}
		end, err := parseDate(d.EndDate)
		if err != nil {
			c.logger.Debug("skip lease with invalid end date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}

		leases = append(leases, models.Lease{
			ID:            d.ID,
			PropertyID:    d.PropertyID,
			TenantID:      d.TenantID,
			StartDate:     start,
			EndDate:       end,
			RentAmount:    decimal.NewFromFloat(d.RentAmount),
			DepositAmount: decimal.NewFromFloat(d.DepositAmount),
			IsActive:      d.IsActive,
		})
	}
	return leases, nil
}

// FetchInvoices retrieves invoice snapshots.
func (c *APIClient) FetchInvoices(ctx context.Context, filter models.InvoiceFilter) ([]models.Invoice, error) {
	params := map[string]string{}
	if filter.Status != "" {
		params["status"] = string(filter.Status)
	}
	if filter.TenantID != 0 {
		params["tenant_id"] = strconv.FormatInt(filter.TenantID, 10)
	}

	var dtos []invoiceDTO
	if err := c.getJSON(ctx, "/invoices/", params, &dtos); err != nil {
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}

	invoices := make([]models.Invoice, 0, len(dtos))
	for _, d := range dtos {
		createdAt, err := parseDate(d.CreatedAt)
		if err != nil {
			c.logger.Debug("skip invoice with invalid creation date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}
		dueDate, err := parseDate(d.DueDate)
		if err != nil {
			c.logger.Debug("skip invoice with invalid due date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}

		invoices = append(invoices, models.Invoice{
			ID:         d.ID,
			TenantID:   d.TenantID,
			PropertyID: d.PropertyID,
			LeaseID:    d.LeaseID,
			Amount:     decimal.NewFromFloat(d.Amount),
			DueDate:    dueDate,
			CreatedAt:  createdAt,
			Status:     models.InvoiceStatus(d.Status),
		})
	}
	return invoices, nil
}

// FetchPayments retrieves payment snapshots.
func (c *APIClient) FetchPayments(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	params := map[string]string{}
	if filter.InvoiceID != 0 {
		params["invoice_id"] = strconv.FormatInt(filter.InvoiceID, 10)
	}

	var dtos []paymentDTO
	if err := c.getJSON(ctx, "/payments/", params, &dtos); err != nil {
		return nil, fmt.Errorf("fetch payments: %w", err)
	}

	payments := make([]models.Payment, 0, len(dtos))
	for _, d := range dtos {
		paidAt, err := parseDate(d.PaymentDate)
		if err != nil {
			c.logger.Debug("skip payment with invalid date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}

		payments = append(payments, models.Payment{
			ID:          d.ID,
			InvoiceID:   d.InvoiceID,
			Amount:      decimal.NewFromFloat(d.Amount),
			PaymentDate: paidAt,
			Method:      models.PaymentMethod(d.PaymentMethod),
		})
	}
	return payments, nil
}

// FetchMaintenanceTickets retrieves maintenance ticket snapshots.
func (c *APIClient) FetchMaintenanceTickets(ctx context.Context, filter models.TicketFilter) ([]models.MaintenanceTicket, error) {
	params := map[string]string{}
	if filter.Status != "" {
		params["status"] = string(filter.Status)
	}
	if filter.Priority != "" {
		params["priority"] = string(filter.Priority)
	}

	var dtos []ticketDTO
	if err := c.getJSON(ctx, "/maintenance/", params, &dtos); err != nil {
		return nil, fmt.Errorf("fetch maintenance tickets: %w", err)
	}

	tickets := make([]models.MaintenanceTicket, 0, len(dtos))
	for _, d := range dtos {
		createdAt, err := parseDate(d.CreatedAt)
		if err != nil {
			c.logger.Debug("skip ticket with invalid creation date", zap.Int64("id", d.ID), zap.Error(err))
			continue
		}

		ticket := models.MaintenanceTicket{
			ID:         d.ID,
			PropertyID: d.PropertyID,
			TenantID:   d.TenantID,
			Title:      d.Title,
			Status:     models.TicketStatus(d.Status),
			Priority:   models.TicketPriority(d.Priority),
			CreatedAt:  createdAt,
		}
		if d.ResolvedAt != nil {
			resolvedAt, err := parseDate(*d.ResolvedAt)
			if err != nil {
				c.logger.Debug("skip ticket resolution date", zap.Int64("id", d.ID), zap.Error(err))
			} else {
				ticket.ResolvedAt = &resolvedAt
			}
		}
		if d.ActualCost != nil {
			cost := decimal.NewFromFloat(*d.ActualCost)
			ticket.ActualCost = &cost
		}
		if d.EstimatedCost != nil {
			estimate := decimal.NewFromFloat(*d.EstimatedCost)
			ticket.EstimatedCost = &estimate
		}

		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func (c *APIClient) getJSON(ctx context.Context, path string, params map[string]string, out any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(out).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return err
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("rentalhub api error: status=%d, detail=%s", resp.StatusCode(), apiErr.Detail)
	}
	return nil
}

// parseDate accepts both date-only and timestamp strings; anything past the
// date prefix is ignored.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if len(value) > len(dateLayout) {
		value = value[:len(dateLayout)]
	}
	return time.Parse(dateLayout, value)
}
