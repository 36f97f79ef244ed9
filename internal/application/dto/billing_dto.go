package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de issue_date y due_date.
const DateLayout = "2006-01-02"

// CreateInvoiceRequest body para POST /invoices. Status vacío => draft.
type CreateInvoiceRequest struct {
	InvoiceNumber string          `json:"invoice_number" validate:"required,min=1,max=100"`
	CustomerName  string          `json:"customer_name" validate:"required,min=1,max=200"`
	CustomerEmail *string         `json:"customer_email,omitempty" validate:"omitempty,email"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue"`
	Description   *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	IssueDate     string          `json:"issue_date" validate:"required,datetime=2006-01-02"`
	DueDate       string          `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// UpdateInvoiceRequest body para PUT /invoices/:id. Solo se aplican los campos presentes.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string          `json:"invoice_number,omitempty" validate:"omitempty,min=1,max=100"`
	CustomerName  *string          `json:"customer_name,omitempty" validate:"omitempty,min=1,max=200"`
	CustomerEmail *string          `json:"customer_email,omitempty" validate:"omitempty,email"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,oneof=draft sent paid overdue"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	IssueDate     *string          `json:"issue_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DueDate       *string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ListInvoicesQuery filtros de GET /invoices.
type ListInvoicesQuery struct {
	PageRequest
	Status string `query:"status"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail *string         `json:"customer_email"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Description   *string         `json:"description"`
	IssueDate     string          `json:"issue_date"`
	DueDate       string          `json:"due_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InvoiceStatusSummary totales de un estado.
type InvoiceStatusSummary struct {
	Status string          `json:"status"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceSummaryResponse resumen para GET /invoices/summary; incluye los cuatro estados aunque estén en cero.
type InvoiceSummaryResponse struct {
	TotalCount  int                    `json:"total_count"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	ByStatus    []InvoiceStatusSummary `json:"by_status"`
}

// CreateClientRequest body para POST /clients.
type CreateClientRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=200"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// UpdateClientRequest body para PUT /clients/:id.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=50"`
	Company *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	ZipCode *string `json:"zip_code,omitempty" validate:"omitempty,max=20"`
	Country *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Notes   *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Company   *string   `json:"company"`
	Address   *string   `json:"address"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zip_code"`
	Country   *string   `json:"country"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
