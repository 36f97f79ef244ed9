package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una factura.
const (
	InvoiceStatusDraft   = "draft"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// InvoiceStatuses enumeración cerrada usada para validar filtros y entradas.
var InvoiceStatuses = []string{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
}

// IsValidInvoiceStatus indica si s pertenece a la enumeración de estados.
func IsValidInvoiceStatus(s string) bool {
	for _, st := range InvoiceStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Invoice representa una factura de un usuario.
// InvoiceNumber es único por dueño (UserID), no globalmente.
type Invoice struct {
	ID            string
	UserID        string
	InvoiceNumber string
	CustomerName  string
	CustomerEmail *string
	Amount        decimal.Decimal // NUMERIC(10,2)
	Status        string
	Description   *string
	IssueDate     time.Time // DATE
	DueDate       time.Time // DATE
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceStatusTotal agregado por estado para el resumen del dueño.
type InvoiceStatusTotal struct {
	Status string
	Count  int
	Amount decimal.Decimal
}
