package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// límite de NUMERIC(10,2)
var maxAmount = decimal.RequireFromString("99999999.99")

// InvoiceUseCase CRUD de facturas acotado al dueño. Las mutaciones corren en una transacción.
type InvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(txRunner BillingTxRunner, invoiceRepo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{txRunner: txRunner, invoiceRepo: invoiceRepo, now: time.Now}
}

// Create crea la factura para ownerID. Número repetido para el mismo dueño => ErrDuplicate.
func (uc *InvoiceUseCase) Create(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	number := strings.TrimSpace(in.InvoiceNumber)
	customer := strings.TrimSpace(in.CustomerName)
	if number == "" || customer == "" {
		return nil, fmt.Errorf("%w: invoice_number y customer_name son obligatorios", domain.ErrInvalidInput)
	}
	amount, err := validAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	if !entity.IsValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: status debe ser draft, sent, paid u overdue", domain.ErrInvalidInput)
	}
	issue, err := parseDate("issue_date", in.IssueDate)
	if err != nil {
		return nil, err
	}
	due, err := parseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	invoice := &entity.Invoice{
		ID:            uuid.New().String(),
		UserID:        ownerID,
		InvoiceNumber: number,
		CustomerName:  customer,
		CustomerEmail: in.CustomerEmail,
		Amount:        amount,
		Status:        status,
		Description:   in.Description,
		IssueDate:     issue,
		DueDate:       due,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.ClientRepository) error {
		existing, err := invoiceRepo.GetByOwnerAndNumber(ctx, ownerID, number)
		if err != nil {
			return err
		}
		if existing != nil {
			return duplicateNumber(number)
		}
		return invoiceRepo.Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List lista las facturas del dueño, opcionalmente filtradas por estado.
func (uc *InvoiceUseCase) List(ctx context.Context, ownerID string, q dto.ListInvoicesQuery) ([]dto.InvoiceResponse, error) {
	if q.Status != "" && !entity.IsValidInvoiceStatus(q.Status) {
		return nil, fmt.Errorf("%w: status debe ser draft, sent, paid u overdue", domain.ErrInvalidFilter)
	}
	skip, limit, err := q.Resolve()
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByOwner(ctx, ownerID, repository.InvoiceFilter{Status: q.Status}, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// Get devuelve la factura si pertenece al dueño; ajena, inexistente o id malformado => ErrNotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, ownerID, id string) (*dto.InvoiceResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	invoice, err := uc.invoiceRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// Update aplica solo los campos presentes en in.
func (uc *InvoiceUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	var updated *entity.Invoice
	err := uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.ClientRepository) error {
		invoice, err := invoiceRepo.GetByIDAndOwnerForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if invoice == nil {
			return domain.ErrNotFound
		}
		if err := applyInvoiceUpdate(invoice, in); err != nil {
			return err
		}
		if in.InvoiceNumber != nil {
			other, err := invoiceRepo.GetByOwnerAndNumber(ctx, ownerID, invoice.InvoiceNumber)
			if err != nil {
				return err
			}
			if other != nil && other.ID != invoice.ID {
				return duplicateNumber(invoice.InvoiceNumber)
			}
		}
		invoice.UpdatedAt = uc.now().UTC()
		if err := invoiceRepo.Update(ctx, invoice); err != nil {
			return err
		}
		updated = invoice
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(updated), nil
}

// Delete elimina la factura del dueño.
func (uc *InvoiceUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, _ repository.ClientRepository) error {
		return invoiceRepo.Delete(ctx, id, ownerID)
	})
}

// Summary totales por estado del dueño; los estados sin facturas aparecen en cero.
func (uc *InvoiceUseCase) Summary(ctx context.Context, ownerID string) (*dto.InvoiceSummaryResponse, error) {
	totals, err := uc.invoiceRepo.SummaryByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	byStatus := make(map[string]entity.InvoiceStatusTotal, len(totals))
	for _, t := range totals {
		byStatus[t.Status] = t
	}
	out := &dto.InvoiceSummaryResponse{TotalAmount: decimal.Zero}
	for _, st := range entity.InvoiceStatuses {
		t := byStatus[st]
		out.ByStatus = append(out.ByStatus, dto.InvoiceStatusSummary{Status: st, Count: t.Count, Amount: t.Amount})
		out.TotalCount += t.Count
		out.TotalAmount = out.TotalAmount.Add(t.Amount)
	}
	return out, nil
}

func applyInvoiceUpdate(inv *entity.Invoice, in dto.UpdateInvoiceRequest) error {
	if in.InvoiceNumber != nil {
		number := strings.TrimSpace(*in.InvoiceNumber)
		if number == "" {
			return fmt.Errorf("%w: invoice_number no puede estar vacío", domain.ErrInvalidInput)
		}
		inv.InvoiceNumber = number
	}
	if in.CustomerName != nil {
		name := strings.TrimSpace(*in.CustomerName)
		if name == "" {
			return fmt.Errorf("%w: customer_name no puede estar vacío", domain.ErrInvalidInput)
		}
		inv.CustomerName = name
	}
	if in.CustomerEmail != nil {
		inv.CustomerEmail = in.CustomerEmail
	}
	if in.Amount != nil {
		amount, err := validAmount(*in.Amount)
		if err != nil {
			return err
		}
		inv.Amount = amount
	}
	if in.Status != nil {
		if !entity.IsValidInvoiceStatus(*in.Status) {
			return fmt.Errorf("%w: status debe ser draft, sent, paid u overdue", domain.ErrInvalidInput)
		}
		inv.Status = *in.Status
	}
	if in.Description != nil {
		inv.Description = in.Description
	}
	if in.IssueDate != nil {
		d, err := parseDate("issue_date", *in.IssueDate)
		if err != nil {
			return err
		}
		inv.IssueDate = d
	}
	if in.DueDate != nil {
		d, err := parseDate("due_date", *in.DueDate)
		if err != nil {
			return err
		}
		inv.DueDate = d
	}
	return nil
}

func validAmount(a decimal.Decimal) (decimal.Decimal, error) {
	if !a.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount debe ser mayor que 0", domain.ErrInvalidInput)
	}
	a = a.Round(2)
	if a.GreaterThan(maxAmount) || !a.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount fuera de rango", domain.ErrInvalidInput)
	}
	return a, nil
}

func parseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	return d, nil
}

func duplicateNumber(number string) error {
	return fmt.Errorf("%w: ya existe una factura con número %q", domain.ErrDuplicate, number)
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		UserID:        inv.UserID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		Amount:        inv.Amount.Round(2),
		Status:        inv.Status,
		Description:   inv.Description,
		IssueDate:     inv.IssueDate.Format(dto.DateLayout),
		DueDate:       inv.DueDate.Format(dto.DateLayout),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
