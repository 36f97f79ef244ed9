package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, user_id, invoice_number, customer_name, customer_email, amount, status,
	description, issue_date, due_date, created_at, updated_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. UNIQUE(user_id, invoice_number) => domain.ErrDuplicate.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.InvoiceNumber, inv.CustomerName, inv.CustomerEmail, inv.Amount, inv.Status,
		inv.Description, inv.IssueDate, inv.DueDate, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %q ya existe", domain.ErrDuplicate, inv.InvoiceNumber)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByIDAndOwner obtiene la factura solo si pertenece a ownerID.
func (r *InvoiceRepo) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Invoice, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2`
	return r.findOne(ctx, query, id, ownerID)
}

// GetByIDAndOwnerForUpdate igual que GetByIDAndOwner pero bloquea la fila (usar dentro de RunBilling).
func (r *InvoiceRepo) GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Invoice, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 AND user_id = $2 FOR UPDATE`
	return r.findOne(ctx, query, id, ownerID)
}

// GetByOwnerAndNumber busca por número dentro de las facturas del dueño.
func (r *InvoiceRepo) GetByOwnerAndNumber(ctx context.Context, ownerID, number string) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id = $1 AND invoice_number = $2`
	return r.findOne(ctx, query, ownerID, number)
}

// ListByOwner lista las facturas del dueño; filter.Status vacío no filtra.
func (r *InvoiceRepo) ListByOwner(ctx context.Context, ownerID string, filter repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE user_id = $1 AND ($2::text = '' OR status = $2)
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, ownerID, filter.Status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update reescribe los campos editables de la factura del dueño.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices SET invoice_number = $3, customer_name = $4, customer_email = $5, amount = $6,
			status = $7, description = $8, issue_date = $9, due_date = $10, updated_at = $11
		WHERE id = $1 AND user_id = $2`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.UserID, inv.InvoiceNumber, inv.CustomerName, inv.CustomerEmail, inv.Amount,
		inv.Status, inv.Description, inv.IssueDate, inv.DueDate, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número de factura %q ya existe", domain.ErrDuplicate, inv.InvoiceNumber)
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la factura del dueño; ninguna fila afectada => domain.ErrNotFound.
func (r *InvoiceRepo) Delete(ctx context.Context, id, ownerID string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SummaryByOwner cantidad y suma de montos por estado.
func (r *InvoiceRepo) SummaryByOwner(ctx context.Context, ownerID string) ([]entity.InvoiceStatusTotal, error) {
	query := `
		SELECT status, COUNT(*), COALESCE(SUM(amount), 0)
		FROM invoices
		WHERE user_id = $1
		GROUP BY status
		ORDER BY status`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("summary invoices: %w", err)
	}
	defer rows.Close()
	var out []entity.InvoiceStatusTotal
	for rows.Next() {
		var t entity.InvoiceStatusTotal
		if err := rows.Scan(&t.Status, &t.Count, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *InvoiceRepo) findOne(ctx context.Context, query string, args ...any) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerEmail, &inv.Amount, &inv.Status,
		&inv.Description, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
