package repository

import (
	"context"

	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
)

// InvoiceFilter filtros opcionales del listado; siempre se combinan con el dueño.
type InvoiceFilter struct {
	Status string // vacío = sin filtro
}

// InvoiceRepository define el puerto de persistencia para Invoice.
// Toda lectura y escritura se filtra por id y dueño (user_id).
type InvoiceRepository interface {
	// Create devuelve domain.ErrDuplicate si (user_id, invoice_number) ya existe.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Invoice, error)
	// GetByIDAndOwnerForUpdate bloquea la fila hasta el fin de la transacción.
	GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Invoice, error)
	GetByOwnerAndNumber(ctx context.Context, ownerID, number string) (*entity.Invoice, error)
	ListByOwner(ctx context.Context, ownerID string, filter InvoiceFilter, limit, offset int) ([]*entity.Invoice, error)
	// Update devuelve domain.ErrNotFound si la fila no es del dueño y domain.ErrDuplicate ante violación de unicidad.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id, ownerID string) error
	SummaryByOwner(ctx context.Context, ownerID string) ([]entity.InvoiceStatusTotal, error)
}
