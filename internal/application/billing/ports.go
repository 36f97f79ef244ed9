package billing

import (
	"context"

	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// BillingTxRunner ejecuta fn dentro de una transacción con los repos de facturas y clientes atados a ella.
// Si fn devuelve error se hace rollback.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		clientRepo repository.ClientRepository,
	) error) error
}
