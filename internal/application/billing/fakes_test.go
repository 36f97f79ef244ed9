package billing_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// memStore almacén en memoria que aplica las mismas restricciones que la base:
// UNIQUE(user_id, invoice_number) y filtrado por dueño.
type memStore struct {
	mu       sync.Mutex
	invoices map[string]entity.Invoice
	clients  map[string]entity.Client
	txCalls  int
}

func newMemStore() *memStore {
	return &memStore{invoices: map[string]entity.Invoice{}, clients: map[string]entity.Client{}}
}

// RunBilling no aísla: la restricción de unicidad vive en Create/Update como en PostgreSQL.
func (s *memStore) RunBilling(_ context.Context, fn func(repository.InvoiceRepository, repository.ClientRepository) error) error {
	s.mu.Lock()
	s.txCalls++
	s.mu.Unlock()
	return fn(memInvoiceRepo{s}, memClientRepo{s})
}

type memInvoiceRepo struct{ s *memStore }

func (r memInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.invoices {
		if other.UserID == inv.UserID && other.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r memInvoiceRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok || inv.UserID != ownerID {
		return nil, nil
	}
	return &inv, nil
}

func (r memInvoiceRepo) GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Invoice, error) {
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

func (r memInvoiceRepo) GetByOwnerAndNumber(_ context.Context, ownerID, number string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.UserID == ownerID && inv.InvoiceNumber == number {
			cp := inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memInvoiceRepo) ListByOwner(_ context.Context, ownerID string, filter repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.UserID != ownerID || (filter.Status != "" && inv.Status != filter.Status) {
			continue
		}
		cp := inv
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r memInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.invoices[inv.ID]
	if !ok || cur.UserID != inv.UserID {
		return domain.ErrNotFound
	}
	for id, other := range r.s.invoices {
		if id != inv.ID && other.UserID == inv.UserID && other.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r memInvoiceRepo) Delete(_ context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok || inv.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

func (r memInvoiceRepo) SummaryByOwner(_ context.Context, ownerID string) ([]entity.InvoiceStatusTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acc := map[string]*entity.InvoiceStatusTotal{}
	for _, inv := range r.s.invoices {
		if inv.UserID != ownerID {
			continue
		}
		t, ok := acc[inv.Status]
		if !ok {
			t = &entity.InvoiceStatusTotal{Status: inv.Status, Amount: decimal.Zero}
			acc[inv.Status] = t
		}
		t.Count++
		t.Amount = t.Amount.Add(inv.Amount)
	}
	out := make([]entity.InvoiceStatusTotal, 0, len(acc))
	for _, t := range acc {
		out = append(out, *t)
	}
	return out, nil
}

type memClientRepo struct{ s *memStore }

func (r memClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = *c
	return nil
}

func (r memClientRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	return &c, nil
}

func (r memClientRepo) GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Client, error) {
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

func (r memClientRepo) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Client
	for _, c := range r.s.clients {
		if c.UserID == ownerID {
			cp := c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r memClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.clients[c.ID]
	if !ok || cur.UserID != c.UserID {
		return domain.ErrNotFound
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r memClientRepo) Delete(_ context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}
