package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// memStore sustituye a PostgreSQL en los tests HTTP con las mismas restricciones de unicidad y dueño.
type memStore struct {
	mu       sync.Mutex
	users    []*entity.User
	invoices map[string]entity.Invoice
	clients  map[string]entity.Client
}

func newMemStore() *memStore {
	return &memStore{invoices: map[string]entity.Invoice{}, clients: map[string]entity.Client{}}
}

func (s *memStore) RunBilling(_ context.Context, fn func(repository.InvoiceRepository, repository.ClientRepository) error) error {
	return fn(memInvoices{s}, memClients{s})
}

func (s *memStore) setActive(email string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			u.IsActive = active
		}
	}
}

// usuarios

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r memUsers) find(match func(*entity.User) bool) *entity.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			cp := *u
			return &cp
		}
	}
	return nil
}

func (r memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r memUsers) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for i, u := range r.s.users {
		if i >= offset && len(out) < limit {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

// facturas

type memInvoices struct{ s *memStore }

func (r memInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.invoices {
		if o.UserID == inv.UserID && o.InvoiceNumber == inv.InvoiceNumber {
			return domain.ErrDuplicate
		}
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r memInvoices) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok || inv.UserID != ownerID {
		return nil, nil
	}
	return &inv, nil
}

func (r memInvoices) GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Invoice, error) {
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

func (r memInvoices) GetByOwnerAndNumber(_ context.Context, ownerID, number string) (*entity.Invoice, error) {
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

func (r memInvoices) ListByOwner(_ context.Context, ownerID string, f repository.InvoiceFilter, limit, offset int) ([]*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Invoice
	for _, inv := range r.s.invoices {
		if inv.UserID == ownerID && (f.Status == "" || inv.Status == f.Status) {
			cp := inv
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].InvoiceNumber < all[j].InvoiceNumber })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r memInvoices) Update(_ context.Context, inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.invoices[inv.ID]; !ok || cur.UserID != inv.UserID {
		return domain.ErrNotFound
	}
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r memInvoices) Delete(_ context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.invoices[id]; !ok || cur.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

func (r memInvoices) SummaryByOwner(_ context.Context, ownerID string) ([]entity.InvoiceStatusTotal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	acc := map[string]entity.InvoiceStatusTotal{}
	for _, inv := range r.s.invoices {
		if inv.UserID != ownerID {
			continue
		}
		t := acc[inv.Status]
		t.Status = inv.Status
		t.Count++
		t.Amount = t.Amount.Add(inv.Amount)
		acc[inv.Status] = t
	}
	out := make([]entity.InvoiceStatusTotal, 0, len(acc))
	for _, t := range acc {
		out = append(out, t)
	}
	return out, nil
}

// clientes

type memClients struct{ s *memStore }

func (r memClients) Create(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.clients[c.ID] = *c
	return nil
}

func (r memClients) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.clients[id]
	if !ok || c.UserID != ownerID {
		return nil, nil
	}
	return &c, nil
}

func (r memClients) GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Client, error) {
	return r.GetByIDAndOwner(ctx, id, ownerID)
}

func (r memClients) ListByOwner(_ context.Context, ownerID string, limit, offset int) ([]*entity.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*entity.Client
	for _, c := range r.s.clients {
		if c.UserID == ownerID {
			cp := c
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r memClients) Update(_ context.Context, c *entity.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.clients[c.ID]; !ok || cur.UserID != c.UserID {
		return domain.ErrNotFound
	}
	r.s.clients[c.ID] = *c
	return nil
}

func (r memClients) Delete(_ context.Context, id, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if cur, ok := r.s.clients[id]; !ok || cur.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.s.clients, id)
	return nil
}
