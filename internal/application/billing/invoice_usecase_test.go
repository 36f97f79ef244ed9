package billing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Invoicing-api/internal/application/billing"
	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
)

const (
	ownerA = "00000000-0000-0000-0000-00000000000a"
	ownerB = "00000000-0000-0000-0000-00000000000b"
)

func newInvoiceUC() (*billing.InvoiceUseCase, *memStore) {
	s := newMemStore()
	return billing.NewInvoiceUseCase(s, memInvoiceRepo{s}), s
}

func createReq(number string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: number,
		CustomerName:  "Acme",
		Amount:        decimal.RequireFromString("1500.00"),
		IssueDate:     "2024-01-01",
		DueDate:       "2024-01-31",
	}
}

func strPtr(s string) *string { return &s }

func TestInvoiceCreate_DraftPorDefectoYDueño(t *testing.T) {
	uc, s := newInvoiceUC()

	inv, err := uc.Create(context.Background(), ownerA, createReq("INV-1"))
	require.NoError(t, err)

	assert.Equal(t, "draft", inv.Status)
	assert.Equal(t, ownerA, inv.UserID)
	assert.Equal(t, "INV-1", inv.InvoiceNumber)
	assert.True(t, decimal.RequireFromString("1500").Equal(inv.Amount))
	assert.Equal(t, "2024-01-01", inv.IssueDate)
	assert.Equal(t, "2024-01-31", inv.DueDate)
	assert.Equal(t, 1, s.txCalls)
}

func TestInvoiceCreate_NumeroDuplicadoPorDueño(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, ownerA, createReq("INV-1"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, ownerA, createReq("INV-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// otro dueño puede usar el mismo número
	_, err = uc.Create(ctx, ownerB, createReq("INV-1"))
	assert.NoError(t, err)
}

func TestInvoiceCreate_ConcurrenteSoloUnoGana(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Create(ctx, ownerA, createReq("INV-RACE"))
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case assert.ErrorIs(t, err, domain.ErrDuplicate):
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
}

func TestInvoiceCreate_Validaciones(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	cases := map[string]func(r *dto.CreateInvoiceRequest){
		"monto cero":     func(r *dto.CreateInvoiceRequest) { r.Amount = decimal.Zero },
		"monto negativo": func(r *dto.CreateInvoiceRequest) { r.Amount = decimal.NewFromInt(-5) },
		"monto enorme":   func(r *dto.CreateInvoiceRequest) { r.Amount = decimal.NewFromInt(100000000) },
		"estado":         func(r *dto.CreateInvoiceRequest) { r.Status = "archived" },
		"fecha":          func(r *dto.CreateInvoiceRequest) { r.IssueDate = "01/02/2024" },
		"número vacío":   func(r *dto.CreateInvoiceRequest) { r.InvoiceNumber = "   " },
		"cliente vacío":  func(r *dto.CreateInvoiceRequest) { r.CustomerName = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := createReq("INV-" + name)
			mutate(&req)
			_, err := uc.Create(ctx, ownerA, req)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInvoice_AislamientoPorDueño(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	inv, err := uc.Create(ctx, ownerA, createReq("INV-1"))
	require.NoError(t, err)

	_, err = uc.Get(ctx, ownerB, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(ctx, ownerB, inv.ID, dto.UpdateInvoiceRequest{Status: strPtr("paid")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, ownerB, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	listB, err := uc.List(ctx, ownerB, dto.ListInvoicesQuery{})
	require.NoError(t, err)
	assert.Empty(t, listB)

	got, err := uc.Get(ctx, ownerA, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Status)

	require.NoError(t, uc.Delete(ctx, ownerA, inv.ID))
	_, err = uc.Get(ctx, ownerA, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoice_IDMalformadoEsNotFound(t *testing.T) {
	uc, s := newInvoiceUC()
	ctx := context.Background()

	_, err := uc.Get(ctx, ownerA, "42")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.Update(ctx, ownerA, "no-uuid", dto.UpdateInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, ownerA, ""), domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, ownerA, uuid.NewString()), domain.ErrNotFound)
	assert.Equal(t, 1, s.txCalls)
}

func TestInvoiceUpdate_ParcialConservaElResto(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	req := createReq("INV-1")
	req.Description = strPtr("servicios")
	req.CustomerEmail = strPtr("billing@acme.test")
	before, err := uc.Create(ctx, ownerA, req)
	require.NoError(t, err)

	after, err := uc.Update(ctx, ownerA, before.ID, dto.UpdateInvoiceRequest{Status: strPtr("paid")})
	require.NoError(t, err)

	assert.Equal(t, "paid", after.Status)
	assert.Equal(t, before.InvoiceNumber, after.InvoiceNumber)
	assert.Equal(t, before.CustomerName, after.CustomerName)
	assert.Equal(t, before.CustomerEmail, after.CustomerEmail)
	assert.True(t, before.Amount.Equal(after.Amount))
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.IssueDate, after.IssueDate)
	assert.Equal(t, before.DueDate, after.DueDate)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestInvoiceUpdate_NumeroExcluyePropiaFactura(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	one, err := uc.Create(ctx, ownerA, createReq("INV-1"))
	require.NoError(t, err)
	_, err = uc.Create(ctx, ownerA, createReq("INV-2"))
	require.NoError(t, err)

	// mismo número que ya tiene: permitido
	_, err = uc.Update(ctx, ownerA, one.ID, dto.UpdateInvoiceRequest{InvoiceNumber: strPtr("INV-1")})
	assert.NoError(t, err)

	_, err = uc.Update(ctx, ownerA, one.ID, dto.UpdateInvoiceRequest{InvoiceNumber: strPtr("INV-2")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	renamed, err := uc.Update(ctx, ownerA, one.ID, dto.UpdateInvoiceRequest{InvoiceNumber: strPtr("INV-3")})
	require.NoError(t, err)
	assert.Equal(t, "INV-3", renamed.InvoiceNumber)
}

func TestInvoiceUpdate_ValoresInvalidos(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()
	inv, err := uc.Create(ctx, ownerA, createReq("INV-1"))
	require.NoError(t, err)

	zero := decimal.Zero
	for name, in := range map[string]dto.UpdateInvoiceRequest{
		"estado": {Status: strPtr("bogus")},
		"monto":  {Amount: &zero},
		"fecha":  {DueDate: strPtr("2024-13-40")},
		"número": {InvoiceNumber: strPtr("")},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Update(ctx, ownerA, inv.ID, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	got, err := uc.Get(ctx, ownerA, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", got.Status)
}

func TestInvoiceList_FiltroYPaginacion(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	for _, n := range []string{"INV-1", "INV-2", "INV-3"} {
		_, err := uc.Create(ctx, ownerA, createReq(n))
		require.NoError(t, err)
	}
	paid := createReq("INV-4")
	paid.Status = "paid"
	_, err := uc.Create(ctx, ownerA, paid)
	require.NoError(t, err)

	all, err := uc.List(ctx, ownerA, dto.ListInvoicesQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	drafts, err := uc.List(ctx, ownerA, dto.ListInvoicesQuery{Status: "draft"})
	require.NoError(t, err)
	assert.Len(t, drafts, 3)

	limit := 2
	page, err := uc.List(ctx, ownerA, dto.ListInvoicesQuery{PageRequest: dto.PageRequest{Limit: &limit}})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	_, err = uc.List(ctx, ownerA, dto.ListInvoicesQuery{Status: "bogus"})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	neg := -1
	_, err = uc.List(ctx, ownerA, dto.ListInvoicesQuery{PageRequest: dto.PageRequest{Limit: &neg}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceSummary_TotalesPorEstado(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	for i, st := range []string{"draft", "paid", "paid"} {
		req := createReq("INV-" + string(rune('A'+i)))
		req.Status = st
		req.Amount = decimal.NewFromInt(int64(100 * (i + 1)))
		_, err := uc.Create(ctx, ownerA, req)
		require.NoError(t, err)
	}
	_, err := uc.Create(ctx, ownerB, createReq("INV-B"))
	require.NoError(t, err)

	sum, err := uc.Summary(ctx, ownerA)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.TotalCount)
	assert.True(t, decimal.NewFromInt(600).Equal(sum.TotalAmount))
	require.Len(t, sum.ByStatus, 4)
	byStatus := map[string]dto.InvoiceStatusSummary{}
	for _, s := range sum.ByStatus {
		byStatus[s.Status] = s
	}
	assert.Equal(t, 1, byStatus["draft"].Count)
	assert.Equal(t, 2, byStatus["paid"].Count)
	assert.True(t, decimal.NewFromInt(500).Equal(byStatus["paid"].Amount))
	assert.Equal(t, 0, byStatus["overdue"].Count)
}
