// Package seed genera facturas aleatorias de prueba para un usuario existente.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Invoicing-api/internal/application/auth"
	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

var customerNames = []string{
	"Acme Corporation", "Tech Solutions Inc", "Global Services Ltd", "Digital Innovations",
	"Mega Industries", "Premier Consulting", "Advanced Systems", "Enterprise Solutions",
	"Innovative Technologies", "Professional Services Group", "Creative Agency Co",
	"Business Partners LLC", "Strategic Solutions", "Market Leaders Inc", "Prime Services",
}

var customerEmails = []string{
	"billing@acmecorp.com", "finance@techsolutions.com", "accounts@globalservices.com",
	"invoice@digitalinnov.com", "payments@megaindustries.com", "billing@premierconsult.com",
	"finance@advancedsys.com", "accounts@enterprisesol.com",
}

var descriptions = []string{
	"Web development services", "Consulting services", "Software licensing",
	"Maintenance and support", "Cloud hosting services", "Marketing services",
	"Design services", "Training services", "Monthly subscription", "Integration services",
}

// InvoiceCreator lo implementa *billing.InvoiceUseCase.
type InvoiceCreator interface {
	Create(ctx context.Context, ownerID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
}

// Result resumen de una ejecución.
type Result struct {
	Created  int
	Skipped  int // número ya existente para el usuario
	ByStatus map[string]int
	Total    decimal.Decimal
}

// Seeder crea facturas aleatorias usando el mismo caso de uso que la API.
type Seeder struct {
	users    repository.UserRepository
	invoices InvoiceCreator
	rnd      *rand.Rand
	today    func() time.Time
}

func NewSeeder(users repository.UserRepository, invoices InvoiceCreator, rnd *rand.Rand) *Seeder {
	return &Seeder{users: users, invoices: invoices, rnd: rnd, today: time.Now}
}

// Run crea count facturas INV-<start+i> para el usuario con ese email.
func (s *Seeder) Run(ctx context.Context, email string, count, start int) (*Result, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count debe ser mayor que cero", domain.ErrInvalidInput)
	}
	user, err := s.users.GetByEmail(ctx, auth.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, email)
	}

	res := &Result{ByStatus: map[string]int{}}
	for i := 0; i < count; i++ {
		in := s.Invoice(fmt.Sprintf("INV-%06d", start+i))
		out, err := s.invoices.Create(ctx, user.ID, in)
		if errors.Is(err, domain.ErrDuplicate) {
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("factura %s: %w", in.InvoiceNumber, err)
		}
		res.Created++
		res.ByStatus[out.Status]++
		res.Total = res.Total.Add(out.Amount)
	}
	return res, nil
}

// Invoice arma una solicitud aleatoria: 20% draft, 30% sent, 40% paid, 10% overdue.
func (s *Seeder) Invoice(number string) dto.CreateInvoiceRequest {
	in := dto.CreateInvoiceRequest{
		InvoiceNumber: number,
		CustomerName:  pick(s.rnd, customerNames),
		Amount:        decimal.NewFromInt(5000 + s.rnd.Int64N(995001)).Shift(-2), // 50.00 a 10000.00
		Status:        s.status(),
	}
	if s.rnd.Float64() < 0.8 {
		email := pick(s.rnd, customerEmails)
		in.CustomerEmail = &email
	}
	desc := pick(s.rnd, descriptions)
	in.Description = &desc

	issue := s.today().AddDate(0, 0, -s.rnd.IntN(61))
	due := issue.AddDate(0, 0, 15+s.rnd.IntN(31))
	in.IssueDate = issue.Format(dto.DateLayout)
	in.DueDate = due.Format(dto.DateLayout)
	return in
}

func (s *Seeder) status() string {
	switch r := s.rnd.Float64(); {
	case r < 0.2:
		return entity.InvoiceStatusDraft
	case r < 0.5:
		return entity.InvoiceStatusSent
	case r < 0.9:
		return entity.InvoiceStatusPaid
	default:
		return entity.InvoiceStatusOverdue
	}
}

func pick(rnd *rand.Rand, xs []string) string {
	return xs[rnd.IntN(len(xs))]
}
