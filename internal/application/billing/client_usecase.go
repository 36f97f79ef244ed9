package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Invoicing-api/internal/application/dto"
	"github.com/jhoicas/Invoicing-api/internal/domain"
	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
	"github.com/jhoicas/Invoicing-api/internal/domain/repository"
)

// ClientUseCase casos de uso para clientes (contactos) del usuario.
type ClientUseCase struct {
	txRunner   BillingTxRunner
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(txRunner BillingTxRunner, clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{txRunner: txRunner, clientRepo: clientRepo, now: time.Now}
}

// Create crea un cliente para ownerID.
func (uc *ClientUseCase) Create(ctx context.Context, ownerID string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	now := uc.now().UTC()
	client := &entity.Client{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Name:      name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := uc.txRunner.RunBilling(ctx, func(_ repository.InvoiceRepository, clientRepo repository.ClientRepository) error {
		return clientRepo.Create(ctx, client)
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista los clientes del dueño.
func (uc *ClientUseCase) List(ctx context.Context, ownerID string, page dto.PageRequest) ([]dto.ClientResponse, error) {
	skip, limit, err := page.Resolve()
	if err != nil {
		return nil, err
	}
	clients, err := uc.clientRepo.ListByOwner(ctx, ownerID, limit, skip)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// Get devuelve el cliente si es del dueño.
func (uc *ClientUseCase) Get(ctx context.Context, ownerID, id string) (*dto.ClientResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update aplica solo los campos presentes.
func (uc *ClientUseCase) Update(ctx context.Context, ownerID, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if !isUUID(id) {
		return nil, domain.ErrNotFound
	}
	var updated *entity.Client
	err := uc.txRunner.RunBilling(ctx, func(_ repository.InvoiceRepository, clientRepo repository.ClientRepository) error {
		client, err := clientRepo.GetByIDAndOwnerForUpdate(ctx, id, ownerID)
		if err != nil {
			return err
		}
		if client == nil {
			return domain.ErrNotFound
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return fmt.Errorf("%w: name no puede estar vacío", domain.ErrInvalidInput)
			}
			client.Name = name
		}
		setIfPresent(&client.Email, in.Email)
		setIfPresent(&client.Phone, in.Phone)
		setIfPresent(&client.Company, in.Company)
		setIfPresent(&client.Address, in.Address)
		setIfPresent(&client.City, in.City)
		setIfPresent(&client.State, in.State)
		setIfPresent(&client.ZipCode, in.ZipCode)
		setIfPresent(&client.Country, in.Country)
		setIfPresent(&client.Notes, in.Notes)
		client.UpdatedAt = uc.now().UTC()
		if err := clientRepo.Update(ctx, client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toClientResponse(updated), nil
}

// Delete elimina el cliente del dueño.
func (uc *ClientUseCase) Delete(ctx context.Context, ownerID, id string) error {
	if !isUUID(id) {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunBilling(ctx, func(_ repository.InvoiceRepository, clientRepo repository.ClientRepository) error {
		return clientRepo.Delete(ctx, id, ownerID)
	})
}

func setIfPresent(dst **string, v *string) {
	if v != nil {
		*dst = v
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Country:   c.Country,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
