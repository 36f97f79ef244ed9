package repository

import (
	"context"

	"github.com/jhoicas/Invoicing-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client (siempre acotado al dueño).
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Client, error)
	GetByIDAndOwnerForUpdate(ctx context.Context, id, ownerID string) (*entity.Client, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id, ownerID string) error
}
