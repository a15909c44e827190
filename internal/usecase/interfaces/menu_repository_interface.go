package interfaces

import (
	"context"
	"merenda_escolar/internal/domain/entities"
)

// IMenuRepository abstracts DynamoDB persistence for menus (cardápios).

type IMenuRepository interface {
	Create(ctx context.Context, m entities.Menu) (entities.Menu, error)
	GetByID(ctx context.Context, id string) (entities.Menu, error)
	List(ctx context.Context) ([]entities.Menu, error)
}
