package interfaces

import (
	"context"
	"merenda_escolar/internal/domain/entities"
)

// IFoodRepository abstracts DynamoDB persistence for raw food records.
//
// The catalog is rebuilt from List on demand; records keep their textual
// numeric fields and are only parsed at catalog build time.

type IFoodRepository interface {
	Create(ctx context.Context, f entities.RawFood) (entities.RawFood, error)
	GetByID(ctx context.Context, id string) (entities.RawFood, error)
	List(ctx context.Context) ([]entities.RawFood, error)
}
