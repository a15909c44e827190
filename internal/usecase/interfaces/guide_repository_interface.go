package interfaces

import (
	"context"
	"merenda_escolar/internal/domain/entities"
)

// IGuideRepository abstracts DynamoDB persistence for supply guides.
//
// The service must be able to:
//   - create a draft guide for an institution and period
//   - list all guides (calendar and report queries filter in memory)
//   - move a guide through its status lifecycle

type IGuideRepository interface {
	Create(ctx context.Context, g entities.SupplyGuide) (entities.SupplyGuide, error)
	GetByID(ctx context.Context, id string) (entities.SupplyGuide, error)
	List(ctx context.Context) ([]entities.SupplyGuide, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.GuideStatus) (entities.SupplyGuide, error)
}
