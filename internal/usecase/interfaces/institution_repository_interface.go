package interfaces

import (
	"context"
	"merenda_escolar/internal/domain/entities"
)

// IInstitutionRepository abstracts DynamoDB persistence for institutions.

type IInstitutionRepository interface {
	Create(ctx context.Context, i entities.Institution) (entities.Institution, error)
	GetByID(ctx context.Context, id string) (entities.Institution, error)
	List(ctx context.Context) ([]entities.Institution, error)
}
