package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidInstitutionName  = errors.New("institution name is required")
	ErrInvalidInstitutionID    = errors.New("invalid institution id")
	ErrNegativeStudentCount    = errors.New("student count must not be negative")
	ErrUnknownInstitutionStage = errors.New("unknown stage in student counts")
)

type IInstitutionUseCase interface {
	CreateInstitution(ctx context.Context, i entities.Institution) (entities.Institution, error)
	GetByID(ctx context.Context, id string) (entities.Institution, error)
	List(ctx context.Context) ([]entities.Institution, error)
}

type InstitutionUseCase struct {
	repo interfaces.IInstitutionRepository
}

var _ IInstitutionUseCase = (*InstitutionUseCase)(nil)

func NewInstitutionUseCase(repo interfaces.IInstitutionRepository) *InstitutionUseCase {
	return &InstitutionUseCase{repo: repo}
}

func (u *InstitutionUseCase) CreateInstitution(ctx context.Context, i entities.Institution) (entities.Institution, error) {
	i.Name = strings.TrimSpace(i.Name)
	if i.Name == "" {
		return entities.Institution{}, ErrInvalidInstitutionName
	}
	for stage, count := range i.StudentsByStage {
		if !stage.Valid() {
			return entities.Institution{}, ErrUnknownInstitutionStage
		}
		if count < 0 {
			return entities.Institution{}, ErrNegativeStudentCount
		}
	}

	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	i.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, i)
}

func (u *InstitutionUseCase) GetByID(ctx context.Context, id string) (entities.Institution, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Institution{}, ErrInvalidInstitutionID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Institution{}, err
	}
	if i.ID == "" {
		return entities.Institution{}, ErrInstitutionNotFound
	}
	return i, nil
}

func (u *InstitutionUseCase) List(ctx context.Context) ([]entities.Institution, error) {
	return u.repo.List(ctx)
}
