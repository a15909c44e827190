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
	ErrInvalidMenuName = errors.New("menu name is required")
	ErrMenuNotFound    = errors.New("menu not found")
	ErrInvalidMenuID   = errors.New("invalid menu id")
)

type IMenuUseCase interface {
	CreateMenu(ctx context.Context, m entities.Menu) (entities.Menu, error)
	GetByID(ctx context.Context, id string) (entities.Menu, error)
	List(ctx context.Context) ([]entities.Menu, error)
}

type MenuUseCase struct {
	repo interfaces.IMenuRepository
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(repo interfaces.IMenuRepository) *MenuUseCase {
	return &MenuUseCase{repo: repo}
}

func (u *MenuUseCase) CreateMenu(ctx context.Context, m entities.Menu) (entities.Menu, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return entities.Menu{}, ErrInvalidMenuName
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now().UTC()
	return u.repo.Create(ctx, m)
}

func (u *MenuUseCase) GetByID(ctx context.Context, id string) (entities.Menu, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Menu{}, ErrInvalidMenuID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Menu{}, err
	}
	if m.ID == "" {
		return entities.Menu{}, ErrMenuNotFound
	}
	return m, nil
}

func (u *MenuUseCase) List(ctx context.Context) ([]entities.Menu, error) {
	return u.repo.List(ctx)
}
