package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"merenda_escolar/internal/domain/entities"
	"merenda_escolar/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGuideNotFound           = errors.New("supply guide not found")
	ErrInvalidGuideID          = errors.New("invalid guide id")
	ErrInvalidGuideInstitution = errors.New("institution is required")
	ErrInstitutionNotFound     = errors.New("institution not found")
	ErrInvalidGuidePeriod      = errors.New("invalid guide period")
	ErrGuideMissingMenus       = errors.New("guide has days without a menu")
	ErrInvalidGuideUser        = errors.New("generating user is required")
	ErrDuplicateSubmission     = errors.New("duplicate guide submission")
	ErrGuidePeriodConflict     = errors.New("a finalized guide already exists for this institution and period")
	ErrInvalidGuideTransition  = errors.New("invalid guide status transition")
)

// CreateGuideInput is the command accepted by CreateGuide. Distribution
// quantities arrive pre-computed by the assembling flow; the usecase stores
// them as-is.
type CreateGuideInput struct {
	InstitutionID string
	DateStart     time.Time
	DateEnd       time.Time
	DailyMenus    []entities.DailyMenu
	Distribution  []entities.DistributionCalculation
	Notes         string
	GeneratedBy   string
}

// IGuideUseCase exposes the supply guide lifecycle.
//
// Lifecycle: Rascunho -> Finalizado -> Distribuído, strictly in that order.

type IGuideUseCase interface {
	CreateGuide(ctx context.Context, in CreateGuideInput) (entities.SupplyGuide, error)
	GetByID(ctx context.Context, id string) (entities.SupplyGuide, error)
	List(ctx context.Context) ([]entities.SupplyGuide, error)
	FinalizeByID(ctx context.Context, id string) (entities.SupplyGuide, error)
	DistributeByID(ctx context.Context, id string) (entities.SupplyGuide, error)
}

type GuideUseCase struct {
	repo            interfaces.IGuideRepository
	institutionRepo interfaces.IInstitutionRepository
	deduper         interfaces.IRequestDeduplicator
}

var _ IGuideUseCase = (*GuideUseCase)(nil)

func NewGuideUseCase(repo interfaces.IGuideRepository, institutionRepo interfaces.IInstitutionRepository, deduper interfaces.IRequestDeduplicator) *GuideUseCase {
	return &GuideUseCase{repo: repo, institutionRepo: institutionRepo, deduper: deduper}
}

func (u *GuideUseCase) CreateGuide(ctx context.Context, in CreateGuideInput) (entities.SupplyGuide, error) {
	in.InstitutionID = strings.TrimSpace(in.InstitutionID)
	if in.InstitutionID == "" {
		return entities.SupplyGuide{}, ErrInvalidGuideInstitution
	}
	if in.DateStart.IsZero() || in.DateEnd.IsZero() || in.DateStart.After(in.DateEnd) {
		return entities.SupplyGuide{}, ErrInvalidGuidePeriod
	}
	if len(in.DailyMenus) == 0 {
		return entities.SupplyGuide{}, ErrGuideMissingMenus
	}
	for _, dm := range in.DailyMenus {
		if strings.TrimSpace(dm.MenuID) == "" {
			return entities.SupplyGuide{}, ErrGuideMissingMenus
		}
	}
	if strings.TrimSpace(in.GeneratedBy) == "" {
		return entities.SupplyGuide{}, ErrInvalidGuideUser
	}

	if u.deduper != nil && !u.deduper.Reserve(guideFingerprint(in)) {
		log.Printf("[guide][usecase] duplicate submission institution_id=%s", in.InstitutionID)
		return entities.SupplyGuide{}, ErrDuplicateSubmission
	}

	institution, err := u.institutionRepo.GetByID(ctx, in.InstitutionID)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	if institution.ID == "" {
		return entities.SupplyGuide{}, ErrInstitutionNotFound
	}

	// A new draft may coexist with other drafts, but never with a finalized or
	// distributed guide covering the exact same institution and period.
	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	for _, g := range existing {
		if g.InstitutionID == in.InstitutionID &&
			g.Status != entities.GuideStatusRascunho &&
			sameDay(g.DateStart, in.DateStart) && sameDay(g.DateEnd, in.DateEnd) {
			return entities.SupplyGuide{}, ErrGuidePeriodConflict
		}
	}

	guide := entities.SupplyGuide{
		ID:            uuid.NewString(),
		InstitutionID: in.InstitutionID,
		DateStart:     in.DateStart,
		DateEnd:       in.DateEnd,
		DailyMenus:    in.DailyMenus,
		Distribution:  in.Distribution,
		Notes:         in.Notes,
		Version:       1,
		GeneratedAt:   time.Now().UTC(),
		GeneratedBy:   strings.TrimSpace(in.GeneratedBy),
		Status:        entities.GuideStatusRascunho,
	}

	created, err := u.repo.Create(ctx, guide)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	log.Printf("[guide][usecase] created id=%s institution_id=%s days=%d", created.ID, created.InstitutionID, len(created.DailyMenus))
	return created, nil
}

func (u *GuideUseCase) GetByID(ctx context.Context, id string) (entities.SupplyGuide, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.SupplyGuide{}, ErrInvalidGuideID
	}

	g, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	if g.ID == "" {
		return entities.SupplyGuide{}, ErrGuideNotFound
	}
	return g, nil
}

func (u *GuideUseCase) List(ctx context.Context) ([]entities.SupplyGuide, error) {
	return u.repo.List(ctx)
}

func (u *GuideUseCase) FinalizeByID(ctx context.Context, id string) (entities.SupplyGuide, error) {
	return u.transition(ctx, id, entities.GuideStatusRascunho, entities.GuideStatusFinalizado)
}

func (u *GuideUseCase) DistributeByID(ctx context.Context, id string) (entities.SupplyGuide, error) {
	return u.transition(ctx, id, entities.GuideStatusFinalizado, entities.GuideStatusDistribuido)
}

func (u *GuideUseCase) transition(ctx context.Context, id string, from, to entities.GuideStatus) (entities.SupplyGuide, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	if current.Status != from {
		return entities.SupplyGuide{}, ErrInvalidGuideTransition
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, to)
	if err != nil {
		return entities.SupplyGuide{}, err
	}
	if updated.ID == "" {
		return entities.SupplyGuide{}, ErrGuideNotFound
	}
	log.Printf("[guide][usecase] status id=%s %s->%s", updated.ID, from, to)
	return updated, nil
}

// guideFingerprint is deterministic over institution and period so that two
// rapid identical submissions collapse onto the same deduplication key.
func guideFingerprint(in CreateGuideInput) string {
	return fmt.Sprintf("guide_%s_%d_%d", in.InstitutionID, startOfDay(in.DateStart).Unix(), startOfDay(in.DateEnd).Unix())
}
