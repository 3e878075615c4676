package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

var (
	ErrLOANotFound      = errors.New("loa not found")
	ErrInvalidLOAID     = errors.New("invalid loa id")
	ErrInvalidLOAInput  = errors.New("invalid loa input")
	ErrInvalidLOAAmount = errors.New("loa amount must not be negative")
)

// ILOAUseCase exposes letter-of-acceptance operations.

type ILOAUseCase interface {
	Create(ctx context.Context, input CreateLOAInput) (entities.LOA, error)
	GetByID(ctx context.Context, id string) (entities.LOA, error)
	List(ctx context.Context, filter entities.LOAFilter) ([]entities.LOA, error)
	Count(ctx context.Context, filter entities.LOAFilter) (int, error)
	ListLegalTransitions(ctx context.Context, id string) ([]entities.LOAStatus, error)
	ApplyTransition(ctx context.Context, input TransitionInput) (entities.LOA, error)
	Statistics(ctx context.Context, filter entities.LOAFilter) (Statistics, error)
}

type CreateLOAInput struct {
	LOANumber       string
	VendorID        string
	WorkDescription string
	Amount          float64
}

type LOAUseCase struct {
	repo       interfaces.ILOARepository
	vendorRepo interfaces.IVendorRepository
}

var _ ILOAUseCase = (*LOAUseCase)(nil)

func NewLOAUseCase(repo interfaces.ILOARepository, vendorRepo interfaces.IVendorRepository) *LOAUseCase {
	return &LOAUseCase{repo: repo, vendorRepo: vendorRepo}
}

func (u *LOAUseCase) Create(ctx context.Context, input CreateLOAInput) (entities.LOA, error) {
	input.LOANumber = strings.TrimSpace(input.LOANumber)
	input.VendorID = strings.TrimSpace(input.VendorID)
	if input.LOANumber == "" || input.VendorID == "" {
		return entities.LOA{}, ErrInvalidLOAInput
	}
	if input.Amount < 0 {
		return entities.LOA{}, ErrInvalidLOAAmount
	}

	vendor, err := u.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return entities.LOA{}, err
	}
	if vendor.ID == "" {
		return entities.LOA{}, ErrVendorNotFound
	}

	now := time.Now().UTC()
	l := entities.LOA{
		ID:              uuid.NewString(),
		LOANumber:       input.LOANumber,
		VendorID:        input.VendorID,
		WorkDescription: strings.TrimSpace(input.WorkDescription),
		Amount:          input.Amount,
		Status:          entities.LOAStatusDraft,
		History:         []entities.StatusHistoryEntry{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, l)
}

func (u *LOAUseCase) GetByID(ctx context.Context, id string) (entities.LOA, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LOA{}, ErrInvalidLOAID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LOA{}, err
	}
	if l.ID == "" {
		return entities.LOA{}, ErrLOANotFound
	}
	return l, nil
}

func (u *LOAUseCase) List(ctx context.Context, filter entities.LOAFilter) ([]entities.LOA, error) {
	return u.repo.List(ctx, filter)
}

func (u *LOAUseCase) Count(ctx context.Context, filter entities.LOAFilter) (int, error) {
	return u.repo.Count(ctx, filter)
}

func (u *LOAUseCase) ListLegalTransitions(ctx context.Context, id string) ([]entities.LOAStatus, error) {
	l, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return l.Status.NextStatuses(), nil
}

func (u *LOAUseCase) ApplyTransition(ctx context.Context, input TransitionInput) (entities.LOA, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return entities.LOA{}, ErrInvalidLOAID
	}
	if strings.TrimSpace(input.ActorID) == "" {
		return entities.LOA{}, ErrInvalidActor
	}

	current, err := u.GetByID(ctx, input.ID)
	if err != nil {
		return entities.LOA{}, err
	}

	target := entities.LOAStatus(input.Target)
	if !current.Status.CanTransitionTo(target) {
		return entities.LOA{}, &TransitionError{From: string(current.Status), To: input.Target}
	}

	entry := entities.StatusHistoryEntry{
		FromStatus:  string(current.Status),
		ToStatus:    string(target),
		Remarks:     strings.TrimSpace(input.Remarks),
		DocumentRef: strings.TrimSpace(input.DocumentRef),
		ActorID:     strings.TrimSpace(input.ActorID),
		Timestamp:   time.Now().UTC(),
	}

	updated, err := u.repo.ApplyTransition(ctx, input.ID, current.Status, target, entry)
	if err != nil {
		return entities.LOA{}, err
	}
	if updated.ID == "" {
		return entities.LOA{}, ErrLOANotFound
	}
	return updated, nil
}

func (u *LOAUseCase) Statistics(ctx context.Context, filter entities.LOAFilter) (Statistics, error) {
	loas, err := u.repo.List(ctx, filter)
	if err != nil {
		return Statistics{}, err
	}
	return LOAStatistics(loas), nil
}
