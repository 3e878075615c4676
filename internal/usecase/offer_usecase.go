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
	ErrOfferNotFound      = errors.New("budgetary offer not found")
	ErrInvalidOfferID     = errors.New("invalid offer id")
	ErrInvalidOfferInput  = errors.New("invalid offer input")
	ErrInvalidOfferAmount = errors.New("offer amount must not be negative")
)

// IOfferUseCase exposes budgetary offer operations.
//
// Offers start in DRAFT and move through the approval workflow; every status
// change goes through ApplyTransition, which is the only write path for the
// status field.

type IOfferUseCase interface {
	Create(ctx context.Context, input CreateOfferInput) (entities.BudgetaryOffer, error)
	GetByID(ctx context.Context, id string) (entities.BudgetaryOffer, error)
	List(ctx context.Context, filter entities.OfferFilter) ([]entities.BudgetaryOffer, error)
	Count(ctx context.Context, filter entities.OfferFilter) (int, error)
	ListLegalTransitions(ctx context.Context, id string) ([]entities.OfferStatus, error)
	ApplyTransition(ctx context.Context, input TransitionInput) (entities.BudgetaryOffer, error)
	Statistics(ctx context.Context, filter entities.OfferFilter) (Statistics, error)
}

type CreateOfferInput struct {
	Subject         string
	ToAuthority     string
	WorkDescription string
	Amount          float64
}

type OfferUseCase struct {
	repo interfaces.IOfferRepository
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(repo interfaces.IOfferRepository) *OfferUseCase {
	return &OfferUseCase{repo: repo}
}

func (u *OfferUseCase) Create(ctx context.Context, input CreateOfferInput) (entities.BudgetaryOffer, error) {
	input.Subject = strings.TrimSpace(input.Subject)
	input.ToAuthority = strings.TrimSpace(input.ToAuthority)
	if input.Subject == "" || input.ToAuthority == "" {
		return entities.BudgetaryOffer{}, ErrInvalidOfferInput
	}
	if input.Amount < 0 {
		return entities.BudgetaryOffer{}, ErrInvalidOfferAmount
	}

	now := time.Now().UTC()
	o := entities.BudgetaryOffer{
		ID:              uuid.NewString(),
		Subject:         input.Subject,
		ToAuthority:     input.ToAuthority,
		WorkDescription: strings.TrimSpace(input.WorkDescription),
		Amount:          input.Amount,
		Status:          entities.OfferStatusDraft,
		History:         []entities.StatusHistoryEntry{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OfferUseCase) GetByID(ctx context.Context, id string) (entities.BudgetaryOffer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BudgetaryOffer{}, ErrInvalidOfferID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetaryOffer{}, err
	}
	if o.ID == "" {
		return entities.BudgetaryOffer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) List(ctx context.Context, filter entities.OfferFilter) ([]entities.BudgetaryOffer, error) {
	return u.repo.List(ctx, filter)
}

func (u *OfferUseCase) Count(ctx context.Context, filter entities.OfferFilter) (int, error) {
	return u.repo.Count(ctx, filter)
}

func (u *OfferUseCase) ListLegalTransitions(ctx context.Context, id string) ([]entities.OfferStatus, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return o.Status.NextStatuses(), nil
}

func (u *OfferUseCase) ApplyTransition(ctx context.Context, input TransitionInput) (entities.BudgetaryOffer, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return entities.BudgetaryOffer{}, ErrInvalidOfferID
	}
	if strings.TrimSpace(input.ActorID) == "" {
		return entities.BudgetaryOffer{}, ErrInvalidActor
	}

	current, err := u.GetByID(ctx, input.ID)
	if err != nil {
		return entities.BudgetaryOffer{}, err
	}

	target := entities.OfferStatus(input.Target)
	if !current.Status.CanTransitionTo(target) {
		return entities.BudgetaryOffer{}, &TransitionError{From: string(current.Status), To: input.Target}
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
		return entities.BudgetaryOffer{}, err
	}
	if updated.ID == "" {
		return entities.BudgetaryOffer{}, ErrOfferNotFound
	}
	return updated, nil
}

func (u *OfferUseCase) Statistics(ctx context.Context, filter entities.OfferFilter) (Statistics, error) {
	offers, err := u.repo.List(ctx, filter)
	if err != nil {
		return Statistics{}, err
	}
	return OfferStatistics(offers), nil
}
