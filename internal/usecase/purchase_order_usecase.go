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
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrInvalidPOID           = errors.New("invalid purchase order id")
	ErrInvalidPOInput        = errors.New("invalid purchase order input")
	ErrInvalidPOAmount       = errors.New("purchase order amount must not be negative")
	ErrLOANotActive          = errors.New("loa is not active")
)

// IPurchaseOrderUseCase exposes purchase order operations. Orders are issued
// against an active LOA.

type IPurchaseOrderUseCase interface {
	Create(ctx context.Context, input CreatePOInput) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context, filter entities.POFilter) ([]entities.PurchaseOrder, error)
	Count(ctx context.Context, filter entities.POFilter) (int, error)
	ListLegalTransitions(ctx context.Context, id string) ([]entities.POStatus, error)
	ApplyTransition(ctx context.Context, input TransitionInput) (entities.PurchaseOrder, error)
	Statistics(ctx context.Context, filter entities.POFilter) (Statistics, error)
}

type CreatePOInput struct {
	PONumber string
	LOAID    string
	VendorID string
	Amount   float64
}

type PurchaseOrderUseCase struct {
	repo    interfaces.IPurchaseOrderRepository
	loaRepo interfaces.ILOARepository
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(repo interfaces.IPurchaseOrderRepository, loaRepo interfaces.ILOARepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, loaRepo: loaRepo}
}

func (u *PurchaseOrderUseCase) Create(ctx context.Context, input CreatePOInput) (entities.PurchaseOrder, error) {
	input.PONumber = strings.TrimSpace(input.PONumber)
	input.LOAID = strings.TrimSpace(input.LOAID)
	input.VendorID = strings.TrimSpace(input.VendorID)
	if input.PONumber == "" || input.LOAID == "" || input.VendorID == "" {
		return entities.PurchaseOrder{}, ErrInvalidPOInput
	}
	if input.Amount < 0 {
		return entities.PurchaseOrder{}, ErrInvalidPOAmount
	}

	loa, err := u.loaRepo.GetByID(ctx, input.LOAID)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if loa.ID == "" {
		return entities.PurchaseOrder{}, ErrLOANotFound
	}
	if loa.Status != entities.LOAStatusActive {
		return entities.PurchaseOrder{}, ErrLOANotActive
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:        uuid.NewString(),
		PONumber:  input.PONumber,
		LOAID:     input.LOAID,
		VendorID:  input.VendorID,
		Amount:    input.Amount,
		Status:    entities.POStatusDraft,
		History:   []entities.StatusHistoryEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, po)
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseOrder{}, ErrInvalidPOID
	}

	po, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return po, nil
}

func (u *PurchaseOrderUseCase) List(ctx context.Context, filter entities.POFilter) ([]entities.PurchaseOrder, error) {
	return u.repo.List(ctx, filter)
}

func (u *PurchaseOrderUseCase) Count(ctx context.Context, filter entities.POFilter) (int, error) {
	return u.repo.Count(ctx, filter)
}

func (u *PurchaseOrderUseCase) ListLegalTransitions(ctx context.Context, id string) ([]entities.POStatus, error) {
	po, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return po.Status.NextStatuses(), nil
}

func (u *PurchaseOrderUseCase) ApplyTransition(ctx context.Context, input TransitionInput) (entities.PurchaseOrder, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return entities.PurchaseOrder{}, ErrInvalidPOID
	}
	if strings.TrimSpace(input.ActorID) == "" {
		return entities.PurchaseOrder{}, ErrInvalidActor
	}

	current, err := u.GetByID(ctx, input.ID)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}

	target := entities.POStatus(input.Target)
	if !current.Status.CanTransitionTo(target) {
		return entities.PurchaseOrder{}, &TransitionError{From: string(current.Status), To: input.Target}
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
		return entities.PurchaseOrder{}, err
	}
	if updated.ID == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return updated, nil
}

func (u *PurchaseOrderUseCase) Statistics(ctx context.Context, filter entities.POFilter) (Statistics, error) {
	orders, err := u.repo.List(ctx, filter)
	if err != nil {
		return Statistics{}, err
	}
	return PurchaseOrderStatistics(orders), nil
}
