package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces"
)

var (
	ErrEMDNotFound         = errors.New("emd not found")
	ErrInvalidEMDID        = errors.New("invalid emd id")
	ErrInvalidEMDInput     = errors.New("invalid emd input")
	ErrInvalidEMDAmount    = errors.New("emd amount must not be negative")
	ErrExtractorNotReady   = errors.New("fdr extractor not configured")
	ErrEmptyExtractionText = errors.New("empty fdr document text")
)

// IEMDUseCase exposes earnest-money deposit operations.
//
// Besides the shared workflow surface, EMDs carry two read-side extras: the
// derived OVERDUE display status and the maturity alert listing. Neither of
// those touches stored state.

type IEMDUseCase interface {
	Create(ctx context.Context, input CreateEMDInput) (entities.EMD, error)
	GetByID(ctx context.Context, id string) (entities.EMD, error)
	List(ctx context.Context, filter entities.EMDFilter) ([]EMDView, error)
	Count(ctx context.Context, filter entities.EMDFilter) (int, error)
	ListLegalTransitions(ctx context.Context, id string) ([]entities.EMDStatus, error)
	ApplyTransition(ctx context.Context, input TransitionInput) (entities.EMD, error)
	ListExpiring(ctx context.Context, windowDays int) ([]EMDView, error)
	ExtractFDRDetails(ctx context.Context, ocrText string) (entities.FDRDetails, error)
	Statistics(ctx context.Context, filter entities.EMDFilter) (Statistics, error)
}

type CreateEMDInput struct {
	OfferID      string
	FDRNumber    string
	BankName     string
	Amount       float64
	IssueDate    time.Time
	MaturityDate time.Time
}

// EMDView decorates a stored deposit with its derived display status and
// expiry classification, computed at read time.
type EMDView struct {
	entities.EMD
	DerivedStatus entities.EMDStatus   `json:"derived_status"`
	Expiry        ExpiryClassification `json:"expiry"`
}

type EMDUseCase struct {
	repo      interfaces.IEMDRepository
	offerRepo interfaces.IOfferRepository
	extractor interfaces.IFDRExtractor
	log       *zap.Logger
	now       func() time.Time
}

var _ IEMDUseCase = (*EMDUseCase)(nil)

func NewEMDUseCase(repo interfaces.IEMDRepository, offerRepo interfaces.IOfferRepository, extractor interfaces.IFDRExtractor, log *zap.Logger) *EMDUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EMDUseCase{
		repo:      repo,
		offerRepo: offerRepo,
		extractor: extractor,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *EMDUseCase) Create(ctx context.Context, input CreateEMDInput) (entities.EMD, error) {
	input.OfferID = strings.TrimSpace(input.OfferID)
	input.FDRNumber = strings.TrimSpace(input.FDRNumber)
	input.BankName = strings.TrimSpace(input.BankName)
	if input.OfferID == "" || input.FDRNumber == "" || input.BankName == "" {
		return entities.EMD{}, ErrInvalidEMDInput
	}
	if input.Amount < 0 {
		return entities.EMD{}, ErrInvalidEMDAmount
	}
	if input.MaturityDate.Before(input.IssueDate) {
		return entities.EMD{}, ErrInvalidEMDInput
	}

	offer, err := u.offerRepo.GetByID(ctx, input.OfferID)
	if err != nil {
		return entities.EMD{}, err
	}
	if offer.ID == "" {
		return entities.EMD{}, ErrOfferNotFound
	}

	now := u.now()
	e := entities.EMD{
		ID:           uuid.NewString(),
		OfferID:      input.OfferID,
		FDRNumber:    input.FDRNumber,
		BankName:     input.BankName,
		Amount:       input.Amount,
		Status:       entities.EMDStatusPending,
		IssueDate:    input.IssueDate,
		MaturityDate: input.MaturityDate,
		History:      []entities.StatusHistoryEntry{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EMDUseCase) GetByID(ctx context.Context, id string) (entities.EMD, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EMD{}, ErrInvalidEMDID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EMD{}, err
	}
	if e.ID == "" {
		return entities.EMD{}, ErrEMDNotFound
	}
	return e, nil
}

func (u *EMDUseCase) List(ctx context.Context, filter entities.EMDFilter) ([]EMDView, error) {
	emds, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return u.decorate(emds, DefaultExpiryWindowDays), nil
}

func (u *EMDUseCase) Count(ctx context.Context, filter entities.EMDFilter) (int, error) {
	return u.repo.Count(ctx, filter)
}

func (u *EMDUseCase) ListLegalTransitions(ctx context.Context, id string) ([]entities.EMDStatus, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.Status.NextStatuses(), nil
}

func (u *EMDUseCase) ApplyTransition(ctx context.Context, input TransitionInput) (entities.EMD, error) {
	input.ID = strings.TrimSpace(input.ID)
	if input.ID == "" {
		return entities.EMD{}, ErrInvalidEMDID
	}
	if strings.TrimSpace(input.ActorID) == "" {
		return entities.EMD{}, ErrInvalidActor
	}

	current, err := u.GetByID(ctx, input.ID)
	if err != nil {
		return entities.EMD{}, err
	}

	target := entities.EMDStatus(input.Target)
	if !current.Status.CanTransitionTo(target) {
		return entities.EMD{}, &TransitionError{From: string(current.Status), To: input.Target}
	}

	entry := entities.StatusHistoryEntry{
		FromStatus:  string(current.Status),
		ToStatus:    string(target),
		Remarks:     strings.TrimSpace(input.Remarks),
		DocumentRef: strings.TrimSpace(input.DocumentRef),
		ActorID:     strings.TrimSpace(input.ActorID),
		Timestamp:   u.now(),
	}

	updated, err := u.repo.ApplyTransition(ctx, input.ID, current.Status, target, entry)
	if err != nil {
		return entities.EMD{}, err
	}
	if updated.ID == "" {
		return entities.EMD{}, ErrEMDNotFound
	}
	u.log.Info("emd status updated",
		zap.String("emd_id", updated.ID),
		zap.String("from", entry.FromStatus),
		zap.String("to", entry.ToStatus),
		zap.String("actor_id", entry.ActorID))
	return updated, nil
}

// ListExpiring returns deposits that are overdue or mature inside the given
// window, decorated with their classification. Terminal deposits are
// excluded: a returned or forfeited FDR needs no alert.
func (u *EMDUseCase) ListExpiring(ctx context.Context, windowDays int) ([]EMDView, error) {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}

	emds, err := u.repo.List(ctx, entities.EMDFilter{})
	if err != nil {
		return nil, err
	}

	views := make([]EMDView, 0, len(emds))
	for _, v := range u.decorate(emds, windowDays) {
		if v.Status.IsTerminal() {
			continue
		}
		if v.Expiry.ExpiringSoon || v.Expiry.Overdue {
			views = append(views, v)
		}
	}
	return views, nil
}

func (u *EMDUseCase) ExtractFDRDetails(ctx context.Context, ocrText string) (entities.FDRDetails, error) {
	ocrText = strings.TrimSpace(ocrText)
	if ocrText == "" {
		return entities.FDRDetails{}, ErrEmptyExtractionText
	}
	if u.extractor == nil {
		return entities.FDRDetails{}, ErrExtractorNotReady
	}

	details, err := u.extractor.ExtractFDRDetails(ctx, ocrText)
	if err != nil {
		u.log.Warn("fdr extraction failed", zap.Error(err))
		return entities.FDRDetails{}, err
	}
	return details, nil
}

func (u *EMDUseCase) Statistics(ctx context.Context, filter entities.EMDFilter) (Statistics, error) {
	emds, err := u.repo.List(ctx, filter)
	if err != nil {
		return Statistics{}, err
	}
	return EMDStatistics(emds), nil
}

func (u *EMDUseCase) decorate(emds []entities.EMD, windowDays int) []EMDView {
	now := u.now()
	views := make([]EMDView, 0, len(emds))
	for _, e := range emds {
		views = append(views, EMDView{
			EMD:           e,
			DerivedStatus: DerivedEMDStatus(e, now),
			Expiry:        ClassifyExpiry(e.MaturityDate, now, windowDays),
		})
	}
	return views
}
