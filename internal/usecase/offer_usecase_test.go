package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	mock_interfaces "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOfferUseCase_Create(t *testing.T) {
	t.Run("missing subject", func(t *testing.T) {
		uc := NewOfferUseCase(nil)
		_, err := uc.Create(context.Background(), CreateOfferInput{Subject: "   ", ToAuthority: "Divisional Railway Manager"})
		if !errors.Is(err, ErrInvalidOfferInput) {
			t.Fatalf("expected ErrInvalidOfferInput, got %v", err)
		}
	})

	t.Run("missing authority", func(t *testing.T) {
		uc := NewOfferUseCase(nil)
		_, err := uc.Create(context.Background(), CreateOfferInput{Subject: "Supply of cables"})
		if !errors.Is(err, ErrInvalidOfferInput) {
			t.Fatalf("expected ErrInvalidOfferInput, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewOfferUseCase(nil)
		_, err := uc.Create(context.Background(), CreateOfferInput{Subject: "Supply of cables", ToAuthority: "DRM", Amount: -1})
		if !errors.Is(err, ErrInvalidOfferAmount) {
			t.Fatalf("expected ErrInvalidOfferAmount, got %v", err)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetaryOffer{})).DoAndReturn(
			func(_ context.Context, o entities.BudgetaryOffer) (entities.BudgetaryOffer, error) {
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateOfferInput{Subject: "Supply of cables", ToAuthority: "DRM", Amount: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 0 {
			t.Fatalf("expected zero amount, got %v", res.Amount)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BudgetaryOffer{})).DoAndReturn(
			func(_ context.Context, o entities.BudgetaryOffer) (entities.BudgetaryOffer, error) {
				if o.ID == "" || o.Subject != "Supply of cables" || o.ToAuthority != "DRM" {
					t.Fatalf("unexpected offer: %+v", o)
				}
				if o.Status != entities.OfferStatusDraft {
					t.Fatalf("new offers must start in DRAFT, got %s", o.Status)
				}
				if len(o.History) != 0 {
					t.Fatalf("new offers must have empty history")
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateOfferInput{Subject: " Supply of cables ", ToAuthority: " DRM ", Amount: 495000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestOfferUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOfferUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidOfferID) {
			t.Fatalf("expected ErrInvalidOfferID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.BudgetaryOffer{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "offer-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOfferUseCase_ApplyTransition(t *testing.T) {
	t.Run("missing actor", func(t *testing.T) {
		uc := NewOfferUseCase(nil)
		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "offer-1", Target: "PENDING_APPROVAL"})
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("illegal transition leaves store untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusDraft}, nil)

		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "offer-1", Target: "APPROVED", ActorID: "user-1"})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}

		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected *TransitionError, got %T", err)
		}
		if te.From != "DRAFT" || te.To != "APPROVED" {
			t.Fatalf("expected error to carry DRAFT and APPROVED, got %+v", te)
		}
	})

	t.Run("unknown target status is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusDraft}, nil)

		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "offer-1", Target: "BOGUS", ActorID: "user-1"})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success appends history entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusDraft}, nil)
		repo.EXPECT().ApplyTransition(gomock.Any(), "offer-1", entities.OfferStatusDraft, entities.OfferStatusPendingApproval, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, from, to entities.OfferStatus, entry entities.StatusHistoryEntry) (entities.BudgetaryOffer, error) {
				if entry.FromStatus != "DRAFT" || entry.ToStatus != "PENDING_APPROVAL" {
					t.Fatalf("unexpected history entry: %+v", entry)
				}
				if entry.ActorID != "user-1" || entry.Remarks != "sent for approval" {
					t.Fatalf("unexpected history entry: %+v", entry)
				}
				if entry.Timestamp.IsZero() {
					t.Fatalf("expected history timestamp")
				}
				return entities.BudgetaryOffer{ID: id, Status: to, History: []entities.StatusHistoryEntry{entry}}, nil
			},
		)

		res, err := uc.ApplyTransition(context.Background(), TransitionInput{
			ID:      "offer-1",
			Target:  "PENDING_APPROVAL",
			Remarks: " sent for approval ",
			ActorID: "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.OfferStatusPendingApproval {
			t.Fatalf("expected PENDING_APPROVAL, got %s", res.Status)
		}
		if len(res.History) != 1 {
			t.Fatalf("expected one history entry, got %d", len(res.History))
		}
	})

	t.Run("conditional write lost race maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOfferRepository(ctrl)
		uc := NewOfferUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusDraft}, nil)
		repo.EXPECT().ApplyTransition(gomock.Any(), "offer-1", entities.OfferStatusDraft, entities.OfferStatusPendingApproval, gomock.Any()).
			Return(entities.BudgetaryOffer{}, nil)

		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "offer-1", Target: "PENDING_APPROVAL", ActorID: "user-1"})
		if !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})
}

func TestOfferUseCase_ListLegalTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOfferRepository(ctrl)
	uc := NewOfferUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1", Status: entities.OfferStatusPendingApproval}, nil)

	next, err := uc.ListLegalTransitions(context.Background(), "offer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(next) != 2 || next[0] != entities.OfferStatusApproved || next[1] != entities.OfferStatusRejected {
		t.Fatalf("unexpected transitions: %v", next)
	}
}

func TestOfferUseCase_Statistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOfferRepository(ctrl)
	uc := NewOfferUseCase(repo)

	repo.EXPECT().List(gomock.Any(), entities.OfferFilter{}).Return([]entities.BudgetaryOffer{
		{ID: "a", Status: entities.OfferStatusDraft, Amount: 100},
		{ID: "b", Status: entities.OfferStatusDraft, Amount: 50},
		{ID: "c", Status: entities.OfferStatusApproved, Amount: 200},
	}, nil)

	stats, err := uc.Statistics(context.Background(), entities.OfferFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCount != 3 || stats.TotalValue != 350 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if b := stats.ByStatus["DRAFT"]; b.Count != 2 || b.TotalValue != 150 {
		t.Fatalf("unexpected DRAFT bucket: %+v", b)
	}
}

func TestOfferUseCase_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOfferRepository(ctrl)
	uc := NewOfferUseCase(repo)

	filter := entities.OfferFilter{Status: entities.OfferStatusPendingApproval}
	repo.EXPECT().Count(gomock.Any(), filter).Return(4, nil)

	n, err := uc.Count(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4, got %d", n)
	}
}
