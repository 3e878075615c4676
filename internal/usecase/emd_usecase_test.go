package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	mock_interfaces "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newEMDUseCaseAt(t *testing.T, ctrl *gomock.Controller, now time.Time) (*EMDUseCase, *mock_interfaces.MockIEMDRepository, *mock_interfaces.MockIOfferRepository, *mock_interfaces.MockIFDRExtractor) {
	t.Helper()
	repo := mock_interfaces.NewMockIEMDRepository(ctrl)
	offerRepo := mock_interfaces.NewMockIOfferRepository(ctrl)
	extractor := mock_interfaces.NewMockIFDRExtractor(ctrl)
	uc := NewEMDUseCase(repo, offerRepo, extractor, nil)
	uc.now = func() time.Time { return now }
	return uc, repo, offerRepo, extractor
}

func TestEMDUseCase_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	issue := now.AddDate(0, -1, 0)
	maturity := now.AddDate(1, 0, 0)

	t.Run("missing fields", func(t *testing.T) {
		uc := NewEMDUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEMDInput{OfferID: "offer-1", BankName: "SBI"})
		if !errors.Is(err, ErrInvalidEMDInput) {
			t.Fatalf("expected ErrInvalidEMDInput, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc := NewEMDUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEMDInput{
			OfferID: "offer-1", FDRNumber: "FDR-1", BankName: "SBI", Amount: -5,
			IssueDate: issue, MaturityDate: maturity,
		})
		if !errors.Is(err, ErrInvalidEMDAmount) {
			t.Fatalf("expected ErrInvalidEMDAmount, got %v", err)
		}
	})

	t.Run("maturity before issue", func(t *testing.T) {
		uc := NewEMDUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateEMDInput{
			OfferID: "offer-1", FDRNumber: "FDR-1", BankName: "SBI",
			IssueDate: maturity, MaturityDate: issue,
		})
		if !errors.Is(err, ErrInvalidEMDInput) {
			t.Fatalf("expected ErrInvalidEMDInput, got %v", err)
		}
	})

	t.Run("offer must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, offerRepo, _ := newEMDUseCaseAt(t, ctrl, now)

		offerRepo.EXPECT().GetByID(gomock.Any(), "offer-miss").Return(entities.BudgetaryOffer{}, nil)

		_, err := uc.Create(context.Background(), CreateEMDInput{
			OfferID: "offer-miss", FDRNumber: "FDR-1", BankName: "SBI", Amount: 100000,
			IssueDate: issue, MaturityDate: maturity,
		})
		if !errors.Is(err, ErrOfferNotFound) {
			t.Fatalf("expected ErrOfferNotFound, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, offerRepo, _ := newEMDUseCaseAt(t, ctrl, now)

		offerRepo.EXPECT().GetByID(gomock.Any(), "offer-1").Return(entities.BudgetaryOffer{ID: "offer-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EMD{})).DoAndReturn(
			func(_ context.Context, e entities.EMD) (entities.EMD, error) {
				if e.ID == "" || e.OfferID != "offer-1" || e.FDRNumber != "FDR-1" {
					t.Fatalf("unexpected emd: %+v", e)
				}
				if e.Status != entities.EMDStatusPending {
					t.Fatalf("new emds must start PENDING, got %s", e.Status)
				}
				if !e.CreatedAt.Equal(now) || !e.UpdatedAt.Equal(now) {
					t.Fatalf("expected clock timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateEMDInput{
			OfferID: " offer-1 ", FDRNumber: " FDR-1 ", BankName: "SBI", Amount: 100000,
			IssueDate: issue, MaturityDate: maturity,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEMDUseCase_ApplyTransition(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("illegal transition carries both statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEMDUseCaseAt(t, ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "emd-1").Return(entities.EMD{ID: "emd-1", Status: entities.EMDStatusPending}, nil)

		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "emd-1", Target: "VERIFIED", ActorID: "user-1"})
		var te *TransitionError
		if !errors.As(err, &te) {
			t.Fatalf("expected *TransitionError, got %v", err)
		}
		if te.From != "PENDING" || te.To != "VERIFIED" {
			t.Fatalf("unexpected transition error: %+v", te)
		}
	})

	t.Run("overdue is not a transition target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEMDUseCaseAt(t, ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "emd-1").Return(entities.EMD{ID: "emd-1", Status: entities.EMDStatusPending}, nil)

		_, err := uc.ApplyTransition(context.Background(), TransitionInput{ID: "emd-1", Target: "OVERDUE", ActorID: "user-1"})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("success records document ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newEMDUseCaseAt(t, ctrl, now)

		repo.EXPECT().GetByID(gomock.Any(), "emd-1").Return(entities.EMD{ID: "emd-1", Status: entities.EMDStatusVerified}, nil)
		repo.EXPECT().ApplyTransition(gomock.Any(), "emd-1", entities.EMDStatusVerified, entities.EMDStatusReturned, gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, from, to entities.EMDStatus, entry entities.StatusHistoryEntry) (entities.EMD, error) {
				if entry.DocumentRef != "release-letter.pdf" {
					t.Fatalf("expected document ref, got %+v", entry)
				}
				if !entry.Timestamp.Equal(now) {
					t.Fatalf("expected clock timestamp")
				}
				return entities.EMD{ID: id, Status: to, History: []entities.StatusHistoryEntry{entry}}, nil
			},
		)

		res, err := uc.ApplyTransition(context.Background(), TransitionInput{
			ID:          "emd-1",
			Target:      "RETURNED",
			DocumentRef: "release-letter.pdf",
			ActorID:     "user-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EMDStatusReturned {
			t.Fatalf("expected RETURNED, got %s", res.Status)
		}
	})
}

func TestEMDUseCase_List(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newEMDUseCaseAt(t, ctrl, now)

	repo.EXPECT().List(gomock.Any(), entities.EMDFilter{}).Return([]entities.EMD{
		{ID: "past-due", Status: entities.EMDStatusVerified, MaturityDate: now.AddDate(0, 0, -2)},
		{ID: "fresh", Status: entities.EMDStatusPending, MaturityDate: now.AddDate(0, 1, 0).AddDate(0, 0, 15)},
	}, nil)

	views, err := uc.List(context.Background(), entities.EMDFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].DerivedStatus != entities.EMDStatusOverdue || !views[0].Expiry.Overdue {
		t.Fatalf("expected past-due deposit to derive OVERDUE: %+v", views[0])
	}
	if views[0].Status != entities.EMDStatusVerified {
		t.Fatalf("stored status must stay VERIFIED, got %s", views[0].Status)
	}
	if views[1].DerivedStatus != entities.EMDStatusPending || views[1].Expiry.Overdue || views[1].Expiry.ExpiringSoon {
		t.Fatalf("expected fresh deposit to keep its status: %+v", views[1])
	}
}

func TestEMDUseCase_ListExpiring(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, _, _ := newEMDUseCaseAt(t, ctrl, now)

	repo.EXPECT().List(gomock.Any(), entities.EMDFilter{}).Return([]entities.EMD{
		{ID: "soon", Status: entities.EMDStatusVerified, MaturityDate: now.AddDate(0, 0, 10)},
		{ID: "overdue", Status: entities.EMDStatusSubmitted, MaturityDate: now.AddDate(0, 0, -1)},
		{ID: "far", Status: entities.EMDStatusPending, MaturityDate: now.AddDate(0, 0, 40)},
		{ID: "returned", Status: entities.EMDStatusReturned, MaturityDate: now.AddDate(0, 0, -10)},
	}, nil)

	views, err := uc.ListExpiring(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(views))
	}
	if views[0].ID != "soon" || !views[0].Expiry.ExpiringSoon || views[0].Expiry.Overdue {
		t.Fatalf("unexpected first alert: %+v", views[0])
	}
	if views[1].ID != "overdue" || !views[1].Expiry.Overdue {
		t.Fatalf("unexpected second alert: %+v", views[1])
	}
}

func TestEMDUseCase_ExtractFDRDetails(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty text", func(t *testing.T) {
		uc := NewEMDUseCase(nil, nil, nil, nil)
		_, err := uc.ExtractFDRDetails(context.Background(), "   ")
		if !errors.Is(err, ErrEmptyExtractionText) {
			t.Fatalf("expected ErrEmptyExtractionText, got %v", err)
		}
	})

	t.Run("extractor missing", func(t *testing.T) {
		uc := NewEMDUseCase(nil, nil, nil, nil)
		_, err := uc.ExtractFDRDetails(context.Background(), "FDR NO 123")
		if !errors.Is(err, ErrExtractorNotReady) {
			t.Fatalf("expected ErrExtractorNotReady, got %v", err)
		}
	})

	t.Run("extractor success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, extractor := newEMDUseCaseAt(t, ctrl, now)

		want := entities.FDRDetails{BankName: "SBI", FDRNumber: "FDR-1", Amount: 100000}
		extractor.EXPECT().ExtractFDRDetails(gomock.Any(), "FDR NO 123").Return(want, nil)

		got, err := uc.ExtractFDRDetails(context.Background(), "FDR NO 123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("extractor error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, extractor := newEMDUseCaseAt(t, ctrl, now)

		extractor.EXPECT().ExtractFDRDetails(gomock.Any(), "garbled").Return(entities.FDRDetails{}, errors.New("model"))

		_, err := uc.ExtractFDRDetails(context.Background(), "garbled")
		if err == nil || err.Error() != "model" {
			t.Fatalf("expected model error, got %v", err)
		}
	})
}
