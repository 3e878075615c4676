package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	mock_interfaces "github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestVendorUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewVendorUseCase(nil)
		_, err := uc.Create(context.Background(), CreateVendorInput{Name: "   "})
		if !errors.Is(err, ErrInvalidVendorInput) {
			t.Fatalf("expected ErrInvalidVendorInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Vendor{})).DoAndReturn(
			func(_ context.Context, v entities.Vendor) (entities.Vendor, error) {
				if v.ID == "" || v.Name != "Acme Traders" || v.GSTNumber != "27AAPFU0939F1ZV" {
					t.Fatalf("unexpected vendor: %+v", v)
				}
				return v, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateVendorInput{Name: " Acme Traders ", GSTNumber: "27AAPFU0939F1ZV"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CreatedAt.IsZero() {
			t.Fatalf("expected timestamps")
		}
	})
}

func TestVendorUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "vendor-miss").Return(entities.Vendor{}, nil)

		_, err := uc.Update(context.Background(), "vendor-miss", CreateVendorInput{Name: "Acme"})
		if !errors.Is(err, ErrVendorNotFound) {
			t.Fatalf("expected ErrVendorNotFound, got %v", err)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVendorRepository(ctrl)
		uc := NewVendorUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "vendor-1").Return(entities.Vendor{ID: "vendor-1", Name: "Acme Traders"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Vendor{})).DoAndReturn(
			func(_ context.Context, v entities.Vendor) (entities.Vendor, error) {
				if v.ID != "vendor-1" || v.Name != "Acme Industries" || v.Email != "sales@acme.in" {
					t.Fatalf("unexpected vendor: %+v", v)
				}
				if v.UpdatedAt.IsZero() {
					t.Fatalf("expected refreshed updated_at")
				}
				return v, nil
			},
		)

		res, err := uc.Update(context.Background(), "vendor-1", CreateVendorInput{Name: "Acme Industries", Email: "sales@acme.in"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Acme Industries" {
			t.Fatalf("unexpected name: %s", res.Name)
		}
	})
}

func TestItemUseCase(t *testing.T) {
	t.Run("negative price", func(t *testing.T) {
		uc := NewItemUseCase(nil)
		_, err := uc.Create(context.Background(), CreateItemInput{Name: "Cable", UnitPrice: -10})
		if !errors.Is(err, ErrInvalidItemPrice) {
			t.Fatalf("expected ErrInvalidItemPrice, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Item{})).DoAndReturn(
			func(_ context.Context, i entities.Item) (entities.Item, error) {
				if i.ID == "" || i.Name != "Armoured Cable" || i.UOM != "meter" {
					t.Fatalf("unexpected item: %+v", i)
				}
				return i, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateItemInput{Name: "Armoured Cable", UnitPrice: 120.5, UOM: "meter", HSNCode: "8544"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UnitPrice != 120.5 {
			t.Fatalf("unexpected price: %v", res.UnitPrice)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIItemRepository(ctrl)
		uc := NewItemUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "item-miss").Return(entities.Item{}, nil)

		_, err := uc.GetByID(context.Background(), "item-miss")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
