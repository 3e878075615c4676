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
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrInvalidVendorID    = errors.New("invalid vendor id")
	ErrInvalidVendorInput = errors.New("invalid vendor input")

	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidItemID    = errors.New("invalid item id")
	ErrInvalidItemInput = errors.New("invalid item input")
	ErrInvalidItemPrice = errors.New("item unit price must not be negative")
)

// IVendorUseCase exposes vendor master data operations.

type IVendorUseCase interface {
	Create(ctx context.Context, input CreateVendorInput) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context, search string) ([]entities.Vendor, error)
	Update(ctx context.Context, id string, input CreateVendorInput) (entities.Vendor, error)
}

type CreateVendorInput struct {
	Name      string
	Email     string
	Mobile    string
	GSTNumber string
	Address   string
}

type VendorUseCase struct {
	repo interfaces.IVendorRepository
}

var _ IVendorUseCase = (*VendorUseCase)(nil)

func NewVendorUseCase(repo interfaces.IVendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

func (u *VendorUseCase) Create(ctx context.Context, input CreateVendorInput) (entities.Vendor, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Vendor{}, ErrInvalidVendorInput
	}

	now := time.Now().UTC()
	v := entities.Vendor{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     strings.TrimSpace(input.Email),
		Mobile:    strings.TrimSpace(input.Mobile),
		GSTNumber: strings.TrimSpace(input.GSTNumber),
		Address:   strings.TrimSpace(input.Address),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, v)
}

func (u *VendorUseCase) GetByID(ctx context.Context, id string) (entities.Vendor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vendor{}, ErrInvalidVendorID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}
	if v.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return v, nil
}

func (u *VendorUseCase) List(ctx context.Context, search string) ([]entities.Vendor, error) {
	return u.repo.List(ctx, strings.TrimSpace(search))
}

func (u *VendorUseCase) Update(ctx context.Context, id string, input CreateVendorInput) (entities.Vendor, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Vendor{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Vendor{}, ErrInvalidVendorInput
	}

	current.Name = input.Name
	current.Email = strings.TrimSpace(input.Email)
	current.Mobile = strings.TrimSpace(input.Mobile)
	current.GSTNumber = strings.TrimSpace(input.GSTNumber)
	current.Address = strings.TrimSpace(input.Address)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Vendor{}, err
	}
	if updated.ID == "" {
		return entities.Vendor{}, ErrVendorNotFound
	}
	return updated, nil
}

// IItemUseCase exposes item master data operations.

type IItemUseCase interface {
	Create(ctx context.Context, input CreateItemInput) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context, search string) ([]entities.Item, error)
	Update(ctx context.Context, id string, input CreateItemInput) (entities.Item, error)
}

type CreateItemInput struct {
	Name        string
	Description string
	UnitPrice   float64
	UOM         string
	HSNCode     string
}

type ItemUseCase struct {
	repo interfaces.IItemRepository
}

var _ IItemUseCase = (*ItemUseCase)(nil)

func NewItemUseCase(repo interfaces.IItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

func (u *ItemUseCase) Create(ctx context.Context, input CreateItemInput) (entities.Item, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Item{}, ErrInvalidItemInput
	}
	if input.UnitPrice < 0 {
		return entities.Item{}, ErrInvalidItemPrice
	}

	now := time.Now().UTC()
	i := entities.Item{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		UnitPrice:   input.UnitPrice,
		UOM:         strings.TrimSpace(input.UOM),
		HSNCode:     strings.TrimSpace(input.HSNCode),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, i)
}

func (u *ItemUseCase) GetByID(ctx context.Context, id string) (entities.Item, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Item{}, ErrInvalidItemID
	}

	i, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}
	if i.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return i, nil
}

func (u *ItemUseCase) List(ctx context.Context, search string) ([]entities.Item, error) {
	return u.repo.List(ctx, strings.TrimSpace(search))
}

func (u *ItemUseCase) Update(ctx context.Context, id string, input CreateItemInput) (entities.Item, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Item{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return entities.Item{}, ErrInvalidItemInput
	}
	if input.UnitPrice < 0 {
		return entities.Item{}, ErrInvalidItemPrice
	}

	current.Name = input.Name
	current.Description = strings.TrimSpace(input.Description)
	current.UnitPrice = input.UnitPrice
	current.UOM = strings.TrimSpace(input.UOM)
	current.HSNCode = strings.TrimSpace(input.HSNCode)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Item{}, err
	}
	if updated.ID == "" {
		return entities.Item{}, ErrItemNotFound
	}
	return updated, nil
}
