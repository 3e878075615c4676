package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// IVendorRepository abstracts DynamoDB persistence for Vendor master data.
// Master data has no workflow: plain create/read/update.

type IVendorRepository interface {
	Create(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
	GetByID(ctx context.Context, id string) (entities.Vendor, error)
	List(ctx context.Context, search string) ([]entities.Vendor, error)
	Update(ctx context.Context, v entities.Vendor) (entities.Vendor, error)
}

// IItemRepository abstracts DynamoDB persistence for Item master data.

type IItemRepository interface {
	Create(ctx context.Context, i entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context, search string) ([]entities.Item, error)
	Update(ctx context.Context, i entities.Item) (entities.Item, error)
}
