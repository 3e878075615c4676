package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// IPurchaseOrderRepository abstracts DynamoDB persistence for PurchaseOrder.
//
// ApplyTransition must update the status, refresh updated_at and append the
// history entry in a single conditional write guarded on the current status;
// it returns a zero-value entity when the guard fails (missing row or stale
// status), never a partially applied one.

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context, filter entities.POFilter) ([]entities.PurchaseOrder, error)
	Count(ctx context.Context, filter entities.POFilter) (int, error)
	ApplyTransition(ctx context.Context, id string, from, to entities.POStatus, entry entities.StatusHistoryEntry) (entities.PurchaseOrder, error)
}
