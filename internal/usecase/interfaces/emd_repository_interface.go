package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// IEMDRepository abstracts DynamoDB persistence for EMD.

type IEMDRepository interface {
	Create(ctx context.Context, e entities.EMD) (entities.EMD, error)
	GetByID(ctx context.Context, id string) (entities.EMD, error)
	List(ctx context.Context, filter entities.EMDFilter) ([]entities.EMD, error)
	Count(ctx context.Context, filter entities.EMDFilter) (int, error)
	ApplyTransition(ctx context.Context, id string, from, to entities.EMDStatus, entry entities.StatusHistoryEntry) (entities.EMD, error)
}
