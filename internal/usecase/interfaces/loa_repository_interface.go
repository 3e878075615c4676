package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// ILOARepository abstracts DynamoDB persistence for LOA.

type ILOARepository interface {
	Create(ctx context.Context, l entities.LOA) (entities.LOA, error)
	GetByID(ctx context.Context, id string) (entities.LOA, error)
	List(ctx context.Context, filter entities.LOAFilter) ([]entities.LOA, error)
	Count(ctx context.Context, filter entities.LOAFilter) (int, error)
	ApplyTransition(ctx context.Context, id string, from, to entities.LOAStatus, entry entities.StatusHistoryEntry) (entities.LOA, error)
}
