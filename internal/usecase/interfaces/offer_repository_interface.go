package interfaces

import (
	"context"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// IOfferRepository abstracts DynamoDB persistence for BudgetaryOffer.

type IOfferRepository interface {
	Create(ctx context.Context, o entities.BudgetaryOffer) (entities.BudgetaryOffer, error)
	GetByID(ctx context.Context, id string) (entities.BudgetaryOffer, error)
	List(ctx context.Context, filter entities.OfferFilter) ([]entities.BudgetaryOffer, error)
	Count(ctx context.Context, filter entities.OfferFilter) (int, error)
	ApplyTransition(ctx context.Context, id string, from, to entities.OfferStatus, entry entities.StatusHistoryEntry) (entities.BudgetaryOffer, error)
}
