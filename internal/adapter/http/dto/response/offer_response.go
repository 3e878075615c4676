package response

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

type OfferResponse struct {
	ID              string                 `json:"id"`
	Subject         string                 `json:"subject"`
	ToAuthority     string                 `json:"to_authority"`
	WorkDescription string                 `json:"work_description,omitempty"`
	Amount          float64                `json:"amount"`
	Status          string                 `json:"status"`
	StatusMeta      entities.StatusMeta    `json:"status_meta"`
	History         []HistoryEntryResponse `json:"status_history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromOffer(o entities.BudgetaryOffer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		Subject:         o.Subject,
		ToAuthority:     o.ToAuthority,
		WorkDescription: o.WorkDescription,
		Amount:          o.Amount,
		Status:          string(o.Status),
		StatusMeta:      entities.OfferStatusMeta[o.Status],
		History:         fromHistory(o.History),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOffers(offers []entities.BudgetaryOffer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}
