package response

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

type LOAResponse struct {
	ID              string                 `json:"id"`
	LOANumber       string                 `json:"loa_number"`
	VendorID        string                 `json:"vendor_id"`
	WorkDescription string                 `json:"work_description,omitempty"`
	Amount          float64                `json:"amount"`
	Status          string                 `json:"status"`
	StatusMeta      entities.StatusMeta    `json:"status_meta"`
	History         []HistoryEntryResponse `json:"status_history"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

func FromLOA(l entities.LOA) LOAResponse {
	return LOAResponse{
		ID:              l.ID,
		LOANumber:       l.LOANumber,
		VendorID:        l.VendorID,
		WorkDescription: l.WorkDescription,
		Amount:          l.Amount,
		Status:          string(l.Status),
		StatusMeta:      entities.LOAStatusMeta[l.Status],
		History:         fromHistory(l.History),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func FromLOAs(loas []entities.LOA) []LOAResponse {
	out := make([]LOAResponse, 0, len(loas))
	for _, l := range loas {
		out = append(out, FromLOA(l))
	}
	return out
}
