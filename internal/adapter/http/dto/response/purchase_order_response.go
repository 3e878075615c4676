package response

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

type POResponse struct {
	ID         string                 `json:"id"`
	PONumber   string                 `json:"po_number"`
	LOAID      string                 `json:"loa_id"`
	VendorID   string                 `json:"vendor_id"`
	Amount     float64                `json:"amount"`
	Status     string                 `json:"status"`
	StatusMeta entities.StatusMeta    `json:"status_meta"`
	History    []HistoryEntryResponse `json:"status_history"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) POResponse {
	return POResponse{
		ID:         po.ID,
		PONumber:   po.PONumber,
		LOAID:      po.LOAID,
		VendorID:   po.VendorID,
		Amount:     po.Amount,
		Status:     string(po.Status),
		StatusMeta: entities.POStatusMeta[po.Status],
		History:    fromHistory(po.History),
		CreatedAt:  po.CreatedAt,
		UpdatedAt:  po.UpdatedAt,
	}
}

func FromPurchaseOrders(orders []entities.PurchaseOrder) []POResponse {
	out := make([]POResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}
