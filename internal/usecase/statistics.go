package usecase

import (
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// StatusBucket aggregates the entities sharing one status.
type StatusBucket struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// Statistics is the read-only dashboard projection: one bucket per observed
// status plus overall totals. It is a pure function of the input collection;
// an empty collection yields zero totals and an empty (non-nil) bucket map.
type Statistics struct {
	ByStatus   map[string]StatusBucket `json:"by_status"`
	TotalCount int                     `json:"total_count"`
	TotalValue float64                 `json:"total_value"`
}

func aggregate[T any](items []T, key func(T) (string, float64)) Statistics {
	stats := Statistics{ByStatus: make(map[string]StatusBucket)}
	for _, it := range items {
		status, amount := key(it)
		bucket := stats.ByStatus[status]
		bucket.Count++
		bucket.TotalValue += amount
		stats.ByStatus[status] = bucket
		stats.TotalCount++
		stats.TotalValue += amount
	}
	return stats
}

func OfferStatistics(offers []entities.BudgetaryOffer) Statistics {
	return aggregate(offers, func(o entities.BudgetaryOffer) (string, float64) {
		return string(o.Status), o.Amount
	})
}

func EMDStatistics(emds []entities.EMD) Statistics {
	return aggregate(emds, func(e entities.EMD) (string, float64) {
		return string(e.Status), e.Amount
	})
}

func PurchaseOrderStatistics(orders []entities.PurchaseOrder) Statistics {
	return aggregate(orders, func(po entities.PurchaseOrder) (string, float64) {
		return string(po.Status), po.Amount
	})
}

func LOAStatistics(loas []entities.LOA) Statistics {
	return aggregate(loas, func(l entities.LOA) (string, float64) {
		return string(l.Status), l.Amount
	})
}
