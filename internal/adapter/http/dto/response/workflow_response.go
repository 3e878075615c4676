package response

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
)

type HistoryEntryResponse struct {
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Remarks     string    `json:"remarks,omitempty"`
	DocumentRef string    `json:"document_ref,omitempty"`
	ActorID     string    `json:"actor_id"`
	Timestamp   time.Time `json:"timestamp"`
}

func fromHistory(entries []entities.StatusHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			FromStatus:  e.FromStatus,
			ToStatus:    e.ToStatus,
			Remarks:     e.Remarks,
			DocumentRef: e.DocumentRef,
			ActorID:     e.ActorID,
			Timestamp:   e.Timestamp,
		})
	}
	return out
}

// TransitionsResponse lists the statuses reachable from the entity's current
// status in one step. Terminal entities get an empty list.
type TransitionsResponse struct {
	Next []string `json:"next"`
}

func FromTransitions[S ~string](next []S) TransitionsResponse {
	out := make([]string, 0, len(next))
	for _, s := range next {
		out = append(out, string(s))
	}
	return TransitionsResponse{Next: out}
}

type StatusBucketResponse struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
}

// StatisticsResponse is the dashboard projection for one entity type.
type StatisticsResponse struct {
	ByStatus   map[string]StatusBucketResponse `json:"by_status"`
	TotalCount int                             `json:"total_count"`
	TotalValue float64                         `json:"total_value"`
}

func FromStatistics(s usecase.Statistics) StatisticsResponse {
	byStatus := make(map[string]StatusBucketResponse, len(s.ByStatus))
	for status, bucket := range s.ByStatus {
		byStatus[status] = StatusBucketResponse{Count: bucket.Count, TotalValue: bucket.TotalValue}
	}
	return StatisticsResponse{
		ByStatus:   byStatus,
		TotalCount: s.TotalCount,
		TotalValue: s.TotalValue,
	}
}
