package response

import (
	"testing"
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/usecase"
)

func TestFromTransitions(t *testing.T) {
	t.Run("typed statuses become strings", func(t *testing.T) {
		resp := FromTransitions([]entities.POStatus{entities.POStatusIssued, entities.POStatusCancelled})
		if len(resp.Next) != 2 || resp.Next[0] != "ISSUED" || resp.Next[1] != "CANCELLED" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("terminal status yields empty non-nil list", func(t *testing.T) {
		resp := FromTransitions([]entities.POStatus{})
		if resp.Next == nil || len(resp.Next) != 0 {
			t.Fatalf("expected empty list, got %+v", resp.Next)
		}
	})
}

func TestFromStatistics(t *testing.T) {
	resp := FromStatistics(usecase.Statistics{
		ByStatus: map[string]usecase.StatusBucket{
			"DRAFT":  {Count: 2, TotalValue: 595000},
			"ISSUED": {Count: 1, TotalValue: 595000},
		},
		TotalCount: 3,
		TotalValue: 1190000,
	})

	if resp.TotalCount != 3 || resp.TotalValue != 1190000 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if b := resp.ByStatus["DRAFT"]; b.Count != 2 || b.TotalValue != 595000 {
		t.Fatalf("unexpected DRAFT bucket: %+v", b)
	}
}

func TestFromOfferIncludesHistoryAndMeta(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	offer := entities.BudgetaryOffer{
		ID:     "offer-1",
		Status: entities.OfferStatusPendingApproval,
		History: []entities.StatusHistoryEntry{
			{FromStatus: "DRAFT", ToStatus: "PENDING_APPROVAL", ActorID: "user-1", Timestamp: ts},
		},
	}

	resp := FromOffer(offer)
	if resp.Status != "PENDING_APPROVAL" {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
	if resp.StatusMeta.Label == "" {
		t.Fatalf("expected status meta to be populated")
	}
	if len(resp.History) != 1 || resp.History[0].ActorID != "user-1" || !resp.History[0].Timestamp.Equal(ts) {
		t.Fatalf("unexpected history: %+v", resp.History)
	}
}

func TestFromEMDViewCarriesDerivedState(t *testing.T) {
	view := usecase.EMDView{
		EMD:           entities.EMD{ID: "emd-1", Status: entities.EMDStatusVerified},
		DerivedStatus: entities.EMDStatusOverdue,
		Expiry:        usecase.ExpiryClassification{Overdue: true},
	}

	resp := FromEMDView(view)
	if resp.Status != "VERIFIED" {
		t.Fatalf("stored status must pass through, got %s", resp.Status)
	}
	if resp.DerivedStatus != "OVERDUE" || !resp.Overdue || resp.ExpiringSoon {
		t.Fatalf("unexpected derived state: %+v", resp)
	}
}
