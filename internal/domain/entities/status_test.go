package entities

import "testing"

func equalPOStatuses(a, b []POStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPOStatusTransitions(t *testing.T) {
	cases := []struct {
		status POStatus
		next   []POStatus
	}{
		{POStatusDraft, []POStatus{POStatusIssued, POStatusCancelled}},
		{POStatusIssued, []POStatus{POStatusInProgress, POStatusCancelled}},
		{POStatusInProgress, []POStatus{POStatusCompleted, POStatusCancelled}},
		{POStatusCompleted, nil},
		{POStatusCancelled, nil},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			if !tc.status.Valid() {
				t.Fatalf("expected %s to be valid", tc.status)
			}
			if got := tc.status.NextStatuses(); !equalPOStatuses(got, tc.next) {
				t.Fatalf("next statuses of %s: expected %v, got %v", tc.status, tc.next, got)
			}
			for _, n := range tc.next {
				if !tc.status.CanTransitionTo(n) {
					t.Fatalf("expected %s -> %s to be legal", tc.status, n)
				}
			}
		})
	}
}

func TestPOStatusRejectsIllegalTransitions(t *testing.T) {
	all := []POStatus{POStatusDraft, POStatusIssued, POStatusInProgress, POStatusCompleted, POStatusCancelled}

	for _, target := range all {
		if POStatusCompleted.CanTransitionTo(target) {
			t.Fatalf("COMPLETED must not transition to %s", target)
		}
		if POStatusCancelled.CanTransitionTo(target) {
			t.Fatalf("CANCELLED must not transition to %s", target)
		}
	}

	if POStatusDraft.CanTransitionTo(POStatusCompleted) {
		t.Fatalf("DRAFT must not skip to COMPLETED")
	}
	if POStatusIssued.CanTransitionTo(POStatusDraft) {
		t.Fatalf("ISSUED must not move back to DRAFT")
	}
	if POStatusDraft.CanTransitionTo(POStatusDraft) {
		t.Fatalf("self transitions are illegal")
	}
}

func TestPOStatusTerminal(t *testing.T) {
	if !POStatusCompleted.IsTerminal() || !POStatusCancelled.IsTerminal() {
		t.Fatalf("COMPLETED and CANCELLED must be terminal")
	}
	if POStatusDraft.IsTerminal() || POStatusIssued.IsTerminal() || POStatusInProgress.IsTerminal() {
		t.Fatalf("non-terminal status reported terminal")
	}
	if POStatus("UNKNOWN").IsTerminal() {
		t.Fatalf("unknown status must not be terminal")
	}
	if POStatus("UNKNOWN").Valid() {
		t.Fatalf("unknown status must not be valid")
	}
}

func TestOfferStatusTransitions(t *testing.T) {
	if !OfferStatusDraft.CanTransitionTo(OfferStatusPendingApproval) {
		t.Fatalf("expected DRAFT -> PENDING_APPROVAL")
	}
	if !OfferStatusPendingApproval.CanTransitionTo(OfferStatusApproved) {
		t.Fatalf("expected PENDING_APPROVAL -> APPROVED")
	}
	if !OfferStatusPendingApproval.CanTransitionTo(OfferStatusRejected) {
		t.Fatalf("expected PENDING_APPROVAL -> REJECTED")
	}

	if OfferStatusDraft.CanTransitionTo(OfferStatusApproved) {
		t.Fatalf("DRAFT must not skip approval")
	}
	if !OfferStatusApproved.IsTerminal() || !OfferStatusRejected.IsTerminal() {
		t.Fatalf("APPROVED and REJECTED must be terminal")
	}
	for _, target := range []OfferStatus{OfferStatusDraft, OfferStatusPendingApproval, OfferStatusApproved, OfferStatusRejected} {
		if OfferStatusApproved.CanTransitionTo(target) {
			t.Fatalf("APPROVED must not transition to %s", target)
		}
	}
}

func TestLOAStatusTransitions(t *testing.T) {
	if !LOAStatusDraft.CanTransitionTo(LOAStatusActive) {
		t.Fatalf("expected DRAFT -> ACTIVE")
	}
	if !LOAStatusDraft.CanTransitionTo(LOAStatusCancelled) {
		t.Fatalf("expected DRAFT -> CANCELLED")
	}
	if !LOAStatusActive.CanTransitionTo(LOAStatusCompleted) {
		t.Fatalf("expected ACTIVE -> COMPLETED")
	}
	if !LOAStatusActive.CanTransitionTo(LOAStatusCancelled) {
		t.Fatalf("expected ACTIVE -> CANCELLED")
	}

	if LOAStatusDraft.CanTransitionTo(LOAStatusCompleted) {
		t.Fatalf("DRAFT must not skip to COMPLETED")
	}
	if !LOAStatusCompleted.IsTerminal() || !LOAStatusCancelled.IsTerminal() {
		t.Fatalf("COMPLETED and CANCELLED must be terminal")
	}
}

func TestEMDStatusTransitions(t *testing.T) {
	if !EMDStatusPending.CanTransitionTo(EMDStatusSubmitted) {
		t.Fatalf("expected PENDING -> SUBMITTED")
	}
	if !EMDStatusSubmitted.CanTransitionTo(EMDStatusVerified) {
		t.Fatalf("expected SUBMITTED -> VERIFIED")
	}
	if !EMDStatusSubmitted.CanTransitionTo(EMDStatusForfeited) {
		t.Fatalf("expected SUBMITTED -> FORFEITED")
	}
	if !EMDStatusVerified.CanTransitionTo(EMDStatusReturned) {
		t.Fatalf("expected VERIFIED -> RETURNED")
	}
	if !EMDStatusVerified.CanTransitionTo(EMDStatusForfeited) {
		t.Fatalf("expected VERIFIED -> FORFEITED")
	}

	if EMDStatusPending.CanTransitionTo(EMDStatusVerified) {
		t.Fatalf("PENDING must not skip to VERIFIED")
	}
	if !EMDStatusReturned.IsTerminal() || !EMDStatusForfeited.IsTerminal() {
		t.Fatalf("RETURNED and FORFEITED must be terminal")
	}
}

func TestEMDOverdueIsDisplayOnly(t *testing.T) {
	if EMDStatusOverdue.Valid() {
		t.Fatalf("OVERDUE must not be a persistable status")
	}
	for _, s := range []EMDStatus{EMDStatusPending, EMDStatusSubmitted, EMDStatusVerified, EMDStatusReturned, EMDStatusForfeited} {
		if s.CanTransitionTo(EMDStatusOverdue) {
			t.Fatalf("%s must not transition to OVERDUE", s)
		}
	}
	if len(EMDStatusOverdue.NextStatuses()) != 0 {
		t.Fatalf("OVERDUE must have no outgoing transitions")
	}
	if _, ok := EMDStatusMeta[EMDStatusOverdue]; !ok {
		t.Fatalf("OVERDUE still needs display metadata")
	}
}

func TestStatusMetaCoversEveryStatus(t *testing.T) {
	for s := range POStatusTransitions {
		if _, ok := POStatusMeta[s]; !ok {
			t.Fatalf("missing meta for purchase order status %s", s)
		}
	}
	for s := range OfferStatusTransitions {
		if _, ok := OfferStatusMeta[s]; !ok {
			t.Fatalf("missing meta for offer status %s", s)
		}
	}
	for s := range LOAStatusTransitions {
		if _, ok := LOAStatusMeta[s]; !ok {
			t.Fatalf("missing meta for loa status %s", s)
		}
	}
	for s := range EMDStatusTransitions {
		if _, ok := EMDStatusMeta[s]; !ok {
			t.Fatalf("missing meta for emd status %s", s)
		}
	}
}
