package entities

import "time"

// POStatus represents the lifecycle of a purchase order.
//
// Domain notes:
//   - This service is the source of truth for procurement document state.
//   - A status with no outgoing transitions is terminal.

type POStatus string

const (
	POStatusDraft      POStatus = "DRAFT"
	POStatusIssued     POStatus = "ISSUED"
	POStatusInProgress POStatus = "IN_PROGRESS"
	POStatusCompleted  POStatus = "COMPLETED"
	POStatusCancelled  POStatus = "CANCELLED"
)

// POStatusTransitions maps each status to the statuses legally reachable in
// one transition.
var POStatusTransitions = map[POStatus][]POStatus{
	POStatusDraft:      {POStatusIssued, POStatusCancelled},
	POStatusIssued:     {POStatusInProgress, POStatusCancelled},
	POStatusInProgress: {POStatusCompleted, POStatusCancelled},
	POStatusCompleted:  {},
	POStatusCancelled:  {},
}

// POStatusMeta is the canonical label/color table for rendering layers.
var POStatusMeta = map[POStatus]StatusMeta{
	POStatusDraft:      {Label: "Draft", Color: "default"},
	POStatusIssued:     {Label: "Issued", Color: "blue"},
	POStatusInProgress: {Label: "In Progress", Color: "processing"},
	POStatusCompleted:  {Label: "Completed", Color: "success"},
	POStatusCancelled:  {Label: "Cancelled", Color: "error"},
}

func (s POStatus) Valid() bool {
	_, ok := POStatusTransitions[s]
	return ok
}

// NextStatuses returns the legal-next-states set for s, empty for terminal
// or unknown statuses.
func (s POStatus) NextStatuses() []POStatus {
	return POStatusTransitions[s]
}

func (s POStatus) CanTransitionTo(target POStatus) bool {
	for _, t := range POStatusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s POStatus) IsTerminal() bool {
	next, ok := POStatusTransitions[s]
	return ok && len(next) == 0
}

// PurchaseOrder is a purchase order issued against an LOA.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Amount is the order total and is never negative.
type PurchaseOrder struct {
	ID        string               `json:"id"`
	PONumber  string               `json:"po_number"`
	LOAID     string               `json:"loa_id"`
	VendorID  string               `json:"vendor_id"`
	Amount    float64              `json:"amount"`
	Status    POStatus             `json:"status"`
	History   []StatusHistoryEntry `json:"status_history"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// POFilter enumerates the predicates the purchase-order listing supports.
type POFilter struct {
	Status      POStatus
	LOAID       string
	VendorID    string
	CreatedFrom time.Time
	CreatedTo   time.Time
	Search      string
}
