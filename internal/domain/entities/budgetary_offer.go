package entities

import "time"

// OfferStatus represents the lifecycle of a budgetary offer.

type OfferStatus string

const (
	OfferStatusDraft           OfferStatus = "DRAFT"
	OfferStatusPendingApproval OfferStatus = "PENDING_APPROVAL"
	OfferStatusApproved        OfferStatus = "APPROVED"
	OfferStatusRejected        OfferStatus = "REJECTED"
)

var OfferStatusTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusDraft:           {OfferStatusPendingApproval},
	OfferStatusPendingApproval: {OfferStatusApproved, OfferStatusRejected},
	OfferStatusApproved:        {},
	OfferStatusRejected:        {},
}

var OfferStatusMeta = map[OfferStatus]StatusMeta{
	OfferStatusDraft:           {Label: "Draft", Color: "default"},
	OfferStatusPendingApproval: {Label: "Pending Approval", Color: "warning"},
	OfferStatusApproved:        {Label: "Approved", Color: "success"},
	OfferStatusRejected:        {Label: "Rejected", Color: "error"},
}

func (s OfferStatus) Valid() bool {
	_, ok := OfferStatusTransitions[s]
	return ok
}

func (s OfferStatus) NextStatuses() []OfferStatus {
	return OfferStatusTransitions[s]
}

func (s OfferStatus) CanTransitionTo(target OfferStatus) bool {
	for _, t := range OfferStatusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s OfferStatus) IsTerminal() bool {
	next, ok := OfferStatusTransitions[s]
	return ok && len(next) == 0
}

// BudgetaryOffer is a budgetary offer submitted to a railway authority.
//
// Storage model (DynamoDB):
//   - PK: id
type BudgetaryOffer struct {
	ID              string               `json:"id"`
	Subject         string               `json:"subject"`
	ToAuthority     string               `json:"to_authority"`
	WorkDescription string               `json:"work_description"`
	Amount          float64              `json:"amount"`
	Status          OfferStatus          `json:"status"`
	History         []StatusHistoryEntry `json:"status_history"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type OfferFilter struct {
	Status      OfferStatus
	CreatedFrom time.Time
	CreatedTo   time.Time
	Search      string
}
