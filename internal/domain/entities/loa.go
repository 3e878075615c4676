package entities

import "time"

// LOAStatus represents the lifecycle of a letter of acceptance.
//
// DRAFT may be activated or cancelled before work starts; ACTIVE is the
// operational state until the award is completed or cancelled.

type LOAStatus string

const (
	LOAStatusDraft     LOAStatus = "DRAFT"
	LOAStatusActive    LOAStatus = "ACTIVE"
	LOAStatusCompleted LOAStatus = "COMPLETED"
	LOAStatusCancelled LOAStatus = "CANCELLED"
)

var LOAStatusTransitions = map[LOAStatus][]LOAStatus{
	LOAStatusDraft:     {LOAStatusActive, LOAStatusCancelled},
	LOAStatusActive:    {LOAStatusCompleted, LOAStatusCancelled},
	LOAStatusCompleted: {},
	LOAStatusCancelled: {},
}

var LOAStatusMeta = map[LOAStatus]StatusMeta{
	LOAStatusDraft:     {Label: "Draft", Color: "default"},
	LOAStatusActive:    {Label: "Active", Color: "processing"},
	LOAStatusCompleted: {Label: "Completed", Color: "success"},
	LOAStatusCancelled: {Label: "Cancelled", Color: "error"},
}

func (s LOAStatus) Valid() bool {
	_, ok := LOAStatusTransitions[s]
	return ok
}

func (s LOAStatus) NextStatuses() []LOAStatus {
	return LOAStatusTransitions[s]
}

func (s LOAStatus) CanTransitionTo(target LOAStatus) bool {
	for _, t := range LOAStatusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s LOAStatus) IsTerminal() bool {
	next, ok := LOAStatusTransitions[s]
	return ok && len(next) == 0
}

// LOA is a letter of acceptance awarded to a vendor; purchase orders are
// issued against it.
//
// Storage model (DynamoDB):
//   - PK: id
type LOA struct {
	ID              string               `json:"id"`
	LOANumber       string               `json:"loa_number"`
	VendorID        string               `json:"vendor_id"`
	WorkDescription string               `json:"work_description"`
	Amount          float64              `json:"amount"`
	Status          LOAStatus            `json:"status"`
	History         []StatusHistoryEntry `json:"status_history"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type LOAFilter struct {
	Status      LOAStatus
	VendorID    string
	CreatedFrom time.Time
	CreatedTo   time.Time
	Search      string
}
