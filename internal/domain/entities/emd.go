package entities

import "time"

// EMDStatus represents the lifecycle of an earnest-money deposit.
//
// EMDStatusOverdue is a derived display state: listings report it when the
// maturity date has passed while the deposit is still in a non-terminal
// status. It is never persisted and has no outgoing transitions.

type EMDStatus string

const (
	EMDStatusPending   EMDStatus = "PENDING"
	EMDStatusSubmitted EMDStatus = "SUBMITTED"
	EMDStatusVerified  EMDStatus = "VERIFIED"
	EMDStatusReturned  EMDStatus = "RETURNED"
	EMDStatusForfeited EMDStatus = "FORFEITED"
	EMDStatusOverdue   EMDStatus = "OVERDUE"
)

var EMDStatusTransitions = map[EMDStatus][]EMDStatus{
	EMDStatusPending:   {EMDStatusSubmitted},
	EMDStatusSubmitted: {EMDStatusVerified, EMDStatusForfeited},
	EMDStatusVerified:  {EMDStatusReturned, EMDStatusForfeited},
	EMDStatusReturned:  {},
	EMDStatusForfeited: {},
}

var EMDStatusMeta = map[EMDStatus]StatusMeta{
	EMDStatusPending:   {Label: "Pending", Color: "default"},
	EMDStatusSubmitted: {Label: "Submitted", Color: "blue"},
	EMDStatusVerified:  {Label: "Verified", Color: "success"},
	EMDStatusReturned:  {Label: "Returned", Color: "purple"},
	EMDStatusForfeited: {Label: "Forfeited", Color: "error"},
	EMDStatusOverdue:   {Label: "Overdue", Color: "warning"},
}

// Valid reports whether s is a persistable status. OVERDUE is display-only
// and intentionally fails this check.
func (s EMDStatus) Valid() bool {
	_, ok := EMDStatusTransitions[s]
	return ok
}

func (s EMDStatus) NextStatuses() []EMDStatus {
	return EMDStatusTransitions[s]
}

func (s EMDStatus) CanTransitionTo(target EMDStatus) bool {
	for _, t := range EMDStatusTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func (s EMDStatus) IsTerminal() bool {
	next, ok := EMDStatusTransitions[s]
	return ok && len(next) == 0
}

// EMD is an earnest-money deposit backed by a fixed-deposit receipt (FDR)
// and tied to a budgetary offer.
//
// Storage model (DynamoDB):
//   - PK: id
type EMD struct {
	ID           string               `json:"id"`
	OfferID      string               `json:"offer_id"`
	FDRNumber    string               `json:"fdr_number"`
	BankName     string               `json:"bank_name"`
	Amount       float64              `json:"amount"`
	Status       EMDStatus            `json:"status"`
	IssueDate    time.Time            `json:"issue_date"`
	MaturityDate time.Time            `json:"maturity_date"`
	History      []StatusHistoryEntry `json:"status_history"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

type EMDFilter struct {
	Status      EMDStatus
	OfferID     string
	MaturedFrom time.Time
	MaturedTo   time.Time
	Search      string
}
