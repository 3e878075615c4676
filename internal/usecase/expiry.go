package usecase

import (
	"time"

	"github.com/Prossima-Tech/emprise-order-tracking-system-sub002/internal/domain/entities"
)

// DefaultExpiryWindowDays is the alert window applied when the caller passes
// a non-positive window.
const DefaultExpiryWindowDays = 30

// ExpiryClassification flags a deposit maturing inside the alert window or
// already past maturity. It is display-only and never drives a stored
// transition.
type ExpiryClassification struct {
	ExpiringSoon bool `json:"expiring_soon"`
	Overdue      bool `json:"overdue"`
}

// ClassifyExpiry classifies dueDate relative to now. The two flags are
// mutually exclusive: a past due date is overdue, a due date inside the
// window is expiring soon, anything further out is neither.
func ClassifyExpiry(dueDate, now time.Time, windowDays int) ExpiryClassification {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}
	if dueDate.Before(now) {
		return ExpiryClassification{Overdue: true}
	}
	if !dueDate.After(now.AddDate(0, 0, windowDays)) {
		return ExpiryClassification{ExpiringSoon: true}
	}
	return ExpiryClassification{}
}

// DerivedEMDStatus reports OVERDUE for deposits past maturity that are still
// in a non-terminal status; the stored status is returned otherwise. The
// stored status itself never changes here.
func DerivedEMDStatus(e entities.EMD, now time.Time) entities.EMDStatus {
	if !e.Status.IsTerminal() && e.MaturityDate.Before(now) {
		return entities.EMDStatusOverdue
	}
	return e.Status
}
