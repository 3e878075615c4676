package request

import "strings"

// TransitionRequest is the payload for every status-change endpoint. The
// requested status is validated against the entity's transition table by the
// use case; the handler only checks shape.
type TransitionRequest struct {
	Status      string `json:"status" binding:"required"`
	Remarks     string `json:"remarks"`
	DocumentRef string `json:"document_ref"`
	ActorID     string `json:"actor_id" binding:"required"`
}

func (r TransitionRequest) ResolveStatus() string {
	return strings.ToUpper(strings.TrimSpace(r.Status))
}
