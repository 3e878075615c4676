package entities

import "time"

// StatusHistoryEntry records one applied status transition.
//
// History is append-only: the workflow never edits or removes entries, and
// they are stored oldest-first alongside the entity.
type StatusHistoryEntry struct {
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Remarks     string    `json:"remarks,omitempty"`
	DocumentRef string    `json:"document_ref,omitempty"`
	ActorID     string    `json:"actor_id"`
	Timestamp   time.Time `json:"timestamp"`
}

// StatusMeta is the canonical display metadata for one status value.
// Rendering layers consume this instead of keeping their own label/color maps.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}
