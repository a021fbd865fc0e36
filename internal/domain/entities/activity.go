package entities

import "time"

// ActivityEntry is an immutable, append-only record of a document mutation.
//
// The workflow layer only writes entries; nothing in this service reads them
// back synchronously.
type ActivityEntry struct {
	ID          string         `json:"id"`
	ActorID     string         `json:"actor_id"`
	EntityType  string         `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

const (
	ActivityEntityEstimate = "estimate"
	ActivityEntityInvoice  = "invoice"

	ActivityActionCreated = "created"
	ActivityActionUpdated = "updated"
)
