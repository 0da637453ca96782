// Package realtime fans out change notifications to every device of a
// family: mutations publish events through Redis pub/sub, and each server
// instance broadcasts them to its locally connected WebSocket clients.
// Clients react by refetching and recomputing derived views — no client-side
// merge logic exists; the store's last-write-wins semantics is relied upon.
package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Entities and actions carried by sync events.
const (
	EntityList    = "list"
	EntityItem    = "item"
	EntityCatalog = "catalog"

	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionCompleted = "completed"

	// Milestone signals consumed by the celebration UI.
	ActionCategoryDone = "category_completed"
	ActionAllDone      = "all_completed"
)

// Event is a real-time sync notification delivered to all of a family's
// connected devices.
type Event struct {
	Type     string         `json:"type"`
	FamilyID uuid.UUID      `json:"family_id"`
	Entity   string         `json:"entity"`
	Action   string         `json:"action"`
	ID       uuid.UUID      `json:"id,omitempty"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// NewEvent creates an Event with the Type field derived from entity and action.
func NewEvent(familyID uuid.UUID, entity, action string, id uuid.UUID, extra map[string]any) Event {
	return Event{
		Type:     fmt.Sprintf("%s_%s", entity, action),
		FamilyID: familyID,
		Entity:   entity,
		Action:   action,
		ID:       id,
		Extra:    extra,
	}
}

// Publisher is the mutation-side interface: services publish, transport
// delivers. Publishing is best-effort — implementations log and continue on
// failure rather than failing the originating mutation.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}
