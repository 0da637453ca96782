package realtime

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastReachesOnlyMatchingFamily(t *testing.T) {
	hub := NewHub()
	familyA, familyB := uuid.New(), uuid.New()

	phoneA := NewClient(hub, nil, familyA)
	tabletA := NewClient(hub, nil, familyA)
	phoneB := NewClient(hub, nil, familyB)
	hub.Register(phoneA)
	hub.Register(tabletA)
	hub.Register(phoneB)

	itemID := uuid.New()
	hub.Broadcast(NewEvent(familyA, EntityItem, ActionUpdated, itemID, map[string]any{"checked": true}))

	for _, c := range []*Client{phoneA, tabletA} {
		select {
		case raw := <-c.send:
			var got Event
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, "item_updated", got.Type)
			assert.Equal(t, itemID, got.ID)
			assert.Equal(t, true, got.Extra["checked"])
		default:
			t.Fatal("expected event for family A client")
		}
	}

	select {
	case <-phoneB.send:
		t.Fatal("family B client must not receive family A events")
	default:
	}
}

func TestBroadcastDropsWhenClientBufferFull(t *testing.T) {
	hub := NewHub()
	familyID := uuid.New()

	slow := NewClient(hub, nil, familyID)
	hub.Register(slow)

	for i := 0; i < sendBufferSize+10; i++ {
		hub.Broadcast(NewEvent(familyID, EntityItem, ActionCreated, uuid.New(), nil))
	}

	// Overflow is dropped, never blocked on.
	assert.Len(t, slow.send, sendBufferSize)
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	familyID := uuid.New()

	c := NewClient(hub, nil, familyID)
	hub.Register(c)
	require.Equal(t, 1, hub.ClientCount(familyID))

	hub.Unregister(c)
	assert.Equal(t, 0, hub.ClientCount(familyID))

	_, open := <-c.send
	assert.False(t, open)

	// Double unregister is a no-op, not a double close.
	hub.Unregister(c)
}

func TestClientCountPerFamily(t *testing.T) {
	hub := NewHub()
	familyA, familyB := uuid.New(), uuid.New()

	hub.Register(NewClient(hub, nil, familyA))
	hub.Register(NewClient(hub, nil, familyA))
	hub.Register(NewClient(hub, nil, familyB))

	assert.Equal(t, 2, hub.ClientCount(familyA))
	assert.Equal(t, 1, hub.ClientCount(familyB))
	assert.Equal(t, 0, hub.ClientCount(uuid.New()))
}
