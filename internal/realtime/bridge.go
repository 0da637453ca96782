package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// syncChannel is the Redis pub/sub channel carrying sync events. A single
// channel is shared by all families; the hub filters by family on delivery.
const syncChannel = "sync:events"

// Bridge routes events through Redis pub/sub so that a mutation handled by
// one server instance reaches devices connected to any instance.
type Bridge struct {
	rdb *redis.Client
	hub *Hub
}

func NewBridge(rdb *redis.Client, hub *Hub) *Bridge {
	return &Bridge{rdb: rdb, hub: hub}
}

// Publish sends an event to the shared channel. Best-effort: a failed
// publish is logged and the originating mutation proceeds unaffected.
func (b *Bridge) Publish(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("bridge: marshal event")
		return
	}
	if err := b.rdb.Publish(ctx, syncChannel, data).Err(); err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("bridge: publish event")
	}
}

// Run subscribes to the shared channel and feeds received events into the
// local hub. It blocks until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, syncChannel)
	defer pubsub.Close()

	log.Info().Str("channel", syncChannel).Msg("bridge: subscribed")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("bridge: shutting down")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Error().Err(err).Msg("bridge: invalid event payload")
				continue
			}
			b.hub.Broadcast(event)
		}
	}
}
