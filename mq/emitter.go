package mq

import (
	"context"
	"encoding/json"
	"log"

	"linkhive/models"
	"linkhive/rdx"
)

const channel = "indexing-events"

// Emit publishes an indexing event to Redis for the background worker.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
	}
}

// StartIndexingWorker consumes indexing events and maintains the trending
// tag counters in Redis.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for indexing events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		if err := indexEvent(ctx, event); err != nil {
			log.Printf("[IndexingWorker] index error: %v", err)
		}
	}
}

func indexEvent(ctx context.Context, event models.Index) error {
	switch event.EntityType {
	case "post":
		if event.ItemType == "tag" && event.ItemId != "" {
			return rdx.Conn.ZIncrBy(ctx, "tags:trending", 1, event.ItemId).Err()
		}
	case "connection":
		return rdx.Conn.ZIncrBy(ctx, "users:connected", 1, event.EntityId).Err()
	}
	return nil
}

// EmitTagEvents publishes one event per tag so the worker can keep the
// trending set in step with newly tagged posts.
func EmitTagEvents(ctx context.Context, postID string, tags []string) {
	for _, tag := range tags {
		Emit(ctx, "post-tagged", models.Index{
			EntityType: "post",
			EntityId:   postID,
			Method:     "POST",
			ItemId:     tag,
			ItemType:   "tag",
		})
	}
}
