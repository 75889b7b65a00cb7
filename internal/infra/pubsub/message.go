// Package pubsub publishes marketplace listing events. Both transports send
// the same JSON payload and the same attribute set, so subscribers can filter
// on category without decoding the body.
package pubsub

import (
	"encoding/json"
	"strconv"

	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	// eventTypeListingCreated is the only event the marketplace emits today.
	eventTypeListingCreated = "listing.created"
	eventSchemaVersion      = "1"
)

// encodedEvent is a listing event ready for either transport.
type encodedEvent struct {
	data       []byte
	attributes map[string]string
}

func encodeListingEvent(event *service.ListingEvent) (encodedEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return encodedEvent{}, errors.Wrap(err, "failed to encode listing event")
	}

	attributes := map[string]string{
		"event_type":     eventTypeListingCreated,
		"schema_version": eventSchemaVersion,
		"event_id":       event.EventID,
		"category":       event.Category,
		"item_id":        strconv.FormatInt(event.ItemID, 10),
		"owner_id":       strconv.FormatInt(event.OwnerID, 10),
	}
	if event.IsFeatured {
		attributes["featured"] = "true"
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return encodedEvent{data: data, attributes: attributes}, nil
}

func eventAttrs(event *service.ListingEvent) []any {
	return []any{
		"event_id", event.EventID,
		"category", event.Category,
		"item_id", event.ItemID,
	}
}
