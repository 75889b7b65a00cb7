package service

import (
	"context"
	"time"
)

// ListingEvent announces a newly created listing to downstream consumers.
type ListingEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventID    string    `json:"event_id"`
	Category   string    `json:"category"`
	ItemID     int64     `json:"item_id"`
	OwnerID    int64     `json:"owner_id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingEvent publishes a listing event for async consumers
	PublishListingEvent(ctx context.Context, event *ListingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
