package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishListingEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	event := &service.ListingEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Category:  "book",
		ItemID:    11,
		OwnerID:   3,
		Title:     "Calculus",
		Price:     12.5,
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	require.NoError(t, publisher.PublishListingEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, "11", received.Message.Attributes["item_id"])
	assert.Equal(t, "book", received.Message.Attributes["category"])
	assert.Equal(t, "listing.created", received.Message.Attributes["event_type"])
	assert.Equal(t, localPushSubscription, received.Subscription)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.ListingEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishListingEvent(context.Background(), &service.ListingEvent{EventID: "evt-2"})
	assert.ErrorContains(t, err, "502")
}

func TestEncodeListingEvent_Attributes(t *testing.T) {
	t.Parallel()

	encoded, err := encodeListingEvent(&service.ListingEvent{
		EventID:    "evt-3",
		Category:   "uniforms",
		ItemID:     4,
		OwnerID:    9,
		IsFeatured: true,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"event_type":     "listing.created",
		"schema_version": "1",
		"event_id":       "evt-3",
		"category":       "uniforms",
		"item_id":        "4",
		"owner_id":       "9",
		"featured":       "true",
	}, encoded.attributes)
	assert.JSONEq(t, `{"event_id":"evt-3","category":"uniforms","item_id":4,"owner_id":9,"title":"","price":0,"is_featured":true,"created_at":"0001-01-01T00:00:00Z"}`, string(encoded.data))
}

func TestNewEventPublisher_Providers(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "listings"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "campus"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
