package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent_Fields(t *testing.T) {
	type resolvedData struct {
		Slug  string `json:"slug"`
		Brand string `json:"brand"`
	}

	data := resolvedData{Slug: "dom_1_reproduction_cle.html", Brand: "DOM"}
	event, err := NewEvent("storefront.brand.resolved", "DOM", "brand", "storefront-resolver", data)
	require.NoError(t, err)

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "storefront.brand.resolved", event.EventType)
	assert.Equal(t, "DOM", event.AggregateID)
	assert.Equal(t, "brand", event.AggregateType)
	assert.Equal(t, "storefront-resolver", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, 2*time.Second)

	var roundTripped resolvedData
	require.NoError(t, json.Unmarshal(event.Data, &roundTripped))
	assert.Equal(t, data, roundTripped)
}

func TestNewEvent_UnserializableData(t *testing.T) {
	_, err := NewEvent("test.event", "agg", "test", "svc", make(chan int))
	require.Error(t, err)
}

func TestEvent_MarshalRoundTrip(t *testing.T) {
	original, err := NewEvent("storefront.redirect.hit", "/commander/x", "redirect", "storefront-resolver",
		map[string]string{"destination": "https://www.cleservice.com/"})
	require.NoError(t, err)
	original.WithCorrelationID("corr-1")

	bytes, err := original.Marshal()
	require.NoError(t, err)

	restored, err := UnmarshalEvent(bytes)
	require.NoError(t, err)

	assert.Equal(t, original.EventID, restored.EventID)
	assert.Equal(t, original.EventType, restored.EventType)
	assert.Equal(t, original.CorrelationID, restored.CorrelationID)
	assert.JSONEq(t, string(original.Data), string(restored.Data))
}

func TestPingBrokers_NoBrokers(t *testing.T) {
	err := PingBrokers(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no brokers configured")
}
