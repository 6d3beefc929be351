package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogger_LogAndGet(t *testing.T) {
	el := NewEventLogger(10)

	el.LogEvent(EventTransactionCreated, "api-server", "sqlite", map[string]interface{}{
		"transaction_id": int64(1),
	})
	el.LogEvent(EventAIRequest, "api-server", "gemini", nil)

	events := el.GetEvents(10)
	require.Len(t, events, 2)
	assert.Equal(t, EventTransactionCreated, events[0].Type)
	assert.Equal(t, EventAIRequest, events[1].Type)
	assert.Equal(t, "gemini", events[1].Component)
	assert.NotEmpty(t, events[0].ID)
}

func TestEventLogger_BoundedSize(t *testing.T) {
	el := NewEventLogger(3)

	for i := 0; i < 5; i++ {
		el.LogEvent(EventUserLogin, "api-server", "api", nil)
	}

	events := el.GetEvents(100)
	assert.Len(t, events, 3)
}

func TestEventLogger_GetEventsLimit(t *testing.T) {
	el := NewEventLogger(10)

	for i := 0; i < 5; i++ {
		el.LogEvent(EventKafkaSent, "api-server", "kafka", nil)
	}

	assert.Len(t, el.GetEvents(2), 2)
	assert.Len(t, el.GetEvents(0), 5)
	assert.Len(t, el.GetEvents(-1), 5)
}

func TestEventLogger_Stats(t *testing.T) {
	el := NewEventLogger(10)

	el.LogEvent(EventTransactionCreated, "api-server", "sqlite", nil)
	el.LogEvent(EventTransactionDeleted, "api-server", "sqlite", nil)
	el.LogEvent(EventAIResponse, "api-server", "gemini", nil)

	stats := el.GetStats()
	assert.Equal(t, 3, stats["total_events"])

	components := stats["components"].(map[string]int)
	assert.Equal(t, 2, components["sqlite"])
	assert.Equal(t, 1, components["gemini"])
}
