package logger

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventLogger(t *testing.T) {
	logger := NewEventLogger(100)
	require.NotNil(t, logger)
	assert.Equal(t, 100, logger.maxSize)
	assert.Empty(t, logger.events)
}

func TestEventLogger_LogEvent(t *testing.T) {
	logger := NewEventLogger(100)

	data := map[string]interface{}{
		"id":       int64(1),
		"currency": "USD",
	}

	logger.LogEvent(EventTransactionSaved, "run_1", "sqlite", data)

	require.Len(t, logger.events, 1)
	event := logger.events[0]
	assert.Equal(t, EventTransactionSaved, event.Type)
	assert.Equal(t, "run_1", event.RunID)
	assert.Equal(t, "sqlite", event.Component)
	assert.Equal(t, data, event.Data)
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestEventLogger_LogEvent_MaxSize(t *testing.T) {
	logger := NewEventLogger(3)

	// Добавляем больше событий, чем maxSize
	for i := 0; i < 5; i++ {
		logger.LogEvent(EventTransactionSaved, "run_1", "sqlite", map[string]interface{}{"index": i})
	}

	// Должны остаться только последние 3 события
	require.Len(t, logger.events, 3)
	assert.Equal(t, 2, logger.events[0].Data["index"])
	assert.Equal(t, 3, logger.events[1].Data["index"])
	assert.Equal(t, 4, logger.events[2].Data["index"])
}

func TestEventLogger_GetEvents(t *testing.T) {
	logger := NewEventLogger(100)

	for i := 0; i < 10; i++ {
		logger.LogEvent(EventTransactionSaved, "run_1", "sqlite", map[string]interface{}{"index": i})
	}

	events := logger.GetEvents(3)
	require.Len(t, events, 3)
	assert.Equal(t, 7, events[0].Data["index"])
	assert.Equal(t, 9, events[2].Data["index"])

	assert.Len(t, logger.GetEvents(0), 10)
	assert.Len(t, logger.GetEvents(500), 10)
}

func TestEventLogger_GetEvents_Bounds(t *testing.T) {
	logger := NewEventLogger(100)
	assert.Empty(t, logger.GetEvents(5))
	assert.Empty(t, logger.GetEvents(-1))

	logger.LogEvent(EventRunStarted, "run_1", "pipeline", nil)
	logger.LogEvent(EventRunCompleted, "run_1", "pipeline", nil)

	events := logger.GetEvents(-3)
	require.Len(t, events, 2)
	assert.Equal(t, EventRunStarted, events[0].Type)
}

func TestEventLogger_GetRunEvents(t *testing.T) {
	logger := NewEventLogger(100)

	logger.LogEvent(EventRunStarted, "run_1", "pipeline", nil)
	logger.LogEvent(EventRunStarted, "run_2", "pipeline", nil)
	logger.LogEvent(EventRunCompleted, "run_1", "pipeline", nil)

	events := logger.GetRunEvents("run_1")
	require.Len(t, events, 2)
	assert.Equal(t, EventRunStarted, events[0].Type)
	assert.Equal(t, EventRunCompleted, events[1].Type)
	assert.Empty(t, logger.GetRunEvents("run_3"))
}

func TestEventLogger_GetStats(t *testing.T) {
	logger := NewEventLogger(100)

	logger.LogEvent(EventTransactionSaved, "run_1", "sqlite", map[string]interface{}{})
	logger.LogEvent(EventKafkaSent, "run_1", "kafka", map[string]interface{}{})
	logger.LogEvent(EventTransactionSaved, "run_2", "sqlite", map[string]interface{}{})

	stats := logger.GetStats()

	assert.Equal(t, 3, stats["total_events"])

	components, ok := stats["components"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, components["sqlite"])
	assert.Equal(t, 1, components["kafka"])

	runs, ok := stats["runs"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, runs["run_1"])
	assert.Equal(t, 1, runs["run_2"])

	eventTypes, ok := stats["event_types"].(map[string]int)
	require.True(t, ok)
	assert.Equal(t, 2, eventTypes[string(EventTransactionSaved)])
}

func TestLogEvent_Global(t *testing.T) {
	LogEvent(EventRunAborted, "run_global", "pipeline", map[string]interface{}{"error": "boom"})

	events := GetEvents(1)
	require.Len(t, events, 1)
	assert.Equal(t, EventRunAborted, events[0].Type)
	assert.Equal(t, "run_global", events[0].RunID)
	assert.Same(t, globalLogger, Global())

	stats := GetStats()
	assert.Contains(t, stats, "total_events")
	assert.Contains(t, stats, "runs")
}

func TestEvent_MarshalJSON(t *testing.T) {
	event := Event{
		ID:        "test-id",
		Type:      EventRatesFetched,
		RunID:     "run_1",
		Component: "rates",
		Timestamp: time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC),
		Data:      map[string]interface{}{"currencies": 43},
	}

	jsonData, err := event.MarshalJSON()
	require.NoError(t, err)

	// timestamp сериализуется в RFC3339
	assert.Contains(t, string(jsonData), "2024-01-15T14:30:00Z")
	assert.Contains(t, string(jsonData), `"run_id":"run_1"`)
}

func TestEventLogger_ConcurrentAccess(t *testing.T) {
	logger := NewEventLogger(1000)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				logger.LogEvent(EventTransactionSaved, "run_1", "sqlite", map[string]interface{}{
					"goroutine": index,
					"event":     j,
				})
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, logger.GetEvents(0), 100)
}
