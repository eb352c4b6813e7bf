package logger

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventRunStarted         EventType = "run_started"
	EventRatesFetched       EventType = "rates_fetched"
	EventCombinationSkipped EventType = "combination_skipped"
	EventTransactionSaved   EventType = "transaction_saved"
	EventKafkaSent          EventType = "kafka_sent"
	EventRedisUpdated       EventType = "redis_updated"
	EventRunCompleted       EventType = "run_completed"
	EventRunAborted         EventType = "run_aborted"
)

type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	RunID     string                 `json:"run_id"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
	Component string                 `json:"component"` // pipeline, sqlite, kafka, redis, rates
}

// EventLogger хранит последние события конвейера в памяти
type EventLogger struct {
	events  []Event
	mu      sync.RWMutex
	maxSize int
}

var globalLogger *EventLogger

func init() {
	globalLogger = NewEventLogger(1000) // Храним последние 1000 событий
}

func NewEventLogger(maxSize int) *EventLogger {
	return &EventLogger{
		events:  make([]Event, 0, maxSize),
		maxSize: maxSize,
	}
}

// Global возвращает журнал событий процесса
func Global() *EventLogger {
	return globalLogger
}

func LogEvent(eventType EventType, runID string, component string, data map[string]interface{}) {
	globalLogger.LogEvent(eventType, runID, component, data)
}

func (el *EventLogger) LogEvent(eventType EventType, runID string, component string, data map[string]interface{}) {
	el.mu.Lock()
	defer el.mu.Unlock()

	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RunID:     runID,
		Component: component,
		Timestamp: time.Now(),
		Data:      data,
	}

	el.events = append(el.events, event)

	// Ограничиваем размер
	if len(el.events) > el.maxSize {
		el.events = el.events[len(el.events)-el.maxSize:]
	}
}

func GetEvents(limit int) []Event {
	return globalLogger.GetEvents(limit)
}

func (el *EventLogger) GetEvents(limit int) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	if limit <= 0 || limit > len(el.events) {
		limit = len(el.events)
	}

	// Возвращаем последние события
	start := len(el.events) - limit
	if start < 0 {
		start = 0
	}

	result := make([]Event, len(el.events)-start)
	copy(result, el.events[start:])
	return result
}

// GetRunEvents возвращает события одного запуска в порядке появления
func (el *EventLogger) GetRunEvents(runID string) []Event {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []Event
	for _, event := range el.events {
		if event.RunID == runID {
			result = append(result, event)
		}
	}
	return result
}

func GetStats() map[string]interface{} {
	return globalLogger.GetStats()
}

func (el *EventLogger) GetStats() map[string]interface{} {
	el.mu.RLock()
	defer el.mu.RUnlock()

	stats := make(map[string]interface{})
	componentStats := make(map[string]int)
	runStats := make(map[string]int)
	typeStats := make(map[string]int)

	for _, event := range el.events {
		componentStats[event.Component]++
		runStats[event.RunID]++
		typeStats[string(event.Type)]++
	}

	stats["total_events"] = len(el.events)
	stats["components"] = componentStats
	stats["runs"] = runStats
	stats["event_types"] = typeStats

	return stats
}

func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	return json.Marshal(&struct {
		Timestamp string `json:"timestamp"`
		*Alias
	}{
		Timestamp: e.Timestamp.Format(time.RFC3339),
		Alias:     (*Alias)(&e),
	})
}
