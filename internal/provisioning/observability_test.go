package provisioning

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// MockObserver is a test implementation of Observer that records events.
type MockObserver struct {
	events   []Event
	messages []string
	fields   map[string]string
}

func NewMockObserver() *MockObserver {
	return &MockObserver{
		events:   make([]Event, 0),
		messages: make([]string, 0),
		fields:   make(map[string]string),
	}
}

func (m *MockObserver) Printf(format string, v ...interface{}) {
	m.messages = append(m.messages, format)
}

func (m *MockObserver) Event(event Event) {
	m.events = append(m.events, event)
}

func (m *MockObserver) Progress(phase string, current, total int) {
	m.Event(Event{
		Type:    EventProgress,
		Phase:   phase,
		Message: "progress",
		Fields: map[string]string{
			"current": strconv.Itoa(current),
			"total":   strconv.Itoa(total),
		},
	})
}

func (m *MockObserver) WithFields(fields map[string]string) Observer {
	newObserver := NewMockObserver()
	for k, v := range m.fields {
		newObserver.fields[k] = v
	}
	for k, v := range fields {
		newObserver.fields[k] = v
	}
	return newObserver
}

// eventTypes collects the types of all recorded events in order.
func (m *MockObserver) eventTypes() []EventType {
	types := make([]EventType, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type)
	}
	return types
}

// hasEvent reports whether any recorded event has the given type.
func (m *MockObserver) hasEvent(t EventType) bool {
	for _, e := range m.events {
		if e.Type == t {
			return true
		}
	}
	return false
}

func TestConsoleObserver_Printf(t *testing.T) {
	observer := NewConsoleObserver()

	// Should not panic
	observer.Printf("test message: %s", "value")
}

func TestConsoleObserver_Event(t *testing.T) {
	observer := NewConsoleObserver()

	event := Event{
		Type:     EventResourceCreated,
		Phase:    "storage",
		Resource: "demostor",
		Message:  "storage account created",
		Fields: map[string]string{
			"type": "storage account",
			"id":   "demostor",
		},
	}

	// Should not panic
	observer.Event(event)
}

func TestConsoleObserver_Progress(t *testing.T) {
	observer := NewConsoleObserver()

	// Should not panic
	observer.Progress("providers", 2, 4)
	observer.Progress("providers", 0, 0)
}

func TestConsoleObserver_WithFields(t *testing.T) {
	observer := NewConsoleObserver()

	contextualObserver := observer.WithFields(map[string]string{
		"project":  "demo",
		"location": "eastus",
	})

	assert.NotNil(t, contextualObserver)
}

func TestConsoleObserver_FormatEvent(t *testing.T) {
	observer := NewConsoleObserver()

	msg := observer.formatEvent(Event{
		Type:     EventResourceCreating,
		Phase:    "registry",
		Resource: "demoacr",
		Message:  "creating container registry",
	})

	assert.Contains(t, msg, "resource.creating")
	assert.Contains(t, msg, "[registry]")
	assert.Contains(t, msg, "resource=demoacr")
	assert.Contains(t, msg, "creating container registry")
}

func TestMockObserver_Events(t *testing.T) {
	observer := NewMockObserver()

	LogPhaseStart(observer, "storage")
	LogResourceCreating(observer, "storage", "storage account", "demostor")
	LogResourceCreated(observer, "storage", "storage account", "demostor", "demostor")
	LogPhaseComplete(observer, "storage", 2*time.Second)

	assert.Len(t, observer.events, 4)

	assert.Equal(t, EventPhaseStarted, observer.events[0].Type)
	assert.Equal(t, "storage", observer.events[0].Phase)

	assert.Equal(t, EventResourceCreating, observer.events[1].Type)
	assert.Equal(t, "demostor", observer.events[1].Resource)

	assert.Equal(t, EventResourceCreated, observer.events[2].Type)
	assert.Equal(t, "demostor", observer.events[2].Fields["id"])

	assert.Equal(t, EventPhaseCompleted, observer.events[3].Type)
}

func TestObserver_ImplementsLogger(t *testing.T) {
	var logger Logger
	var observer Observer = NewConsoleObserver()

	logger = observer
	assert.NotNil(t, logger)
}

func TestLogHelpers(t *testing.T) {
	observer := NewMockObserver()

	LogPhaseStart(observer, "phase1")
	LogPhaseComplete(observer, "phase1", time.Second)
	LogPhaseFailed(observer, "phase2", assert.AnError)
	LogResourceCreating(observer, "registry", "container registry", "demoacr")
	LogResourceCreated(observer, "registry", "container registry", "demoacr", "demoacr.azurecr.io")
	LogResourceExists(observer, "providers", "resource provider", "Microsoft.Storage", "Registered")
	LogResourceFailed(observer, "registry", "container registry", "demoacr", assert.AnError)

	assert.Len(t, observer.events, 7)
}
