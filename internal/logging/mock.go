package logging

import (
	"fmt"
	"sync"
)

// MockLogger captures log entries for verification in tests. Loggers derived
// through WithField/WithFields/WithError record into the same entry list, and
// it is safe for concurrent use.
type MockLogger struct {
	store         *entryStore
	pendingError  error
	pendingFields []Field
}

type entryStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// LogEntry represents a single log entry captured by MockLogger.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{store: &entryStore{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.store == nil {
		m.store = &entryStore{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)

	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
		Error:   m.pendingError,
	})
}

// Debug logs a debug-level message with optional fields.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info logs an info-level message with optional fields.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn logs a warning-level message with optional fields.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error logs an error-level message with optional fields.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records a fatal-level message. The mock never exits.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// Fatalf records a formatted fatal-level message. The mock never exits.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

// WithError returns a derived logger with an error attached.
func (m *MockLogger) WithError(err error) Logger {
	m.ensureStore()
	return &MockLogger{
		store:         m.store,
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.ensureStore()
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)
	return &MockLogger{
		store:         m.store,
		pendingError:  m.pendingError,
		pendingFields: all,
	}
}

func (m *MockLogger) ensureStore() {
	if m.store == nil {
		m.store = &entryStore{}
	}
}

// GetEntries returns a copy of all captured log entries.
func (m *MockLogger) GetEntries() []LogEntry {
	m.ensureStore()
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	out := make([]LogEntry, len(m.store.entries))
	copy(out, m.store.entries)
	return out
}

// GetEntriesByLevel returns all log entries of a specific level.
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, entry := range m.GetEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Clear removes all captured log entries.
func (m *MockLogger) Clear() {
	m.ensureStore()
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = nil
}

// HasEntry checks if a log entry with the given level and message exists.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, entry := range m.GetEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}

// FieldValue returns the value of the named field on an entry.
func (e LogEntry) FieldValue(key string) (interface{}, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}
