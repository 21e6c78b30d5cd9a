package logging

import "sync"

// MockLogger records log calls for assertions in tests.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
}

// MockEntry is one recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: fields, Err: err})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields, nil) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields, nil) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields, nil) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields, nil) }

func (m *MockLogger) WithError(err error) Logger {
	return &fieldLogger{parent: m, err: err}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &fieldLogger{parent: m, fields: []Field{{Key: key, Value: value}}}
}

// HasMessage reports whether any recorded entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// fieldLogger carries accumulated fields back into the parent mock.
type fieldLogger struct {
	parent *MockLogger
	fields []Field
	err    error
}

func (f *fieldLogger) log(level, msg string, fields []Field) {
	all := append(append([]Field{}, f.fields...), fields...)
	f.parent.record(level, msg, all, f.err)
}

func (f *fieldLogger) Debug(msg string, fields ...Field) { f.log("debug", msg, fields) }
func (f *fieldLogger) Info(msg string, fields ...Field)  { f.log("info", msg, fields) }
func (f *fieldLogger) Warn(msg string, fields ...Field)  { f.log("warn", msg, fields) }
func (f *fieldLogger) Error(msg string, fields ...Field) { f.log("error", msg, fields) }

func (f *fieldLogger) WithError(err error) Logger {
	return &fieldLogger{parent: f.parent, fields: f.fields, err: err}
}

func (f *fieldLogger) WithField(key string, value interface{}) Logger {
	return &fieldLogger{parent: f.parent, fields: append(append([]Field{}, f.fields...), Field{Key: key, Value: value}), err: f.err}
}
