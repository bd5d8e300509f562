// Package audit records pipeline events keyed by input/output hashes. The
// log is append-only and never stores raw answers or basic info; the hashes
// are the only link back to request content.
package audit

import (
	"time"

	"github.com/google/uuid"

	"renovation-core/internal/common/logger"
)

// Event names a pipeline lifecycle point.
type Event string

const (
	EventAnalysisRequested Event = "ANALYSIS_REQUESTED"
	EventAnalysisCompleted Event = "ANALYSIS_COMPLETED"
	EventAnalysisFailed    Event = "ANALYSIS_FAILED"
	EventEstimateRequested Event = "ESTIMATE_REQUESTED"
	EventEstimateCompleted Event = "ESTIMATE_COMPLETED"
	EventEstimateFailed    Event = "ESTIMATE_FAILED"
)

// Entry is one immutable audit record.
type Entry struct {
	RequestID    string    `json:"requestId"`
	Event        Event     `json:"event"`
	InputHash    string    `json:"inputHash"`
	OutputHash   string    `json:"outputHash,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Version      string    `json:"version"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
}

// Store persists entries. Append must be atomic; entries are never updated
// or deleted.
type Store interface {
	Append(entry Entry) error
	Entries() []Entry
	Close() error
}

// Logger is the explicitly constructed audit logger. No package-level
// singleton exists; callers receive an instance by dependency injection.
type Logger struct {
	store   Store
	mirror  Store // optional best-effort mirror (Elasticsearch)
	version string
	log     logger.Logger
	now     func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithMirror adds a best-effort secondary store. Mirror failures are
// logged, never propagated: the canonical store decides success.
func WithMirror(mirror Store) Option {
	return func(l *Logger) { l.mirror = mirror }
}

// WithClock overrides the timestamp source. Tests use this.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) { l.now = now }
}

// New constructs an audit logger over store.
func New(store Store, version string, log logger.Logger, opts ...Option) *Logger {
	l := &Logger{
		store:   store,
		version: version,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LogOption sets optional fields on one entry.
type LogOption func(*Entry)

// WithRequestID reuses an existing request id instead of generating one.
func WithRequestID(id string) LogOption {
	return func(e *Entry) { e.RequestID = id }
}

// WithOutputHash attaches the output hash to a completion entry.
func WithOutputHash(hash string) LogOption {
	return func(e *Entry) { e.OutputHash = hash }
}

// WithErrorMessage attaches the failure reason to a failure entry.
func WithErrorMessage(msg string) LogOption {
	return func(e *Entry) { e.ErrorMessage = msg }
}

// Log appends one entry and returns it. A request id is generated when the
// caller has none yet.
func (l *Logger) Log(event Event, inputHash string, opts ...LogOption) Entry {
	entry := Entry{
		Event:     event,
		InputHash: inputHash,
		Timestamp: l.now(),
		Version:   l.version,
	}
	for _, opt := range opts {
		opt(&entry)
	}
	if entry.RequestID == "" {
		entry.RequestID = uuid.NewString()
	}

	if err := l.store.Append(entry); err != nil {
		l.log.Error("audit append failed", map[string]interface{}{
			"event":     string(event),
			"requestId": entry.RequestID,
			"error":     err.Error(),
		})
	}

	if l.mirror != nil {
		if err := l.mirror.Append(entry); err != nil {
			l.log.Warn("audit mirror append failed", map[string]interface{}{
				"event":     string(event),
				"requestId": entry.RequestID,
				"error":     err.Error(),
			})
		}
	}

	return entry
}

// Logs returns a copy of all entries for diagnostics.
func (l *Logger) Logs() []Entry {
	return l.store.Entries()
}

// Close releases the underlying stores.
func (l *Logger) Close() error {
	if l.mirror != nil {
		_ = l.mirror.Close()
	}
	return l.store.Close()
}
