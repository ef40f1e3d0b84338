package logging

import (
	"encoding/json"
	"time"

	"github.com/jingkaihe/volform/internal/errx"
)

// EmitterConfig holds the static metadata configured when a session starts.
// All fields are stamped onto every event automatically.
type EmitterConfig struct {
	SessionID string // Defaults to a fresh UUID in the CLI
	Source    string // Where actions come from, e.g. "edit" or "session"
}

// Emitter provides convenience methods for emitting typed events.
// It holds static metadata and dispatches to one or more sinks.
//
// A nil *Emitter is safe to use; Emit and Close on it are no-ops.
type Emitter struct {
	config EmitterConfig
	sinks  []Sink
	now    func() time.Time
}

// NewEmitter creates an emitter with the given configuration and sinks.
func NewEmitter(cfg EmitterConfig, sinks ...Sink) *Emitter {
	return &Emitter{
		config: cfg,
		sinks:  sinks,
		now:    time.Now,
	}
}

// SessionID returns the id stamped on every event.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.config.SessionID
}

// Emit constructs an event with the emitter's static metadata and writes
// it to all registered sinks.
//
// Parameters:
//   - eventType: one of the Event* constants (e.g., EventSubmitAccepted)
//   - summary: human-readable one-line summary
//   - tags: optional tags for filtering (nil is fine)
//   - data: the typed data struct (e.g., *SubmitAcceptedData); nil for no payload
//
// Returns the first error encountered. Callers should discard errors
// with _ = (best-effort semantics).
func (e *Emitter) Emit(eventType, summary string, tags []string, data interface{}) error {
	if e == nil {
		return nil
	}

	var rawData json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return errx.Wrap(ErrMarshalData, err)
		}
		rawData = b
	}

	event := &Event{
		Timestamp: e.now().UTC(),
		SessionID: e.config.SessionID,
		Source:    e.config.Source,
		EventType: eventType,
		Summary:   summary,
		Tags:      tags,
		Data:      rawData,
	}

	for _, sink := range e.sinks {
		if err := sink.Write(event); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all sinks. Returns the first error encountered.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	var firstErr error
	for _, sink := range e.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
