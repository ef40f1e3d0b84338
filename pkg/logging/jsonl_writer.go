package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/jingkaihe/volform/internal/errx"
)

// JSONLWriter appends form session events to a file, one JSON object per
// line. Several sessions may share one log; each line carries its
// session_id. It is safe for concurrent use.
type JSONLWriter struct {
	path string

	mu      sync.Mutex
	file    *os.File
	enc     *json.Encoder
	written int
}

// NewJSONLWriter opens path for appending, creating it and any missing
// parent directories. Event logs can hold mount points of the edited
// system, so the file is private to the user.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errx.Wrap(ErrCreateLogDir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, errx.Wrap(ErrCreateLogFile, err)
	}
	return &JSONLWriter{
		path: path,
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Path is the file events are appended to.
func (w *JSONLWriter) Path() string { return w.path }

// Written is the number of events appended by this writer.
func (w *JSONLWriter) Written() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

func (w *JSONLWriter) Write(event *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return errx.With(ErrWriteEvent, ": %s is closed", w.path)
	}
	if err := w.enc.Encode(event); err != nil {
		return errx.Wrap(ErrWriteEvent, err)
	}
	w.written++
	return nil
}

// Close syncs and closes the file. Closing twice is a no-op.
func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	f := w.file
	w.file = nil
	_ = f.Sync()
	if err := f.Close(); err != nil {
		return errx.Wrap(ErrCloseWriter, err)
	}
	return nil
}
