package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/jingkaihe/volform/pkg/form"
	"github.com/jingkaihe/volform/pkg/logging"
	"github.com/jingkaihe/volform/pkg/volume"
)

// loadForm builds a form from the volume file at path.
func loadForm(path string, opts ...form.Option) (*form.Form, error) {
	if path == "" {
		return nil, ErrNoTemplates
	}
	file, err := volume.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return form.New(file.Volume, file.Templates, opts...)
}

// openEmitter returns the event emitter configured by events.log, or nil
// when event logging is off.
func openEmitter(path, source string) (*logging.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	w, err := logging.NewJSONLWriter(path)
	if err != nil {
		return nil, err
	}
	e := logging.NewEmitter(logging.EmitterConfig{
		SessionID: uuid.NewString(),
		Source:    source,
	}, w)
	slog.Debug("events log opened", "path", w.Path(), "session_id", e.SessionID())
	return e, nil
}

func outputFormat() (volume.Format, error) {
	return volume.ParseFormat(viper.GetString("output"))
}
