package logging

import (
	"encoding/json"
	"time"
)

// Event is the structured record of one form session step.
// Required fields: Timestamp, SessionID, Source, EventType, Summary.
// Optional fields use omitempty tags.
type Event struct {
	Timestamp time.Time       `json:"ts"`
	SessionID string          `json:"session_id"`
	Source    string          `json:"source"`
	EventType string          `json:"event_type"`
	Summary   string          `json:"summary"`
	Tags      []string        `json:"tags,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Event type constants.
const (
	EventVolumeSelected = "volume_selected"
	EventFieldsUpdated  = "fields_updated"
	EventSubmitRejected = "submit_rejected"
	EventSubmitAccepted = "submit_accepted"
)

// VolumeSelectedData is the data payload for volume_selected events.
type VolumeSelectedData struct {
	MountPoint string `json:"mount_point"`
	Policy     string `json:"policy"`
}

// FieldsUpdatedData is the data payload for fields_updated events.
// Only the patched fields are carried.
type FieldsUpdatedData struct {
	MountPoint string            `json:"mount_point"`
	Fields     map[string]string `json:"fields"`
}

// SubmitRejectedData is the data payload for submit_rejected events.
type SubmitRejectedData struct {
	MountPoint string            `json:"mount_point"`
	Policy     string            `json:"policy"`
	Errors     map[string]string `json:"errors"`
}

// SubmitAcceptedData is the data payload for submit_accepted events.
// MaxSize is -1 for an unbounded maximum.
type SubmitAcceptedData struct {
	MountPoint      string `json:"mount_point"`
	Policy          string `json:"policy"`
	MinSize         *int64 `json:"min_size,omitempty"`
	MaxSize         *int64 `json:"max_size,omitempty"`
	FixedSizeLimits bool   `json:"fixed_size_limits"`
}
