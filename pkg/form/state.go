// Package form holds the editable state of a volume size form and the
// reducer that drives it.
package form

import (
	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

// State is the working copy manipulated while editing one volume. Volume is
// the baseline being edited and is never mutated; edits live in Fields until
// a submit materializes them.
type State struct {
	Volume volume.Descriptor
	Fields sizing.Fields
	Errors sizing.Errors
}

// NewState derives a fresh state from d with no errors.
func NewState(d volume.Descriptor) State {
	return State{
		Volume: d.Clone(),
		Fields: sizing.FieldsFor(d),
		Errors: sizing.Errors{},
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Volume: s.Volume.Clone(),
		Fields: s.Fields.Clone(),
		Errors: s.Errors.Clone(),
	}
}

// Valid reports whether the last submit attempt left no errors.
func (s State) Valid() bool { return len(s.Errors) == 0 }

// Policy returns the policy currently selected in the sizeMethod field.
func (s State) Policy() (sizing.Policy, error) {
	return s.Fields.Policy()
}
