package form

import (
	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Action is one of SelectVolume, UpdateFields or SetErrors.
type Action interface {
	action()
}

// SelectVolume re-initializes the whole state from the volume registered
// under MountPoint, discarding prior edits and errors.
type SelectVolume struct {
	MountPoint string
}

// UpdateFields merges Fields over the current fields. Errors are kept and
// validation does not run.
type UpdateFields struct {
	Fields sizing.Fields
}

// SetErrors replaces the errors wholesale.
type SetErrors struct {
	Errors sizing.Errors
}

func (SelectVolume) action() {}
func (UpdateFields) action() {}
func (SetErrors) action()    {}

// Catalog resolves mount points to the volumes that may be selected.
type Catalog interface {
	Lookup(mountPoint string) (volume.Descriptor, bool)
}

// Reduce applies a to s and returns the next state. s is never modified.
// On error the returned state is s unchanged.
func Reduce(c Catalog, s State, a Action) (State, error) {
	switch a := a.(type) {
	case SelectVolume:
		d, ok := c.Lookup(a.MountPoint)
		if !ok {
			return s, errx.With(ErrUnknownMountPoint, ": %q", a.MountPoint)
		}
		return NewState(d), nil

	case UpdateFields:
		next := s.Clone()
		next.Fields = s.Fields.Merge(a.Fields)
		return next, nil

	case SetErrors:
		next := s.Clone()
		next.Errors = a.Errors.Clone()
		return next, nil

	default:
		return s, errx.With(ErrUnknownAction, ": %T", a)
	}
}
