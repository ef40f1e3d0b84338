package form

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/logging"
	"github.com/jingkaihe/volform/pkg/sizing"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Form hosts one editing session: a catalog of selectable volumes, the
// current State and the submit flow.
type Form struct {
	mu      sync.Mutex
	catalog *volume.Set
	editing bool
	state   State

	logger  *slog.Logger
	emitter *logging.Emitter // nil means no event logging
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithEmitter records session events through e.
func WithEmitter(e *logging.Emitter) Option {
	return func(f *Form) {
		f.emitter = e
	}
}

// SubmitResult is the outcome of a submit attempt. Exactly one of Volume
// and a non-empty Errors is set.
type SubmitResult struct {
	Volume *volume.Descriptor
	Errors sizing.Errors
}

// Accepted reports whether the submit produced a descriptor.
func (r SubmitResult) Accepted() bool { return r.Volume != nil }

// New creates a form. When current is non-nil the form edits that volume
// and its mount point is locked; otherwise the form starts from the first
// template and any template may be selected.
func New(current *volume.Descriptor, templates []volume.Descriptor, opts ...Option) (*Form, error) {
	var (
		set *volume.Set
		err error
	)
	if current != nil {
		set, err = volume.NewSet(*current)
	} else {
		set, err = volume.NewSet(templates...)
	}
	if err != nil {
		return nil, err
	}

	first, ok := set.First()
	if !ok {
		return nil, ErrNoVolumes
	}

	f := &Form{
		catalog: set,
		editing: current != nil,
		state:   NewState(first),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With("component", "form")
	return f, nil
}

// State returns a copy of the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Clone()
}

// Editing reports whether the form edits an existing volume, in which case
// the mount point cannot be changed.
func (f *Form) Editing() bool { return f.editing }

// MountPoints lists the mount points that SelectVolume accepts.
func (f *Form) MountPoints() []string { return f.catalog.MountPoints() }

// Volumes lists the selectable volumes.
func (f *Form) Volumes() []volume.Descriptor { return f.catalog.Volumes() }

// AvailablePolicies lists the policies selectable for the current volume.
func (f *Form) AvailablePolicies() []sizing.Policy {
	return sizing.Available(f.State().Volume)
}

// Dispatch applies a to the current state.
func (f *Form) Dispatch(a Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	next, err := Reduce(f.catalog, f.state, a)
	if err != nil {
		return err
	}
	f.state = next
	return nil
}

// SelectVolume switches the form to the volume mounted at mountPoint.
func (f *Form) SelectVolume(mountPoint string) error {
	if err := f.Dispatch(SelectVolume{MountPoint: mountPoint}); err != nil {
		return err
	}

	st := f.State()
	policy := st.Fields[sizing.FieldSizeMethod]
	f.logger.Debug("volume selected", "mount_point", st.Volume.MountPoint, "policy", policy)
	_ = f.emitter.Emit(logging.EventVolumeSelected,
		fmt.Sprintf("select %s", st.Volume.MountPoint),
		nil,
		&logging.VolumeSelectedData{MountPoint: st.Volume.MountPoint, Policy: policy},
	)
	return nil
}

// UpdateFields merges patch into the current fields.
func (f *Form) UpdateFields(patch sizing.Fields) error {
	if err := f.Dispatch(UpdateFields{Fields: patch}); err != nil {
		return err
	}

	raw := make(map[string]string, len(patch))
	for k, v := range patch {
		raw[string(k)] = v
	}
	keys := slices.Sorted(maps.Keys(raw))
	_ = f.emitter.Emit(logging.EventFieldsUpdated,
		fmt.Sprintf("update %v", keys),
		nil,
		&logging.FieldsUpdatedData{MountPoint: f.State().Volume.MountPoint, Fields: raw},
	)
	return nil
}

// Submit materializes and validates the current fields.
//
// When validation fails the errors are stored in the state and returned in
// the result; cb is not called. Otherwise cb receives the new descriptor and
// the state is left untouched. If ctx is done before cb would run, the
// submit is abandoned and ctx.Err() is returned.
//
// An unknown or unavailable sizing policy is a caller error and is
// returned as an error rather than as field messages.
func (f *Form) Submit(ctx context.Context, cb func(volume.Descriptor) error) (SubmitResult, error) {
	st := f.State()

	policy, err := st.Policy()
	if err != nil {
		return SubmitResult{}, err
	}
	if !sizing.Allowed(st.Volume, policy) {
		return SubmitResult{}, errx.With(ErrPolicyNotAvailable, ": %s for %s", policy, st.Volume.MountPoint)
	}

	d, err := sizing.Materialize(st.Volume, policy, st.Fields)
	var errs sizing.Errors
	if err != nil {
		fieldErrs, ok := sizing.ErrorsFrom(err)
		if !ok {
			return SubmitResult{}, err
		}
		errs = fieldErrs
	} else {
		errs = sizing.Validate(policy, d)
	}

	if len(errs) > 0 {
		if err := f.Dispatch(SetErrors{Errors: errs}); err != nil {
			return SubmitResult{}, err
		}
		f.emitRejected(st.Volume.MountPoint, policy, errs)
		return SubmitResult{Errors: errs.Clone()}, nil
	}

	if err := ctx.Err(); err != nil {
		f.logger.Debug("submit cancelled", "mount_point", d.MountPoint, "error", err)
		return SubmitResult{}, err
	}

	if cb != nil {
		if err := cb(d.Clone()); err != nil {
			return SubmitResult{}, errx.Wrap(ErrSubmitCallback, err)
		}
	}
	f.emitAccepted(policy, d)
	return SubmitResult{Volume: &d, Errors: sizing.Errors{}}, nil
}

func (f *Form) emitRejected(mountPoint string, policy sizing.Policy, errs sizing.Errors) {
	raw := make(map[string]string, len(errs))
	for k, v := range errs {
		raw[string(k)] = v
	}
	_ = f.emitter.Emit(logging.EventSubmitRejected,
		fmt.Sprintf("reject %s (%s): %d error(s)", mountPoint, policy, len(errs)),
		[]string{string(policy)},
		&logging.SubmitRejectedData{MountPoint: mountPoint, Policy: string(policy), Errors: raw},
	)
}

func (f *Form) emitAccepted(policy sizing.Policy, d volume.Descriptor) {
	data := &logging.SubmitAcceptedData{
		MountPoint:      d.MountPoint,
		Policy:          string(policy),
		FixedSizeLimits: d.FixedSizeLimits,
	}
	if d.MinSize != nil {
		v := int64(*d.MinSize)
		data.MinSize = &v
	}
	if d.MaxSize != nil {
		v := int64(*d.MaxSize)
		data.MaxSize = &v
	}

	tags := []string{string(policy)}
	if d.Unbounded() {
		tags = append(tags, "unbounded")
	}
	f.logger.Info("submit accepted", "mount_point", d.MountPoint, "policy", policy)
	_ = f.emitter.Emit(logging.EventSubmitAccepted,
		fmt.Sprintf("submit %s (%s)", d.MountPoint, policy),
		tags,
		data,
	)
}
