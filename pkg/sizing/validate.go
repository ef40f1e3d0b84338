package sizing

import (
	"errors"
	"maps"

	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Field-level messages.
const (
	MsgSizeRequired    = "A size value is required"
	MsgMinSizeRequired = "Minimum size is required"
	MsgMaxNotAboveMin  = "Maximum must be greater than minimum"
	MsgSizeInvalid     = "Size value is not valid"
	MsgMinSizeInvalid  = "Minimum size is not valid"
	MsgMaxSizeInvalid  = "Maximum size is not valid"
)

// Errors maps a field to a human readable message. An empty map means the
// form is valid.
type Errors map[Field]string

// Clone returns an independent copy of e.
func (e Errors) Clone() Errors {
	if e == nil {
		return Errors{}
	}
	return maps.Clone(e)
}

// Validate checks a materialized descriptor against the rules of policy p.
// It has no side effects.
func Validate(p Policy, d volume.Descriptor) Errors {
	errs := Errors{}

	switch p {
	case Manual:
		if !positive(d.MinSize) {
			errs[FieldSize] = MsgSizeRequired
		}
	case Range:
		if !positive(d.MinSize) {
			errs[FieldMinSize] = MsgMinSizeRequired
		}
		if d.MinSize != nil && d.MaxSize != nil && *d.MaxSize != size.Unbounded && *d.MaxSize <= *d.MinSize {
			errs[FieldMaxSize] = MsgMaxNotAboveMin
		}
	}

	return errs
}

func positive(s *size.Size) bool {
	return s != nil && *s > 0
}

var invalidMessages = map[Field]string{
	FieldSize:    MsgSizeInvalid,
	FieldMinSize: MsgMinSizeInvalid,
	FieldMaxSize: MsgMaxSizeInvalid,
}

// ErrorsFrom folds the *FieldError values inside err, as returned by
// Materialize, into field messages. It reports false when err carries
// anything other than field errors.
func ErrorsFrom(err error) (Errors, bool) {
	errs := Errors{}
	if err == nil {
		return errs, true
	}

	var list []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		list = joined.Unwrap()
	} else {
		list = []error{err}
	}

	for _, e := range list {
		var fe *FieldError
		if !errors.As(e, &fe) {
			return nil, false
		}
		msg, ok := invalidMessages[fe.Field]
		if !ok {
			msg = MsgSizeInvalid
		}
		errs[fe.Field] = msg
	}
	return errs, true
}
