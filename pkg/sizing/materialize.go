package sizing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/volume"
)

// FieldError reports text in Field that could not be parsed as a size.
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Materialize builds a new descriptor from base by applying policy p to the
// raw field text. base is not modified.
//
// Empty size text leaves the corresponding limit undefined so Validate can
// report it as missing. Unparsable text is returned as one *FieldError per
// field, joined with errors.Join; every such error matches
// size.ErrInvalidSizeFormat.
func Materialize(base volume.Descriptor, p Policy, f Fields) (volume.Descriptor, error) {
	d := base.Clone()

	switch p {
	case Auto:
		d.MinSize = nil
		d.MaxSize = nil
		d.FixedSizeLimits = false
		return d, nil

	case Manual:
		s, err := parseField(f, FieldSize, unitOr(f[FieldSizeUnit], string(DefaultUnit)))
		if err != nil {
			return volume.Descriptor{}, err
		}
		d.MinSize = s
		d.MaxSize = copySize(s)
		d.FixedSizeLimits = true
		return d, nil

	case Range:
		minUnit := unitOr(f[FieldMinSizeUnit], string(DefaultUnit))
		minSize, minErr := parseField(f, FieldMinSize, minUnit)

		maxSize := volume.SizePtr(size.Unbounded)
		var maxErr error
		if strings.TrimSpace(f[FieldMaxSize]) != "" {
			maxUnit := unitOr(f[FieldMaxSizeUnit], minUnit)
			maxSize, maxErr = parseField(f, FieldMaxSize, maxUnit)
		}

		if err := errors.Join(minErr, maxErr); err != nil {
			return volume.Descriptor{}, err
		}
		d.MinSize = minSize
		d.MaxSize = maxSize
		d.FixedSizeLimits = true
		return d, nil

	default:
		return volume.Descriptor{}, errx.With(ErrUnknownPolicy, ": %q", p)
	}
}

func parseField(f Fields, field Field, unit string) (*size.Size, error) {
	text := f[field]
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	s, err := size.Parse(text, unit)
	if err != nil {
		return nil, &FieldError{Field: field, Err: err}
	}
	return &s, nil
}

func unitOr(unit, fallback string) string {
	if strings.TrimSpace(unit) == "" {
		return fallback
	}
	return unit
}

func copySize(s *size.Size) *size.Size {
	if s == nil {
		return nil
	}
	return volume.SizePtr(*s)
}
