package sizing

import (
	"maps"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Field names a display field of the volume form.
type Field string

const (
	FieldSize        Field = "size"
	FieldSizeUnit    Field = "sizeUnit"
	FieldMinSize     Field = "minSize"
	FieldMinSizeUnit Field = "minSizeUnit"
	FieldMaxSize     Field = "maxSize"
	FieldMaxSizeUnit Field = "maxSizeUnit"
	FieldSizeMethod  Field = "sizeMethod"
	FieldMountPoint  Field = "mountPoint"
)

// AllFields lists every form field.
var AllFields = []Field{
	FieldSize, FieldSizeUnit,
	FieldMinSize, FieldMinSizeUnit,
	FieldMaxSize, FieldMaxSizeUnit,
	FieldSizeMethod, FieldMountPoint,
}

// ParseField resolves a field name.
func ParseField(s string) (Field, error) {
	for _, f := range AllFields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", errx.With(ErrUnknownField, ": %q", s)
}

// DefaultUnit is used when a unit field is left empty.
const DefaultUnit = size.GiB

// Fields holds raw, possibly invalid, user text keyed by field.
type Fields map[Field]string

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	return maps.Clone(f)
}

// Merge returns a copy of f with every value in patch applied over it.
// f itself is left untouched.
func (f Fields) Merge(patch Fields) Fields {
	out := f.Clone()
	maps.Copy(out, patch)
	return out
}

// Policy parses the sizeMethod field.
func (f Fields) Policy() (Policy, error) {
	return ParsePolicy(f[FieldSizeMethod])
}

// FieldsFor builds the display fields for a descriptor. The exact size and
// the range minimum both show the descriptor's minimum. An undefined or
// unbounded size renders as empty text.
func FieldsFor(d volume.Descriptor) Fields {
	minSize, minUnit := splitSize(d.MinSize)
	maxSize, maxUnit := splitSize(d.MaxSize)

	return Fields{
		FieldSize:        minSize,
		FieldSizeUnit:    minUnit,
		FieldMinSize:     minSize,
		FieldMinSizeUnit: minUnit,
		FieldMaxSize:     maxSize,
		FieldMaxSizeUnit: maxUnit,
		FieldSizeMethod:  string(Infer(d)),
		FieldMountPoint:  d.MountPoint,
	}
}

func splitSize(s *size.Size) (string, string) {
	if s == nil || *s == size.Unbounded {
		return "", ""
	}
	num, unit := size.Format(*s)
	return num, string(unit)
}
