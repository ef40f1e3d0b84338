package sizing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/volume"
)

func TestValidateAuto(t *testing.T) {
	assert.Empty(t, Validate(Auto, volume.Descriptor{}))
	assert.Empty(t, Validate(Auto, volume.Descriptor{MinSize: sp(2 * gib), MaxSize: sp(gib)}))
}

func TestValidateManual(t *testing.T) {
	assert.Empty(t, Validate(Manual, volume.Descriptor{MinSize: sp(gib), MaxSize: sp(gib)}))
	assert.Equal(t, Errors{FieldSize: MsgSizeRequired}, Validate(Manual, volume.Descriptor{}))
	assert.Equal(t, Errors{FieldSize: MsgSizeRequired}, Validate(Manual, volume.Descriptor{MinSize: sp(0), MaxSize: sp(0)}))
}

func TestValidateRange(t *testing.T) {
	tests := []struct {
		name string
		min  *size.Size
		max  *size.Size
		want Errors
	}{
		{"valid", sp(5 * gib), sp(10 * gib), Errors{}},
		{"unbounded", sp(5 * gib), sp(size.Unbounded), Errors{}},
		{"max below min", sp(5 * gib), sp(2 * gib), Errors{FieldMaxSize: MsgMaxNotAboveMin}},
		{"max equals min", sp(5 * gib), sp(5 * gib), Errors{FieldMaxSize: MsgMaxNotAboveMin}},
		{"missing min", nil, sp(2 * gib), Errors{FieldMinSize: MsgMinSizeRequired}},
		{"zero min", sp(0), sp(size.Unbounded), Errors{FieldMinSize: MsgMinSizeRequired}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(Range, volume.Descriptor{MinSize: tt.min, MaxSize: tt.max, FixedSizeLimits: true})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRangeFromFields(t *testing.T) {
	d, err := Materialize(baseVolume(), Range, Fields{
		FieldMinSize: "5", FieldMinSizeUnit: "GiB",
		FieldMaxSize: "2", FieldMaxSizeUnit: "GiB",
	})
	require.NoError(t, err)
	assert.Equal(t, Errors{FieldMaxSize: "Maximum must be greater than minimum"}, Validate(Range, d))
}

func TestErrorsFrom(t *testing.T) {
	errs, ok := ErrorsFrom(nil)
	assert.True(t, ok)
	assert.Empty(t, errs)

	errs, ok = ErrorsFrom(&FieldError{Field: FieldSize, Err: size.ErrInvalidSizeFormat})
	assert.True(t, ok)
	assert.Equal(t, Errors{FieldSize: MsgSizeInvalid}, errs)

	_, ok = ErrorsFrom(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrorsClone(t *testing.T) {
	e := Errors{FieldSize: "x"}
	c := e.Clone()
	c[FieldSize] = "y"
	assert.Equal(t, "x", e[FieldSize])

	var nilErrs Errors
	assert.Equal(t, Errors{}, nilErrs.Clone())
}
