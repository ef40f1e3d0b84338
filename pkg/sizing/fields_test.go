package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingkaihe/volform/pkg/size"
	"github.com/jingkaihe/volform/pkg/volume"
)

func TestFieldsForRange(t *testing.T) {
	d := volume.Descriptor{
		MountPoint:      "/home",
		MinSize:         sp(5 * gib),
		MaxSize:         sp(size.Unbounded),
		FixedSizeLimits: true,
	}

	assert.Equal(t, Fields{
		FieldSize:        "5",
		FieldSizeUnit:    "GiB",
		FieldMinSize:     "5",
		FieldMinSizeUnit: "GiB",
		FieldMaxSize:     "",
		FieldMaxSizeUnit: "",
		FieldSizeMethod:  "range",
		FieldMountPoint:  "/home",
	}, FieldsFor(d))
}

func TestFieldsForAuto(t *testing.T) {
	d := volume.Descriptor{MountPoint: "/", AdaptiveSizes: true}
	f := FieldsFor(d)

	assert.Equal(t, "auto", f[FieldSizeMethod])
	assert.Equal(t, "", f[FieldSize])
	assert.Equal(t, "", f[FieldMaxSize])
	assert.Equal(t, "/", f[FieldMountPoint])
}

func TestFieldsForManualMixedUnits(t *testing.T) {
	d := volume.Descriptor{
		MountPoint:      "/boot",
		MinSize:         sp(512 << 20),
		MaxSize:         sp(512 << 20),
		FixedSizeLimits: true,
	}
	f := FieldsFor(d)

	assert.Equal(t, "manual", f[FieldSizeMethod])
	assert.Equal(t, "512", f[FieldSize])
	assert.Equal(t, "MiB", f[FieldSizeUnit])
	assert.Equal(t, "512", f[FieldMaxSize])
}

func TestFieldsMergeDoesNotMutate(t *testing.T) {
	base := Fields{FieldSize: "1", FieldSizeUnit: "GiB"}
	merged := base.Merge(Fields{FieldSize: "2", FieldMinSize: "3"})

	assert.Equal(t, Fields{FieldSize: "1", FieldSizeUnit: "GiB"}, base)
	assert.Equal(t, Fields{FieldSize: "2", FieldSizeUnit: "GiB", FieldMinSize: "3"}, merged)
}

func TestFieldsMergeNil(t *testing.T) {
	var f Fields
	assert.Equal(t, Fields{FieldSize: "1"}, f.Merge(Fields{FieldSize: "1"}))
	assert.Equal(t, Fields{}, f.Clone())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("maxSizeUnit")
	require.NoError(t, err)
	assert.Equal(t, FieldMaxSizeUnit, f)

	_, err = ParseField("fsType")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFieldsPolicy(t *testing.T) {
	p, err := Fields{FieldSizeMethod: "manual"}.Policy()
	require.NoError(t, err)
	assert.Equal(t, Manual, p)

	_, err = Fields{}.Policy()
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
