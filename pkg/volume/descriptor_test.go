package volume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingkaihe/volform/pkg/size"
)

const gib = size.Size(1 << 30)

func TestCloneIsDeep(t *testing.T) {
	orig := Descriptor{
		MountPoint:          "/home",
		MinSize:             SizePtr(5 * gib),
		MaxSize:             SizePtr(size.Unbounded),
		SizeRelevantVolumes: []string{"/"},
	}
	c := orig.Clone()
	*c.MinSize = gib
	*c.MaxSize = 2 * gib
	c.SizeRelevantVolumes[0] = "/var"

	assert.Equal(t, 5*gib, *orig.MinSize)
	assert.Equal(t, size.Unbounded, *orig.MaxSize)
	assert.Equal(t, []string{"/"}, orig.SizeRelevantVolumes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		ok   bool
	}{
		{"auto", Descriptor{MountPoint: "/"}, true},
		{"manual", Descriptor{MountPoint: "/", FixedSizeLimits: true, MinSize: SizePtr(gib), MaxSize: SizePtr(gib)}, true},
		{"range unbounded", Descriptor{MountPoint: "/", FixedSizeLimits: true, MinSize: SizePtr(gib), MaxSize: SizePtr(size.Unbounded)}, true},
		{"fixed no max", Descriptor{MountPoint: "/", FixedSizeLimits: true, MinSize: SizePtr(gib)}, true},
		{"missing mount point", Descriptor{}, false},
		{"fixed without min", Descriptor{MountPoint: "/", FixedSizeLimits: true, MaxSize: SizePtr(gib)}, false},
		{"min above max", Descriptor{MountPoint: "/", FixedSizeLimits: true, MinSize: SizePtr(2 * gib), MaxSize: SizePtr(gib)}, false},
		{"negative min", Descriptor{MountPoint: "/", MinSize: SizePtr(-5)}, false},
		{"negative max", Descriptor{MountPoint: "/", MaxSize: SizePtr(-2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateErrorKinds(t *testing.T) {
	assert.ErrorIs(t, Descriptor{}.Validate(), ErrEmptyMountPoint)
	err := Descriptor{MountPoint: "/", FixedSizeLimits: true}.Validate()
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestSameLimits(t *testing.T) {
	assert.True(t, Descriptor{}.SameLimits())
	assert.True(t, Descriptor{MinSize: SizePtr(gib), MaxSize: SizePtr(gib)}.SameLimits())
	assert.False(t, Descriptor{MinSize: SizePtr(gib)}.SameLimits())
	assert.False(t, Descriptor{MinSize: SizePtr(gib), MaxSize: SizePtr(size.Unbounded)}.SameLimits())
}

func TestAutoSizeExplanation(t *testing.T) {
	d := Descriptor{MountPoint: "/"}
	assert.Equal(t, "Automatically calculated size according to the selected product.", d.AutoSizeExplanation())

	d.SnapshotsAffectSizes = true
	assert.Equal(t,
		"Automatically calculated size according to the selected product. The final size depends on the configuration of snapshots.",
		d.AutoSizeExplanation())

	d.SizeRelevantVolumes = []string{"/home", "swap"}
	assert.Equal(t,
		"Automatically calculated size according to the selected product. The final size depends on the configuration of snapshots and the presence of the file system for /home, swap.",
		d.AutoSizeExplanation())
}

func TestSet(t *testing.T) {
	set, err := NewSet(
		Descriptor{MountPoint: "/", FSType: "btrfs", AdaptiveSizes: true},
		Descriptor{MountPoint: "/home", FSType: "xfs"},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"/", "/home"}, set.MountPoints())

	v, ok := set.Lookup("/home")
	require.True(t, ok)
	assert.Equal(t, "xfs", v.FSType)

	_, ok = set.Lookup("/srv")
	assert.False(t, ok)

	first, ok := set.First()
	require.True(t, ok)
	assert.Equal(t, "/", first.MountPoint)
}

func TestSetRejectsDuplicates(t *testing.T) {
	_, err := NewSet(Descriptor{MountPoint: "/"}, Descriptor{MountPoint: "/"})
	assert.ErrorIs(t, err, ErrDuplicateMountPoint)
}

func TestSetCopiesInput(t *testing.T) {
	in := Descriptor{MountPoint: "/", MinSize: SizePtr(gib)}
	set, err := NewSet(in)
	require.NoError(t, err)

	*in.MinSize = 2 * gib
	v, _ := set.Lookup("/")
	assert.Equal(t, gib, *v.MinSize)
}

func TestEmptySet(t *testing.T) {
	set, err := NewSet()
	require.NoError(t, err)
	_, ok := set.First()
	assert.False(t, ok)
	assert.Empty(t, set.MountPoints())
}

func TestSearchKeys(t *testing.T) {
	d := Descriptor{MountPoint: "/var", FSType: "ext4"}
	assert.Equal(t, []string{"/var", "ext4"}, d.SearchKeys())
}
