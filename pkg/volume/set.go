package volume

import (
	"strings"

	"github.com/jingkaihe/volform/internal/errx"
)

// Set is an ordered list of descriptors keyed by mount point.
type Set struct {
	volumes []Descriptor
}

// NewSet validates every descriptor and rejects repeated mount points.
func NewSet(volumes ...Descriptor) (*Set, error) {
	seen := make(map[string]struct{}, len(volumes))
	out := make([]Descriptor, 0, len(volumes))
	for _, v := range volumes {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[v.MountPoint]; ok {
			return nil, errx.With(ErrDuplicateMountPoint, ": %s", v.MountPoint)
		}
		seen[v.MountPoint] = struct{}{}
		out = append(out, v.Clone())
	}
	return &Set{volumes: out}, nil
}

// Lookup returns a copy of the descriptor registered for mountPoint.
func (s *Set) Lookup(mountPoint string) (Descriptor, bool) {
	mountPoint = strings.TrimSpace(mountPoint)
	for _, v := range s.volumes {
		if v.MountPoint == mountPoint {
			return v.Clone(), true
		}
	}
	return Descriptor{}, false
}

// First returns the first descriptor, if any.
func (s *Set) First() (Descriptor, bool) {
	if len(s.volumes) == 0 {
		return Descriptor{}, false
	}
	return s.volumes[0].Clone(), true
}

// MountPoints lists the mount points in set order.
func (s *Set) MountPoints() []string {
	out := make([]string, len(s.volumes))
	for i, v := range s.volumes {
		out[i] = v.MountPoint
	}
	return out
}

// Volumes returns copies of all descriptors in set order.
func (s *Set) Volumes() []Descriptor {
	out := make([]Descriptor, len(s.volumes))
	for i, v := range s.volumes {
		out[i] = v.Clone()
	}
	return out
}

func (s *Set) Len() int { return len(s.volumes) }
