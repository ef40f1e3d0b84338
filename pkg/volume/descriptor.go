// Package volume models a filesystem volume's identity and size limits.
package volume

import (
	"slices"
	"strings"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/size"
)

// Descriptor describes one volume. MinSize and MaxSize are nil when the
// system computes the limits. MaxSize may hold size.Unbounded.
type Descriptor struct {
	MountPoint           string     `json:"mountPoint" yaml:"mountPoint"`
	FSType               string     `json:"fsType,omitempty" yaml:"fsType,omitempty"`
	MinSize              *size.Size `json:"minSize,omitempty" yaml:"minSize,omitempty"`
	MaxSize              *size.Size `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	FixedSizeLimits      bool       `json:"fixedSizeLimits" yaml:"fixedSizeLimits"`
	AdaptiveSizes        bool       `json:"adaptiveSizes" yaml:"adaptiveSizes"`
	SnapshotsAffectSizes bool       `json:"snapshotsAffectSizes,omitempty" yaml:"snapshotsAffectSizes,omitempty"`
	SizeRelevantVolumes  []string   `json:"sizeRelevantVolumes,omitempty" yaml:"sizeRelevantVolumes,omitempty"`
}

// SizePtr returns a pointer to s, for building descriptors in literals.
func SizePtr(s size.Size) *size.Size {
	return &s
}

// Clone returns a deep copy of d.
func (d Descriptor) Clone() Descriptor {
	c := d
	if d.MinSize != nil {
		c.MinSize = SizePtr(*d.MinSize)
	}
	if d.MaxSize != nil {
		c.MaxSize = SizePtr(*d.MaxSize)
	}
	c.SizeRelevantVolumes = slices.Clone(d.SizeRelevantVolumes)
	return c
}

// Unbounded reports whether the maximum size is the unbounded sentinel.
func (d Descriptor) Unbounded() bool {
	return d.MaxSize != nil && *d.MaxSize == size.Unbounded
}

// SameLimits reports whether min and max are equal, treating two undefined
// limits as equal.
func (d Descriptor) SameLimits() bool {
	if d.MinSize == nil || d.MaxSize == nil {
		return d.MinSize == nil && d.MaxSize == nil
	}
	return *d.MinSize == *d.MaxSize
}

// Validate checks the descriptor invariants: a mount point is present, sizes
// are non-negative (the maximum may be unbounded), and fixed limits carry a
// minimum that does not exceed a bounded maximum.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.MountPoint) == "" {
		return ErrEmptyMountPoint
	}
	if d.MinSize != nil && *d.MinSize < 0 {
		return errx.With(ErrInvalidDescriptor, ": %s: negative minimum size %d", d.MountPoint, *d.MinSize)
	}
	if d.MaxSize != nil && *d.MaxSize < 0 && *d.MaxSize != size.Unbounded {
		return errx.With(ErrInvalidDescriptor, ": %s: negative maximum size %d", d.MountPoint, *d.MaxSize)
	}
	if !d.FixedSizeLimits {
		return nil
	}
	if d.MinSize == nil {
		return errx.With(ErrInvalidDescriptor, ": %s: fixed limits without a minimum size", d.MountPoint)
	}
	if d.MaxSize != nil && !d.Unbounded() && *d.MinSize > *d.MaxSize {
		return errx.With(ErrInvalidDescriptor, ": %s: minimum %s exceeds maximum %s", d.MountPoint, *d.MinSize, *d.MaxSize)
	}
	return nil
}

// AutoSizeExplanation describes how an automatically sized volume is
// computed, naming the settings its final size depends on.
func (d Descriptor) AutoSizeExplanation() string {
	var conditions []string
	if d.SnapshotsAffectSizes {
		conditions = append(conditions, "the configuration of snapshots")
	}
	if len(d.SizeRelevantVolumes) > 0 {
		conditions = append(conditions, "the presence of the file system for "+strings.Join(d.SizeRelevantVolumes, ", "))
	}

	text := "Automatically calculated size according to the selected product."
	if len(conditions) == 0 {
		return text
	}
	return text + " The final size depends on " + strings.Join(conditions, " and ") + "."
}

// SearchKeys returns the texts a volume is found by when searching.
func (d Descriptor) SearchKeys() []string {
	return []string{d.MountPoint, d.FSType}
}
