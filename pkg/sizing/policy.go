// Package sizing resolves how a volume is sized and turns raw form text
// into descriptors.
package sizing

import (
	"strings"

	"github.com/jingkaihe/volform/internal/errx"
	"github.com/jingkaihe/volform/pkg/volume"
)

// Policy selects how a volume's size limits are chosen.
type Policy string

const (
	Auto   Policy = "auto"
	Manual Policy = "manual"
	Range  Policy = "range"
)

// Policies lists every policy in display order.
var Policies = []Policy{Auto, Manual, Range}

// ParsePolicy resolves a policy name, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Auto, Manual, Range:
		return p, nil
	default:
		return "", errx.With(ErrUnknownPolicy, ": %q", s)
	}
}

// Label is the capitalized policy name shown next to its selector.
func (p Policy) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func (p Policy) String() string { return string(p) }

// Infer returns the policy a descriptor currently represents. Every
// descriptor maps to exactly one policy.
func Infer(d volume.Descriptor) Policy {
	switch {
	case d.AdaptiveSizes && !d.FixedSizeLimits:
		return Auto
	case !d.SameLimits():
		return Range
	default:
		return Manual
	}
}

// Available lists the policies selectable for d. Auto is offered first and
// only when the product enables adaptive sizes for the volume.
func Available(d volume.Descriptor) []Policy {
	if d.AdaptiveSizes {
		return []Policy{Auto, Manual, Range}
	}
	return []Policy{Manual, Range}
}

// Allowed reports whether p can be selected for d.
func Allowed(d volume.Descriptor, p Policy) bool {
	for _, a := range Available(d) {
		if a == p {
			return true
		}
	}
	return false
}
