package size

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jingkaihe/volform/internal/errx"
)

// Unit is a binary size unit symbol.
type Unit string

const (
	B   Unit = "B"
	KiB Unit = "KiB"
	MiB Unit = "MiB"
	GiB Unit = "GiB"
	TiB Unit = "TiB"
	PiB Unit = "PiB"
)

// Units lists every recognized unit from smallest to largest. Parse and
// Format both rely on this order.
var Units = []Unit{B, KiB, MiB, GiB, TiB, PiB}

var unitFactors = map[Unit]uint64{
	B:   humanize.Byte,
	KiB: humanize.KiByte,
	MiB: humanize.MiByte,
	GiB: humanize.GiByte,
	TiB: humanize.TiByte,
	PiB: humanize.PiByte,
}

// Factor returns the number of bytes in one u, or 0 for an unknown unit.
func (u Unit) Factor() uint64 {
	return unitFactors[u]
}

// Valid reports whether u is one of Units.
func (u Unit) Valid() bool {
	_, ok := unitFactors[u]
	return ok
}

func (u Unit) String() string { return string(u) }

// ParseUnit resolves a unit symbol. Matching ignores case and surrounding
// whitespace and always returns the canonical symbol.
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	for _, u := range Units {
		if strings.EqualFold(s, string(u)) {
			return u, nil
		}
	}
	return "", errx.With(ErrUnknownUnit, ": %q", s)
}
