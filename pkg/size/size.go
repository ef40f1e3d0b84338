// Package size converts between raw "<number> <unit>" text and byte
// amounts using binary units.
package size

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jingkaihe/volform/internal/errx"
)

// Size is an amount of bytes.
type Size int64

// Unbounded is the maximum size sentinel meaning "as large as possible".
// It is never parsed or formatted by this package.
const Unbounded Size = -1

var decimalNumber = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// Parse converts a non-negative decimal number expressed in unit into
// bytes. Fractional bytes are truncated.
func Parse(text string, unit string) (Size, error) {
	num := strings.TrimSpace(text)
	if !decimalNumber.MatchString(num) {
		return 0, errx.With(ErrInvalidSizeFormat, ": %q is not a non-negative decimal number", text)
	}

	u, err := ParseUnit(unit)
	if err != nil {
		return 0, errx.Wrap(ErrInvalidSizeFormat, err)
	}

	n, err := humanize.ParseBytes(num + " " + string(u))
	if err != nil {
		return 0, errx.Wrap(ErrInvalidSizeFormat, err)
	}
	// Format rounds sizes just below 2^63 up to exactly 2^63; that is one
	// float64 step from MaxInt64, not an overflow.
	if n == 1<<63 {
		n = math.MaxInt64
	}
	if n > math.MaxInt64 {
		return 0, errx.With(ErrInvalidSizeFormat, ": %w: %s %s", ErrSizeOverflow, num, u)
	}
	return Size(n), nil
}

// ParseString parses "<number> <unit>" where the unit may also be glued to
// the number ("10GiB").
func ParseString(s string) (Size, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	if i <= 0 {
		return 0, errx.With(ErrInvalidSizeFormat, ": %q", s)
	}
	return Parse(s[:i], s[i:])
}

// Format picks the largest unit in which s is at least one and returns the
// scaled number with that unit. Zero formats as "0" B. Negative sizes,
// including Unbounded, yield empty strings; callers handle those before
// formatting.
//
// The number is printed with the shortest representation that parses back
// to the same float64, so Parse(Format(s)) == s whenever s < 2^53.
func Format(s Size) (string, Unit) {
	if s < 0 {
		return "", ""
	}
	unit := B
	for i := len(Units) - 1; i >= 0; i-- {
		if uint64(s) >= Units[i].Factor() {
			unit = Units[i]
			break
		}
	}
	value := float64(s) / float64(unit.Factor())
	return strconv.FormatFloat(value, 'f', -1, 64), unit
}

// String renders s as "<number> <unit>", or "unlimited" for Unbounded.
func (s Size) String() string {
	if s == Unbounded {
		return "unlimited"
	}
	num, unit := Format(s)
	if unit == "" {
		return strconv.FormatInt(int64(s), 10)
	}
	return num + " " + string(unit)
}

// Human renders s with go-humanize's IEC formatting (one decimal place),
// suitable for tables where exactness does not matter.
func (s Size) Human() string {
	if s < 0 {
		return s.String()
	}
	return humanize.IBytes(uint64(s))
}
