package size

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		unit string
		want Size
	}{
		{"10", "GiB", 10 * 1024 * 1024 * 1024},
		{"1.5", "KiB", 1536},
		{" 512 ", "MiB", 512 * 1024 * 1024},
		{"0", "B", 0},
		{"3", "b", 3},
		{"2", " tib ", 2 << 40},
		{".5", "MiB", 512 * 1024},
		{"7.", "KiB", 7 * 1024},
		{"1", "PiB", 1 << 50},
	}

	for _, tt := range tests {
		got, err := Parse(tt.text, tt.unit)
		require.NoError(t, err, "%q %q", tt.text, tt.unit)
		assert.Equal(t, tt.want, got, "%q %q", tt.text, tt.unit)
	}
}

func TestParseRejectsInvalidNumbers(t *testing.T) {
	for _, text := range []string{"", "  ", "-1", "abc", "1e3", "1,000", "1.2.3", "10 GiB", "+4"} {
		_, err := Parse(text, "GiB")
		require.Error(t, err, "%q", text)
		assert.ErrorIs(t, err, ErrInvalidSizeFormat, "%q", text)
	}
}

func TestParseRejectsUnknownUnit(t *testing.T) {
	for _, unit := range []string{"", "GB", "gigs", "EiB"} {
		_, err := Parse("1", unit)
		require.Error(t, err, "%q", unit)
		assert.ErrorIs(t, err, ErrInvalidSizeFormat)
		assert.ErrorIs(t, err, ErrUnknownUnit)
	}
}

func TestParseOverflow(t *testing.T) {
	_, err := Parse("9000", "PiB")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSizeFormat)
}

func TestParseString(t *testing.T) {
	got, err := ParseString("10GiB")
	require.NoError(t, err)
	assert.Equal(t, Size(10<<30), got)

	got, err = ParseString(" 1.5 MiB ")
	require.NoError(t, err)
	assert.Equal(t, Size(3<<19), got)

	_, err = ParseString("GiB")
	assert.ErrorIs(t, err, ErrInvalidSizeFormat)

	_, err = ParseString("12")
	assert.ErrorIs(t, err, ErrInvalidSizeFormat)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   Size
		num  string
		unit Unit
	}{
		{0, "0", B},
		{1, "1", B},
		{1023, "1023", B},
		{1024, "1", KiB},
		{1536, "1.5", KiB},
		{10 << 30, "10", GiB},
		{(5 << 30) + (1 << 29), "5.5", GiB},
		{1 << 40, "1", TiB},
		{3 << 50, "3", PiB},
		{5000 << 50, "5000", PiB},
	}

	for _, tt := range tests {
		num, unit := Format(tt.in)
		assert.Equal(t, tt.num, num, "%d", tt.in)
		assert.Equal(t, tt.unit, unit, "%d", tt.in)
	}
}

func TestFormatNegative(t *testing.T) {
	num, unit := Format(Unbounded)
	assert.Empty(t, num)
	assert.Empty(t, unit)
}

func TestRoundTrip(t *testing.T) {
	sizes := []Size{
		0, 1, 2, 511, 1023, 1024, 1025, 4095,
		1<<20 + 1, 123456789, 10 << 30, 10<<30 + 7,
		1<<40 - 1, 3<<50 + 12345, 1<<53 - 1,
	}
	for _, s := range sizes {
		num, unit := Format(s)
		got, err := Parse(num, string(unit))
		require.NoError(t, err, "%d -> %s %s", s, num, unit)
		assert.Equal(t, s, got, "%d -> %s %s", s, num, unit)
	}
}

func TestRoundTripLargeWithinPrecision(t *testing.T) {
	sizes := []Size{
		math.MaxInt64 / 2,
		1<<63 - 1024,
		math.MaxInt64 - 100,
		math.MaxInt64,
	}
	for _, s := range sizes {
		num, unit := Format(s)
		got, err := Parse(num, string(unit))
		require.NoError(t, err, "%d -> %s %s", s, num, unit)

		ulp := math.Nextafter(float64(s), math.Inf(1)) - float64(s)
		assert.InDelta(t, float64(s), float64(got), ulp, "%d -> %s %s", s, num, unit)
	}
}

func TestParseTopOfRange(t *testing.T) {
	got, err := Parse("8192", "PiB")
	require.NoError(t, err)
	assert.Equal(t, Size(math.MaxInt64), got)

	_, err = Parse("8192.5", "PiB")
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestUnitsOrdered(t *testing.T) {
	require.Len(t, Units, 6)
	for i := 1; i < len(Units); i++ {
		assert.Equal(t, Units[i-1].Factor()*1024, Units[i].Factor())
	}
	assert.Equal(t, uint64(1), B.Factor())
	assert.Equal(t, uint64(0), Unit("EiB").Factor())
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit("gib")
	require.NoError(t, err)
	assert.Equal(t, GiB, u)

	_, err = ParseUnit("GB")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestSizeString(t *testing.T) {
	assert.Equal(t, "10 GiB", Size(10<<30).String())
	assert.Equal(t, "0 B", Size(0).String())
	assert.Equal(t, "unlimited", Unbounded.String())
	assert.Equal(t, "1.0 KiB", Size(1024).Human())
}
