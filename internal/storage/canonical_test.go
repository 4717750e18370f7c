package storage

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeIntegers(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "1", "-3"}, Canonicalize([]string{"1", "2", "01", "-3"}, false))
	assert.Equal(t, []string{"18446744073709551615"}, Canonicalize([]string{"18446744073709551615"}, false))
}

func TestCanonicalizeIntegersWithMissingBecomeFloats(t *testing.T) {
	assert.Equal(t, []string{"1.0", "2.0", "1.0"}, Canonicalize([]string{"1", "2", "01"}, true))
}

func TestCanonicalizeFloats(t *testing.T) {
	got := Canonicalize([]string{"2.50", "1", ".5", "1e3", "-0", "1e16", "0.00001", "123456789012345678"}, false)
	assert.Equal(t, []string{"2.5", "1.0", "0.5", "1000.0", "-0.0", "1e+16", "1e-05", "1.2345678901234568e+17"}, got)
}

func TestCanonicalizeBooleans(t *testing.T) {
	assert.Equal(t, []string{"True", "False", "True"}, Canonicalize([]string{"true", "FALSE", "True"}, true))
}

func TestCanonicalizeMixedKeepsRawText(t *testing.T) {
	values := []string{"1", "dog", "01", "1_000"}
	assert.Equal(t, values, Canonicalize(values, false))

	for _, v := range []string{"inf", "NaN", "0x10", "1_0", "1e", ".", "+"} {
		assert.Equal(t, []string{v}, Canonicalize([]string{v}, false), v)
	}
	assert.Empty(t, Canonicalize(nil, true))
}

func TestFormatFloatRepr(t *testing.T) {
	assert.Equal(t, "0.1", FormatFloatRepr(0.1))
	assert.Equal(t, "0.0001", FormatFloatRepr(1e-4))
	assert.Equal(t, "1000000.0", FormatFloatRepr(1e6))
	assert.Equal(t, "9999999999999998.0", FormatFloatRepr(9999999999999998))
	assert.Equal(t, "1.5e-07", FormatFloatRepr(1.5e-7))
	assert.Equal(t, "1.7976931348623157e+308", FormatFloatRepr(math.MaxFloat64))
}

func TestReadCSVColumnNumericWithMissing(t *testing.T) {
	col, err := ReadCSVColumn(strings.NewReader("X\n1\n2\nNA\n01\n"), "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"1.0", "2.0", "1.0"}, col.Values)
	assert.Equal(t, 1, col.Missing)
}

func TestReadCSVColumnBareQuote(t *testing.T) {
	col, err := ReadCSVColumn(strings.NewReader("id,X\n1,5\" screen\n2,dog\n"), "X")
	require.NoError(t, err)
	assert.Equal(t, []string{`5" screen`, "dog"}, col.Values)
}
