package dictionary

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorizeSortedCodes(t *testing.T) {
	codes, table := Factorize([]string{"cat", "dog", "cat", "bird"})

	assert.Equal(t, []uint32{1, 2, 1, 0}, codes)
	assert.Equal(t, []string{"bird", "cat", "dog"}, table.Labels())

	code, ok := table.Code("dog")
	require.True(t, ok)
	assert.Equal(t, uint32(2), code)

	label, ok := table.Label(0)
	require.True(t, ok)
	assert.Equal(t, "bird", label)

	_, ok = table.Label(3)
	assert.False(t, ok)
}

func TestFactorizeIgnoresRowOrder(t *testing.T) {
	rows := []string{"cat", "dog", "cat", "bird", "ant", "dog"}
	permuted := []string{"dog", "ant", "bird", "cat", "dog", "cat"}

	codes, table := Factorize(rows)
	permCodes, permTable := Factorize(permuted)

	assert.Equal(t, table.Labels(), permTable.Labels())
	for i, label := range permuted {
		want, _ := table.Code(label)
		assert.Equal(t, want, permCodes[i])
	}
	assert.NotEqual(t, codes, permCodes)

	var a, b bytes.Buffer
	require.NoError(t, WriteJSON(&a, table))
	require.NoError(t, WriteJSON(&b, permTable))
	assert.Equal(t, a.String(), b.String())
}

func TestFactorizeByteOrder(t *testing.T) {
	_, table := Factorize([]string{"b", "B", "a", "10", "9", "é"})
	assert.Equal(t, []string{"10", "9", "B", "a", "b", "é"}, table.Labels())
}

func TestFactorizeEmpty(t *testing.T) {
	codes, table := Factorize(nil)
	assert.Empty(t, codes)
	assert.Zero(t, table.Len())
}

func TestWriteJSON(t *testing.T) {
	_, table := Factorize([]string{"cat", "dog", "cat", "bird"})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table))
	assert.Equal(t, "{\n  \"0\": \"bird\",\n  \"1\": \"cat\",\n  \"2\": \"dog\"\n}", buf.String())

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, newTable(nil)))
	assert.Equal(t, "{}", buf.String())
}

func TestWriteJSONNumericKeyOrder(t *testing.T) {
	labels := make([]string, 12)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	_, table := Factorize(labels)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table))
	out := buf.String()
	assert.Less(t, strings.Index(out, `"2"`), strings.Index(out, `"10"`))
}

func TestWriteJSONEscaping(t *testing.T) {
	_, table := Factorize([]string{`say "hi"`, "a<b", "naïve"})

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table))
	assert.Contains(t, buf.String(), `"a<b"`)
	assert.Contains(t, buf.String(), `"naïve"`)
	assert.Contains(t, buf.String(), `"say \"hi\""`)

	back, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, table.Labels(), back.Labels())
}

func TestYAMLRoundTrip(t *testing.T) {
	_, table := Factorize([]string{"yes", "1", "null", "plain"})

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, table))
	assert.True(t, strings.HasPrefix(buf.String(), `"0": "1"`), buf.String())

	back, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, table.Labels(), back.Labels())
}

func TestFromMapValidation(t *testing.T) {
	_, err := FromMap(map[string]string{"0": "a", "2": "b"})
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = FromMap(map[string]string{"0": "a", "01": "b"})
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = FromMap(map[string]string{"0": "a", "x": "b"})
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = FromMap(map[string]string{"0": "a", "1": "a"})
	assert.ErrorIs(t, err, ErrDuplicateCode)

	table, err := FromMap(map[string]string{"1": "b", "0": "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Labels())
}

func TestVerify(t *testing.T) {
	codes, table := Factorize([]string{"x", "y", "x"})
	assert.NoError(t, Verify(codes, table))

	assert.ErrorIs(t, Verify([]uint32{0, 1, 2}, table), ErrOrphanCode)
	assert.ErrorIs(t, Verify([]uint32{0, 0}, table), ErrUnusedCode)
}

func TestFileRoundTrip(t *testing.T) {
	_, table := Factorize([]string{"b", "a"})

	for _, format := range []Format{JSON, YAML} {
		path := filepath.Join(t.TempDir(), "nested", "dict."+string(format))
		require.NoError(t, WriteFile(path, table, format))

		back, err := ReadFile(path, format)
		require.NoError(t, err)
		assert.Equal(t, table.Labels(), back.Labels())
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
