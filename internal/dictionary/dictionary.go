// Package dictionary assigns dense integer codes to categorical labels and
// reads and writes the code -> label mapping files.
package dictionary

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	ErrInvalidCode   = errors.New("invalid code")
	ErrDuplicateCode = errors.New("duplicate label")
	ErrOrphanCode    = errors.New("code missing from mapping")
	ErrUnusedCode    = errors.New("mapping code never used")
)

// Table maps code i to the i-th label in ascending order.
type Table struct {
	labels []string
	codes  map[string]uint32
}

func newTable(sorted []string) *Table {
	t := &Table{
		labels: sorted,
		codes:  make(map[string]uint32, len(sorted)),
	}
	for i, label := range sorted {
		t.codes[label] = uint32(i)
	}
	return t
}

func (t *Table) Len() int {
	return len(t.labels)
}

func (t *Table) Label(code uint32) (string, bool) {
	if int(code) >= len(t.labels) {
		return "", false
	}
	return t.labels[code], true
}

func (t *Table) Code(label string) (uint32, bool) {
	code, ok := t.codes[label]
	return code, ok
}

// Labels returns the labels in code order.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Factorize assigns each distinct value its position in the byte-wise sorted
// set of distinct values, and returns one code per input value in input order.
// The table depends only on the distinct set, never on row order.
func Factorize(values []string) ([]uint32, *Table) {
	seen := make(map[string]struct{})
	distinct := make([]string, 0)
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	sort.Strings(distinct)

	table := newTable(distinct)
	codes := make([]uint32, len(values))
	for i, v := range values {
		codes[i] = table.codes[v]
	}
	return codes, table
}

// FromMap builds a table from decimal-string keys. Keys must be exactly
// 0..len-1 and labels must be distinct.
func FromMap(m map[string]string) (*Table, error) {
	labels := make([]string, len(m))
	filled := make([]bool, len(m))
	for key, label := range m {
		code, err := strconv.ParseUint(key, 10, 32)
		if err != nil || strconv.FormatUint(code, 10) != key {
			return nil, fmt.Errorf("%w: key %q is not a decimal code", ErrInvalidCode, key)
		}
		if code >= uint64(len(m)) {
			return nil, fmt.Errorf("%w: code %d outside [0, %d)", ErrInvalidCode, code, len(m))
		}
		labels[code] = label
		filled[code] = true
	}
	for code, ok := range filled {
		if !ok {
			return nil, fmt.Errorf("%w: code %d is missing", ErrInvalidCode, code)
		}
	}

	t := newTable(labels)
	if len(t.codes) != len(labels) {
		return nil, fmt.Errorf("%w: %d codes share %d labels", ErrDuplicateCode, len(labels), len(t.codes))
	}
	return t, nil
}

// Verify checks that every code has a mapping entry and every entry is used.
func Verify(codes []uint32, t *Table) error {
	used := make([]bool, t.Len())
	for i, code := range codes {
		if int(code) >= t.Len() {
			return fmt.Errorf("%w: code %d at row %d", ErrOrphanCode, code, i)
		}
		used[code] = true
	}
	for code, ok := range used {
		if !ok {
			return fmt.Errorf("%w: %d (%q)", ErrUnusedCode, code, t.labels[code])
		}
	}
	return nil
}
