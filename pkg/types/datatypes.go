package types

import (
	"fmt"
	"math"
	"strings"
)

// Width is the fixed width of an unsigned integer column.
type Width int

const (
	U32 Width = iota
	U64
)

func (w Width) String() string {
	return [...]string{"u32", "u64"}[w]
}

func (w Width) Bits() int {
	if w == U64 {
		return 64
	}
	return 32
}

func (w Width) Bytes() int {
	return w.Bits() / 8
}

// Max returns 2^W - 1.
func (w Width) Max() uint64 {
	if w == U64 {
		return math.MaxUint64
	}
	return math.MaxUint32
}

func ParseWidth(s string) (Width, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u32":
		return U32, nil
	case "u64":
		return U64, nil
	default:
		return 0, fmt.Errorf("unsupported dtype %q (expected u32 or u64)", s)
	}
}

// Column is a decoded fixed-width column. Values always holds the widened
// form; Width records how the column is laid out on disk.
type Column struct {
	Width  Width
	Values []uint64
}

func (c *Column) Len() int {
	return len(c.Values)
}
