package generator

import (
	"math"

	"github.com/ivan-cunha/colsynth/pkg/types"
)

// The multipliers are float64 on purpose: float64(2^64-1) rounds up to 2^64,
// so the top of the u64 range is reached early and saturates below.
var (
	scaleU32 = float64(math.MaxUint32)
	scaleU64 = float64(math.MaxUint64)
)

// ScaleU32 maps v in [0,1] to floor(v * (2^32-1)).
func ScaleU32(v float64) uint32 {
	x := math.Floor(v * scaleU32)
	switch {
	case !(x > 0):
		return 0
	case x >= scaleU32:
		return math.MaxUint32
	}
	return uint32(x)
}

// ScaleU64 maps v in [0,1] to floor(v * (2^64-1)), saturating at 2^64-1.
func ScaleU64(v float64) uint64 {
	x := math.Floor(v * scaleU64)
	switch {
	case !(x > 0):
		return 0
	case x >= scaleU64:
		return math.MaxUint64
	}
	return uint64(x)
}

func Scale(v float64, width types.Width) uint64 {
	if width == types.U64 {
		return ScaleU64(v)
	}
	return uint64(ScaleU32(v))
}
