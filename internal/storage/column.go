package storage

import (
	"github.com/ivan-cunha/colsynth/pkg/types"
)

type ColumnStats struct {
	Width types.Width
	Count int
	Min   uint64
	Max   uint64
	// Mean is the arithmetic mean of the raw values; NormalizedMean divides it
	// by 2^W-1 so it is comparable with the sampling distribution's mean.
	Mean           float64
	NormalizedMean float64
}

func Stats(col *types.Column) ColumnStats {
	stats := ColumnStats{Width: col.Width, Count: col.Len()}
	if stats.Count == 0 {
		return stats
	}

	stats.Min = col.Values[0]
	sum := 0.0
	for _, v := range col.Values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += float64(v)
	}
	stats.Mean = sum / float64(stats.Count)
	stats.NormalizedMean = stats.Mean / float64(col.Width.Max())
	return stats
}
