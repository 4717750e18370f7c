package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ivan-cunha/colsynth/internal/compression"
	"github.com/ivan-cunha/colsynth/internal/distribution"
	"github.com/ivan-cunha/colsynth/internal/storage"
	"github.com/ivan-cunha/colsynth/pkg/types"
)

var ErrInvalidCount = errors.New("count must be non-negative")

type Config struct {
	N            int
	Width        types.Width
	Distribution string
	Params       distribution.Params
}

func (c Config) Validate() error {
	if c.N < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.N)
	}
	if c.Width != types.U32 && c.Width != types.U64 {
		return fmt.Errorf("unsupported width %d", c.Width)
	}
	return distribution.Validate(c.Distribution, c.Params)
}

// Generate samples c.N values and rescales them to the full range of c.Width.
func Generate(c Config) (*types.Column, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	sampler, err := distribution.New(c.Distribution, c.Params)
	if err != nil {
		return nil, err
	}

	samples := sampler.Sample(c.N)
	col := &types.Column{
		Width:  c.Width,
		Values: make([]uint64, len(samples)),
	}
	for i, v := range samples {
		col.Values[i] = Scale(v, c.Width)
	}
	return col, nil
}

// Summary is the confirmation line printed after a column is written.
func Summary(c Config, out string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "wrote %d %s elements to %s (dist=%s", c.N, c.Width, out, c.Distribution)
	if c.Distribution == "beta" {
		fmt.Fprintf(&b, ", a=%g, b=%g", c.Params.BetaA, c.Params.BetaB)
	}
	if c.Params.Seed != 0 {
		fmt.Fprintf(&b, ", seed=%d", c.Params.Seed)
	}
	b.WriteString(")")
	return b.String()
}

// WriteFile validates c, generates the column and writes it to path. A bad
// configuration returns before anything is created on disk.
func WriteFile(c Config, path string, opts storage.Options) (*types.Column, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if _, err := compression.GetCompressor(opts.Compression); err != nil {
		return nil, err
	}

	col, err := Generate(c)
	if err != nil {
		return nil, err
	}
	if err := storage.WriteColumnFile(path, col, opts); err != nil {
		return nil, err
	}
	return col, nil
}
