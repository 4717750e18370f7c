// Package distribution draws probability-space samples in [0,1] from a small
// set of named distributions.
package distribution

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"time"
)

const (
	DefaultBetaA = 1.0
	DefaultBetaB = 5.0
)

var (
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrInvalidParameter    = errors.New("invalid distribution parameter")
)

// Sampler produces n values in [0,1].
type Sampler interface {
	Name() string
	Sample(n int) []float64
}

type Params struct {
	BetaA float64
	BetaB float64
	// Seed fixes the random stream. Zero means seed from the clock.
	Seed uint64
}

func DefaultParams() Params {
	return Params{BetaA: DefaultBetaA, BetaB: DefaultBetaB}
}

type constructor func(p Params, src rand.Source) (Sampler, error)

var registry = map[string]constructor{
	"uniform": newUniform,
	"normal":  newNormal,
	"beta":    newBeta,
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the name and parameters without drawing anything.
func Validate(name string, p Params) error {
	build, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownDistribution, name, Names())
	}
	_, err := build(p, rand.NewPCG(1, 2))
	return err
}

func New(name string, p Params) (Sampler, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownDistribution, name, Names())
	}
	return build(p, NewSource(p.Seed))
}

func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

func checkShape(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive real, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}
