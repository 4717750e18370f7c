package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func TestUnknownDistribution(t *testing.T) {
	_, err := New("exponential", DefaultParams())
	assert.ErrorIs(t, err, ErrUnknownDistribution)
	assert.ErrorIs(t, Validate("exponential", DefaultParams()), ErrUnknownDistribution)
}

func TestBetaParameters(t *testing.T) {
	for _, p := range []Params{
		{BetaA: 0, BetaB: 5},
		{BetaA: 1, BetaB: -1},
		{BetaA: math.NaN(), BetaB: 5},
		{BetaA: 1, BetaB: math.Inf(1)},
	} {
		assert.ErrorIs(t, Validate("beta", p), ErrInvalidParameter, "%+v", p)
	}
	assert.NoError(t, Validate("beta", DefaultParams()))
}

func TestSamplesStayInUnitInterval(t *testing.T) {
	p := DefaultParams()
	p.Seed = 42

	for _, name := range Names() {
		s, err := New(name, p)
		require.NoError(t, err)

		values := s.Sample(10000)
		require.Len(t, values, 10000)
		for _, v := range values {
			require.GreaterOrEqual(t, v, 0.0, name)
			require.LessOrEqual(t, v, 1.0, name)
		}
	}
}

func TestEmpiricalMeans(t *testing.T) {
	const n = 1_000_000
	p := DefaultParams()
	p.Seed = 7

	cases := map[string]float64{
		"uniform": 0.5,
		"normal":  0.5,
		"beta":    1.0 / 6.0,
	}
	for name, want := range cases {
		s, err := New(name, p)
		require.NoError(t, err)
		assert.InDelta(t, want, mean(s.Sample(n)), 0.01, name)
	}
}

func TestNormalIsNotDegenerate(t *testing.T) {
	s, err := New("normal", Params{Seed: 3})
	require.NoError(t, err)

	var low, high int
	for _, v := range s.Sample(100000) {
		if v < 0.1 {
			low++
		}
		if v > 0.9 {
			high++
		}
	}
	// Phi(N(0,1)) is uniform, so each tail holds roughly a tenth of the mass.
	assert.InDelta(t, 10000, low, 1000)
	assert.InDelta(t, 10000, high, 1000)
}

func TestSeedIsDeterministic(t *testing.T) {
	p := Params{BetaA: 2, BetaB: 3, Seed: 99}

	a, err := New("beta", p)
	require.NoError(t, err)
	b, err := New("beta", p)
	require.NoError(t, err)

	assert.Equal(t, a.Sample(100), b.Sample(100))
	assert.Equal(t, "beta", a.Name())
}
