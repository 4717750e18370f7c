package distribution

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

type uniform struct {
	dist distuv.Uniform
}

func newUniform(_ Params, src rand.Source) (Sampler, error) {
	return &uniform{dist: distuv.Uniform{Min: 0, Max: 1, Src: src}}, nil
}

func (u *uniform) Name() string { return "uniform" }

func (u *uniform) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = u.dist.Rand()
	}
	return out
}

// normal draws from N(0,1) and maps each draw through the standard normal
// CDF, Phi(x) = 0.5*(1+erf(x/sqrt2)). The mapping is continuous, so every
// part of [0,1] keeps real density.
type normal struct {
	dist distuv.Normal
}

func newNormal(_ Params, src rand.Source) (Sampler, error) {
	return &normal{dist: distuv.Normal{Mu: 0, Sigma: 1, Src: src}}, nil
}

func (s *normal) Name() string { return "normal" }

func (s *normal) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = s.dist.CDF(s.dist.Rand())
	}
	return out
}

type beta struct {
	dist distuv.Beta
}

func newBeta(p Params, src rand.Source) (Sampler, error) {
	if err := checkShape("beta-a", p.BetaA); err != nil {
		return nil, err
	}
	if err := checkShape("beta-b", p.BetaB); err != nil {
		return nil, err
	}
	return &beta{dist: distuv.Beta{Alpha: p.BetaA, Beta: p.BetaB, Src: src}}, nil
}

func (b *beta) Name() string { return "beta" }

func (b *beta) Sample(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = b.dist.Rand()
	}
	return out
}
