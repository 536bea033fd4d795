// MODUL: lengths
// ZWECK: Die vier Standard-Verteilungen fuer Span-Laengen
// INPUT: Config (SpanLength, Other), *rand.Rand
// OUTPUT: []int Span-Laengen
// NEBENEFFEKTE: Verbraucht Zufallszahlen aus der uebergebenen Quelle
// ABHAENGIGKEITEN: gonum.org/v1/gonum/stat/distuv, math/rand/v2
// HINWEISE: Rundung ist round-half-to-even (math.RoundToEven)

package mask

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// ============================================================================
// static - feste Laenge
// ============================================================================

type staticSampler struct {
	length int
}

func newStaticSampler(cfg Config) (LengthSampler, error) {
	return staticSampler{length: cfg.SpanLength}, nil
}

func (s staticSampler) Sample(_ *rand.Rand, n int) []int {
	lengths := make([]int, n)
	for i := range lengths {
		lengths[i] = s.length
	}
	return lengths
}

// ============================================================================
// uniform - ganzzahlig gleichverteilt in [Other, 2*SpanLength]
// ============================================================================

type uniformSampler struct {
	low, high int
}

func newUniformSampler(cfg Config) (LengthSampler, error) {
	low, high := int(cfg.Other), 2*cfg.SpanLength
	if low < 0 || low > high {
		return nil, invalidConfig("other", cfg.Other)
	}
	return uniformSampler{low: low, high: high}, nil
}

func (s uniformSampler) Sample(rng *rand.Rand, n int) []int {
	lengths := make([]int, n)
	for i := range lengths {
		lengths[i] = s.low + rng.IntN(s.high-s.low+1)
	}
	return lengths
}

// ============================================================================
// normal - N(SpanLength, Other), gerundet, mindestens 1
// ============================================================================

type normalSampler struct {
	mu, sigma float64
}

func newNormalSampler(cfg Config) (LengthSampler, error) {
	if cfg.Other < 0 || math.IsNaN(cfg.Other) {
		return nil, invalidConfig("other", cfg.Other)
	}
	return normalSampler{mu: float64(cfg.SpanLength), sigma: cfg.Other}, nil
}

func (s normalSampler) Sample(rng *rand.Rand, n int) []int {
	dist := distuv.Normal{Mu: s.mu, Sigma: s.sigma, Src: rng}

	lengths := make([]int, n)
	for i := range lengths {
		lengths[i] = max(1, int(math.RoundToEven(dist.Rand())))
	}
	return lengths
}

// ============================================================================
// poisson - Poisson(SpanLength), gerundet
// ============================================================================

type poissonSampler struct {
	lambda float64
}

func newPoissonSampler(cfg Config) (LengthSampler, error) {
	return poissonSampler{lambda: float64(cfg.SpanLength)}, nil
}

func (s poissonSampler) Sample(rng *rand.Rand, n int) []int {
	dist := distuv.Poisson{Lambda: s.lambda, Src: rng}

	lengths := make([]int, n)
	for i := range lengths {
		lengths[i] = int(math.RoundToEven(dist.Rand()))
	}
	return lengths
}
