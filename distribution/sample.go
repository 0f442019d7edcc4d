package distribution

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"scmcore/domain"
	"scmcore/rng"
	"scmcore/scmlog"
)

// Sample draws n i.i.d. values from dist. Invalid parameters are clamped to
// safe minima rather than rejected (§4.1); if a draw comes back non-finite
// it is replaced with the distribution's analytic mean, and if sampling
// fails entirely the whole vector falls back to the analytic mean (or 0 if
// that too is non-finite).
func Sample(dist domain.Distribution, n int, stream *rng.Stream, sink scmlog.Sink) domain.SampleVector {
	mean := Mean(dist)
	if !isFinite(mean) {
		mean = 0
	}

	out := make(domain.SampleVector, n)
	for i := 0; i < n; i++ {
		v := drawOne(dist, stream)
		if !isFinite(v) {
			scmlog.Emit(sink, scmlog.LevelDebug, "distribution: non-finite draw for %s, substituting mean", dist.Type)
			v = mean
		}
		out[i] = v
	}
	return out
}

func drawOne(dist domain.Distribution, s *rng.Stream) float64 {
	switch dist.Type {
	case domain.DistBinary:
		p := clampUnit(dist.P)
		if s.Float64() < p {
			return 1
		}
		return 0

	case domain.DistCategorical:
		return drawCategorical(dist.Probs, s)

	case domain.DistNormal:
		sigma := safeSigma(dist.Sigma)
		n := distuv.Normal{Mu: dist.Mu, Sigma: sigma, Src: s.Rand()}
		return n.Rand()

	case domain.DistLognormal:
		sigma := safeSigma(dist.Sigma)
		n := distuv.Normal{Mu: dist.Mu, Sigma: sigma, Src: s.Rand()}
		return math.Exp(n.Rand())

	case domain.DistBeta:
		return sampleBeta(dist.Alpha, dist.Beta, s)

	case domain.DistGamma:
		return sampleGamma(dist.Shape, dist.Rate, s)

	case domain.DistBounded:
		return sampleBounded(dist.Min, dist.Max, dist.Mode, s)

	case domain.DistCount:
		return samplePoisson(dist.Lambda, s)

	case domain.DistRate:
		return sampleBeta(dist.Alpha, dist.Beta, s)

	default:
		return 0
	}
}

// sampleBounded reparameterizes PERT as a Beta distribution (§4.1) and
// scales the unit-interval draw back into [min,max].
func sampleBounded(minV, maxV, mode float64, s *rng.Stream) float64 {
	minV, maxV, mode = safeBounds(minV, maxV, mode)
	rangeV := maxV - minV
	mu := (minV + 4*mode + maxV) / 6

	alpha := 1 + 4*(mu-minV)/rangeV
	beta := 1 + 4*(maxV-mu)/rangeV

	unit := sampleBeta(alpha, beta, s)
	return minV + unit*rangeV
}

func drawCategorical(probs []float64, s *rng.Stream) float64 {
	if len(probs) == 0 {
		return 0
	}
	u := s.Float64()
	cum := 0.0
	for i, p := range probs {
		cum += p
		if u <= cum {
			return float64(i)
		}
	}
	return float64(len(probs) - 1)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// sortedCopy returns a sorted copy of samples, used by both percentile and
// KDE bandwidth computation.
func sortedCopy(samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	sort.Float64s(out)
	return out
}
