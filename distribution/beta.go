package distribution

import (
	"math"

	"scmcore/rng"
)

// maxRejectionIterations bounds every rejection/iterative sampler in this
// package (§4.1: "bounded iteration budget (<=100 iterations)").
const maxRejectionIterations = 100

// sampleBeta draws one Beta(alpha, beta) variate. For alpha,beta > 1 it uses
// a rejection sampler against a scaled uniform envelope; otherwise it uses
// Johnk's algorithm. Both are capped at maxRejectionIterations and fall back
// to the analytic mean of the (safety-clamped) distribution on exhaustion.
func sampleBeta(alpha, beta float64, s *rng.Stream) float64 {
	alpha, beta = safeAlphaBeta(alpha, beta)
	fallback := alpha / (alpha + beta)

	if alpha > 1 && beta > 1 {
		if v, ok := sampleBetaRejection(alpha, beta, s); ok {
			return v
		}
		return fallback
	}

	if v, ok := sampleBetaJohnk(alpha, beta, s); ok {
		return v
	}
	return fallback
}

// sampleBetaRejection implements a simple rejection sampler using the mode
// of the Beta density as the envelope height.
func sampleBetaRejection(alpha, beta float64, s *rng.Stream) (float64, bool) {
	mode := (alpha - 1) / (alpha + beta - 2)
	peak := betaDensityUnnormalized(mode, alpha, beta)
	if peak <= 0 || math.IsNaN(peak) || math.IsInf(peak, 0) {
		return 0, false
	}

	for i := 0; i < maxRejectionIterations; i++ {
		x := s.Float64()
		u := s.Float64() * peak
		if u <= betaDensityUnnormalized(x, alpha, beta) {
			return x, true
		}
	}
	return 0, false
}

func betaDensityUnnormalized(x, alpha, beta float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}
	return math.Pow(x, alpha-1) * math.Pow(1-x, beta-1)
}

// sampleBetaJohnk implements Johnk's algorithm, valid for any alpha,beta>0
// but only efficient for alpha,beta<=1; it is used here for that regime.
func sampleBetaJohnk(alpha, beta float64, s *rng.Stream) (float64, bool) {
	for i := 0; i < maxRejectionIterations; i++ {
		u := s.Float64()
		v := s.Float64()
		if u <= 0 || v <= 0 {
			continue
		}
		x := math.Pow(u, 1/alpha)
		y := math.Pow(v, 1/beta)
		sum := x + y
		if sum <= 1 && sum > 0 {
			return x / sum, true
		}
	}
	return 0, false
}
