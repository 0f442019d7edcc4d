package distribution

import (
	"math"

	"scmcore/rng"
)

// samplePoisson draws one Count(lambda) variate: direct enumeration
// (Knuth's algorithm) for lambda<30, a rounded normal approximation
// otherwise, floored at 0 either way (§4.1).
func samplePoisson(lambda float64, s *rng.Stream) float64 {
	lambda = safeLambda(lambda)

	if lambda < 30 {
		lim := math.Exp(-lambda)
		k := 0.0
		p := 1.0
		for {
			p *= s.Float64()
			if p <= lim {
				return k
			}
			k++
			if k > 10_000 {
				// Pathologically small uniform draws; bail out to the
				// analytic mean rather than loop unbounded.
				return lambda
			}
		}
	}

	v := lambda + math.Sqrt(lambda)*s.NormFloat64()
	v = math.Round(v)
	if v < 0 {
		v = 0
	}
	return v
}
