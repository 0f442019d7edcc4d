package distribution

import (
	"math"

	"scmcore/rng"
)

// sampleGamma draws one Gamma(shape, rate) variate (mean shape/rate).
// Marsaglia-Tsang is used when shape>=1; for shape<1 it boosts shape by 1,
// samples, then scales down by U^(1/shape) (§4.1). Both paths share the
// maxRejectionIterations budget and fall back to the analytic mean.
func sampleGamma(shape, rate float64, s *rng.Stream) float64 {
	shape, rate = safeShapeRate(shape, rate)
	fallback := shape / rate

	if shape >= 1 {
		if v, ok := marsagliaTsang(shape, s); ok {
			return v / rate
		}
		return fallback
	}

	// Boost-and-scale: Gamma(shape) = Gamma(shape+1) * U^(1/shape)
	if v, ok := marsagliaTsang(shape+1, s); ok {
		u := s.Float64()
		if u <= 0 {
			u = 1e-12
		}
		return v * math.Pow(u, 1/shape) / rate
	}
	return fallback
}

func marsagliaTsang(shape float64, s *rng.Stream) (float64, bool) {
	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)

	for i := 0; i < maxRejectionIterations; i++ {
		x := s.NormFloat64()
		v := 1 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v

		u := s.Float64()
		if u <= 0 {
			continue
		}

		if u < 1-0.0331*x*x*x*x {
			return d * v, true
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v, true
		}
	}
	return 0, false
}
