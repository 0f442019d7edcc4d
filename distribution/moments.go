// Package distribution implements Component A: drawing samples from a
// parameterized univariate distribution, computing its analytic mean and
// standard deviation, and estimating a kernel density curve plus
// percentiles from a realized sample vector (§4.1).
package distribution

import (
	"math"

	"scmcore/domain"
)

// Mean returns the analytic expectation of dist, per the table in §3.2.
// Edge cases: an empty categorical returns 0; Beta/Rate clamp a non-positive
// Alpha or Beta to 0.1 before computing the mean.
func Mean(dist domain.Distribution) float64 {
	switch dist.Type {
	case domain.DistBinary:
		return clampUnit(dist.P)
	case domain.DistCategorical:
		if len(dist.Probs) == 0 {
			return 0
		}
		mean := 0.0
		for i, p := range dist.Probs {
			mean += float64(i) * p
		}
		return mean
	case domain.DistNormal:
		return dist.Mu
	case domain.DistLognormal:
		sigma := safeSigma(dist.Sigma)
		return math.Exp(dist.Mu + sigma*sigma/2)
	case domain.DistBeta:
		a, b := safeAlphaBeta(dist.Alpha, dist.Beta)
		if a+b == 0 {
			return 0
		}
		return a / (a + b)
	case domain.DistGamma:
		shape, rate := safeShapeRate(dist.Shape, dist.Rate)
		return shape / rate
	case domain.DistBounded:
		minV, maxV, mode := safeBounds(dist.Min, dist.Max, dist.Mode)
		return (minV + 4*mode + maxV) / 6
	case domain.DistCount:
		return safeLambda(dist.Lambda)
	case domain.DistRate:
		a, b := safeAlphaBeta(dist.Alpha, dist.Beta)
		if a+b == 0 {
			return 0
		}
		return a / (a + b)
	default:
		return 0
	}
}

// StdDev returns the analytic standard deviation of dist using the standard
// formula for each variant; Bounded (PERT) uses the (max-min)/6
// approximation documented in §4.1.
func StdDev(dist domain.Distribution) float64 {
	switch dist.Type {
	case domain.DistBinary:
		p := clampUnit(dist.P)
		return math.Sqrt(p * (1 - p))
	case domain.DistCategorical:
		if len(dist.Probs) == 0 {
			return 0
		}
		mean := Mean(dist)
		variance := 0.0
		for i, p := range dist.Probs {
			d := float64(i) - mean
			variance += d * d * p
		}
		return math.Sqrt(variance)
	case domain.DistNormal:
		return safeSigma(dist.Sigma)
	case domain.DistLognormal:
		sigma := safeSigma(dist.Sigma)
		m := Mean(dist)
		return m * math.Sqrt(math.Exp(sigma*sigma)-1)
	case domain.DistBeta:
		a, b := safeAlphaBeta(dist.Alpha, dist.Beta)
		sum := a + b
		if sum == 0 {
			return 0
		}
		return math.Sqrt(a * b / (sum * sum * (sum + 1)))
	case domain.DistGamma:
		shape, rate := safeShapeRate(dist.Shape, dist.Rate)
		return math.Sqrt(shape) / rate
	case domain.DistBounded:
		minV, maxV, _ := safeBounds(dist.Min, dist.Max, dist.Mode)
		return (maxV - minV) / 6
	case domain.DistCount:
		return math.Sqrt(safeLambda(dist.Lambda))
	case domain.DistRate:
		a, b := safeAlphaBeta(dist.Alpha, dist.Beta)
		sum := a + b
		if sum == 0 {
			return 0
		}
		return math.Sqrt(a * b / (sum * sum * (sum + 1)))
	default:
		return 0
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func safeSigma(sigma float64) float64 {
	if sigma <= 0 {
		return 0.01
	}
	return sigma
}

func safeAlphaBeta(alpha, beta float64) (float64, float64) {
	if alpha <= 0 {
		alpha = 0.1
	}
	if beta <= 0 {
		beta = 0.1
	}
	return alpha, beta
}

func safeShapeRate(shape, rate float64) (float64, float64) {
	if shape <= 0 {
		shape = 0.1
	}
	if rate <= 0 {
		rate = 0.1
	}
	return shape, rate
}

func safeBounds(minV, maxV, mode float64) (float64, float64, float64) {
	if minV >= maxV {
		maxV = minV + 1
	}
	if mode < minV {
		mode = minV
	}
	if mode > maxV {
		mode = maxV
	}
	return minV, maxV, mode
}

func safeLambda(lambda float64) float64 {
	if lambda <= 0 {
		return 0.1
	}
	return lambda
}
