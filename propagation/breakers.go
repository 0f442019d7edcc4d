package propagation

import (
	"fmt"
	"math"

	"scmcore/domain"
)

// applyCircuitBreakers runs §4.3 step 3 in place over samples: NaN
// replacement, min/max clamp, then prior-weight mean reversion. Intervened
// nodes skip this entirely (caller never invokes it for them). It returns
// one warning per stabilization event that actually fired, for the node's
// NodeAudit.
func applyCircuitBreakers(samples []float64, dist domain.Distribution, node domain.Node, defaultPriorWeight float64) []string {
	mean := nodeMean(dist)

	var nanCount, minCount, maxCount int
	for i, v := range samples {
		if math.IsNaN(v) {
			v = mean
			nanCount++
		}
		if node.CircuitBreakers.Min != nil && v < *node.CircuitBreakers.Min {
			v = *node.CircuitBreakers.Min
			minCount++
		}
		if node.CircuitBreakers.Max != nil && v > *node.CircuitBreakers.Max {
			v = *node.CircuitBreakers.Max
			maxCount++
		}
		samples[i] = v
	}

	var warnings []string
	if nanCount > 0 {
		warnings = append(warnings, fmt.Sprintf("replaced %d non-finite sample(s) with the analytic mean", nanCount))
	}
	if minCount > 0 {
		warnings = append(warnings, fmt.Sprintf("clamped %d sample(s) to the configured minimum", minCount))
	}
	if maxCount > 0 {
		warnings = append(warnings, fmt.Sprintf("clamped %d sample(s) to the configured maximum", maxCount))
	}

	priorWeight := defaultPriorWeight
	if node.CircuitBreakers.PriorWeight != nil {
		priorWeight = *node.CircuitBreakers.PriorWeight
	}
	if priorWeight > 0 && priorWeight <= 1 {
		for i, v := range samples {
			samples[i] = mean + (v-mean)*(1-priorWeight)
		}
		warnings = append(warnings, fmt.Sprintf("applied prior-weight mean reversion (weight %.2f)", priorWeight))
	}

	return warnings
}

// applyVarianceClamp runs §4.3 step 4: if the post-breaker empirical stddev
// exceeds |mean|*maxStdDevRatio, compress the vector toward its mean. It
// returns a single warning if compression fired, nil otherwise.
func applyVarianceClamp(samples []float64, node domain.Node, defaultMaxStdDevRatio float64) []string {
	ratio := defaultMaxStdDevRatio
	if node.CircuitBreakers.MaxStdDevRatio != nil {
		ratio = *node.CircuitBreakers.MaxStdDevRatio
	}

	m := empiricalMean(samples)
	s := empiricalStdDev(samples, m)
	cap := math.Abs(m) * ratio
	if cap <= 0 || s <= cap {
		return nil
	}

	scale := cap / s
	for i, v := range samples {
		samples[i] = m + (v-m)*scale
	}
	return []string{fmt.Sprintf("compressed variance toward the mean (stddev %.4f exceeded cap %.4f)", s, cap)}
}

func empiricalMean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

func empiricalStdDev(samples []float64, mean float64) float64 {
	if len(samples) < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range samples {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(samples)-1))
}
