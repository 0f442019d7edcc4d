// Package effect implements Component B: the four edge effect kernels.
// Each kernel is a small pure function of (base, params, parentValue,
// parentPriorMean) — no shared state, easy to unit test in isolation.
package effect

import (
	"math"

	"scmcore/domain"
)

// globalMin and globalMax are the default multiplier clamp bounds from
// spec.md §6.4; Apply's callers may override them via ApplyWithClamp.
const (
	globalMin = 0.1
	globalMax = 10.0
)

// Apply transforms base through e given the parent's current value and its
// analytic prior mean, using the default clamp bounds. Non-finite inputs
// pass the base value straight through, and a non-finite result is replaced
// with base (§4.2).
func Apply(base float64, e domain.Effect, parentValue, parentPriorMean float64) float64 {
	return ApplyWithClamp(base, e, parentValue, parentPriorMean, globalMin, globalMax)
}

// ApplyWithClamp is Apply with explicit multiplier clamp bounds, used by
// callers (the propagation engine) that source §6.4's globalMinClamp /
// globalMaxClamp from a Config instead of the compiled-in default.
func ApplyWithClamp(base float64, e domain.Effect, parentValue, parentPriorMean, clampMin, clampMax float64) float64 {
	if !isFinite(base) || !isFinite(parentValue) || !isFinite(parentPriorMean) {
		return base
	}

	var result float64
	switch e.Type {
	case domain.EffectLinear:
		result = applyLinear(base, e, parentValue, parentPriorMean, clampMin, clampMax)
	case domain.EffectMultiplicative:
		result = applyMultiplicative(base, e, parentValue, parentPriorMean, clampMin, clampMax)
	case domain.EffectThreshold:
		result = applyThreshold(base, e, parentValue, clampMin, clampMax)
	case domain.EffectLogistic:
		result = applyLogistic(base, e, parentValue)
	default:
		return base
	}

	if !isFinite(result) {
		return base
	}
	return result
}

func applyLinear(base float64, e domain.Effect, parentValue, parentPriorMean, clampMin, clampMax float64) float64 {
	coef := floatOr(e.Coefficient, 0.3)

	var deviation float64
	if math.Abs(parentPriorMean) < 0.001 {
		return base + coef*parentValue*0.01
	}
	deviation = (parentValue - parentPriorMean) / parentPriorMean

	if e.Saturation != nil && *e.Saturation > 0 {
		sat := *e.Saturation
		deviation = sat * math.Tanh(deviation/sat)
	}

	multiplier := clamp(1+coef*deviation, clampMin, clampMax)
	return base * multiplier
}

func applyMultiplicative(base float64, e domain.Effect, parentValue, parentPriorMean, clampMin, clampMax float64) float64 {
	factor := floatOr(e.Factor, 1.5)
	baseline := parentPriorMean
	if e.Baseline != nil {
		baseline = *e.Baseline
	} else if baseline == 0 {
		baseline = 1
	}

	if parentValue <= 0 || baseline <= 0 {
		return base
	}

	doublings := math.Log2(parentValue / baseline)
	multiplier := clamp(math.Pow(factor, doublings), clampMin, clampMax)
	return base * multiplier
}

func applyThreshold(base float64, e domain.Effect, parentValue, clampMin, clampMax float64) float64 {
	smoothness := floatOr(e.Smoothness, 2)
	w := 1 / (1 + math.Exp(-smoothness*(parentValue-e.Cutoff)))
	effCoef := e.Below*(1-w) + e.Above*w

	denom := math.Abs(e.Cutoff)
	if denom == 0 {
		denom = 1
	}
	deviation := (parentValue - e.Cutoff) / denom

	multiplier := clamp(1+effCoef*deviation, clampMin, clampMax)
	return base * multiplier
}

func applyLogistic(base float64, e domain.Effect, parentValue float64) float64 {
	coef := floatOr(e.Coefficient, 0)

	pClamped := clamp(base, 0.001, 0.999)
	logit := math.Log(pClamped / (1 - pClamped))
	newLogit := clamp(logit+coef*(parentValue-e.Threshold), -10, 10)
	return 1 / (1 + math.Exp(-newLogit))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
