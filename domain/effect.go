package domain

// EffectType discriminates the closed union of edge effect variants (§3.3).
type EffectType string

const (
	EffectLinear         EffectType = "linear"
	EffectMultiplicative EffectType = "multiplicative"
	EffectThreshold      EffectType = "threshold"
	EffectLogistic       EffectType = "logistic"
)

// Effect is a flat tagged-union payload mirroring Distribution's shape —
// only the fields relevant to Type are read by the kernel that implements
// it. Zero-valued optional fields take the defaults documented in §3.3 at
// the point the kernel is applied, not here.
type Effect struct {
	Type EffectType

	// Linear
	Coefficient *float64 // default 0.3
	Intercept   *float64
	Saturation  *float64 // >0 enables tanh saturation

	// Multiplicative
	Factor   *float64 // default 1.5
	Baseline *float64 // default: the parent's prior mean (1 if that is 0)

	// Threshold
	Cutoff      float64
	Below       float64
	Above       float64
	Smoothness  *float64 // default 2

	// Logistic
	Threshold float64
	// Coefficient is reused for Logistic's coefficient.
}

// KnownEffectTypes lists every tag the engine accepts.
func KnownEffectTypes() []EffectType {
	return []EffectType{EffectLinear, EffectMultiplicative, EffectThreshold, EffectLogistic}
}

// IsKnown reports whether t is one of the closed set of variants.
func (t EffectType) IsKnown() bool {
	for _, k := range KnownEffectTypes() {
		if k == t {
			return true
		}
	}
	return false
}
