package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scmcore/domain"
)

func ptr(f float64) *float64 { return &f }

func TestApplyLinearZeroCoefficientIsNoop(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLinear, Coefficient: ptr(0)}
	out := Apply(10, e, 5, 4)
	assert.InDelta(t, 10, out, 1e-9)
}

func TestApplyLinearDeviationScalesBase(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLinear, Coefficient: ptr(0.5)}
	// parentValue double the prior mean -> deviation = 1 -> multiplier = 1.5
	out := Apply(10, e, 8, 4)
	assert.InDelta(t, 15, out, 1e-9)
}

func TestApplyLinearNearZeroPriorMeanUsesAdHocFallback(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLinear, Coefficient: ptr(0.3)}
	out := Apply(10, e, 2, 0)
	assert.InDelta(t, 10+0.3*2*0.01, out, 1e-9)
}

func TestApplyMultiplicativeFactorOneIsNoop(t *testing.T) {
	e := domain.Effect{Type: domain.EffectMultiplicative, Factor: ptr(1), Baseline: ptr(2)}
	out := Apply(10, e, 4, 0)
	assert.InDelta(t, 10, out, 1e-9)
}

func TestApplyMultiplicativeNonPositiveParentPassesThroughBase(t *testing.T) {
	e := domain.Effect{Type: domain.EffectMultiplicative, Factor: ptr(2), Baseline: ptr(1)}
	out := Apply(10, e, -1, 1)
	assert.InDelta(t, 10, out, 1e-9)
}

func TestApplyThresholdBelowEqualsAboveIgnoresSigmoidBlend(t *testing.T) {
	e := domain.Effect{Type: domain.EffectThreshold, Cutoff: 5, Below: 0.2, Above: 0.2}
	// eff_coef is 0.2 on both sides: deviation (0-5)/5 = -1 -> 0.8; (20-5)/5 = 3 -> 1.6
	lo := Apply(10, e, 0, 0)
	hi := Apply(10, e, 20, 0)
	assert.InDelta(t, 8, lo, 1e-6)
	assert.InDelta(t, 16, hi, 1e-6)
}

func TestApplyThresholdZeroCutoffUsesUnitDenominator(t *testing.T) {
	e := domain.Effect{Type: domain.EffectThreshold, Cutoff: 0, Below: 0.1, Above: 0.5}
	out := Apply(10, e, 1, 0)
	// deviation = (1-0)/1; w = sigmoid(2*(1-0))
	w := 1 / (1 + math.Exp(-2))
	assert.InDelta(t, 10*(1+(0.1*(1-w)+0.5*w)*1), out, 1e-9)
}

func TestApplyLogisticZeroCoefficientIsNoop(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLogistic, Coefficient: ptr(0), Threshold: 5}
	out := Apply(0.3, e, 100, 0)
	assert.InDelta(t, 0.3, out, 1e-9)
}

func TestApplyLogisticStaysInUnitInterval(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLogistic, Coefficient: ptr(2), Threshold: 0}
	out := Apply(0.5, e, 1000, 0)
	assert.True(t, out > 0 && out < 1)
}

func TestApplyNonFiniteInputsPassThroughBase(t *testing.T) {
	e := domain.Effect{Type: domain.EffectLinear, Coefficient: ptr(0.5)}
	out := Apply(10, e, math.NaN(), 4)
	assert.InDelta(t, 10, out, 1e-9)
}

func TestApplyUnknownTypeReturnsBase(t *testing.T) {
	e := domain.Effect{Type: "bogus"}
	out := Apply(7, e, 1, 1)
	assert.InDelta(t, 7, out, 1e-9)
}

func TestApplyClampBoundsRespected(t *testing.T) {
	e := domain.Effect{Type: domain.EffectMultiplicative, Factor: ptr(100), Baseline: ptr(1)}
	out := ApplyWithClamp(10, e, 1000, 1, 0.1, 2.0)
	assert.LessOrEqual(t, out, 20.0000001)
}
