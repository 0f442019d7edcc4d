package distribution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scmcore/domain"
)

func TestMeanBinary(t *testing.T) {
	d := domain.Distribution{Type: domain.DistBinary, P: 0.3}
	assert.InDelta(t, 0.3, Mean(d), 1e-9)
}

func TestMeanCategoricalWeightedByIndex(t *testing.T) {
	d := domain.Distribution{Type: domain.DistCategorical, Probs: []float64{0.5, 0.5}}
	// 0*0.5 + 1*0.5 = 0.5
	assert.InDelta(t, 0.5, Mean(d), 1e-9)
}

func TestMeanCategoricalEmptyProbsIsZero(t *testing.T) {
	d := domain.Distribution{Type: domain.DistCategorical}
	assert.Equal(t, 0.0, Mean(d))
}

func TestMeanNormal(t *testing.T) {
	d := domain.Distribution{Type: domain.DistNormal, Mu: 5, Sigma: 2}
	assert.InDelta(t, 5, Mean(d), 1e-9)
}

func TestMeanLognormal(t *testing.T) {
	d := domain.Distribution{Type: domain.DistLognormal, Mu: 0, Sigma: 0}
	// sigma clamps to 0.01 -> exp(0 + 0.01^2/2)
	assert.InDelta(t, math.Exp(0.01*0.01/2), Mean(d), 1e-9)
}

func TestMeanBetaNonPositiveParamsClampToSafeDefaults(t *testing.T) {
	d := domain.Distribution{Type: domain.DistBeta, Alpha: 0, Beta: 0}
	// both clamp to 0.1 -> mean = 0.1/0.2 = 0.5
	assert.InDelta(t, 0.5, Mean(d), 1e-9)
}

func TestMeanGamma(t *testing.T) {
	d := domain.Distribution{Type: domain.DistGamma, Shape: 4, Rate: 2}
	assert.InDelta(t, 2, Mean(d), 1e-9)
}

func TestMeanBoundedPERT(t *testing.T) {
	d := domain.Distribution{Type: domain.DistBounded, Min: 0, Max: 10, Mode: 4}
	// (0 + 4*4 + 10)/6
	assert.InDelta(t, 26.0/6.0, Mean(d), 1e-9)
}

func TestMeanCount(t *testing.T) {
	d := domain.Distribution{Type: domain.DistCount, Lambda: 7}
	assert.InDelta(t, 7, Mean(d), 1e-9)
}

func TestStdDevNormal(t *testing.T) {
	d := domain.Distribution{Type: domain.DistNormal, Mu: 0, Sigma: 3}
	assert.InDelta(t, 3, StdDev(d), 1e-9)
}

func TestStdDevNonPositiveSigmaIsClamped(t *testing.T) {
	d := domain.Distribution{Type: domain.DistNormal, Mu: 0, Sigma: -1}
	assert.Greater(t, StdDev(d), 0.0)
}

func TestStdDevBinaryBernoulliFormula(t *testing.T) {
	d := domain.Distribution{Type: domain.DistBinary, P: 0.5}
	assert.InDelta(t, 0.5, StdDev(d), 1e-9) // sqrt(0.5*0.5)=0.5
}
