package distribution

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scmcore/domain"
)

func TestSamplesToKDEDegenerateWhenNoFiniteSamples(t *testing.T) {
	out := SamplesToKDE(domain.SampleVector{}, 10)
	assert.Equal(t, 0.0, out.Mean)
	assert.Equal(t, 1.0, out.StdDev)
	assert.Len(t, out.Curve, 1)
}

func TestSamplesToKDECurveHasRequestedResolution(t *testing.T) {
	samples := domain.SampleVector{1, 2, 3, 4, 5, 4, 3, 2, 1, 3}
	out := SamplesToKDE(samples, 20)
	assert.Len(t, out.Curve, 21)
}

func TestSamplesToKDEPercentilesAreMonotonic(t *testing.T) {
	samples := make(domain.SampleVector, 100)
	for i := range samples {
		samples[i] = float64(i)
	}
	out := SamplesToKDE(samples, 10)
	assert.LessOrEqual(t, out.Percentiles.P05, out.Percentiles.P25)
	assert.LessOrEqual(t, out.Percentiles.P25, out.Percentiles.P50)
	assert.LessOrEqual(t, out.Percentiles.P50, out.Percentiles.P75)
	assert.LessOrEqual(t, out.Percentiles.P75, out.Percentiles.P95)
}

func TestSamplesToKDEDensitiesAreNonNegative(t *testing.T) {
	samples := domain.SampleVector{1, 1, 1, 2, 3}
	out := SamplesToKDE(samples, 15)
	for _, p := range out.Curve {
		assert.GreaterOrEqual(t, p.Density, 0.0)
	}
}
