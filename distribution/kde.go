package distribution

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"scmcore/domain"
)

// degenerateSummary is the fallback summary when no finite samples remain
// (§4.1 step 1).
func degenerateSummary() domain.DistributionSummary {
	return domain.DistributionSummary{
		Mean:   0,
		StdDev: 1,
		Curve:  []domain.KDEPoint{{X: 0, Density: 1}},
	}
}

// SamplesToKDE builds a DistributionSummary from a realized sample vector:
// mean/stddev, the five fixed percentiles, and a Gaussian KDE curve with
// Silverman's bandwidth over numPoints+1 evenly spaced points (§4.1).
func SamplesToKDE(samples domain.SampleVector, numPoints int) domain.DistributionSummary {
	finite := make([]float64, 0, len(samples))
	for _, v := range samples {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return degenerateSummary()
	}

	sorted := sortedCopy(finite)
	n := len(sorted)

	mean, err := stats.Mean(sorted)
	if err != nil {
		mean = 0
	}
	stddev, err := stats.StandardDeviation(sorted)
	if err != nil || stddev < 1 {
		stddev = math.Max(stddev, 1)
	}

	q25, err := stats.Percentile(sorted, 25)
	if err != nil {
		q25 = sorted[0]
	}
	q75, err := stats.Percentile(sorted, 75)
	if err != nil {
		q75 = sorted[n-1]
	}
	iqr := q75 - q25

	bandwidthBasis := stddev
	if iqr > 0 {
		bandwidthBasis = math.Min(stddev, iqr/1.34)
	}
	h := math.Max(0.01, 0.9*bandwidthBasis*math.Pow(float64(n), -0.2))

	min := sorted[0]
	max := sorted[n-1]
	lo := min - 2*stddev
	hi := max + 2*stddev

	curve := make([]domain.KDEPoint, 0, numPoints+1)
	kernel := distuv.Normal{Mu: 0, Sigma: h}
	step := (hi - lo) / float64(numPoints)
	for i := 0; i <= numPoints; i++ {
		x := lo + step*float64(i)
		density := 0.0
		for _, sample := range sorted {
			density += kernel.Prob(x - sample)
		}
		density /= float64(n)
		curve = append(curve, domain.KDEPoint{X: x, Density: density})
	}

	return domain.DistributionSummary{
		Mean:   mean,
		StdDev: stddev,
		Percentiles: domain.Percentiles{
			P05: percentileAt(sorted, 0.05),
			P25: percentileAt(sorted, 0.25),
			P50: percentileAt(sorted, 0.50),
			P75: percentileAt(sorted, 0.75),
			P95: percentileAt(sorted, 0.95),
		},
		Curve: curve,
	}
}

// percentileAt returns the value at floor(n*p) of an already-sorted slice,
// per the index rule in §4.1 step 5.
func percentileAt(sorted []float64, p float64) float64 {
	n := len(sorted)
	idx := int(math.Floor(float64(n) * p))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
