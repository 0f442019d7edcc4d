package propagation

import (
	"scmcore/distribution"
	"scmcore/domain"
)

func nodeMean(dist domain.Distribution) float64 {
	return distribution.Mean(dist)
}
