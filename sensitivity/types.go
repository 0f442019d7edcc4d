package sensitivity

import "scmcore/domain"

// Impact is one downstream node's observed change under a single
// intervention multiplier (§4.4 step 2, §6.3).
type Impact struct {
	NodeID         string
	NodeLabel      string
	Baseline       float64
	Intervened     float64
	AbsoluteChange float64
	PctChange      float64
	Units          string
}

// MultiplierRun holds every downstream impact recorded for one exogenous
// node at one multiplier.
type MultiplierRun struct {
	Multiplier float64
	Impacts    []Impact
}

// ExogenousResult aggregates all four multiplier runs for one exogenous
// source node.
type ExogenousResult struct {
	SourceID    string
	SourceLabel string
	PriorMean   float64
	Runs        []MultiplierRun
}

// PairEffect is the per-(source,target) aggregate across the two increase
// and two decrease multipliers (§4.4 step 3).
type PairEffect struct {
	SourceID    string
	SourceLabel string
	TargetID    string
	TargetLabel string
	AvgIncrease float64
	AvgDecrease float64
	Overall     float64
}

// Bottleneck names a suspected propagation bottleneck found at the m=1.5
// run (§4.4 step 5).
type Bottleneck struct {
	SourceID   string
	NodeID     string
	NodeLabel  string
	PctChange  float64
	IsTerminal bool
}

// Summary is the classification rollup of §4.4 step 4-6.
type Summary struct {
	StrongEffects     []PairEffect
	WeakEffects       []PairEffect
	AsymmetricEffects []PairEffect
	Bottlenecks       []Bottleneck
}

// Report is the full output of Analyze (§6.3). ModelID is carried purely
// for log/report correlation; it plays no role in the analysis itself.
type Report struct {
	ModelID     domain.ModelID
	ModelTitle  string
	Timestamp   string
	SampleCount int
	Results     []ExogenousResult
	Summary     Summary
}
