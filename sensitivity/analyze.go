// Package sensitivity implements Component D: the perturb-and-measure
// sensitivity analyzer built on top of the propagation engine.
package sensitivity

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"scmcore/distribution"
	"scmcore/domain"
	"scmcore/propagation"
	"scmcore/rng"
	"scmcore/scmconfig"
	"scmcore/scmlog"
)

var multipliers = []float64{0.5, 0.75, 1.25, 1.5}

// Analyze runs the §4.4 procedure: a baseline propagation, then four
// perturbation propagations per exogenous node, aggregated into a
// classified Report.
func Analyze(ctx context.Context, model *domain.Model, cfg scmconfig.Config, stream *rng.Stream, sink scmlog.Sink) (*Report, error) {
	baseline, err := propagation.Propagate(ctx, model, nil, cfg, stream.Split("baseline"), sink)
	if err != nil {
		return nil, err
	}
	baselineMeans := meansOf(baseline.Summaries)

	var exogenous []domain.Node
	for _, n := range model.Nodes {
		if n.Kind == domain.KindExogenous || len(model.InEdges(n.ID)) == 0 {
			exogenous = append(exogenous, n)
		}
	}

	// Stream.Split mutates the parent stream's internal *rand.Rand state, so
	// every child stream must be carved off sequentially before the
	// per-node goroutines below start running concurrently (§5/§8
	// determinism guarantee depends on it).
	childStreams := make([]*rng.Stream, len(exogenous))
	for idx, node := range exogenous {
		childStreams[idx] = stream.Split(node.ID)
	}

	results := make([]ExogenousResult, len(exogenous))
	g, gctx := errgroup.WithContext(ctx)
	for idx, node := range exogenous {
		idx, node := idx, node
		g.Go(func() error {
			r, err := analyzeExogenous(gctx, model, node, baselineMeans, cfg, childStreams[idx], sink)
			if err != nil {
				return err
			}
			results[idx] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := classify(model, results)

	return &Report{
		ModelID:     model.ID,
		ModelTitle:  model.Title,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		SampleCount: cfg.SampleCount,
		Results:     results,
		Summary:     summary,
	}, nil
}

func meansOf(summaries map[string]domain.DistributionSummary) map[string]float64 {
	out := make(map[string]float64, len(summaries))
	for id, s := range summaries {
		out[id] = s.Mean
	}
	return out
}

func analyzeExogenous(ctx context.Context, model *domain.Model, node domain.Node, baselineMeans map[string]float64, cfg scmconfig.Config, stream *rng.Stream, sink scmlog.Sink) (ExogenousResult, error) {
	priorMean := distribution.Mean(node.Distribution)
	downstream := reachableFrom(model, node.ID)

	runs := make([]MultiplierRun, len(multipliers))
	for i, m := range multipliers {
		interventionValue := priorMean * m
		result, err := propagation.Propagate(ctx, model, map[string]float64{node.ID: interventionValue}, cfg, stream.Split(floatLabel(m)), sink)
		if err != nil {
			return ExogenousResult{}, err
		}

		impacts := make([]Impact, 0, len(downstream))
		for _, targetID := range downstream {
			targetNode, _ := model.NodeByID(targetID)
			base := baselineMeans[targetID]
			intervened := result.Summaries[targetID].Mean
			abs := intervened - base
			pct := 0.0
			if base != 0 {
				pct = (abs / math.Abs(base)) * 100
			}
			impacts = append(impacts, Impact{
				NodeID:         targetID,
				NodeLabel:      targetNode.Label,
				Baseline:       base,
				Intervened:     intervened,
				AbsoluteChange: abs,
				PctChange:      pct,
				Units:          targetNode.Units,
			})
		}
		runs[i] = MultiplierRun{Multiplier: m, Impacts: impacts}
	}

	return ExogenousResult{
		SourceID:    node.ID,
		SourceLabel: node.Label,
		PriorMean:   priorMean,
		Runs:        runs,
	}, nil
}

// classify aggregates every exogenous result's multiplier runs into
// per-(source,target) PairEffects and bottleneck warnings (§4.4 steps 3-6).
func classify(model *domain.Model, results []ExogenousResult) Summary {
	var pairs []PairEffect
	var bottlenecks []Bottleneck

	for _, res := range results {
		byTarget := make(map[string][]float64) // target id -> pctChange per run, indexed by position in `multipliers`
		labelByTarget := make(map[string]string)

		for _, run := range res.Runs {
			for _, imp := range run.Impacts {
				byTarget[imp.NodeID] = append(byTarget[imp.NodeID], imp.PctChange)
				labelByTarget[imp.NodeID] = imp.NodeLabel
			}
		}

		for targetID, pcts := range byTarget {
			if len(pcts) != len(multipliers) {
				continue
			}
			// multipliers = [0.5, 0.75, 1.25, 1.5]; decreases are indices 0,1; increases are 2,3.
			avgDecrease := (math.Abs(pcts[0]) + math.Abs(pcts[1])) / 2
			avgIncrease := (math.Abs(pcts[2]) + math.Abs(pcts[3])) / 2
			overall := (avgIncrease + avgDecrease) / 2

			pairs = append(pairs, PairEffect{
				SourceID:    res.SourceID,
				SourceLabel: res.SourceLabel,
				TargetID:    targetID,
				TargetLabel: labelByTarget[targetID],
				AvgIncrease: avgIncrease,
				AvgDecrease: avgDecrease,
				Overall:     overall,
			})
		}

		bottlenecks = append(bottlenecks, bottlenecksFor(model, res)...)
	}

	var strong, weak, asymmetric []PairEffect
	for _, p := range pairs {
		if p.Overall > 5 {
			strong = append(strong, p)
		}
		if p.Overall < 1 {
			weak = append(weak, p)
		}
		if p.AvgIncrease > 0 && p.AvgDecrease > 0 {
			larger, smaller := p.AvgIncrease, p.AvgDecrease
			if smaller > larger {
				larger, smaller = smaller, larger
			}
			if smaller > 0 && larger/smaller > 2 {
				asymmetric = append(asymmetric, p)
			}
		}
	}

	sort.Slice(strong, func(i, j int) bool { return strong[i].Overall > strong[j].Overall })
	sort.Slice(weak, func(i, j int) bool { return weak[i].Overall < weak[j].Overall })
	sort.Slice(asymmetric, func(i, j int) bool { return asymmetric[i].Overall > asymmetric[j].Overall })

	return Summary{
		StrongEffects:     truncate(strong, 10),
		WeakEffects:       truncate(weak, 10),
		AsymmetricEffects: truncate(asymmetric, 10),
		Bottlenecks:       bottlenecks,
	}
}

// bottlenecksFor inspects the m=1.5 run of res for terminal-node warnings
// and the smallest non-terminal impact (§4.4 step 5).
func bottlenecksFor(model *domain.Model, res ExogenousResult) []Bottleneck {
	var run *MultiplierRun
	for i := range res.Runs {
		if res.Runs[i].Multiplier == 1.5 {
			run = &res.Runs[i]
			break
		}
	}
	if run == nil {
		return nil
	}

	var out []Bottleneck
	var smallestNonTerminal *Impact
	for i := range run.Impacts {
		imp := &run.Impacts[i]
		isTerminal := !model.HasOutEdges(imp.NodeID)
		if isTerminal {
			if math.Abs(imp.PctChange) < 10 {
				out = append(out, Bottleneck{
					SourceID:   res.SourceID,
					NodeID:     imp.NodeID,
					NodeLabel:  imp.NodeLabel,
					PctChange:  imp.PctChange,
					IsTerminal: true,
				})
			}
			continue
		}
		if smallestNonTerminal == nil || math.Abs(imp.PctChange) < math.Abs(smallestNonTerminal.PctChange) {
			smallestNonTerminal = imp
		}
	}

	if smallestNonTerminal != nil && math.Abs(smallestNonTerminal.PctChange) < 5 {
		out = append(out, Bottleneck{
			SourceID:   res.SourceID,
			NodeID:     smallestNonTerminal.NodeID,
			NodeLabel:  smallestNonTerminal.NodeLabel,
			PctChange:  smallestNonTerminal.PctChange,
			IsTerminal: false,
		})
	}

	return out
}

func truncate(effects []PairEffect, n int) []PairEffect {
	if len(effects) <= n {
		return effects
	}
	return effects[:n]
}

func floatLabel(f float64) string {
	switch f {
	case 0.5:
		return "m0.5"
	case 0.75:
		return "m0.75"
	case 1.25:
		return "m1.25"
	case 1.5:
		return "m1.5"
	default:
		return "m"
	}
}
