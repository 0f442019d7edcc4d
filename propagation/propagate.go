// Package propagation implements Component C: the Monte Carlo propagation
// engine. A single Propagate call topologically orders a Model, draws or
// intervenes on each node's sample vector, applies circuit breakers and
// variance clamping, and summarizes every vector via KDE. The engine holds
// no state across calls; concurrent Propagate calls on the same read-only
// Model are safe.
package propagation

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"scmcore/distribution"
	"scmcore/domain"
	"scmcore/effect"
	"scmcore/rng"
	"scmcore/scmconfig"
	"scmcore/scmlog"
)

// Result is the output of a single Propagate call: one SampleVector and one
// DistributionSummary per node, keyed by node ID.
type Result struct {
	Samples    map[string]domain.SampleVector
	Summaries  map[string]domain.DistributionSummary
	NodeAudits []NodeAudit
}

// Propagate runs the full §4.3 procedure over model, applying the given
// interventions (node ID -> fixed value). Interventions naming an unknown
// node are ignored with a warning logged to sink; a cycle or other
// structural fault aborts before any sample is drawn.
func Propagate(ctx context.Context, model *domain.Model, interventions map[string]float64, cfg scmconfig.Config, stream *rng.Stream, sink scmlog.Sink) (*Result, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}
	ordered, err := topoSort(model)
	if err != nil {
		return nil, err
	}

	for id := range interventions {
		if _, ok := model.NodeByID(id); !ok {
			scmlog.Emit(sink, scmlog.LevelWarn, "propagation: intervention targets unknown node %q, ignoring", id)
		}
	}

	samples := make(map[string]domain.SampleVector, len(ordered))
	summaries := make(map[string]domain.DistributionSummary, len(ordered))
	audits := make([]NodeAudit, 0, len(ordered))

	for _, node := range ordered {
		start := time.Now()
		nodeStream := stream.Split(node.ID)

		var vec []float64
		var mode string
		var warnings []string

		switch {
		case hasIntervention(interventions, node.ID):
			v := interventions[node.ID]
			vec = constantVector(v, cfg.SampleCount)
			mode = "intervened"

		case node.Kind == domain.KindExogenous || len(model.InEdges(node.ID)) == 0:
			vec = []float64(distribution.Sample(node.Distribution, cfg.SampleCount, nodeStream, sink))
			mode = "exogenous"
			warnings = append(warnings, applyCircuitBreakers(vec, node.Distribution, node, cfg.DefaultPriorWeight)...)
			warnings = append(warnings, applyVarianceClamp(vec, node, cfg.DefaultMaxStdDevRatio)...)

		default:
			vec, err = produceEndogenous(ctx, model, node, samples, cfg, nodeStream, sink)
			if err != nil {
				return nil, err
			}
			mode = "endogenous"
			warnings = append(warnings, applyCircuitBreakers(vec, node.Distribution, node, cfg.DefaultPriorWeight)...)
			warnings = append(warnings, applyVarianceClamp(vec, node, cfg.DefaultMaxStdDevRatio)...)
		}

		samples[node.ID] = vec
		summaries[node.ID] = distribution.SamplesToKDE(vec, cfg.KDEPointCount)
		audits = append(audits, NodeAudit{
			NodeID:   node.ID,
			State:    StateSummarized,
			Mode:     mode,
			Duration: time.Since(start),
			Warnings: warnings,
		})
	}

	return &Result{Samples: samples, Summaries: summaries, NodeAudits: audits}, nil
}

func hasIntervention(interventions map[string]float64, id string) bool {
	_, ok := interventions[id]
	return ok
}

func constantVector(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// produceEndogenous draws base samples from node's own distribution, then
// composes every in-edge's effect into each index (§4.3 step 2). Indices
// are independent once the base vector exists, so they are sharded across
// goroutines via errgroup; per-index in-edge order is preserved regardless
// of how indices are partitioned.
func produceEndogenous(ctx context.Context, model *domain.Model, node domain.Node, samples map[string]domain.SampleVector, cfg scmconfig.Config, stream *rng.Stream, sink scmlog.Sink) ([]float64, error) {
	base := distribution.Sample(node.Distribution, cfg.SampleCount, stream, sink)
	inEdges := model.InEdges(node.ID)

	parentMeans := make([]float64, len(inEdges))
	parentSamples := make([][]float64, len(inEdges))
	for i, e := range inEdges {
		parentSamples[i] = samples[e.Source]
		parentNode, _ := model.NodeByID(e.Source)
		parentMeans[i] = nodeMean(parentNode.Distribution)
	}

	out := make([]float64, cfg.SampleCount)
	copy(out, base)

	workers := runtime.GOMAXPROCS(0)
	if workers > cfg.SampleCount {
		workers = cfg.SampleCount
	}
	if workers < 1 {
		workers = 1
	}

	g, _ := errgroup.WithContext(ctx)
	chunk := (cfg.SampleCount + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= cfg.SampleCount {
			break
		}
		if end > cfg.SampleCount {
			end = cfg.SampleCount
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				v := out[i]
				for e := range inEdges {
					if len(parentSamples[e]) <= i {
						continue
					}
					v = effect.ApplyWithClamp(v, inEdges[e].Effect, parentSamples[e][i], parentMeans[e], cfg.GlobalMinClamp, cfg.GlobalMaxClamp)
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
