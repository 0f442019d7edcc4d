// Package report renders a sensitivity.Report as Markdown (§6.3). The
// layout is a documented convention, not a strict contract: headings for
// Summary, Bottlenecks, Strong, Weak, Asymmetric, and Detailed Results.
package report

import (
	"fmt"
	"strings"

	"scmcore/sensitivity"
)

// RenderMarkdown produces a Markdown document summarizing r.
func RenderMarkdown(r *sensitivity.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sensitivity Report: %s\n\n", r.ModelTitle)
	if !r.ModelID.IsEmpty() {
		fmt.Fprintf(&b, "Model ID: `%s`  \n", r.ModelID)
	}
	fmt.Fprintf(&b, "Generated: %s  \n", r.Timestamp)
	fmt.Fprintf(&b, "Sample count: %d\n\n", r.SampleCount)

	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Strong effects: %d\n", len(r.Summary.StrongEffects))
	fmt.Fprintf(&b, "- Weak effects: %d\n", len(r.Summary.WeakEffects))
	fmt.Fprintf(&b, "- Asymmetric effects: %d\n", len(r.Summary.AsymmetricEffects))
	fmt.Fprintf(&b, "- Bottlenecks: %d\n\n", len(r.Summary.Bottlenecks))

	b.WriteString("## Bottlenecks\n\n")
	if len(r.Summary.Bottlenecks) == 0 {
		b.WriteString("None detected.\n\n")
	} else {
		for _, bn := range r.Summary.Bottlenecks {
			kind := "non-terminal"
			if bn.IsTerminal {
				kind = "terminal"
			}
			fmt.Fprintf(&b, "- `%s` → `%s` (%s, %.2f%% change) via `%s`\n", bn.SourceID, bn.NodeLabel, kind, bn.PctChange, bn.NodeID)
		}
		b.WriteString("\n")
	}

	renderPairTable(&b, "Strong Effects (overall > 5%)", r.Summary.StrongEffects)
	renderPairTable(&b, "Weak Effects (overall < 1%)", r.Summary.WeakEffects)
	renderPairTable(&b, "Asymmetric Effects", r.Summary.AsymmetricEffects)

	b.WriteString("## Detailed Results\n\n")
	for _, res := range r.Results {
		fmt.Fprintf(&b, "### %s (`%s`)\n\n", res.SourceLabel, res.SourceID)
		fmt.Fprintf(&b, "Prior mean: %.4f\n\n", res.PriorMean)
		for _, run := range res.Runs {
			fmt.Fprintf(&b, "**Multiplier %.2f**\n\n", run.Multiplier)
			b.WriteString("| Node | Baseline | Intervened | Δ | %Δ |\n")
			b.WriteString("|---|---|---|---|---|\n")
			for _, imp := range run.Impacts {
				fmt.Fprintf(&b, "| %s | %.4f | %.4f | %.4f | %.2f%% |\n", imp.NodeLabel, imp.Baseline, imp.Intervened, imp.AbsoluteChange, imp.PctChange)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderPairTable(b *strings.Builder, heading string, pairs []sensitivity.PairEffect) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	if len(pairs) == 0 {
		b.WriteString("None.\n\n")
		return
	}
	b.WriteString("| Source | Target | Avg Increase | Avg Decrease | Overall |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, p := range pairs {
		fmt.Fprintf(b, "| %s | %s | %.2f%% | %.2f%% | %.2f%% |\n", p.SourceLabel, p.TargetLabel, p.AvgIncrease, p.AvgDecrease, p.Overall)
	}
	b.WriteString("\n")
}
