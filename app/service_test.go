package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmcore/domain"
	"scmcore/scmconfig"
)

func ptr(f float64) *float64 { return &f }

func twoNodeModel() *domain.Model {
	return &domain.Model{
		Title: "Two Node",
		Nodes: []domain.Node{
			{ID: "a", Label: "A", Kind: domain.KindExogenous, Distribution: domain.Distribution{Type: domain.DistNormal, Mu: 10, Sigma: 1}},
			{ID: "b", Label: "B", Distribution: domain.Distribution{Type: domain.DistNormal, Mu: 5, Sigma: 0.5}},
		},
		Edges: []domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Type: domain.EffectLinear, Coefficient: ptr(0.5)}},
		},
	}
}

func TestRunPropagationRejectsInvalidModel(t *testing.T) {
	svc := NewService(scmconfig.Default(), nil)
	_, err := svc.RunPropagation(context.Background(), &domain.Model{}, nil)
	assert.Error(t, err)
}

func TestRunPropagationReturnsSummaryPerNode(t *testing.T) {
	cfg := scmconfig.Default()
	cfg.SampleCount = 50
	svc := NewService(cfg, nil)
	result, err := svc.RunPropagation(context.Background(), twoNodeModel(), nil)
	require.NoError(t, err)
	assert.Len(t, result.Summaries, 2)
}

func TestRunSensitivityAnalysisMarkdownProducesNonEmptyText(t *testing.T) {
	cfg := scmconfig.Default()
	cfg.SampleCount = 50
	svc := NewService(cfg, nil)
	out, err := svc.RunSensitivityAnalysisMarkdown(context.Background(), twoNodeModel())
	require.NoError(t, err)
	assert.Contains(t, out, "# Sensitivity Report")
}

func TestRunPropagationAssignsModelIDWhenMissing(t *testing.T) {
	cfg := scmconfig.Default()
	cfg.SampleCount = 50
	svc := NewService(cfg, nil)
	model := twoNodeModel()
	require.True(t, model.ID.IsEmpty())

	_, err := svc.RunPropagation(context.Background(), model, nil)
	require.NoError(t, err)
	assert.False(t, model.ID.IsEmpty())
}

func TestRunSensitivityAnalysisReportCarriesModelID(t *testing.T) {
	cfg := scmconfig.Default()
	cfg.SampleCount = 50
	svc := NewService(cfg, nil)
	model := twoNodeModel()

	rep, err := svc.RunSensitivityAnalysis(context.Background(), model)
	require.NoError(t, err)
	assert.Equal(t, model.ID, rep.ModelID)
	assert.False(t, rep.ModelID.IsEmpty())
}
