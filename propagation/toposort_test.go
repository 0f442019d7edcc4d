package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scmcore/domain"
)

func chainModel() *domain.Model {
	return &domain.Model{
		Nodes: []domain.Node{
			{ID: "a", Kind: domain.KindExogenous, Distribution: domain.Distribution{Type: domain.DistNormal, Mu: 10, Sigma: 1}},
			{ID: "b", Distribution: domain.Distribution{Type: domain.DistNormal, Mu: 5, Sigma: 0.5}},
			{ID: "c", Distribution: domain.Distribution{Type: domain.DistNormal, Mu: 2, Sigma: 0.2}},
		},
		Edges: []domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Type: domain.EffectLinear, Coefficient: ptrf(0.5)}},
			{Source: "b", Target: "c", Effect: domain.Effect{Type: domain.EffectLinear, Coefficient: ptrf(0.3)}},
		},
	}
}

func ptrf(f float64) *float64 { return &f }

func TestTopoSortVisitsEveryNodeOnce(t *testing.T) {
	ordered, err := topoSort(chainModel())
	require.NoError(t, err)
	assert.Len(t, ordered, 3)
}

func TestTopoSortNeverEmitsChildBeforeParent(t *testing.T) {
	ordered, err := topoSort(chainModel())
	require.NoError(t, err)

	position := make(map[string]int, len(ordered))
	for i, n := range ordered {
		position[n.ID] = i
	}
	assert.Less(t, position["a"], position["b"])
	assert.Less(t, position["b"], position["c"])
}

func TestTopoSortDetectsCycle(t *testing.T) {
	m := &domain.Model{
		Nodes: []domain.Node{
			{ID: "a", Distribution: domain.Distribution{Type: domain.DistNormal}},
			{ID: "b", Distribution: domain.Distribution{Type: domain.DistNormal}},
		},
		Edges: []domain.Edge{
			{Source: "a", Target: "b", Effect: domain.Effect{Type: domain.EffectLinear}},
			{Source: "b", Target: "a", Effect: domain.Effect{Type: domain.EffectLinear}},
		},
	}
	_, err := topoSort(m)
	assert.Error(t, err)
}

func TestTopoSortIsDeterministicAcrossCalls(t *testing.T) {
	m := chainModel()
	first, err := topoSort(m)
	require.NoError(t, err)
	second, err := topoSort(m)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}
