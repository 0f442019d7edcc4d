package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scmcore/scmerr"
)

func TestValidateEmptyModel(t *testing.T) {
	m := &Model{}
	err := m.Validate()
	assert.ErrorIs(t, err, scmerr.ErrEmptyModel)
}

func TestValidateDuplicateNode(t *testing.T) {
	m := &Model{Nodes: []Node{
		{ID: "a", Distribution: Distribution{Type: DistNormal}},
		{ID: "a", Distribution: Distribution{Type: DistNormal}},
	}}
	err := m.Validate()
	assert.ErrorIs(t, err, scmerr.ErrDuplicateNode)
}

func TestValidateUnknownDistribution(t *testing.T) {
	m := &Model{Nodes: []Node{
		{ID: "a", Distribution: Distribution{Type: "bogus"}},
	}}
	err := m.Validate()
	assert.ErrorIs(t, err, scmerr.ErrUnknownDistribution)
}

func TestValidateEdgeUnknownSource(t *testing.T) {
	m := &Model{
		Nodes: []Node{{ID: "b", Distribution: Distribution{Type: DistNormal}}},
		Edges: []Edge{{Source: "a", Target: "b", Effect: Effect{Type: EffectLinear}}},
	}
	err := m.Validate()
	assert.ErrorIs(t, err, scmerr.ErrUnknownNode)
}

func TestValidateEdgeUnknownEffect(t *testing.T) {
	m := &Model{
		Nodes: []Node{
			{ID: "a", Distribution: Distribution{Type: DistNormal}},
			{ID: "b", Distribution: Distribution{Type: DistNormal}},
		},
		Edges: []Edge{{Source: "a", Target: "b", Effect: Effect{Type: "bogus"}}},
	}
	err := m.Validate()
	assert.ErrorIs(t, err, scmerr.ErrUnknownEffect)
}

func TestValidateWellFormedModelPasses(t *testing.T) {
	m := &Model{
		Nodes: []Node{
			{ID: "a", Distribution: Distribution{Type: DistNormal}},
			{ID: "b", Distribution: Distribution{Type: DistNormal}},
		},
		Edges: []Edge{{Source: "a", Target: "b", Effect: Effect{Type: EffectLinear}}},
	}
	assert.NoError(t, m.Validate())
}
