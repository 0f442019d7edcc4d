package domain

import "encoding/json"

// jsonModel mirrors the input document shape of §6.1: nodes/edges carrying
// tagged-union distribution/effect payloads, plus pass-through metadata.
// It exists only as a decoding target — ParseModel converts it into the
// flat Model/Node/Edge/Distribution/Effect types the engine consumes.
type jsonModel struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Nodes       []jsonNode `json:"nodes"`
	Edges       []jsonEdge `json:"edges"`
	Zones       []string   `json:"zones"`
	KeyInsights []string   `json:"keyInsights"`
}

type jsonNode struct {
	ID              string              `json:"id"`
	Label           string              `json:"label"`
	Units           string              `json:"units"`
	Zone            string              `json:"zone"`
	Type            string              `json:"type"`
	Distribution    jsonDistribution    `json:"distribution"`
	CircuitBreakers *jsonCircuitBreaker `json:"circuitBreakers,omitempty"`
}

type jsonCircuitBreaker struct {
	Min            *float64 `json:"min,omitempty"`
	Max            *float64 `json:"max,omitempty"`
	PriorWeight    *float64 `json:"priorWeight,omitempty"`
	MaxStdDevRatio *float64 `json:"maxStdDevRatio,omitempty"`
}

type jsonDistribution struct {
	Type   string    `json:"type"`
	P      float64   `json:"p,omitempty"`
	Probs  []float64 `json:"probs,omitempty"`
	Mu     float64   `json:"mu,omitempty"`
	Sigma  float64   `json:"sigma,omitempty"`
	Alpha  float64   `json:"alpha,omitempty"`
	Beta   float64   `json:"beta,omitempty"`
	Shape  float64   `json:"shape,omitempty"`
	Rate   float64   `json:"rate,omitempty"`
	Min    float64   `json:"min,omitempty"`
	Max    float64   `json:"max,omitempty"`
	Mode   float64   `json:"mode,omitempty"`
	Lambda float64   `json:"lambda,omitempty"`
}

type jsonEdge struct {
	Source       string      `json:"source"`
	Target       string      `json:"target"`
	Relationship string      `json:"relationship"`
	Effect       jsonEffect  `json:"effect"`
}

type jsonEffect struct {
	Type        string   `json:"type"`
	Coefficient *float64 `json:"coefficient,omitempty"`
	Intercept   *float64 `json:"intercept,omitempty"`
	Saturation  *float64 `json:"saturation,omitempty"`
	Factor      *float64 `json:"factor,omitempty"`
	Baseline    *float64 `json:"baseline,omitempty"`
	Cutoff      float64  `json:"cutoff,omitempty"`
	Below       float64  `json:"below,omitempty"`
	Above       float64  `json:"above,omitempty"`
	Smoothness  *float64 `json:"smoothness,omitempty"`
	Threshold   float64  `json:"threshold,omitempty"`
}

// ParseModel decodes raw (a §6.1 JSON document) into a Model. It performs
// no validation beyond what encoding/json itself enforces — callers should
// call Model.Validate before propagating.
func ParseModel(raw []byte) (*Model, error) {
	var jm jsonModel
	if err := json.Unmarshal(raw, &jm); err != nil {
		return nil, err
	}

	m := &Model{
		ID:          ModelID(jm.ID),
		Title:       jm.Title,
		Description: jm.Description,
		Zones:       jm.Zones,
		KeyInsights: jm.KeyInsights,
		Nodes:       make([]Node, len(jm.Nodes)),
		Edges:       make([]Edge, len(jm.Edges)),
	}

	for i, n := range jm.Nodes {
		node := Node{
			ID:    n.ID,
			Label: n.Label,
			Units: n.Units,
			Zone:  n.Zone,
			Kind:  NodeKind(n.Type),
			Distribution: Distribution{
				Type:   DistributionType(n.Distribution.Type),
				P:      n.Distribution.P,
				Probs:  n.Distribution.Probs,
				Mu:     n.Distribution.Mu,
				Sigma:  n.Distribution.Sigma,
				Alpha:  n.Distribution.Alpha,
				Beta:   n.Distribution.Beta,
				Shape:  n.Distribution.Shape,
				Rate:   n.Distribution.Rate,
				Min:    n.Distribution.Min,
				Max:    n.Distribution.Max,
				Mode:   n.Distribution.Mode,
				Lambda: n.Distribution.Lambda,
			},
		}
		if n.CircuitBreakers != nil {
			node.CircuitBreakers = CircuitBreakers{
				Min:            n.CircuitBreakers.Min,
				Max:            n.CircuitBreakers.Max,
				PriorWeight:    n.CircuitBreakers.PriorWeight,
				MaxStdDevRatio: n.CircuitBreakers.MaxStdDevRatio,
			}
		}
		m.Nodes[i] = node
	}

	for i, e := range jm.Edges {
		m.Edges[i] = Edge{
			Source:       e.Source,
			Target:       e.Target,
			Relationship: e.Relationship,
			Effect: Effect{
				Type:        EffectType(e.Effect.Type),
				Coefficient: e.Effect.Coefficient,
				Intercept:   e.Effect.Intercept,
				Saturation:  e.Effect.Saturation,
				Factor:      e.Effect.Factor,
				Baseline:    e.Effect.Baseline,
				Cutoff:      e.Effect.Cutoff,
				Below:       e.Effect.Below,
				Above:       e.Effect.Above,
				Smoothness:  e.Effect.Smoothness,
				Threshold:   e.Effect.Threshold,
			},
		}
	}

	return m, nil
}
