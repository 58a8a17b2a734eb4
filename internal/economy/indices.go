package economy

import "math"

// Indices is the three-axis civic health vector, each axis in [0,100].
type Indices struct {
	Welfare        float64 `json:"welfare"`
	Sustainability float64 `json:"sustainability"`
	Legitimacy     float64 `json:"legitimacy"`
}

// IndexKind names one index axis.
type IndexKind string

const (
	Welfare        IndexKind = "welfare"
	Sustainability IndexKind = "sustainability"
	Legitimacy     IndexKind = "legitimacy"
)

// IndexKinds lists every index axis in canonical order.
var IndexKinds = []IndexKind{Welfare, Sustainability, Legitimacy}

func (i Indices) Get(k IndexKind) float64 {
	switch k {
	case Welfare:
		return i.Welfare
	case Sustainability:
		return i.Sustainability
	case Legitimacy:
		return i.Legitimacy
	}
	return 0
}

func (i *Indices) Set(k IndexKind, v float64) {
	switch k {
	case Welfare:
		i.Welfare = v
	case Sustainability:
		i.Sustainability = v
	case Legitimacy:
		i.Legitimacy = v
	}
}

func (i Indices) Add(o Indices) Indices {
	return Indices{
		Welfare:        i.Welfare + o.Welfare,
		Sustainability: i.Sustainability + o.Sustainability,
		Legitimacy:     i.Legitimacy + o.Legitimacy,
	}
}

// Clamp bounds every axis to [0,100]. Applied after each modifier layer
// has been summed, never per individual term.
func (i Indices) Clamp() Indices {
	return Indices{
		Welfare:        clamp01e2(i.Welfare),
		Sustainability: clamp01e2(i.Sustainability),
		Legitimacy:     clamp01e2(i.Legitimacy),
	}
}

func clamp01e2(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// StepMultiplier maps an index value onto the stepped production
// multiplier band.
func StepMultiplier(index float64) float64 {
	switch {
	case index >= 80:
		return 1.1
	case index >= 60:
		return 1.0
	case index >= 40:
		return 0.9
	default:
		return 0.8
	}
}

// EfficiencyMultiplier is the arithmetic mean of the three per-index
// stepped multipliers.
func (i Indices) EfficiencyMultiplier() float64 {
	return (StepMultiplier(i.Welfare) + StepMultiplier(i.Sustainability) + StepMultiplier(i.Legitimacy)) / 3
}
