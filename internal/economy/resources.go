package economy

import "math"

// Resources is the five-axis stock vector of the city-state economy.
// Values are kept as floats internally; truncation to display precision
// happens only at the persistence boundary via Truncate.
type Resources struct {
	Materials   float64 `json:"materials"`
	Energy      float64 `json:"energy"`
	Data        float64 `json:"data"`
	Talent      float64 `json:"talent"`
	CivicCredit float64 `json:"civic_credit"`
}

// Kind names one resource axis.
type Kind string

const (
	Materials   Kind = "materials"
	Energy      Kind = "energy"
	Data        Kind = "data"
	Talent      Kind = "talent"
	CivicCredit Kind = "civic_credit"
)

// Kinds lists every resource axis in canonical order.
var Kinds = []Kind{Materials, Energy, Data, Talent, CivicCredit}

func (r Resources) Get(k Kind) float64 {
	switch k {
	case Materials:
		return r.Materials
	case Energy:
		return r.Energy
	case Data:
		return r.Data
	case Talent:
		return r.Talent
	case CivicCredit:
		return r.CivicCredit
	}
	return 0
}

func (r *Resources) Set(k Kind, v float64) {
	switch k {
	case Materials:
		r.Materials = v
	case Energy:
		r.Energy = v
	case Data:
		r.Data = v
	case Talent:
		r.Talent = v
	case CivicCredit:
		r.CivicCredit = v
	}
}

func (r Resources) Add(o Resources) Resources {
	return Resources{
		Materials:   r.Materials + o.Materials,
		Energy:      r.Energy + o.Energy,
		Data:        r.Data + o.Data,
		Talent:      r.Talent + o.Talent,
		CivicCredit: r.CivicCredit + o.CivicCredit,
	}
}

func (r Resources) Sub(o Resources) Resources {
	return Resources{
		Materials:   r.Materials - o.Materials,
		Energy:      r.Energy - o.Energy,
		Data:        r.Data - o.Data,
		Talent:      r.Talent - o.Talent,
		CivicCredit: r.CivicCredit - o.CivicCredit,
	}
}

func (r Resources) Scale(f float64) Resources {
	return Resources{
		Materials:   r.Materials * f,
		Energy:      r.Energy * f,
		Data:        r.Data * f,
		Talent:      r.Talent * f,
		CivicCredit: r.CivicCredit * f,
	}
}

// ClampZero floors every axis at zero. Every mutation of a stock vector
// goes through this so no resource is ever observed negative.
func (r Resources) ClampZero() Resources {
	return Resources{
		Materials:   math.Max(0, r.Materials),
		Energy:      math.Max(0, r.Energy),
		Data:        math.Max(0, r.Data),
		Talent:      math.Max(0, r.Talent),
		CivicCredit: math.Max(0, r.CivicCredit),
	}
}

// Covers reports whether r is sufficient to pay cost on every axis.
func (r Resources) Covers(cost Resources) bool {
	return r.Materials >= cost.Materials &&
		r.Energy >= cost.Energy &&
		r.Data >= cost.Data &&
		r.Talent >= cost.Talent &&
		r.CivicCredit >= cost.CivicCredit
}

// Truncate rounds each axis down to its storage precision: talent keeps
// one decimal, every other axis is a whole number. Truncation is toward
// zero so repeated truncation is idempotent.
func (r Resources) Truncate() Resources {
	return Resources{
		Materials:   math.Trunc(r.Materials),
		Energy:      math.Trunc(r.Energy),
		Data:        math.Trunc(r.Data),
		Talent:      truncStep(r.Talent, 0.1),
		CivicCredit: math.Trunc(r.CivicCredit),
	}
}

// IsZero reports whether every axis is exactly zero.
func (r Resources) IsZero() bool {
	return r == Resources{}
}

// truncStep floors v to a multiple of step. The epsilon absorbs binary
// representation error so that e.g. 3.7 stays 3.7 instead of dropping
// to 3.6.
func truncStep(v, step float64) float64 {
	return math.Floor(v/step+1e-9) * step
}
