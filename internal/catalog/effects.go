package catalog

import "github.com/Montyshaa/Sumeris/internal/economy"

// CostScope distinguishes which spend path a cost or time modifier
// applies to. The same resource can be discounted for research without
// touching building costs, so scope is always explicit.
type CostScope string

const (
	ScopeBuilding CostScope = "building"
	ScopeResearch CostScope = "research"
	ScopeTraining CostScope = "training"
)

// Effect is the closed set of modifier kinds granted by building levels,
// completed research and active policies. Dispatch is by type switch so
// a new kind fails loudly everywhere it must be handled.
type Effect interface {
	effect()
}

// IndexBonus adds Value to one civic index during aggregation.
type IndexBonus struct {
	Index economy.IndexKind
	Value float64
}

// RateMultiplier scales the current production rate of one resource.
// Multipliers compound sequentially in catalog order.
type RateMultiplier struct {
	Resource economy.Kind
	Factor   float64
}

// CostShift models a policy that changes running costs of a resource.
// A factor above 1 raises upkeep and is mirrored onto the production
// rate as (2 - Factor); a factor below 1 is a consumption discount with
// no production-side counterpart.
type CostShift struct {
	Resource economy.Kind
	Factor   float64
}

// CostMultiplier scales the enqueue-time cost of one resource within a
// single spend scope.
type CostMultiplier struct {
	Scope    CostScope
	Resource economy.Kind
	Factor   float64
}

// TimeMultiplier scales the enqueue-time duration of orders in a scope.
type TimeMultiplier struct {
	Scope  CostScope
	Factor float64
}

// SlotBonus grants extra queue slots in a scope.
type SlotBonus struct {
	Scope CostScope
	Count int
}

// PowerBonus scales the combat power of one unit type. An empty Unit
// applies to every unit type.
type PowerBonus struct {
	Unit   string
	Factor float64
}

// FeatureUnlock flags a named capability on. It carries no numbers; the
// engine checks for the feature by name.
type FeatureUnlock struct {
	Feature string
}

// Conditional applies Then only while the aggregated value of Index is
// below Threshold. Evaluated against the already-layered indices, not
// the base values.
type Conditional struct {
	Index     economy.IndexKind
	Threshold float64
	Then      Effect
}

func (IndexBonus) effect()     {}
func (RateMultiplier) effect() {}
func (CostShift) effect()      {}
func (CostMultiplier) effect() {}
func (TimeMultiplier) effect() {}
func (SlotBonus) effect()      {}
func (PowerBonus) effect()     {}
func (FeatureUnlock) effect()  {}
func (Conditional) effect()    {}
