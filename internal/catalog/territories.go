package catalog

import "github.com/Montyshaa/Sumeris/internal/economy"

// BonusType names the resource a territory boosts. Mixed territories
// spread a quarter of the bonus across materials, energy, data and
// talent.
type BonusType string

const (
	BonusMaterials BonusType = "materials"
	BonusEnergy    BonusType = "energy"
	BonusData      BonusType = "data"
	BonusTalent    BonusType = "talent"
	BonusMixed     BonusType = "mixed"
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TerritoryType is a district on the 3x4 map grid. BonusValue is a
// percentage; it becomes a production fraction while the district is
// controlled.
type TerritoryType struct {
	ID           string
	Name         string
	Position     Position
	Bonus        BonusType
	BonusValue   float64
	DefenseLevel int
}

// OrbitSlot is an anchoring point on an orbit, placed by angle.
type OrbitSlot struct {
	ID    string
	Angle int
}

// OrbitType is unlocked by headquarters level and offers four slots.
type OrbitType struct {
	ID         string
	Name       string
	Radius     int
	RequiresHQ int
	Slots      []OrbitSlot
}

func defaultTerritories() []*TerritoryType {
	return []*TerritoryType{
		{ID: "district-1", Name: "Urban Core", Position: Position{0, 0}, Bonus: BonusMixed, BonusValue: 15, DefenseLevel: 1},
		{ID: "district-2", Name: "Industrial Zone", Position: Position{1, 0}, Bonus: BonusMaterials, BonusValue: 25, DefenseLevel: 1},
		{ID: "district-3", Name: "Energy Complex", Position: Position{2, 0}, Bonus: BonusEnergy, BonusValue: 20, DefenseLevel: 1},
		{ID: "district-4", Name: "Residential District", Position: Position{0, 1}, Bonus: BonusTalent, BonusValue: 18, DefenseLevel: 1},
		{ID: "district-5", Name: "Tech Hub", Position: Position{1, 1}, Bonus: BonusData, BonusValue: 22, DefenseLevel: 2},
		{ID: "district-6", Name: "Trade Port", Position: Position{2, 1}, Bonus: BonusMixed, BonusValue: 12, DefenseLevel: 1},
		{ID: "district-7", Name: "Mining Sector", Position: Position{0, 2}, Bonus: BonusMaterials, BonusValue: 30, DefenseLevel: 2},
		{ID: "district-8", Name: "University Campus", Position: Position{1, 2}, Bonus: BonusTalent, BonusValue: 25, DefenseLevel: 1},
		{ID: "district-9", Name: "Data Exchange", Position: Position{2, 2}, Bonus: BonusData, BonusValue: 28, DefenseLevel: 2},
		{ID: "district-10", Name: "Frontier Zone", Position: Position{0, 3}, Bonus: BonusMixed, BonusValue: 10, DefenseLevel: 3},
		{ID: "district-11", Name: "Energy Reserve", Position: Position{1, 3}, Bonus: BonusEnergy, BonusValue: 35, DefenseLevel: 3},
		{ID: "district-12", Name: "Strategic Enclave", Position: Position{2, 3}, Bonus: BonusMixed, BonusValue: 20, DefenseLevel: 3},
	}
}

func defaultOrbits() []*OrbitType {
	return []*OrbitType{
		{
			ID:         "orbit-1",
			Name:       "Low Orbit",
			Radius:     180,
			RequiresHQ: 7,
			Slots: []OrbitSlot{
				{ID: "orbit-1-slot-1", Angle: 0},
				{ID: "orbit-1-slot-2", Angle: 90},
				{ID: "orbit-1-slot-3", Angle: 180},
				{ID: "orbit-1-slot-4", Angle: 270},
			},
		},
		{
			ID:         "orbit-2",
			Name:       "High Orbit",
			Radius:     240,
			RequiresHQ: 10,
			Slots: []OrbitSlot{
				{ID: "orbit-2-slot-1", Angle: 45},
				{ID: "orbit-2-slot-2", Angle: 135},
				{ID: "orbit-2-slot-3", Angle: 225},
				{ID: "orbit-2-slot-4", Angle: 315},
			},
		},
	}
}

// BonusFractions spreads the territory's percentage bonus across the
// resources it applies to, as decimal fractions.
func (t *TerritoryType) BonusFractions() economy.Resources {
	fraction := t.BonusValue / 100
	var out economy.Resources
	switch t.Bonus {
	case BonusMaterials:
		out.Materials = fraction
	case BonusEnergy:
		out.Energy = fraction
	case BonusData:
		out.Data = fraction
	case BonusTalent:
		out.Talent = fraction
	case BonusMixed:
		quarter := fraction / 4
		out.Materials = quarter
		out.Energy = quarter
		out.Data = quarter
		out.Talent = quarter
	}
	return out
}

// ExplorationCost scales a fixed base spend by the district's defense
// level.
func (t *TerritoryType) ExplorationCost() economy.Resources {
	m := float64(t.DefenseLevel)
	return economy.Resources{Materials: 50 * m, Energy: 30 * m, Data: 20 * m, CivicCredit: 10 * m}
}

// ExplorationReward is the one-time haul granted on exploration,
// weighted toward the district's specialty.
func (t *TerritoryType) ExplorationReward() economy.Resources {
	base := t.BonusValue
	reward := economy.Resources{
		Materials:   base * 0.5,
		Energy:      base * 0.5,
		Data:        base * 0.5,
		Talent:      base * 0.02,
		CivicCredit: base * 0.8,
	}
	switch t.Bonus {
	case BonusMaterials:
		reward.Materials = base * 2
	case BonusEnergy:
		reward.Energy = base * 2
	case BonusData:
		reward.Data = base * 2
	case BonusTalent:
		reward.Talent = base * 0.1
	}
	return reward
}

// ControlCost scales linearly with defense level across every resource.
func (t *TerritoryType) ControlCost() economy.Resources {
	m := float64(t.DefenseLevel)
	return economy.Resources{
		Materials:   100 * m,
		Energy:      75 * m,
		Data:        50 * m,
		Talent:      0.5 * m,
		CivicCredit: 25 * m,
	}
}

// DefenseDescription is the qualitative readout shown in scout reports.
func (t *TerritoryType) DefenseDescription() string {
	switch t.DefenseLevel {
	case 1:
		return "Light defenses"
	case 2:
		return "Moderate defenses"
	default:
		return "Heavy defenses"
	}
}
