package catalog

import "testing"

func TestAvailableResearchPrerequisites(t *testing.T) {
	cat := Default()

	ids := func(list []*ResearchType) map[string]bool {
		out := make(map[string]bool, len(list))
		for _, r := range list {
			out[r.ID] = true
		}
		return out
	}

	fresh := ids(cat.AvailableResearch(map[string]bool{}))
	for _, want := range []string{"decent_housing", "recycling_i", "ai_logistics"} {
		if !fresh[want] {
			t.Errorf("tier 1 entry %s should be available with nothing completed", want)
		}
	}
	if fresh["universal_healthcare"] {
		t.Error("universal_healthcare available without decent_housing")
	}

	afterHousing := ids(cat.AvailableResearch(map[string]bool{"decent_housing": true}))
	if afterHousing["decent_housing"] {
		t.Error("completed research should not reappear as available")
	}
	if !afterHousing["universal_healthcare"] || !afterHousing["algorithmic_transparency"] {
		t.Error("tier 2 socioeconomic entries should unlock after decent_housing")
	}
	if afterHousing["digital_rights"] {
		t.Error("digital_rights needs both tier 2 entries, not just decent_housing")
	}

	bothTier2 := ids(cat.AvailableResearch(map[string]bool{
		"decent_housing":           true,
		"universal_healthcare":     true,
		"algorithmic_transparency": true,
	}))
	if !bothTier2["digital_rights"] {
		t.Error("digital_rights should unlock once both prerequisites complete")
	}
}

func TestCatalogLookups(t *testing.T) {
	cat := Default()

	if _, ok := cat.Building("factory"); !ok {
		t.Error("factory lookup failed")
	}
	if _, ok := cat.Building("nonexistent"); ok {
		t.Error("unknown building id should miss")
	}
	if _, ok := cat.Policy("basic_income"); !ok {
		t.Error("basic_income lookup failed")
	}
	if _, ok := cat.Territory("district-1"); !ok {
		t.Error("district-1 lookup failed")
	}
	if _, ok := cat.Mission("day1_welfare_target"); !ok {
		t.Error("day1_welfare_target lookup failed")
	}
	if _, ok := cat.Unit("warpgate"); ok {
		t.Error("unknown unit id should miss")
	}
}

func TestMissionsByDayOrdering(t *testing.T) {
	cat := Default()

	day1 := cat.MissionsByDay(1)
	if len(day1) != 4 {
		t.Fatalf("day 1 has %d missions, want 4", len(day1))
	}
	for i, m := range day1 {
		if m.Order != i+1 {
			t.Errorf("day 1 mission %d is %s with order %d", i, m.ID, m.Order)
		}
	}
	if day1[0].ID != "day1_upgrade_factory" || day1[3].ID != "day1_explore_district" {
		t.Errorf("day 1 ordering wrong: first %s, last %s", day1[0].ID, day1[3].ID)
	}

	if got := cat.MissionsByDay(99); len(got) != 0 {
		t.Errorf("day 99 should have no missions, got %d", len(got))
	}
}

func TestResearchByTree(t *testing.T) {
	cat := Default()

	socio := cat.ResearchByTree(TreeSocioeconomic)
	if len(socio) != 4 {
		t.Fatalf("socioeconomic tree has %d entries, want 4", len(socio))
	}
	for _, r := range socio {
		if r.Tree != TreeSocioeconomic {
			t.Errorf("%s grouped into socioeconomic but belongs to %s", r.ID, r.Tree)
		}
	}

	seen := make(map[string]bool, len(socio))
	for _, r := range socio {
		seen[r.ID] = true
	}
	for _, want := range []string{"decent_housing", "universal_healthcare", "algorithmic_transparency", "digital_rights"} {
		if !seen[want] {
			t.Errorf("socioeconomic tree missing %s", want)
		}
	}

	if got := cat.ResearchByTree(ResearchTree("arcana")); len(got) != 0 {
		t.Errorf("unknown tree should be empty, got %d entries", len(got))
	}
}

func TestPoliciesByCategory(t *testing.T) {
	cat := Default()

	security := cat.PoliciesByCategory(CategorySecurity)
	if len(security) != 3 {
		t.Fatalf("security category has %d policies, want 3", len(security))
	}
	seen := make(map[string]bool, len(security))
	for _, p := range security {
		seen[p.ID] = true
	}
	for _, want := range []string{"ai_audit", "active_neutrality", "surveillance_state"} {
		if !seen[want] {
			t.Errorf("security category missing %s", want)
		}
	}

	if got := cat.PoliciesByCategory(PolicyCategory("fiscal")); len(got) != 0 {
		t.Errorf("unknown category should be empty, got %d policies", len(got))
	}
}

func TestFeatureNames(t *testing.T) {
	cat := Default()

	names := cat.FeatureNames()
	seen := make(map[string]int, len(names))
	for _, n := range names {
		seen[n]++
	}
	for _, want := range []string{"green_events", "ai_governor", "incident_reduction", "attacks_disabled", "unit_capacity"} {
		if seen[want] == 0 {
			t.Errorf("feature list missing %s", want)
		}
	}
	for n, count := range seen {
		if count > 1 {
			t.Errorf("feature %s listed %d times", n, count)
		}
	}
}
