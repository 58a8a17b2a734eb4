package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tuning.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadWithoutTuningFile(t *testing.T) {
	cat, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	factory, _ := cat.Building("factory")
	if factory.BaseCost.Materials != 80 {
		t.Errorf("missing tuning.yaml should keep defaults, got materials %v", factory.BaseCost.Materials)
	}

	if _, err := Load(""); err != nil {
		t.Errorf("empty dir should yield defaults, got %v", err)
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	dir := writeTuning(t, `
buildings:
  factory:
    base_cost:
      materials: 100
    base_minutes: 12
research:
  decent_housing:
    minutes: 20
policies:
  basic_income:
    cost: 75
units:
  drone:
    training_minutes: 10
`)

	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	factory, _ := cat.Building("factory")
	if factory.BaseCost.Materials != 100 {
		t.Errorf("factory materials = %v, want overridden 100", factory.BaseCost.Materials)
	}
	if factory.BaseCost.Energy != 40 {
		t.Errorf("factory energy = %v, omitted axes must keep defaults", factory.BaseCost.Energy)
	}
	if factory.BaseMinutes != 12 {
		t.Errorf("factory minutes = %v, want 12", factory.BaseMinutes)
	}

	housing, _ := cat.Research("decent_housing")
	if housing.Duration != 20*time.Minute {
		t.Errorf("decent_housing duration = %v, want 20m", housing.Duration)
	}

	income, _ := cat.Policy("basic_income")
	if income.Cost != 75 {
		t.Errorf("basic_income cost = %v, want 75", income.Cost)
	}

	drone, _ := cat.Unit("drone")
	if drone.TrainingMinutes != 10 {
		t.Errorf("drone training minutes = %v, want 10", drone.TrainingMinutes)
	}
}

func TestLoadRejectsUnknownIDs(t *testing.T) {
	dir := writeTuning(t, "buildings:\n  moonbase:\n    base_minutes: 5\n")
	if _, err := Load(dir); err == nil {
		t.Fatal("unknown building id should be rejected")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := writeTuning(t, "buildings: [not a map")
	if _, err := Load(dir); err == nil {
		t.Fatal("malformed yaml should be rejected")
	}
}
