package economy

import (
	"math"
	"testing"
)

func TestClampZero(t *testing.T) {
	r := Resources{Materials: -5, Energy: 3, Data: -0.001, Talent: 0, CivicCredit: 7}
	got := r.ClampZero()

	if got.Materials != 0 || got.Data != 0 {
		t.Errorf("negative axes not clamped: %+v", got)
	}
	if got.Energy != 3 || got.CivicCredit != 7 {
		t.Errorf("positive axes changed: %+v", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   Resources
		want Resources
	}{
		{
			name: "whole units floor",
			in:   Resources{Materials: 12.9, Energy: 0.4, Data: 99.999, CivicCredit: 5},
			want: Resources{Materials: 12, Energy: 0, Data: 99, CivicCredit: 5},
		},
		{
			name: "talent keeps one decimal",
			in:   Resources{Talent: 3.7},
			want: Resources{Talent: 3.7},
		},
		{
			name: "talent floors below the step",
			in:   Resources{Talent: 0.19},
			want: Resources{Talent: 0.1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Truncate()
			for _, k := range Kinds {
				if math.Abs(got.Get(k)-tt.want.Get(k)) > 1e-9 {
					t.Errorf("%s: got %v, want %v", k, got.Get(k), tt.want.Get(k))
				}
			}
		})
	}
}

func TestTruncateIdempotent(t *testing.T) {
	r := Resources{Materials: 80.6, Talent: 2.34}
	once := r.Truncate()
	twice := once.Truncate()
	if once != twice {
		t.Errorf("truncation not idempotent: %+v vs %+v", once, twice)
	}
}

func TestCovers(t *testing.T) {
	have := Resources{Materials: 100, Energy: 50, Data: 20, Talent: 1, CivicCredit: 10}

	if !have.Covers(Resources{Materials: 100, Energy: 50}) {
		t.Error("exact amount should cover")
	}
	if have.Covers(Resources{Materials: 100.001}) {
		t.Error("short on materials should not cover")
	}
	if !have.Covers(Resources{}) {
		t.Error("zero cost should always be covered")
	}
}

func TestScaleAndSub(t *testing.T) {
	cost := Resources{Materials: 80, Energy: 40, Data: 10}
	refund := cost.Scale(0.75).Truncate()

	want := Resources{Materials: 60, Energy: 30, Data: 7}
	if refund != want {
		t.Errorf("refund = %+v, want %+v", refund, want)
	}
}
