package models

import (
	"math"
	"testing"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/utils"
)

func TestIIDSpinMagnitudeFactorizes(t *testing.T) {
	resetCPU(t)

	params := Params{"alpha_chi": 2, "beta_chi": 3, "amax": 1}
	a1 := []float64{0.1, 0.3, 0.7}
	a2 := []float64{0.5, 0.5, 0.5}
	data := Dataset{
		"a_1": compute.Active().Asarray(a1),
		"a_2": compute.Active().Asarray(a2),
	}

	got, err := IIDSpinMagnitude{}.Probability(data, params)
	if err != nil {
		t.Fatal(err)
	}

	p1 := utils.BetaDist(compute.Active().Asarray(a1), 2, 3, 1).Float64s()
	p2 := utils.BetaDist(compute.Active().Asarray(a2), 2, 3, 1).Float64s()
	for i, v := range got.Float64s() {
		want := p1[i] * p2[i]
		if math.Abs(v-want) > 1e-12 {
			t.Errorf("index %d: expected %g, got %g", i, want, v)
		}
	}
}

func TestIIDSpinOrientationIsotropicLimit(t *testing.T) {
	resetCPU(t)

	// xi = 0 is pure isotropy: constant 1/4 on the unit square
	data := Dataset{
		"cos_tilt_1": compute.Active().Asarray([]float64{-0.9, 0, 0.9}),
		"cos_tilt_2": compute.Active().Asarray([]float64{0.2, 0.2, 0.2}),
	}
	got, err := IIDSpinOrientation{}.Probability(data, Params{"xi_spin": 0, "sigma_spin": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got.Float64s() {
		if math.Abs(v-0.25) > 1e-12 {
			t.Errorf("index %d: expected 0.25, got %g", i, v)
		}
	}
}

func TestIIDSpinOrientationAligned(t *testing.T) {
	resetCPU(t)

	// with xi = 1 the density must favor aligned spins
	data := Dataset{
		"cos_tilt_1": compute.Active().Asarray([]float64{0.99, -0.99}),
		"cos_tilt_2": compute.Active().Asarray([]float64{0.99, -0.99}),
	}
	got, err := IIDSpinOrientation{}.Probability(data, Params{"xi_spin": 1, "sigma_spin": 0.3})
	if err != nil {
		t.Fatal(err)
	}
	vals := got.Float64s()
	if vals[0] <= vals[1] {
		t.Errorf("expected aligned density %g > anti-aligned %g", vals[0], vals[1])
	}
}

func TestSpinMissingKeys(t *testing.T) {
	resetCPU(t)

	if _, err := (IIDSpinMagnitude{}).Probability(Dataset{}, Params{}); err == nil {
		t.Fatal("expected error for missing a_1")
	}
	data := Dataset{"a_1": compute.Active().Asarray([]float64{0.5})}
	if _, err := (IIDSpinMagnitude{}).Probability(data, Params{}); err == nil {
		t.Fatal("expected error for missing a_2")
	}
}

func TestRegistry(t *testing.T) {
	resetCPU(t)

	r := NewRegistry()
	names := r.Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 registered models, got %d", len(names))
	}

	m, err := r.Get("redshift_powerlaw", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.(*PowerLawRedshift); !ok {
		t.Errorf("expected *PowerLawRedshift, got %T", m)
	}

	if _, err := r.Get("nope", 1); err == nil {
		t.Error("expected error for unknown model")
	}
}
