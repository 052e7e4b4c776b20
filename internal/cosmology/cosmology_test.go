package cosmology

import (
	"math"
	"testing"
)

func TestEAtZero(t *testing.T) {
	if got := Planck15.E(0); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected E(0) = 1, got %f", got)
	}
}

func TestHubbleDistance(t *testing.T) {
	got := Planck15.HubbleDistance()
	if math.Abs(got-4425.7) > 0.5 {
		t.Errorf("expected c/H0 about 4425.7 Mpc, got %f", got)
	}
}

func TestComovingDistance(t *testing.T) {
	// Planck15 comoving distance to z = 1 is about 3396 Mpc
	got := Planck15.ComovingDistance(1)
	if math.Abs(got-3396) > 35 {
		t.Errorf("expected about 3396 Mpc, got %f", got)
	}

	if Planck15.ComovingDistance(0) != 0 {
		t.Error("expected zero distance at z = 0")
	}
	if Planck15.ComovingDistance(-0.1) != 0 {
		t.Error("expected zero distance for negative z")
	}
}

func TestComovingDistanceMonotonic(t *testing.T) {
	prev := 0.0
	for _, z := range []float64{0.1, 0.5, 1, 2, 5, 10} {
		d := Planck15.ComovingDistance(z)
		if d <= prev {
			t.Fatalf("distance not increasing at z = %f: %f <= %f", z, d, prev)
		}
		prev = d
	}
}

func TestDifferentialComovingVolume(t *testing.T) {
	zs := []float64{0.001, 0.5, 1, 2}
	got := Planck15.DifferentialComovingVolume(zs)

	if len(got) != len(zs) {
		t.Fatalf("expected %d values, got %d", len(zs), len(got))
	}
	prev := 0.0
	for i, v := range got {
		if v <= prev {
			t.Errorf("volume element not increasing at z = %f", zs[i])
		}
		prev = v
	}

	// D_H * D_C(1)^2 / E(1)
	dc := Planck15.ComovingDistance(1)
	want := Planck15.HubbleDistance() * dc * dc / Planck15.E(1)
	if math.Abs(got[2]-want)/want > 1e-12 {
		t.Errorf("expected %g at z = 1, got %g", want, got[2])
	}
}
