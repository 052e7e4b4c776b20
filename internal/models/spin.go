package models

import (
	"fmt"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/utils"
)

// IIDSpinMagnitude models both component spin magnitudes as
// independent, identically distributed Beta densities on [0, amax].
// Parameters: alpha_chi, beta_chi, amax.
type IIDSpinMagnitude struct{}

func (IIDSpinMagnitude) Probability(dataset Dataset, params Params) (compute.Array, error) {
	a1, ok := dataset["a_1"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "a_1")
	}
	a2, ok := dataset["a_2"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "a_2")
	}
	xp := compute.Active()
	p1 := utils.BetaDist(a1, params["alpha_chi"], params["beta_chi"], params["amax"])
	p2 := utils.BetaDist(a2, params["alpha_chi"], params["beta_chi"], params["amax"])
	return xp.Mul(p1, p2), nil
}

// IIDSpinOrientation models the cosine tilts as a mixture of a
// preferentially aligned pair of truncated Gaussians centered on 1 and
// an isotropic component:
//
//	p = xi · N_t(c1; 1, sigma) N_t(c2; 1, sigma) + (1 - xi) / 4
//
// Parameters: xi_spin, sigma_spin.
type IIDSpinOrientation struct{}

func (IIDSpinOrientation) Probability(dataset Dataset, params Params) (compute.Array, error) {
	c1, ok := dataset["cos_tilt_1"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "cos_tilt_1")
	}
	c2, ok := dataset["cos_tilt_2"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "cos_tilt_2")
	}
	xp := compute.Active()
	xi := params["xi_spin"]
	sigma := params["sigma_spin"]
	aligned := xp.Mul(
		utils.TruncNorm(c1, 1, sigma, -1, 1),
		utils.TruncNorm(c2, 1, sigma, -1, 1),
	)
	return xp.Shift(xp.Scale(aligned, xi), (1-xi)/4), nil
}
