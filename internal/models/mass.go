package models

import (
	"fmt"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/utils"
)

// upper truncation for the Gaussian peak component, solar masses
const peakUpperBound = 100

// PowerLawPrimary models the primary mass as a truncated power law
// p(m1) ∝ m1^-alpha on [mmin, mmax]. Parameters: alpha, mmin, mmax.
type PowerLawPrimary struct{}

func (PowerLawPrimary) Probability(dataset Dataset, params Params) (compute.Array, error) {
	m1, ok := dataset["mass_1"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "mass_1")
	}
	return utils.Powerlaw(m1, -params["alpha"], params["mmin"], params["mmax"]), nil
}

// TwoComponentPrimary mixes the truncated power law with a Gaussian
// peak at mpp of width sigpp, weighted by lam. Parameters: alpha,
// mmin, mmax, lam, mpp, sigpp.
type TwoComponentPrimary struct{}

func (TwoComponentPrimary) Probability(dataset Dataset, params Params) (compute.Array, error) {
	m1, ok := dataset["mass_1"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "mass_1")
	}
	xp := compute.Active()
	lam := params["lam"]
	pl := utils.Powerlaw(m1, -params["alpha"], params["mmin"], params["mmax"])
	peak := utils.TruncNorm(m1, params["mpp"], params["sigpp"], params["mmin"], peakUpperBound)
	return xp.Add(xp.Scale(pl, 1-lam), xp.Scale(peak, lam)), nil
}
