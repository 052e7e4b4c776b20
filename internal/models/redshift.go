package models

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/cosmology"
	"github.com/san-kum/gwpop/internal/utils"
)

// Dataset maps parameter names to sample arrays.
type Dataset map[string]compute.Array

// Params holds the population hyperparameters for one evaluation.
type Params map[string]float64

// PopulationModel evaluates a population-weighted probability density
// at each sample of a dataset.
type PopulationModel interface {
	Probability(dataset Dataset, params Params) (compute.Array, error)
}

// RateEvolution supplies the merger-rate weighting psi(z) for a
// redshift model variant. Outputs are non-negative and match the shape
// of the input.
type RateEvolution interface {
	PsiOfZ(redshift compute.Array, params Params) compute.Array
}

// ErrPsiNotImplemented signals a Redshift used without a concrete rate
// evolution. This is a programming error, hence a panic rather than a
// returned error.
var ErrPsiNotImplemented = errors.New("models: psi_of_z not implemented")

const redshiftGridSize = 1000

// Redshift is the shared machinery for models whose density carries a
// dVc/dz / (1+z) term. It precomputes the redshift grid and the
// full-sky Planck15 volume element once at construction and never
// mutates them; the only mutable state is the single cache slot for
// the interpolated volume term of the last-seen dataset.
type Redshift struct {
	ZMax float64

	// held twice: plain slices for backend-independent interpolation,
	// backend arrays for grid arithmetic
	zs     []float64
	dvcDz  []float64
	zsArr  compute.Array
	dvcArr compute.Array

	cached        compute.Array
	cachedLen     int
	cachedBackend string

	evolution RateEvolution
}

// NewRedshift builds the shared redshift machinery for the given rate
// evolution. zMax must be positive.
func NewRedshift(zMax float64, evolution RateEvolution) *Redshift {
	zs := utils.Linspace(1e-3, zMax, redshiftGridSize)
	dvcDz := cosmology.Planck15.DifferentialComovingVolume(zs)
	for i := range dvcDz {
		dvcDz[i] *= 4 * math.Pi
	}
	xp := compute.Active()
	return &Redshift{
		ZMax:      zMax,
		zs:        zs,
		dvcDz:     dvcDz,
		zsArr:     xp.Asarray(zs),
		dvcArr:    xp.Asarray(dvcDz),
		evolution: evolution,
	}
}

func (r *Redshift) psiOfZ(redshift compute.Array, params Params) compute.Array {
	if r.evolution == nil {
		panic(ErrPsiNotImplemented)
	}
	return r.evolution.PsiOfZ(redshift, params)
}

// Normalisation integrates psi(z) · dVc/dz / (1+z) over the internal
// grid. It depends on params, so it is recomputed on every call.
func (r *Redshift) Normalisation(params Params) float64 {
	xp := compute.Active()
	psi := r.psiOfZ(r.zsArr, params)
	integrand := xp.Div(xp.Mul(psi, r.dvcArr), xp.Shift(r.zsArr, 1))
	return xp.Trapz(integrand, r.zsArr)
}

// Probability evaluates the normalized density
//
//	p(z) = psi(z) / (1+z) / norm · 4π dVc/dz
//
// at the dataset redshifts. The volume term at those redshifts comes
// from linear interpolation against the precomputed grid and is cached
// for the next call.
func (r *Redshift) Probability(dataset Dataset, params Params) (compute.Array, error) {
	z, ok := dataset["redshift"]
	if !ok {
		return nil, fmt.Errorf("models: dataset missing %q", "redshift")
	}
	xp := compute.Active()
	psi := r.psiOfZ(z, params)
	norm := r.Normalisation(params)
	pz := xp.Scale(xp.Div(psi, xp.Shift(z, 1)), 1/norm)
	if !r.cacheValid(z) {
		r.rebuildCache(z)
	}
	return xp.Mul(pz, r.cached), nil
}

// cacheValid is a structural compatibility check, not value equality:
// a redshift array of the cached length under the cached backend
// reuses the cached volume term.
func (r *Redshift) cacheValid(z compute.Array) bool {
	return r.cached != nil &&
		r.cachedLen == z.Len() &&
		r.cachedBackend == compute.ActiveName()
}

func (r *Redshift) rebuildCache(z compute.Array) {
	vals := utils.Interp(z.Float64s(), r.zs, r.dvcDz)
	r.cached = compute.Active().Asarray(vals)
	r.cachedLen = z.Len()
	r.cachedBackend = compute.ActiveName()
}

// PowerLawRedshift models (1+z)^alpha merger-rate evolution, after
// Fishbach & Holz (arXiv:1805.10270).
type PowerLawRedshift struct {
	*Redshift
}

func NewPowerLawRedshift(zMax float64) *PowerLawRedshift {
	m := &PowerLawRedshift{}
	m.Redshift = NewRedshift(zMax, m)
	return m
}

// PsiOfZ is the truncated power law (1+z)^alpha on 1+z in
// [1, 1+z_max]. alpha may be negative for a declining rate.
func (m *PowerLawRedshift) PsiOfZ(redshift compute.Array, params Params) compute.Array {
	xp := compute.Active()
	return utils.Powerlaw(xp.Shift(redshift, 1), params["alpha"], 1, 1+m.ZMax)
}

// MadauDickinsonRedshift models a rate that rises as (1+z)^gamma at
// low redshift and declines with slope kappa past z_peak:
//
//	psi(z) = (1+z)^gamma / (1 + ((1+z)/(1+z_peak))^kappa)
type MadauDickinsonRedshift struct {
	*Redshift
}

func NewMadauDickinsonRedshift(zMax float64) *MadauDickinsonRedshift {
	m := &MadauDickinsonRedshift{}
	m.Redshift = NewRedshift(zMax, m)
	return m
}

// PsiOfZ evaluates the peaked evolution law. The denominator stays
// above 1 as z_peak approaches 0, so no special casing is needed
// there.
func (m *MadauDickinsonRedshift) PsiOfZ(redshift compute.Array, params Params) compute.Array {
	xp := compute.Active()
	onePlus := xp.Shift(redshift, 1)
	psi := utils.Powerlaw(onePlus, params["gamma"], 1, 1+m.ZMax)
	ratio := xp.Pow(xp.Scale(onePlus, 1/(1+params["z_peak"])), params["kappa"])
	return xp.Div(psi, xp.Shift(ratio, 1))
}
