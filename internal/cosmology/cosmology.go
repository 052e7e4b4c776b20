// Package cosmology supplies the comoving volume element population
// models weight their densities with, for a fixed flat ΛCDM parameter
// set.
package cosmology

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/gwpop/internal/utils"
)

// SpeedOfLight in km/s.
const SpeedOfLight = 299792.458

// FlatLambdaCDM is a flat universe with matter and a cosmological
// constant.
type FlatLambdaCDM struct {
	Name string
	H0   float64 // Hubble constant, km/s/Mpc
	Om0  float64 // matter density today
}

// Planck15 is the fixed parameter set used throughout the library.
var Planck15 = &FlatLambdaCDM{Name: "Planck15", H0: 67.74, Om0: 0.3089}

// E returns the dimensionless Hubble parameter H(z)/H0.
func (c *FlatLambdaCDM) E(z float64) float64 {
	zp1 := 1 + z
	return math.Sqrt(c.Om0*zp1*zp1*zp1 + (1 - c.Om0))
}

// HubbleDistance returns c/H0 in Mpc.
func (c *FlatLambdaCDM) HubbleDistance() float64 {
	return SpeedOfLight / c.H0
}

const quadraturePoints = 512

// ComovingDistance returns the line-of-sight comoving distance to z
// in Mpc, by trapezoidal quadrature of 1/E over [0, z].
func (c *FlatLambdaCDM) ComovingDistance(z float64) float64 {
	if z <= 0 {
		return 0
	}
	zs := utils.Linspace(0, z, quadraturePoints)
	integrand := make([]float64, len(zs))
	for i, zi := range zs {
		integrand[i] = 1 / c.E(zi)
	}
	return c.HubbleDistance() * integrate.Trapezoidal(zs, integrand)
}

// DifferentialComovingVolume returns dVc/dz per steradian, in Mpc³/sr,
// at each redshift in zs. Values are plain float64, independent of the
// active compute backend; callers convert as needed.
func (c *FlatLambdaCDM) DifferentialComovingVolume(zs []float64) []float64 {
	out := make([]float64, len(zs))
	for i, z := range zs {
		dc := c.ComovingDistance(z)
		out[i] = c.HubbleDistance() * dc * dc / c.E(z)
	}
	return out
}
