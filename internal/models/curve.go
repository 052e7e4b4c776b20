package models

import (
	"strings"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/utils"
)

// AxisFor returns the dataset key a model's density is evaluated
// against when plotted or exported as a one dimensional curve.
func AxisFor(name string) string {
	switch {
	case strings.HasPrefix(name, "mass"):
		return "mass_1"
	case name == "spin_magnitude_beta":
		return "a_1"
	case name == "spin_orientation_gaussian":
		return "cos_tilt_1"
	default:
		return "redshift"
	}
}

// GridRange returns the default sample range for a model's axis.
func GridRange(name string, zMax float64) (lo, hi float64) {
	switch AxisFor(name) {
	case "mass_1":
		return 2, 100
	case "a_1":
		return 0, 1
	case "cos_tilt_1":
		return -1, 1
	default:
		return 0, zMax
	}
}

// Curve evaluates the model density over n evenly spaced samples of
// its axis. The iid spin models take the same samples on both
// component keys, so their curve is the diagonal slice. Returns plain
// slices for plotting and export.
func Curve(model PopulationModel, name string, params Params, zMax float64, n int) (samples, density []float64, err error) {
	lo, hi := GridRange(name, zMax)
	grid := utils.Linspace(lo, hi, n)
	xp := compute.Active()

	axis := AxisFor(name)
	data := Dataset{axis: xp.Asarray(grid)}
	switch axis {
	case "a_1":
		data["a_2"] = data[axis]
	case "cos_tilt_1":
		data["cos_tilt_2"] = data[axis]
	}

	prob, err := model.Probability(data, params)
	if err != nil {
		return nil, nil, err
	}
	return grid, prob.Float64s(), nil
}
