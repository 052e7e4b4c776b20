// Package vt estimates the detection-weighted volume of a population,
// folding gridded search sensitivity into a population model.
package vt

import (
	"fmt"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/models"
)

// GridVT pairs a population model with sensitivity values sampled on a
// fixed parameter grid.
type GridVT struct {
	Model models.PopulationModel
	Data  models.Dataset
	Axis  string
	VTs   compute.Array
}

func New(model models.PopulationModel, data models.Dataset, axis string, vts compute.Array) *GridVT {
	return &GridVT{Model: model, Data: data, Axis: axis, VTs: vts}
}

// Evaluate integrates probability × sensitivity over the grid axis via
// the active backend's trapezoid rule.
func (g *GridVT) Evaluate(params models.Params) (float64, error) {
	axis, ok := g.Data[g.Axis]
	if !ok {
		return 0, fmt.Errorf("vt: grid data missing axis %q", g.Axis)
	}
	prob, err := g.Model.Probability(g.Data, params)
	if err != nil {
		return 0, err
	}
	xp := compute.Active()
	return xp.Trapz(xp.Mul(prob, g.VTs), axis), nil
}
