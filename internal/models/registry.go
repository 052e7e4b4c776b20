package models

import (
	"fmt"
	"sort"
)

// Registry maps model names to constructors, for the CLI and TUI.
type Registry struct {
	models map[string]func(zMax float64) PopulationModel
}

func NewRegistry() *Registry {
	r := &Registry{models: make(map[string]func(float64) PopulationModel)}

	r.models["redshift_powerlaw"] = func(zMax float64) PopulationModel {
		return NewPowerLawRedshift(zMax)
	}
	r.models["redshift_madau_dickinson"] = func(zMax float64) PopulationModel {
		return NewMadauDickinsonRedshift(zMax)
	}
	r.models["mass_powerlaw"] = func(float64) PopulationModel { return PowerLawPrimary{} }
	r.models["mass_two_component"] = func(float64) PopulationModel { return TwoComponentPrimary{} }
	r.models["spin_magnitude_beta"] = func(float64) PopulationModel { return IIDSpinMagnitude{} }
	r.models["spin_orientation_gaussian"] = func(float64) PopulationModel { return IIDSpinOrientation{} }

	return r
}

func (r *Registry) Get(name string, zMax float64) (PopulationModel, error) {
	fn, ok := r.models[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(zMax), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
