package config

var Presets = map[string]map[string]*Config{
	"redshift_powerlaw": {
		"fiducial": {
			Model: "redshift_powerlaw", ZMax: 1.0, GridPoints: 1000,
			Params: map[string]float64{"alpha": 2.7},
		},
		"uniform": {
			Model: "redshift_powerlaw", ZMax: 1.0, GridPoints: 1000,
			Params: map[string]float64{"alpha": 0},
		},
		"declining": {
			Model: "redshift_powerlaw", ZMax: 1.0, GridPoints: 1000,
			Params: map[string]float64{"alpha": -2.0},
		},
	},
	"redshift_madau_dickinson": {
		"sfr": {
			Model: "redshift_madau_dickinson", ZMax: 4.0, GridPoints: 1000,
			Params: map[string]float64{"gamma": 2.7, "kappa": 5.6, "z_peak": 1.9},
		},
		"late_peak": {
			Model: "redshift_madau_dickinson", ZMax: 8.0, GridPoints: 1000,
			Params: map[string]float64{"gamma": 2.7, "kappa": 3.0, "z_peak": 3.5},
		},
	},
	"mass_powerlaw": {
		"fiducial": {
			Model: "mass_powerlaw", GridPoints: 1000,
			Params: map[string]float64{"alpha": 2.3, "mmin": 5, "mmax": 80},
		},
	},
	"mass_two_component": {
		"peak": {
			Model: "mass_two_component", GridPoints: 1000,
			Params: map[string]float64{
				"alpha": 2.3, "mmin": 5, "mmax": 45,
				"lam": 0.1, "mpp": 35, "sigpp": 4,
			},
		},
	},
	"spin_magnitude_beta": {
		"fiducial": {
			Model: "spin_magnitude_beta", GridPoints: 1000,
			Params: map[string]float64{"alpha_chi": 2, "beta_chi": 5, "amax": 1},
		},
	},
	"spin_orientation_gaussian": {
		"fiducial": {
			Model: "spin_orientation_gaussian", GridPoints: 1000,
			Params: map[string]float64{"xi_spin": 0.8, "sigma_spin": 1},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
