package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/gwpop/internal/compute"
	"github.com/san-kum/gwpop/internal/config"
	"github.com/san-kum/gwpop/internal/models"
	"github.com/san-kum/gwpop/internal/store"
	"github.com/san-kum/gwpop/internal/tui"
)

var (
	backendName string
	zMax        float64
	gridPoints  int
	preset      string
	configFile  string
	paramFlags  []string
	jsonOut     string
	csvOut      string
	noPlot      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gwpop",
		Short: "gravitational-wave population probability densities",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the interactive explorer when no command given
			if err := tui.Run(); err != nil {
				logrus.Fatal(err)
			}
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval [model]",
		Short: "evaluate a population model over its parameter grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().StringVar(&backendName, "backend", "", "compute backend (cpu, blas32, cuda)")
	evalCmd.Flags().Float64Var(&zMax, "z-max", 0, "maximum redshift")
	evalCmd.Flags().IntVar(&gridPoints, "grid", 0, "number of grid points")
	evalCmd.Flags().StringVar(&preset, "preset", "", "parameter preset name")
	evalCmd.Flags().StringVar(&configFile, "config", "", "yaml config file")
	evalCmd.Flags().StringArrayVar(&paramFlags, "param", nil, "model parameter as name=value (repeatable)")
	evalCmd.Flags().StringVar(&jsonOut, "json", "", "write the curve to a json file, or - for stdout")
	evalCmd.Flags().StringVar(&csvOut, "csv", "", "write the curve to a csv file")
	evalCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "list compute backends",
		Run:   runBackends,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list parameter presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPresets,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive parameter explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(evalCmd, backendsCmd, presetsCmd, exploreCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveConfig(modelName string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(modelName, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for model %q", preset, modelName)
		}
		cfg.ZMax = p.ZMax
		cfg.GridPoints = p.GridPoints
		cfg.Params = make(map[string]float64, len(p.Params))
		for k, v := range p.Params {
			cfg.Params[k] = v
		}
	}
	cfg.Model = modelName

	if backendName != "" {
		cfg.Backend = backendName
	}
	if zMax > 0 {
		cfg.ZMax = zMax
	}
	if gridPoints > 0 {
		cfg.GridPoints = gridPoints
	}
	for _, flag := range paramFlags {
		key, raw, ok := strings.Cut(flag, "=")
		if !ok {
			return nil, fmt.Errorf("malformed --param %q, want name=value", flag)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed --param %q: %v", flag, err)
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		cfg.Params[key] = value
	}
	return cfg, nil
}

func runEval(cmd *cobra.Command, args []string) error {
	name := args[0]
	cfg, err := resolveConfig(name)
	if err != nil {
		return err
	}
	if err := compute.SetBackend(cfg.Backend); err != nil {
		return err
	}

	model, err := models.NewRegistry().Get(name, cfg.ZMax)
	if err != nil {
		return err
	}
	samples, density, err := models.Curve(model, name, models.Params(cfg.Params), cfg.ZMax, cfg.GridPoints)
	if err != nil {
		return err
	}

	data := &store.EvalData{
		Model:   name,
		Backend: compute.ActiveName(),
		Params:  cfg.Params,
		Axis:    models.AxisFor(name),
		Samples: samples,
		Density: density,
	}
	switch jsonOut {
	case "":
	case "-":
		if err := store.ExportJSONStdout(data); err != nil {
			return err
		}
	default:
		if err := store.ExportJSON(jsonOut, data); err != nil {
			return err
		}
	}
	if csvOut != "" {
		if err := store.ExportCSV(csvOut, data); err != nil {
			return err
		}
	}

	if !noPlot {
		fmt.Println(asciigraph.Plot(density,
			asciigraph.Height(15),
			asciigraph.Width(72),
			asciigraph.Caption(fmt.Sprintf("%s over %s [%g, %g], backend %s",
				name, data.Axis, samples[0], samples[len(samples)-1], data.Backend)),
		))
	}
	return nil
}

func runBackends(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tACTIVE")
	for _, name := range compute.Supported {
		active := ""
		if name == compute.ActiveName() {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, active)
	}
	w.Flush()
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "MODEL\tPRESET")

	if len(args) == 1 {
		presets := config.ListPresets(args[0])
		if presets == nil {
			return fmt.Errorf("unknown model: %s", args[0])
		}
		for _, p := range presets {
			fmt.Fprintf(w, "%s\t%s\n", args[0], p)
		}
		return nil
	}
	for model, presets := range config.Presets {
		for p := range presets {
			fmt.Fprintf(w, "%s\t%s\n", model, p)
		}
	}
	return nil
}
