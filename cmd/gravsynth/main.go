package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mtelles/gravsynth/internal/config"
	"github.com/mtelles/gravsynth/internal/forward"
	"github.com/mtelles/gravsynth/internal/gridder"
	"github.com/mtelles/gravsynth/internal/pointmass"
)

var (
	x1, x2  float64
	y1, y2  float64
	nx, ny  int
	mode    string
	height  float64
	seed    uint64
	field   string
	verbose bool
	// Config file
	configFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravsynth",
		Short: "synthetic gravity data from prism and sphere models",
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "generate observation points",
		RunE:  runGrid,
	}
	gridCmd.Flags().Float64Var(&x1, "x1", 0, "region west bound")
	gridCmd.Flags().Float64Var(&x2, "x2", 5000, "region east bound")
	gridCmd.Flags().Float64Var(&y1, "y1", 0, "region south bound")
	gridCmd.Flags().Float64Var(&y2, "y2", 5000, "region north bound")
	gridCmd.Flags().IntVar(&nx, "nx", 11, "points along x")
	gridCmd.Flags().IntVar(&ny, "ny", 11, "points along y")
	gridCmd.Flags().StringVar(&mode, "mode", "regular", "point distribution (regular|random)")
	gridCmd.Flags().Float64Var(&height, "height", 150, "observation height")
	gridCmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "random seed")

	forwardCmd := &cobra.Command{
		Use:   "forward",
		Short: "compute a field component over a model",
		RunE:  runForward,
	}
	forwardCmd.Flags().StringVar(&configFile, "config", "", "model file path (yaml)")
	forwardCmd.Flags().StringVar(&field, "field", "", "field component override (gz, gxx, ...)")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultModel())
		},
	}

	rootCmd.AddCommand(gridCmd, forwardCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}

func runGrid(cmd *cobra.Command, args []string) error {
	m, err := gridder.ParseMode(mode)
	if err != nil {
		return err
	}

	obs, err := gridder.Build(gridder.Params{
		X1: x1, X2: x2, Y1: y1, Y2: y2,
		NX: nx, NY: ny,
		Mode:   m,
		Height: height,
		Seed:   seed,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "x\ty\tz")
	for i := 0; i < obs.Len(); i++ {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\n", obs.X[i], obs.Y[i], obs.Z[i])
	}
	return w.Flush()
}

func runForward(cmd *cobra.Command, args []string) error {
	model := config.DefaultModel()
	if configFile != "" {
		var err error
		model, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	if field != "" {
		model.Field = field
	}

	comp, err := model.Component()
	if err != nil {
		return err
	}
	params, err := model.GridParams()
	if err != nil {
		return err
	}
	obs, err := gridder.Build(params)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("generating synthetic data",
		zap.Stringer("component", comp),
		zap.String("mode", model.Mode),
		zap.Int("points", obs.Len()))

	if prisms := model.PrismBodies(); len(prisms) > 0 {
		data, err := forward.FromPrisms(obs, prisms, comp, pointmass.Prisms(), forward.WithLogger(log))
		if err != nil {
			return err
		}
		if err := printField(fmt.Sprintf("prisms (%d)", len(prisms)), comp, data); err != nil {
			return err
		}
	}

	if spheres := model.SphereBodies(); len(spheres) > 0 {
		data, err := forward.FromSpheres(obs, spheres, comp, pointmass.Spheres(), forward.WithLogger(log))
		if err != nil {
			return err
		}
		if err := printField(fmt.Sprintf("spheres (%d)", len(spheres)), comp, data); err != nil {
			return err
		}
	}

	return nil
}

func printField(title string, comp forward.Component, data *forward.FieldData) error {
	fmt.Printf("%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "x\ty\tz\t%s\n", comp)
	for i := 0; i < data.Len(); i++ {
		fmt.Fprintf(w, "%.2f\t%.2f\t%.2f\t%.6g\n", data.X[i], data.Y[i], data.Z[i], data.Value[i])
	}
	return w.Flush()
}
