// derivbench exercises the differential operators against analytic
// fields: it binds a scheme configuration the way a simulation would,
// then reports discretization errors over a sequence of resolutions so
// a configuration change can be sanity-checked before a long run.
package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/structgrid/derivops/deriv"
	"github.com/structgrid/derivops/grid"
)

var (
	cfgFile string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "derivbench",
		Short: "Convergence diagnostics for the differential operators",
	}

	convergeCmd = &cobra.Command{
		Use:   "converge",
		Short: "Run analytic convergence checks over a resolution sweep",
		RunE:  runConverge,
	}

	methodsCmd = &cobra.Command{
		Use:   "methods",
		Short: "Bind the configuration and log the resolved methods",
		RunE:  runMethods,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scheme configuration file (YAML/TOML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(convergeCmd, methodsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig decodes the scheme selection from the configuration file,
// or returns the zero Config (table defaults everywhere) without one.
func loadConfig() (cfg deriv.Config, err error) {
	if cfgFile == "" {
		return cfg, nil
	}
	viper.SetConfigFile(cfgFile)
	if err = viper.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading %s: %w", cfgFile, err)
	}
	if err = viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func runMethods(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	m := grid.NewUniformMesh(8, 8, 16, 0.1, 0.1, 0.1)
	m.StaggerGrids = true // bind the staggered tables too
	if _, err = deriv.NewOperators(m, cfg, log); err != nil {
		log.Error("configuration rejected", "error", err)
		os.Exit(1)
	}
	return nil
}

func runConverge(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var prevX, prevZ float64
	for _, n := range []int{16, 32, 64, 128} {
		m := grid.NewUniformMesh(n, 4, n, 1.0/float64(n), 1.0, 2.0*math.Pi/float64(n))
		ops, err := deriv.NewOperators(m, cfg, log)
		if err != nil {
			log.Error("configuration rejected", "error", err)
			os.Exit(1)
		}

		errX := xDerivError(ops, m)
		errZ := zDerivError(ops, m)

		orderX, orderZ := "-", "-"
		if prevX > 0 {
			orderX = fmt.Sprintf("%.2f", math.Log2(prevX/errX))
			orderZ = fmt.Sprintf("%.2f", math.Log2(prevZ/errZ))
		}
		fmt.Printf("n=%4d  ddx err=%.3e order=%s  ddz err=%.3e order=%s\n",
			n, errX, orderX, errZ, orderZ)
		prevX, prevZ = errX, errZ
	}
	return nil
}

// xDerivError fills f = sin(2*pi*x) on the unit x interval (guards
// included) and returns the max interior error of DDX against the
// analytic derivative.
func xDerivError(ops *deriv.Operators, m *grid.Mesh) float64 {
	f := grid.NewField3D(m)
	for jx := 0; jx < m.Ngx; jx++ {
		x := (float64(jx-m.Xstart) + 0.5) * m.Dx.At(jx, 0)
		for jy := 0; jy < m.Ngy; jy++ {
			for jz := 0; jz < m.Ngz; jz++ {
				f.Set(jx, jy, jz, math.Sin(2.0*math.Pi*x))
			}
		}
	}
	d := ops.DDX(f, grid.Deflt, deriv.MethodDefault)
	errs := make([]float64, 0, m.Xend-m.Xstart+1)
	for jx := m.Xstart; jx <= m.Xend; jx++ {
		x := (float64(jx-m.Xstart) + 0.5) * m.Dx.At(jx, 0)
		want := 2.0 * math.Pi * math.Cos(2.0*math.Pi*x)
		errs = append(errs, math.Abs(d.At(jx, m.Ystart, 0)-want))
	}
	return floats.Max(errs)
}

// zDerivError does the same for DDZ with f = sin(z) on [0, 2*pi).
func zDerivError(ops *deriv.Operators, m *grid.Mesh) float64 {
	f := grid.NewField3D(m)
	for jx := 0; jx < m.Ngx; jx++ {
		for jy := 0; jy < m.Ngy; jy++ {
			for jz := 0; jz < m.Ngz; jz++ {
				f.Set(jx, jy, jz, math.Sin(float64(jz)*m.Dz))
			}
		}
	}
	d := ops.DDZ(f, grid.Deflt, deriv.MethodDefault, false)
	errs := make([]float64, m.Ncz())
	for jz := range errs {
		want := math.Cos(float64(jz) * m.Dz)
		errs[jz] = math.Abs(d.At(m.Xstart, m.Ystart, jz) - want)
	}
	return floats.Max(errs)
}
