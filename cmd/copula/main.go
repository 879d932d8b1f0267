package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/copula/internal/config"
	"github.com/san-kum/copula/internal/copula"
	"github.com/san-kum/copula/internal/export"
	"github.com/san-kum/copula/internal/loglik"
	"github.com/san-kum/copula/internal/viz"
)

var (
	cfgPath   string
	u         float64
	v         float64
	rho       float64
	inputPath string
	jsonOut   string
	csvOut    string
	svgOut    string
	gridMin   float64
	gridMax   float64
	gridSteps int
	workers   int
	width     int
	height    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "copula",
		Short: "Gaussian copula density and CDF evaluation",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "scenario YAML (flags override)")

	densityCmd := &cobra.Command{
		Use:   "density",
		Short: "Evaluate the bivariate copula log density at a point",
		RunE:  runDensity,
	}
	addPointFlags(densityCmd)

	cdfCmd := &cobra.Command{
		Use:   "cdf",
		Short: "Evaluate the bivariate copula CDF at a point",
		RunE:  runCDF,
	}
	addPointFlags(cdfCmd)

	loglikCmd := &cobra.Command{
		Use:   "loglik [pairs.csv]",
		Short: "Accumulate the log-likelihood of a CSV pair sample",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLogLik,
	}
	loglikCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "correlation")
	loglikCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	loglikCmd.Flags().StringVar(&inputPath, "input", "", "CSV input path (alternative to the positional argument)")

	profileCmd := &cobra.Command{
		Use:   "profile [pairs.csv]",
		Short: "Plot the log-likelihood over a correlation grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProfile,
	}
	profileCmd.Flags().Float64Var(&gridMin, "min", config.DefaultGridMin, "grid lower bound")
	profileCmd.Flags().Float64Var(&gridMax, "max", config.DefaultGridMax, "grid upper bound")
	profileCmd.Flags().IntVar(&gridSteps, "steps", config.DefaultSteps, "grid points")
	profileCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	profileCmd.Flags().StringVar(&inputPath, "input", "", "CSV input path (alternative to the positional argument)")
	profileCmd.Flags().StringVar(&jsonOut, "json", "", "also write the sweep to a JSON file")
	profileCmd.Flags().StringVar(&csvOut, "csv", "", "also write the sweep to a CSV file")
	profileCmd.Flags().StringVar(&svgOut, "svg", "", "also write the sweep to an SVG file")

	matrixCmd := &cobra.Command{
		Use:   "matrix [obs.csv]",
		Short: "Multivariate log-likelihood of K-column observations under a configured correlation matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runMatrix,
	}
	matrixCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 = NumCPU)")
	matrixCmd.Flags().StringVar(&inputPath, "input", "", "CSV input path (alternative to the positional argument)")

	surfaceCmd := &cobra.Command{
		Use:   "surface",
		Short: "Render the log density over the unit square",
		RunE:  runSurface,
	}
	surfaceCmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "correlation")
	surfaceCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	surfaceCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "Interactively sweep the correlation",
		RunE:  runExplore,
	}
	exploreCmd.Flags().Float64Var(&rho, "rho", 0, "starting correlation")
	exploreCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "surface width")
	exploreCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "surface height")

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default scenario YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "copula.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(densityCmd, cdfCmd, loglikCmd, profileCmd, matrixCmd, surfaceCmd, exploreCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addPointFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&u, "u", config.DefaultU, "first copula-scale coordinate")
	cmd.Flags().Float64Var(&v, "v", config.DefaultV, "second copula-scale coordinate")
	cmd.Flags().Float64Var(&rho, "rho", config.DefaultRho, "correlation")
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(cfgPath)
}

func runDensity(cmd *cobra.Command, args []string) error {
	lp, err := copula.CheckedBivariateLogPDF(u, v, rho)
	if err != nil {
		return err
	}
	fmt.Printf("log density: %.10f\n", lp)
	fmt.Printf("density:     %.10f\n", math.Exp(lp))
	return nil
}

func runCDF(cmd *cobra.Command, args []string) error {
	p, err := copula.CheckedBivariateCDF(u, v, rho)
	if err != nil {
		return err
	}
	fmt.Printf("CDF: %.10f\n", p)
	return nil
}

func runLogLik(cmd *cobra.Command, args []string) error {
	sample, err := readPairs(pathArg(args))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	total, err := loglik.Accumulate(ctx, sample, rho, workers)
	if err != nil {
		return err
	}
	fmt.Printf("n = %d, rho = %.4f\n", sample.Len(), rho)
	fmt.Printf("log-likelihood: %.10f\n", total)
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	sample, err := readPairs(pathArg(args))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	grid := loglik.Grid{Min: gridMin, Max: gridMax, Steps: gridSteps}
	rhos, lls, err := loglik.Profile(ctx, sample, grid, workers)
	if err != nil {
		return err
	}

	fmt.Println(viz.ProfilePlot(rhos, lls, 80, 14))
	best, bestLL := loglik.ArgMax(rhos, lls)
	fmt.Printf("best rho on grid: %.4f (log-likelihood %.6f)\n", best, bestLL)

	if jsonOut != "" {
		if err := export.ProfileJSON(jsonOut, sample.Len(), rhos, lls); err != nil {
			return err
		}
	}
	if csvOut != "" {
		if err := export.ProfileCSV(csvOut, rhos, lls); err != nil {
			return err
		}
	}
	if svgOut != "" {
		if err := export.ProfileSVG(svgOut, rhos, lls); err != nil {
			return err
		}
	}
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	chol, err := cfg.CholeskyFactor()
	if err != nil {
		return err
	}

	obs, err := readMatrix(pathArg(args))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	total, err := loglik.AccumulateMatrix(ctx, obs, chol, workers)
	if err != nil {
		return err
	}
	_, n := obs.Dims()
	fmt.Printf("n = %d\n", n)
	fmt.Printf("log-likelihood: %.10f\n", total)
	return nil
}

func runSurface(cmd *cobra.Command, args []string) error {
	fmt.Println(viz.Surface(rho, width, height))
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(viz.NewExplore(rho, width, height))
	_, err := p.Run()
	return err
}

func pathArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return inputPath
}

// readPairs loads a two-column CSV of copula-scale pairs. A
// non-numeric first row is treated as a header.
func readPairs(path string) (loglik.PairSample, error) {
	if path == "" {
		return loglik.PairSample{}, fmt.Errorf("no input file given")
	}
	rows, err := readCSV(path)
	if err != nil {
		return loglik.PairSample{}, err
	}

	sample := loglik.PairSample{}
	for _, row := range rows {
		if len(row) < 2 {
			return loglik.PairSample{}, fmt.Errorf("%s: need two columns per row", path)
		}
		sample.U = append(sample.U, row[0])
		sample.V = append(sample.V, row[1])
	}
	return sample, nil
}

// readMatrix loads a CSV with one K-dimensional observation per row
// and returns it as a K x N column matrix.
func readMatrix(path string) (*mat.Dense, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file given")
	}
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty input", path)
	}

	k := len(rows[0])
	obs := mat.NewDense(k, len(rows), nil)
	for j, row := range rows {
		if len(row) != k {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d", path, j+1, len(row), k)
		}
		for i, val := range row {
			obs.Set(i, j, val)
		}
	}
	return obs, nil
}

func readCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	var out [][]float64
	for i, rec := range records {
		row := make([]float64, len(rec))
		numeric := true
		for j, field := range rec {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				if i == 0 {
					numeric = false
					break
				}
				return nil, fmt.Errorf("%s: row %d column %d: %v", path, i+1, j+1, err)
			}
			row[j] = val
		}
		if numeric {
			out = append(out, row)
		}
	}
	return out, nil
}
