package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/san-kum/siunits/internal/config"
	"github.com/san-kum/siunits/internal/quantity"
	"github.com/san-kum/siunits/internal/si"
	"github.com/san-kum/siunits/internal/storage"
	"github.com/san-kum/siunits/internal/unit"
	"github.com/san-kum/siunits/internal/viz"
)

var (
	configFile string
	presets    []string
	verbose    bool
	theme      string
	// calc
	castTo string
	// units
	showGenerated bool
	// sweep
	sweepMin    float64
	sweepMax    float64
	sweepPoints int
	// vector
	vectorTo   string
	vectorPlot bool
	layout     string
	precision  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "siunits",
		Short:        "SI quantities, units and conversions",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := setup()
			if err != nil {
				return err
			}
			return viz.RunConverter(reg, viz.GetTheme(theme))
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&presets, "preset", nil, "apply unit presets (see presets command)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log registry activity to stderr")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "cyberpunk", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	convertCmd := &cobra.Command{
		Use:   "convert [value] [unit] [target]",
		Short: "convert a value between units",
		Long:  "convert a value between units; without a target the standard unit of the family is used.\noffset units such as °C and °F are read as temperatures on their scale, not as differences",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVar(&precision, "precision", "", "float32 or float64 (default from config)")

	calcCmd := &cobra.Command{
		Use:   "calc [quantity] [+|-|*|/] [quantity]",
		Short: "combine two quantities",
		Args:  cobra.ExactArgs(3),
		RunE:  runCalc,
	}
	calcCmd.Flags().StringVar(&castTo, "as", "", "cast the result to a unit of the same dimensions")

	dimCmd := &cobra.Command{
		Use:   "dim [dimensions]",
		Short: "parse an SI dimension string",
		Args:  cobra.ExactArgs(1),
		RunE:  runDim,
	}

	unitsCmd := &cobra.Command{
		Use:   "units [family]",
		Short: "list families or the units of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runUnits,
	}
	unitsCmd.Flags().BoolVar(&showGenerated, "all", false, "include generated prefixed units")

	sweepCmd := &cobra.Command{
		Use:   "sweep [from] [to]",
		Short: "plot a conversion over a range",
		Args:  cobra.ExactArgs(2),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0, "range start")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 100, "range end")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 0, "number of points (default from config)")

	vectorCmd := &cobra.Command{
		Use:   "vector [unit] [values...]",
		Short: "convert and summarize a vector of values",
		Args:  cobra.MinimumNArgs(2),
		RunE:  runVector,
	}
	vectorCmd.Flags().StringVar(&vectorTo, "to", "", "display unit")
	vectorCmd.Flags().StringVar(&layout, "layout", "", "dense or sparse (default from config)")
	vectorCmd.Flags().StringVar(&precision, "precision", "", "float32 or float64 (default from config)")
	vectorCmd.Flags().BoolVar(&vectorPlot, "plot", false, "plot the values")

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "interactive converter",
		RunE:  rootCmd.RunE,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available unit presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tUNITS")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				abbrevs := make([]string, len(p.Units))
				for i, u := range p.Units {
					abbrevs[i] = u.Abbreviation
				}
				fmt.Fprintf(w, "%s\t%s\n", name, strings.Join(abbrevs, " "))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(convertCmd, calcCmd, dimCmd, unitsCmd, sweepCmd, vectorCmd, interactiveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the registry from the built-in families, the config file and
// the requested presets.
func setup() (*unit.Registry, *config.Config, error) {
	var opts []unit.Option
	if verbose {
		log := funcr.New(func(prefix, args string) {
			fmt.Fprintln(os.Stderr, prefix, args)
		}, funcr.Options{Verbosity: 2})
		opts = append(opts, unit.WithLogger(log.WithName("siunits")))
	}
	reg := unit.NewDefaultRegistry(opts...)

	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg.Presets = append(cfg.Presets, presets...)
	if err := cfg.Apply(reg); err != nil {
		return nil, nil, err
	}
	if precision != "" {
		cfg.Precision = precision
	}
	if layout != "" {
		cfg.Layout = layout
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return reg, cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	reg, cfg, err := setup()
	if err != nil {
		return err
	}
	text := args[0] + " " + args[1]
	target := ""
	if len(args) == 3 {
		target = args[2]
	}

	var out string
	if cfg.Precision == "float32" {
		out, err = convert[float32](reg, text, target)
	} else {
		out, err = convert[float64](reg, text, target)
	}
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func convert[T storage.Float](reg *unit.Registry, text, target string) (string, error) {
	_, res, err := quantity.ConvertText[T](reg, text, target)
	if err != nil {
		return "", err
	}
	return quantity.Format(res), nil
}

func runCalc(cmd *cobra.Command, args []string) error {
	reg, _, err := setup()
	if err != nil {
		return err
	}
	a, err := quantity.Parse[float64](reg, args[0])
	if err != nil {
		return err
	}
	b, err := quantity.Parse[float64](reg, args[2])
	if err != nil {
		return err
	}

	var res quantity.Scalar[float64]
	switch args[1] {
	case "+":
		res, err = a.Plus(b)
	case "-":
		res, err = a.Minus(b)
	case "*", "x":
		res, err = a.Times(b)
	case "/":
		res, err = a.Divide(b)
	default:
		return fmt.Errorf("unknown operator %q (use + - * /)", args[1])
	}
	if err != nil {
		return err
	}

	if castTo != "" {
		target, err := reg.Unit(castTo)
		if err != nil {
			return err
		}
		if res, err = res.As(target); err != nil {
			return err
		}
	}

	family := res.Unit().Family()
	fmt.Printf("%s\n", quantity.Format(res))
	fmt.Printf("  family:     %s (%s)\n", family.Name(), res.Kind())
	fmt.Printf("  dimensions: %s\n", res.Dimensions())
	if !res.Unit().IsStandard() {
		std, err := res.InUnit(res.Unit().Standard())
		if err != nil {
			return err
		}
		fmt.Printf("  standard:   %s\n", std)
	}
	return nil
}

func runDim(cmd *cobra.Command, args []string) error {
	reg, _, err := setup()
	if err != nil {
		return err
	}
	dims, err := si.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("dimensions: %s\n", dims)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
	for b := si.Base(0); b < si.NumBases; b++ {
		if e := dims.Exponent(b); e != 0 {
			fmt.Fprintf(w, "  %s\t%s\t%d\n", b.Symbol(), b, e)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if f, ok := reg.FamilyFor(dims); ok {
		fmt.Printf("family:     %s (standard %s)\n", f.Name(), f.Standard())
	} else {
		fmt.Printf("family:     none (anonymous %s)\n", reg.LookupOrCreate(dims))
	}
	return nil
}

func runUnits(cmd *cobra.Command, args []string) error {
	reg, _, err := setup()
	if err != nil {
		return err
	}
	st := viz.NewStyles(viz.GetTheme(theme))
	if len(args) == 0 {
		fmt.Println(viz.FamilyTable(reg, st))
		return nil
	}
	f, err := reg.Family(args[0])
	if err != nil {
		return err
	}
	fmt.Println(viz.UnitTable(f, st, showGenerated))
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	reg, cfg, err := setup()
	if err != nil {
		return err
	}
	from, err := reg.Unit(args[0])
	if err != nil {
		return err
	}
	to, err := reg.Unit(args[1])
	if err != nil {
		return err
	}
	opts := viz.PlotOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height, Points: cfg.Plot.Points}
	if sweepPoints > 0 {
		opts.Points = sweepPoints
	}
	graph, err := viz.PlotConversion(from, to, sweepMin, sweepMax, opts)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func runVector(cmd *cobra.Command, args []string) error {
	reg, cfg, err := setup()
	if err != nil {
		return err
	}
	u, err := reg.Unit(args[0])
	if err != nil {
		return err
	}
	opts := viz.PlotOptions{Width: cfg.Plot.Width, Height: cfg.Plot.Height, Points: cfg.Plot.Points}
	if cfg.Precision == "float32" {
		return printVector[float32](reg, u, args[1:], cfg.StorageLayout(), opts)
	}
	return printVector[float64](reg, u, args[1:], cfg.StorageLayout(), opts)
}

func printVector[T storage.Float](reg *unit.Registry, u *unit.Unit, fields []string, l storage.Layout, opts viz.PlotOptions) error {
	bits := 64
	var zero T
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}
	values := make([]T, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, bits)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		values[i] = T(x)
	}

	v, err := quantity.NewVector(values, u, l)
	if err != nil {
		return err
	}
	if vectorTo != "" {
		to, err := reg.Unit(vectorTo)
		if err != nil {
			return err
		}
		if v, err = v.InUnit(to); err != nil {
			return err
		}
	}

	fmt.Println(v)
	fmt.Printf("  layout:      %s (%d stored)\n", v.Layout(), v.Cardinality())
	if sum, err := v.Sum(); err == nil {
		fmt.Printf("  sum:         %s\n", sum)
	}
	if vectorPlot {
		graph, err := viz.PlotVector(v, opts)
		if err != nil {
			return err
		}
		fmt.Println(graph)
	}
	return nil
}
