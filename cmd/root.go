package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gopile/internal/config"
	"github.com/alexiusacademia/gopile/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	showMetrics bool
	settings    = config.New()
)

var rootCmd = &cobra.Command{
	Use:   "gopile",
	Short: "Laterally and axially loaded pile analysis tool",
	Long: `gopile - Go Beam on Nonlinear Winkler Foundation pile analyzer

A CLI tool for the analysis of single piles in layered soil using
nonlinear p-y, t-z and q-z soil springs (API RP 2A / 2GEO).

This tool helps geotechnical and structural engineers perform:
  - Static analysis under combined axial, lateral and moment head loads
  - Lateral and axial pushover analysis
  - Pile head stiffness matrices for superstructure models
  - Buckling load estimates
  - Soil spring curve generation

Project files are YAML or JSON. Solver defaults come from an optional
config file and GOPILE_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(settings, cmd.Flags())
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopile v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam on Nonlinear Winkler Foundation Pile Analyzer   ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Matlock soft clay and API sand p-y curves")
		fmt.Println("    • API clay and sand t-z and q-z curves")
		fmt.Println("    • P-delta beam-column elements on nonlinear springs")
		fmt.Println("    • Pushover, head stiffness and buckling estimates")
		fmt.Println()
		fmt.Println("  Use 'gopile --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (yaml, json or toml)")
	pf.String("log-level", "info", "Log verbosity: info, debug or trace")
	pf.Bool("log-dev", false, "Human readable development logging")
	pf.BoolVar(&showMetrics, "metrics", false, "Print solver metrics in Prometheus text format")

	pf.Int("elements", 0, "Number of beam-column elements")
	pf.Int("max-iter", 0, "Maximum nonlinear iterations")
	pf.Float64("tolerance", 0, "Relative displacement convergence tolerance")
	pf.String("head", "", "Head condition: free or fixed")
	pf.String("axis", "", "Bending axis: strong or weak")
	pf.Bool("cyclic", false, "Use cyclic p-y curves")
	pf.Bool("p-delta", true, "Include geometric (P-delta) stiffness")
	pf.String("backend", "", "Solver backend: auto, direct or external")
}

// flagKeys maps persistent flags to configuration keys
var flagKeys = map[string]string{
	"log-level": "log.level",
	"log-dev":   "log.development",
	"elements":  "solver.elements",
	"max-iter":  "solver.max_iterations",
	"tolerance": "solver.tolerance",
	"head":      "solver.head",
	"axis":      "solver.axis",
	"cyclic":    "solver.cyclic",
	"p-delta":   "solver.p_delta",
	"backend":   "solver.backend",
}

// bindFlags binds the flags the user set on the command line so they take
// precedence over the config file and environment.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}
