package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	pushoverFlags projectFlags
	pushoverDirection  string
	pushoverSteps int
	pushoverMult  float64
)

var pushoverCmd = &cobra.Command{
	Use:   "pushover",
	Short: "Run a lateral or axial pushover of a project",
	Long: `Scale the project head loads linearly up to a maximum multiplier and
record the head load against displacement at each converged step.

Examples:
  gopile pushover -f pier3.yaml
  gopile pushover -f pier3.yaml --direction axial --steps 30 --max-mult 4
  gopile pushover -f pier3.yaml -o pushover.png`,
	RunE: runPushover,
}

func init() {
	rootCmd.AddCommand(pushoverCmd)
	pushoverFlags.register(pushoverCmd)
	pushoverCmd.Flags().StringVar(&pushoverDirection, "direction", "lateral", "Pushover direction: lateral or axial")
	pushoverCmd.Flags().IntVar(&pushoverSteps, "steps", bnwf.DefaultPushoverSteps, "Number of load steps")
	pushoverCmd.Flags().Float64Var(&pushoverMult, "max-mult", bnwf.DefaultPushoverMult, "Final load multiplier")
}

func runPushover(cmd *cobra.Command, args []string) error {
	var kind bnwf.LoadType
	switch pushoverDirection {
	case "lateral":
		kind = bnwf.PushoverLateral
	case "axial":
		kind = bnwf.PushoverAxial
	default:
		return fmt.Errorf("--direction must be lateral or axial, got %q", pushoverDirection)
	}
	if pushoverSteps < 1 {
		return fmt.Errorf("--steps must be >= 1, got %d", pushoverSteps)
	}
	if !(pushoverMult > 0) {
		return fmt.Errorf("--max-mult must be positive, got %g", pushoverMult)
	}

	s, err := newSession(pushoverFlags.file)
	if err != nil {
		return err
	}
	loads := s.project.Loads
	loads.Type = kind
	loads.PushoverSteps = pushoverSteps
	loads.PushoverMaxMult = pushoverMult
	r := s.solve(loads)

	f := pushoverFlags
	if f.json || r.Pushover == nil {
		return report(s, loads, r, f)
	}

	printHeader("PILE PUSHOVER - "+pushoverDirection, s.project)
	printInput(s, loads)
	printStatus(r)
	printPushover(r.Pushover)
	if f.diagram {
		fmt.Print(diagram.DrawPushover(r.Pushover))
		fmt.Println()
	}
	if f.output != "" {
		if err := diagram.ExportPushover(r.Pushover, f.output); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Diagram exported to: %s\n\n", f.output)
		}
	}
	s.finish()
	return exitOnFailure(r)
}
