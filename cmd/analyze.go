package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/diagram"
	"github.com/spf13/cobra"
)

var analyzeFlags projectFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the analysis described by a project file",
	Long: `Analyze a single pile under the head loads of a project file.

The load_type of the project selects a static solve or a lateral / axial
pushover. The report includes head displacements, the maximum moment and
its depth, the pile head stiffness matrix and a buckling estimate.

Examples:
  gopile analyze --file pier3.yaml
  gopile analyze -f pier3.yaml --diagram
  gopile analyze -f pier3.yaml --head fixed --elements 80 -o profiles.png
  gopile analyze -f pier3.json --json`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeFlags.register(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s, err := newSession(analyzeFlags.file)
	if err != nil {
		return err
	}
	loads := s.project.Loads
	r := s.solve(loads)
	return report(s, loads, r, analyzeFlags)
}

// report prints a full result in the format selected by the flags
func report(s *session, loads bnwf.Loads, r *bnwf.Result, f projectFlags) error {
	if f.json {
		if err := printJSON(r); err != nil {
			return err
		}
		return exitOnFailure(r)
	}

	title := "PILE ANALYSIS - STATIC"
	if loads.Type.IsPushover() {
		title = "PILE ANALYSIS - PUSHOVER"
	}
	printHeader(title, s.project)
	printInput(s, loads)
	printStatus(r)
	if len(r.Depth) > 0 {
		printResponse(r)
		printProfileTable(r)
	}
	if r.Pushover != nil {
		printPushover(r.Pushover)
	}
	printStiffness(r.HeadStiffness)
	printBuckling(r.PCritical)

	lines := []string{
		fmt.Sprintf("y_ground = %.4f in", r.YGroundLateral),
		fmt.Sprintf("M_max = %.1f ft-lbs at %.2f ft", r.MMax, r.DepthMMax),
		fmt.Sprintf("state: %s after %d iterations", r.State, r.Iterations),
	}
	fmt.Print(diagram.DrawSummaryBox("RESULT", lines))
	fmt.Println()

	if f.diagram {
		fmt.Print(diagram.DrawResult(r))
		if r.Pushover != nil {
			fmt.Print(diagram.DrawPushover(r.Pushover))
		}
	}
	if f.output != "" && len(r.Depth) > 0 {
		if err := diagram.ExportProfiles(r, f.output); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Diagram exported to: %s\n\n", f.output)
		}
	}

	s.finish()
	return exitOnFailure(r)
}

func printPushover(p *bnwf.Pushover) {
	fmt.Printf("PUSHOVER (%s):\n", p.Axis)
	fmt.Println(subRule)
	for i := range p.Load {
		fmt.Printf("  %3d  %12.1f lbs  %10.4f in\n", i+1, p.Load[i], p.Disp[i])
	}
	fmt.Println()
}
