package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/curve"
	"github.com/alexiusacademia/gopile/internal/diagram"
	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/spf13/cobra"
)

var (
	curvesFlags  projectFlags
	curvesKind   string
	curvesDepths []float64
)

var curvesCmd = &cobra.Command{
	Use:   "curves",
	Short: "Generate soil spring curves for a project",
	Long: `Generate the p-y, t-z or q-z spring curves the solver would use for a
project's pile and soil profile. Depths are in feet below the ground line;
the q-z curve is always generated at the pile tip.

Examples:
  gopile curves -f pier3.yaml
  gopile curves -f pier3.yaml --kind t-z --depths 2,6,10,20
  gopile curves -f pier3.yaml --kind p-y --diagram -o py.png`,
	RunE: runCurves,
}

func init() {
	rootCmd.AddCommand(curvesCmd)
	curvesFlags.register(curvesCmd)
	curvesCmd.Flags().StringVar(&curvesKind, "kind", string(curve.PY), "Curve kind: p-y, t-z or q-z")
	curvesCmd.Flags().Float64SliceVar(&curvesDepths, "depths", []float64{1, 3, 5, 8, 10}, "Depths (ft) for p-y and t-z curves")
}

func runCurves(cmd *cobra.Command, args []string) error {
	kind := curve.Kind(curvesKind)
	switch kind {
	case curve.PY, curve.TZ, curve.QZ:
	default:
		return fmt.Errorf("--kind must be p-y, t-z or q-z, got %q", curvesKind)
	}

	s, err := newSession(curvesFlags.file)
	if err != nil {
		return err
	}
	p := s.project
	gen := &curve.Generator{
		Profile:      p.Profile,
		Width:        p.Section.BendingWidth(s.opts.BendingAxis),
		Perimeter:    p.Section.Perimeter,
		TipArea:      p.Section.TipArea,
		Installation: s.opts.Installation,
		Cyclic:       s.opts.Cyclic,
		Cache:        curve.NewCache(),
	}

	var curves []*curve.Curve
	switch kind {
	case curve.QZ:
		curves = append(curves, gen.QZ(p.Embedment))
	default:
		for _, z := range curvesDepths {
			if z > p.Embedment {
				s.log.Info("skipping depth below the pile tip", "depth", z, "embedment", p.Embedment)
				continue
			}
			if kind == curve.PY {
				curves = append(curves, gen.PY(z))
			} else {
				curves = append(curves, gen.TZ(z))
			}
		}
	}
	s.log.V(logging.DEBUG).Info("curves generated", "kind", kind, "count", len(curves))

	if curvesFlags.json {
		return printJSON(curves)
	}

	printHeader(fmt.Sprintf("SOIL SPRING CURVES (%s)", kind), p)
	for _, c := range curves {
		printCurve(c)
		if curvesFlags.diagram {
			fmt.Print(diagram.DrawCurve(c))
			fmt.Println()
		}
	}
	if curvesFlags.output != "" {
		if err := diagram.ExportCurves(curves, curvesFlags.output); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("  Diagram exported to: %s\n\n", curvesFlags.output)
		}
	}
	return nil
}

func printCurve(c *curve.Curve) {
	fmt.Printf("%s AT %.2f ft - %s:\n", c.Kind, c.Depth, c.Method)
	fmt.Println(subRule)
	if c.IsNull() {
		fmt.Println("  no resistance (null curve)")
		fmt.Println()
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Ultimate:\t%.2f\n", c.Ultimate)
	fmt.Fprintf(w, "  Initial stiffness:\t%.2f\n", c.InitialStiffness())
	w.Flush()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  y (in)\tresistance\t\n")
	step := len(c.Disp) / 10
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(c.Disp); i += step {
		fmt.Fprintf(w, "  %.4f\t%.2f\t\n", c.Disp[i], c.Resist[i])
	}
	last := len(c.Disp) - 1
	if last%step != 0 {
		fmt.Fprintf(w, "  %.4f\t%.2f\t\n", c.Disp[last], c.Resist[last])
	}
	w.Flush()
	fmt.Println()
}
