package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/project"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile string
	sectionJSON bool
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Compute pile section properties",
	Long: `Compute the properties of a pile cross-section: area, perimeter, tip
area, second moments, section and plastic moduli, bending stiffness and
yield / plastic moment capacities about both axes.

The file holds one section description, the same block used under
"section" in a project file:

  pipe:        {name, diameter, wall, fy}
  wide_flange: {name, d, bf, tf, tw, area, ix, iy, sx, sy, zx, zy, fy, channel}
  outline:     {name, fy, e, vertices: [{x, y}, ...]}   counter-clockwise, inches
  custom:      any explicit set of section properties

Examples:
  gopile section -f pp16.yaml
  gopile section -f t-pile.json --json`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section file (yaml or json) [required]")
	sectionCmd.MarkFlagRequired("file")
	sectionCmd.Flags().BoolVar(&sectionJSON, "json", false, "Print the section as JSON")
}

func runSection(cmd *cobra.Command, args []string) error {
	sec, err := project.LoadSection(sectionFile)
	if err != nil {
		return err
	}
	if sectionJSON {
		return printJSON(sec)
	}

	fmt.Println()
	fmt.Println(rule)
	fmt.Println("     PILE SECTION PROPERTIES")
	fmt.Println(rule)
	fmt.Println()
	fmt.Printf("  Section: %s (%s)\n", sec.Name, sec.Shape)
	fmt.Println()

	fmt.Println("GEOMETRY:")
	fmt.Println(subRule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Depth:\t%.3f in\n", sec.Depth)
	fmt.Fprintf(w, "  Width:\t%.3f in\n", sec.Width)
	fmt.Fprintf(w, "  Area:\t%.3f in²\n", sec.Area)
	fmt.Fprintf(w, "  Perimeter:\t%.3f in\n", sec.Perimeter)
	fmt.Fprintf(w, "  Tip area:\t%.3f in²\n", sec.TipArea)
	fmt.Fprintf(w, "  E:\t%.0f psi\n", sec.Modulus())
	fmt.Fprintf(w, "  Fy:\t%.1f ksi\n", sec.Fy)
	w.Flush()
	fmt.Println()

	fmt.Println("BENDING:")
	fmt.Println(subRule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axis\tI (in⁴)\tEI (lb-in²)\tBending width (in)\tM_y (kip-in)\tM_p (kip-in)\n")
	fmt.Fprintf(w, "  ────\t───────\t───────────\t──────────────────\t────────────\t────────────\n")
	for _, axis := range []section.Axis{section.Strong, section.Weak} {
		i := sec.Ix
		if axis == section.Weak {
			i = sec.Iy
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.4g\t%.3f\t%.1f\t%.1f\n",
			axis, i, sec.EI(axis), sec.BendingWidth(axis), sec.YieldMoment(axis), sec.PlasticMoment(axis))
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Axial stiffness EA = %.4g lbs\n", sec.EA())
	fmt.Println()
	return nil
}
