package cmd

import (
	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/spf13/cobra"
)

var stiffnessFlags projectFlags

var stiffnessCmd = &cobra.Command{
	Use:   "stiffness",
	Short: "Compute the pile head stiffness matrix",
	Long: `Compute the 3x3 pile head stiffness matrix relating axial, lateral and
moment head loads to settlement, lateral deflection and rotation. Each column
comes from a unit-load solve on the free-head pile; the matrix is the inverse
of the symmetrized flexibility.

Examples:
  gopile stiffness -f pier3.yaml
  gopile stiffness -f pier3.yaml --axis weak --json`,
	RunE: runStiffness,
}

func init() {
	rootCmd.AddCommand(stiffnessCmd)
	stiffnessFlags.registerInput(stiffnessCmd)
}

func runStiffness(cmd *cobra.Command, args []string) error {
	s, err := newSession(stiffnessFlags.file)
	if err != nil {
		return err
	}
	loads := s.project.Loads
	loads.Type = bnwf.Static
	r := s.solve(loads)

	if stiffnessFlags.json {
		return printJSON(struct {
			HeadStiffness *[3][3]float64 `json:"k_head"`
			Notes         []string       `json:"notes"`
		}{r.HeadStiffness, r.Notes})
	}

	printHeader("PILE HEAD STIFFNESS", s.project)
	printStiffness(r.HeadStiffness)
	printStatus(r)
	s.finish()
	return nil
}
