package cmd

import (
	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/spf13/cobra"
)

var bucklingFlags projectFlags

var bucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "Estimate the critical buckling load of a pile",
	Long: `Estimate the Euler buckling load from an equivalent fixity depth. The
fixity depth follows Davisson and Robinson from the subgrade modulus of the
top layer; the effective length factor is 2 for a free head and 1 for a
fixed head.

Examples:
  gopile buckling -f pier3.yaml
  gopile buckling -f pier3.yaml --head fixed`,
	RunE: runBuckling,
}

func init() {
	rootCmd.AddCommand(bucklingCmd)
	bucklingFlags.registerInput(bucklingCmd)
}

func runBuckling(cmd *cobra.Command, args []string) error {
	s, err := newSession(bucklingFlags.file)
	if err != nil {
		return err
	}
	loads := s.project.Loads
	loads.Type = bnwf.Static
	r := s.solve(loads)

	if bucklingFlags.json {
		return printJSON(struct {
			PCritical *float64 `json:"p_critical_lbs"`
		}{r.PCritical})
	}

	printHeader("PILE BUCKLING ESTIMATE", s.project)
	printBuckling(r.PCritical)
	if r.PCritical != nil && loads.Axial > 0 {
		ratio := loads.Axial / *r.PCritical
		status := "✓"
		if ratio > 1 {
			status = "⚠ axial load exceeds the estimate"
		}
		printRatio(ratio, status)
	}
	s.finish()
	return nil
}
