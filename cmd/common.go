package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/config"
	"github.com/alexiusacademia/gopile/internal/logging"
	"github.com/alexiusacademia/gopile/internal/metrics"
	"github.com/alexiusacademia/gopile/internal/project"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

const (
	rule    = "═══════════════════════════════════════════════════════════════"
	subRule = "───────────────────────────────────────────────────────────────"
)

// session is everything a command needs to run one project
type session struct {
	cfg      *config.Config
	log      logr.Logger
	recorder *metrics.Recorder
	solver   bnwf.Solver
	project  *project.Project
	opts     bnwf.Options
}

// projectFlags are the input and output flags shared by the analysis commands
type projectFlags struct {
	file    string
	json    bool
	diagram bool
	output  string
}

// registerInput adds the project file and JSON output flags
func (f *projectFlags) registerInput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to project file (yaml or json) [required]")
	cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the result as JSON")
}

// register adds the input flags plus the diagram options
func (f *projectFlags) register(cmd *cobra.Command) {
	f.registerInput(cmd)
	cmd.Flags().BoolVar(&f.diagram, "diagram", false, "Show ASCII diagrams")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

// newSession loads configuration and the project and wires the solver
func newSession(file string) (*session, error) {
	cfg, err := config.Load(settings, cfgFile)
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	log, err := logging.NewLogger(level, cfg.Log.Development)
	if err != nil {
		return nil, err
	}

	p, err := project.Load(file)
	if err != nil {
		return nil, err
	}
	log.V(logging.DEBUG).Info("project loaded", "path", p.Path, "layers", p.Profile.Len(), "section", p.Section.Name)

	recorder := metrics.NewRecorder()
	direct := bnwf.NewDirect()
	direct.Log = log.WithName("direct")
	direct.Recorder = recorder
	facade := bnwf.NewFacade(direct)
	facade.Log = log.WithName("facade")

	return &session{
		cfg:      cfg,
		log:      log,
		recorder: recorder,
		solver:   facade,
		project:  p,
		opts:     p.Options(cfg.Options()),
	}, nil
}

func (s *session) solve(loads bnwf.Loads) *bnwf.Result {
	p := s.project
	return s.solver.Solve(p.Profile, p.Section, p.Embedment, loads, s.opts)
}

// finish prints the metrics exposition when requested
func (s *session) finish() {
	if !showMetrics {
		return
	}
	fmt.Println("METRICS:")
	fmt.Println(subRule)
	if err := s.recorder.WriteText(os.Stdout); err != nil {
		fmt.Printf("Error writing metrics: %v\n", err)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printHeader(title string, p *project.Project) {
	fmt.Println()
	fmt.Println(rule)
	fmt.Printf("     %s\n", title)
	fmt.Println(rule)
	fmt.Println()
	if p.Name != "" {
		fmt.Printf("  Project: %s\n", p.Name)
	}
	fmt.Printf("  Source: %s\n", p.Path)
	fmt.Println()
}

func printInput(s *session, loads bnwf.Loads) {
	p := s.project
	fmt.Println("PILE AND SOIL:")
	fmt.Println(subRule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Section:\t%s (%s)\n", p.Section.Name, p.Section.Shape)
	fmt.Fprintf(w, "  Embedment:\t%.2f ft\n", p.Embedment)
	fmt.Fprintf(w, "  EI (%s axis):\t%.4g lb-in²\n", s.opts.BendingAxis, p.Section.EI(s.opts.BendingAxis))
	fmt.Fprintf(w, "  Head:\t%s\n", s.opts.Head)
	fmt.Fprintf(w, "  Loading:\t%s\n", cyclicName(s.opts.Cyclic))
	if wt, ok := p.Profile.WaterTable(); ok {
		fmt.Fprintf(w, "  Water table:\t%.2f ft\n", wt)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tTop (ft)\tBottom (ft)\tType\tγ (pcf)\tφ (deg)\tcu (psf)\n")
	fmt.Fprintf(w, "  ─────\t────────\t───────────\t────\t───────\t───────\t────────\n")
	for i, l := range p.Profile.Layers() {
		fmt.Fprintf(w, "  %d\t%.2f\t%.2f\t%s\t%.1f\t%.1f\t%.0f\n",
			i+1, l.TopDepth, l.BottomDepth(), l.Type, l.UnitWeight(), l.FrictionAngle(), l.UndrainedStrength())
	}
	w.Flush()
	fmt.Println()

	if spt := p.Profile.Correlations(); len(spt) > 0 {
		fmt.Println("SPT CORRELATIONS:")
		fmt.Println(subRule)
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Layer\tz (ft)\tN60\t(N1)60\tφ Hatanaka\tφ Peck\tcu (psf)\tEs (tsf)\n")
		fmt.Fprintf(w, "  ─────\t──────\t───\t──────\t──────────\t──────\t────────\t────────\n")
		for _, c := range spt {
			fmt.Fprintf(w, "  %d\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%.0f\t%.0f\n",
				c.Layer+1, c.Depth, c.N60, c.N160, c.PhiHatanaka, c.PhiPeck, c.Cu, c.Es)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("HEAD LOADS:")
	fmt.Println(subRule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Axial (compression):\t%.1f lbs\n", loads.Axial)
	fmt.Fprintf(w, "  Lateral:\t%.1f lbs\n", loads.Lateral)
	fmt.Fprintf(w, "  Moment:\t%.1f ft-lbs\n", loads.Moment)
	w.Flush()
	fmt.Println()
}

func printStatus(r *bnwf.Result) {
	fmt.Println("STATUS:")
	fmt.Println(subRule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Solver:\t%s\n", r.Solver)
	fmt.Fprintf(w, "  State:\t%s\n", r.State)
	fmt.Fprintf(w, "  Iterations:\t%d\n", r.Iterations)
	w.Flush()
	for _, n := range r.Notes {
		fmt.Printf("  • %s\n", n)
	}
	fmt.Println()
}

func printResponse(r *bnwf.Result) {
	fmt.Println("HEAD RESPONSE:")
	fmt.Println(subRule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Lateral deflection:\t%.4f in\n", r.YGroundLateral)
	fmt.Fprintf(w, "  Axial displacement (up):\t%.4f in\n", r.YGroundAxial)
	if len(r.Rotation) > 0 {
		fmt.Fprintf(w, "  Rotation:\t%.6f rad\n", r.Rotation[0])
	}
	fmt.Fprintf(w, "  Maximum moment:\t%.1f ft-lbs at %.2f ft\n", r.MMax, r.DepthMMax)
	if r.YieldRatio != nil {
		status := "✓"
		if *r.YieldRatio > 1 {
			status = "⚠ exceeds yield"
		}
		fmt.Fprintf(w, "  M_max / M_y:\t%.3f %s\n", *r.YieldRatio, status)
	}
	fmt.Fprintf(w, "  Tip reaction q:\t%.1f lbs\n", r.TipQ)
	w.Flush()
	fmt.Println()
}

func printProfileTable(r *bnwf.Result) {
	fmt.Println("DEPTH PROFILE:")
	fmt.Println(subRule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  z (ft)\ty (in)\tM (ft-lbs)\tV (lbs)\tP (lbs)\tp (lb/in)\tt (lb/in)\t\n")
	step := 1
	if len(r.Depth) > 26 {
		step = len(r.Depth) / 25
	}
	for i := 0; i < len(r.Depth); i += step {
		fmt.Fprintf(w, "  %.2f\t%.4f\t%.1f\t%.1f\t%.1f\t%.2f\t%.2f\t\n",
			r.Depth[i], r.DeflectionLateral[i], r.Moment[i], r.Shear[i], r.AxialForce[i], r.SoilP[i], r.SoilT[i])
	}
	w.Flush()
	fmt.Println()
}

func printStiffness(k *[3][3]float64) {
	fmt.Println("PILE HEAD STIFFNESS:")
	fmt.Println(subRule)
	if k == nil {
		fmt.Println("  not computed")
		fmt.Println()
		return
	}
	labels := [3]string{"axial (lb/in)", "lateral (lb/in)", "rocking (in-lb/rad)"}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  \tu\tv\tθ\t\n")
	for i := range k {
		fmt.Fprintf(w, "  %s\t%.4g\t%.4g\t%.4g\t\n", labels[i], k[i][0], k[i][1], k[i][2])
	}
	w.Flush()
	fmt.Println()
}

func printBuckling(pcr *float64) {
	fmt.Println("BUCKLING:")
	fmt.Println(subRule)
	if pcr == nil {
		fmt.Println("  not computed (no soil layers)")
	} else {
		fmt.Printf("  Critical axial load P_cr ≈ %.0f lbs\n", *pcr)
	}
	fmt.Println()
}

func printRatio(ratio float64, status string) {
	fmt.Printf("  P / P_cr = %.3f %s\n", ratio, status)
	fmt.Println()
}

func cyclicName(cyclic bool) string {
	if cyclic {
		return "cyclic"
	}
	return "static"
}

// exitOnFailure returns an error for results the solver could not finish
func exitOnFailure(r *bnwf.Result) error {
	if r.Converged {
		return nil
	}
	return fmt.Errorf("analysis did not converge (%s): %s", r.State, strings.Join(r.Notes, "; "))
}
