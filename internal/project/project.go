// Package project reads analysis input files. A project file names the pile
// section, the soil layers, the embedment, the head loads and any per-project
// solver overrides. Files ending in .json are decoded as JSON, anything else
// as YAML.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/section"
	"github.com/alexiusacademia/gopile/internal/soil"
	"gopkg.in/yaml.v3"
)

// Format of a project file
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// File is the on-disk project document
type File struct {
	Name       string       `json:"name" yaml:"name"`
	Embedment  float64      `json:"embedment" yaml:"embedment"`                           // ft
	WaterTable *float64     `json:"water_table,omitempty" yaml:"water_table,omitempty"` // ft below ground
	Section    SectionSpec  `json:"section" yaml:"section"`
	Soil       []soil.Layer `json:"soil" yaml:"soil"`
	Loads      bnwf.Loads   `json:"loads" yaml:"loads"`
	Options    Overrides    `json:"options" yaml:"options"`
}

// SectionSpec holds exactly one way of describing the pile cross-section
type SectionSpec struct {
	Pipe       *PipeSpec        `json:"pipe,omitempty" yaml:"pipe,omitempty"`
	WideFlange *WideFlangeSpec  `json:"wide_flange,omitempty" yaml:"wide_flange,omitempty"`
	Outline    *section.Outline `json:"outline,omitempty" yaml:"outline,omitempty"`
	Custom     *section.Pile    `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// PipeSpec describes an open-ended steel pipe (in, ksi)
type PipeSpec struct {
	Name     string  `json:"name" yaml:"name"`
	Diameter float64 `json:"diameter" yaml:"diameter"`
	Wall     float64 `json:"wall" yaml:"wall"`
	Fy       float64 `json:"fy" yaml:"fy"`
}

// WideFlangeSpec describes a rolled W or C shape by its tabulated properties
type WideFlangeSpec struct {
	Name    string  `json:"name" yaml:"name"`
	Channel bool    `json:"channel,omitempty" yaml:"channel,omitempty"`
	Depth   float64 `json:"d" yaml:"d"`
	Width   float64 `json:"bf" yaml:"bf"`
	Tf      float64 `json:"tf" yaml:"tf"`
	Tw      float64 `json:"tw" yaml:"tw"`
	Area    float64 `json:"area" yaml:"area"`
	Ix      float64 `json:"ix" yaml:"ix"`
	Iy      float64 `json:"iy" yaml:"iy"`
	Sx      float64 `json:"sx,omitempty" yaml:"sx,omitempty"`
	Sy      float64 `json:"sy,omitempty" yaml:"sy,omitempty"`
	Zx      float64 `json:"zx,omitempty" yaml:"zx,omitempty"`
	Zy      float64 `json:"zy,omitempty" yaml:"zy,omitempty"`
	Fy      float64 `json:"fy" yaml:"fy"`
}

// Overrides are per-project solver settings. Nil fields inherit the
// configured defaults.
type Overrides struct {
	Elements        *int     `json:"elements,omitempty" yaml:"elements,omitempty"`
	MaxIterations   *int     `json:"max_iterations,omitempty" yaml:"max_iterations,omitempty"`
	Tolerance       *float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Head            *string  `json:"head,omitempty" yaml:"head,omitempty"`
	Axis            *string  `json:"axis,omitempty" yaml:"axis,omitempty"`
	Cyclic          *bool    `json:"cyclic,omitempty" yaml:"cyclic,omitempty"`
	PDelta          *bool    `json:"p_delta,omitempty" yaml:"p_delta,omitempty"`
	Installation    *string  `json:"pile_type,omitempty" yaml:"pile_type,omitempty"`
	Backend         *string  `json:"backend,omitempty" yaml:"backend,omitempty"`
	UseFiberSection *bool    `json:"use_fiber_section,omitempty" yaml:"use_fiber_section,omitempty"`
	RunEigenvalue   *bool    `json:"run_eigenvalue,omitempty" yaml:"run_eigenvalue,omitempty"`
	Modes           *int     `json:"modes,omitempty" yaml:"modes,omitempty"`
}

// Apply returns base with the non-nil overrides set
func (o Overrides) Apply(base bnwf.Options) bnwf.Options {
	if o.Elements != nil {
		base.NElements = *o.Elements
	}
	if o.MaxIterations != nil {
		base.MaxIter = *o.MaxIterations
	}
	if o.Tolerance != nil {
		base.Tol = *o.Tolerance
	}
	if o.Head != nil {
		base.Head = bnwf.HeadCondition(strings.ToLower(*o.Head))
	}
	if o.Axis != nil {
		base.BendingAxis = section.Axis(strings.ToLower(*o.Axis))
	}
	if o.Cyclic != nil {
		base.Cyclic = *o.Cyclic
	}
	if o.PDelta != nil {
		base.PDelta = *o.PDelta
	}
	if o.Installation != nil {
		base.Installation = strings.ToLower(*o.Installation)
	}
	if o.Backend != nil {
		base.Backend = bnwf.Backend(strings.ToLower(*o.Backend))
	}
	if o.UseFiberSection != nil {
		base.UseFiberSection = *o.UseFiberSection
	}
	if o.RunEigenvalue != nil {
		base.RunEigenvalue = *o.RunEigenvalue
	}
	if o.Modes != nil {
		base.Modes = *o.Modes
	}
	return base
}

// Validate checks the override values that are set
func (o Overrides) Validate() error {
	var errs []error
	if o.Elements != nil && *o.Elements < 1 {
		errs = append(errs, fmt.Errorf("options.elements must be >= 1, got %d", *o.Elements))
	}
	if o.MaxIterations != nil && *o.MaxIterations < 1 {
		errs = append(errs, fmt.Errorf("options.max_iterations must be >= 1, got %d", *o.MaxIterations))
	}
	if o.Tolerance != nil && !(*o.Tolerance > 0) {
		errs = append(errs, fmt.Errorf("options.tolerance must be positive, got %g", *o.Tolerance))
	}
	if o.Head != nil {
		switch bnwf.HeadCondition(strings.ToLower(*o.Head)) {
		case bnwf.Free, bnwf.Fixed:
		default:
			errs = append(errs, fmt.Errorf("options.head must be free or fixed, got %q", *o.Head))
		}
	}
	if o.Axis != nil {
		switch section.Axis(strings.ToLower(*o.Axis)) {
		case section.Strong, section.Weak:
		default:
			errs = append(errs, fmt.Errorf("options.axis must be strong or weak, got %q", *o.Axis))
		}
	}
	return errors.Join(errs...)
}

// Project is a loaded and validated project ready for the solver
type Project struct {
	Name      string
	Path      string
	Embedment float64
	Profile   *soil.Profile
	Section   section.Pile
	Loads     bnwf.Loads
	Overrides Overrides
}

// Options merges the project overrides into base
func (p *Project) Options(base bnwf.Options) bnwf.Options {
	return p.Overrides.Apply(base)
}

// Load reads and validates the project file at path
func Load(path string) (*Project, error) {
	data, format, err := read(path)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// LoadSection reads a file holding only a section description (the
// "section" block of a project) and returns the validated section
func LoadSection(path string) (section.Pile, error) {
	data, format, err := read(path)
	if err != nil {
		return section.Pile{}, fmt.Errorf("reading section: %w", err)
	}
	var spec SectionSpec
	if err := decode(data, format, &spec); err != nil {
		return section.Pile{}, fmt.Errorf("%s: %w", path, err)
	}
	sec, err := spec.Pile()
	if err == nil {
		err = sec.Validate()
	}
	if err != nil {
		return section.Pile{}, fmt.Errorf("%s: %w", path, err)
	}
	return sec, nil
}

// Parse decodes and validates a project document
func Parse(data []byte, format Format) (*Project, error) {
	var f File
	if err := decode(data, format, &f); err != nil {
		return nil, err
	}
	return f.Project()
}

func read(path string) ([]byte, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return data, JSON, nil
	}
	return data, YAML, nil
}

// decode rejects unknown fields in both formats
func decode(data []byte, format Format, out any) error {
	switch format {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("parsing JSON: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("parsing YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported project format %q", format)
	}
	return nil
}

// Project validates the document and converts it to solver inputs
func (f *File) Project() (*Project, error) {
	if !(f.Embedment > 0) {
		return nil, fmt.Errorf("embedment must be positive, got %g", f.Embedment)
	}
	if len(f.Soil) == 0 {
		return nil, errors.New("at least one soil layer is required")
	}
	if f.WaterTable != nil && *f.WaterTable < 0 {
		return nil, fmt.Errorf("water_table must be >= 0, got %g", *f.WaterTable)
	}

	sec, err := f.Section.Pile()
	if err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	if err := sec.Validate(); err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}

	profile := soil.NewProfile(f.Soil, f.WaterTable)
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("soil: %w", err)
	}

	loads := f.Loads
	if loads.Type == "" {
		loads.Type = bnwf.Static
	}
	switch loads.Type {
	case bnwf.Static, bnwf.PushoverLateral, bnwf.PushoverAxial:
	default:
		return nil, fmt.Errorf("loads.load_type %q is not static, pushover_lateral or pushover_axial", loads.Type)
	}

	if err := f.Options.Validate(); err != nil {
		return nil, err
	}

	return &Project{
		Name:      f.Name,
		Embedment: f.Embedment,
		Profile:   profile,
		Section:   sec,
		Loads:     loads,
		Overrides: f.Options,
	}, nil
}

// Pile builds the section from whichever description is present
func (s SectionSpec) Pile() (section.Pile, error) {
	n := 0
	for _, set := range []bool{s.Pipe != nil, s.WideFlange != nil, s.Outline != nil, s.Custom != nil} {
		if set {
			n++
		}
	}
	if n != 1 {
		return section.Pile{}, fmt.Errorf("exactly one of pipe, wide_flange, outline or custom is required, got %d", n)
	}

	switch {
	case s.Pipe != nil:
		return section.Pipe(s.Pipe.Name, s.Pipe.Diameter, s.Pipe.Wall, s.Pipe.Fy), nil
	case s.WideFlange != nil:
		w := s.WideFlange
		return section.WideFlange(w.Name, section.WideFlangeDims{
			Depth: w.Depth, Width: w.Width, Tf: w.Tf, Tw: w.Tw, Area: w.Area,
			Ix: w.Ix, Iy: w.Iy, Sx: w.Sx, Sy: w.Sy, Zx: w.Zx, Zy: w.Zy,
		}, w.Fy, w.Channel), nil
	case s.Outline != nil:
		return s.Outline.Pile()
	default:
		p := *s.Custom
		if p.Shape == "" {
			p.Shape = "custom"
		}
		return p, nil
	}
}
