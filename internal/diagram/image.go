package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gopile/internal/bnwf"
	"github.com/alexiusacademia/gopile/internal/curve"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	lineColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	zeroColor = color.Gray{Y: 128}
)

// ExportProfiles writes the lateral response profiles side by side, depth
// increasing downward. The format follows the file extension (png, svg, pdf,
// ...); a name without one gets ".png".
func ExportProfiles(r *bnwf.Result, filename string) error {
	profiles := Profiles(r)
	row := make([]*plot.Plot, 0, len(profiles))
	for _, pr := range profiles {
		p, err := profilePlot(pr, r.Depth)
		if err != nil {
			return err
		}
		row = append(row, p)
	}

	width := vg.Length(len(row)) * 3 * vg.Inch
	height := 8 * vg.Inch
	filename, format := resolve(filename)

	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}
	tiles := draw.Tiles{
		Rows: 1, Cols: len(row),
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Points(4), PadBottom: vg.Points(4),
		PadLeft: vg.Points(4), PadRight: vg.Points(4),
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, draw.New(c))
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	f, err := create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := c.WriteTo(f); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

func profilePlot(pr Profile, depth []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pr.Title
	p.X.Label.Text = pr.Unit
	p.Y.Label.Text = "Depth (ft)"
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(pr.Values))
	for i, v := range pr.Values {
		pts[i] = plotter.XY{X: v, Y: depth[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = lineColor
	p.Add(line)

	if len(depth) > 0 {
		axis, err := plotter.NewLine(plotter.XYs{{X: 0, Y: depth[0]}, {X: 0, Y: depth[len(depth)-1]}})
		if err != nil {
			return nil, err
		}
		axis.LineStyle.Color = zeroColor
		axis.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(axis)
	}
	return p, nil
}

// ExportPushover writes the load-displacement trace of a pushover run
func ExportPushover(po *bnwf.Pushover, filename string) error {
	if po == nil || len(po.Disp) == 0 {
		return fmt.Errorf("no pushover data to export")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pushover (%s)", po.Axis)
	p.X.Label.Text = "Displacement (in)"
	p.Y.Label.Text = "Load (lbs)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(po.Disp)+1)
	for i := range po.Disp {
		pts[i+1] = plotter.XY{X: po.Disp[i], Y: po.Load[i]}
	}
	if err := plotutil.AddLinePoints(p, pts); err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportCurves overlays spring curves of one kind on a single plot
func ExportCurves(curves []*curve.Curve, filename string) error {
	var kind curve.Kind
	args := make([]interface{}, 0, 2*len(curves))
	for _, c := range curves {
		if c.IsNull() {
			continue
		}
		kind = c.Kind
		pts := make(plotter.XYs, len(c.Disp))
		for i := range c.Disp {
			pts[i] = plotter.XY{X: c.Disp[i], Y: c.Resist[i]}
		}
		args = append(args, fmt.Sprintf("z = %.1f ft", c.Depth), pts)
	}
	if len(args) == 0 {
		return fmt.Errorf("no spring curves to export")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s curves", kind)
	p.X.Label.Text = "Displacement (in)"
	p.Y.Label.Text = resistanceLabel(kind)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func resistanceLabel(k curve.Kind) string {
	if k == curve.QZ {
		return "Resistance (lbs)"
	}
	return "Resistance (lb/in)"
}

func save(p *plot.Plot, w, h vg.Length, filename string) error {
	filename, _ = resolve(filename)
	if err := mkdir(filename); err != nil {
		return err
	}
	return p.Save(w, h, filename)
}

// resolve defaults a file without extension to png and returns the format
func resolve(filename string) (string, string) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return filename + ".png", "png"
	}
	return filename, ext
}

func create(filename string) (*os.File, error) {
	if err := mkdir(filename); err != nil {
		return nil, err
	}
	return os.Create(filename)
}

func mkdir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
