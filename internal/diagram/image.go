package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportInteractionDiagram exports the P-M interaction diagram to an image
// file (png, svg or pdf by extension)
func ExportInteractionDiagram(data InteractionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Column Interaction Diagram"
	if data.Name != "" {
		p.Title.Text = fmt.Sprintf("Column Interaction Diagram - %s", data.Name)
	}
	p.X.Label.Text = "Mn (t-m)"
	p.Y.Label.Text = "Pn (t)"
	p.Add(plotter.NewGrid())

	envelope := make(plotter.XYs, len(data.Moments))
	for i := range data.Moments {
		envelope[i] = plotter.XY{X: data.Moments[i], Y: data.Forces[i]}
	}

	envLine, err := plotter.NewLine(envelope)
	if err != nil {
		return err
	}
	envLine.LineStyle.Width = vg.Points(2)
	envLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(envLine)

	envPoints, err := plotter.NewScatter(envelope)
	if err != nil {
		return err
	}
	envPoints.GlyphStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	envPoints.GlyphStyle.Radius = vg.Points(3)
	envPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(envPoints)

	// Zero axial load reference line
	maxM := data.MoApprox
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: maxM * 1.05, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zeroLine)

	// Annotate the two axial-only endpoints and the largest swept moment
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: 0, Y: data.Forces[0]},
			{X: 0, Y: data.Forces[len(data.Forces)-1]},
			{X: data.MoApprox, Y: 0},
		},
		Labels: []string{
			fmt.Sprintf("Po = %.1f t", data.Po),
			fmt.Sprintf("Pt = %.1f t", data.Forces[len(data.Forces)-1]),
			fmt.Sprintf("Mo ≈ %.1f t-m", data.MoApprox),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	ext := filepath.Ext(filename)
	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch ext {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
