package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Series is one plotted line, Values[i] is drawn at x = i.
type Series struct {
	Label  string
	Color  color.Color
	Values []float64
}

// PlotOptions controls histogram figure size and labels.
type PlotOptions struct {
	Width  vg.Length // default 10in
	Height vg.Length // default 7in
	DPI    int       // default 100
	Titles []string  // optional title per subplot
	XLabel string
	YLabel string
}

// HistogramPlot draws one subplot per row, stacked vertically, each holding the given series.
func HistogramPlot(rows [][]Series, opts ...func(o *PlotOptions)) (image.Image, error) {
	if len(rows) == 0 {
		return nil, errors.New("no subplots")
	}
	opt := PlotOptions{
		Width:  10 * vg.Inch,
		Height: 7 * vg.Inch,
		DPI:    100,
		XLabel: "value",
		YLabel: "count",
	}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	plots := make([][]*plot.Plot, len(rows))
	for i, series := range rows {
		p := plot.New()
		if i < len(opt.Titles) {
			p.Title.Text = opt.Titles[i]
		}
		p.X.Label.Text = opt.XLabel
		p.Y.Label.Text = opt.YLabel
		p.Legend.Top = true

		for _, s := range series {
			xys := make(plotter.XYs, len(s.Values))
			for x, v := range s.Values {
				xys[x].X = float64(x)
				xys[x].Y = v
			}
			line, err := plotter.NewLine(xys)
			if err != nil {
				return nil, fmt.Errorf("subplot %d, series %q: %w", i, s.Label, err)
			}
			if s.Color != nil {
				line.Color = s.Color
			}
			p.Add(line)
			if s.Label != "" {
				p.Legend.Add(s.Label, line)
			}
		}
		p.Y.Min = 0
		plots[i] = []*plot.Plot{p}
	}

	canvas := vgimg.NewWith(vgimg.UseWH(opt.Width, opt.Height), vgimg.UseDPI(opt.DPI))
	dc := draw.New(canvas)
	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      1,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
		PadY:      vg.Millimeter * 4,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
	return canvas.Image(), nil
}
