package chart

import (
	"bytes"
	"fmt"

	"github.com/pplcc/plotext"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default panel sizes in points.
const (
	DefaultWidth  = 900
	DefaultHeight = 420
)

// renderStacked draws rows top to bottom with the given relative heights,
// uniting their time axes so the rows stay aligned.
func renderStacked(plots []*plot.Plot, heights []float64, w, h int) ([]byte, error) {
	var axes []*plot.Axis
	for _, p := range plots {
		axes = append(axes, &p.X)
	}
	plotext.UniteAxisRanges(axes)

	tbl := plotext.Table{
		RowHeights: heights,
		ColWidths:  []float64{1},
	}

	plots2d := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		plots2d[i] = []*plot.Plot{p}
	}

	img := vgimg.New(vg.Points(float64(w)), vg.Points(float64(h)))
	dc := draw.New(img)

	canvases := tbl.Align(plots2d, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	return encodePng(img)
}

func renderSingle(p *plot.Plot, w, h int) ([]byte, error) {
	img := vgimg.New(vg.Points(float64(w)), vg.Points(float64(h)))
	p.Draw(draw.New(img))
	return encodePng(img)
}

// Blank renders the empty dark panel shown when a refresh fails.
func Blank(w, h int) ([]byte, error) {
	p := plot.New()
	p.HideAxes()
	styleDark(p)
	return renderSingle(p, w, h)
}

func encodePng(img *vgimg.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode plot png: %w", err)
	}

	return buf.Bytes(), nil
}
