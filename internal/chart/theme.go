package chart

import (
	"image/color"

	"gonum.org/v1/plot"
)

// page and chart palette, matching the dashboard's dark theme
var (
	colorBackground = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorText       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGrid       = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	colorUp         = color.RGBA{R: 0x00, G: 0xb0, B: 0x6e, A: 0xff}
	colorDown       = color.RGBA{R: 0xef, G: 0x40, B: 0x3c, A: 0xff}
	colorActual     = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	colorPredicted  = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}
)

func styleDark(p *plot.Plot) {
	p.BackgroundColor = colorBackground
	p.Title.TextStyle.Color = colorText

	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = colorGrid
		axis.Label.TextStyle.Color = colorText
		axis.Tick.LineStyle.Color = colorGrid
		axis.Tick.Label.Color = colorText
	}

	p.Legend.TextStyle.Color = colorText
}
