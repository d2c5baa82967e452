package chart

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jpalmerr/bpdiag"
)

//go:embed assets/chart.svg.tmpl
var assets embed.FS

var chartTmpl = template.Must(template.ParseFS(assets, "assets/chart.svg.tmpl"))

const (
	marginLeft   = 50.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 40.0
)

// Options controls chart appearance.
type Options struct {
	// Width and Height are the SVG dimensions in pixels.
	Width  int
	Height int

	// Light renders on a light background instead of the default dark one.
	Light bool

	// Dots marks each value with a dot.
	Dots bool

	// Lines connects consecutive values with lines.
	Lines bool

	// Fill fills the area between the floor and each line.
	Fill bool
}

// DefaultOptions returns the standard chart appearance: 800x400, dark
// background, dots and lines on, fill off.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 400, Dots: true, Lines: true}
}

type point struct {
	X string
	Y string
}

// segment is one uninterrupted run of values between skip gaps.
type segment struct {
	Points   []point
	Polyline string
	FillPath string
}

type seriesView struct {
	Name     string
	Color    string
	LegendX  int
	Segments []segment
}

type tick struct {
	Y     string
	Label string
}

type chartView struct {
	Width      int
	Height     int
	Background string
	Ink        string
	Grid       string
	PlotLeft   string
	PlotRight  string
	LegendY    int
	Dots       bool
	Lines      bool
	Fill       bool
	Ticks      []tick
	Series     []seriesView
}

// Render writes an SVG line chart of the three channels to w.
//
// Entries are plotted at their positional index on the x axis; nil slots
// leave gaps. An input with no measurements renders an empty chart frame.
func Render(w io.Writer, entries []*bpdiag.Measurement, opt Options) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("chart dimensions must be positive, got %dx%d", opt.Width, opt.Height)
	}

	view := chartView{
		Width:      opt.Width,
		Height:     opt.Height,
		Background: "#15212c",
		Ink:        "#e8e8e8",
		Grid:       "#3a4a5a",
		PlotLeft:   coord(marginLeft),
		PlotRight:  coord(float64(opt.Width) - marginRight),
		LegendY:    opt.Height - 12,
		Dots:       opt.Dots,
		Lines:      opt.Lines,
		Fill:       opt.Fill,
	}
	if opt.Light {
		view.Background = "#ffffff"
		view.Ink = "#333333"
		view.Grid = "#d0d0d0"
	}

	top := maxValue(entries)
	if top > 0 {
		// 10% headroom so the highest point does not touch the frame
		scale := newScale(opt, float64(top)*1.1, len(entries))
		view.Ticks = scale.ticks(top)
		view.Series = []seriesView{
			buildSeries("sys", "#e74c3c", 0, entries, scale, func(m *bpdiag.Measurement) int { return m.Sys }),
			buildSeries("dia", "#3498db", 1, entries, scale, func(m *bpdiag.Measurement) int { return m.Dia }),
			buildSeries("pulse", "#2ecc71", 2, entries, scale, func(m *bpdiag.Measurement) int { return m.Pulse }),
		}
	}

	return chartTmpl.Execute(w, view)
}

// maxValue returns the largest channel value across all measurements,
// or 0 if there are none.
func maxValue(entries []*bpdiag.Measurement) int {
	top := 0
	for _, m := range entries {
		if m == nil {
			continue
		}
		for _, v := range []int{m.Sys, m.Dia, m.Pulse} {
			if v > top {
				top = v
			}
		}
	}
	return top
}

// scale maps entry indexes and channel values to SVG coordinates.
type scale struct {
	plotW, plotH float64
	topValue     float64
	slots        int
}

func newScale(opt Options, topValue float64, slots int) scale {
	return scale{
		plotW:    float64(opt.Width) - marginLeft - marginRight,
		plotH:    float64(opt.Height) - marginTop - marginBottom,
		topValue: topValue,
		slots:    slots,
	}
}

func (s scale) x(i int) float64 {
	if s.slots <= 1 {
		return marginLeft + s.plotW/2
	}
	return marginLeft + float64(i)*s.plotW/float64(s.slots-1)
}

func (s scale) y(v float64) float64 {
	return marginTop + s.plotH*(1-v/s.topValue)
}

func (s scale) baseline() float64 {
	return marginTop + s.plotH
}

// ticks returns four evenly spaced horizontal gridlines up to the highest
// observed value.
func (s scale) ticks(top int) []tick {
	out := make([]tick, 0, 4)
	for i := 1; i <= 4; i++ {
		v := float64(top) * float64(i) / 4
		out = append(out, tick{
			Y:     coord(s.y(v)),
			Label: fmt.Sprintf("%d", int(v)),
		})
	}
	return out
}

func buildSeries(name, color string, pos int, entries []*bpdiag.Measurement, sc scale, value func(*bpdiag.Measurement) int) seriesView {
	sv := seriesView{
		Name:    name,
		Color:   color,
		LegendX: int(marginLeft) + pos*90,
	}

	var cur []point
	var curX []float64
	flush := func() {
		if len(cur) == 0 {
			return
		}
		sv.Segments = append(sv.Segments, makeSegment(cur, curX, sc))
		cur, curX = nil, nil
	}

	for i, m := range entries {
		if m == nil {
			flush()
			continue
		}
		x, y := sc.x(i), sc.y(float64(value(m)))
		cur = append(cur, point{X: coord(x), Y: coord(y)})
		curX = append(curX, x)
	}
	flush()

	return sv
}

func makeSegment(pts []point, xs []float64, sc scale) segment {
	var poly strings.Builder
	for i, p := range pts {
		if i > 0 {
			poly.WriteByte(' ')
		}
		poly.WriteString(p.X)
		poly.WriteByte(',')
		poly.WriteString(p.Y)
	}

	// closed path down to the baseline for the fill style
	base := coord(sc.baseline())
	var fill strings.Builder
	fill.WriteString("M ")
	fill.WriteString(coord(xs[0]))
	fill.WriteByte(',')
	fill.WriteString(base)
	for _, p := range pts {
		fill.WriteString(" L ")
		fill.WriteString(p.X)
		fill.WriteByte(',')
		fill.WriteString(p.Y)
	}
	fill.WriteString(" L ")
	fill.WriteString(coord(xs[len(xs)-1]))
	fill.WriteByte(',')
	fill.WriteString(base)
	fill.WriteString(" Z")

	return segment{Points: pts, Polyline: poly.String(), FillPath: fill.String()}
}

func coord(f float64) string {
	return fmt.Sprintf("%.1f", f)
}
