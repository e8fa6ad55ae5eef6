// Package svgchart draws simple line charts on top of svgdoc.
// It is a consumer of the svgdoc.Shape interface: a chart is itself a
// shape and can be appended to a document or a container.
package svgchart

import (
	"strings"

	"github.com/benoitkugler/svgwrite/svgdoc"
)

// LineChart lays out a series of polylines shifted by a common margin,
// with a circle marker on every vertex, and draws an axis sized 10%
// beyond the data extent. An empty chart serializes to an empty
// fragment.
type LineChart struct {
	AxisStroke svgdoc.Stroke
	Margin     svgdoc.Dimensions

	polylines []svgdoc.Polyline
}

func New(margin svgdoc.Dimensions, axisStroke svgdoc.Stroke) *LineChart {
	return &LineChart{AxisStroke: axisStroke, Margin: margin}
}

// Add copies the polyline into the chart, ignoring empty ones, and
// returns the chart for chaining.
func (c *LineChart) Add(line *svgdoc.Polyline) *LineChart {
	if len(line.Points) == 0 {
		return c
	}
	c.polylines = append(c.polylines, *line.Clone().(*svgdoc.Polyline))
	return c
}

// dimensions returns the extent of the data points across all
// polylines. ok is false for an empty chart.
func (c *LineChart) dimensions() (svgdoc.Dimensions, bool) {
	if len(c.polylines) == 0 {
		return svgdoc.Dimensions{}, false
	}
	// polylines are never empty once added, the bounds always exist
	min, _ := svgdoc.MinPoint(c.polylines[0].Points)
	max, _ := svgdoc.MaxPoint(c.polylines[0].Points)
	for _, line := range c.polylines {
		lo, _ := svgdoc.MinPoint(line.Points)
		hi, _ := svgdoc.MaxPoint(line.Points)
		if lo.X < min.X {
			min.X = lo.X
		}
		if lo.Y < min.Y {
			min.Y = lo.Y
		}
		if hi.X > max.X {
			max.X = hi.X
		}
		if hi.Y > max.Y {
			max.Y = hi.Y
		}
	}
	return svgdoc.Dim(max.X-min.X, max.Y-min.Y), true
}

func (c *LineChart) axisToSVG(l svgdoc.Layout) string {
	dims, ok := c.dimensions()
	if !ok {
		return ""
	}
	// make the axis 10% wider and higher than the data points
	width := dims.Width * 1.1
	height := dims.Height * 1.1

	axis := svgdoc.NewPolyline(svgdoc.NoFill, c.AxisStroke)
	axis.Add(
		svgdoc.Pt(c.Margin.Width, c.Margin.Height+height),
		svgdoc.Pt(c.Margin.Width, c.Margin.Height),
		svgdoc.Pt(c.Margin.Width+width, c.Margin.Height),
	)
	return axis.ToSVG(l)
}

func (c *LineChart) polylineToSVG(line *svgdoc.Polyline, l svgdoc.Layout) string {
	dims, _ := c.dimensions()

	shifted := line.Clone().(*svgdoc.Polyline)
	shifted.Offset(svgdoc.Pt(c.Margin.Width, c.Margin.Height))

	var b strings.Builder
	b.WriteString(shifted.ToSVG(l))
	for _, pt := range shifted.Points {
		vertex := svgdoc.NewCircle(pt, dims.Height/30, svgdoc.Fill{Color: svgdoc.Black}, svgdoc.NoStroke)
		b.WriteString(vertex.ToSVG(l))
	}
	return b.String()
}

func (c *LineChart) ToSVG(l svgdoc.Layout) string {
	if len(c.polylines) == 0 {
		return ""
	}
	var b strings.Builder
	for i := range c.polylines {
		b.WriteString(c.polylineToSVG(&c.polylines[i], l))
	}
	b.WriteString(c.axisToSVG(l))
	return b.String()
}

func (c *LineChart) Offset(delta svgdoc.Point) {
	for i := range c.polylines {
		c.polylines[i].Offset(delta)
	}
}

func (c *LineChart) Clone() svgdoc.Shape {
	out := &LineChart{AxisStroke: c.AxisStroke, Margin: c.Margin}
	for i := range c.polylines {
		out.polylines = append(out.polylines, *c.polylines[i].Clone().(*svgdoc.Polyline))
	}
	return out
}

var _ svgdoc.Shape = (*LineChart)(nil)
