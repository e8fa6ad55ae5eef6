package svgdoc

import "strings"

// Shape is implemented by every node of the document tree.
// Shapes are mutable while the caller holds them; Container.Append and
// Document.Append store independent copies, so a shape is never shared
// between two owners.
type Shape interface {
	// ToSVG returns the markup fragment of the shape under the given
	// layout. The fragment ends with a newline and is not indented.
	ToSVG(l Layout) string

	// Offset translates the geometry of the shape in place.
	Offset(delta Point)

	// Clone returns an independent deep copy of the shape.
	Clone() Shape
}

// Circle is centered on a point. Note that, following the original
// API, it is built from its diameter, not its radius.
type Circle struct {
	Center Point
	Radius float64
	Fill   Fill
	Stroke Stroke
}

// NewCircle builds a circle from its center and diameter.
func NewCircle(center Point, diameter float64, fill Fill, stroke Stroke) *Circle {
	return &Circle{Center: center, Radius: diameter / 2, Fill: fill, Stroke: stroke}
}

func (c *Circle) ToSVG(l Layout) string {
	return elemStart("circle") +
		attrF("cx", l.x(c.Center.X)) + attrF("cy", l.y(c.Center.Y)) +
		attrF("r", l.length(c.Radius)) +
		c.Fill.attrs() + c.Stroke.attrs(l) + emptyElemEnd
}

func (c *Circle) Offset(delta Point) {
	c.Center.X += delta.X
	c.Center.Y += delta.Y
}

func (c *Circle) Clone() Shape { out := *c; return &out }

// Ellipse is centered on a point, with independent x and y radii.
type Ellipse struct {
	Center  Point
	RadiusX float64
	RadiusY float64
	Fill    Fill
	Stroke  Stroke
}

// NewEllipse builds an ellipse from its center and full width and height.
func NewEllipse(center Point, width, height float64, fill Fill, stroke Stroke) *Ellipse {
	return &Ellipse{Center: center, RadiusX: width / 2, RadiusY: height / 2, Fill: fill, Stroke: stroke}
}

func (e *Ellipse) ToSVG(l Layout) string {
	return elemStart("ellipse") +
		attrF("cx", l.x(e.Center.X)) + attrF("cy", l.y(e.Center.Y)) +
		attrF("rx", l.length(e.RadiusX)) + attrF("ry", l.length(e.RadiusY)) +
		e.Fill.attrs() + e.Stroke.attrs(l) + emptyElemEnd
}

func (e *Ellipse) Offset(delta Point) {
	e.Center.X += delta.X
	e.Center.Y += delta.Y
}

func (e *Ellipse) Clone() Shape { out := *e; return &out }

// Rect is an axis aligned rectangle, anchored on the corner closest
// to the user space origin.
type Rect struct {
	Edge   Point
	Width  float64
	Height float64
	Fill   Fill
	Stroke Stroke
}

// NewRect builds a rectangle from its anchor corner and size.
func NewRect(edge Point, width, height float64, fill Fill, stroke Stroke) *Rect {
	return &Rect{Edge: edge, Width: width, Height: height, Fill: fill, Stroke: stroke}
}

func (r *Rect) ToSVG(l Layout) string {
	return elemStart("rect") +
		attrF("x", l.x(r.Edge.X)) + attrF("y", l.y(r.Edge.Y)) +
		attrF("width", l.length(r.Width)) + attrF("height", l.length(r.Height)) +
		r.Fill.attrs() + r.Stroke.attrs(l) + emptyElemEnd
}

func (r *Rect) Offset(delta Point) {
	r.Edge.X += delta.X
	r.Edge.Y += delta.Y
}

func (r *Rect) Clone() Shape { out := *r; return &out }

// Line is a straight segment. It carries only a stroke, a line has
// no interior to fill.
type Line struct {
	Start  Point
	End    Point
	Stroke Stroke
}

func NewLine(start, end Point, stroke Stroke) *Line {
	return &Line{Start: start, End: end, Stroke: stroke}
}

func (s *Line) ToSVG(l Layout) string {
	return elemStart("line") +
		attrF("x1", l.x(s.Start.X)) + attrF("y1", l.y(s.Start.Y)) +
		attrF("x2", l.x(s.End.X)) + attrF("y2", l.y(s.End.Y)) +
		s.Stroke.attrs(l) + emptyElemEnd
}

func (s *Line) Offset(delta Point) {
	s.Start.X += delta.X
	s.Start.Y += delta.Y
	s.End.X += delta.X
	s.End.Y += delta.Y
}

func (s *Line) Clone() Shape { out := *s; return &out }

// pointsAttr serializes the points attribute shared by Polygon and
// Polyline. Zero points yield a degenerate but well formed points="".
func pointsAttr(points []Point, l Layout) string {
	var b strings.Builder
	b.WriteString(`points="`)
	for _, p := range points {
		b.WriteString(ftoa(l.x(p.X)))
		b.WriteByte(',')
		b.WriteString(ftoa(l.y(p.Y)))
		b.WriteByte(' ')
	}
	b.WriteString(`" `)
	return b.String()
}

// Polygon is a closed sequence of points.
type Polygon struct {
	Points []Point
	Fill   Fill
	Stroke Stroke
}

func NewPolygon(fill Fill, stroke Stroke) *Polygon {
	return &Polygon{Fill: fill, Stroke: stroke}
}

// Add appends points, returning the polygon for chaining.
func (p *Polygon) Add(points ...Point) *Polygon {
	p.Points = append(p.Points, points...)
	return p
}

func (p *Polygon) ToSVG(l Layout) string {
	return elemStart("polygon") + pointsAttr(p.Points, l) +
		p.Fill.attrs() + p.Stroke.attrs(l) + emptyElemEnd
}

func (p *Polygon) Offset(delta Point) { offsetPoints(p.Points, delta) }

func (p *Polygon) Clone() Shape {
	return &Polygon{Points: clonePoints(p.Points), Fill: p.Fill, Stroke: p.Stroke}
}

// Polyline is an open sequence of points.
type Polyline struct {
	Points []Point
	Fill   Fill
	Stroke Stroke
}

func NewPolyline(fill Fill, stroke Stroke) *Polyline {
	return &Polyline{Fill: fill, Stroke: stroke}
}

// PolylineFromPoints builds a polyline over a copy of the given points.
func PolylineFromPoints(points []Point, fill Fill, stroke Stroke) *Polyline {
	return &Polyline{Points: clonePoints(points), Fill: fill, Stroke: stroke}
}

// Add appends points, returning the polyline for chaining.
func (p *Polyline) Add(points ...Point) *Polyline {
	p.Points = append(p.Points, points...)
	return p
}

func (p *Polyline) ToSVG(l Layout) string {
	return elemStart("polyline") + pointsAttr(p.Points, l) +
		p.Fill.attrs() + p.Stroke.attrs(l) + emptyElemEnd
}

func (p *Polyline) Offset(delta Point) { offsetPoints(p.Points, delta) }

func (p *Polyline) Clone() Shape {
	return &Polyline{Points: clonePoints(p.Points), Fill: p.Fill, Stroke: p.Stroke}
}

// Text anchors a string on a point. Under the wrapper strategy with a
// flipped origin, the element carries a local transform cancelling the
// flip so that the glyphs are not mirrored, while the anchor still
// follows the wrapping group.
type Text struct {
	Anchor  Point
	Content string
	Fill    Fill
	Stroke  Stroke
	Font    Font
}

func NewText(anchor Point, content string, fill Fill, font Font, stroke Stroke) *Text {
	return &Text{Anchor: anchor, Content: content, Fill: fill, Font: font, Stroke: stroke}
}

func (t *Text) ToSVG(l Layout) string {
	out := elemStart("text") +
		attrF("x", l.x(t.Anchor.X)) + attrF("y", l.y(t.Anchor.Y)) +
		t.Fill.attrs() + t.Stroke.attrs(l) + t.Font.attrs(l)
	if tr, ok := l.textCounterFlip(t.Anchor); ok {
		out += attr("transform", tr)
	}
	return out + ">" + escape(t.Content) + elemEnd("text")
}

func (t *Text) Offset(delta Point) {
	t.Anchor.X += delta.X
	t.Anchor.Y += delta.Y
}

func (t *Text) Clone() Shape { out := *t; return &out }

// assert interface conformance
var _ = []Shape{
	(*Circle)(nil), (*Ellipse)(nil), (*Rect)(nil), (*Line)(nil),
	(*Polygon)(nil), (*Polyline)(nil), (*Path)(nil), (*Text)(nil),
	(*Container)(nil),
}
