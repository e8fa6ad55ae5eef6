package svgdoc

import "strings"

// Path is an ordered list of subpaths, each serialized as a closed
// "move, implicit lines, close" command sequence, filled with the
// even-odd rule.
type Path struct {
	Subpaths [][]Point
	Fill     Fill
	Stroke   Stroke
}

// NewPath returns a path with one empty subpath ready to receive
// points.
func NewPath(fill Fill, stroke Stroke) *Path {
	p := &Path{Fill: fill, Stroke: stroke}
	p.StartNewSubpath()
	return p
}

// Add appends points to the current subpath, returning the path for
// chaining.
func (p *Path) Add(points ...Point) *Path {
	if len(p.Subpaths) == 0 {
		p.StartNewSubpath()
	}
	last := len(p.Subpaths) - 1
	p.Subpaths[last] = append(p.Subpaths[last], points...)
	return p
}

// StartNewSubpath begins a new disjoint contour. It is a no-op while
// the current subpath is still empty, so that zero length contours
// never accumulate.
func (p *Path) StartNewSubpath() {
	if n := len(p.Subpaths); n == 0 || len(p.Subpaths[n-1]) > 0 {
		p.Subpaths = append(p.Subpaths, nil)
	}
}

func (p *Path) ToSVG(l Layout) string {
	var b strings.Builder
	b.WriteString(elemStart("path"))
	b.WriteString(`d="`)
	for _, subpath := range p.Subpaths {
		if len(subpath) == 0 {
			continue
		}
		b.WriteByte('M')
		for _, pt := range subpath {
			b.WriteString(ftoa(l.x(pt.X)))
			b.WriteByte(',')
			b.WriteString(ftoa(l.y(pt.Y)))
			b.WriteByte(' ')
		}
		b.WriteString("z ")
	}
	b.WriteString(`" `)
	b.WriteString(attr("fill-rule", "evenodd"))
	b.WriteString(p.Fill.attrs())
	b.WriteString(p.Stroke.attrs(l))
	b.WriteString(emptyElemEnd)
	return b.String()
}

func (p *Path) Offset(delta Point) {
	for _, subpath := range p.Subpaths {
		offsetPoints(subpath, delta)
	}
}

func (p *Path) Clone() Shape {
	out := &Path{Fill: p.Fill, Stroke: p.Stroke}
	if p.Subpaths != nil {
		out.Subpaths = make([][]Point, len(p.Subpaths))
		for i, subpath := range p.Subpaths {
			out.Subpaths[i] = clonePoints(subpath)
		}
	}
	return out
}
