// Package svgdoc builds a tree of vector graphics primitives and
// serializes it to an SVG 1.1 document, honoring a configurable
// coordinate layout (origin corner, scale, offset).
// See the companion package svgchart for a higher level consumer.
package svgdoc

import (
	"io"
	"os"
	"strings"
)

// Document owns a layout and an ordered list of top level shapes, and
// produces the final markup. A document and everything it owns is
// meant to be used by a single goroutine; independent documents are
// safe to build concurrently.
type Document struct {
	path   string
	layout Layout
	shapes []Shape
}

// NewDocument creates a document that Save will write to path.
func NewDocument(path string, layout Layout) *Document {
	return &Document{path: path, layout: layout}
}

// Layout returns the layout the document was created with.
func (d *Document) Layout() Layout { return d.layout }

// Append stores an independent copy of each shape, in order, returning
// the document for chaining.
func (d *Document) Append(shapes ...Shape) *Document {
	for _, s := range shapes {
		d.shapes = append(d.shapes, s.Clone())
	}
	return d
}

// body serializes the top level shapes. Under the wrapper strategy
// with a non identity layout, the shapes are moved into a synthetic
// group carrying the wrapper transform, whose single serialization
// produces the whole body.
func (d *Document) body() string {
	if tr, ok := d.layout.wrapperTransform(); ok {
		group := Container{Stroke: NoStroke, transform: tr, children: d.shapes}
		return indent(group.ToSVG(d.layout))
	}
	var b strings.Builder
	for _, s := range d.shapes {
		b.WriteString(indent(s.ToSVG(d.layout)))
	}
	return b.String()
}

// Render returns the complete SVG document.
func (d *Document) Render() string {
	var b strings.Builder
	b.WriteString("<?xml " + attr("version", "1.0") + attr("standalone", "no") + "?>\n")
	b.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	b.WriteString(elemStart("svg") +
		attr("width", ftoa(d.layout.Size.Width)+"px") +
		attr("height", ftoa(d.layout.Size.Height)+"px") +
		attr("xmlns", "http://www.w3.org/2000/svg") +
		attr("version", "1.1") + ">\n")
	b.WriteString(d.body())
	b.WriteString(elemEnd("svg"))
	return b.String()
}

// WriteTo writes the rendered document to the sink w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Render())
	return int64(n), err
}

// Save renders the document and writes it to the file given at
// creation. A failure to open or write the file is returned to the
// caller, which may retry with another path; it is the only
// recoverable failure of the package.
func (d *Document) Save() error {
	f, err := os.Create(d.path)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
