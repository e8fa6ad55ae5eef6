package svgdoc

// Style values: serializable attribute bundles, no geometry.

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a paint value: either transparent or an RGB triple.
// Channels are conventionally in [0, 255] but are serialized as given,
// validation is not this package's responsibility.
// The zero value is transparent.
type Color struct {
	R, G, B int
	opaque  bool
}

// Transparent serializes as "none".
var Transparent = Color{}

// RGB returns the opaque color with the given channels.
func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b, opaque: true} }

func fromRGBA(c color.RGBA) Color { return RGB(int(c.R), int(c.G), int(c.B)) }

// Presets matching the SVG 1.1 color keywords of the same name.
var (
	Aqua    = fromRGBA(colornames.Aqua)
	Black   = fromRGBA(colornames.Black)
	Blue    = fromRGBA(colornames.Blue)
	Brown   = fromRGBA(colornames.Brown)
	Cyan    = fromRGBA(colornames.Cyan)
	Fuchsia = fromRGBA(colornames.Fuchsia)
	Green   = fromRGBA(colornames.Green)
	Lime    = fromRGBA(colornames.Lime)
	Magenta = fromRGBA(colornames.Magenta)
	Orange  = fromRGBA(colornames.Orange)
	Purple  = fromRGBA(colornames.Purple)
	Red     = fromRGBA(colornames.Red)
	Silver  = fromRGBA(colornames.Silver)
	White   = fromRGBA(colornames.White)
	Yellow  = fromRGBA(colornames.Yellow)
)

// NamedColor looks up any SVG 1.1 color keyword ("tomato",
// "steelblue", ...), case insensitively. ok is false for unknown
// names, in which case the returned color must not be used.
func NamedColor(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return Color{}, false
	}
	return fromRGBA(c), true
}

// String returns the SVG paint value of the color.
func (c Color) String() string {
	if !c.opaque {
		return "none"
	}
	return "rgb(" + strconv.Itoa(c.R) + "," + strconv.Itoa(c.G) + "," + strconv.Itoa(c.B) + ")"
}

// Fill paints the interior of a shape. The zero value is no fill.
type Fill struct {
	Color Color
}

func (f Fill) attrs() string { return attr("fill", f.Color.String()) }

// NoFill is explicit shorthand for the zero fill.
var NoFill = Fill{}

// Stroke outlines a shape. A negative width marks the stroke as
// absent: no stroke attribute is serialized at all. Width 0 is a
// valid stroke and does serialize.
type Stroke struct {
	Width      float64
	Color      Color
	NonScaling bool // emit vector-effect="non-scaling-stroke"
}

// NoStroke is the absent stroke sentinel.
var NoStroke = Stroke{Width: -1}

func (s Stroke) attrs(l Layout) string {
	if s.Width < 0 {
		return ""
	}
	out := attrF("stroke-width", l.length(s.Width)) + attr("stroke", s.Color.String())
	if s.NonScaling {
		out += attr("vector-effect", "non-scaling-stroke")
	}
	return out
}

// Font describes the size and family of a text.
type Font struct {
	Size   float64
	Family string
}

// DefaultFont is the font used by the original implementation when
// none is given.
var DefaultFont = Font{Size: 12, Family: "Verdana"}

func (f Font) attrs(l Layout) string {
	return attrF("font-size", l.length(f.Size)) + attr("font-family", escape(f.Family))
}
