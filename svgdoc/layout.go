package svgdoc

// Origin selects which corner of the canvas the user space
// coordinate (0,0) refers to, and thereby which axes are flipped.
type Origin uint8

const (
	TopLeft Origin = iota
	BottomLeft
	TopRight
	BottomRight
)

func (o Origin) String() string {
	switch o {
	case TopLeft:
		return "TopLeft"
	case BottomLeft:
		return "BottomLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	default:
		return "<unknown Origin>"
	}
}

// Mode selects how user space coordinates are reconciled with the
// top-left, non-scaled SVG space. It is fixed for a whole document:
// mixing strategies produces visibly wrong output.
type Mode uint8

const (
	// ModeWrapper emits every coordinate untouched and wraps the whole
	// body in a single scale+translate group. Text keeps its glyph
	// orientation thanks to a local counter-flip (see Text).
	// This is the default.
	ModeWrapper Mode = iota

	// ModePerCoordinate transforms each coordinate individually.
	// Under flipped origins, text positions follow the layout but the
	// glyphs themselves are mirrored. Kept for parity and testing.
	ModePerCoordinate
)

// Layout defines the dimensions, scale, origin and origin offset of a
// document, and the transform strategy used to honor them. It is the
// whole configuration surface of the package, and must not change
// between the shape serializations of one render.
type Layout struct {
	Size   Dimensions
	Origin Origin
	Scale  float64 // conventionally > 0
	Offset Point
	Mode   Mode
}

// NewLayout returns a layout with the given size and origin, scale 1,
// no offset, and the wrapper transform strategy.
func NewLayout(size Dimensions, origin Origin) Layout {
	return Layout{Size: size, Origin: origin, Scale: 1}
}

func (l Layout) flipX() bool { return l.Origin == TopRight || l.Origin == BottomRight }
func (l Layout) flipY() bool { return l.Origin == BottomLeft || l.Origin == BottomRight }

// TranslateX converts a user space x coordinate to SVG native space.
func (l Layout) TranslateX(x float64) float64 {
	if l.flipX() {
		return l.Size.Width - (x+l.Offset.X)*l.Scale
	}
	return (l.Offset.X + x) * l.Scale
}

// TranslateY converts a user space y coordinate to SVG native space.
func (l Layout) TranslateY(y float64) float64 {
	if l.flipY() {
		return l.Size.Height - (y+l.Offset.Y)*l.Scale
	}
	return (l.Offset.Y + y) * l.Scale
}

// TranslateScale converts a user space length to SVG native space.
// Lengths are scaled, never flipped or offset.
func (l Layout) TranslateScale(d float64) float64 { return d * l.Scale }

// x, y and length are the strategy aware mappings used by shape
// serialization: under the wrapper strategy values pass through
// unchanged, since the enclosing group transform does the work.
func (l Layout) x(v float64) float64 {
	if l.Mode == ModeWrapper {
		return v
	}
	return l.TranslateX(v)
}

func (l Layout) y(v float64) float64 {
	if l.Mode == ModeWrapper {
		return v
	}
	return l.TranslateY(v)
}

func (l Layout) length(v float64) float64 {
	if l.Mode == ModeWrapper {
		return v
	}
	return l.TranslateScale(v)
}

// wrapperParams returns the scale and translation of the group
// transform reconciling the layout with SVG native space, such that
// native = scale * (user + translate), per axis.
// ok is false when the transform is the identity and no wrapping
// group is needed.
func (l Layout) wrapperParams() (sx, sy, tx, ty float64, ok bool) {
	sx, sy = l.Scale, l.Scale
	tx, ty = l.Offset.X, l.Offset.Y
	if l.flipX() {
		sx = -sx
		tx -= l.Size.Width / l.Scale
	}
	if l.flipY() {
		sy = -sy
		ty -= l.Size.Height / l.Scale
	}
	ok = !(sx == 1 && sy == 1 && tx == 0 && ty == 0)
	return sx, sy, tx, ty, ok
}

// wrapperTransform returns the transform attribute value for the
// group wrapping the document body, or ok = false when none is needed
// (identity layouts, or the per-coordinate strategy).
func (l Layout) wrapperTransform() (string, bool) {
	if l.Mode != ModeWrapper {
		return "", false
	}
	sx, sy, tx, ty, ok := l.wrapperParams()
	if !ok {
		return "", false
	}
	return "scale(" + ftoa(sx) + " " + ftoa(sy) + ") translate(" + ftoa(tx) + " " + ftoa(ty) + ")", true
}

// textCounterFlip returns the local transform restoring the glyph
// orientation of a text anchored at origin, when the wrapper strategy
// flips an axis. The net effect on the anchor point is zero: the
// anchor still moves with the wrapping group.
func (l Layout) textCounterFlip(origin Point) (string, bool) {
	if l.Mode != ModeWrapper || (!l.flipX() && !l.flipY()) {
		return "", false
	}
	sx, sy := 1.0, 1.0
	if l.flipX() {
		sx = -1
	}
	if l.flipY() {
		sy = -1
	}
	return "translate(" + ftoa(origin.X) + " " + ftoa(origin.Y) +
		") scale(" + ftoa(sx) + " " + ftoa(sy) +
		") translate(" + ftoa(-origin.X) + " " + ftoa(-origin.Y) + ")", true
}
