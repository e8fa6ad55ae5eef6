package svgdoc

// Container groups an ordered list of shapes under one <g> element.
// It owns its children exclusively: Append stores an independent copy
// of each shape, and Clone duplicates the whole subtree, so no shape
// is ever aliased by two containers.
type Container struct {
	Fill   Fill
	Stroke Stroke

	// group level transform attribute, set by the document under the
	// wrapper strategy and never recomputed per child
	transform string

	children []Shape
}

func NewContainer(fill Fill, stroke Stroke) *Container {
	return &Container{Fill: fill, Stroke: stroke}
}

// Append adds an independent copy of each shape, in order, returning
// the container for chaining. The caller keeps its own handles, which
// no longer affect the container.
func (c *Container) Append(shapes ...Shape) *Container {
	for _, s := range shapes {
		c.children = append(c.children, s.Clone())
	}
	return c
}

// Len returns the number of children.
func (c *Container) Len() int { return len(c.children) }

// ToSVG returns an empty fragment for a childless container, never an
// empty group tag. The fill and stroke of the group are inherited by
// children that do not override them.
func (c *Container) ToSVG(l Layout) string {
	if len(c.children) == 0 {
		return ""
	}
	out := elemStart("g") + c.Fill.attrs() + c.Stroke.attrs(l)
	if c.transform != "" {
		out += attr("transform", c.transform)
	}
	out += ">\n"
	for _, child := range c.children {
		out += indent(child.ToSVG(l))
	}
	return out + elemEnd("g")
}

// Offset is a no-op: a group translation is expressed on the children
// or through the wrapper transform, never as container state.
func (c *Container) Offset(Point) {}

func (c *Container) Clone() Shape {
	out := &Container{Fill: c.Fill, Stroke: c.Stroke, transform: c.transform}
	for _, child := range c.children {
		out.children = append(out.children, child.Clone())
	}
	return out
}
