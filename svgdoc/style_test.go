package svgdoc

import (
	"strings"
	"testing"
)

func TestColorValues(t *testing.T) {
	cases := []struct {
		c    Color
		want string
	}{
		{Transparent, "none"},
		{Color{}, "none"}, // the zero value is transparent
		{RGB(100, 200, 120), "rgb(100,200,120)"},
		{Brown, "rgb(165,42,42)"},
		{Silver, "rgb(192,192,192)"},
		{Orange, "rgb(255,165,0)"},
		{RGB(300, -4, 0), "rgb(300,-4,0)"}, // out of range serializes as given
	}
	for _, c := range cases {
		if got := c.c.String(); got != c.want {
			t.Errorf("color %v = %q, want %q", c.c, got, c.want)
		}
	}
}

func TestNamedColor(t *testing.T) {
	c, ok := NamedColor("Tomato")
	if !ok {
		t.Fatal("tomato is an SVG 1.1 keyword")
	}
	if got := c.String(); got != "rgb(255,99,71)" {
		t.Fatalf("tomato = %q", got)
	}
	if _, ok := NamedColor("no-such-color"); ok {
		t.Fatal("unknown keyword should not resolve")
	}
}

func TestStrokeOmission(t *testing.T) {
	l := NewLayout(Dim(100, 100), TopLeft)

	if got := NoStroke.attrs(l); got != "" {
		t.Fatalf("absent stroke serialized as %q", got)
	}
	if got := (Stroke{Width: -2, Color: Red}).attrs(l); got != "" {
		t.Fatalf("negative width stroke serialized as %q", got)
	}
	// zero is a valid width and does serialize
	got := (Stroke{Width: 0, Color: Red}).attrs(l)
	if want := `stroke-width="0" stroke="rgb(255,0,0)" `; got != want {
		t.Fatalf("stroke attrs = %q, want %q", got, want)
	}
}

func TestStrokeNonScaling(t *testing.T) {
	l := NewLayout(Dim(100, 100), TopLeft)
	got := (Stroke{Width: 1.5, Color: Black, NonScaling: true}).attrs(l)
	if !strings.Contains(got, `vector-effect="non-scaling-stroke" `) {
		t.Fatalf("missing vector-effect in %q", got)
	}
}

func TestStrokeAndFontScale(t *testing.T) {
	l := Layout{Size: Dim(100, 100), Origin: TopLeft, Scale: 2, Mode: ModePerCoordinate}
	if got := (Stroke{Width: 3, Color: Black}).attrs(l); !strings.Contains(got, `stroke-width="6" `) {
		t.Errorf("stroke width not scaled: %q", got)
	}
	if got := (Font{Size: 12, Family: "Verdana"}).attrs(l); !strings.Contains(got, `font-size="24" `) {
		t.Errorf("font size not scaled: %q", got)
	}

	// under the wrapper strategy the group transform scales instead
	l.Mode = ModeWrapper
	if got := (Stroke{Width: 3, Color: Black}).attrs(l); !strings.Contains(got, `stroke-width="3" `) {
		t.Errorf("stroke width should stay raw under the wrapper strategy: %q", got)
	}
}
