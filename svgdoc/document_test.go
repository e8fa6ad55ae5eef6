package svgdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEndToEndPerCoordinate(t *testing.T) {
	layout := NewLayout(Dim(100, 100), BottomLeft)
	layout.Mode = ModePerCoordinate
	doc := NewDocument("out.svg", layout).
		Append(NewCircle(Pt(80, 80), 40, Fill{Color: RGB(100, 200, 120)}, NoStroke))

	got := doc.Render()
	for _, want := range []string{
		`<svg width="100px" height="100px" xmlns="http://www.w3.org/2000/svg" version="1.1" >`,
		"\t<circle cx=\"80\" cy=\"20\" r=\"20\" fill=\"rgb(100,200,120)\" />\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "transform=") {
		t.Errorf("per-coordinate document must not carry a transform:\n%s", got)
	}
}

func TestEndToEndWrapper(t *testing.T) {
	layout := NewLayout(Dim(100, 100), BottomLeft)
	doc := NewDocument("out.svg", layout).
		Append(NewCircle(Pt(80, 80), 40, Fill{Color: RGB(100, 200, 120)}, NoStroke))

	got := doc.Render()
	for _, want := range []string{
		`transform="scale(1 -1) translate(0 -100)" `,
		`<circle cx="80" cy="80" r="20" `,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document misses %q:\n%s", want, got)
		}
	}
}

func TestRenderIdentity(t *testing.T) {
	layout := NewLayout(Dim(100, 100), TopLeft)
	rect := NewRect(Pt(10, 10), 30, 20, Fill{Color: Blue}, NoStroke)
	doc := NewDocument("out.svg", layout).Append(rect)

	want := "<?xml version=\"1.0\" standalone=\"no\" ?>\n" +
		"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n" +
		"<svg width=\"100px\" height=\"100px\" xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" >\n" +
		"\t<rect x=\"10\" y=\"10\" width=\"30\" height=\"20\" fill=\"rgb(0,0,255)\" />\n" +
		"</svg>\n"
	if diff := cmp.Diff(want, doc.Render()); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}

	// the identity layout renders the same under both strategies
	layout.Mode = ModePerCoordinate
	doc2 := NewDocument("out.svg", layout).Append(rect)
	if doc2.Render() != doc.Render() {
		t.Fatal("strategies disagree on the identity layout")
	}
}

func TestDocumentAppendCopies(t *testing.T) {
	doc := NewDocument("out.svg", NewLayout(Dim(100, 100), TopLeft))
	circle := NewCircle(Pt(10, 10), 4, Fill{Color: Red}, NoStroke)
	doc.Append(circle)

	before := doc.Render()
	circle.Offset(Pt(50, 50))
	if doc.Render() != before {
		t.Fatal("the document must own an independent copy of an appended shape")
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")
	doc := NewDocument(path, NewLayout(Dim(10, 10), TopLeft)).
		Append(NewLine(Pt(0, 0), Pt(10, 10), Stroke{Width: 1, Color: Black}))

	if err := doc.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != doc.Render() {
		t.Fatal("saved file differs from Render")
	}

	bad := NewDocument(filepath.Join(dir, "missing", "out.svg"), NewLayout(Dim(10, 10), TopLeft))
	if err := bad.Save(); err == nil {
		t.Fatal("saving to a missing directory should fail")
	}
}
