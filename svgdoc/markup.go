package svgdoc

// Markup emission helpers shared by all shapes.

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// ftoa formats a coordinate with its shortest decimal representation.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// attr emits `name="value" `, the trailing space separating it from
// the next attribute or the element terminator.
func attr(name, value string) string { return name + `="` + value + `" ` }

func attrF(name string, v float64) string { return attr(name, ftoa(v)) }

func elemStart(name string) string { return "<" + name + " " }

func elemEnd(name string) string { return "</" + name + ">\n" }

const emptyElemEnd = "/>\n"

// escape replaces the XML special characters of a text content or
// attribute value by entities.
func escape(s string) string { return html.EscapeString(s) }

// indent prefixes every non-empty line of the fragment with one tab,
// leaving empty lines alone.
func indent(fragment string) string {
	var b strings.Builder
	for len(fragment) > 0 {
		line := fragment
		if i := strings.IndexByte(fragment, '\n'); i >= 0 {
			line, fragment = fragment[:i+1], fragment[i+1:]
		} else {
			fragment = ""
		}
		if line != "\n" {
			b.WriteByte('\t')
		}
		b.WriteString(line)
	}
	return b.String()
}
