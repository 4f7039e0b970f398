package render

import (
	"maps"
	"slices"
	"strings"

	"fromsel/hast"
	"fromsel/utils/debug"
)

// Tree returns an indented human readable dump of the element tree.
func Tree(el *hast.Element, indent int) string {
	tw := debug.NewTreeWriter()
	if indent > 0 {
		tw = debug.NewTreeWriterIndent(strings.Repeat(" ", indent))
	}
	dumpElement(tw, 0, el)
	return tw.String()
}

func dumpElement(tw *debug.TreeWriter, depth int, el *hast.Element) {
	if el.TagName == "" {
		tw.Line(depth, "%s", el.Type)
	} else {
		tw.Line(depth, "%s <%s>", el.Type, el.TagName)
	}
	for _, name := range slices.Sorted(maps.Keys(el.Properties)) {
		tw.Value(depth+1, name, el.Properties[name])
	}
	for _, c := range el.Children {
		dumpElement(tw, depth+1, c)
	}
}
