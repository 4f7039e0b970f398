package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"fromsel/common"
	"fromsel/hast"
)

// ToNode converts an element tree into an x/net/html tree. Elements in svg
// space are placed into the svg namespace.
func ToNode(el *hast.Element, space common.Space) *html.Node {
	return toNode(el, elementSpace(space, el), false)
}

func toNode(el *hast.Element, space common.Space, lower bool) *html.Node {
	name := tagName(el, space)
	if lower {
		name = strings.ToLower(name)
	}
	n := &html.Node{Type: html.ElementNode, Data: name}
	if space == common.SpaceSvg {
		n.Namespace = "svg"
	} else {
		n.DataAtom = atom.Lookup([]byte(name))
	}
	for _, a := range attributes(el.Properties, space) {
		key := a.name
		if lower {
			key = strings.ToLower(key)
		}
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: a.value})
	}
	for _, c := range el.Children {
		n.AppendChild(toNode(c, elementSpace(space, c), lower))
	}
	return n
}

// HTML writes the element tree as an HTML fragment.
func HTML(w io.Writer, el *hast.Element, space common.Space) error {
	return html.Render(w, ToNode(el, space))
}
