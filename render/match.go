package render

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"fromsel/common"
	"fromsel/hast"
)

// Matches reports whether sel matches any element of the tree. Names are
// compared lower cased, the way selectors are matched against HTML
// documents.
func Matches(el *hast.Element, space common.Space, sel string) (bool, error) {
	s, err := cascadia.Compile(sel)
	if err != nil {
		return false, fmt.Errorf("unable to compile selector %q: %w", sel, err)
	}
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(toNode(el, elementSpace(space, el), true))
	return s.MatchFirst(doc) != nil, nil
}
