package render

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"fromsel/common"
	"fromsel/hast"
)

type attribute struct {
	name  string
	value string
}

// elementSpace returns the space el lives in when its parent lives in
// parent. Content of svg never returns to html.
func elementSpace(parent common.Space, el *hast.Element) common.Space {
	if parent == common.SpaceSvg {
		return parent
	}
	return el.Space
}

// tagName substitutes a generic tag for elements without one so that the
// result stays well formed.
func tagName(el *hast.Element, space common.Space) string {
	switch {
	case el.TagName != "":
		return el.TagName
	case space == common.SpaceSvg:
		return "g"
	default:
		return "div"
	}
}

func attrRank(name string) int {
	switch name {
	case "id":
		return 0
	case "class":
		return 1
	default:
		return 2
	}
}

// attributes serializes element properties. Booleans become valueless
// attributes (false drops the attribute), lists are joined with spaces or
// commas depending on the property. Output order is id, class, then the
// remaining attributes by name.
func attributes(props hast.Properties, space common.Space) []attribute {
	out := make([]attribute, 0, len(props))
	for prop, value := range props {
		info := hast.Find(space, prop)
		var s string
		switch v := value.(type) {
		case bool:
			if !v {
				continue
			}
		case string:
			s = v
		case float64:
			s = strconv.FormatFloat(v, 'g', -1, 64)
		case []string:
			sep := " "
			if info.CommaSeparated() {
				sep = ", "
			}
			s = strings.Join(v, sep)
		default:
			continue
		}
		out = append(out, attribute{name: hast.Attribute(space, prop), value: s})
	}
	slices.SortFunc(out, func(a, b attribute) int {
		if c := cmp.Compare(attrRank(a.name), attrRank(b.name)); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	return out
}
