package hast

import (
	"strings"

	"fromsel/common"
)

// kind describes how string values of a property are interpreted.
type kind uint8

const (
	kindBoolean kind = 1 << iota
	kindOverloadedBoolean
	kindBooleanish
	kindNumber
	kindSpaceSeparated
	kindCommaSeparated
	kindCommaOrSpaceSeparated
)

// Info describes a known property.
type Info struct {
	Property  string
	Attribute string
	kinds     kind
}

func (i *Info) is(k kind) bool {
	return i.kinds&k != 0
}

// Boolean reports whether the property is a boolean attribute.
func (i *Info) Boolean() bool {
	return i.is(kindBoolean | kindOverloadedBoolean)
}

// CommaSeparated reports whether list values are joined with commas.
func (i *Info) CommaSeparated() bool {
	return i.is(kindCommaSeparated)
}

type definition struct {
	property  string
	attribute string // empty: derived from property
	kinds     kind
}

type schema struct {
	space      common.Space
	normal     map[string]*Info // lower cased property and attribute names
	byProperty map[string]*Info
}

func newSchema(space common.Space, sets ...[]definition) *schema {
	s := &schema{
		space:      space,
		normal:     make(map[string]*Info),
		byProperty: make(map[string]*Info),
	}
	for _, set := range sets {
		for _, d := range set {
			attr := d.attribute
			if attr == "" {
				attr = d.property
				if space == common.SpaceHtml {
					attr = strings.ToLower(attr)
				}
			}
			info := &Info{Property: d.property, Attribute: attr, kinds: d.kinds}
			s.byProperty[d.property] = info
			s.normal[strings.ToLower(d.property)] = info
			s.normal[strings.ToLower(attr)] = info
		}
	}
	return s
}

var (
	htmlSchema = newSchema(common.SpaceHtml, xmlDefinitions, xlinkDefinitions, xmlnsDefinitions, htmlDefinitions)
	svgSchema  = newSchema(common.SpaceSvg, xmlDefinitions, xlinkDefinitions, xmlnsDefinitions, svgDefinitions)
)

func schemaFor(space common.Space) *schema {
	if space == common.SpaceSvg {
		return svgSchema
	}
	return htmlSchema
}

// Find returns property information for an attribute or property name in
// the given space. Unknown names are returned unchanged as both property and
// attribute; `data-*` and `aria-*` names are converted between their
// attribute and camel cased property forms.
func Find(space common.Space, name string) *Info {
	s := schemaFor(space)
	normal := strings.ToLower(name)
	if info, ok := s.normal[normal]; ok {
		return info
	}
	for _, prefix := range []string{"data", "aria"} {
		if len(name) <= len(prefix) || !strings.HasPrefix(normal, prefix) {
			continue
		}
		rest := name[len(prefix):]
		switch {
		case rest[0] == '-' && validAttributeTail(rest):
			// data-foo-bar -> dataFooBar
			return &Info{Property: prefix + camelcase(rest), Attribute: name}
		case 'A' <= rest[0] && rest[0] <= 'Z':
			// dataFooBar -> data-foo-bar
			return &Info{Property: name, Attribute: prefix + kebabcase(rest)}
		}
	}
	return &Info{Property: name, Attribute: name}
}

// Attribute returns the attribute name for a property name.
func Attribute(space common.Space, property string) string {
	if info, ok := schemaFor(space).byProperty[property]; ok {
		return info.Attribute
	}
	return Find(space, property).Attribute
}

func validAttributeTail(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c == '-' || c == '_' || c == '.' || c == ':' || ('a' <= c && c <= 'z') || ('0' <= c && c <= '9')) {
			return false
		}
	}
	return true
}

func camelcase(s string) string {
	var sb strings.Builder
	upper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' {
			upper = true
			continue
		}
		if upper && 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(c)
	}
	return sb.String()
}

func kebabcase(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			sb.WriteByte('-')
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
