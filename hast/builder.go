package hast

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"fromsel/common"
)

// Builder creates elements in a single markup space.
type Builder interface {
	// Space returns the space elements are created in.
	Space() common.Space
	// Build creates an element. An empty tag name creates a generic element
	// without a tag.
	Build(tagName string, attrs *Attributes, children ...*Element) *Element
}

type builder struct {
	space     common.Space
	normalize func(string) string
}

var (
	htmlBuilder Builder = builder{space: common.SpaceHtml, normalize: strings.ToLower}
	svgBuilder  Builder = builder{space: common.SpaceSvg, normalize: func(s string) string { return s }}
)

// For returns the builder for space.
func For(space common.Space) Builder {
	if space == common.SpaceSvg {
		return svgBuilder
	}
	return htmlBuilder
}

// H builds an element in html space: tag names are lower cased.
func H(tagName string, attrs *Attributes, children ...*Element) *Element {
	return htmlBuilder.Build(tagName, attrs, children...)
}

// S builds an element in svg space: tag names keep their case.
func S(tagName string, attrs *Attributes, children ...*Element) *Element {
	return svgBuilder.Build(tagName, attrs, children...)
}

func (b builder) Space() common.Space {
	return b.space
}

func (b builder) Build(tagName string, attrs *Attributes, children ...*Element) *Element {
	el := &Element{
		Type:       ElementType,
		TagName:    b.normalize(tagName),
		Properties: make(Properties, attrs.Len()),
		Children:   make([]*Element, 0, len(children)),
		Space:      b.space,
	}
	for name, value := range attrs.All() {
		b.addProperty(el.Properties, name, value)
	}
	el.Children = append(el.Children, children...)
	return el
}

func (b builder) addProperty(props Properties, name string, value any) {
	info := Find(b.space, name)

	var result any
	switch v := value.(type) {
	case nil:
		return
	case float64:
		if math.IsNaN(v) {
			return
		}
		result = v
	case int:
		result = float64(v)
	case bool:
		result = v
	case string:
		switch {
		case info.is(kindSpaceSeparated):
			result = splitSpaces(v)
		case info.is(kindCommaSeparated):
			result = splitCommas(v)
		case info.is(kindCommaOrSpaceSeparated):
			result = splitSpaces(strings.Join(splitCommas(v), " "))
		default:
			result = parsePrimitive(info, v)
		}
	case []string:
		result = slices.Clone(v)
	default:
		return
	}

	if list, ok := result.([]string); ok && info.Property == "className" {
		if prev, ok := props["className"].([]string); ok {
			result = append(prev, list...)
		}
	}
	props[info.Property] = result
}

func parsePrimitive(info *Info, value string) any {
	if info.is(kindNumber) && value != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return f
		}
	}
	if info.is(kindBoolean|kindOverloadedBoolean) &&
		(value == "" || strings.EqualFold(value, info.Property)) {
		return true
	}
	return value
}

func splitSpaces(s string) []string {
	return strings.Fields(s)
}

func splitCommas(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
