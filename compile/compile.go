// Package compile turns a parsed CSS selector into the element tree an
// engine would have to contain for the selector to match.
//
// Child and descendant combinators both nest the next compound inside the
// current element. Sibling combinators place it next to the current element
// inside the enclosing parent, so they are rejected on the root compound.
// An `svg` type selector in html space switches its subtree to svg space;
// siblings of that element stay in the enclosing space.
package compile

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"fromsel/common"
	"fromsel/hast"
	"fromsel/selector"
)

// parserOptions make the parser recognize every combinator and attribute
// operator so that unsupported ones are reported by Compile rather than as
// syntax errors.
var parserOptions = []selector.Option{
	selector.WithNestingOperators(">", "+", "~"),
	selector.WithAttrEqualityMods("~", "|", "^", "$", "*"),
}

var defaultParser = sync.OnceValue(func() *selector.Parser {
	return selector.NewParser(nil, parserOptions...)
})

// NewParser returns a parser configured the way FromSelector expects it,
// with additional options applied on top.
func NewParser(log *zap.Logger, opts ...selector.Option) *selector.Parser {
	return selector.NewParser(log, append(slices.Clone(parserOptions), opts...)...)
}

type options struct {
	space  common.Space
	parser *selector.Parser
}

// Option configures FromSelector.
type Option func(*options)

// WithSpace sets the space of the root element (html by default).
func WithSpace(space common.Space) Option {
	return func(o *options) {
		o.space = space
	}
}

// WithParser replaces the default selector parser.
func WithParser(p *selector.Parser) Option {
	return func(o *options) {
		o.parser = p
	}
}

// FromSelector parses text and builds the element tree for it. Empty text
// is treated as the universal selector. Parse failures are returned as
// *selector.SyntaxError, untranslatable selectors as *UnsupportedError.
func FromSelector(text string, opts ...Option) (*hast.Element, error) {
	o := options{space: common.SpaceHtml}
	for _, opt := range opts {
		opt(&o)
	}
	if o.parser == nil {
		o.parser = defaultParser()
	}
	if strings.TrimSpace(text) == "" {
		text = selector.Wildcard
	}

	list, err := o.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Compile(list, o.space)
}

// Compile builds the element tree for a parsed selector starting in space.
func Compile(list *selector.List, space common.Space) (*hast.Element, error) {
	if len(list.Rules) > 1 {
		return nil, unsupported(KindSelectorList, "")
	}
	if len(list.Rules) == 0 {
		return hast.For(space).Build("", nil), nil
	}

	head := list.Rules[0]
	if head.Nested != nil && head.Nested.Combinator.IsSibling() {
		return nil, unsupported(KindSiblingAtRoot, head.Nested.Combinator.Symbol())
	}

	nodes, err := rule(head, state{space: space})
	if err != nil {
		return nil, err
	}
	return nodes[0], nil
}

type state struct {
	space common.Space
}

// rule builds the element for query followed by the elements produced by
// sibling combinators; the caller places all of them on the same level.
func rule(query *selector.Rule, st state) ([]*hast.Element, error) {
	name := query.TagName
	if query.IsWildcard() {
		name = ""
	}
	space := st.space
	if space == common.SpaceHtml && name == "svg" {
		space = common.SpaceSvg
	}

	if err := checkPseudos(query); err != nil {
		return nil, err
	}
	attrs, err := properties(query)
	if err != nil {
		return nil, err
	}

	node := hast.For(space).Build(name, attrs)
	results := []*hast.Element{node}

	if query.Nested == nil {
		return results, nil
	}
	if query.Nested.Combinator.IsSibling() {
		siblings, err := rule(query.Nested, st)
		if err != nil {
			return nil, err
		}
		return append(results, siblings...), nil
	}

	children, err := rule(query.Nested, state{space: space})
	if err != nil {
		return nil, err
	}
	node.Append(children...)
	return results, nil
}

func checkPseudos(query *selector.Rule) error {
	for _, pc := range query.PseudoClasses {
		if pc.Name == "" {
			return unsupported(KindEmptyPseudoClass, "")
		}
		return unsupported(KindPseudoClass, pc.Name)
	}
	if query.PseudoElement != "" {
		return unsupported(KindPseudoElement, query.PseudoElement)
	}
	return nil
}

// properties translates id, classes and attribute predicates into an
// attribute bag. Later predicates overwrite earlier ones with the same name.
func properties(query *selector.Rule) (*hast.Attributes, error) {
	attrs := hast.NewAttributes()
	if query.ID != "" {
		attrs.Set("id", query.ID)
	}
	if len(query.ClassNames) > 0 {
		attrs.Set("className", slices.Clone(query.ClassNames))
	}
	for _, a := range query.Attributes {
		switch a.Operator {
		case "":
			attrs.Set(a.Name, true)
		case "=":
			// unresolved substitutions carry no value
			if a.HasValue {
				attrs.Set(a.Name, a.Value)
			}
		default:
			return nil, unsupported(KindAttributeOperator, a.Operator)
		}
	}
	return attrs, nil
}
