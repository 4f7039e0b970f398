package selector

import (
	"strings"
)

// Combinator links a rule to the rule preceding it in a chain.
// ENUM(descendant, child, next-sibling, subsequent-sibling)
type Combinator int

// Symbol returns the CSS token of the combinator (a single space for the
// descendant combinator).
func (c Combinator) Symbol() string {
	switch c {
	case CombinatorChild:
		return ">"
	case CombinatorNextSibling:
		return "+"
	case CombinatorSubsequentSibling:
		return "~"
	default:
		return " "
	}
}

// IsSibling reports whether the combinator relates elements on the same level.
func (c Combinator) IsSibling() bool {
	return c == CombinatorNextSibling || c == CombinatorSubsequentSibling
}

func combinatorFromSymbol(sym string) (Combinator, bool) {
	switch sym {
	case ">":
		return CombinatorChild, true
	case "+":
		return CombinatorNextSibling, true
	case "~":
		return CombinatorSubsequentSibling, true
	}
	return CombinatorDescendant, false
}

// Wildcard is the universal type selector.
const Wildcard = "*"

// Attribute is a single attribute predicate: `[name]` when Operator is empty,
// `[name op value flag]` otherwise.
type Attribute struct {
	Name       string
	Operator   string // "=", "~=", "|=", "^=", "$=", "*=" or "" for presence
	Value      string
	HasValue   bool   // false for presence and for unresolved substitutions
	Substitute string // name of `$name` substitution, if any
	CaseFlag   string // "i" or "s" if present
}

// PseudoClass is a `:name` or `:name(argument)` reference.
type PseudoClass struct {
	Name     string
	Argument string
	Function bool
}

// Rule is one compound selector in a chain. The rule chain is singly
// linked: Nested points to the next compound to the right and carries the
// combinator joining it to this rule.
type Rule struct {
	TagName       string // "", "*" or a type name as written
	ID            string // last #id of the compound
	ClassNames    []string
	Attributes    []Attribute
	PseudoClasses []PseudoClass
	PseudoElement string

	Combinator Combinator // relation to the previous rule, meaningless on chain head
	Nested     *Rule
}

// IsWildcard reports whether the rule has no explicit type name.
func (r *Rule) IsWildcard() bool {
	return r.TagName == "" || r.TagName == Wildcard
}

// Depth returns number of rules in the chain starting with r.
func (r *Rule) Depth() int {
	n := 0
	for ; r != nil; r = r.Nested {
		n++
	}
	return n
}

// String returns normalized CSS text of the chain starting with r.
func (r *Rule) String() string {
	var sb strings.Builder
	for cur := r; cur != nil; cur = cur.Nested {
		if cur != r {
			if cur.Combinator == CombinatorDescendant {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(" " + cur.Combinator.Symbol() + " ")
			}
		}
		cur.writeCompound(&sb)
	}
	return sb.String()
}

func (r *Rule) writeCompound(sb *strings.Builder) {
	empty := true
	if r.TagName != "" {
		sb.WriteString(escapeIdent(r.TagName, true))
		empty = false
	}
	if r.ID != "" {
		sb.WriteString("#" + escapeIdent(r.ID, false))
		empty = false
	}
	for _, c := range r.ClassNames {
		sb.WriteString("." + escapeIdent(c, false))
		empty = false
	}
	for _, a := range r.Attributes {
		sb.WriteString("[" + escapeIdent(a.Name, false))
		if a.Operator != "" {
			sb.WriteString(a.Operator)
			switch {
			case a.HasValue:
				sb.WriteString(`"` + escapeString(a.Value) + `"`)
			case a.Substitute != "":
				sb.WriteString("$" + a.Substitute)
			}
			if a.CaseFlag != "" {
				sb.WriteString(" " + a.CaseFlag)
			}
		}
		sb.WriteByte(']')
		empty = false
	}
	for _, pc := range r.PseudoClasses {
		sb.WriteString(":" + escapeIdent(pc.Name, false))
		if pc.Function {
			sb.WriteString("(" + pc.Argument + ")")
		}
		empty = false
	}
	if r.PseudoElement != "" {
		sb.WriteString("::" + escapeIdent(r.PseudoElement, false))
		empty = false
	}
	if empty {
		sb.WriteString(Wildcard)
	}
}

// List is a parsed selector list, one chain head per comma separated item.
type List struct {
	Raw   string // source text
	Rules []*Rule
}

// String returns normalized CSS text of the whole list.
func (l *List) String() string {
	parts := make([]string, 0, len(l.Rules))
	for _, r := range l.Rules {
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ", ")
}
