package selector_test

import (
	"errors"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"

	"fromsel/selector"
)

func newParser(t *testing.T, opts ...selector.Option) *selector.Parser {
	t.Helper()
	return selector.NewParser(zaptest.NewLogger(t), opts...)
}

func fullParser(t *testing.T) *selector.Parser {
	return newParser(t,
		selector.WithNestingOperators(">", "+", "~"),
		selector.WithAttrEqualityMods("~", "|", "^", "$", "*"),
	)
}

func TestParser_Compound(t *testing.T) {
	p := fullParser(t)

	list, err := p.Parse(`a#b.c.d[e][f="g h"][i=j s]:k::l`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(list.Rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(list.Rules))
	}

	want := &selector.Rule{
		TagName:    "a",
		ID:         "b",
		ClassNames: []string{"c", "d"},
		Attributes: []selector.Attribute{
			{Name: "e"},
			{Name: "f", Operator: "=", Value: "g h", HasValue: true},
			{Name: "i", Operator: "=", Value: "j", HasValue: true, CaseFlag: "s"},
		},
		PseudoClasses: []selector.PseudoClass{{Name: "k"}},
		PseudoElement: "l",
	}
	if got := list.Rules[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v\nwant %+v", got, want)
	}
}

func TestParser_Chain(t *testing.T) {
	p := fullParser(t)

	tests := []struct {
		input string
		tags  []string
		combs []selector.Combinator
	}{
		{"p i s", []string{"p", "i", "s"}, []selector.Combinator{selector.CombinatorDescendant, selector.CombinatorDescendant}},
		{"p>i > s", []string{"p", "i", "s"}, []selector.Combinator{selector.CombinatorChild, selector.CombinatorChild}},
		{"p + i~s", []string{"p", "i", "s"}, []selector.Combinator{selector.CombinatorNextSibling, selector.CombinatorSubsequentSibling}},
		{"  *  .a  ", []string{"*", ""}, []selector.Combinator{selector.CombinatorDescendant}},
		{"p /* note */ i", []string{"p", "i"}, []selector.Combinator{selector.CombinatorDescendant}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			list, err := p.Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			head := list.Rules[0]
			if head.Depth() != len(tt.tags) {
				t.Fatalf("Depth() = %d, want %d", head.Depth(), len(tt.tags))
			}
			i := 0
			for r := head; r != nil; r = r.Nested {
				if r.TagName != tt.tags[i] {
					t.Errorf("rule %d: TagName = %q, want %q", i, r.TagName, tt.tags[i])
				}
				if i > 0 && r.Combinator != tt.combs[i-1] {
					t.Errorf("rule %d: Combinator = %s, want %s", i, r.Combinator, tt.combs[i-1])
				}
				i++
			}
		})
	}
}

func TestParser_List(t *testing.T) {
	list, err := fullParser(t).Parse("a, b > c ,d")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(list.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(list.Rules))
	}
	if list.Raw != "a, b > c ,d" {
		t.Errorf("Raw = %q", list.Raw)
	}
	if got := list.String(); got != "a, b > c, d" {
		t.Errorf("String() = %q", got)
	}
}

func TestParser_FunctionalPseudoClass(t *testing.T) {
	list, err := fullParser(t).Parse("li:nth-child(2n + 1):not(.a, :b(c))")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []selector.PseudoClass{
		{Name: "nth-child", Argument: "2n + 1", Function: true},
		{Name: "not", Argument: ".a, :b(c)", Function: true},
	}
	if got := list.Rules[0].PseudoClasses; !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParser_Escapes(t *testing.T) {
	list, err := fullParser(t).Parse(`#\31 23.a\.b[title="say \"hi\""]`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	r := list.Rules[0]
	if r.ID != "123" {
		t.Errorf("ID = %q, want %q", r.ID, "123")
	}
	if len(r.ClassNames) != 1 || r.ClassNames[0] != "a.b" {
		t.Errorf("ClassNames = %q", r.ClassNames)
	}
	if r.Attributes[0].Value != `say "hi"` {
		t.Errorf("Value = %q", r.Attributes[0].Value)
	}
	if got := r.String(); got != `#\31 23.a\.b[title="say \"hi\""]` {
		t.Errorf("String() = %q", got)
	}
}

func TestParser_Registration(t *testing.T) {
	tests := []struct {
		name  string
		opts  []selector.Option
		input string
		ok    bool
	}{
		{"descendant always available", nil, "a b", true},
		{"child not registered", nil, "a > b", false},
		{"child registered", []selector.Option{selector.WithNestingOperators(">")}, "a > b", true},
		{"sibling not registered", []selector.Option{selector.WithNestingOperators(">")}, "a + b", false},
		{"equality always available", nil, "[a=b]", true},
		{"modifier not registered", nil, "[a~=b]", false},
		{"modifier registered", []selector.Option{selector.WithAttrEqualityMods("~")}, "[a~=b]", true},
		{"other modifier not registered", []selector.Option{selector.WithAttrEqualityMods("~")}, "[a^=b]", false},
		{"substitutes disabled", nil, "[a=$b]", false},
		{"substitutes enabled", []selector.Option{selector.WithSubstitutes()}, "[a=$b]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newParser(t, tt.opts...).Parse(tt.input)
			if tt.ok && err != nil {
				t.Errorf("Parse(%q) error = %v", tt.input, err)
			}
			if !tt.ok {
				var se *selector.SyntaxError
				if !errors.As(err, &se) {
					t.Errorf("Parse(%q) expected *SyntaxError, got %v", tt.input, err)
				}
			}
		})
	}
}

func TestParser_Substitute(t *testing.T) {
	list, err := newParser(t, selector.WithSubstitutes()).Parse("[a=$b]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := selector.Attribute{Name: "a", Operator: "=", Substitute: "b"}
	if got := list.Rules[0].Attributes[0]; got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
		column  int
	}{
		{"", "rule expected but end of input found", 1},
		{"@supports (transform-origin: 5% 5%) {}", `rule expected but "@supports" found`, 1},
		{"[foo%=bar]", `expected "=" but "%" found`, 5},
		{"a >", "rule expected but end of input found", 4},
		{"a > > b", `rule expected but ">" found`, 5},
		{"a.", "expected class name but end of input found", 3},
		{"a:", "expected pseudo-class name but end of input found", 3},
		{"a::1", `expected pseudo-element name but "1" found`, 4},
		{"[a=b", `expected "]" but end of input found`, 5},
		{"[=b]", `expected attribute name but "=" found`, 2},
		{"a:not(b", `unterminated "not("`, 8},
		{"a#", `unexpected "#"`, 2},
		{"a*", `unexpected "*"`, 2},
	}

	p := fullParser(t)
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			list, err := p.Parse(tt.input)
			if list != nil {
				t.Errorf("expected no list, got %v", list)
			}
			var se *selector.SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
			}
			if se.Message != tt.message {
				t.Errorf("Message = %q, want %q", se.Message, tt.message)
			}
			if se.Line != 1 || se.Column != tt.column {
				t.Errorf("position = %d:%d, want 1:%d", se.Line, se.Column, tt.column)
			}
		})
	}
}

func TestRule_String(t *testing.T) {
	p := fullParser(t)
	for input, want := range map[string]string{
		"p   i":             "p i",
		"p>i+s ~ b":         "p > i + s ~ b",
		"[a=b]":             `[a="b"]`,
		"[a]":               "[a]",
		"*":                 "*",
		".x":                ".x",
		":hover::after":     ":hover::after",
		"a:nth-child(2n+1)": "a:nth-child(2n+1)",
	} {
		list, err := p.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if got := list.String(); got != want {
			t.Errorf("String(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCombinator(t *testing.T) {
	for _, tt := range []struct {
		c       selector.Combinator
		symbol  string
		sibling bool
	}{
		{selector.CombinatorDescendant, " ", false},
		{selector.CombinatorChild, ">", false},
		{selector.CombinatorNextSibling, "+", true},
		{selector.CombinatorSubsequentSibling, "~", true},
	} {
		if got := tt.c.Symbol(); got != tt.symbol {
			t.Errorf("%s.Symbol() = %q, want %q", tt.c, got, tt.symbol)
		}
		if got := tt.c.IsSibling(); got != tt.sibling {
			t.Errorf("%s.IsSibling() = %v, want %v", tt.c, got, tt.sibling)
		}
	}
	if _, err := selector.ParseCombinator("next-sibling"); err != nil {
		t.Errorf("ParseCombinator() error = %v", err)
	}
}
