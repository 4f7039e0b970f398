package selector

import (
	"errors"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser turns selector text into a rule chain AST. Parser is immutable
// after construction and may be shared between goroutines.
type Parser struct {
	log         *zap.Logger
	nesting     map[Combinator]bool
	attrMods    map[string]bool
	substitutes bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithNestingOperators registers combinators (">", "+", "~") recognized in
// addition to the descendant combinator, which is always available.
func WithNestingOperators(ops ...string) Option {
	return func(p *Parser) {
		for _, op := range ops {
			if c, ok := combinatorFromSymbol(op); ok {
				p.nesting[c] = true
			}
		}
	}
}

// WithAttrEqualityMods registers attribute operator modifiers ("~", "|",
// "^", "$", "*") recognized in addition to plain "=".
func WithAttrEqualityMods(mods ...string) Option {
	return func(p *Parser) {
		for _, m := range mods {
			p.attrMods[m] = true
		}
	}
}

// WithSubstitutes allows `$name` placeholders as attribute values.
func WithSubstitutes() Option {
	return func(p *Parser) {
		p.substitutes = true
	}
}

// NewParser creates a new selector parser.
func NewParser(log *zap.Logger, opts ...Option) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{
		log:      log.Named("selector-parser"),
		nesting:  make(map[Combinator]bool),
		attrMods: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses selector text into a List. Errors are always *SyntaxError.
func (p *Parser) Parse(text string) (*List, error) {
	toks, err := tokenize(text)
	if err != nil {
		p.log.Debug("Unable to tokenize selector", zap.String("selector", text), zap.Error(err))
		return nil, err
	}
	st := &parseState{Parser: p, text: text, toks: toks}
	list, err := st.list()
	if err != nil {
		p.log.Debug("Unable to parse selector", zap.String("selector", text), zap.Error(err))
		return nil, err
	}
	p.log.Debug("Parsed selector", zap.String("selector", text), zap.Int("rules", len(list.Rules)))
	return list, nil
}

type token struct {
	tt     css.TokenType
	data   string
	offset int
}

func (t token) isDelim(c string) bool {
	return t.tt == css.DelimToken && t.data == c
}

func (t token) describe() string {
	if t.tt == css.ErrorToken {
		return "end of input"
	}
	return `"` + t.data + `"`
}

// tokenize runs the CSS lexer over text. Comments are dropped, the token
// list always ends with an ErrorToken marking the end of input.
func tokenize(text string) ([]token, error) {
	l := css.NewLexer(parse.NewInputString(text))
	var (
		toks   []token
		offset int
	)
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, newSyntaxError(text, offset, "%v", err)
			}
			if offset < len(text) {
				return nil, newSyntaxError(text, offset, "unexpected NUL character")
			}
			return append(toks, token{tt: css.ErrorToken, offset: offset}), nil
		case css.BadStringToken:
			return nil, newSyntaxError(text, offset, "unterminated string")
		case css.BadURLToken:
			return nil, newSyntaxError(text, offset, "malformed url")
		case css.CommentToken:
		default:
			toks = append(toks, token{tt: tt, data: string(data), offset: offset})
		}
		offset += len(data)
	}
}

type parseState struct {
	*Parser
	text string
	toks []token
	pos  int
}

func (s *parseState) peek() token {
	return s.toks[s.pos]
}

func (s *parseState) next() token {
	t := s.toks[s.pos]
	if t.tt != css.ErrorToken {
		s.pos++
	}
	return t
}

func (s *parseState) skipWhitespace() bool {
	skipped := false
	for s.peek().tt == css.WhitespaceToken {
		s.pos++
		skipped = true
	}
	return skipped
}

func (s *parseState) errorf(t token, format string, args ...any) error {
	return newSyntaxError(s.text, t.offset, format, args...)
}

func (s *parseState) list() (*List, error) {
	list := &List{Raw: s.text}
	s.skipWhitespace()
	for {
		rule, err := s.chain()
		if err != nil {
			return nil, err
		}
		list.Rules = append(list.Rules, rule)

		s.skipWhitespace()
		t := s.next()
		switch {
		case t.tt == css.ErrorToken:
			return list, nil
		case t.tt == css.CommaToken:
			s.skipWhitespace()
		default:
			return nil, s.errorf(t, "unexpected %s", t.describe())
		}
	}
}

// chain parses compounds joined by combinators.
func (s *parseState) chain() (*Rule, error) {
	head, err := s.compound()
	if err != nil {
		return nil, err
	}
	cur := head
	for {
		ws := s.skipWhitespace()
		t := s.peek()

		var comb Combinator
		if t.tt == css.DelimToken && (t.data == ">" || t.data == "+" || t.data == "~") {
			c, _ := combinatorFromSymbol(t.data)
			if !s.nesting[c] {
				return nil, s.errorf(t, "unsupported nesting operator %s", t.describe())
			}
			s.next()
			s.skipWhitespace()
			comb = c
		} else if ws && startsCompound(t) {
			comb = CombinatorDescendant
		} else {
			return head, nil
		}

		nested, err := s.compound()
		if err != nil {
			return nil, err
		}
		nested.Combinator = comb
		cur.Nested = nested
		cur = nested
	}
}

func startsCompound(t token) bool {
	switch t.tt {
	case css.IdentToken, css.HashToken, css.LeftBracketToken, css.ColonToken:
		return true
	case css.DelimToken:
		return t.data == "*" || t.data == "."
	}
	return false
}

func (s *parseState) compound() (*Rule, error) {
	r := &Rule{}
	start := s.peek()
	matched := false

	switch {
	case start.tt == css.IdentToken:
		r.TagName = unescape(start.data)
		s.next()
		matched = true
	case start.isDelim("*"):
		r.TagName = Wildcard
		s.next()
		matched = true
	}

	for {
		t := s.peek()
		switch {
		case t.tt == css.HashToken:
			s.next()
			r.ID = unescape(t.data[1:])
		case t.isDelim("."):
			s.next()
			name := s.next()
			if name.tt != css.IdentToken {
				return nil, s.errorf(name, "expected class name but %s found", name.describe())
			}
			r.ClassNames = append(r.ClassNames, unescape(name.data))
		case t.tt == css.LeftBracketToken:
			s.next()
			attr, err := s.attribute()
			if err != nil {
				return nil, err
			}
			r.Attributes = append(r.Attributes, attr)
		case t.tt == css.ColonToken:
			s.next()
			if err := s.pseudo(r); err != nil {
				return nil, err
			}
		default:
			if !matched {
				return nil, s.errorf(t, "rule expected but %s found", t.describe())
			}
			return r, nil
		}
		matched = true
	}
}

var attrOperators = map[css.TokenType]string{
	css.IncludeMatchToken:   "~",
	css.DashMatchToken:      "|",
	css.PrefixMatchToken:    "^",
	css.SuffixMatchToken:    "$",
	css.SubstringMatchToken: "*",
}

func (s *parseState) attribute() (Attribute, error) {
	var attr Attribute

	s.skipWhitespace()
	name := s.next()
	if name.tt != css.IdentToken {
		return attr, s.errorf(name, "expected attribute name but %s found", name.describe())
	}
	attr.Name = unescape(name.data)

	s.skipWhitespace()
	op := s.next()
	switch {
	case op.tt == css.RightBracketToken:
		return attr, nil
	case op.isDelim("="):
		attr.Operator = "="
	default:
		mod, ok := attrOperators[op.tt]
		if !ok || !s.attrMods[mod] {
			return attr, s.errorf(op, `expected "=" but %s found`, op.describe())
		}
		attr.Operator = op.data
	}

	s.skipWhitespace()
	val := s.next()
	switch val.tt {
	case css.StringToken:
		attr.Value, attr.HasValue = unquote(val.data), true
	case css.IdentToken:
		attr.Value, attr.HasValue = unescape(val.data), true
	case css.NumberToken, css.DimensionToken, css.PercentageToken:
		attr.Value, attr.HasValue = val.data, true
	default:
		if !(val.isDelim("$") && s.substitutes) {
			return attr, s.errorf(val, "expected attribute value but %s found", val.describe())
		}
		sub := s.next()
		if sub.tt != css.IdentToken {
			return attr, s.errorf(sub, "expected substitute name but %s found", sub.describe())
		}
		attr.Substitute = unescape(sub.data)
	}

	s.skipWhitespace()
	if t := s.peek(); t.tt == css.IdentToken {
		switch flag := strings.ToLower(t.data); flag {
		case "i", "s":
			attr.CaseFlag = flag
			s.next()
			s.skipWhitespace()
		}
	}
	if end := s.next(); end.tt != css.RightBracketToken {
		return attr, s.errorf(end, `expected "]" but %s found`, end.describe())
	}
	return attr, nil
}

// pseudo parses what follows a colon: pseudo-class, functional pseudo-class
// or pseudo-element.
func (s *parseState) pseudo(r *Rule) error {
	t := s.next()
	if t.tt == css.ColonToken {
		name := s.next()
		if name.tt != css.IdentToken {
			return s.errorf(name, "expected pseudo-element name but %s found", name.describe())
		}
		r.PseudoElement = unescape(name.data)
		return nil
	}

	switch t.tt {
	case css.IdentToken:
		r.PseudoClasses = append(r.PseudoClasses, PseudoClass{Name: unescape(t.data)})
		return nil
	case css.FunctionToken:
		arg, err := s.functionArgument(t)
		if err != nil {
			return err
		}
		r.PseudoClasses = append(r.PseudoClasses, PseudoClass{
			Name:     unescape(strings.TrimSuffix(t.data, "(")),
			Argument: arg,
			Function: true,
		})
		return nil
	}
	return s.errorf(t, "expected pseudo-class name but %s found", t.describe())
}

// functionArgument collects raw text up to the parenthesis closing fn.
func (s *parseState) functionArgument(fn token) (string, error) {
	var sb strings.Builder
	depth := 1
	for {
		t := s.next()
		switch t.tt {
		case css.ErrorToken:
			return "", s.errorf(t, "unterminated %s", fn.describe())
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(sb.String()), nil
			}
		}
		sb.WriteString(t.data)
	}
}
