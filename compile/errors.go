package compile

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by every UnsupportedError.
var ErrUnsupported = errors.New("unsupported selector construct")

// Kind of construct that has no single element tree translation.
// ENUM(selector-list, sibling-at-root, pseudo-class, empty-pseudo-class, pseudo-element, attribute-operator)
type Kind int

// UnsupportedError is returned for selectors which are syntactically valid
// but cannot be turned into one element tree.
type UnsupportedError struct {
	Kind Kind
	Name string // offending operator or name, empty for selector lists
}

func (e *UnsupportedError) Error() string {
	switch e.Kind {
	case KindSelectorList:
		return "cannot handle selector list"
	case KindSiblingAtRoot:
		return fmt.Sprintf("cannot handle sibling combinator `%s` at root", e.Name)
	case KindPseudoClass:
		return fmt.Sprintf("cannot handle pseudo class `%s`", e.Name)
	case KindEmptyPseudoClass:
		return "cannot handle empty pseudo class"
	case KindPseudoElement:
		return fmt.Sprintf("cannot handle pseudo element `%s`", e.Name)
	case KindAttributeOperator:
		return fmt.Sprintf("cannot handle attribute equality modifier `%s`", e.Name)
	default:
		return fmt.Sprintf("cannot handle %s `%s`", e.Kind, e.Name)
	}
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(kind Kind, name string) error {
	return &UnsupportedError{Kind: kind, Name: name}
}
