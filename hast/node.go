// Package hast defines the element tree produced from selectors and the
// per-space constructors used to build it. The node shape follows the hast
// syntax tree format: type, tagName, properties, children.
package hast

import (
	"iter"
	"reflect"

	"fromsel/common"
)

// ElementType is the value of Type for every element node.
const ElementType = "element"

// Properties maps property names to values. Values are one of bool, string,
// float64 or []string.
type Properties map[string]any

// Element is a single markup element.
type Element struct {
	Type       string     `json:"type"`
	TagName    string     `json:"tagName"`
	Properties Properties `json:"properties"`
	Children   []*Element `json:"children"`
	// Space is the space the element was built in.
	Space common.Space `json:"-"`
}

// Append adds children at the end of the child list.
func (e *Element) Append(children ...*Element) {
	e.Children = append(e.Children, children...)
}

// Equal reports whether two trees are structurally identical.
func (e *Element) Equal(o *Element) bool {
	return reflect.DeepEqual(e, o)
}

// Walk visits e and its descendants depth first, in document order.
func (e *Element) Walk() iter.Seq2[int, *Element] {
	return func(yield func(int, *Element) bool) {
		e.walk(0, yield)
	}
}

func (e *Element) walk(depth int, yield func(int, *Element) bool) bool {
	if !yield(depth, e) {
		return false
	}
	for _, c := range e.Children {
		if !c.walk(depth+1, yield) {
			return false
		}
	}
	return true
}

// Attr is a single entry of an attribute bag.
type Attr struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute bag passed to a Builder. Setting an
// existing name replaces its value but keeps its original position.
type Attributes struct {
	list  []Attr
	index map[string]int
}

// NewAttributes creates an empty bag.
func NewAttributes() *Attributes {
	return &Attributes{index: make(map[string]int)}
}

// Set stores value under name.
func (a *Attributes) Set(name string, value any) *Attributes {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[name]; ok {
		a.list[i].Value = value
		return a
	}
	a.index[name] = len(a.list)
	a.list = append(a.list, Attr{Name: name, Value: value})
	return a
}

// Get returns the value stored under name.
func (a *Attributes) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	i, ok := a.index[name]
	if !ok {
		return nil, false
	}
	return a.list[i].Value, true
}

// Len returns number of entries in the bag.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.list)
}

// All iterates entries in insertion order.
func (a *Attributes) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if a == nil {
			return
		}
		for _, attr := range a.list {
			if !yield(attr.Name, attr.Value) {
				return
			}
		}
	}
}
