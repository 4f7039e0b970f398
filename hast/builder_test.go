package hast

import (
	"reflect"
	"testing"

	"fromsel/common"
)

func TestBuilder_TagName(t *testing.T) {
	tests := []struct {
		space common.Space
		tag   string
		want  string
	}{
		{common.SpaceHtml, "DIV", "div"},
		{common.SpaceHtml, "altGlyph", "altglyph"},
		{common.SpaceHtml, "", ""},
		{common.SpaceSvg, "altGlyph", "altGlyph"},
		{common.SpaceSvg, "foreignObject", "foreignObject"},
		{common.SpaceSvg, "", ""},
	}
	for _, tt := range tests {
		b := For(tt.space)
		if b.Space() != tt.space {
			t.Errorf("For(%s).Space() = %s", tt.space, b.Space())
		}
		el := b.Build(tt.tag, nil)
		if el.TagName != tt.want {
			t.Errorf("%s: Build(%q).TagName = %q, want %q", tt.space, tt.tag, el.TagName, tt.want)
		}
		if el.Space != tt.space {
			t.Errorf("%s: Build(%q).Space = %s", tt.space, tt.tag, el.Space)
		}
		if el.Type != ElementType || el.Properties == nil || el.Children == nil || len(el.Children) != 0 {
			t.Errorf("%s: Build(%q) = %+v, want empty element", tt.space, tt.tag, el)
		}
	}
}

func TestBuilder_Properties(t *testing.T) {
	tests := []struct {
		name  string
		space common.Space
		attrs *Attributes
		want  Properties
	}{
		{
			name:  "unknown attribute kept",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("a", true).Set("b", "c"),
			want:  Properties{"a": true, "b": "c"},
		},
		{
			name:  "nil values skipped",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("id", nil).Set("className", nil),
			want:  Properties{},
		},
		{
			name:  "class merges into className",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("className", []string{"a", "b"}).Set("class", "c d"),
			want:  Properties{"className": []string{"a", "b", "c", "d"}},
		},
		{
			name:  "html attribute names",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("for", "x").Set("http-equiv", "refresh").Set("accept-charset", "utf-8"),
			want: Properties{
				"htmlFor":       []string{"x"},
				"httpEquiv":     []string{"refresh"},
				"acceptCharset": []string{"utf-8"},
			},
		},
		{
			name:  "booleans",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("hidden", "").Set("checked", "checked").Set("disabled", "nope"),
			want:  Properties{"hidden": true, "checked": true, "disabled": "nope"},
		},
		{
			name:  "numbers",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("tabindex", "-1").Set("maxlength", "ten").Set("width", 10),
			want:  Properties{"tabIndex": -1.0, "maxLength": "ten", "width": 10.0},
		},
		{
			name:  "comma separated",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("accept", "image/png, image/gif,"),
			want:  Properties{"accept": []string{"image/png", "image/gif"}},
		},
		{
			name:  "data and aria",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("data-foo-bar", "1").Set("aria-label", "x").Set("dataBaz", "2"),
			want:  Properties{"dataFooBar": "1", "ariaLabel": "x", "dataBaz": "2"},
		},
		{
			name:  "svg case sensitive attributes",
			space: common.SpaceSvg,
			attrs: NewAttributes().Set("viewbox", "0 0 1 1").Set("stroke-width", "2").Set("cx", "10"),
			want:  Properties{"viewBox": "0 0 1 1", "strokeWidth": "2", "cx": "10"},
		},
		{
			name:  "viewbox unknown in html",
			space: common.SpaceHtml,
			attrs: NewAttributes().Set("viewbox", "0 0 1 1"),
			want:  Properties{"viewbox": "0 0 1 1"},
		},
		{
			name:  "xlink",
			space: common.SpaceSvg,
			attrs: NewAttributes().Set("xlink:href", "#a"),
			want:  Properties{"xLinkHref": "#a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := For(tt.space).Build("x", tt.attrs)
			if !reflect.DeepEqual(el.Properties, tt.want) {
				t.Errorf("Properties = %#v, want %#v", el.Properties, tt.want)
			}
		})
	}
}

func TestBuilder_Children(t *testing.T) {
	child := S("circle", nil)
	el := H("div", nil, H("span", nil), child)
	if len(el.Children) != 2 || el.Children[1] != child {
		t.Fatalf("unexpected children %+v", el.Children)
	}
	el.Append(H("p", nil))
	if len(el.Children) != 3 {
		t.Errorf("expected 3 children after Append, got %d", len(el.Children))
	}
}

func TestAttributes_Order(t *testing.T) {
	a := NewAttributes().Set("x", 1).Set("y", 2).Set("x", 3)
	var names []string
	var values []any
	for n, v := range a.All() {
		names = append(names, n)
		values = append(values, v)
	}
	if !reflect.DeepEqual(names, []string{"x", "y"}) {
		t.Errorf("names = %v", names)
	}
	if !reflect.DeepEqual(values, []any{3, 2}) {
		t.Errorf("values = %v", values)
	}
	if v, ok := a.Get("y"); !ok || v != 2 {
		t.Errorf("Get(y) = %v, %v", v, ok)
	}
	var nilAttrs *Attributes
	if nilAttrs.Len() != 0 {
		t.Error("nil Attributes must be empty")
	}
}

func TestFindAndAttribute(t *testing.T) {
	tests := []struct {
		space     common.Space
		property  string
		attribute string
	}{
		{common.SpaceHtml, "className", "class"},
		{common.SpaceHtml, "htmlFor", "for"},
		{common.SpaceHtml, "tabIndex", "tabindex"},
		{common.SpaceHtml, "dataFooBar", "data-foo-bar"},
		{common.SpaceHtml, "ariaDescribedBy", "aria-described-by"},
		{common.SpaceHtml, "whatever", "whatever"},
		{common.SpaceSvg, "viewBox", "viewBox"},
		{common.SpaceSvg, "strokeWidth", "stroke-width"},
		{common.SpaceSvg, "xLinkHref", "xlink:href"},
		{common.SpaceSvg, "xmlnsXLink", "xmlns:xlink"},
	}
	for _, tt := range tests {
		if got := Attribute(tt.space, tt.property); got != tt.attribute {
			t.Errorf("%s: Attribute(%q) = %q, want %q", tt.space, tt.property, got, tt.attribute)
		}
		if got := Find(tt.space, tt.attribute).Property; got != tt.property {
			t.Errorf("%s: Find(%q).Property = %q, want %q", tt.space, tt.attribute, got, tt.property)
		}
	}
}

func TestElement_Walk(t *testing.T) {
	tree := H("a", nil, H("b", nil, H("c", nil)), H("d", nil))
	var got []string
	for depth, el := range tree.Walk() {
		got = append(got, el.TagName+string(rune('0'+depth)))
	}
	if want := []string{"a0", "b1", "c2", "d1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}

	count := 0
	for range tree.Walk() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("early break visited %d nodes", count)
	}
}
