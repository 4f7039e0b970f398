package render

import (
	"io"

	"github.com/beevik/etree"

	"fromsel/common"
	"fromsel/hast"
)

const (
	xhtmlNamespace = "http://www.w3.org/1999/xhtml"
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

func namespace(space common.Space) string {
	if space == common.SpaceSvg {
		return svgNamespace
	}
	return xhtmlNamespace
}

// XML writes the element tree as an XML document. The root element declares
// the XHTML or SVG namespace; nested svg elements redeclare it.
func XML(w io.Writer, el *hast.Element, space common.Space, indent int, encoding string) error {
	if encoding == "" {
		encoding = "UTF-8"
	}
	doc := etree.NewDocument()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	doc.CreateProcInst("xml", `version="1.0" encoding="`+encoding+`"`)

	var xlink bool
	root := xmlElement(&doc.Element, el, elementSpace(space, el), "", &xlink)
	if xlink {
		root.CreateAttr("xmlns:xlink", xlinkNamespace)
	}
	if indent > 0 {
		doc.Indent(indent)
	}
	_, err := doc.WriteTo(w)
	return err
}

func xmlElement(parent *etree.Element, el *hast.Element, space common.Space, parentNS string, xlink *bool) *etree.Element {
	e := parent.CreateElement(tagName(el, space))
	ns := namespace(space)
	if ns != parentNS {
		e.CreateAttr("xmlns", ns)
	}
	for _, a := range attributes(el.Properties, space) {
		attr := e.CreateAttr(a.name, a.value)
		if attr.Space == "xlink" {
			*xlink = true
		}
	}
	for _, c := range el.Children {
		xmlElement(e, c, elementSpace(space, c), ns, xlink)
	}
	return e
}
