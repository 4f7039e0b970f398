// Package common holds enums shared by configuration, the compiler and the
// command line front end.
package common

// Markup vocabulary governing tag name casing and property names.
// ENUM(html, svg)
type Space int

// Specification of requested output type.
// ENUM(html, xml, json, tree)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtHtml:
		return ".html"
	case OutputFmtXml:
		return ".xml"
	case OutputFmtJson:
		return ".json"
	case OutputFmtTree:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// ForSpace returns the file extension for output whose root element is in
// space. XML with an svg root gets ".svg".
func (o OutputFmt) ForSpace(space Space) string {
	if o == OutputFmtXml && space == SpaceSvg {
		return ".svg"
	}
	return o.Ext()
}
