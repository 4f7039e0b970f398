// Package render serializes element trees as HTML, XML, JSON or a plain
// text dump and checks them against selectors.
package render

import (
	"bytes"
	"fmt"
	"io"

	"fromsel/common"
	"fromsel/hast"
)

// Options control serialization.
type Options struct {
	// Space of the root element.
	Space common.Space
	// Indent is the number of spaces per nesting level; 0 disables
	// indentation where the format allows it.
	Indent int
	// Encoding is declared by XML output.
	Encoding string
}

// Render writes el to w in format. Output always ends with a single new line.
func Render(w io.Writer, el *hast.Element, format common.OutputFmt, opts Options) error {
	var buf bytes.Buffer
	var err error
	switch format {
	case common.OutputFmtHtml:
		err = HTML(&buf, el, opts.Space)
	case common.OutputFmtXml:
		err = XML(&buf, el, opts.Space, opts.Indent, opts.Encoding)
	case common.OutputFmtJson:
		err = JSON(&buf, el, opts.Indent)
	case common.OutputFmtTree:
		_, err = buf.WriteString(Tree(el, opts.Indent))
	default:
		err = fmt.Errorf("unknown output format %d", format)
	}
	if err != nil {
		return err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
