package render

import (
	"encoding/json"
	"io"
	"strings"

	"fromsel/hast"
)

// JSON writes the element tree in hast JSON form.
func JSON(w io.Writer, el *hast.Element, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(el)
}
