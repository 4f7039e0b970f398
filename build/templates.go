package build

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"fromsel/common"
	"fromsel/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context  string
	Index    int
	Selector string
	Slug     string
	Format   string
	Space    string
}

func newValues(name config.TemplateFieldName, index int, sel string, format common.OutputFmt, space common.Space) Values {
	return Values{
		Context:  string(name),
		Index:    index,
		Selector: sel,
		Slug:     slug.Make(sel),
		Format:   format.String(),
		Space:    space.String(),
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
