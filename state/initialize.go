package state

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"fromsel/compile"
	"fromsel/selector"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// Parser returns selector parser set up according to the compiler
// configuration. It is created on first use.
func (e *LocalEnv) Parser() *selector.Parser {
	if e.parser != nil {
		return e.parser
	}
	var opts []selector.Option
	if e.Cfg != nil && e.Cfg.Compiler.Substitutes {
		opts = append(opts, selector.WithSubstitutes())
	}
	e.parser = compile.NewParser(e.Log, opts...)
	return e.parser
}

// SetCharset selects output character set by its IANA name. UTF-8 leaves
// CodePage nil so output is written as is.
func (e *LocalEnv) SetCharset(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		e.CodePage = nil
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return fmt.Errorf("unknown character set %q: %w", name, err)
	}
	if enc == nil {
		return fmt.Errorf("character set %q is not supported", name)
	}
	if enc == unicode.UTF8 {
		enc = nil
	}
	e.CodePage = enc
	return nil
}

// CharsetName returns IANA name of the output character set.
func (e *LocalEnv) CharsetName() string {
	return CharsetName(e.CodePage)
}

// CharsetName returns preferred MIME name of enc, falling back to IANA name,
// nil meaning UTF-8.
func CharsetName(enc encoding.Encoding) string {
	if enc == nil {
		return "UTF-8"
	}
	if n, err := ianaindex.MIME.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := ianaindex.IANA.Name(enc); err == nil && n != "" {
		return n
	}
	return "UTF-8"
}
