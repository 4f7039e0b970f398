package selector

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
)

// SyntaxError is returned when selector text cannot be parsed.
type SyntaxError struct {
	Message string
	Offset  int // byte offset into the selector text
	Line    int
	Column  int
	Context string // source line with a caret under the offending position
}

func newSyntaxError(text string, offset int, format string, args ...any) *SyntaxError {
	perr := parse.NewError(strings.NewReader(text), offset, format, args...)
	return &SyntaxError{
		Message: perr.Message,
		Offset:  offset,
		Line:    perr.Line,
		Column:  perr.Column,
		Context: perr.Context,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
}
