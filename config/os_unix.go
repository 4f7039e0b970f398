//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

const badFileNameChars = string(os.PathSeparator) + string(os.PathListSeparator) + "\x00"

// CleanFileName replaces characters not allowed in file names with an
// underscore and limits the length of the result.
func CleanFileName(in string) string {
	return cleanFileName(in, badFileNameChars)
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
