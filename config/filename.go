package config

import (
	"strings"
	"unicode/utf8"
)

// maxFileNameLen is the common file system limit on name length in bytes.
const maxFileNameLen = 255

func cleanFileName(in, bad string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if strings.ContainsRune(bad, sym) || sym < ' ' {
			return '_'
		}
		return sym
	}, in), ".")
	for len(out) > maxFileNameLen {
		_, size := utf8.DecodeLastRuneInString(out)
		out = out[:len(out)-size]
	}
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
