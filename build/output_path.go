package build

import (
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fromsel/config"
)

// buildOutputPath returns path of the file receiving output for selector
// number index. Name comes from configured template, path separators in the
// expanded name create subdirectories. When expansion fails or produces
// nothing the name falls back to the selector slug or its index.
func (p *processor) buildOutputPath(index int, sel string) string {
	values := newValues(config.NameTemplateFieldName, index, sel, p.format, p.space)
	ext := p.format.ForSpace(p.space)

	name, err := expandTemplate(config.NameTemplateFieldName, p.nameTemplate, values)
	if err != nil {
		p.log.Warn("Unable to prepare output filename", zap.String("selector", sel), zap.Error(err))
		name = ""
	}
	segments := splitAndCleanPath(filepath.FromSlash(strings.TrimSpace(name)))
	if len(segments) == 0 {
		return filepath.Join(p.outDir, defaultFileName(values)+ext)
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, p.outDir)
	for _, s := range segments {
		parts = append(parts, config.CleanFileName(s))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

func defaultFileName(v Values) string {
	if v.Slug != "" {
		return config.CleanFileName(v.Slug)
	}
	return "selector-" + strconv.Itoa(v.Index)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimRight(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		if tail != "." && tail != ".." {
			segments = slices.Insert(segments, 0, tail)
		}
		head = strings.TrimRight(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}
