package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/encoding/charmap"

	"fromsel/common"
	"fromsel/compile"
	"fromsel/selector"
)

func newTestProcessor(t *testing.T) (*processor, *bytes.Buffer) {
	t.Helper()
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	var out bytes.Buffer
	return &processor{
		log:          log,
		parser:       compile.NewParser(log),
		space:        common.SpaceHtml,
		format:       common.OutputFmtHtml,
		nameTemplate: "{{ .Slug }}",
		stdout:       &out,
	}, &out
}

func TestRun_Stdout(t *testing.T) {
	p, out := newTestProcessor(t)
	if err := p.run(context.Background(), []string{"div#a", "p.x svg circle"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	want := "<div id=\"a\"></div>\n<p class=\"x\"><svg><circle></circle></svg></p>\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_Formats(t *testing.T) {
	tests := []struct {
		format common.OutputFmt
		space  common.Space
		want   string
	}{
		{common.OutputFmtJson, common.SpaceHtml, `{"type":"element","tagName":"a","properties":{},"children":[]}` + "\n"},
		{common.OutputFmtTree, common.SpaceHtml, "element <a>\n"},
		{common.OutputFmtHtml, common.SpaceSvg, "<a></a>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			p, out := newTestProcessor(t)
			p.format, p.space = tt.format, tt.space
			if err := p.run(context.Background(), []string{"a"}); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRun_AggregatesErrors(t *testing.T) {
	p, out := newTestProcessor(t)
	err := p.run(context.Background(), []string{"a", "a, b", "b:hover", "[", "b"})
	if err == nil {
		t.Fatal("expected error")
	}

	errs := multierr.Errors(err)
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), err)
	}
	var ue *compile.UnsupportedError
	if !errors.As(errs[0], &ue) || ue.Kind != compile.KindSelectorList {
		t.Errorf("errs[0] = %v, want selector list error", errs[0])
	}
	if !errors.As(errs[1], &ue) || ue.Kind != compile.KindPseudoClass || ue.Name != "hover" {
		t.Errorf("errs[1] = %v, want pseudo class error", errs[1])
	}
	var se *selector.SyntaxError
	if !errors.As(errs[2], &se) {
		t.Errorf("errs[2] = %v, want syntax error", errs[2])
	}
	if !strings.Contains(errs[0].Error(), `selector "a, b"`) {
		t.Errorf("error does not name the selector: %v", errs[0])
	}

	if got, want := out.String(), "<a></a>\n<b></b>\n"; got != want {
		t.Errorf("valid selectors must still be processed, output = %q, want %q", got, want)
	}
}

func TestRun_Cancelled(t *testing.T) {
	p, out := newTestProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.run(ctx, []string{"a"}); !errors.Is(err, context.Canceled) {
		t.Errorf("run() error = %v, want context.Canceled", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written, got %q", out.String())
	}
}

func TestRun_Charset(t *testing.T) {
	tests := []struct {
		name   string
		format common.OutputFmt
		want   []byte
	}{
		{"representable", common.OutputFmtHtml, []byte("<a title=\"\xff\"></a>\n")},
		{"xml declaration", common.OutputFmtXml, []byte(`encoding="windows-1251"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, out := newTestProcessor(t)
			p.format = tt.format
			p.codePage = charmap.Windows1251
			if err := p.run(context.Background(), []string{"a[title='я']"}); err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if !bytes.Contains(out.Bytes(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", out.Bytes(), tt.want)
			}
		})
	}
}

func TestRun_CharsetUnsupportedCharacter(t *testing.T) {
	p, out := newTestProcessor(t)
	p.codePage = charmap.ISO8859_1
	if err := p.run(context.Background(), []string{"a[title='я']"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got, want := out.String(), "<a title=\"&#1103;\"></a>\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_OutputDirectory(t *testing.T) {
	p, _ := newTestProcessor(t)
	p.outDir = t.TempDir()

	if err := p.run(context.Background(), []string{"ul > li", "*"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(p.outDir, "ul-li.html"))
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if got, want := string(data), "<ul><li></li></ul>\n"; got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(p.outDir, "selector-2.html")); err != nil {
		t.Errorf("fallback file name not used: %v", err)
	}

	// second run must not overwrite silently
	if err := p.run(context.Background(), []string{"ul > li"}); err == nil {
		t.Error("expected error for existing output file")
	}
	p.overwrite = true
	if err := p.run(context.Background(), []string{"ul > li"}); err != nil {
		t.Errorf("run() with overwrite error = %v", err)
	}
}

func TestRun_Verify(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p, _ := newTestProcessor(t)
	p.log = zap.New(core)
	p.verify = true

	if err := p.run(context.Background(), []string{"nav > ul li.active", "a[title=x]"}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if n := logs.FilterMessage("Produced element verified").Len(); n != 2 {
		t.Errorf("verified %d elements, want 2", n)
	}
	if n := logs.FilterLevelExact(zapcore.WarnLevel).Len(); n != 0 {
		t.Errorf("unexpected warnings: %v", logs.FilterLevelExact(zapcore.WarnLevel).All())
	}
}

func TestReadSelectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selectors.txt")
	if err := os.WriteFile(path, []byte("div\n\n  ul > li  \r\n#a\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := readSelectors(path, "", nil)
	if err != nil {
		t.Fatalf("readSelectors() error = %v", err)
	}
	want := []string{"div", "ul > li", "#a"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("readSelectors() = %q, want %q", got, want)
	}

	got, err = readSelectors("-", "", strings.NewReader("a\nb"))
	if err != nil || len(got) != 2 {
		t.Errorf("readSelectors(stdin) = %q, %v", got, err)
	}

	if _, err := readSelectors(filepath.Join(t.TempDir(), "missing"), "", nil); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadSelectors_Encodings(t *testing.T) {
	tests := []struct {
		name  string
		label string
		data  []byte
		want  string
	}{
		{"utf-8 bom", "", []byte("\xEF\xBB\xBFa[title='я']"), "a[title='я']"},
		{"utf-16le bom", "", []byte{0xFF, 0xFE, 'p', 0, '.', 0, 'x', 0}, "p.x"},
		{"windows-1251 label", "windows-1251", []byte("a[title='\xff']"), "a[title='я']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readSelectors("-", tt.label, bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("readSelectors() error = %v", err)
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("readSelectors() = %q, want [%q]", got, tt.want)
			}
		})
	}

	if _, err := readSelectors("-", "no-such-charset", strings.NewReader("a")); err == nil {
		t.Error("expected error for unknown label")
	}
}
