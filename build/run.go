// Package build implements the command producing markup from selectors.
package build

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"fromsel/common"
	"fromsel/compile"
	"fromsel/hast"
	"fromsel/render"
	"fromsel/selector"
	"fromsel/state"
)

// processor turns selectors into output files or stdout.
type processor struct {
	log          *zap.Logger
	parser       *selector.Parser
	space        common.Space
	format       common.OutputFmt
	indent       int
	verify       bool
	codePage     encoding.Encoding
	outDir       string
	nameTemplate string
	overwrite    bool
	stdout       io.Writer
}

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	selectors := cmd.Args().Slice()
	if input := cmd.String("input"); input != "" {
		more, err := readSelectors(input, cmd.String("input-charset"), cmd.Root().Reader)
		if err != nil {
			return err
		}
		selectors = append(selectors, more...)
	}
	if len(selectors) == 0 {
		return errors.New("no selectors have been specified")
	}

	cfg := &env.Cfg.Output
	p := &processor{
		log:          log,
		space:        env.Cfg.Compiler.Space,
		format:       cfg.Format,
		indent:       cfg.Indent,
		verify:       cfg.Verify || cmd.Bool("verify"),
		nameTemplate: cfg.NameTemplate,
		stdout:       cmd.Root().Writer,
	}
	if p.stdout == nil {
		p.stdout = os.Stdout
	}

	if cmd.IsSet("space") {
		space, err := common.ParseSpace(cmd.String("space"))
		if err != nil {
			return fmt.Errorf("unable to use requested space: %w", err)
		}
		p.space = space
	}
	if cmd.IsSet("to") {
		format, err := common.ParseOutputFmt(cmd.String("to"))
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Stringer("format", p.format), zap.Error(err))
		} else {
			p.format = format
		}
	}
	if cmd.IsSet("indent") {
		p.indent = max(0, int(cmd.Int("indent")))
	}
	if cmd.IsSet("name") {
		p.nameTemplate = cmd.String("name")
	}

	charset := cfg.Charset
	if cmd.IsSet("charset") {
		charset = cmd.String("charset")
	}
	if err := env.SetCharset(charset); err != nil {
		return err
	}
	p.codePage = env.CodePage
	p.parser = env.Parser()
	env.Overwrite = cmd.Bool("overwrite")
	p.overwrite = env.Overwrite

	if dst := cmd.String("out"); dst != "" {
		var err error
		if p.outDir, err = filepath.Abs(dst); err != nil {
			return err
		}
		if err := os.MkdirAll(p.outDir, 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}
	}

	log.Debug("Processing starting",
		zap.Int("selectors", len(selectors)),
		zap.Stringer("space", p.space),
		zap.Stringer("format", p.format),
		zap.String("charset", env.CharsetName()),
		zap.String("destination", p.outDir))
	defer func(start time.Time) {
		log.Debug("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return p.run(ctx, selectors)
}

// readSelectors reads one selector per line from path ("-" for stdin).
// Empty lines are skipped. Input is decoded from label character set when
// given, otherwise as UTF-8 unless a byte order mark says differently.
func readSelectors(path, label string, stdin io.Reader) ([]string, error) {
	var r io.Reader
	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open selectors file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if label != "" {
		var err error
		if r, err = charset.NewReaderLabel(label, r); err != nil {
			return nil, fmt.Errorf("unable to decode selectors: %w", err)
		}
	} else {
		r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}

	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read selectors: %w", err)
	}
	return out, nil
}

// run processes every selector, failures do not stop processing and are
// returned together.
func (p *processor) run(ctx context.Context, selectors []string) (err error) {
	var failed int
	for i, sel := range selectors {
		if e := ctx.Err(); e != nil {
			return multierr.Append(err, e)
		}
		if e := p.process(i+1, sel); e != nil {
			failed++
			err = multierr.Append(err, fmt.Errorf("selector %q: %w", sel, e))
		}
	}
	if failed > 0 {
		p.log.Debug("Some selectors failed", zap.Int("failed", failed), zap.Int("total", len(selectors)))
	}
	return err
}

func (p *processor) process(index int, sel string) error {
	el, err := compile.FromSelector(sel, compile.WithSpace(p.space), compile.WithParser(p.parser))
	if err != nil {
		return err
	}

	if p.verify {
		ok, err := render.Matches(el, p.space, sel)
		switch {
		case err != nil:
			p.log.Warn("Unable to verify produced element", zap.String("selector", sel), zap.Error(err))
		case !ok:
			p.log.Warn("Produced element is not matched by its selector", zap.String("selector", sel))
		default:
			p.log.Debug("Produced element verified", zap.String("selector", sel))
		}
	}

	if p.outDir == "" {
		return p.write(p.stdout, el)
	}

	name := p.buildOutputPath(index, sel)
	if _, err := os.Stat(name); err == nil {
		if !p.overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		p.log.Warn("Overwriting existing file", zap.String("file", name))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	if err := p.write(f, el); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close output file: %w", err)
	}
	p.log.Info("Selector processed", zap.String("selector", sel), zap.String("to", name))
	return nil
}

// write renders el into w converting output to requested character set.
// Characters the set cannot represent become character references in markup
// and replacement characters elsewhere.
func (p *processor) write(w io.Writer, el *hast.Element) error {
	opts := render.Options{Space: p.space, Indent: p.indent, Encoding: state.CharsetName(p.codePage)}
	if p.codePage == nil {
		return render.Render(w, el, p.format, opts)
	}

	enc := p.codePage.NewEncoder()
	switch p.format {
	case common.OutputFmtHtml, common.OutputFmtXml:
		enc = encoding.HTMLEscapeUnsupported(enc)
	default:
		enc = encoding.ReplaceUnsupported(enc)
	}
	tw := transform.NewWriter(w, enc)
	if err := render.Render(tw, el, p.format, opts); err != nil {
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("unable to convert output to %s: %w", opts.Encoding, err)
	}
	return nil
}
