package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"github.com/yuin/goldmark"
	"golang.org/x/term"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
	"pkt.systems/autolink"
	"pkt.systems/autolink/goldmarkext"
	"pkt.systems/autolink/internal/config"
	"pkt.systems/autolink/internal/logging"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	exitFailure      = 1
	exitUsage        = 2
)

func init() {
	version.SetDefaultModule("pkt.systems/autolink")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliFlags struct {
	format      string
	kinds       string
	domainDot   bool
	localPart   string
	configPath  string
	themeName   string
	listThemes  bool
	osc8        string
	width       int
	charset     string
	outPath     string
	verbose     bool
	logFormat   string
	showVersion bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cliFlags
	flags := pflag.NewFlagSet("autolink", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.format, "format", "f", config.FormatList, "Output format: "+strings.Join(config.Formats, "|"))
	flags.StringVarP(&opts.kinds, "kinds", "k", "url,www,email", "Comma separated link kinds to extract")
	flags.BoolVar(&opts.domainDot, "email-domain-dot", true, "Require a dot in email domains")
	flags.StringVar(&opts.localPart, "email-local-part", "lax", "Email local part characters: lax|strict")
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVarP(&opts.themeName, "theme", "t", defaultThemeName, "Theme name for ansi output")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "List available themes")
	flags.StringVarP(&opts.osc8, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.IntVarP(&opts.width, "width", "w", 0, "Wrap width for ansi output and text width for list output (0 uses terminal width if available, negative disables)")
	flags.StringVar(&opts.charset, "charset", "", "Input character encoding (default utf-8)")
	flags.StringVarP(&opts.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")
	flags.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(stderr, version.Module(), version.Current())
		fmt.Fprintf(stderr, "Usage: autolink [flags] [inputs...]\n")
		fmt.Fprintln(stderr, "\nInputs are files, file:// or http(s):// URLs. If none is given, text is read from stdin.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return 0
	}
	if opts.listThemes {
		printThemes(stdout)
		return 0
	}

	logFormat, err := logging.ParseFormat(opts.logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --log-format: %v\n", err)
		return exitUsage
	}
	logger := logging.New(logging.Options{Writer: stderr, Format: logFormat, Verbose: opts.verbose})

	cfg, err := resolveConfig(flags, opts)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	osc8Mode, err := autolink.ParseOSC8Mode(opts.osc8)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --osc8: %v\n", err)
		return exitUsage
	}
	extractorOpts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}
	ex, err := autolink.New(extractorOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "extractor: %v\n", err)
		return exitUsage
	}

	inputs := flags.Args()
	reader, closer, err := openInputs(inputs, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "open input: %v\n", err)
		return exitFailure
	}
	if closer != nil {
		defer func() { _ = closer.Close() }()
	}
	reader, err = decodeCharset(reader, opts.charset)
	if err != nil {
		fmt.Fprintf(stderr, "invalid --charset: %v\n", err)
		return exitUsage
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		fmt.Fprintf(stderr, "read input: %v\n", err)
		return exitFailure
	}
	logger.Debug("read input", logging.Input(inputName(inputs)), logging.Bytes(len(data)))
	if err := autolink.ValidateInput(data); err != nil {
		if errors.Is(err, autolink.ErrBinaryInput) {
			fmt.Fprintf(stderr, "read input: %v\n", err)
			return exitFailure
		}
		logger.Warn("dropping invalid input bytes", logging.Input(inputName(inputs)), logging.Error(err))
	}
	text := string(autolink.Sanitize(data))

	writer, closeOut, err := resolveOutput(opts.outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "open output: %v\n", err)
		return exitFailure
	}

	theme, _ := autolink.ThemeByName(cfg.Output.Theme)
	out := output{
		format:    cfg.Output.Format,
		width:     resolveWidth(cfg.Width(), writer),
		theme:     theme,
		osc8:      osc8Mode.Enabled(),
		extractor: ex,
	}
	counts, err := out.write(writer, text)
	if closeOut != nil {
		if cerr := closeOut.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "render: %v\n", err)
		return exitFailure
	}
	logger.Debug("extracted links", logging.Input(inputName(inputs)), logging.Links(counts.total()))
	for _, kind := range autolink.AllKinds() {
		if n := counts[kind]; n > 0 {
			logger.Debug("links by kind", logging.Kind(kind.String()), logging.Links(n))
		}
	}
	return 0
}

// resolveConfig layers explicitly set flags over the configuration file.
func resolveConfig(flags *pflag.FlagSet, opts cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(normalizePath(opts.configPath))
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.Changed("kinds") {
		cfg.Kinds = splitList(opts.kinds)
	}
	if flags.Changed("email-domain-dot") {
		dot := opts.domainDot
		cfg.Email.DomainMustHaveDot = &dot
	}
	if flags.Changed("email-local-part") {
		cfg.Email.LocalPart = opts.localPart
	}
	if flags.Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if flags.Changed("theme") {
		cfg.Output.Theme = opts.themeName
	}
	if flags.Changed("width") {
		width := opts.width
		cfg.Output.Width = &width
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

type output struct {
	format    string
	width     int
	theme     autolink.Theme
	osc8      bool
	extractor *autolink.Extractor
}

type linkRecord struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Kind  string `json:"kind" yaml:"kind"`
	Text  string `json:"text" yaml:"text"`
}

// linkCounts tallies the links written, per kind.
type linkCounts map[autolink.LinkKind]int

func (c linkCounts) total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// links is Extractor.Links counting every link it yields.
func (o output) links(text string, counts linkCounts) iter.Seq[autolink.Span] {
	return func(yield func(autolink.Span) bool) {
		for link := range o.extractor.Links(text) {
			counts[link.Kind()]++
			if !yield(link) {
				return
			}
		}
	}
}

// write renders text in the configured format and returns the links found per kind.
func (o output) write(w io.Writer, text string) (linkCounts, error) {
	counts := linkCounts{}
	var err error
	switch o.format {
	case config.FormatList:
		err = o.writeList(w, text, counts)
	case config.FormatJSON, config.FormatYAML:
		err = o.writeRecords(w, text, counts)
	case config.FormatANSI:
		if o.width > 0 {
			text = wrap(text, o.width)
		}
		err = autolink.RenderLinks(w, text, o.links(text, counts), autolink.ANSIRenderer{Styles: o.theme.Styles(), OSC8: o.osc8})
	case config.FormatHTML:
		err = autolink.RenderLinks(w, text, o.links(text, counts), autolink.HTMLRenderer{})
	case config.FormatMarkdown:
		err = o.writeMarkdown(w, text, counts)
	default:
		err = fmt.Errorf("unknown format %q", o.format)
	}
	return counts, err
}

func (o output) writeList(w io.Writer, text string, counts linkCounts) error {
	for link := range o.links(text, counts) {
		prefix := fmt.Sprintf("%d-%d\t%s\t", link.Start(), link.End(), link.Kind())
		avail := 0
		if o.width > 0 {
			avail = max(o.width-len(prefix), 1)
		}
		if _, err := fmt.Fprintln(w, prefix+autolink.FitText(link, text, avail)); err != nil {
			return err
		}
	}
	return nil
}

func (o output) writeRecords(w io.Writer, text string, counts linkCounts) error {
	records := make([]linkRecord, 0)
	for link := range o.links(text, counts) {
		records = append(records, linkRecord{
			Start: link.Start(),
			End:   link.End(),
			Kind:  link.Kind().String(),
			Text:  link.Text(text),
		})
	}
	if o.format == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return err
	}
	return enc.Close()
}

func (o output) writeMarkdown(w io.Writer, text string, counts linkCounts) error {
	body := text[frontMatterEnd(text):]
	md := goldmark.New(goldmark.WithExtensions(goldmarkext.New(o.extractor)))
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return err
	}
	for range o.links(body, counts) {
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// wrap breaks lines at whitespace only so links are never split.
func wrap(text string, width int) string {
	ww := wordwrap.NewWriter(width)
	ww.Breakpoints = nil
	_, _ = ww.Write([]byte(text))
	_ = ww.Close()
	return ww.String()
}

func printThemes(w io.Writer) {
	for _, name := range autolink.AvailableThemes() {
		fmt.Fprintln(w, name)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width != 0 {
		return width
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	return terminalWidth(int(f.Fd()), defaultWidth)
}

func terminalWidth(fd int, fallback int) int {
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	return fallback
}

func decodeCharset(r io.Reader, name string) (io.Reader, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return strings.Join(args, ",")
}

type inputSource struct {
	open func() (io.Reader, io.Closer, error)
}

type multiInputReader struct {
	sources   []inputSource
	idx       int
	cur       io.Reader
	curCloser io.Closer
	closed    bool
}

func (m *multiInputReader) Read(p []byte) (int, error) {
	for {
		if m.closed {
			return 0, io.EOF
		}
		if m.cur == nil {
			if m.idx >= len(m.sources) {
				m.closed = true
				return 0, io.EOF
			}
			reader, closer, err := m.sources[m.idx].open()
			if err != nil {
				return 0, err
			}
			m.cur = reader
			m.curCloser = closer
			m.idx++
		}
		n, err := m.cur.Read(p)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			if m.curCloser != nil {
				_ = m.curCloser.Close()
			}
			m.cur = nil
			m.curCloser = nil
			continue
		}
		if err != nil {
			return 0, err
		}
	}
}

func (m *multiInputReader) Close() error {
	m.closed = true
	if m.curCloser != nil {
		err := m.curCloser.Close()
		m.curCloser = nil
		return err
	}
	return nil
}

func openInputs(args []string, stdin io.Reader) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		return stdin, nil, nil
	}
	sources := make([]inputSource, 0, len(args))
	for _, raw := range args {
		src, err := makeInputSource(raw)
		if err != nil {
			return nil, nil, err
		}
		sources = append(sources, src)
	}
	m := &multiInputReader{sources: sources}
	return m, m, nil
}

func makeInputSource(raw string) (inputSource, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return inputSource{}, fmt.Errorf("empty input argument")
	}
	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openURL(raw)
			}}, nil
		case "file":
			path := u.Path
			if path == "" {
				path = u.Host
			}
			if unescaped, err := url.PathUnescape(path); err == nil {
				path = unescaped
			}
			return inputSource{open: func() (io.Reader, io.Closer, error) {
				return openFile(path)
			}}, nil
		}
	}
	return inputSource{open: func() (io.Reader, io.Closer, error) {
		return openFile(raw)
	}}, nil
}

func openURL(raw string) (io.Reader, io.Closer, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, raw, nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, nil, fmt.Errorf("http %s: %s", raw, resp.Status)
	}
	return resp.Body, resp.Body, nil
}

func openFile(path string) (io.Reader, io.Closer, error) {
	f, err := os.Open(normalizePath(path))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
