package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	tunhong "github.com/riverfjs/tunhong-go"
)

const usage = `Usage: tunhong [flags] [file ...]

Marks up Chinese and Tibetan runs in text. Reads stdin when no file is given.

Flags:
`

// config holds the parsed command line.
type config struct {
	markup       string
	tagsPath     string
	chineseOpen  string
	chineseClose string
	tibetanOpen  string
	tibetanClose string
	format       string
	encoding     string
	workers      int
	verbose      bool
	files        []string
}

// errUsage marks command line mistakes; main exits with 2 for them.
var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.verbose {
		tunhong.SetLogger(log.New(stderr, "[tunhong] ", log.LstdFlags))
	} else {
		tunhong.SetLogger(log.New(io.Discard, "", 0))
	}

	if err := execute(cfg, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("tunhong", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	fs.StringVar(&cfg.markup, "markup", "tag", "Markup: identity, tag or silent")
	fs.StringVar(&cfg.tagsPath, "tags", "", "JSON file with tags, e.g. {\"chinese\": [\"[c]\", \"[ↄ]\"]}")
	fs.StringVar(&cfg.chineseOpen, "chinese-open", "", "Opening tag for Chinese runs")
	fs.StringVar(&cfg.chineseClose, "chinese-close", "", "Closing tag for Chinese runs")
	fs.StringVar(&cfg.tibetanOpen, "tibetan-open", "", "Opening tag for Tibetan runs")
	fs.StringVar(&cfg.tibetanClose, "tibetan-close", "", "Closing tag for Tibetan runs")
	fs.StringVar(&cfg.format, "format", "text", "Output: text, markdown, chunks or stats")
	fs.StringVar(&cfg.encoding, "encoding", "utf-8", "Input encoding (WHATWG label, e.g. gb18030, big5)")
	fs.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "Number of files to process concurrently")
	fs.BoolVar(&cfg.verbose, "v", false, "Verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.files = fs.Args()

	switch cfg.format {
	case "text", "markdown", "chunks", "stats":
	default:
		return nil, errors.Wrapf(errUsage, "unknown format %q", cfg.format)
	}
	return cfg, nil
}

// tags merges the -tags file with the per-mode flags. A flag set on the
// command line wins over the file.
func (c *config) tags() (tunhong.TagConfig, error) {
	tags := tunhong.TagConfig{}
	if c.tagsPath != "" {
		f, err := os.Open(c.tagsPath)
		if err != nil {
			return nil, errors.Wrap(err, "open tag config")
		}
		defer f.Close()
		if tags, err = tunhong.LoadTagConfig(f); err != nil {
			return nil, errors.Wrapf(err, "load %s", c.tagsPath)
		}
		if tags == nil {
			tags = tunhong.TagConfig{}
		}
	}
	override := func(mode tunhong.Mode, open, closing string) {
		if open == "" && closing == "" {
			return
		}
		t, ok := tags[mode]
		if !ok {
			t = tunhong.DefaultTags()[mode]
		}
		if open != "" {
			t.Open = open
		}
		if closing != "" {
			t.Close = closing
		}
		tags[mode] = t
	}
	override(tunhong.ModeChinese, c.chineseOpen, c.chineseClose)
	override(tunhong.ModeTibetan, c.tibetanOpen, c.tibetanClose)
	return tags, nil
}

func execute(cfg *config, stdin io.Reader, stdout, stderr io.Writer) error {
	kind, err := tunhong.ParseMarkupKind(cfg.markup)
	if err != nil {
		return errors.Wrap(errUsage, err.Error())
	}
	tags, err := cfg.tags()
	if err != nil {
		return err
	}
	p, err := tunhong.New(kind.Option(tags))
	if err != nil {
		return errors.Wrap(err, "create parser")
	}
	for _, m := range p.UnknownModes(tags) {
		fmt.Fprintf(stderr, "Warning: no input is classified as %q; its tag is never used\n", m)
	}

	texts, err := readInputs(cfg, stdin)
	if err != nil {
		return err
	}

	switch cfg.format {
	case "text":
		out, err := p.ParseAll(context.Background(), texts, cfg.workers)
		if err != nil {
			return errors.Wrap(err, "parse")
		}
		for _, s := range out {
			if _, err := io.WriteString(stdout, s); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
	case "markdown":
		for i, text := range texts {
			out, err := p.RenderMarkdown(text)
			if err != nil {
				return errors.Wrapf(err, "render input %d", i)
			}
			if _, err := io.WriteString(stdout, out); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
	case "chunks":
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		for _, text := range texts {
			for _, c := range p.Chunks(text) {
				if err := enc.Encode(c); err != nil {
					return errors.Wrap(err, "write chunk")
				}
			}
		}
	case "stats":
		counts := make(map[tunhong.Mode]int)
		for _, text := range texts {
			for m, n := range p.CountModes(text) {
				counts[m] += n
			}
		}
		for _, m := range p.Modes() {
			if _, err := fmt.Fprintf(stdout, "%s\t%d\n", m, counts[m]); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
	}
	return nil
}

// readInputs returns the decoded contents of each file, or of stdin when no
// file is given.
func readInputs(cfg *config, stdin io.Reader) ([]string, error) {
	if len(cfg.files) == 0 {
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errors.Wrap(errUsage, "no input files and stdin is a terminal")
		}
		text, err := decode(stdin, cfg.encoding)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		return []string{text}, nil
	}

	texts := make([]string, 0, len(cfg.files))
	for _, path := range cfg.files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read input")
		}
		text, err := decode(bytes.NewReader(data), cfg.encoding)
		if err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// decode reads r as text in the named encoding. UTF-8 input is passed
// through byte for byte.
func decode(r io.Reader, name string) (string, error) {
	if name == "" || name == "utf-8" || name == "utf8" {
		data, err := io.ReadAll(r)
		return string(data), err
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return "", errors.Wrapf(errUsage, "unknown encoding %q", name)
	}
	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
