package earg

import (
	"io"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/i18n"
	"github.com/napalu/earg/logging"
	"github.com/napalu/earg/util"
	"golang.org/x/text/language"
)

// WithStdout sets the writer receiving --help, --usage and --version output (defaults to os.Stdout)
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stdout = w
	}
}

// WithStderr sets the writer receiving rejections and the default logger output (defaults to
// os.Stderr)
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}

// WithLogger replaces the logger driven by the built-in verbosity options. Its current level
// is restored at the start of every parse.
func WithLogger(logger *logging.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.logger = logger
	}
}

// WithMaxDepth bounds the nesting of sub-commands, root included. Reaching the bound during a
// parse is a fatal error.
func WithMaxDepth(depth int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if depth < 1 {
			*err = errs.ErrCommandDepthExceeded.WithArgs(depth)
			return
		}
		p.maxDepth = depth
	}
}

// WithLineSize fixes the width of help output. By default the width of the terminal is used,
// or util.DefaultLineSize when the output is not a terminal.
func WithLineSize(size int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.lineSize = size
	}
}

// WithVariadicArgs lets a positional placeholder ending in "..." (e.g. "FILE...") accept one
// or more positionals. By default every placeholder counts for exactly one positional.
func WithVariadicArgs(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.variadicArgs = enabled
	}
}

// WithTerminal replaces the terminal queries used to size help output
func WithTerminal(t util.Terminal) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.terminal = t
	}
}

// WithBundle replaces the message bundle
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.bundle = bundle
	}
}

// WithLanguage selects the language of rejections and help output. The language must be
// available in the bundle.
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.lang = lang
	}
}

// WithRenderer replaces the usage and help renderer
func WithRenderer(r Renderer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.renderer = r
	}
}
