// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package earg parses GNU-style command lines against a tree of nested commands.
//
// A Program declares its options, sub-commands and the positional arguments each command
// accepts. Every accepted option and positional is handed to the Eater of the command owning
// it:
//
//	prog -vv --verbosity=3 build -o out.bin a.c
//
// Short options may be clustered (-abc), take their value inline (-ofile) or from the next
// argument (-o file). Long options take their value after '=' or from the next argument.
// A literal "--" turns every following argument into a positional. Options of a command are
// visible to all of its sub-commands.
//
// Built-in --help, --usage, --version, --verbosity, -v and -q options are added to the root
// command unless suppressed with the Program flags.
package earg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/i18n"
	"github.com/napalu/earg/internal/cmdstack"
	"github.com/napalu/earg/internal/optiondb"
	"github.com/napalu/earg/logging"
	"github.com/napalu/earg/parse"
	"github.com/napalu/earg/util"
	"golang.org/x/text/language"
)

// NewParser creates a Parser for prog. The command tree is validated once here: it must be
// acyclic and every sub-command must be named. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
func NewParser(prog *Program, configs ...ConfigureParserFunc) (*Parser, error) {
	if prog == nil {
		return nil, errs.ErrNilProgram
	}
	if err := validateTree(&prog.Command, nil); err != nil {
		return nil, err
	}

	p := &Parser{
		prog:     prog,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		bundle:   i18n.Default(),
		maxDepth: cmdstack.DefaultMaxDepth,
		terminal: util.DefaultTerminal{},
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	if p.lang == language.Und {
		p.lang = p.bundle.DefaultLanguage()
	} else if !slices.Contains(p.bundle.Languages(), p.lang) {
		return nil, fmt.Errorf("%w: %s", i18n.ErrLanguageNotFound, p.lang)
	}

	if p.logger == nil {
		p.logger = logging.New(p.stderr)
	}
	if p.renderer == nil {
		p.renderer = NewRenderer(p)
	}
	p.builtins = p.newBuiltins()
	p.stack = cmdstack.New(p.maxDepth)

	return p, nil
}

// Parse parses args, args[0] being the program name. It returns the outcome of the parse and,
// when the outcome is StatusOK or StatusExit, the deepest command reached.
//
// User errors are written to the standard error writer prefixed by the command path and
// followed by a hint to use --help or --usage. Err returns the rejection in typed form.
// Parsing the same arguments against an unmodified Program twice yields the same outcome and
// the same sequence of Eat calls.
func (p *Parser) Parse(args []string) (Status, *Command) {
	p.err = nil
	p.stack.Clear()
	p.db = optiondb.New()
	p.logger.Reset()
	defer func() {
		p.db.Dispose()
		p.tokenizer = nil
	}()

	if len(args) == 0 {
		return p.fatal(errs.ErrEmptyArguments), nil
	}
	if err := p.stack.Push(args[0], &p.prog.Command); err != nil {
		return p.fatal(err), nil
	}
	p.tokenizer = parse.NewTokenizer(args[1:], p.db)

	status := p.parseScope()
	p.logger.Debugf("%s: parse finished with status %s", p.stack, status)
	switch status {
	case StatusOK, StatusExit:
		cmd, _ := p.stack.Last()
		return status, cmd
	case StatusUserError:
		if err := p.TryHelp(p.stderr); err != nil {
			return p.fatal(err), nil
		}
	}

	return status, nil
}

// ParseString splits cmdline with shell quoting rules and parses the result
func (p *Parser) ParseString(cmdline string) (Status, *Command) {
	args, err := parse.Split(cmdline)
	if err != nil {
		p.stack.Clear()
		p.err = &ParseError{Status: StatusUserError, Err: p.localize(err)}
		return StatusUserError, nil
	}

	return p.Parse(args)
}

// Run parses args and calls the Entrypoint of the command reached. It returns the process
// exit code: ExitOK after a successful run or a built-in such as --help, ExitUserError after
// a user error and ExitFailure otherwise.
func (p *Parser) Run(ctx context.Context, args []string) int {
	status, cmd := p.Parse(args)
	switch status {
	case StatusExit:
		return ExitOK
	case StatusUserError:
		return ExitUserError
	case StatusFatal:
		return ExitFailure
	}

	if cmd.Entrypoint == nil {
		p.err = &ParseError{
			Status: StatusUserError,
			Path:   p.stack.String(),
			Err:    p.localize(errs.ErrNoEntrypoint.WithArgs(p.stack.String())),
		}
		if _, err := fmt.Fprintln(p.stderr, p.err.Error()); err != nil {
			return ExitFailure
		}
		if err := p.renderer.PrintUsage(p.stderr); err != nil {
			return ExitFailure
		}
		return ExitUserError
	}

	if err := cmd.Entrypoint(ctx, cmd); err != nil {
		p.logger.Errorf("%s: %v", p.stack, err)
		return ExitFailure
	}

	return ExitOK
}

// Err returns the rejection of the last parse, nil when it succeeded
func (p *Parser) Err() error {
	if p.err == nil {
		return nil
	}

	return p.err
}

// Command returns the active command: the deepest command reached by the last parse, or
// during a parse, the command whose scope is being parsed
func (p *Parser) Command() (*Command, bool) {
	return p.stack.Last()
}

// CommandPath returns the token texts of the command path, program name first
func (p *Parser) CommandPath() []string {
	return p.stack.Names()
}

// Program returns the program being parsed
func (p *Parser) Program() *Program {
	return p.prog
}

// Logger returns the logger driven by the built-in verbosity options
func (p *Parser) Logger() *logging.Logger {
	return p.logger
}

// Bundle returns the message bundle used for rejections and help output
func (p *Parser) Bundle() *i18n.Bundle {
	return p.bundle
}

// PrintCommandChain writes the space-joined command path to w
func (p *Parser) PrintCommandChain(w io.Writer) error {
	return p.stack.Render(w)
}

// PrintUsage writes the usage lines of the active command to w
func (p *Parser) PrintUsage(w io.Writer) error {
	return p.renderer.PrintUsage(w)
}

// PrintHelp writes the help of the active command to w
func (p *Parser) PrintHelp(w io.Writer) error {
	return p.renderer.PrintHelp(w)
}

// TryHelp writes a hint pointing to the --help and --usage built-ins of the active command.
// Nothing is written when both built-ins are suppressed.
func (p *Parser) TryHelp(w io.Writer) error {
	noHelp := p.prog.Flags.Has(NoHelp)
	noUsage := p.prog.Flags.Has(NoUsage)
	path := p.stack.String()

	var msg string
	switch {
	case noHelp && noUsage:
		return nil
	case noUsage:
		msg = p.tr(errs.MsgTryHelpOnlyKey, path)
	case noHelp:
		msg = p.tr(errs.MsgTryUsageOnlyKey, path)
	default:
		msg = p.tr(errs.MsgTryHelpKey, path, path)
	}
	if _, err := io.WriteString(w, msg+"\n"); err != nil {
		return errs.ErrSinkWrite.Wrap(err)
	}

	return nil
}

// ScopeOptions returns the options accepted while cmd is the active command: the options of
// cmd and of its ancestors on the current command path, innermost first, followed by the
// built-ins no command on the path shadows. Group headers are omitted.
func (p *Parser) ScopeOptions(cmd *Command) []*Option {
	var opts []*Option
	found := false
	for i := p.stack.Len() - 1; i >= 0; i-- {
		f, _ := p.stack.At(i)
		if !found && f.Command != cmd {
			continue
		}
		found = true
		opts = appendOptions(opts, f.Command.Options)
		if i == 0 {
			for j := range p.builtins {
				if !p.shadowed(&p.builtins[j]) {
					opts = append(opts, &p.builtins[j])
				}
			}
		}
	}
	if !found && cmd != nil {
		opts = appendOptions(opts, cmd.Options)
	}

	return opts
}

// IsUserError reports whether err is a rejection caused by the command line
func IsUserError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.IsUserError()
}

func appendOptions(dst []*Option, opts []Option) []*Option {
	for i := range opts {
		if !opts[i].IsGroup() {
			dst = append(dst, &opts[i])
		}
	}

	return dst
}
