package earg

import (
	"fmt"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/logging"
)

type builtinKind int

const (
	builtinNone builtinKind = iota
	builtinVersion
	builtinHelp
	builtinUsage
	builtinVerbosity
	builtinVerboser
	builtinQuieter
)

// newBuiltins returns the built-in options enabled for the program, in lookup table order
func (p *Parser) newBuiltins() []Option {
	var opts []Option
	if p.prog.Version != "" {
		opts = append(opts, Option{
			Name: "version",
			Key:  KeyVersion,
			Help: p.tr(errs.MsgVersionOptKey),
		})
	}
	if !p.prog.Flags.Has(NoHelp) {
		opts = append(opts, Option{
			Name: "help",
			Key:  'h',
			Help: p.tr(errs.MsgHelpOptionKey),
		})
	}
	if !p.prog.Flags.Has(NoUsage) {
		opts = append(opts, Option{
			Name: "usage",
			Key:  '?',
			Help: p.tr(errs.MsgUsageOptionKey),
		})
	}
	if !p.prog.Flags.Has(NoBuiltinLogging) {
		opts = append(opts,
			Option{
				Name: "verbosity",
				Key:  KeyVerbosity,
				Arg:  p.tr(errs.MsgVerbosityArgKey),
				Help: p.tr(errs.MsgVerbosityKey),
			},
			Option{
				Key:   'v',
				Flags: OptionMultiple,
				Help:  p.tr(errs.MsgVerboseFlagKey),
			},
			Option{
				Key:   'q',
				Flags: OptionMultiple,
				Help:  p.tr(errs.MsgQuietFlagKey),
			})
	}

	return opts
}

// builtinKind identifies opt by address so that user options sharing a key are never mistaken
// for built-ins
func (p *Parser) builtinKind(opt *Option) builtinKind {
	if opt == nil {
		return builtinNone
	}
	for i := range p.builtins {
		if opt != &p.builtins[i] {
			continue
		}
		switch opt.Key {
		case KeyVersion:
			return builtinVersion
		case 'h':
			return builtinHelp
		case '?':
			return builtinUsage
		case KeyVerbosity:
			return builtinVerbosity
		case 'v':
			return builtinVerboser
		case 'q':
			return builtinQuieter
		}
	}

	return builtinNone
}

// builtin returns the built-in option of the given kind unless an option of a command on the
// current path shadows it
func (p *Parser) builtin(kind builtinKind) (*Option, bool) {
	for i := range p.builtins {
		opt := &p.builtins[i]
		if p.builtinKind(opt) == kind {
			return opt, !p.shadowed(opt)
		}
	}

	return nil, false
}

func (p *Parser) shadowed(builtin *Option) bool {
	for i := 0; i < p.stack.Len(); i++ {
		f, _ := p.stack.At(i)
		for _, opt := range f.Command.Options {
			if opt.IsGroup() {
				continue
			}
			if (opt.Name != "" && opt.Name == builtin.Name) || (opt.Key != KeyNone && opt.Key == builtin.Key) {
				return true
			}
		}
	}

	return false
}

func (p *Parser) eatBuiltin(kind builtinKind, value string) (EatStatus, error) {
	switch kind {
	case builtinVersion:
		if _, err := fmt.Fprintln(p.stdout, p.prog.Version); err != nil {
			return EatNotEaten, errs.ErrSinkWrite.Wrap(err)
		}
		return EatOKExit, nil
	case builtinHelp:
		if err := p.renderer.PrintHelp(p.stdout); err != nil {
			return EatNotEaten, err
		}
		return EatOKExit, nil
	case builtinUsage:
		if err := p.renderer.PrintUsage(p.stdout); err != nil {
			return EatNotEaten, err
		}
		return EatOKExit, nil
	case builtinVerbosity:
		p.logger.SetLevel(verbosityLevel(value))
	case builtinVerboser:
		p.logger.Verboser()
	case builtinQuieter:
		p.logger.Quieter()
	}

	return EatOK, nil
}

// verbosityLevel maps the value of --verbosity to a level. An empty or unknown value selects
// the default level.
func verbosityLevel(value string) logging.Level {
	if value == "" {
		return logging.DefaultLevel
	}
	level, err := logging.ParseLevel(value)
	if err != nil {
		return logging.DefaultLevel
	}

	return level
}
