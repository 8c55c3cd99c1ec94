package earg

import (
	"errors"
	"fmt"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/i18n"
	"github.com/napalu/earg/internal/arghint"
	"github.com/napalu/earg/parse"
	"github.com/napalu/earg/types"
	"golang.org/x/text/message"
)

// parseScope parses the arguments of the command on top of the stack and recurses into the
// first sub-command named on the command line
func (p *Parser) parseScope() Status {
	cmd, ok := p.stack.Last()
	if !ok {
		return p.fatal(errs.ErrEmptyStack)
	}

	if p.stack.Len() == 1 {
		// built-ins form a scope of their own so that root options may shadow them
		p.db.Checkpoint()
		for i := range p.builtins {
			if err := p.db.Insert(&p.builtins[i], cmd); err != nil {
				return p.fatal(err)
			}
		}
	}
	p.db.Checkpoint()
	if err := p.db.InsertAll(cmd.Options, cmd); err != nil {
		return p.fatal(err)
	}

	hint := arghint.Parse(cmd.Args, p.variadicArgs)
	positionals := 0
	p.logger.Debugf("%s: entering scope at argument %d with %d options", p.stack, p.tokenizer.Pos()+1, p.db.Len())

	for {
		tok, ts := p.tokenizer.Next()
		switch ts {
		case parse.TokenEnd:
			if !hint.Validate(positionals) {
				return p.reject(errs.ErrPositionalCount)
			}
			return StatusOK
		case parse.TokenUnknown:
			return p.reject(errs.ErrUnknownOption.WithArgs(tok.Text))
		case parse.TokenPositional:
			if sub, found := cmd.FindCommand(tok.Text); found {
				if err := p.stack.Push(tok.Text, sub); err != nil {
					return p.fatal(err)
				}
				return p.parseScope()
			}
			positionals++
			es, err := p.eat(cmd, nil, tok.Text)
			if status, next := p.digest(es, err, nil, tok.Text); !next {
				return status
			}
		case parse.TokenOption:
			status, next := p.option(tok)
			if !next {
				return status
			}
		default:
			return p.fatal(fmt.Errorf("unexpected token status %s", ts))
		}
	}
}

// option validates an option token, fetching its value from the next argument when needed,
// and hands it to the command declaring the option
func (p *Parser) option(tok parse.Token) (Status, bool) {
	entry := tok.Entry
	opt := entry.Option

	if !opt.Multiple() && entry.Occurrences > 1 {
		return p.reject(errs.ErrRedundantOption.WithArgs(opt.String())), false
	}

	value := tok.Text
	if opt.TakesArg() {
		if !tok.HasValue {
			next, ts := p.tokenizer.Next()
			if ts != parse.TokenPositional {
				return p.reject(errs.ErrMissingArgument.WithArgs(opt.String())), false
			}
			value = next.Text
		}
	} else if tok.HasValue {
		return p.reject(errs.ErrUnexpectedArgument.WithArgs(opt.String())), false
	}

	es, err := p.eat(entry.Command, opt, value)

	return p.digest(es, err, opt, value)
}

// eat offers an option or positional to the built-ins, then to the Eater of cmd
func (p *Parser) eat(cmd *Command, opt *Option, value string) (EatStatus, error) {
	if kind := p.builtinKind(opt); kind != builtinNone {
		p.logger.Debugf("%s: built-in %s", p.stack, opt)
		return p.eatBuiltin(kind, value)
	}
	if cmd.Eat == nil {
		return EatNotEaten, nil
	}

	return cmd.Eat.Eat(opt, value), nil
}

// digest turns the outcome of an Eat call into a parse status. next is true when parsing
// continues.
func (p *Parser) digest(es EatStatus, err error, opt *Option, text string) (status Status, next bool) {
	if err != nil {
		return p.fatal(err), false
	}

	switch es {
	case EatOK:
		return StatusOK, true
	case EatOKExit:
		return StatusExit, false
	case EatUnrecognized:
		return p.reject(errs.ErrInvalidPositional.WithArgs(text)), false
	case EatNotEaten:
		if opt != nil {
			return p.reject(errs.ErrOptionNotEaten.WithArgs(opt.String())), false
		}
		return p.reject(errs.ErrPositionalNotEaten.WithArgs(text)), false
	}

	name := text
	if opt != nil {
		name = opt.String()
	}

	return p.fatal(errs.ErrInvalidEatStatus.WithArgs(int(es), name)), false
}

// reject records a user error and writes it to the standard error writer
func (p *Parser) reject(te i18n.TranslatableError) Status {
	p.err = &ParseError{
		Status: StatusUserError,
		Path:   p.stack.String(),
		Err:    p.localize(te),
	}
	if _, err := fmt.Fprintln(p.stderr, p.err.Error()); err != nil {
		return p.fatal(errs.ErrSinkWrite.Wrap(err))
	}

	return StatusUserError
}

// fatal records an error of the command tree or the environment
func (p *Parser) fatal(err error) Status {
	p.err = &ParseError{
		Status: StatusFatal,
		Path:   p.stack.String(),
		Err:    p.localize(err),
	}
	p.logger.Fatalf("%v", p.err)

	return StatusFatal
}

// localize renders translatable errors in the language of the parser
func (p *Parser) localize(err error) error {
	var te i18n.TranslatableError
	if errors.As(err, &te) {
		return errs.WithProvider(te, p.bundle.ForLanguage(p.lang))
	}

	return err
}

func (p *Parser) tr(key message.Reference, args ...interface{}) string {
	return p.bundle.TL(p.lang, key, args...)
}

// validateTree rejects unnamed sub-commands, options with a key that cannot be written on
// the command line and commands appearing among their own ancestors
func validateTree(cmd *Command, ancestors []*Command) error {
	for _, a := range ancestors {
		if a == cmd {
			return errs.ErrCommandCycle.WithArgs(cmd.Name)
		}
	}
	for i := range cmd.Options {
		if !types.IsValidKey(cmd.Options[i].Key) {
			return errs.ErrInvalidKey.WithArgs(cmd.Options[i].Key, cmd.Name)
		}
	}

	ancestors = append(ancestors, cmd)
	for i, sub := range cmd.Commands {
		if sub == nil || sub.Name == "" {
			return errs.ErrUnnamedCommand.WithArgs(i, cmd.Name)
		}
		if err := validateTree(sub, ancestors); err != nil {
			return err
		}
	}

	return nil
}
