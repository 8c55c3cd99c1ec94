// Package parse turns an argument vector into classified tokens.
package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/napalu/earg/internal/optiondb"
)

// TokenStatus classifies the result of Tokenizer.Next
type TokenStatus int

const (
	// TokenEnd signals that no arguments remain
	TokenEnd TokenStatus = iota
	// TokenUnknown signals an option which is not in the table. Token.Text holds the option
	// as written, e.g. "--name" or "-x".
	TokenUnknown
	// TokenOption is an option found in the table
	TokenOption
	// TokenPositional is anything else
	TokenPositional
)

func (s TokenStatus) String() string {
	switch s {
	case TokenEnd:
		return "end"
	case TokenUnknown:
		return "unknown"
	case TokenOption:
		return "option"
	case TokenPositional:
		return "positional"
	default:
		return "invalid"
	}
}

// Token is one classified unit of the argument vector. Entry is nil for positionals. For
// options, HasValue reports whether Text holds an inline value (--name=value, -kvalue).
type Token struct {
	Text     string
	HasValue bool
	Entry    *optiondb.Entry
}

// Tokenizer classifies arguments lazily against the current content of an option table, so
// options inserted by a sub-command become visible to the arguments following its name.
type Tokenizer struct {
	state          State
	db             *optiondb.DB
	cluster        string
	positionalOnly bool
}

// NewTokenizer creates a Tokenizer over args resolving options in db
func NewTokenizer(args []string, db *optiondb.DB) *Tokenizer {
	return &Tokenizer{
		state: NewState(args),
		db:    db,
	}
}

// Pos returns the number of arguments consumed so far
func (t *Tokenizer) Pos() int {
	return t.state.Pos()
}

// Next returns the next token. Every option token increments the occurrence counter of its
// entry exactly once.
func (t *Tokenizer) Next() (Token, TokenStatus) {
	if t.cluster != "" {
		return t.short(t.cluster)
	}

	arg, ok := t.state.Advance()
	if !ok {
		return Token{}, TokenEnd
	}
	if t.positionalOnly {
		return Token{Text: arg}, TokenPositional
	}

	switch {
	case arg == "--":
		t.positionalOnly = true
		return t.Next()
	case strings.HasPrefix(arg, "--"):
		return t.long(arg[2:])
	case len(arg) > 1 && arg[0] == '-':
		return t.short(arg[1:])
	}

	return Token{Text: arg}, TokenPositional
}

func (t *Tokenizer) long(arg string) (Token, TokenStatus) {
	name, value, hasValue := strings.Cut(arg, "=")
	e, ok := t.db.FindByName(name)
	if !ok {
		return Token{Text: "--" + name}, TokenUnknown
	}
	e.Occurrences++

	return Token{Text: value, HasValue: hasValue, Entry: e}, TokenOption
}

// short classifies the first key of cluster, which holds the characters following '-'
func (t *Tokenizer) short(cluster string) (Token, TokenStatus) {
	t.cluster = ""
	key, size := utf8.DecodeRuneInString(cluster)
	rest := cluster[size:]

	e, ok := t.db.FindByKey(key)
	if !ok {
		return Token{Text: "-" + string(key)}, TokenUnknown
	}
	e.Occurrences++

	if value, found := strings.CutPrefix(rest, "="); found {
		return Token{Text: value, HasValue: true, Entry: e}, TokenOption
	}
	if e.Option.TakesArg() {
		if rest == "" {
			return Token{Entry: e}, TokenOption
		}
		return Token{Text: rest, HasValue: true, Entry: e}, TokenOption
	}
	t.cluster = rest

	return Token{Entry: e}, TokenOption
}
