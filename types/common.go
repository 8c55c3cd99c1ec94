package types

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// Sentinel keys for options which have no printable short form. Printable keys
// are plain runes ('v', 'h', '?', ...).
const (
	KeyNone      rune = 0
	KeyVersion   rune = math.MinInt32 + 1
	KeyVerbosity rune = math.MinInt32 + 2
)

// OptionFlags modify how an Option may be used on the command line
type OptionFlags int

const (
	OptionNone OptionFlags = 0
	// OptionMultiple allows an option to be repeated, e.g. -vvv
	OptionMultiple OptionFlags = 1
)

// Option describes a single command-line option. An Option is immutable once handed to a parser
// and is shared read-only across the parse.
//
// Name is the long form (--name), Key the short form (-k). Arg, when not empty, is the label
// of the value the option requires: an option with an empty Arg is a boolean flag.
//
// An Option with neither Key nor a printable short form but a Name and Key == KeyNone is a
// long-only option. An Option with Key == KeyNone and no Name at all is a group header,
// see IsGroup.
type Option struct {
	Name  string
	Key   rune
	Arg   string
	Flags OptionFlags
	Help  string
	group bool
}

// Group returns an option which only acts as a section header in help output. Group headers
// are never matched against the command line.
func Group(title string) Option {
	return Option{Name: title, group: true}
}

// IsGroup returns true when the option is a help-only group header
func (o *Option) IsGroup() bool {
	return o.group || (o.Key == KeyNone && o.Name == "")
}

// TakesArg returns true when the option requires a value
func (o *Option) TakesArg() bool {
	return o.Arg != ""
}

// Multiple returns true when the option may be repeated
func (o *Option) Multiple() bool {
	return o.Flags&OptionMultiple != 0
}

// HasShortForm returns true when Key is a printable, matchable short form
func (o *Option) HasShortForm() bool {
	return IsPrintableKey(o.Key)
}

// String renders the option the way it is referred to in messages: -k/--name, -k or --name
func (o *Option) String() string {
	var sb strings.Builder
	if o.HasShortForm() {
		sb.WriteByte('-')
		sb.WriteRune(o.Key)
		if o.Name != "" {
			sb.WriteByte('/')
		}
	}
	if o.Name != "" {
		sb.WriteString("--")
		sb.WriteString(o.Name)
	}

	return sb.String()
}

// IsPrintableKey reports whether key can be written as -key on the command line
func IsPrintableKey(key rune) bool {
	return key != '-' && !unicode.IsSpace(key) && unicode.IsPrint(key)
}

// IsValidKey reports whether key may be used as the Key of an Option: KeyNone, one of the
// sentinels or a printable key
func IsValidKey(key rune) bool {
	switch key {
	case KeyNone, KeyVersion, KeyVerbosity:
		return true
	}

	return IsPrintableKey(key)
}

// EatStatus is returned by an Eater and drives the parser after every dispatch
type EatStatus int

const (
	// EatOK continues parsing
	EatOK EatStatus = iota
	// EatOKExit stops parsing successfully and asks the host to exit
	EatOKExit
	// EatUnrecognized rejects the value as invalid
	EatUnrecognized
	// EatNotEaten rejects the option or positional as not consumed
	EatNotEaten
)

func (s EatStatus) String() string {
	switch s {
	case EatOK:
		return "ok"
	case EatOKExit:
		return "ok-exit"
	case EatUnrecognized:
		return "unrecognized"
	case EatNotEaten:
		return "not-eaten"
	default:
		return "invalid"
	}
}

// Eater receives every accepted option and positional of a command. opt is nil for
// positionals. value is empty for boolean options.
type Eater interface {
	Eat(opt *Option, value string) EatStatus
}

// EatFunc adapts an ordinary function to the Eater interface
type EatFunc func(opt *Option, value string) EatStatus

// Eat calls f(opt, value)
func (f EatFunc) Eat(opt *Option, value string) EatStatus {
	return f(opt, value)
}

// Bind returns an Eater which passes state to fn on every call. It is the typed replacement for
// a per-command user pointer.
func Bind[T any](state *T, fn func(state *T, opt *Option, value string) EatStatus) Eater {
	return EatFunc(func(opt *Option, value string) EatStatus {
		return fn(state, opt, value)
	})
}

// EntrypointFunc is run by Parser.Run for the command resolved by a successful parse
type EntrypointFunc func(ctx context.Context, cmd *Command) error

// Command is a node of the command tree
type Command struct {
	Name       string
	Options    []Option
	Commands   []*Command
	Args       string
	Header     string
	Footer     string
	Eat        Eater
	Entrypoint EntrypointFunc
}

// FindCommand returns the direct sub-command called name
func (c *Command) FindCommand(name string) (*Command, bool) {
	if c == nil {
		return nil, false
	}
	for _, sub := range c.Commands {
		if sub != nil && sub.Name == name {
			return sub, true
		}
	}

	return nil, false
}

// ProgramFlags suppress built-in options of a Program
type ProgramFlags int

const (
	NoHelp ProgramFlags = 1 << iota
	NoUsage
	NoBuiltinLogging
)

// Has returns true when all flags in f are set
func (p ProgramFlags) Has(f ProgramFlags) bool {
	return p&f == f
}

// Program is the root of a command tree
type Program struct {
	Command
	Version string
	Flags   ProgramFlags
}

// Status is the outcome of a parse
type Status int

const (
	StatusOK Status = iota
	// StatusExit signals that a handler fully satisfied the request (--help, --version...)
	StatusExit
	StatusUserError
	StatusFatal
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusExit:
		return "ok-exit"
	case StatusUserError:
		return "user error"
	case StatusFatal:
		return "fatal"
	default:
		return "unknown"
	}
}
