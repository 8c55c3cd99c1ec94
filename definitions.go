package earg

import (
	"fmt"
	"io"

	"github.com/napalu/earg/i18n"
	"github.com/napalu/earg/internal/cmdstack"
	"github.com/napalu/earg/internal/optiondb"
	"github.com/napalu/earg/logging"
	"github.com/napalu/earg/parse"
	"github.com/napalu/earg/types"
	"github.com/napalu/earg/util"
	"golang.org/x/text/language"
)

type (
	Option         = types.Option
	OptionFlags    = types.OptionFlags
	Command        = types.Command
	Program        = types.Program
	ProgramFlags   = types.ProgramFlags
	Eater          = types.Eater
	EatFunc        = types.EatFunc
	EatStatus      = types.EatStatus
	EntrypointFunc = types.EntrypointFunc
	Status         = types.Status
)

const (
	KeyNone      = types.KeyNone
	KeyVersion   = types.KeyVersion
	KeyVerbosity = types.KeyVerbosity

	OptionNone     = types.OptionNone
	OptionMultiple = types.OptionMultiple

	NoHelp           = types.NoHelp
	NoUsage          = types.NoUsage
	NoBuiltinLogging = types.NoBuiltinLogging

	EatOK           = types.EatOK
	EatOKExit       = types.EatOKExit
	EatUnrecognized = types.EatUnrecognized
	EatNotEaten     = types.EatNotEaten

	StatusOK        = types.StatusOK
	StatusExit      = types.StatusExit
	StatusUserError = types.StatusUserError
	StatusFatal     = types.StatusFatal
)

// Exit codes returned by Parser.Run
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitUserError = 2
)

// Group returns an option which is only rendered as a section title in help output
func Group(title string) Option {
	return types.Group(title)
}

// Bind returns an Eater passing state to fn on every call
func Bind[T any](state *T, fn func(state *T, opt *Option, value string) EatStatus) Eater {
	return types.Bind(state, fn)
}

// ConfigureParserFunc is used when configuring a Parser
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureOptionFunc is used when defining an Option
type ConfigureOptionFunc func(opt *Option)

// ConfigureCommandFunc is used when defining a Command
type ConfigureCommandFunc func(cmd *Command)

// Parser parses an argument vector against a Program. A Parser is not safe for concurrent use:
// each goroutine parsing concurrently needs its own Parser.
type Parser struct {
	prog         *Program
	stdout       io.Writer
	stderr       io.Writer
	logger       *logging.Logger
	bundle       *i18n.Bundle
	lang         language.Tag
	maxDepth     int
	lineSize     int
	variadicArgs bool
	terminal     util.Terminal
	renderer     Renderer
	builtins     []Option

	stack     *cmdstack.Stack
	db        *optiondb.DB
	tokenizer *parse.Tokenizer
	err       *ParseError
}

// Renderer writes usage and help text for the active command of a parse
type Renderer interface {
	PrintUsage(w io.Writer) error
	PrintHelp(w io.Writer) error
}

// ParseError is the rejection recorded by the last parse. Status is either StatusUserError
// or StatusFatal. Path is the command path at the time of the rejection.
type ParseError struct {
	Status Status
	Path   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsUserError returns true when the command line was at fault
func (e *ParseError) IsUserError() bool {
	return e.Status == StatusUserError
}
