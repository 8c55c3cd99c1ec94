package errs

import (
	"errors"

	"github.com/napalu/earg/i18n"
)

// User input errors
var (
	ErrUnknownOption      = i18n.NewError(ErrUnknownOptionKey)
	ErrRedundantOption    = i18n.NewError(ErrRedundantOptionKey)
	ErrMissingArgument    = i18n.NewError(ErrMissingArgumentKey)
	ErrUnexpectedArgument = i18n.NewError(ErrUnexpectedArgumentKey)
	ErrOptionNotEaten     = i18n.NewError(ErrOptionNotEatenKey)
	ErrPositionalNotEaten = i18n.NewError(ErrPositionalNotEatenKey)
	ErrInvalidPositional  = i18n.NewError(ErrInvalidPositionalKey)
	ErrPositionalCount    = i18n.NewError(ErrPositionalCountKey)
	ErrSplitCommandLine   = i18n.NewError(ErrSplitCommandLineKey)
)

// Fatal errors
var (
	ErrDuplicateOption      = i18n.NewError(ErrDuplicateOptionKey)
	ErrCommandDepthExceeded = i18n.NewError(ErrCommandDepthExceededKey)
	ErrEmptyArguments       = i18n.NewError(ErrEmptyArgumentsKey)
	ErrInvalidEatStatus     = i18n.NewError(ErrInvalidEatStatusKey)
	ErrSinkWrite            = i18n.NewError(ErrSinkWriteKey)
	ErrNilProgram           = i18n.NewError(ErrNilProgramKey)
	ErrUnnamedCommand       = i18n.NewError(ErrUnnamedCommandKey)
	ErrCommandCycle         = i18n.NewError(ErrCommandCycleKey)
	ErrNoEntrypoint         = i18n.NewError(ErrNoEntrypointKey)
	ErrEmptyStack           = i18n.NewError(ErrEmptyStackKey)
	ErrInvalidLevel         = i18n.NewError(ErrInvalidLevelKey)
	ErrInvalidKey           = i18n.NewError(ErrInvalidKeyKey)
)

// ErrWithProvider renders a TranslatableError with a specific MessageProvider, typically the
// bundle configured on a parser
type ErrWithProvider struct {
	te       i18n.TranslatableError
	provider i18n.MessageProvider
}

// WithProvider binds te to provider. A nil provider leaves te unchanged.
func WithProvider(te i18n.TranslatableError, provider i18n.MessageProvider) error {
	if provider == nil {
		return te
	}

	return &ErrWithProvider{
		te:       te,
		provider: provider,
	}
}

func (e *ErrWithProvider) Error() string {
	return e.te.Format(e.provider)
}

func (e *ErrWithProvider) Unwrap() error {
	return e.te
}

func (e *ErrWithProvider) Is(target error) bool {
	return errors.Is(e.te, target)
}
