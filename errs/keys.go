// Package errs declares the translatable errors returned by the parser and their message keys.
package errs

const (
	prefixKey = "earg"

	ErrorPrefixKey   = prefixKey + ".error"
	MessagePrefixKey = prefixKey + ".msg"
)

// Command-line (user input) errors
const (
	ErrUnknownOptionKey      = ErrorPrefixKey + ".unknown_option"
	ErrRedundantOptionKey    = ErrorPrefixKey + ".redundant_option"
	ErrMissingArgumentKey    = ErrorPrefixKey + ".missing_argument"
	ErrUnexpectedArgumentKey = ErrorPrefixKey + ".unexpected_argument"
	ErrOptionNotEatenKey     = ErrorPrefixKey + ".option_not_eaten"
	ErrPositionalNotEatenKey = ErrorPrefixKey + ".positional_not_eaten"
	ErrInvalidPositionalKey  = ErrorPrefixKey + ".invalid_positional"
	ErrPositionalCountKey    = ErrorPrefixKey + ".positional_count"
	ErrSplitCommandLineKey   = ErrorPrefixKey + ".split_command_line"
)

// Fatal errors: defects of the command tree or the environment
const (
	ErrDuplicateOptionKey      = ErrorPrefixKey + ".duplicate_option"
	ErrCommandDepthExceededKey = ErrorPrefixKey + ".command_depth_exceeded"
	ErrEmptyArgumentsKey       = ErrorPrefixKey + ".empty_arguments"
	ErrInvalidEatStatusKey     = ErrorPrefixKey + ".invalid_eat_status"
	ErrSinkWriteKey            = ErrorPrefixKey + ".sink_write"
	ErrNilProgramKey           = ErrorPrefixKey + ".nil_program"
	ErrUnnamedCommandKey       = ErrorPrefixKey + ".unnamed_command"
	ErrCommandCycleKey         = ErrorPrefixKey + ".command_cycle"
	ErrNoEntrypointKey         = ErrorPrefixKey + ".no_entrypoint"
	ErrEmptyStackKey           = ErrorPrefixKey + ".empty_stack"
	ErrInvalidLevelKey         = ErrorPrefixKey + ".invalid_level"
	ErrInvalidKeyKey           = ErrorPrefixKey + ".invalid_key"
)

// Help and usage output
const (
	MsgUsageKey        = MessagePrefixKey + ".usage"
	MsgOrKey           = MessagePrefixKey + ".or"
	MsgOptionsKey      = MessagePrefixKey + ".options"
	MsgCommandsKey     = MessagePrefixKey + ".commands"
	MsgOptionSpanKey   = MessagePrefixKey + ".option_span"
	MsgTryHelpKey      = MessagePrefixKey + ".try_help"
	MsgTryHelpOnlyKey  = MessagePrefixKey + ".try_help_only"
	MsgTryUsageOnlyKey = MessagePrefixKey + ".try_usage_only"
	MsgHelpOptionKey   = MessagePrefixKey + ".help_option"
	MsgUsageOptionKey  = MessagePrefixKey + ".usage_option"
	MsgVersionOptKey   = MessagePrefixKey + ".version_option"
	MsgVerbosityKey    = MessagePrefixKey + ".verbosity_option"
	MsgVerboseFlagKey  = MessagePrefixKey + ".verbose_flag"
	MsgQuietFlagKey    = MessagePrefixKey + ".quiet_flag"
	MsgVerbosityArgKey = MessagePrefixKey + ".verbosity_arg"
)
