package earg

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// NewProgram creates the root of a command tree
func NewProgram(version string, flags ProgramFlags, configs ...ConfigureCommandFunc) *Program {
	prog := &Program{
		Version: version,
		Flags:   flags,
	}
	for _, config := range configs {
		config(&prog.Command)
	}

	return prog
}

// WithName sets the name for the command. The name is used to identify the command and invoke it from the command line.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithOptions appends options to the command. Use Group to start a new section in help output.
func WithOptions(opts ...Option) ConfigureCommandFunc {
	return func(command *Command) {
		command.Options = append(command.Options, opts...)
	}
}

// WithSubcommands function takes a list of subcommands and associates them with a command.
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Commands = append(command.Commands, subcommands...)
	}
}

// WithArgs sets the accepted positional arguments, one alternative per line, e.g. "SRC DEST\nSRC... DIR"
func WithArgs(args string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Args = args
	}
}

// WithHeader sets the text printed after the usage lines in help output
func WithHeader(header string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Header = header
	}
}

// WithFooter sets the text printed last in help output
func WithFooter(footer string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Footer = footer
	}
}

// WithEater sets the Eater receiving the options and positionals of the command
func WithEater(eater Eater) ConfigureCommandFunc {
	return func(command *Command) {
		command.Eat = eater
	}
}

// WithEatFunc is WithEater for plain functions
func WithEatFunc(fn func(opt *Option, value string) EatStatus) ConfigureCommandFunc {
	return func(command *Command) {
		command.Eat = EatFunc(fn)
	}
}

// WithEntrypoint sets the function run by Parser.Run when the command is the deepest command reached
func WithEntrypoint(entrypoint EntrypointFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.Entrypoint = entrypoint
	}
}
