package earg

// NewOption convenience initialization method to configure options
func NewOption(configs ...ConfigureOptionFunc) Option {
	opt := Option{}
	for _, config := range configs {
		config(&opt)
	}

	return opt
}

// WithLongName sets the long form of an option, matched as --name
func WithLongName(name string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Name = name
	}
}

// WithKey sets the short form of an option, matched as -k and usable in clusters such as -vk
func WithKey(key rune) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Key = key
	}
}

// WithArg makes the option require a value. tag names the value in help output.
func WithArg(tag string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Arg = tag
	}
}

// WithHelp sets the description shown in help output
func WithHelp(help string) ConfigureOptionFunc {
	return func(opt *Option) {
		opt.Help = help
	}
}

// SetMultiple allows or forbids repeating the option
func SetMultiple(multiple bool) ConfigureOptionFunc {
	return func(opt *Option) {
		if multiple {
			opt.Flags |= OptionMultiple
		} else {
			opt.Flags &^= OptionMultiple
		}
	}
}
