package earg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/util"
)

const (
	minGap        = 4
	initialGap    = 8
	optionIndent  = 8
	minWrapWidth  = 20
	shortColumn   = "  -%c%c "
	noShortColumn = "      "
)

// DefaultRenderer renders usage and help in the GNU argp layout
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer creates the renderer used by a parser unless WithRenderer replaces it
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// PrintUsage writes one usage line per alternative of the positional argument text of the
// active command
func (r *DefaultRenderer) PrintUsage(w io.Writer) error {
	bw := bufio.NewWriter(w)
	r.usage(bw)

	return flush(bw)
}

// PrintHelp writes the usage lines, header, sub-commands, options and footer of the active
// command
func (r *DefaultRenderer) PrintHelp(w io.Writer) error {
	cmd := r.command()
	lineSize := r.lineSize(w)
	bw := bufio.NewWriter(w)

	r.usage(bw)
	if cmd.Header != "" {
		fmt.Fprintln(bw)
		writeWrapped(bw, cmd.Header, 0, lineSize)
	}
	if len(cmd.Commands) > 0 {
		fmt.Fprintf(bw, "\n%s\n", r.parser.tr(errs.MsgCommandsKey))
		for _, sub := range cmd.Commands {
			fmt.Fprintf(bw, "  %s\n", sub.Name)
		}
	}
	r.options(bw, cmd, lineSize)
	if cmd.Footer != "" {
		fmt.Fprintln(bw)
		writeWrapped(bw, cmd.Footer, 0, lineSize)
	}

	return flush(bw)
}

// Metavar renders the argument tag of an option: identifiers are converted to screaming snake
// case (outFile becomes OUT_FILE), anything else is kept as written
func (r *DefaultRenderer) Metavar(opt *Option) string {
	if !isIdentifier(opt.Arg) {
		return opt.Arg
	}

	return strcase.ToScreamingSnake(opt.Arg)
}

func (r *DefaultRenderer) usage(w io.Writer) {
	cmd := r.command()
	path := r.path()
	label := r.parser.tr(errs.MsgUsageKey)
	span := r.parser.tr(errs.MsgOptionSpanKey)

	fmt.Fprintf(w, "%s %s %s", label, path, span)
	if cmd.Args == "" {
		fmt.Fprintln(w)
		return
	}

	or := fmt.Sprintf("%*s", utf8.RuneCountInString(label), r.parser.tr(errs.MsgOrKey))
	for i, line := range strings.Split(cmd.Args, "\n") {
		if i > 0 {
			fmt.Fprintf(w, "\n%s %s %s", or, path, span)
		}
		if line = strings.TrimSpace(line); line != "" {
			fmt.Fprintf(w, " %s", line)
		}
	}
	fmt.Fprintln(w)
}

func (r *DefaultRenderer) options(w io.Writer, cmd *Command, lineSize int) {
	builtins := r.builtins()
	gap := initialGap
	for _, opt := range builtins {
		gap = max(gap, r.helpLen(opt)+minGap)
	}
	for i := range cmd.Options {
		if !cmd.Options[i].IsGroup() {
			gap = max(gap, r.helpLen(&cmd.Options[i])+minGap)
		}
	}

	fmt.Fprintf(w, "\n%s\n", r.parser.tr(errs.MsgOptionsKey))
	for _, opt := range builtins {
		r.option(w, opt, gap, lineSize)
	}
	for i := range cmd.Options {
		if cmd.Options[i].IsGroup() {
			r.group(w, &cmd.Options[i], gap, lineSize)
		} else {
			r.option(w, &cmd.Options[i], gap, lineSize)
		}
	}
}

// builtins returns the built-ins listed in the help of the active command. Logging options
// and --version are only listed for the root command.
func (r *DefaultRenderer) builtins() []*Option {
	kinds := []builtinKind{builtinHelp, builtinUsage}
	if r.parser.stack.Len() <= 1 {
		kinds = append(kinds, builtinVerboser, builtinQuieter, builtinVerbosity, builtinVersion)
	}

	var opts []*Option
	for _, kind := range kinds {
		if opt, ok := r.parser.builtin(kind); ok {
			opts = append(opts, opt)
		}
	}

	return opts
}

func (r *DefaultRenderer) option(w io.Writer, opt *Option, gap, lineSize int) {
	var head strings.Builder
	if opt.HasShortForm() {
		sep := ' '
		if opt.Name != "" {
			sep = ','
		}
		fmt.Fprintf(&head, shortColumn, opt.Key, sep)
	} else {
		head.WriteString(noShortColumn)
	}

	pad := gap - r.helpLen(opt)
	switch {
	case opt.Name == "":
		fmt.Fprintf(&head, "  %*s", pad, "")
	case opt.TakesArg():
		fmt.Fprintf(&head, "--%s=%s%*s", opt.Name, r.Metavar(opt), pad, "")
	default:
		fmt.Fprintf(&head, "--%s%*s", opt.Name, pad, "")
	}

	r.withHelp(w, head.String(), opt.Help, gap, lineSize)
}

func (r *DefaultRenderer) group(w io.Writer, opt *Option, gap, lineSize int) {
	title := opt.Name
	if title == "-" {
		title = ""
	}
	pad := max(gap+optionIndent-utf8.RuneCountInString(title), 1)

	fmt.Fprintln(w)
	r.withHelp(w, fmt.Sprintf("%s%*s", title, pad, ""), opt.Help, gap, lineSize)
}

// withHelp writes head followed by help aligned to the option column
func (r *DefaultRenderer) withHelp(w io.Writer, head, help string, gap, lineSize int) {
	if help == "" {
		fmt.Fprintln(w, strings.TrimRight(head, " "))
		return
	}
	fmt.Fprint(w, head)
	writeWrapped(w, help, gap+optionIndent, lineSize)
}

// helpLen is the width of the long form of opt without its "--" prefix
func (r *DefaultRenderer) helpLen(opt *Option) int {
	if opt.Name == "" {
		return 0
	}
	n := utf8.RuneCountInString(opt.Name)
	if opt.TakesArg() {
		n += utf8.RuneCountInString(r.Metavar(opt)) + 1
	}

	return n
}

func (r *DefaultRenderer) command() *Command {
	if cmd, ok := r.parser.stack.Last(); ok {
		return cmd
	}

	return &r.parser.prog.Command
}

func (r *DefaultRenderer) path() string {
	if r.parser.stack.Len() > 0 {
		return r.parser.stack.String()
	}

	return r.parser.prog.Name
}

func (r *DefaultRenderer) lineSize(w io.Writer) int {
	if r.parser.lineSize > 0 {
		return r.parser.lineSize
	}

	return util.LineSize(w, r.parser.terminal)
}

// writeWrapped writes text word-wrapped to lineSize columns. The cursor is expected to sit at
// column indent; continuation lines are indented by indent spaces. Line breaks in text start
// a new paragraph.
func writeWrapped(w io.Writer, text string, indent, lineSize int) {
	width := max(lineSize-indent, minWrapWidth)
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		wrapped := wrap(paragraph, width)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		lines = append(lines, wrapped...)
	}

	for i, line := range lines {
		if i > 0 && line != "" {
			fmt.Fprint(w, strings.Repeat(" ", indent))
		}
		fmt.Fprintln(w, line)
	}
}

// wrap splits text into lines of at most width runes, breaking between words. Words longer
// than width are split and hyphenated.
func wrap(text string, width int) []string {
	var lines []string
	var line []rune
	for _, word := range strings.Fields(text) {
		runes := []rune(word)
		for len(runes) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(runes[:width-1])+"-")
			runes = runes[width-1:]
		}
		if len(line) > 0 && len(line)+1+len(runes) > width {
			lines = append(lines, string(line))
			line = line[:0]
		}
		if len(line) > 0 {
			line = append(line, ' ')
		}
		line = append(line, runes...)
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}

	return lines
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' && c != '-' {
			return false
		}
	}

	return true
}

func flush(bw *bufio.Writer) error {
	if err := bw.Flush(); err != nil {
		return errs.ErrSinkWrite.Wrap(err)
	}

	return nil
}
