package earg

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func newToolProgram() *Program {
	return &Program{
		Command: Command{
			Name: "tool",
			Options: []Option{
				{Name: "force", Key: 'f', Help: "Overwrite existing files without asking for confirmation first, even when the destination is newer than the source"},
				Group("Output"),
				{Name: "outFile", Key: 'o', Arg: "outFile", Help: "Write the report to OUT_FILE"},
				{Key: 'n', Help: "Dry run"},
				{Name: "dry"},
			},
			Commands: []*Command{{Name: "sync"}},
			Args:     "SRC DEST\nSRC... DIR",
			Header:   "Copy files from SRC to DEST.",
			Footer:   "Report bugs to <bugs@example.com>.",
			Eat: EatFunc(func(opt *Option, value string) EatStatus {
				return EatOK
			}),
		},
		Version: "0.1",
		Flags:   NoBuiltinLogging,
	}
}

func TestRenderer_Help(t *testing.T) {
	p, stdout, _ := newTestParser(t, newToolProgram())

	status, _ := p.Parse([]string{"tool", "--help"})
	require.Equal(t, StatusExit, status)

	want := "Usage: tool [OPTION...] SRC DEST\n" +
		"   or: tool [OPTION...] SRC... DIR\n" +
		"\n" +
		"Copy files from SRC to DEST.\n" +
		"\n" +
		"Commands:\n" +
		"  sync\n" +
		"\n" +
		"Options:\n" +
		"  -h, --help                Give this help list and exit\n" +
		"  -?, --usage               Give a short usage message and exit\n" +
		"      --version             Print program version and exit\n" +
		"  -f, --force               Overwrite existing files without asking for\n" +
		"                            confirmation first, even when the destination is\n" +
		"                            newer than the source\n" +
		"\n" +
		"Output\n" +
		"  -o, --outFile=OUT_FILE    Write the report to OUT_FILE\n" +
		"  -n                        Dry run\n" +
		"      --dry\n" +
		"\n" +
		"Report bugs to <bugs@example.com>.\n"
	assert.Equal(t, want, stdout.String())
}

func TestRenderer_SubCommandHelp(t *testing.T) {
	p, stdout, _ := newTestParser(t, newToolProgram())

	status, cmd := p.Parse([]string{"tool", "sync", "-h"})
	require.Equal(t, StatusExit, status)
	assert.Equal(t, "sync", cmd.Name)

	want := "Usage: tool sync [OPTION...]\n" +
		"\n" +
		"Options:\n" +
		"  -h, --help     Give this help list and exit\n" +
		"  -?, --usage    Give a short usage message and exit\n"
	assert.Equal(t, want, stdout.String())
}

func TestRenderer_Usage(t *testing.T) {
	p, stdout, _ := newTestParser(t, newToolProgram())

	status, _ := p.Parse([]string{"tool", "-?"})
	require.Equal(t, StatusExit, status)
	assert.Equal(t, "Usage: tool [OPTION...] SRC DEST\n   or: tool [OPTION...] SRC... DIR\n", stdout.String())
}

func TestRenderer_UsageEmptyAlternative(t *testing.T) {
	prog := &Program{Command: Command{Name: "clean", Args: "\nTARGET"}}
	p, _, _ := newTestParser(t, prog)

	var buf bytes.Buffer
	require.NoError(t, p.PrintUsage(&buf))
	assert.Equal(t, "Usage: clean [OPTION...]\n   or: clean [OPTION...] TARGET\n", buf.String())
}

func TestRenderer_VersionAndLoggingOptions(t *testing.T) {
	prog := &Program{Command: Command{Name: "prog"}, Version: "2.0"}
	p, stdout, _ := newTestParser(t, prog)

	status, _ := p.Parse([]string{"prog", "--version"})
	require.Equal(t, StatusExit, status)
	assert.Equal(t, "2.0\n", stdout.String())

	stdout.Reset()
	require.NoError(t, p.PrintHelp(stdout))
	assert.Contains(t, stdout.String(), "  -v                       Increase the verbosity on each occurrence, e.g. -vvv\n")
	assert.Contains(t, stdout.String(), "  -q                       Decrease the verbosity on each occurrence, e.g. -qq\n")
	assert.Contains(t, stdout.String(), "      --verbosity=LEVEL    Verbosity level.")
}

func TestRenderer_WriteFailure(t *testing.T) {
	p, err := NewParser(newToolProgram(), WithStdout(failingWriter{}), WithStderr(&bytes.Buffer{}))
	require.NoError(t, err)

	status, _ := p.Parse([]string{"tool", "--help"})
	assert.Equal(t, StatusFatal, status)
	assert.True(t, errors.Is(p.Err(), errs.ErrSinkWrite))
}

type fakeTerminal struct {
	width int
}

func (f fakeTerminal) IsTerminal(int) bool {
	return true
}

func (f fakeTerminal) GetSize(int) (int, int, error) {
	return f.width, 24, nil
}

func TestRenderer_LineSize(t *testing.T) {
	p, err := NewParser(newToolProgram(), WithTerminal(fakeTerminal{width: 41}))
	require.NoError(t, err)
	r := NewRenderer(p)

	assert.Equal(t, 40, r.lineSize(os.Stdout))
	assert.Equal(t, util.DefaultLineSize, r.lineSize(&bytes.Buffer{}), "a buffer is never a terminal")

	p.lineSize = 60
	assert.Equal(t, 60, r.lineSize(os.Stdout))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "one two", 10, []string{"one two"}},
		{"breaks between words", "one two three", 8, []string{"one two", "three"}},
		{"collapses spaces", "  one   two  ", 20, []string{"one two"}},
		{"hyphenates long words", "abcdefghij", 4, []string{"abc-", "def-", "ghij"}},
		{"long word after short", "a bcdefgh", 4, []string{"a", "bcd-", "efgh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrap(tt.text, tt.width))
		})
	}
}

func TestWriteWrapped(t *testing.T) {
	var buf bytes.Buffer
	writeWrapped(&buf, "first paragraph\n\nsecond", 2, 22)
	assert.Equal(t, "first paragraph\n\n  second\n", buf.String())
}

func TestRenderer_Metavar(t *testing.T) {
	r := NewRenderer(&Parser{})
	tests := map[string]string{
		"FILE":     "FILE",
		"outFile":  "OUT_FILE",
		"out-file": "OUT_FILE",
		"[=N]":     "[=N]",
		"":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, r.Metavar(&Option{Arg: in}), in)
	}
}
