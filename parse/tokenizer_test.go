package parse

import (
	"testing"

	"github.com/napalu/earg/internal/optiondb"
	"github.com/napalu/earg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seen is a flattened token used to compare token streams
type seen struct {
	Status   TokenStatus
	Option   string
	Text     string
	HasValue bool
}

func newDB(t *testing.T) *optiondb.DB {
	t.Helper()
	cmd := &types.Command{
		Name: "prog",
		Options: []types.Option{
			{Name: "all", Key: 'a'},
			{Name: "brief", Key: 'b'},
			{Name: "config", Key: 'c', Arg: "FILE"},
			{Key: 'v', Flags: types.OptionMultiple},
			{Name: "output", Key: 'o', Arg: "FILE"},
			{Name: "dry-run"},
		},
	}
	db := optiondb.New()
	db.Checkpoint()
	require.NoError(t, db.InsertAll(cmd.Options, cmd))

	return db
}

func collect(tk *Tokenizer) []seen {
	var out []seen
	for {
		tok, status := tk.Next()
		if status == TokenEnd {
			return out
		}
		s := seen{Status: status, Text: tok.Text, HasValue: tok.HasValue}
		if tok.Entry != nil {
			s.Option = tok.Entry.Option.String()
		}
		out = append(out, s)
		if status == TokenUnknown {
			return out
		}
	}
}

func TestTokenizer_Next(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []seen
	}{
		{
			name: "empty",
			args: nil,
			want: nil,
		},
		{
			name: "positionals",
			args: []string{"a", "-", "b"},
			want: []seen{
				{Status: TokenPositional, Text: "a"},
				{Status: TokenPositional, Text: "-"},
				{Status: TokenPositional, Text: "b"},
			},
		},
		{
			name: "long flag",
			args: []string{"--all"},
			want: []seen{{Status: TokenOption, Option: "-a/--all"}},
		},
		{
			name: "long inline value",
			args: []string{"--output=x.bin"},
			want: []seen{{Status: TokenOption, Option: "-o/--output", Text: "x.bin", HasValue: true}},
		},
		{
			name: "long empty inline value",
			args: []string{"--output="},
			want: []seen{{Status: TokenOption, Option: "-o/--output", HasValue: true}},
		},
		{
			name: "long value split at first equal sign",
			args: []string{"--output=a=b"},
			want: []seen{{Status: TokenOption, Option: "-o/--output", Text: "a=b", HasValue: true}},
		},
		{
			name: "long without value leaves the next argument alone",
			args: []string{"--output", "x.bin"},
			want: []seen{
				{Status: TokenOption, Option: "-o/--output"},
				{Status: TokenPositional, Text: "x.bin"},
			},
		},
		{
			name: "long only",
			args: []string{"--dry-run"},
			want: []seen{{Status: TokenOption, Option: "--dry-run"}},
		},
		{
			name: "unknown long",
			args: []string{"--unknown=3", "a"},
			want: []seen{{Status: TokenUnknown, Text: "--unknown"}},
		},
		{
			name: "no prefix matching",
			args: []string{"--out"},
			want: []seen{{Status: TokenUnknown, Text: "--out"}},
		},
		{
			name: "short flag",
			args: []string{"-a"},
			want: []seen{{Status: TokenOption, Option: "-a/--all"}},
		},
		{
			name: "unknown short",
			args: []string{"-x"},
			want: []seen{{Status: TokenUnknown, Text: "-x"}},
		},
		{
			name: "short attached value",
			args: []string{"-ox.bin"},
			want: []seen{{Status: TokenOption, Option: "-o/--output", Text: "x.bin", HasValue: true}},
		},
		{
			name: "short value after equal sign",
			args: []string{"-o=x.bin"},
			want: []seen{{Status: TokenOption, Option: "-o/--output", Text: "x.bin", HasValue: true}},
		},
		{
			name: "short flag with equal sign carries a value",
			args: []string{"-a=1"},
			want: []seen{{Status: TokenOption, Option: "-a/--all", Text: "1", HasValue: true}},
		},
		{
			name: "cluster",
			args: []string{"-vvv"},
			want: []seen{
				{Status: TokenOption, Option: "-v"},
				{Status: TokenOption, Option: "-v"},
				{Status: TokenOption, Option: "-v"},
			},
		},
		{
			name: "cluster ending with value option",
			args: []string{"-abc", "cfg"},
			want: []seen{
				{Status: TokenOption, Option: "-a/--all"},
				{Status: TokenOption, Option: "-b/--brief"},
				{Status: TokenOption, Option: "-c/--config"},
				{Status: TokenPositional, Text: "cfg"},
			},
		},
		{
			name: "cluster with value in the middle",
			args: []string{"-acfile", "x"},
			want: []seen{
				{Status: TokenOption, Option: "-a/--all"},
				{Status: TokenOption, Option: "-c/--config", Text: "file", HasValue: true},
				{Status: TokenPositional, Text: "x"},
			},
		},
		{
			name: "cluster with unknown key",
			args: []string{"-axb"},
			want: []seen{
				{Status: TokenOption, Option: "-a/--all"},
				{Status: TokenUnknown, Text: "-x"},
			},
		},
		{
			name: "double dash",
			args: []string{"-a", "--", "-x", "--all", "--"},
			want: []seen{
				{Status: TokenOption, Option: "-a/--all"},
				{Status: TokenPositional, Text: "-x"},
				{Status: TokenPositional, Text: "--all"},
				{Status: TokenPositional, Text: "--"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := NewTokenizer(tt.args, newDB(t))
			assert.Equal(t, tt.want, collect(tk))
		})
	}
}

func TestTokenizer_Occurrences(t *testing.T) {
	db := newDB(t)
	tk := NewTokenizer([]string{"-vv", "--all", "-v", "x"}, db)
	collect(tk)

	e, ok := db.FindByKey('v')
	require.True(t, ok)
	assert.Equal(t, 3, e.Occurrences)

	e, ok = db.FindByName("all")
	require.True(t, ok)
	assert.Equal(t, 1, e.Occurrences)

	assert.Equal(t, 4, tk.Pos())
}

func TestTokenizer_SeesLateInsertions(t *testing.T) {
	db := newDB(t)
	tk := NewTokenizer([]string{"build", "--jobs=4"}, db)

	tok, status := tk.Next()
	assert.Equal(t, TokenPositional, status)
	assert.Equal(t, "build", tok.Text)

	build := &types.Command{Name: "build", Options: []types.Option{{Name: "jobs", Key: 'j', Arg: "N"}}}
	db.Checkpoint()
	require.NoError(t, db.InsertAll(build.Options, build))

	tok, status = tk.Next()
	assert.Equal(t, TokenOption, status)
	assert.Same(t, build, tok.Entry.Command)
	assert.Equal(t, "4", tok.Text)
}

func TestTokenStatus_String(t *testing.T) {
	assert.Equal(t, "end", TokenEnd.String())
	assert.Equal(t, "unknown", TokenUnknown.String())
	assert.Equal(t, "option", TokenOption.String())
	assert.Equal(t, "positional", TokenPositional.String())
	assert.Equal(t, "invalid", TokenStatus(9).String())
}

func TestState(t *testing.T) {
	s := NewState([]string{"a", "b"})

	assert.Equal(t, 0, s.Pos())

	v, ok := s.Advance()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	v, _ = s.Advance()
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Pos())

	_, ok = s.Advance()
	assert.False(t, ok)
	assert.Equal(t, 2, s.Pos())
}
