package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/napalu/earg/errs"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "prog build -o out.bin a.c",
			want:  []string{"prog", "build", "-o", "out.bin", "a.c"},
		},
		{
			name:  "quoted arguments",
			input: `prog --message "hello world"`,
			want:  []string{"prog", "--message", "hello world"},
		},
		{
			name:  "multiple quotes",
			input: `prog "first quote" 'second quote'`,
			want:  []string{"prog", "first quote", "second quote"},
		},
		{
			name:  "escaped quotes",
			input: `prog \"hello\"`,
			want:  []string{"prog", `"hello"`},
		},
		{
			name:  "inline value with spaces",
			input: `prog --name="a b"`,
			want:  []string{"prog", "--name=a b"},
		},
		{
			name:  "multiple spaces",
			input: "prog   arg1    arg2",
			want:  []string{"prog", "arg1", "arg2"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  []string{},
		},
		{
			name:  "with environment variables",
			input: "prog $HOME",
			want:  []string{"prog", "$HOME"},
		},
		{
			name:    "unterminated quote",
			input:   `prog "oops`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, errs.ErrSplitCommandLine) {
					t.Errorf("Split() error = %v, want ErrSplitCommandLine", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
