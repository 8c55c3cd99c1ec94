package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrintableKey(t *testing.T) {
	tests := []struct {
		key  rune
		want bool
	}{
		{'a', true},
		{'Z', true},
		{'7', true},
		{'?', true},
		{'@', true},
		{'é', true},
		{'漢', true},
		{'-', false},
		{' ', false},
		{'\t', false},
		{'\x00', false},
		{KeyVersion, false},
		{KeyVerbosity, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrintableKey(tt.key), "%q", tt.key)
	}
}

func TestIsValidKey(t *testing.T) {
	assert.True(t, IsValidKey(KeyNone))
	assert.True(t, IsValidKey(KeyVersion))
	assert.True(t, IsValidKey(KeyVerbosity))
	assert.True(t, IsValidKey('@'))
	assert.False(t, IsValidKey('\n'))
	assert.False(t, IsValidKey('-'))
}

func TestOption_String(t *testing.T) {
	tests := []struct {
		opt  Option
		want string
	}{
		{Option{Name: "all", Key: 'a'}, "-a/--all"},
		{Option{Key: '@'}, "-@"},
		{Option{Key: 'é', Arg: "X"}, "-é"},
		{Option{Name: "version", Key: KeyVersion}, "--version"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opt.String())
	}
}
