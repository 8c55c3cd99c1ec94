package parse

import (
	"github.com/ef-ds/deque"
)

// State holds the arguments not yet consumed by a Tokenizer
type State interface {
	Pos() int                // Number of arguments consumed so far
	Advance() (string, bool) // Consume and return the next argument
}

// DefaultState is a State backed by a deque
type DefaultState struct {
	pos  int
	args *deque.Deque
}

// NewState creates a State over args
func NewState(args []string) State {
	d := deque.New()
	for _, a := range args {
		d.PushBack(a)
	}

	return &DefaultState{
		args: d,
	}
}

// Pos returns the number of arguments consumed so far
func (s *DefaultState) Pos() int {
	return s.pos
}

// Advance consumes and returns the next argument
func (s *DefaultState) Advance() (string, bool) {
	v, ok := s.args.PopFront()
	if !ok {
		return "", false
	}
	s.pos++

	return v.(string), true
}
