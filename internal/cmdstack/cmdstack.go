// Package cmdstack tracks the chain of commands from the program root down to the active
// sub-command during a parse.
package cmdstack

import (
	"io"
	"strings"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/types"
)

// DefaultMaxDepth bounds the nesting of sub-commands, root included
const DefaultMaxDepth = 8

// Frame is one level of the command path: the token which selected the command and the
// command itself
type Frame struct {
	Text    string
	Command *types.Command
}

// Stack is a bounded stack of frames. Frames are never popped during a parse.
type Stack struct {
	frames []Frame
	max    int
}

// New creates a Stack holding at most max frames. A max below 1 uses DefaultMaxDepth.
func New(max int) *Stack {
	if max < 1 {
		max = DefaultMaxDepth
	}

	return &Stack{
		frames: make([]Frame, 0, max),
		max:    max,
	}
}

// Push appends a frame. It fails once the stack holds its maximum number of frames.
func (s *Stack) Push(text string, cmd *types.Command) error {
	if len(s.frames) >= s.max {
		return errs.ErrCommandDepthExceeded.WithArgs(s.max)
	}
	s.frames = append(s.frames, Frame{Text: text, Command: cmd})

	return nil
}

// Last returns the active command
func (s *Stack) Last() (*types.Command, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}

	return s.frames[len(s.frames)-1].Command, true
}

// Len returns the number of frames
func (s *Stack) Len() int {
	return len(s.frames)
}

// At returns the frame at index, 0 being the root
func (s *Stack) At(index int) (Frame, bool) {
	if index < 0 || index >= len(s.frames) {
		return Frame{}, false
	}

	return s.frames[index], true
}

// Names returns the token texts of all frames, root first
func (s *Stack) Names() []string {
	names := make([]string, len(s.frames))
	for i, f := range s.frames {
		names[i] = f.Text
	}

	return names
}

// Render writes the space-joined command path to w
func (s *Stack) Render(w io.Writer) error {
	for i, f := range s.frames {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return errs.ErrSinkWrite.Wrap(err)
			}
		}
		if _, err := io.WriteString(w, f.Text); err != nil {
			return errs.ErrSinkWrite.Wrap(err)
		}
	}

	return nil
}

func (s *Stack) String() string {
	return strings.Join(s.Names(), " ")
}

// Clear drops all frames and keeps the capacity
func (s *Stack) Clear() {
	clear(s.frames)
	s.frames = s.frames[:0]
}
