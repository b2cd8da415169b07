package skeleton

import "github.com/go-gl/mathgl/mgl32"

// Stack is a LIFO of composed transforms used while walking a Tree.
type Stack struct {
	items []mgl32.Mat4
}

func NewStack() *Stack {
	return &Stack{items: make([]mgl32.Mat4, 0, 8)}
}

func (s *Stack) Push(m mgl32.Mat4) {
	s.items = append(s.items, m)
}

// Pop removes the top matrix. ok is false on an empty stack.
func (s *Stack) Pop() (m mgl32.Mat4, ok bool) {
	if len(s.items) == 0 {
		return mgl32.Ident4(), false
	}
	m = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return m, true
}

// Top returns the top matrix without removing it, or identity when empty.
func (s *Stack) Top() mgl32.Mat4 {
	if len(s.items) == 0 {
		return mgl32.Ident4()
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int { return len(s.items) }
