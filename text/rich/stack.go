// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

// Stack is a last-in-first-out stack of [Style] values, used while
// parsing tagged text: opening tags push a modified copy of the top
// style, and closing tags pop it. The base style at the bottom of the
// stack can never be popped, so the stack is never empty.
type Stack struct {
	styles []Style
}

// NewStack returns a new [Stack] with the given base style.
func NewStack(base Style) *Stack {
	st := &Stack{}
	st.Reset(base)
	return st
}

// Reset clears the stack and sets the base style.
func (st *Stack) Reset(base Style) {
	st.styles = append(st.styles[:0], base)
}

// Push pushes a style onto the stack.
func (st *Stack) Push(s Style) {
	st.styles = append(st.styles, s)
}

// Pop removes the top style and returns true, unless only the base
// style remains, in which case the stack is unchanged and it returns false.
func (st *Stack) Pop() bool {
	if len(st.styles) <= 1 {
		return false
	}
	st.styles = st.styles[:len(st.styles)-1]
	return true
}

// Peek returns a copy of the top style.
// A zero stack returns a default style.
func (st *Stack) Peek() Style {
	if len(st.styles) == 0 {
		return *NewStyle()
	}
	return st.styles[len(st.styles)-1]
}

// Len returns the number of styles on the stack, including the base.
func (st *Stack) Len() int {
	return len(st.styles)
}
