package format

import "strings"

type indentKind int

const (
	indentTopLevel indentKind = iota // body of a clause keyword
	indentBlock                      // inside a multi-line bracket or CASE
)

// indentation is the stack of open indentation levels.
type indentation struct {
	unit  string
	stack []indentKind
}

func (in *indentation) String() string {
	return strings.Repeat(in.unit, len(in.stack))
}

func (in *indentation) increaseTopLevel() {
	in.stack = append(in.stack, indentTopLevel)
}

func (in *indentation) increaseBlockLevel() {
	in.stack = append(in.stack, indentBlock)
}

// decreaseTopLevel closes the current clause body, if the innermost level is one.
func (in *indentation) decreaseTopLevel() {
	if n := len(in.stack); n > 0 && in.stack[n-1] == indentTopLevel {
		in.stack = in.stack[:n-1]
	}
}

// decreaseBlockLevel closes the innermost block along with any clause bodies
// opened inside it.
func (in *indentation) decreaseBlockLevel() {
	for len(in.stack) > 0 {
		kind := in.stack[len(in.stack)-1]
		in.stack = in.stack[:len(in.stack)-1]
		if kind == indentBlock {
			return
		}
	}
}

func (in *indentation) reset() {
	in.stack = in.stack[:0]
}
