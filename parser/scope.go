package parser

import (
	"github.com/arr-ai/frozen"

	"github.com/arr-ai/calc/parse"
)

// DefaultMaxDepth bounds how many rule invocations may be nested inside one
// another before a parse is aborted with a DepthExceeded error.
const DefaultMaxDepth = 10000

const (
	maxDepthKey = ".MaxDepth-key."
	frameKey    = ".Frame-key."
)

// Scope is the immutable context threaded through a parse. Deriving a scope
// never changes the one it came from, so parsers stay pure.
type Scope struct {
	m frozen.Map[string, interface{}]
}

func NewScope() Scope {
	return Scope{m: frozen.NewMap[string, interface{}]()}
}

func (s Scope) String() string {
	return s.m.String()
}

func (s Scope) With(ident string, v interface{}) Scope {
	s.m = s.m.With(ident, v)
	return s
}

func (s Scope) Has(ident string) bool {
	return s.m.Has(ident)
}

// WithMaxDepth sets the nesting bound. n <= 0 removes it.
func (s Scope) WithMaxDepth(n int) Scope {
	return s.With(maxDepthKey, n)
}

func (s Scope) MaxDepth() int {
	return s.m.GetElse(maxDepthKey, DefaultMaxDepth).(int)
}

// frame is one rule invocation. Frames link outward to their callers.
type frame struct {
	rule   string
	depth  int
	parent *frame
}

func (s Scope) frame() *frame {
	f, _ := s.m.GetElse(frameKey, (*frame)(nil)).(*frame)
	return f
}

func (s Scope) Depth() int {
	if f := s.frame(); f != nil {
		return f.depth
	}
	return 0
}

// CallStack lists the named rules currently being parsed, outermost first.
func (s Scope) CallStack() []string {
	var rules []string
	for f := s.frame(); f != nil; f = f.parent {
		if f.rule != "" {
			rules = append(rules, f.rule)
		}
	}
	for i, j := 0, len(rules)-1; i < j; i, j = i+1, j-1 {
		rules[i], rules[j] = rules[j], rules[i]
	}
	return rules
}

// enter derives the scope for one nested rule invocation.
func (s Scope) enter(rule string, input parse.Scanner) (Scope, error) {
	parent := s.frame()
	depth := 1
	if parent != nil {
		depth = parent.depth + 1
	}
	if max := s.MaxDepth(); max > 0 && depth > max {
		stack := s.CallStack()
		if len(stack) > 3 {
			stack = stack[len(stack)-3:]
		}
		return s, newFatalError(DepthExceeded, input, "depth %d exceeds limit %d, innermost rules %v", depth, max, stack)
	}
	return s.With(frameKey, &frame{rule: rule, depth: depth, parent: parent}), nil
}
