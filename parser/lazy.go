package parser

import (
	"sync"

	"github.com/arr-ai/calc/parse"
)

// memoCell holds the parser built by one Lazy call site.
type memoCell[T any] struct {
	once   sync.Once
	parser Parser[T]
}

func (c *memoCell[T]) get(build func() Parser[T]) Parser[T] {
	c.once.Do(func() { c.parser = build() })
	return c.parser
}

type lazyParser[T any] struct {
	rule  string
	build func() Parser[T]
	cell  *memoCell[T]
}

func (p lazyParser[T]) Parse(scope Scope, input parse.Scanner) (_ T, rest parse.Scanner, err error) {
	scope, err = scope.enter(p.rule, input)
	if err != nil {
		var zero T
		return zero, input, err
	}
	if p.rule != "" {
		defer enterf(scope, "%s @%d", p.rule, input.Offset()).exit(&err, &rest)
	}
	return p.cell.get(p.build).Parse(scope, input)
}

// Lazy defers building a parser until it is first used, then reuses it for
// every later use. This is what lets grammar rules refer to each other (or
// themselves) without building an infinite graph: build may close over the
// very parser Lazy returns. build runs at most once, even under concurrent
// first use. build must not parse; it only constructs.
//
// Every Lazy invocation counts as one level of nesting against the scope's
// MaxDepth.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	return Rule("", build)
}

// Rule is Lazy with a name, recorded in the scope's call stack and in trace
// output.
func Rule[T any](name string, build func() Parser[T]) Parser[T] {
	return lazyParser[T]{rule: name, build: build, cell: &memoCell[T]{}}
}
