package calc

import (
	"fmt"

	"github.com/arr-ai/calc/ast"
	"github.com/arr-ai/calc/parse"
	"github.com/arr-ai/calc/parser"
)

// Shared grammars. Lazy rules build under sync.Once, so concurrent use is
// safe.
//
//nolint:gochecknoglobals
var (
	evaluator   = Evaluator()
	treeBuilder = TreeBuilder()
)

// Expr is the entry point of the evaluating grammar.
func Expr() parser.Parser[uint32] {
	return evaluator.Expr()
}

type Result struct {
	Value     uint32
	Remainder string // unconsumed input; empty for a full match
}

// UnconsumedInputError is returned by a successful parse that didn't fully
// consume the input.
type UnconsumedInputError struct {
	residue parse.Scanner
}

func (e *UnconsumedInputError) Error() string {
	line, col := e.residue.Position()
	where := fmt.Sprintf("%d:%d", line, col)
	if f := e.residue.Filename(); f != "" {
		where = f + ":" + where
	}
	return fmt.Sprintf("unconsumed input at %s: %q", where, e.residue.String())
}

func (e *UnconsumedInputError) Residue() parse.Scanner { return e.residue }

type options struct {
	maxDepth int
	filename string
}

type Option func(*options)

// WithMaxDepth bounds rule nesting; n <= 0 removes the bound.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// WithFilename names the source in error messages.
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// Evaluate computes the value of input. The outcomes are:
//   - full match: the value and a nil error;
//   - partial match: the value, the unparsed remainder and an
//     *UnconsumedInputError;
//   - no match: parser.ErrNoMatch;
//   - a *parser.FatalError for overflow or excessive nesting.
func Evaluate(input string, opts ...Option) (Result, error) {
	v, rest, err := parseAll(evaluator.Expr(), input, opts)
	return Result{Value: v, Remainder: rest.String()}, err
}

// Parse is Evaluate for the parse tree. The result is nil unless the grammar
// matched.
func Parse(input string, opts ...Option) (ast.Node, error) {
	n, _, err := parseAll(treeBuilder.Expr(), input, opts)
	return n, err
}

func parseAll[T any](p parser.Parser[T], input string, opts []Option) (T, parse.Scanner, error) {
	o := options{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	src := parse.NewScannerWithFilename(input, o.filename)
	v, rest, err := p.Parse(parser.NewScope().WithMaxDepth(o.maxDepth), src)
	if err != nil {
		var zero T
		return zero, parse.Scanner{}, err
	}
	if !rest.IsEmpty() {
		return v, rest, &UnconsumedInputError{residue: rest}
	}
	return v, rest, nil
}
