package parser

import "github.com/arr-ai/calc/parse"

// Parser turns a prefix of input into a value. On success it returns the
// value and the unconsumed suffix of input. On failure it returns an error
// and input itself; callers still hold the original scanner, so nothing
// needs to be rolled back.
type Parser[T any] interface {
	Parse(scope Scope, input parse.Scanner) (T, parse.Scanner, error)
}

// Func adapts a plain function to the Parser interface.
type Func[T any] func(scope Scope, input parse.Scanner) (T, parse.Scanner, error)

func (f Func[T]) Parse(scope Scope, input parse.Scanner) (T, parse.Scanner, error) {
	return f(scope, input)
}

// Pair is the value of a Seq.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Run applies p to the whole of input with a fresh scope and returns the
// value and the unconsumed text.
func Run[T any](p Parser[T], input string) (T, string, error) {
	return RunScope(NewScope(), p, input)
}

func RunScope[T any](scope Scope, p Parser[T], input string) (T, string, error) {
	v, rest, err := p.Parse(scope, parse.NewScanner(input))
	if err != nil {
		var zero T
		return zero, input, err
	}
	return v, rest.String(), nil
}
