package parser

import (
	"unicode"

	"github.com/arr-ai/calc/parse"
)

// Whitespace consumes any run of white space, including none.
func Whitespace() Parser[[]rune] {
	return Many(Satisfy(unicode.IsSpace))
}

type tokenParser[T any] struct {
	term  Parser[T]
	space Parser[[]rune]
}

func (p tokenParser[T]) Parse(scope Scope, input parse.Scanner) (T, parse.Scanner, error) {
	var zero T
	_, start, err := p.space.Parse(scope, input)
	if err != nil {
		return zero, input, err
	}
	v, rest, err := p.term.Parse(scope, start)
	if err != nil {
		return zero, input, err
	}
	if _, rest, err = p.space.Parse(scope, rest); err != nil {
		return zero, input, err
	}
	return v, rest, nil
}

// Token runs p with surrounding white space stripped. Trailing space is only
// consumed when p succeeds.
func Token[T any](p Parser[T]) Parser[T] {
	return tokenParser[T]{term: p, space: Whitespace()}
}
