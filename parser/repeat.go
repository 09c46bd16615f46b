package parser

import "github.com/arr-ai/calc/parse"

type quantParser[T any] struct {
	term Parser[T]
	min  int
}

func (p quantParser[T]) Parse(scope Scope, input parse.Scanner) ([]T, parse.Scanner, error) {
	result := make([]T, 0, p.min)
	rest := input
	for {
		v, next, err := p.term.Parse(scope, rest)
		if err != nil {
			if IsFatal(err) {
				return nil, input, err
			}
			break
		}
		result = append(result, v)
		rest = next
	}
	if len(result) < p.min {
		return nil, input, ErrNoMatch
	}
	return result, rest, nil
}

// Many applies p until it fails and collects every value. It never fails on
// its own account. p must consume input whenever it succeeds, otherwise Many
// loops forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return quantParser[T]{term: p}
}

// Some is Many that requires at least one value.
func Some[T any](p Parser[T]) Parser[[]T] {
	return quantParser[T]{term: p, min: 1}
}
