package parser

import "github.com/arr-ai/calc/parse"

type seqParser[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

func (p seqParser[A, B]) Parse(scope Scope, input parse.Scanner) (_ Pair[A, B], rest parse.Scanner, err error) {
	defer enterf(scope, "seq @%d", input.Offset()).exit(&err, &rest)
	a, rest, err := p.first.Parse(scope, input)
	if err != nil {
		return Pair[A, B]{}, input, err
	}
	b, rest, err := p.second.Parse(scope, rest)
	if err != nil {
		return Pair[A, B]{}, input, err
	}
	return Pair[A, B]{First: a, Second: b}, rest, nil
}

// Seq runs first, then second on what first left.
func Seq[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return seqParser[A, B]{first: first, second: second}
}

// Left runs both parsers in sequence and keeps the value of the first.
func Left[A, B any](first Parser[A], second Parser[B]) Parser[A] {
	return Map(Seq(first, second), func(v Pair[A, B]) A { return v.First })
}

// Right runs both parsers in sequence and keeps the value of the second.
func Right[A, B any](first Parser[A], second Parser[B]) Parser[B] {
	return Map(Seq(first, second), func(v Pair[A, B]) B { return v.Second })
}

//-----------------------------------------------------------------------------

type oneofParser[T any] struct {
	parsers []Parser[T]
}

func (p oneofParser[T]) Parse(scope Scope, input parse.Scanner) (_ T, rest parse.Scanner, err error) {
	defer enterf(scope, "alt(%d) @%d", len(p.parsers), input.Offset()).exit(&err, &rest)
	for _, par := range p.parsers {
		v, rest, err := par.Parse(scope, input)
		switch {
		case err == nil:
			return v, rest, nil
		case IsFatal(err):
			return v, input, err
		}
	}
	var zero T
	return zero, input, ErrNoMatch
}

// Alt tries each parser against the same input and returns the first
// success. Order matters: an option that matches a prefix of what a later
// option would match hides the later one.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return oneofParser[T]{parsers: parsers}
}

//-----------------------------------------------------------------------------

type mapParser[T, U any] struct {
	term Parser[T]
	f    func(T) (U, error)
}

func (p mapParser[T, U]) Parse(scope Scope, input parse.Scanner) (U, parse.Scanner, error) {
	var zero U
	v, rest, err := p.term.Parse(scope, input)
	if err != nil {
		return zero, input, err
	}
	u, err := p.f(v)
	if err != nil {
		return zero, input, locate(err, input)
	}
	return u, rest, nil
}

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return mapParser[T, U]{term: p, f: func(v T) (U, error) { return f(v), nil }}
}

// MapErr is Map with a transform that may fail. A FatalError from f is
// placed at the start of the mapped parse.
func MapErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return mapParser[T, U]{term: p, f: f}
}

//-----------------------------------------------------------------------------

type extendParser[T, U any] struct {
	head Parser[T]
	tail Parser[U]
	join func(T, U) (T, error)
}

func (p extendParser[T, U]) Parse(scope Scope, input parse.Scanner) (_ T, rest parse.Scanner, err error) {
	defer enterf(scope, "extend @%d", input.Offset()).exit(&err, &rest)
	v, rest, err := p.head.Parse(scope, input)
	if err != nil {
		return v, input, err
	}
	u, tailRest, err := p.tail.Parse(scope, rest)
	switch {
	case err == nil:
	case IsFatal(err):
		var zero T
		return zero, input, err
	default:
		return v, rest, nil
	}
	joined, err := p.join(v, u)
	if err != nil {
		var zero T
		return zero, input, locate(err, input)
	}
	return joined, tailRest, nil
}

// Extend parses head once, then tries tail on what head left. When tail
// fails ordinarily the head's value and remainder stand. Otherwise join
// combines both values. Extend(h, t, join) accepts what
// Alt(MapErr(Seq(h, t), join), h) accepts with the same result, but never
// parses h twice at the same input.
func Extend[T, U any](head Parser[T], tail Parser[U], join func(T, U) (T, error)) Parser[T] {
	return extendParser[T, U]{head: head, tail: tail, join: join}
}
