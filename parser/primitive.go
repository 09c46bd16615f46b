package parser

import "github.com/arr-ai/calc/parse"

type itemParser struct{}

func (itemParser) Parse(_ Scope, input parse.Scanner) (rune, parse.Scanner, error) {
	if r, rest, ok := input.Next(); ok {
		return r, rest, nil
	}
	return 0, input, ErrNoMatch
}

// Item consumes any single character.
func Item() Parser[rune] {
	return itemParser{}
}

type satParser struct {
	pred func(rune) bool
}

func (p satParser) Parse(scope Scope, input parse.Scanner) (rune, parse.Scanner, error) {
	r, rest, err := itemParser{}.Parse(scope, input)
	if err != nil || !p.pred(r) {
		return 0, input, ErrNoMatch
	}
	return r, rest, nil
}

// Satisfy consumes one character for which pred holds.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return satParser{pred: pred}
}

func Literal(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c })
}

func Digit() Parser[rune] {
	return Satisfy(func(r rune) bool { return '0' <= r && r <= '9' })
}
