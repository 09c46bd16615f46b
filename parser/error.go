package parser

import (
	"errors"
	"fmt"

	"github.com/arr-ai/calc/parse"
)

// ParseError is the one ordinary failure signal. It deliberately carries no
// position or expectation; Alt recovers from it by trying the next option.
type ParseError struct{}

func (ParseError) Error() string { return "no match" }

// ErrNoMatch is returned by every parser that does not match its input.
var ErrNoMatch error = ParseError{}

// IsFailure reports whether err is an ordinary, recoverable parse failure.
func IsFailure(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

type FatalKind int

const (
	NumericOverflow FatalKind = iota + 1
	DepthExceeded
)

func (k FatalKind) String() string {
	switch k {
	case NumericOverflow:
		return "numeric overflow"
	case DepthExceeded:
		return "nesting too deep"
	}
	return fmt.Sprintf("FatalKind(%d)", int(k))
}

// FatalError aborts the whole parse. No combinator recovers from it.
type FatalError struct {
	Kind   FatalKind
	At     parse.Scanner // the input being parsed when the condition arose
	Detail string
}

var (
	ErrNumericOverflow error = &FatalError{Kind: NumericOverflow}
	ErrDepthExceeded   error = &FatalError{Kind: DepthExceeded}
)

func (e *FatalError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if !e.At.IsNil() {
		line, col := e.At.Position()
		msg = fmt.Sprintf("%s (at %d:%d)", msg, line, col)
	}
	return msg
}

// Is matches any FatalError of the same kind, so errors.Is(err,
// ErrNumericOverflow) holds for every overflow regardless of detail.
func (e *FatalError) Is(target error) bool {
	t, ok := target.(*FatalError)
	return ok && t.Kind == e.Kind
}

func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

func newFatalError(kind FatalKind, at parse.Scanner, format string, args ...interface{}) error {
	return &FatalError{Kind: kind, At: at, Detail: fmt.Sprintf(format, args...)}
}

// locate fills in the position of an unplaced FatalError.
func locate(err error, at parse.Scanner) error {
	if fe, ok := err.(*FatalError); ok && fe.At.IsNil() {
		placed := *fe
		placed.At = at
		return &placed
	}
	return err
}
