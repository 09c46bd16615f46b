package ast

import (
	"fmt"
	"math"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/calc/parser"
)

// Kind names the grammar production that built a node.
type Kind string

const (
	NumberKind Kind = "natural_number"
	AddKind    Kind = "add_expr"
	MulKind    Kind = "mul_term"
	ParenKind  Kind = "paren_factor"
)

// Label is the display form of a kind, e.g. "AddExpr".
func (k Kind) Label() string {
	return strcase.ToCamel(string(k))
}

// Node is a parsed arithmetic expression.
type Node interface {
	fmt.Stringer
	Kind() Kind
	Children() []Node
	Eval() (uint32, error)
	isNode()
}

func (Number) isNode() {}
func (Binary) isNode() {}
func (Paren) isNode()  {}

type Number struct {
	Value uint32
}

func (n Number) Kind() Kind            { return NumberKind }
func (n Number) Children() []Node      { return nil }
func (n Number) Eval() (uint32, error) { return n.Value, nil }
func (n Number) String() string        { return fmt.Sprint(n.Value) }

type Op rune

const (
	Add Op = '+'
	Mul Op = '*'
)

func (o Op) String() string { return string(o) }

// Binary is a right-associated application of an operator.
type Binary struct {
	Op          Op
	Left, Right Node
}

func (b Binary) Kind() Kind {
	if b.Op == Mul {
		return MulKind
	}
	return AddKind
}

func (b Binary) Children() []Node { return []Node{b.Left, b.Right} }

func (b Binary) Eval() (uint32, error) {
	l, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	r, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}
	return Apply(b.Op, l, r)
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", b.Left, b.Op, b.Right)
}

type Paren struct {
	Inner Node
}

func (p Paren) Kind() Kind            { return ParenKind }
func (p Paren) Children() []Node      { return []Node{p.Inner} }
func (p Paren) Eval() (uint32, error) { return p.Inner.Eval() }
func (p Paren) String() string        { return "(" + p.Inner.String() + ")" }

// Apply computes a op b, failing with a NumericOverflow FatalError instead
// of wrapping.
func Apply(op Op, a, b uint32) (uint32, error) {
	var n uint64
	switch op {
	case Add:
		n = uint64(a) + uint64(b)
	case Mul:
		n = uint64(a) * uint64(b)
	default:
		panic(fmt.Errorf("unknown operator %q", rune(op)))
	}
	if n > math.MaxUint32 {
		return 0, &parser.FatalError{
			Kind:   parser.NumericOverflow,
			Detail: fmt.Sprintf("%d %s %d does not fit in 32 bits", a, op, b),
		}
	}
	return uint32(n), nil
}
