package ast

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/calc/parser"
)

func num(n uint32) Node { return Number{Value: n} }

func TestKindLabel(t *testing.T) {
	for kind, label := range map[Kind]string{
		NumberKind: "NaturalNumber",
		AddKind:    "AddExpr",
		MulKind:    "MulTerm",
		ParenKind:  "ParenFactor",
	} {
		assert.Equal(t, label, kind.Label())
	}
}

func TestNodeString(t *testing.T) {
	n := Binary{Op: Add, Left: num(1), Right: Binary{
		Op:    Mul,
		Left:  Paren{Binary{Op: Add, Left: num(2), Right: num(3)}},
		Right: Paren{Paren{num(4)}},
	}}
	assert.Equal(t, "1 + (2 + 3) * ((4))", n.String())
	assert.Equal(t, AddKind, n.Kind())
	assert.Equal(t, MulKind, n.Right.Kind())

	v, err := n.Eval()
	require.NoError(t, err)
	assert.Equal(t, uint32(21), v)
}

func TestApply(t *testing.T) {
	for _, test := range []struct {
		op       Op
		a, b     uint32
		expected uint32
		overflow bool
	}{
		{op: Add, a: 1, b: 2, expected: 3},
		{op: Mul, a: 6, b: 7, expected: 42},
		{op: Add, a: math.MaxUint32, b: 0, expected: math.MaxUint32},
		{op: Mul, a: math.MaxUint32, b: 1, expected: math.MaxUint32},
		{op: Mul, a: 0, b: math.MaxUint32, expected: 0},
		{op: Add, a: math.MaxUint32, b: 1, overflow: true},
		{op: Mul, a: 65536, b: 65536, overflow: true},
	} {
		v, err := Apply(test.op, test.a, test.b)
		if test.overflow {
			assert.True(t, errors.Is(err, parser.ErrNumericOverflow), "%d %s %d", test.a, test.op, test.b)
		} else if assert.NoError(t, err) {
			assert.Equal(t, test.expected, v)
		}
	}
	assert.Panics(t, func() { Apply('-', 1, 1) }) //nolint:errcheck
}

func TestEvalOverflow(t *testing.T) {
	_, err := Binary{Op: Mul, Left: num(1 << 20), Right: Paren{num(1 << 12)}}.Eval()
	assert.True(t, errors.Is(err, parser.ErrNumericOverflow))
	assert.Contains(t, err.Error(), "1048576 * 4096 does not fit in 32 bits")
}

func TestBuildTreeView(t *testing.T) {
	n := Binary{Op: Add, Left: num(1), Right: Binary{Op: Mul, Left: num(2), Right: Paren{num(3)}}}
	assert.Equal(t, `AddExpr +
├── NaturalNumber 1
└── MulTerm *
    ├── NaturalNumber 2
    └── ParenFactor
        └── NaturalNumber 3
`, BuildTreeView(n))
}
