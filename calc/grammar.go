// Package calc is the arithmetic grammar:
//
//	expr   -> term "+" expr | term;
//	term   -> factor "*" term | factor;
//	factor -> "(" expr ")" | natural;
//
// Every nonterminal tolerates surrounding white space. Operator forms are
// tried before their fallbacks, since the fallback always matches a prefix of
// the operator form. The shared operand is parsed once, so work stays linear
// in the nesting of parentheses. The right operand recursion makes both
// operators right associative.
package calc

import (
	"github.com/arr-ai/calc/ast"
	"github.com/arr-ai/calc/parser"
)

// Semantics are the actions a Grammar applies as it recognises each form.
// Add and Mul may fail; a FatalError they return aborts the parse.
type Semantics[T any] struct {
	Number func(n uint32) T
	Add    func(left, right T) (T, error)
	Mul    func(left, right T) (T, error)
	Paren  func(inner T) T
}

// Grammar is one constructed rule graph. The three rules refer to each
// other through lazily built parsers, so constructing a Grammar is cheap and
// building each rule happens once, on first use.
type Grammar[T any] struct {
	sem                Semantics[T]
	expr, term, factor parser.Parser[T]
}

func NewGrammar[T any](sem Semantics[T]) *Grammar[T] {
	g := &Grammar[T]{sem: sem}
	g.expr = parser.Rule("expr", g.buildExpr)
	g.term = parser.Rule("term", g.buildTerm)
	g.factor = parser.Rule("factor", g.buildFactor)
	return g
}

// Expr is the grammar's entry point.
func (g *Grammar[T]) Expr() parser.Parser[T]   { return g.expr }
func (g *Grammar[T]) Term() parser.Parser[T]   { return g.term }
func (g *Grammar[T]) Factor() parser.Parser[T] { return g.factor }

func (g *Grammar[T]) buildExpr() parser.Parser[T] {
	return g.binary('+', g.term, g.expr, g.sem.Add)
}

func (g *Grammar[T]) buildTerm() parser.Parser[T] {
	return g.binary('*', g.factor, g.term, g.sem.Mul)
}

func (g *Grammar[T]) buildFactor() parser.Parser[T] {
	paren := parser.Map(
		parser.Right(
			parser.Token(parser.Literal('(')),
			parser.Left(parser.Token(g.expr), parser.Token(parser.Literal(')'))),
		),
		g.sem.Paren,
	)
	number := parser.Map(parser.Token(parser.Natural()), g.sem.Number)
	return parser.Alt(paren, number)
}

// binary builds `operand op rest | operand`, parsing operand only once per
// input position.
func (g *Grammar[T]) binary(op rune, operand, rest parser.Parser[T], apply func(T, T) (T, error)) parser.Parser[T] {
	return parser.Extend(
		parser.Token(operand),
		parser.Right(parser.Token(parser.Literal(op)), parser.Token(rest)),
		apply,
	)
}

// Evaluator returns a fresh grammar that computes the value of an
// expression. Results beyond 32 bits are NumericOverflow errors.
func Evaluator() *Grammar[uint32] {
	return NewGrammar(Semantics[uint32]{
		Number: func(n uint32) uint32 { return n },
		Add:    func(l, r uint32) (uint32, error) { return ast.Apply(ast.Add, l, r) },
		Mul:    func(l, r uint32) (uint32, error) { return ast.Apply(ast.Mul, l, r) },
		Paren:  func(v uint32) uint32 { return v },
	})
}

// TreeBuilder returns a fresh grammar that builds an ast.Node.
func TreeBuilder() *Grammar[ast.Node] {
	return NewGrammar(Semantics[ast.Node]{
		Number: func(n uint32) ast.Node { return ast.Number{Value: n} },
		Add: func(l, r ast.Node) (ast.Node, error) {
			return ast.Binary{Op: ast.Add, Left: l, Right: r}, nil
		},
		Mul: func(l, r ast.Node) (ast.Node, error) {
			return ast.Binary{Op: ast.Mul, Left: l, Right: r}, nil
		},
		Paren: func(n ast.Node) ast.Node { return ast.Paren{Inner: n} },
	})
}
