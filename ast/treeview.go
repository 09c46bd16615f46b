package ast

import (
	"fmt"

	"github.com/arr-ai/calc/gotree"
)

// BuildTreeView renders n one node per line.
func BuildTreeView(n Node) string {
	return fromAst(n).Print()
}

func fromAst(n Node) gotree.Tree {
	var text string
	switch n := n.(type) {
	case Number:
		text = fmt.Sprintf("%s %d", n.Kind().Label(), n.Value)
	case Binary:
		text = fmt.Sprintf("%s %s", n.Kind().Label(), n.Op)
	default:
		text = n.Kind().Label()
	}
	tree := gotree.New(text)
	for _, child := range n.Children() {
		tree.AddTree(fromAst(child))
	}
	return tree
}
