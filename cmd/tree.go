package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/arr-ai/calc/ast"
	"github.com/arr-ai/calc/calc"
)

var treeCommand = cli.Command{
	Name:      "tree",
	Aliases:   []string{"t"},
	Usage:     "Show the parse tree of an expression",
	ArgsUsage: "[expression]",
	Action:    tree,
	Flags:     commonFlags,
}

func tree(c *cli.Context) error {
	input, opts, err := readExpression(c)
	if err != nil {
		return err
	}

	node, err := calc.Parse(input, opts...)
	var unconsumed *calc.UnconsumedInputError
	if err != nil && !errors.As(err, &unconsumed) {
		return describe(err)
	}

	fmt.Fprint(c.App.Writer, ast.BuildTreeView(node))
	return err
}
