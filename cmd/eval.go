package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/calc/calc"
)

var evalCommand = cli.Command{
	Name:      "eval",
	Aliases:   []string{"e"},
	Usage:     "Evaluate an expression",
	ArgsUsage: "[expression]",
	Action:    eval,
	Flags:     commonFlags,
}

func eval(c *cli.Context) error {
	input, opts, err := readExpression(c)
	if err != nil {
		return err
	}

	result, err := calc.Evaluate(input, opts...)
	var unconsumed *calc.UnconsumedInputError
	switch {
	case err == nil:
	case errors.As(err, &unconsumed):
		// the value is still shown; the error reports what was left over
		logrus.WithField("remainder", result.Remainder).Debug("partial match")
	default:
		return describe(err)
	}

	fmt.Fprintln(c.App.Writer, result.Value)
	return err
}
