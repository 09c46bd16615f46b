package cmd

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/calc/calc"
	"github.com/arr-ai/calc/parser"
)

var inFile string
var maxDepth int
var verboseMode bool

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "input",
		Usage:       "file holding the expression, - for stdin",
		Required:    false,
		TakesFile:   true,
		Destination: &inFile,
	},
	cli.IntFlag{
		Name:        "max-depth",
		Usage:       "maximum rule nesting, 0 for unbounded",
		EnvVar:      "CALC_MAX_DEPTH",
		Value:       parser.DefaultMaxDepth,
		Destination: &maxDepth,
	},
	cli.BoolFlag{
		Name:        "v",
		Usage:       "verbose logging",
		Destination: &verboseMode,
	},
}

// readExpression takes the expression from the command line arguments, or
// else from --input.
func readExpression(c *cli.Context) (string, []calc.Option, error) {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}
	opts := []calc.Option{calc.WithMaxDepth(maxDepth)}

	if c.NArg() > 0 {
		return strings.Join(c.Args(), " "), opts, nil
	}

	switch inFile {
	case "", "-":
		buf, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return "", nil, errors.Wrap(err, "reading stdin")
		}
		return string(buf), opts, nil
	default:
		buf, err := ioutil.ReadFile(inFile)
		if err != nil {
			return "", nil, errors.Wrapf(err, "reading %s", inFile)
		}
		return string(buf), append(opts, calc.WithFilename(inFile)), nil
	}
}

// describe turns a calc failure into the message shown to the user.
func describe(err error) error {
	if parser.IsFailure(err) {
		return errors.New("parse failed")
	}
	return err
}
