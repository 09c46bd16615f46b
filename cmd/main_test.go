package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/calc/calc"
	"github.com/arr-ai/calc/parser"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(VersionTags{Version: "test"})
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"calc"}, args...))
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, "eval", "1", "+", "(2 + 3)", "*", "((4))")
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)

	out, err = run(t, "e", "6*7")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	out, err = run(t, "eval", "((((((((((((((1))))))))))))))")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEvalPartial(t *testing.T) {
	out, err := run(t, "eval", "1 + 2 ) 3")
	var unconsumed *calc.UnconsumedInputError
	require.True(t, errors.As(err, &unconsumed))
	assert.Equal(t, ") 3", unconsumed.Residue().String())
	assert.Equal(t, "3\n", out)
}

func TestEvalFailure(t *testing.T) {
	out, err := run(t, "eval", "+")
	assert.EqualError(t, err, "parse failed")
	assert.Empty(t, out)

	_, err = run(t, "eval", "99999999999")
	assert.True(t, errors.Is(err, parser.ErrNumericOverflow))
}

func TestEvalMaxDepth(t *testing.T) {
	_, err := run(t, "eval", "--max-depth", "5", "((1))")
	assert.True(t, errors.Is(err, parser.ErrDepthExceeded))

	t.Setenv("CALC_MAX_DEPTH", "4")
	_, err = run(t, "eval", "(1)")
	assert.True(t, errors.Is(err, parser.ErrDepthExceeded))

	out, err := run(t, "eval", "--max-depth", "0", "(((1)))")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestEvalInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sum.calc")
	require.NoError(t, os.WriteFile(path, []byte("1 +\n 2 *\n 3\n"), 0600))

	out, err := run(t, "eval", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)

	require.NoError(t, os.WriteFile(path, []byte("1 + 2\n;\n"), 0600))
	_, err = run(t, "eval", "--input", path)
	assert.EqualError(t, err, `unconsumed input at `+path+`:2:1: ";\n"`)

	_, err = run(t, "eval", "--input", filepath.Join(t.TempDir(), "missing.calc"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading ")
}

func TestTree(t *testing.T) {
	out, err := run(t, "tree", "1 + 2 * (3)")
	require.NoError(t, err)
	assert.Equal(t, `AddExpr +
├── NaturalNumber 1
└── MulTerm *
    ├── NaturalNumber 2
    └── ParenFactor
        └── NaturalNumber 3
`, out)

	out, err = run(t, "t", "4 4")
	assert.IsType(t, &calc.UnconsumedInputError{}, err)
	assert.Equal(t, "NaturalNumber 4\n", out)

	out, err = run(t, "tree", ")")
	assert.EqualError(t, err, "parse failed")
	assert.Empty(t, out)
}
