package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerLineColumn(t *testing.T) {
	scanner := NewScanner("one\ntwo\nthree\nfour")

	// test the scanner starts at position 1,1
	assertLineColumn(t, scanner, 1, 1)

	// skip within the same line
	scanner = scanner.Skip(1)
	assertLineColumn(t, scanner, 1, 2)

	// skip a line
	scanner = scanner.Skip(3)
	assertLineColumn(t, scanner, 2, 1)

	// skip multiple lines and into a column
	scanner = scanner.Skip(12)
	assertLineColumn(t, scanner, 4, 3)
}

func assertLineColumn(t *testing.T, scanner Scanner, line, column int) {
	l, c := scanner.Position()
	assert.Equal(t, line, l)
	assert.Equal(t, column, c)
}

func TestScannerSkipLeavesReceiver(t *testing.T) {
	t.Parallel()

	s := NewScanner("abc")
	rest := s.Skip(2)
	assert.Equal(t, "abc", s.String())
	assert.Equal(t, "c", rest.String())
	assert.Equal(t, 2, rest.Offset())
	assert.Equal(t, 1, rest.Len())
}

func TestScannerNext(t *testing.T) {
	t.Parallel()

	r, rest, ok := NewScanner("λx").Next()
	assert.True(t, ok)
	assert.Equal(t, 'λ', r)
	assert.Equal(t, "x", rest.String())

	empty := NewScanner("")
	_, rest, ok = empty.Next()
	assert.False(t, ok)
	assert.Equal(t, empty, rest)
}

func TestScannerIsSuffixOf(t *testing.T) {
	t.Parallel()

	s := NewScanner("this is a sentence")
	assert.True(t, s.IsSuffixOf(s))
	assert.True(t, s.Skip(5).IsSuffixOf(s))
	assert.True(t, s.Skip(s.Len()).IsSuffixOf(s))
	assert.False(t, s.IsSuffixOf(s.Skip(5)))

	// same text, different source
	assert.False(t, NewScanner("abc").IsSuffixOf(NewScanner("abc")))

	// different filename
	assert.False(t, NewScannerWithFilename("abc", "a.calc").IsSuffixOf(NewScanner("abc")))
}

func TestScannerFormat(t *testing.T) {
	t.Parallel()

	s := NewScannerWithFilename("1 + 2", "sum.calc").Skip(2)
	assert.Equal(t, `"+ 2"`, fmt.Sprintf("%q", s))
	assert.Equal(t, "+ 2", s.String())
	assert.Equal(t, "sum.calc", s.Filename())
	assert.Equal(t, "1 \033[1;31m+ 2\033[0m", s.Context())
	assert.Equal(t, "", Scanner{}.String())
}
