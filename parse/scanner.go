package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Scanner is an immutable window onto a source string. Every method that
// consumes input returns a new Scanner; the receiver is never changed.
type Scanner struct {
	src         source // the source the scanner is drawing from
	sliceStart  int    // the start of the slice visible to the scanner
	sliceLength int    // the length of the slice visible to the scanner
}

type source interface {
	length() int                // the length of the entire source string
	slice(i, length int) string // the string of the given slice
	filename() string           // the name of the file from which the source is derived (or empty if none)
}

type stringSource struct {
	origin *string // the entire source string
	f      string  // the source filename
}

func NewScanner(str string) Scanner {
	return Scanner{stringSource{origin: &str}, 0, len(str)}
}

func NewScannerWithFilename(str, filename string) Scanner {
	return Scanner{stringSource{&str, filename}, 0, len(str)}
}

// - Scanner

// The name of the file from which the source is derived (or empty if none).
func (s Scanner) Filename() string {
	if s.src == nil {
		return ""
	}
	return s.src.filename()
}

func (s Scanner) String() string {
	if s.src == nil {
		return ""
	}
	return s.slice()
}

// IsNil is true for the zero Scanner, which views no source at all.
func (s Scanner) IsNil() bool {
	return s.src == nil
}

func (s Scanner) Format(state fmt.State, c rune) {
	if c == 'q' {
		_, _ = fmt.Fprintf(state, "%q", s.String())
	} else {
		_, _ = state.Write([]byte(s.String()))
	}
}

// Context renders the whole source with the visible slice highlighted.
func (s Scanner) Context() string {
	if s.src == nil {
		return ""
	}
	end := s.sliceStart + s.sliceLength
	return fmt.Sprintf("%s\033[1;31m%s\033[0m%s",
		s.src.slice(0, s.sliceStart),
		s.slice(),
		s.src.slice(end, s.src.length()-end),
	)
}

// The position of the start of the scanner within the original source.
func (s Scanner) Offset() int {
	return s.sliceStart
}

// Len is the number of bytes visible to the scanner.
func (s Scanner) Len() int {
	return s.sliceLength
}

func (s Scanner) IsEmpty() bool {
	return s.sliceLength == 0
}

// The 1-indexed line and column number of the start of the scanner within the original source.
func (s Scanner) Position() (int, int) {
	if s.src == nil {
		return 1, 1
	}
	return lineColumn(s.src.slice(0, s.sliceStart), s.sliceStart)
}

// The slice that is visible to the scanner
func (s Scanner) slice() string {
	return s.src.slice(s.sliceStart, s.sliceLength)
}

// Skip returns the scanner left after dropping the first i bytes.
func (s Scanner) Skip(i int) Scanner {
	return Scanner{s.src, s.sliceStart + i, s.sliceLength - i}
}

// Next decodes the first rune and returns it with the scanner that follows
// it. ok is false on empty input.
func (s Scanner) Next() (r rune, rest Scanner, ok bool) {
	if s.IsEmpty() {
		return 0, s, false
	}
	r, size := utf8.DecodeRuneInString(s.slice())
	return r, s.Skip(size), true
}

// IsSuffixOf reports whether s views a suffix of the text viewed by t, drawn
// from the same source.
func (s Scanner) IsSuffixOf(t Scanner) bool {
	if s.src != t.src {
		return false
	}
	return s.sliceStart >= t.sliceStart &&
		s.sliceStart+s.sliceLength == t.sliceStart+t.sliceLength
}

// - stringSource

func (s stringSource) length() int {
	return len(*s.origin)
}

func (s stringSource) slice(i, length int) string {
	return (*s.origin)[i : i+length]
}

func (s stringSource) filename() string {
	return s.f
}

// The 1-indexed line and column number of the given position within the given string.
func lineColumn(str string, pos int) (line, col int) {
	prefix := str[:pos]
	line = strings.Count(prefix, "\n") + 1
	col = pos - strings.LastIndex(prefix, "\n")
	return
}
