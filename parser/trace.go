package parser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arr-ai/calc/parse"
)

type tracer struct {
	msg    string
	indent string
}

// enterf logs entry into a combinator at trace level. Formatting happens
// only when tracing is enabled.
func enterf(scope Scope, format string, args ...interface{}) *tracer {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return nil
	}
	t := &tracer{
		msg:    fmt.Sprintf(format, args...),
		indent: strings.Repeat("  ", scope.Depth()),
	}
	logrus.Tracef("%s--> %s", t.indent, t.msg)
	return t
}

// exit logs the outcome once the traced parse returns.
func (t *tracer) exit(err *error, rest *parse.Scanner) {
	if t == nil {
		return
	}
	if *err != nil {
		logrus.Tracef("%s<-- %s: %v", t.indent, t.msg, *err)
		return
	}
	logrus.Tracef("%s<-- %s: ok, rest %q", t.indent, t.msg, rest.String())
}
