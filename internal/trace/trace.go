// Package trace provides the append-only diagnostic buffer shared by the
// tokenizer and the adjacency engine during a processing pass.
package trace

import (
	"fmt"
	"strings"
)

type Trace struct {
	buf strings.Builder
}

func New() *Trace {
	return &Trace{}
}

// Printf appends one line to the trace. A nil Trace discards everything, so
// callers that do not care about diagnostics can pass nil.
func (t *Trace) Printf(format string, args ...any) {
	if t == nil {
		return
	}
	fmt.Fprintf(&t.buf, format, args...)
	t.buf.WriteByte('\n')
}

// Write appends raw bytes. Trace implements io.Writer so exporters can
// render straight into it.
func (t *Trace) Write(p []byte) (int, error) {
	if t == nil {
		return len(p), nil
	}
	return t.buf.Write(p)
}

func (t *Trace) String() string {
	if t == nil {
		return ""
	}
	return t.buf.String()
}

// Lines returns the trace split into lines, without the final empty one.
func (t *Trace) Lines() []string {
	s := strings.TrimSuffix(t.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return t.buf.Len()
}
