package faber

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ianzepp/faber/token"
)

// CompileError is the single error type returned across the three
// pipeline stages: lexical, syntactic, and structural failures all
// carry a position, a filename, and a message, per spec's closed error
// taxonomy.
type CompileError struct {
	Filename string
	Position token.Position
	Message  string
	Source   string // the full source text, for Report's source-line rendering
	TraceID  uuid.UUID
}

// NewCompileError stamps a fresh TraceID so a driver batching many
// files can correlate this error with logs emitted elsewhere for the
// same compilation.
func NewCompileError(filename string, pos token.Position, message, source string) *CompileError {
	return &CompileError{
		Filename: filename,
		Position: pos,
		Message:  message,
		Source:   source,
		TraceID:  uuid.New(),
	}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s:%s: error: %s", e.Filename, e.Position, e.Message)
}

// Report writes the full multi-line rendering spec.md §7 specifies:
// the one-line summary, a blank line, the offending source line
// indented by two spaces, and a caret line pointing at the column.
func (e *CompileError) Report(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", e.Error())

	lines := strings.Split(e.Source, "\n")
	lineIdx := e.Position.Line - 1
	if lineIdx >= 0 && lineIdx < len(lines) {
		fmt.Fprintf(w, "  %s\n", lines[lineIdx])
		fmt.Fprintf(w, "  %s^\n", strings.Repeat(" ", maxInt(0, e.Position.Column-1)))
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
