package parse

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrParse is matched by every *ParseError through errors.Is.
var ErrParse = errors.New("parse error")

// ParseError reports malformed text notation. Message is a diagnostic
// fit for showing to whoever wrote the text.
type ParseError struct {
	Filename string
	Line     int
	Column   int
	Message  string
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func errorAt(pos lexer.Position, format string, args ...any) *ParseError {
	return &ParseError{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Message:  fmt.Sprintf(format, args...),
	}
}

// fromParticiple converts a lexer or grammar failure.
func fromParticiple(err error, filename string) *ParseError {
	var pe interface {
		Position() lexer.Position
		Message() string
	}
	if errors.As(err, &pe) {
		pos := pe.Position()
		if pos.Filename == "" {
			pos.Filename = filename
		}
		if pos.Line == 0 {
			pos.Line, pos.Column = 1, 1
		}
		return errorAt(pos, "%s", pe.Message())
	}
	return &ParseError{Filename: filename, Line: 1, Column: 1, Message: err.Error()}
}
