package surface

import "fmt"

// ParseError reports a syntax error with the offending token's position,
// in the same pointer-receiver error-struct style as internal/kernel's
// error types rather than a bare string.
type ParseError struct {
	Line, Column int
	Message      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func newParseError(tok Token, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: tok.Line, Column: tok.Column, Message: fmt.Sprintf(format, args...)}
}
